package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Finish report", "write the final project report", PriorityUrgent, "2025-10-27 15:00:00")

	assert.Zero(t, task.ID)
	assert.Equal(t, "Finish report", task.Title)
	assert.Equal(t, "write the final project report", task.Description)
	assert.Equal(t, PriorityUrgent, task.Priority)
	assert.Equal(t, "2025-10-27 15:00:00", task.DueDate)
	assert.False(t, task.IsDone)

	_, err := time.ParseInLocation(TimeLayout, task.CreatedAt, time.Local)
	assert.NoError(t, err, "CreatedAt should be stamped in the store layout")
}

func TestTask_IsOverdue(t *testing.T) {
	past := time.Now().Add(-time.Hour).Format(TimeLayout)
	future := time.Now().Add(time.Hour).Format(TimeLayout)

	tests := []struct {
		name    string
		dueDate string
		isDone  bool
		want    bool
	}{
		{"Past due date, still open", past, false, true},
		{"Past due date, already done", past, true, false},
		{"Future due date", future, false, false},
		{"Empty due date", "", false, false},
		{"Malformed due date", "tomorrow at noon", false, false},
		{"Wrong layout", "27/10/2025 15:00", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{
				Title:   "Finish report",
				DueDate: tt.dueDate,
				IsDone:  tt.isDone,
			}
			assert.Equal(t, tt.want, task.IsOverdue())
		})
	}
}

func TestTask_PriorityText(t *testing.T) {
	tests := []struct {
		priority int
		want     string
	}{
		{PriorityNormal, "normal"},
		{PriorityImportant, "important"},
		{PriorityUrgent, "urgent"},
		{0, "unspecified"},
		{4, "unspecified"},
		{-1, "unspecified"},
	}

	for _, tt := range tests {
		task := &Task{Priority: tt.priority}
		assert.Equal(t, tt.want, task.PriorityText(), "priority %d", tt.priority)
	}
}

func TestTask_PriorityColor(t *testing.T) {
	assert.Equal(t, 1, (&Task{Priority: PriorityNormal}).PriorityColor())
	assert.Equal(t, 2, (&Task{Priority: PriorityImportant}).PriorityColor())
	assert.Equal(t, 3, (&Task{Priority: PriorityUrgent}).PriorityColor())
	assert.Equal(t, 1, (&Task{Priority: 99}).PriorityColor())
}

func TestTask_StatusText(t *testing.T) {
	assert.Equal(t, "pending", (&Task{}).StatusText())
	assert.Equal(t, "done", (&Task{IsDone: true}).StatusText())
}

// Scenario from the reference behavior: a past-due urgent task flips out
// of overdue once it is marked done.
func TestTask_OverdueClearsOnCompletion(t *testing.T) {
	task := NewTask("Finish report", "", PriorityUrgent, "2025-10-27 15:00:00")
	if !time.Now().After(time.Date(2025, 10, 27, 15, 0, 0, 0, time.Local)) {
		t.Skip("test clock is before the fixed due date")
	}

	assert.True(t, task.IsOverdue())

	task.IsDone = true
	assert.False(t, task.IsOverdue())
}
