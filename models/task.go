package models

import "time"

// Task priority levels.
const (
	PriorityNormal    = 1
	PriorityImportant = 2
	PriorityUrgent    = 3
)

type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`
	IsDone      bool   `json:"is_done"`
	CreatedAt   string `json:"created_at"`
}

// NewTask builds a not-yet-persisted task stamped with the current time.
// The store assigns ID on insert.
func NewTask(title, description string, priority int, dueDate string) *Task {
	return &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   Now(),
	}
}

// IsOverdue reports whether the due date has passed while the task is
// still open. Absent or malformed due dates are never overdue.
func (t *Task) IsOverdue() bool {
	due, ok := parseTime(t.DueDate)
	if !ok {
		return false
	}
	return due.Before(time.Now()) && !t.IsDone
}

// PriorityText maps the priority value to its display label. The store
// accepts values outside {1,2,3}; they render as "unspecified".
func (t *Task) PriorityText() string {
	switch t.Priority {
	case PriorityNormal:
		return "normal"
	case PriorityImportant:
		return "important"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unspecified"
	}
}

// PriorityColor returns the UI color bucket for the priority.
func (t *Task) PriorityColor() int {
	switch t.Priority {
	case PriorityImportant:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return 1
	}
}

func (t *Task) StatusText() string {
	if t.IsDone {
		return "done"
	}
	return "pending"
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Priority    int    `json:"priority" validate:"omitempty,priority"`
	DueDate     string `json:"due_date" validate:"omitempty,datetimeformat"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Priority    int    `json:"priority" validate:"omitempty,priority"`
	DueDate     string `json:"due_date" validate:"omitempty,datetimeformat"`
	IsDone      bool   `json:"is_done"`
}
