package models

import "time"

// reminderDisplayLayout is the long form used when rendering a reminder
// for the notification surface.
const reminderDisplayLayout = "Mon, 02 Jan 2006 - 15:04"

type Reminder struct {
	ID           int64  `json:"id"`
	TaskID       int64  `json:"task_id"`
	ReminderTime string `json:"reminder_time"`
	IsTriggered  bool   `json:"is_triggered"`
}

// NewReminder builds a not-yet-persisted reminder for an existing task.
func NewReminder(taskID int64, reminderTime string) *Reminder {
	return &Reminder{
		TaskID:       taskID,
		ReminderTime: reminderTime,
	}
}

// IsDue reports whether the reminder time has passed and the reminder
// has not fired yet. Malformed times are never due.
func (r *Reminder) IsDue() bool {
	at, ok := parseTime(r.ReminderTime)
	if !ok {
		return false
	}
	return at.Before(time.Now()) && !r.IsTriggered
}

// TimeInMillis returns the reminder time as epoch milliseconds, or 0
// when the stored string doesn't parse.
func (r *Reminder) TimeInMillis() int64 {
	at, ok := parseTime(r.ReminderTime)
	if !ok {
		return 0
	}
	return at.UnixMilli()
}

func (r *Reminder) FormattedTime() string {
	return formatTime(r.ReminderTime, reminderDisplayLayout)
}

func (r *Reminder) StatusText() string {
	if r.IsTriggered {
		return "notified"
	}
	return "waiting"
}

type CreateReminderRequest struct {
	TaskID       int64  `json:"task_id" validate:"required,gt=0"`
	ReminderTime string `json:"reminder_time" validate:"required,datetimeformat"`
}
