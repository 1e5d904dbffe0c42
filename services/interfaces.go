package services

import "task-notes/models"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	AddTask(task *models.Task) (int64, error)
	GetTask(id int64) (*models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(task *models.Task) (int64, error)
	DeleteTask(id int64) error
	SearchTasks(query string) ([]models.Task, error)
	GetTasksByPriority(priority int) ([]models.Task, error)
	GetUrgentTasksByDate(start, end string) ([]models.Task, error)
	GetCompletedTasks() ([]models.Task, error)
	GetPendingTasks() ([]models.Task, error)
	GetTasksCountByStatus(done bool) (int, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	AddNote(note *models.Note) (int64, error)
	GetNote(id int64) (*models.Note, error)
	GetAllNotes() ([]models.Note, error)
	UpdateNote(note *models.Note) (int64, error)
	DeleteNote(id int64) error
	SearchNotes(query string) ([]models.Note, error)
}

// ReminderRepository defines the interface for reminder data access
type ReminderRepository interface {
	AddReminder(reminder *models.Reminder) (int64, error)
	GetRemindersForTask(taskID int64) ([]models.Reminder, error)
	GetDueReminders(now string) ([]models.Reminder, error)
	MarkReminderTriggered(id int64) (int64, error)
}
