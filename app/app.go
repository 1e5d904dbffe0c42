package app

import (
	"log/slog"
	"task-notes/database"
	"task-notes/notify"
	"task-notes/services"
	"task-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Tasks     *services.TaskService
	Notes     *services.NoteService
	Reminders *services.ReminderService
	Worker    *notify.Worker
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies. The reminder
// worker is attached afterwards because it consumes the reminder
// service built here.
func New(repo *database.Repository, logger *slog.Logger) *App {
	return &App{
		Repo:      repo,
		Tasks:     services.NewTaskService(repo),
		Notes:     services.NewNoteService(repo),
		Reminders: services.NewReminderService(repo, repo),
		Validator: validator.New(),
		Logger:    logger,
	}
}
