package services

import "errors"

// Common service-level errors
var (
	// Not-found errors: a read or mutation named an id with no row.
	ErrTaskNotFound     = errors.New("task not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrReminderNotFound = errors.New("reminder not found")

	// Constraint errors: input the schema or domain rules reject.
	ErrEmptyTitle     = errors.New("task title must not be empty")
	ErrEmptyNoteText  = errors.New("note text must not be empty")
	ErrTaskRefMissing = errors.New("reminder references a task that does not exist")
)
