package services

import (
	"task-notes/database"
	"task-notes/models"
)

// ReminderService handles business logic for reminders
type ReminderService struct {
	reminders ReminderRepository
	tasks     TaskRepository
}

// NewReminderService creates a new reminder service
func NewReminderService(reminders ReminderRepository, tasks TaskRepository) *ReminderService {
	return &ReminderService{
		reminders: reminders,
		tasks:     tasks,
	}
}

// Add creates a reminder attached to an existing task. A dangling
// task_id is ErrTaskRefMissing whether it is caught here or by the
// store's foreign key.
func (s *ReminderService) Add(taskID int64, reminderTime string) (*models.Reminder, error) {
	task, err := s.tasks.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskRefMissing
	}

	reminder := models.NewReminder(taskID, reminderTime)
	if _, err := s.reminders.AddReminder(reminder); err != nil {
		if database.IsConstraintErr(err) {
			return nil, ErrTaskRefMissing
		}
		return nil, err
	}

	return reminder, nil
}

// ForTask returns every reminder for the task. An unknown or deleted
// task yields an empty list, matching the cascade contract.
func (s *ReminderService) ForTask(taskID int64) ([]models.Reminder, error) {
	return s.reminders.GetRemindersForTask(taskID)
}

// Due returns untriggered reminders whose time has passed.
func (s *ReminderService) Due() ([]models.Reminder, error) {
	return s.reminders.GetDueReminders(models.Now())
}

// MarkTriggered flips a reminder's trigger flag.
func (s *ReminderService) MarkTriggered(id int64) error {
	affected, err := s.reminders.MarkReminderTriggered(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReminderNotFound
	}
	return nil
}
