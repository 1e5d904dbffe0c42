package database

import (
	"database/sql"
	"task-notes/models"
)

// ==================== REMINDER OPERATIONS ====================

const reminderColumns = "id, task_id, reminder_time, is_triggered"

func scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		if err := rows.Scan(&r.ID, &r.TaskID, &r.ReminderTime, &r.IsTriggered); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}

	return reminders, rows.Err()
}

// AddReminder inserts a reminder. The foreign key rejects a task_id
// with no matching task; IsConstraintErr distinguishes that failure.
func (r *Repository) AddReminder(reminder *models.Reminder) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO reminders (task_id, reminder_time, is_triggered)
		VALUES (?, ?, ?)
	`, reminder.TaskID, reminder.ReminderTime, reminder.IsTriggered)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	reminder.ID = id
	return id, nil
}

// GetRemindersForTask returns every reminder attached to the task.
func (r *Repository) GetRemindersForTask(taskID int64) ([]models.Reminder, error) {
	rows, err := r.db.Query(`
		SELECT `+reminderColumns+` FROM reminders WHERE task_id = ?
	`, taskID)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

// GetDueReminders returns untriggered reminders whose time is strictly
// before now, for the notification poll.
func (r *Repository) GetDueReminders(now string) ([]models.Reminder, error) {
	rows, err := r.db.Query(`
		SELECT `+reminderColumns+` FROM reminders
		WHERE is_triggered = 0 AND reminder_time < ?
		ORDER BY reminder_time ASC
	`, now)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

// MarkReminderTriggered flips the trigger flag and returns the affected
// row count.
func (r *Repository) MarkReminderTriggered(id int64) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE reminders SET is_triggered = 1 WHERE id = ?
	`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
