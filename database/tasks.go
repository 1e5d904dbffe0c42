package database

import (
	"database/sql"
	"task-notes/models"
)

// ==================== TASK OPERATIONS ====================

const taskColumns = "id, title, description, priority, due_date, is_done, created_at"

func scanTask(row interface{ Scan(...interface{}) error }) (*models.Task, error) {
	var task models.Task
	var description, dueDate sql.NullString

	err := row.Scan(
		&task.ID, &task.Title, &description, &task.Priority,
		&dueDate, &task.IsDone, &task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Description = description.String
	task.DueDate = dueDate.String
	return &task, nil
}

func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

// AddTask inserts a task and returns the store-assigned id. The entity's
// id is ignored on the way in and filled on the way out.
func (r *Repository) AddTask(task *models.Task) (int64, error) {
	if task.CreatedAt == "" {
		task.CreatedAt = models.Now()
	}

	res, err := r.db.Exec(`
		INSERT INTO tasks (title, description, priority, due_date, is_done, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, task.Title, nullable(task.Description), task.Priority,
		nullable(task.DueDate), task.IsDone, task.CreatedAt)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	task.ID = id
	return id, nil
}

// GetTask retrieves a single task by id, or (nil, nil) when no row
// matches.
func (r *Repository) GetTask(id int64) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRow(`
		SELECT `+taskColumns+` FROM tasks WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return task, nil
}

// GetAllTasks returns every task, newest first.
func (r *Repository) GetAllTasks() ([]models.Task, error) {
	rows, err := r.db.Query(`
		SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

// UpdateTask overwrites every mutable field of the row matching the
// entity's id and returns the affected row count (0 or 1). Id and
// created_at are preserved.
func (r *Repository) UpdateTask(task *models.Task) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE tasks SET
			title = ?,
			description = ?,
			priority = ?,
			due_date = ?,
			is_done = ?
		WHERE id = ?
	`, task.Title, nullable(task.Description), task.Priority,
		nullable(task.DueDate), task.IsDone, task.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteTask removes a task; the schema cascade removes its reminders.
func (r *Repository) DeleteTask(id int64) error {
	_, err := r.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	return err
}

// SearchTasks returns tasks whose title or description contains the
// query, case rules per the store's LIKE collation.
func (r *Repository) SearchTasks(query string) ([]models.Task, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(`
		SELECT `+taskColumns+` FROM tasks
		WHERE title LIKE ? OR description LIKE ?
	`, pattern, pattern)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

// GetTasksByPriority returns tasks with an exact priority match.
func (r *Repository) GetTasksByPriority(priority int) ([]models.Task, error) {
	rows, err := r.db.Query(`
		SELECT `+taskColumns+` FROM tasks WHERE priority = ?
	`, priority)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

// GetUrgentTasksByDate returns urgent tasks due inside the inclusive
// [start, end] range, earliest due first.
func (r *Repository) GetUrgentTasksByDate(start, end string) ([]models.Task, error) {
	rows, err := r.db.Query(`
		SELECT `+taskColumns+` FROM tasks
		WHERE priority = ? AND due_date BETWEEN ? AND ?
		ORDER BY due_date ASC
	`, models.PriorityUrgent, start, end)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

func (r *Repository) GetCompletedTasks() ([]models.Task, error) {
	return r.tasksByStatus(true)
}

func (r *Repository) GetPendingTasks() ([]models.Task, error) {
	return r.tasksByStatus(false)
}

func (r *Repository) tasksByStatus(done bool) ([]models.Task, error) {
	rows, err := r.db.Query(`
		SELECT `+taskColumns+` FROM tasks WHERE is_done = ?
	`, done)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

// GetTasksCountByStatus counts tasks by completion flag.
func (r *Repository) GetTasksCountByStatus(done bool) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM tasks WHERE is_done = ?", done).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
