package services

import (
	"strings"
	"task-notes/models"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Add creates a task and returns it with the store-assigned id.
func (s *TaskService) Add(title, description string, priority int, dueDate string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	task := models.NewTask(title, description, priority, dueDate)
	if _, err := s.repo.AddTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

// Get retrieves a task by id. A missing id is ErrTaskNotFound, never an
// undefined read.
func (s *TaskService) Get(id int64) (*models.Task, error) {
	task, err := s.repo.GetTask(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// List returns all tasks, newest first.
func (s *TaskService) List() ([]models.Task, error) {
	return s.repo.GetAllTasks()
}

// Update overwrites every mutable field of an existing task.
func (s *TaskService) Update(task *models.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return ErrEmptyTitle
	}

	affected, err := s.repo.UpdateTask(task)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task; the store cascades its reminders. Deleting an
// absent id is a no-op.
func (s *TaskService) Delete(id int64) error {
	return s.repo.DeleteTask(id)
}

// Search returns tasks whose title or description contains the query.
func (s *TaskService) Search(query string) ([]models.Task, error) {
	return s.repo.SearchTasks(query)
}

// ByPriority returns tasks with an exact priority match.
func (s *TaskService) ByPriority(priority int) ([]models.Task, error) {
	return s.repo.GetTasksByPriority(priority)
}

// UrgentBetween returns urgent tasks due inside the inclusive range.
func (s *TaskService) UrgentBetween(start, end string) ([]models.Task, error) {
	return s.repo.GetUrgentTasksByDate(start, end)
}

func (s *TaskService) Completed() ([]models.Task, error) {
	return s.repo.GetCompletedTasks()
}

func (s *TaskService) Pending() ([]models.Task, error) {
	return s.repo.GetPendingTasks()
}

// CountByStatus counts tasks by completion flag.
func (s *TaskService) CountByStatus(done bool) (int, error) {
	return s.repo.GetTasksCountByStatus(done)
}
