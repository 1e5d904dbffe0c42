package services

import (
	"task-notes/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

var _ TaskRepository = (*MockTaskRepository)(nil)

func (m *MockTaskRepository) AddTask(task *models.Task) (int64, error) {
	args := m.Called(task)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) GetTask(id int64) (*models.Task, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAllTasks() ([]models.Task, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(task *models.Task) (int64, error) {
	args := m.Called(task)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) DeleteTask(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTaskRepository) SearchTasks(query string) ([]models.Task, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetTasksByPriority(priority int) ([]models.Task, error) {
	args := m.Called(priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetUrgentTasksByDate(start, end string) ([]models.Task, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetCompletedTasks() ([]models.Task, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetPendingTasks() ([]models.Task, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetTasksCountByStatus(done bool) (int, error) {
	args := m.Called(done)
	return args.Int(0), args.Error(1)
}

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) AddNote(note *models.Note) (int64, error) {
	args := m.Called(note)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNoteRepository) GetNote(id int64) (*models.Note, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetAllNotes() ([]models.Note, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) UpdateNote(note *models.Note) (int64, error) {
	args := m.Called(note)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNoteRepository) DeleteNote(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNoteRepository) SearchNotes(query string) ([]models.Note, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

// MockReminderRepository is a mock implementation of ReminderRepository
type MockReminderRepository struct {
	mock.Mock
}

var _ ReminderRepository = (*MockReminderRepository)(nil)

func (m *MockReminderRepository) AddReminder(reminder *models.Reminder) (int64, error) {
	args := m.Called(reminder)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReminderRepository) GetRemindersForTask(taskID int64) ([]models.Reminder, error) {
	args := m.Called(taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reminder), args.Error(1)
}

func (m *MockReminderRepository) GetDueReminders(now string) ([]models.Reminder, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reminder), args.Error(1)
}

func (m *MockReminderRepository) MarkReminderTriggered(id int64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}
