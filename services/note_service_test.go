package services

import (
	"errors"
	"task-notes/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNoteService_Add(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		tag           string
		mockSetup     func(*MockNoteRepository)
		expectedError error
	}{
		{
			name: "Success - Note created",
			text: "call the client tomorrow",
			tag:  "work",
			mockSetup: func(repo *MockNoteRepository) {
				repo.On("AddNote", mock.AnythingOfType("*models.Note")).Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name:          "Error - Empty text",
			text:          "  \t ",
			mockSetup:     nil,
			expectedError: ErrEmptyNoteText,
		},
		{
			name: "Error - Repository failure",
			text: "hello",
			mockSetup: func(repo *MockNoteRepository) {
				repo.On("AddNote", mock.AnythingOfType("*models.Note")).Return(int64(0), errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockNoteRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			service := NewNoteService(mockRepo)
			note, err := service.Add(tt.text, tt.tag)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, note)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, note)
				assert.Equal(t, tt.text, note.NoteText)
				assert.Equal(t, tt.tag, note.Tag)
				assert.Equal(t, note.CreatedAt, note.UpdatedAt)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	existing := func() *models.Note {
		return &models.Note{
			ID:        1,
			NoteText:  "old text",
			Tag:       "old",
			CreatedAt: "2024-10-25 09:00:00",
			UpdatedAt: "2024-10-25 09:00:00",
		}
	}

	t.Run("Success - Text and tag overwritten, entity touched", func(t *testing.T) {
		mockRepo := new(MockNoteRepository)
		mockRepo.On("GetNote", int64(1)).Return(existing(), nil)
		mockRepo.On("UpdateNote", mock.MatchedBy(func(n *models.Note) bool {
			return n.ID == 1 &&
				n.NoteText == "new text" &&
				n.Tag == "new" &&
				n.CreatedAt == "2024-10-25 09:00:00" &&
				n.UpdatedAt > n.CreatedAt
		})).Return(int64(1), nil)

		service := NewNoteService(mockRepo)
		note, err := service.Update(1, "new text", "new")

		assert.NoError(t, err)
		assert.NotNil(t, note)
		assert.Greater(t, note.UpdatedAt, note.CreatedAt)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Note not found", func(t *testing.T) {
		mockRepo := new(MockNoteRepository)
		mockRepo.On("GetNote", int64(404)).Return(nil, nil)

		service := NewNoteService(mockRepo)
		note, err := service.Update(404, "text", "")

		assert.ErrorIs(t, err, ErrNoteNotFound)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Empty text rejected without repository call", func(t *testing.T) {
		mockRepo := new(MockNoteRepository)

		service := NewNoteService(mockRepo)
		note, err := service.Update(1, "", "tag")

		assert.ErrorIs(t, err, ErrEmptyNoteText)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Row vanished between read and write", func(t *testing.T) {
		mockRepo := new(MockNoteRepository)
		mockRepo.On("GetNote", int64(1)).Return(existing(), nil)
		mockRepo.On("UpdateNote", mock.AnythingOfType("*models.Note")).Return(int64(0), nil)

		service := NewNoteService(mockRepo)
		note, err := service.Update(1, "new text", "")

		assert.ErrorIs(t, err, ErrNoteNotFound)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})
}

func TestNoteService_ListSearchDelete(t *testing.T) {
	notes := []models.Note{{ID: 1, NoteText: "meeting agenda"}}

	mockRepo := new(MockNoteRepository)
	mockRepo.On("GetAllNotes").Return(notes, nil)
	mockRepo.On("SearchNotes", "meeting").Return(notes, nil)
	mockRepo.On("DeleteNote", int64(1)).Return(nil)

	service := NewNoteService(mockRepo)

	got, err := service.List()
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = service.Search("meeting")
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	assert.NoError(t, service.Delete(1))

	mockRepo.AssertExpectations(t)
}
