package services

import (
	"strings"
	"task-notes/models"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Add creates a note. CreatedAt and UpdatedAt start equal.
func (s *NoteService) Add(text, tag string) (*models.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyNoteText
	}

	note := models.NewNote(text, tag)
	if _, err := s.repo.AddNote(note); err != nil {
		return nil, err
	}

	return note, nil
}

// Get retrieves a note by id.
func (s *NoteService) Get(id int64) (*models.Note, error) {
	note, err := s.repo.GetNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// List returns all notes, newest first.
func (s *NoteService) List() ([]models.Note, error) {
	return s.repo.GetAllNotes()
}

// Update overwrites a note's text and tag. The entity is touched here,
// before persisting, so the updated_at policy lives in one visible
// place instead of inside field setters.
func (s *NoteService) Update(id int64, text, tag string) (*models.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyNoteText
	}

	note, err := s.repo.GetNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	note.NoteText = text
	note.Tag = tag
	note.Touch()

	affected, err := s.repo.UpdateNote(note)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNoteNotFound
	}

	return note, nil
}

// Delete removes a note. Deleting an absent id is a no-op.
func (s *NoteService) Delete(id int64) error {
	return s.repo.DeleteNote(id)
}

// Search returns notes whose text or tag contains the query.
func (s *NoteService) Search(query string) ([]models.Note, error) {
	return s.repo.SearchNotes(query)
}
