package database

import (
	"database/sql"
	"task-notes/models"
)

// ==================== NOTE OPERATIONS ====================

const noteColumns = "id, note_text, tag, created_at, updated_at"

func scanNote(row interface{ Scan(...interface{}) error }) (*models.Note, error) {
	var note models.Note
	var tag sql.NullString

	err := row.Scan(&note.ID, &note.NoteText, &tag, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, err
	}

	note.Tag = tag.String
	return &note, nil
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}

// AddNote inserts a note and returns the store-assigned id.
func (r *Repository) AddNote(note *models.Note) (int64, error) {
	if note.CreatedAt == "" {
		now := models.Now()
		note.CreatedAt = now
		note.UpdatedAt = now
	}

	res, err := r.db.Exec(`
		INSERT INTO notes (note_text, tag, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, note.NoteText, nullable(note.Tag), note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	note.ID = id
	return id, nil
}

// GetNote retrieves a single note by id, or (nil, nil) when no row
// matches.
func (r *Repository) GetNote(id int64) (*models.Note, error) {
	note, err := scanNote(r.db.QueryRow(`
		SELECT `+noteColumns+` FROM notes WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return note, nil
}

// GetAllNotes returns every note, newest first.
func (r *Repository) GetAllNotes() ([]models.Note, error) {
	rows, err := r.db.Query(`
		SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return scanNotes(rows)
}

// UpdateNote overwrites note_text, tag and updated_at for the row
// matching the entity's id and returns the affected row count. The
// caller is expected to Touch the entity first; this layer never reads
// the clock.
func (r *Repository) UpdateNote(note *models.Note) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE notes SET
			note_text = ?,
			tag = ?,
			updated_at = ?
		WHERE id = ?
	`, note.NoteText, nullable(note.Tag), note.UpdatedAt, note.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Repository) DeleteNote(id int64) error {
	_, err := r.db.Exec("DELETE FROM notes WHERE id = ?", id)
	return err
}

// SearchNotes returns notes whose text or tag contains the query.
func (r *Repository) SearchNotes(query string) ([]models.Note, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(`
		SELECT `+noteColumns+` FROM notes
		WHERE note_text LIKE ? OR tag LIKE ?
	`, pattern, pattern)
	if err != nil {
		return nil, err
	}
	return scanNotes(rows)
}
