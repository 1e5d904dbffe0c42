package models

import "strings"

const (
	previewLimit  = 100
	previewMarker = "..."

	// displayLayout is the short form used when rendering note
	// timestamps for lists.
	displayLayout = "02/01/2006 15:04"
)

type Note struct {
	ID        int64  `json:"id"`
	NoteText  string `json:"note_text"`
	Tag       string `json:"tag,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewNote builds a not-yet-persisted note. CreatedAt and UpdatedAt start
// equal.
func NewNote(text, tag string) *Note {
	now := Now()
	return &Note{
		NoteText:  text,
		Tag:       tag,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt to the current time. The service layer calls
// it before persisting a content mutation; loading from storage never
// does.
func (n *Note) Touch() {
	n.UpdatedAt = Now()
}

// HasTag reports whether the note carries a non-blank tag.
func (n *Note) HasTag() bool {
	return strings.TrimSpace(n.Tag) != ""
}

// PreviewText returns the note body unchanged up to 100 characters, and
// the first 100 characters plus a truncation marker beyond that.
func (n *Note) PreviewText() string {
	runes := []rune(n.NoteText)
	if len(runes) <= previewLimit {
		return n.NoteText
	}
	return string(runes[:previewLimit]) + previewMarker
}

func (n *Note) FormattedCreatedAt() string {
	return formatTime(n.CreatedAt, displayLayout)
}

func (n *Note) FormattedUpdatedAt() string {
	return formatTime(n.UpdatedAt, displayLayout)
}

type CreateNoteRequest struct {
	NoteText string `json:"note_text" validate:"required,max=10000"`
	Tag      string `json:"tag" validate:"max=100"`
}

type UpdateNoteRequest struct {
	NoteText string `json:"note_text" validate:"required,max=10000"`
	Tag      string `json:"tag" validate:"max=100"`
}
