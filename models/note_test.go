package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNote(t *testing.T) {
	note := NewNote("call the client tomorrow", "work")

	assert.Zero(t, note.ID)
	assert.Equal(t, "call the client tomorrow", note.NoteText)
	assert.Equal(t, "work", note.Tag)
	assert.NotEmpty(t, note.CreatedAt)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt, "timestamps start equal")
}

func TestNote_Touch(t *testing.T) {
	note := &Note{
		NoteText:  "hello",
		CreatedAt: "2024-10-25 09:00:00",
		UpdatedAt: "2024-10-25 09:00:00",
	}

	note.Touch()

	assert.Equal(t, "2024-10-25 09:00:00", note.CreatedAt, "Touch must not move CreatedAt")
	assert.Greater(t, note.UpdatedAt, note.CreatedAt)
}

func TestNote_HasTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{"Empty tag", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Plain tag", "work", true},
		{"Tag with surrounding spaces", "  ideas  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := &Note{Tag: tt.tag}
			assert.Equal(t, tt.want, note.HasTag())
		})
	}
}

func TestNote_PreviewText(t *testing.T) {
	t.Run("Short text is identity", func(t *testing.T) {
		note := &Note{NoteText: "hello"}
		assert.Equal(t, "hello", note.PreviewText())
	})

	t.Run("Empty text yields empty string", func(t *testing.T) {
		note := &Note{}
		assert.Equal(t, "", note.PreviewText())
	})

	t.Run("Exactly 100 characters is identity", func(t *testing.T) {
		text := strings.Repeat("a", 100)
		note := &Note{NoteText: text}
		assert.Equal(t, text, note.PreviewText())
	})

	t.Run("101 characters truncates with marker", func(t *testing.T) {
		text := strings.Repeat("a", 101)
		note := &Note{NoteText: text}

		preview := note.PreviewText()
		assert.Len(t, preview, 103)
		assert.Equal(t, text[:100], preview[:100])
		assert.True(t, strings.HasSuffix(preview, previewMarker))
	})

	t.Run("150 characters truncates with marker", func(t *testing.T) {
		note := &Note{NoteText: strings.Repeat("x", 150)}

		preview := note.PreviewText()
		assert.Len(t, preview, 103)
		assert.True(t, strings.HasSuffix(preview, previewMarker))
	})
}

func TestNote_FormattedTimestamps(t *testing.T) {
	note := &Note{
		CreatedAt: "2024-10-25 09:00:00",
		UpdatedAt: "2024-10-25 10:30:00",
	}

	assert.Equal(t, "25/10/2024 09:00", note.FormattedCreatedAt())
	assert.Equal(t, "25/10/2024 10:30", note.FormattedUpdatedAt())

	// Malformed timestamps fall back to the raw string.
	note.UpdatedAt = "not a timestamp"
	assert.Equal(t, "not a timestamp", note.FormattedUpdatedAt())
}
