package handlers

import (
	"task-notes/app"
	"task-notes/models"

	"github.com/gofiber/fiber/v2"
)

// noteJSON renders a note with its derived display properties.
func noteJSON(note *models.Note) fiber.Map {
	return fiber.Map{
		"note":         note,
		"preview_text": note.PreviewText(),
		"has_tag":      note.HasTag(),
	}
}

// CreateNote adds a note and returns it with the assigned id
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Notes.Add(req.NoteText, req.Tag)
		if err != nil {
			return serviceError(c, err)
		}

		return created(c, noteJSON(note))
	}
}

// GetNote retrieves a single note by id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Notes.Get(id)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, noteJSON(note))
	}
}

// ListNotes returns all notes, newest first
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.List()
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// UpdateNote overwrites a note's text and tag and refreshes updated_at
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Notes.Update(id, req.NoteText, req.Tag)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, noteJSON(note))
	}
}

// DeleteNote removes a note
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Notes.Delete(id); err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"deleted": id})
	}
}

// SearchNotes returns notes whose text or tag contains q
func SearchNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return badRequest(c, "q is required")
		}

		notes, err := a.Notes.Search(query)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"notes": notes, "query": query})
	}
}
