package handlers

import (
	"task-notes/app"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every repository operation onto the JSON API.
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	api.Post("/tasks", CreateTask(application))
	api.Get("/tasks", ListTasks(application))
	api.Get("/tasks/search", SearchTasks(application))
	api.Get("/tasks/urgent", UrgentTasksByDate(application))
	api.Get("/tasks/completed", CompletedTasks(application))
	api.Get("/tasks/pending", PendingTasks(application))
	api.Get("/tasks/counts", TaskCounts(application))
	api.Get("/tasks/priority/:priority", TasksByPriority(application))
	api.Get("/tasks/:id", GetTask(application))
	api.Put("/tasks/:id", UpdateTask(application))
	api.Delete("/tasks/:id", DeleteTask(application))
	api.Get("/tasks/:id/reminders", TaskReminders(application))

	api.Post("/notes", CreateNote(application))
	api.Get("/notes", ListNotes(application))
	api.Get("/notes/search", SearchNotes(application))
	api.Get("/notes/:id", GetNote(application))
	api.Put("/notes/:id", UpdateNote(application))
	api.Delete("/notes/:id", DeleteNote(application))

	api.Post("/reminders", CreateReminder(application))
	api.Get("/reminders/due", DueReminders(application))
	api.Post("/reminders/:id/trigger", TriggerReminder(application))
}
