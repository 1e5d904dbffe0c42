package handlers

import (
	"task-notes/app"
	"task-notes/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReminder attaches a reminder to an existing task
func CreateReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateReminderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		reminder, err := a.Reminders.Add(req.TaskID, req.ReminderTime)
		if err != nil {
			return serviceError(c, err)
		}

		return created(c, fiber.Map{
			"reminder":       reminder,
			"formatted_time": reminder.FormattedTime(),
			"status_text":    reminder.StatusText(),
		})
	}
}

// TaskReminders lists every reminder attached to a task
func TaskReminders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskID, err := pathID(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		reminders, err := a.Reminders.ForTask(taskID)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"reminders": reminders, "task_id": taskID})
	}
}

// DueReminders lists untriggered reminders whose time has passed, for
// the notification collaborator
func DueReminders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reminders, err := a.Reminders.Due()
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"reminders": reminders})
	}
}

// TriggerReminder marks a reminder as fired
func TriggerReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Reminders.MarkTriggered(id); err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"triggered": id})
	}
}
