package handlers

import (
	"task-notes/app"
	"task-notes/models"

	"github.com/gofiber/fiber/v2"
)

// taskJSON renders a task with its derived display properties.
func taskJSON(task *models.Task) fiber.Map {
	return fiber.Map{
		"task":          task,
		"priority_text": task.PriorityText(),
		"status_text":   task.StatusText(),
		"overdue":       task.IsOverdue(),
	}
}

// CreateTask adds a task and returns it with the assigned id
func CreateTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		if req.Priority == 0 {
			req.Priority = models.PriorityNormal
		}

		task, err := a.Tasks.Add(req.Title, req.Description, req.Priority, req.DueDate)
		if err != nil {
			return serviceError(c, err)
		}

		return created(c, taskJSON(task))
	}
}

// GetTask retrieves a single task by id
func GetTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		task, err := a.Tasks.Get(id)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, taskJSON(task))
	}
}

// ListTasks returns all tasks, newest first
func ListTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tasks, err := a.Tasks.List()
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"tasks": tasks})
	}
}

// UpdateTask overwrites every mutable field of an existing task
func UpdateTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		var req models.UpdateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		if req.Priority == 0 {
			req.Priority = models.PriorityNormal
		}

		task := &models.Task{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			DueDate:     req.DueDate,
			IsDone:      req.IsDone,
		}

		if err := a.Tasks.Update(task); err != nil {
			return serviceError(c, err)
		}

		return success(c, taskJSON(task))
	}
}

// DeleteTask removes a task and, via the schema cascade, its reminders
func DeleteTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Tasks.Delete(id); err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"deleted": id})
	}
}

// SearchTasks returns tasks whose title or description contains q
func SearchTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return badRequest(c, "q is required")
		}

		tasks, err := a.Tasks.Search(query)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"tasks": tasks, "query": query})
	}
}

// TasksByPriority filters tasks on an exact priority value
func TasksByPriority(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		priority, err := c.ParamsInt("priority")
		if err != nil {
			return badRequest(c, "invalid priority")
		}

		tasks, err := a.Tasks.ByPriority(priority)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"tasks": tasks, "priority": priority})
	}
}

// UrgentTasksByDate returns urgent tasks due inside [start, end]
func UrgentTasksByDate(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return badRequest(c, "start and end are required")
		}

		tasks, err := a.Tasks.UrgentBetween(start, end)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"tasks": tasks, "start": start, "end": end})
	}
}

// CompletedTasks returns tasks with is_done set
func CompletedTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tasks, err := a.Tasks.Completed()
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"tasks": tasks})
	}
}

// PendingTasks returns tasks with is_done clear
func PendingTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tasks, err := a.Tasks.Pending()
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"tasks": tasks})
	}
}

// TaskCounts returns completion counters for the dashboard
func TaskCounts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		done, err := a.Tasks.CountByStatus(true)
		if err != nil {
			return serviceError(c, err)
		}

		pending, err := a.Tasks.CountByStatus(false)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"done": done, "pending": pending})
	}
}
