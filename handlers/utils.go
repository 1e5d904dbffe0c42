package handlers

import (
	"errors"
	"log/slog"
	"task-notes/database"
	"task-notes/services"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func unprocessable(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": message})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// serviceError maps service-level failures onto HTTP statuses: missing
// rows to 404, rejected input to 422, anything else to 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrNoteNotFound),
		errors.Is(err, services.ErrReminderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyTitle),
		errors.Is(err, services.ErrEmptyNoteText),
		errors.Is(err, services.ErrTaskRefMissing):
		return unprocessable(c, err.Error())
	case database.IsConstraintErr(err):
		return unprocessable(c, "input violates a storage constraint")
	default:
		return serverErrorWithDetails(c, "Internal storage failure", err)
	}
}

func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return int64(id), nil
}
