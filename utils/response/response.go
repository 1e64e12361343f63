package response

import (
	"github.com/gofiber/fiber/v2"
)

// Body is the shape every non-health endpoint responds with
type Body struct {
	Message string `json:"message"`
}

// Message writes a response with the given status code
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Body{Message: message})
}

// Created returns a 201 Created response
func Created(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusCreated, message)
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusBadRequest, message)
}

// InternalServerError returns a 500 Internal Server Error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusInternalServerError, message)
}
