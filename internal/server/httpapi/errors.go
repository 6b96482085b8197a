package httpapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// errMessage strips the sentinel prefix from wrapped validation errors so
// the response carries only the human-readable part.
func errMessage(err error) string {
	msg := err.Error()
	if rest, found := strings.CutPrefix(msg, common.ErrValidation.Error()+": "); found {
		return rest
	}
	return msg
}

// authError renders signup/login failures as {"error": ...}. Internal
// failures are logged and reported without detail.
func (s *HTTPServer) authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: errMessage(err)})
	case errors.Is(err, common.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "Email already exists"})
	case errors.Is(err, common.ErrUserNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "User not found"})
	case errors.Is(err, common.ErrWrongPassword):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "Wrong password"})
	default:
		s.logger.Error(c.UserContext(), "auth request failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal server error"})
	}
}

// taskError renders task-endpoint failures as {"message": ...}.
func (s *HTTPServer) taskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: errMessage(err)})
	case errors.Is(err, common.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(messageResponse{Message: "Task not found or unauthorized"})
	case errors.Is(err, common.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(messageResponse{Message: "unauthorized"})
	default:
		s.logger.Error(c.UserContext(), "task request failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: "internal server error"})
	}
}
