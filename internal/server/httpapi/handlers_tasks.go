package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
)

type createTaskRequest struct {
	Title string `json:"title"`
}

type patchTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type deleteTaskResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (s *HTTPServer) CreateTask(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var body createTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "invalid body"})
	}

	task, err := s.tasks.Create(c.UserContext(), userID, body.Title)
	if err != nil {
		return s.taskError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (s *HTTPServer) ListTasks(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	list, err := s.tasks.List(c.UserContext(), userID)
	if err != nil {
		return s.taskError(c, err)
	}

	return c.JSON(list)
}

// taskIDParam validates the :id path parameter. Ids are UUIDs; anything
// else cannot name an existing record and maps to the merged not-found
// outcome without touching storage.
func taskIDParam(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", common.ErrTaskNotFound
	}
	return id, nil
}

func (s *HTTPServer) UpdateTask(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	id, err := taskIDParam(c)
	if err != nil {
		return s.taskError(c, err)
	}

	var body patchTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "invalid body"})
	}

	task, err := s.tasks.Update(c.UserContext(), userID, id, tasks.Patch{
		Title:     body.Title,
		Completed: body.Completed,
	})
	if err != nil {
		return s.taskError(c, err)
	}

	return c.JSON(task)
}

func (s *HTTPServer) DeleteTask(c *fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	id, err := taskIDParam(c)
	if err != nil {
		return s.taskError(c, err)
	}

	if err := s.tasks.Delete(c.UserContext(), userID, id); err != nil {
		return s.taskError(c, err)
	}

	return c.JSON(deleteTaskResponse{Message: "Task deleted successfully", ID: id})
}
