package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *HTTPServer) Signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid body"})
	}

	user, err := s.users.Register(c.UserContext(), body.Name, body.Email, body.Password)
	if err != nil {
		return s.authError(c, err)
	}

	s.logger.Info(c.UserContext(), "user registered", "userID", user.ID)
	return c.Status(fiber.StatusCreated).JSON(messageResponse{Message: "User created"})
}

func (s *HTTPServer) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid body"})
	}

	token, err := s.users.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return s.authError(c, err)
	}

	return c.JSON(tokenResponse{Token: token})
}
