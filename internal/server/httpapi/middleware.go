package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
)

const userIDKey = "userID"

// authRequired verifies the bearer credential on every task request and
// stores the authenticated user id in the request locals. All failure modes
// (missing header, malformed header, bad signature, expired token) collapse
// into the same 401 response so the caller learns nothing about why
// verification failed.
func (s *HTTPServer) authRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthenticated(c)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthenticated(c)
		}

		userID, err := auth.GetUserIDFromToken(parts[1], s.jwtSecret)
		if err != nil || userID == "" {
			return unauthenticated(c)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(messageResponse{Message: "unauthorized"})
}

// authenticatedUserID returns the user id placed in locals by authRequired.
func authenticatedUserID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(userIDKey).(string)
	return userID, ok && userID != ""
}
