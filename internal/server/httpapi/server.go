// Package httpapi exposes the task-tracking REST surface: credential
// endpoints under /auth and owner-scoped task endpoints under /tasks.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/users"
)

type HTTPServer struct {
	app       *fiber.App
	address   string
	logger    logging.Logger
	users     *users.Service
	tasks     *tasks.Service
	jwtSecret []byte
}

func NewHTTPServer(address string, l logging.Logger, us *users.Service, ts *tasks.Service, secretKey string) *HTTPServer {
	s := &HTTPServer{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}

	s.app = fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"message": message})
		},
	})

	s.registerRoutes()

	return s
}

func (s *HTTPServer) registerRoutes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	s.app.Post("/auth/signup", s.Signup)
	s.app.Post("/auth/login", s.Login)

	authorized := s.app.Group("/tasks", s.authRequired())
	authorized.Post("/", s.CreateTask)
	authorized.Get("/", s.ListTasks)
	authorized.Put("/:id", s.UpdateTask)
	authorized.Delete("/:id", s.DeleteTask)
}

// App exposes the underlying fiber application for in-process tests.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

func (s *HTTPServer) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}
