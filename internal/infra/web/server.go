package web

import (
	"errors"
	"time"

	"learning_tracker/internal/app"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Server is the local HTTP surface of the tracker view.
type Server struct {
	app        *fiber.App
	view       *app.View
	templates  *Templates
	logger     *logrus.Entry
	pollMillis int64
}

// NewServer builds the fiber app and registers every route. pollInterval is
// how often the page refetches the quote and countdown fragment.
func NewServer(view *app.View, pollInterval time.Duration, logger *logrus.Entry) (*Server, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		view:       view,
		templates:  templates,
		logger:     logger.WithField("component", "web"),
		pollMillis: pollInterval.Milliseconds(),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "learning-tracker",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(s.logRequests)
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.app.Get("/", s.handlePage)
	s.app.Get("/partials/live", s.handleLivePartial)
	s.app.Get("/api/state", s.handleState)

	s.app.Post("/days/:day/toggle", s.handleToggleDay)
	s.app.Post("/complete-current", s.handleCompleteCurrent)
	s.app.Post("/reset", s.handleReset)
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.WithField("addr", addr).Info("Tracker listening on http://" + addr)
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(5 * time.Second)
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	s.logger.WithFields(logrus.Fields{
		"method":   c.Method(),
		"path":     c.Path(),
		"status":   status,
		"duration": time.Since(start).String(),
	}).Debug("Request handled")
	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code, message = fe.Code, fe.Message
	case errors.Is(err, app.ErrInvalidDay):
		code, message = fiber.StatusBadRequest, "day must be between 1 and 20"
	case errors.Is(err, app.ErrNotLoaded):
		code, message = fiber.StatusServiceUnavailable, "tracker is not ready"
	default:
		s.logger.WithError(err).WithField("path", c.Path()).Error("Request failed")
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
