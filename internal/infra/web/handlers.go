package web

import (
	"bytes"
	"strings"

	"learning_tracker/internal/app"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// pageData is the template data for the tracker page.
type pageData struct {
	app.ViewModel
	ResetPrompt string
	PollMillis  int64
}

func (s *Server) handlePage(c *fiber.Ctx) error {
	vm, err := s.view.Snapshot()
	if err != nil {
		return err
	}
	return s.render(c, "page", pageData{
		ViewModel:   vm,
		ResetPrompt: app.ResetPrompt,
		PollMillis:  s.pollMillis,
	})
}

func (s *Server) handleLivePartial(c *fiber.Ctx) error {
	vm, err := s.view.Snapshot()
	if err != nil {
		return err
	}
	return s.render(c, "live", vm)
}

func (s *Server) handleState(c *fiber.Ctx) error {
	vm, err := s.view.Snapshot()
	if err != nil {
		return err
	}
	return c.JSON(vm)
}

func (s *Server) handleToggleDay(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "day must be a number")
	}
	if err := s.view.ToggleDay(c.UserContext(), day); err != nil {
		return err
	}
	return s.respondAfterAction(c)
}

func (s *Server) handleCompleteCurrent(c *fiber.Ctx) error {
	day, ok, err := s.view.CompleteCurrentDay(c.UserContext())
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"day": day, "completed": ok}).Info("Complete current day requested")
	return s.respondAfterAction(c)
}

// handleReset only resets when the form carries confirm=yes, which the page
// sets after the browser confirmation prompt.
func (s *Server) handleReset(c *fiber.Ctx) error {
	confirmed := strings.EqualFold(c.FormValue("confirm"), "yes")
	_, err := s.view.ResetProgress(c.UserContext(), func(string) bool { return confirmed })
	if err != nil {
		return err
	}
	return s.respondAfterAction(c)
}

// respondAfterAction returns the new state to API clients and sends browsers
// back to the page.
func (s *Server) respondAfterAction(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return s.handleState(c)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

func (s *Server) render(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
