package telegram

import (
	"fmt"

	"learning_tracker/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterTrackerHandlers handles the progress commands.
func (h *Handlers) RegisterTrackerHandlers(b *telebot.Bot) {
	b.Handle("/status", h.ownerOnly("/status", h.handleStatus))
	b.Handle("/toggle", h.ownerOnly("/toggle", h.handleToggle))
	b.Handle("/complete", h.ownerOnly("/complete", h.handleComplete))
	b.Handle("/reset", h.ownerOnly("/reset", h.handleReset))
}

func (h *Handlers) handleStatus(c telebot.Context) error {
	return h.sendStatus(c, "")
}

// sendStatus sends the current tracker state, optionally after a heading line.
func (h *Handlers) sendStatus(c telebot.Context, heading string) error {
	vm, err := h.view.Snapshot()
	if err != nil {
		h.logger.WithError(err).Error("Failed to build status")
		return c.Send(msgError)
	}
	text := FormatStatus(vm)
	if heading != "" {
		text = heading + "\n\n" + text
	}
	return c.Send(text)
}

func (h *Handlers) handleToggle(c telebot.Context) error {
	// Expected format: /toggle <day>
	day, ok := parseDayArg(c.Args())
	if !ok {
		h.logger.WithField("args", c.Args()).Warn("Invalid command format")
		return c.Send(msgToggleUsage)
	}

	if err := h.view.ToggleDay(h.ctx, day); err != nil {
		h.logger.WithError(err).WithField("day", day).Error("Failed to toggle day")
		return c.Send(msgError)
	}

	vm, err := h.view.Snapshot()
	if err != nil {
		h.logger.WithError(err).Error("Failed to build status")
		return c.Send(msgError)
	}
	state := "not done"
	if vm.Completed[day-1] {
		state = "done"
	}
	return c.Send(fmt.Sprintf("Day %d marked %s.\n\n%s", day, state, FormatStatus(vm)))
}

func (h *Handlers) handleComplete(c telebot.Context) error {
	day, ok, err := h.view.CompleteCurrentDay(h.ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to complete current day")
		return c.Send(msgError)
	}
	if !ok {
		return c.Send(msgAllComplete)
	}

	h.logger.WithFields(logrus.Fields{"day": day}).Info("Current day completed")
	return h.sendStatus(c, fmt.Sprintf("✓ Day %d complete!", day))
}

// handleReset asks for confirmation with inline buttons; the reset itself
// happens in the callback handler.
func (h *Handlers) handleReset(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{{
			{Text: "Yes, reset", Data: callbackResetYes},
			{Text: "No", Data: callbackResetNo},
		}},
	}
	return c.Send(app.ResetPrompt, markup)
}
