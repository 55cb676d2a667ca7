// internal/infra/telegram/reset_confirmation_handlers.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// RegisterResetConfirmationHandlers handles the Yes/No buttons of /reset.
func (h *Handlers) RegisterResetConfirmationHandlers(b *telebot.Bot) {
	b.Handle(telebot.OnCallback, h.ownerOnly("reset_callback", h.handleResetCallback))
}

func (h *Handlers) handleResetCallback(c telebot.Context) error {
	data := c.Callback().Data

	var confirmed bool
	switch data {
	case callbackResetYes:
		confirmed = true
	case callbackResetNo:
		confirmed = false
	default:
		h.logger.WithField("data", data).Warn("Unhandled callback data")
		return c.Respond(&telebot.CallbackResponse{Text: msgUnknownAction})
	}

	reset, err := h.view.ResetProgress(h.ctx, func(string) bool { return confirmed })
	if err != nil {
		h.logger.WithError(err).Error("Failed to reset progress")
		return c.Respond(&telebot.CallbackResponse{Text: msgError})
	}
	if !reset {
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(msgResetDeclined)
	}

	if err := c.Respond(&telebot.CallbackResponse{Text: "Progress reset"}); err != nil {
		return err
	}
	return h.sendStatus(c, msgResetDone)
}
