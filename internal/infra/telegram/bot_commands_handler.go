// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"fmt"

	"gopkg.in/telebot.v3"
)

// RegisterBotCommands handles /start and /help.
func (h *Handlers) RegisterBotCommands(b *telebot.Bot) {
	b.Handle("/start", h.ownerOnly("/start", h.handleStart))
	b.Handle("/help", h.ownerOnly("/help", h.handleHelp))
}

func (h *Handlers) handleStart(c telebot.Context) error {
	greeting := fmt.Sprintf("Hi %s! I keep track of your 20-day Python + AI journey.\n\n%s", c.Sender().FirstName, helpText())
	return c.Send(greeting)
}

func (h *Handlers) handleHelp(c telebot.Context) error {
	return c.Send(helpText())
}
