// internal/infra/telegram/bot.go
package telegram

import (
	"context"
	"time"

	"learning_tracker/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// TrackerView is what the bot needs from the tracker view.
type TrackerView interface {
	Snapshot() (app.ViewModel, error)
	ToggleDay(ctx context.Context, day int) error
	CompleteCurrentDay(ctx context.Context) (int, bool, error)
	ResetProgress(ctx context.Context, confirm app.ConfirmFunc) (bool, error)
}

// Handlers answers bot commands for the single owner.
type Handlers struct {
	ctx     context.Context
	view    TrackerView
	ownerID int64
	logger  *logrus.Entry
}

func NewHandlers(ctx context.Context, view TrackerView, ownerID int64, baseLogger *logrus.Entry) *Handlers {
	return &Handlers{
		ctx:     ctx,
		view:    view,
		ownerID: ownerID,
		logger:  baseLogger.WithField("component", "telegram"),
	}
}

// NewBot creates a long-polling bot with a global error handler.
func NewBot(token string, baseLogger *logrus.Entry) (*telebot.Bot, error) {
	logger := baseLogger.WithField("component", "telebot")
	pref := telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			entry := logger.WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithFields(logrus.Fields{
					"sender_id": c.Sender().ID,
					"chat_id":   c.Chat().ID,
					"text":      c.Text(),
				})
			}
			entry.Error("Telegram handler error")
		},
	}
	return telebot.NewBot(pref)
}

// Register wires every command and callback into b.
func (h *Handlers) Register(b *telebot.Bot) {
	h.RegisterBotCommands(b)
	h.RegisterTrackerHandlers(b)
	h.RegisterResetConfirmationHandlers(b)
}

// ownerOnly rejects anyone but the configured owner.
func (h *Handlers) ownerOnly(command string, next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		if c.Sender() == nil {
			h.logger.WithField("handler", command).Warn("Update without sender ignored")
			return nil
		}
		logCtx := h.logger.WithFields(logrus.Fields{
			"handler":   command,
			"sender_id": c.Sender().ID,
		})
		if c.Sender().ID != h.ownerID {
			logCtx.Warn("Unauthorized access attempt")
			return c.Send(msgNotOwner)
		}
		logCtx.Info("Command received")
		return next(c)
	}
}
