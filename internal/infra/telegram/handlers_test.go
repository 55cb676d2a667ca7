package telegram

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"learning_tracker/internal/app"
	"learning_tracker/internal/domain/motivation"
	"learning_tracker/internal/domain/progress"
	"learning_tracker/internal/infra/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

const ownerID int64 = 4242

// fakeContext implements the handful of telebot.Context methods the handlers
// use; anything else panics through the nil embedded interface.
type fakeContext struct {
	telebot.Context
	sender    *telebot.User
	args      []string
	callback  *telebot.Callback
	sent      []string
	markups   []*telebot.ReplyMarkup
	responses []*telebot.CallbackResponse
}

func (f *fakeContext) Sender() *telebot.User       { return f.sender }
func (f *fakeContext) Args() []string              { return f.args }
func (f *fakeContext) Callback() *telebot.Callback { return f.callback }

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, what.(string))
	for _, opt := range opts {
		if m, ok := opt.(*telebot.ReplyMarkup); ok {
			f.markups = append(f.markups, m)
		}
	}
	return nil
}

func (f *fakeContext) Respond(resp ...*telebot.CallbackResponse) error {
	f.responses = append(f.responses, resp...)
	return nil
}

func (f *fakeContext) last() string {
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1]
}

func newOwnerContext(args ...string) *fakeContext {
	return &fakeContext{sender: &telebot.User{ID: ownerID, FirstName: "Ada"}, args: args}
}

func setupHandlers(t *testing.T) (*Handlers, *app.View) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	logger := logrus.NewEntry(l)

	tracker := app.NewTrackerService(storage.NewMemoryStore(), progress.DefaultReminderHour, nil, logger)
	view := app.NewView(tracker, motivation.NewRotator(nil), logger)
	require.NoError(t, view.Mount(context.Background()))
	return NewHandlers(context.Background(), view, ownerID, logger), view
}

func TestOwnerOnly_RejectsStrangers(t *testing.T) {
	h, view := setupHandlers(t)
	c := &fakeContext{sender: &telebot.User{ID: 1}, args: []string{"1"}}

	require.NoError(t, h.ownerOnly("/toggle", h.handleToggle)(c))
	assert.Equal(t, msgNotOwner, c.last())

	vm, err := view.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 0, vm.CompletedCount)
}

func TestOwnerOnly_IgnoresUpdatesWithoutSender(t *testing.T) {
	h, view := setupHandlers(t)
	c := &fakeContext{args: []string{"1"}}

	require.NoError(t, h.ownerOnly("/toggle", h.handleToggle)(c))
	assert.Empty(t, c.sent)

	vm, err := view.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 0, vm.CompletedCount)
}

func TestHandleStart(t *testing.T) {
	h, _ := setupHandlers(t)
	c := newOwnerContext()

	require.NoError(t, h.ownerOnly("/start", h.handleStart)(c))
	assert.True(t, strings.HasPrefix(c.last(), "Hi Ada!"))
	assert.Contains(t, c.last(), "/toggle <day>")
}

func TestHandleStatus(t *testing.T) {
	h, _ := setupHandlers(t)
	c := newOwnerContext()

	require.NoError(t, h.handleStatus(c))
	assert.Contains(t, c.last(), "Completed: 0/20 (0%)")
	assert.Contains(t, c.last(), "Current day: 1")
	assert.Contains(t, c.last(), "👉 1. What is Python, print, input/output")
}

func TestHandleToggle(t *testing.T) {
	h, view := setupHandlers(t)

	c := newOwnerContext("2")
	require.NoError(t, h.handleToggle(c))
	assert.True(t, strings.HasPrefix(c.last(), "Day 2 marked done."))

	vm, err := view.Snapshot()
	require.NoError(t, err)
	assert.True(t, vm.Completed[1])

	c = newOwnerContext("2")
	require.NoError(t, h.handleToggle(c))
	assert.True(t, strings.HasPrefix(c.last(), "Day 2 marked not done."))
}

func TestHandleToggle_BadArgs(t *testing.T) {
	h, _ := setupHandlers(t)

	for _, args := range [][]string{nil, {"0"}, {"21"}, {"two"}, {"1", "2"}} {
		c := newOwnerContext(args...)
		require.NoError(t, h.handleToggle(c))
		assert.Equal(t, msgToggleUsage, c.last())
	}
}

func TestHandleComplete(t *testing.T) {
	h, view := setupHandlers(t)

	c := newOwnerContext()
	require.NoError(t, h.handleComplete(c))
	assert.True(t, strings.HasPrefix(c.last(), "✓ Day 1 complete!"))

	for day := 2; day <= progress.TopicCount; day++ {
		require.NoError(t, view.ToggleDay(context.Background(), day))
	}

	c = newOwnerContext()
	require.NoError(t, h.handleComplete(c))
	assert.Equal(t, msgAllComplete, c.last())

	c = newOwnerContext()
	require.NoError(t, h.handleStatus(c))
	assert.Contains(t, c.last(), "Completed: 20/20 (100%)")
	assert.Contains(t, c.last(), "🎉 All days complete!")
	assert.NotContains(t, c.last(), "Current day:")
}

func TestHandleReset_AsksForConfirmation(t *testing.T) {
	h, _ := setupHandlers(t)
	c := newOwnerContext()

	require.NoError(t, h.handleReset(c))
	assert.Equal(t, app.ResetPrompt, c.last())
	require.Len(t, c.markups, 1)
	buttons := c.markups[0].InlineKeyboard[0]
	assert.Equal(t, callbackResetYes, buttons[0].Data)
	assert.Equal(t, callbackResetNo, buttons[1].Data)
}

func TestHandleResetCallback(t *testing.T) {
	h, view := setupHandlers(t)
	require.NoError(t, view.ToggleDay(context.Background(), 1))

	c := newOwnerContext()
	c.callback = &telebot.Callback{Data: callbackResetNo}
	require.NoError(t, h.handleResetCallback(c))
	assert.Equal(t, msgResetDeclined, c.last())
	vm, err := view.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, vm.CompletedCount)

	c = newOwnerContext()
	c.callback = &telebot.Callback{Data: callbackResetYes}
	require.NoError(t, h.handleResetCallback(c))
	assert.True(t, strings.HasPrefix(c.last(), msgResetDone))
	vm, err = view.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 0, vm.CompletedCount)
}

func TestHandleResetCallback_Unknown(t *testing.T) {
	h, _ := setupHandlers(t)
	c := newOwnerContext()
	c.callback = &telebot.Callback{Data: "ans_yes_1"}

	require.NoError(t, h.handleResetCallback(c))
	require.Len(t, c.responses, 1)
	assert.Equal(t, msgUnknownAction, c.responses[0].Text)
}

type failingView struct{ TrackerView }

func (failingView) Snapshot() (app.ViewModel, error) { return app.ViewModel{}, errors.New("boom") }

func TestHandleStatus_Error(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	h := NewHandlers(context.Background(), failingView{}, ownerID, logrus.NewEntry(l))
	c := newOwnerContext()

	require.NoError(t, h.handleStatus(c))
	assert.Equal(t, msgError, c.last())
}

func TestParseDayArg(t *testing.T) {
	day, ok := parseDayArg([]string{"20"})
	assert.True(t, ok)
	assert.Equal(t, 20, day)

	_, ok = parseDayArg([]string{"-1"})
	assert.False(t, ok)
}
