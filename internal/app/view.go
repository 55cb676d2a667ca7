// internal/app/view.go
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"learning_tracker/internal/domain/motivation"

	"github.com/sirupsen/logrus"
)

// LiveView is the part of the tracker view driven by periodic tasks.
type LiveView interface {
	// RotateQuote advances the motivational message.
	RotateQuote() string
	// RefreshCountdown recomputes the reminder countdown label.
	RefreshCountdown() (string, error)
}

// ViewModel is everything a surface needs to render the tracker.
type ViewModel struct {
	Summary
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Quote       string    `json:"quote"`
	QuoteIndex  int       `json:"quoteIndex"`
	Countdown   string    `json:"countdown"`
	RefreshedAt time.Time `json:"refreshedAt"`
}

const (
	viewTitle    = "🐍 20-Day Python + AI Learning Journey"
	viewSubtitle = "Master Python fundamentals and dive into AI/ML"
)

// View is the mounted tracker page: the tracker state plus the rotating quote
// and the countdown label, which only change when their periodic tasks fire
// or the start date changes.
type View struct {
	tracker *TrackerService
	rotator *motivation.Rotator
	logger  *logrus.Entry

	mu          sync.RWMutex
	mounted     bool
	countdown   string
	refreshedAt time.Time
}

// NewView binds a tracker and a quote rotator into a view.
func NewView(tracker *TrackerService, rotator *motivation.Rotator, logger *logrus.Entry) *View {
	return &View{
		tracker: tracker,
		rotator: rotator,
		logger:  logger.WithField("component", "view"),
	}
}

// Mount loads the persisted state, rewinds the quote rotation and computes the
// first countdown label.
func (v *View) Mount(ctx context.Context) error {
	if err := v.tracker.Load(ctx); err != nil {
		return fmt.Errorf("failed to load tracker state: %w", err)
	}
	v.rotator.Reset()

	v.mu.Lock()
	v.mounted = true
	v.mu.Unlock()

	if _, err := v.RefreshCountdown(); err != nil {
		return err
	}
	v.logger.Info("View mounted")
	return nil
}

// Unmount marks the view as torn down. Quote rotation and countdown refresh
// do nothing until the next Mount.
func (v *View) Unmount() {
	v.mu.Lock()
	v.mounted = false
	v.mu.Unlock()
	v.logger.Info("View unmounted")
}

// Mounted reports whether the view is live.
func (v *View) Mounted() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mounted
}

// RotateQuote advances the motivational message. An unmounted view keeps its
// current quote.
func (v *View) RotateQuote() string {
	if !v.Mounted() {
		return v.rotator.Current()
	}
	quote := v.rotator.Advance()
	v.logger.WithField("quote_index", v.rotator.Index()).Debug("Quote rotated")
	return quote
}

// RefreshCountdown recomputes the countdown label from the current state. An
// unmounted view returns the last label unchanged.
func (v *View) RefreshCountdown() (string, error) {
	if !v.Mounted() {
		v.mu.RLock()
		defer v.mu.RUnlock()
		return v.countdown, nil
	}

	summary, err := v.tracker.Summary()
	if err != nil {
		return "", err
	}

	v.mu.Lock()
	v.countdown = summary.Countdown
	v.refreshedAt = v.tracker.now()
	v.mu.Unlock()

	v.logger.WithFields(logrus.Fields{
		"countdown":     summary.Countdown,
		"next_reminder": summary.NextReminder.Format(time.RFC3339),
	}).Debug("Countdown refreshed")
	return summary.Countdown, nil
}

// Snapshot renders the view model. Derived values are recomputed; the
// countdown label is the one last produced by RefreshCountdown.
func (v *View) Snapshot() (ViewModel, error) {
	summary, err := v.tracker.Summary()
	if err != nil {
		return ViewModel{}, err
	}

	v.mu.RLock()
	countdown, refreshedAt := v.countdown, v.refreshedAt
	v.mu.RUnlock()

	if countdown == "" {
		countdown = summary.Countdown
	}

	return ViewModel{
		Summary:     summary,
		Title:       viewTitle,
		Subtitle:    viewSubtitle,
		Quote:       v.rotator.Current(),
		QuoteIndex:  v.rotator.Index(),
		Countdown:   countdown,
		RefreshedAt: refreshedAt,
	}, nil
}

// ToggleDay toggles the 1-based day.
func (v *View) ToggleDay(ctx context.Context, day int) error {
	_, err := v.tracker.ToggleComplete(ctx, day-1)
	return err
}

// CompleteCurrentDay completes the first incomplete day, if any.
func (v *View) CompleteCurrentDay(ctx context.Context) (int, bool, error) {
	return v.tracker.CompleteCurrentDay(ctx)
}

// ResetProgress resets after confirmation. The countdown follows the new
// start date immediately.
func (v *View) ResetProgress(ctx context.Context, confirm ConfirmFunc) (bool, error) {
	reset, err := v.tracker.ResetProgress(ctx, confirm)
	if err != nil || !reset {
		return reset, err
	}
	if _, err := v.RefreshCountdown(); err != nil {
		return true, err
	}
	return true, nil
}
