package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"learning_tracker/internal/domain/progress"

	"github.com/sirupsen/logrus"
)

// Application-level errors for the tracker
var ErrInvalidDay = errors.New("day index out of range")
var ErrNotLoaded = errors.New("tracker state not loaded")

// ResetPrompt is the question asked before progress is wiped.
const ResetPrompt = "Are you sure you want to reset all progress?"

// ConfirmFunc answers a yes/no prompt.
type ConfirmFunc func(prompt string) bool

// Confirmed is a ConfirmFunc for surfaces that have already asked the user.
func Confirmed(string) bool { return true }

// Card is one day entry as rendered.
type Card struct {
	Index    int                 `json:"index"`
	Day      int                 `json:"day"`
	DayLabel string              `json:"dayLabel"`
	Title    string              `json:"title"`
	Status   progress.CardStatus `json:"status"`
}

// Summary holds the tracker state and every value derived from it at one instant.
type Summary struct {
	Completed          progress.CompletionState `json:"completed"`
	StartDate          string                   `json:"startDate"`
	CompletedCount     int                      `json:"completedCount"`
	TotalDays          int                      `json:"totalDays"`
	ProgressPercentage float64                  `json:"progressPercentage"`
	CurrentDay         int                      `json:"currentDay"`
	DaysSinceStart     int                      `json:"daysSinceStart"`
	NextReminder       time.Time                `json:"nextReminder"`
	Countdown          string                   `json:"countdown"`
	Cards              []Card                   `json:"cards"`
}

// TrackerService owns the completion state and start date and keeps them in
// sync with the Store. All transitions are serialized.
type TrackerService struct {
	mu           sync.Mutex
	store        progress.Store
	logger       *logrus.Entry
	now          func() time.Time
	reminderHour int

	loaded    bool
	completed progress.CompletionState
	startDate time.Time
}

// NewTrackerService creates a service over store. A nil now uses time.Now.
func NewTrackerService(store progress.Store, reminderHour int, now func() time.Time, logger *logrus.Entry) *TrackerService {
	if now == nil {
		now = time.Now
	}
	return &TrackerService{
		store:        store,
		logger:       logger.WithField("component", "tracker"),
		now:          now,
		reminderHour: reminderHour,
	}
}

// Load reads the persisted state. Missing or unreadable values are treated as
// a first run: completion defaults to all false and the start date to today,
// and the defaults are written back.
func (s *TrackerService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := progress.Today(s.now())

	completed, found, err := s.readCompleted(ctx)
	if err != nil {
		return err
	}
	if !found {
		if err := s.store.Set(ctx, progress.KeyCompletedTopics, completed.Encode()); err != nil {
			return fmt.Errorf("failed to persist initial completion state: %w", err)
		}
	}

	startDate, found, err := s.readStartDate(ctx, today.Location())
	if err != nil {
		return err
	}
	if !found {
		startDate = today
		if err := s.store.Set(ctx, progress.KeyStartDate, progress.FormatDate(startDate)); err != nil {
			return fmt.Errorf("failed to persist start date: %w", err)
		}
		s.logger.WithField("start_date", progress.FormatDate(startDate)).Info("First run, start date initialized")
	}

	s.completed = completed
	s.startDate = startDate
	s.loaded = true

	s.logger.WithFields(logrus.Fields{
		"completed":  completed.CompletedCount(),
		"start_date": progress.FormatDate(startDate),
	}).Debug("Tracker state loaded")
	return nil
}

func (s *TrackerService) readCompleted(ctx context.Context) (progress.CompletionState, bool, error) {
	raw, err := s.store.Get(ctx, progress.KeyCompletedTopics)
	if errors.Is(err, progress.ErrNotFound) {
		return progress.CompletionState{}, false, nil
	}
	if err != nil {
		return progress.CompletionState{}, false, fmt.Errorf("failed to read completion state: %w", err)
	}
	completed, err := progress.DecodeCompletionState(raw)
	if err != nil {
		s.logger.WithError(err).Warn("Stored completion state is malformed, starting fresh")
		return progress.CompletionState{}, false, nil
	}
	return completed, true, nil
}

func (s *TrackerService) readStartDate(ctx context.Context, loc *time.Location) (time.Time, bool, error) {
	raw, err := s.store.Get(ctx, progress.KeyStartDate)
	if errors.Is(err, progress.ErrNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read start date: %w", err)
	}
	date, err := progress.ParseDate(raw, loc)
	if err != nil {
		s.logger.WithError(err).Warn("Stored start date is malformed, using today")
		return time.Time{}, false, nil
	}
	return date, true, nil
}

// ToggleComplete flips the completion flag of the 0-based index and persists
// the whole state. The in-memory state is unchanged if the write fails.
func (s *TrackerService) ToggleComplete(ctx context.Context, index int) (progress.CompletionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return progress.CompletionState{}, ErrNotLoaded
	}
	if _, ok := progress.TopicAt(index); !ok {
		return s.completed, ErrInvalidDay
	}
	if err := s.toggleLocked(ctx, index); err != nil {
		return s.completed, err
	}
	return s.completed, nil
}

func (s *TrackerService) toggleLocked(ctx context.Context, index int) error {
	next := s.completed
	next.Toggle(index)
	if err := s.store.Set(ctx, progress.KeyCompletedTopics, next.Encode()); err != nil {
		return fmt.Errorf("failed to persist completion state: %w", err)
	}
	s.completed = next

	topic, _ := progress.TopicAt(index)
	s.logger.WithFields(logrus.Fields{
		"day":       topic.Day(),
		"topic":     topic.Title(),
		"completed": next[index],
	}).Info("Day toggled")
	return nil
}

// CompleteCurrentDay marks the first incomplete day as done. It returns the
// 1-based day it completed, or ok=false without writing when every day is
// already complete.
func (s *TrackerService) CompleteCurrentDay(ctx context.Context) (day int, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return 0, false, ErrNotLoaded
	}
	index, found := s.completed.FirstIncomplete()
	if !found {
		s.logger.Debug("All days already complete")
		return 0, false, nil
	}
	if err := s.toggleLocked(ctx, index); err != nil {
		return 0, false, err
	}
	return index + 1, true, nil
}

// ResetProgress asks confirm with ResetPrompt. When confirmed, every day is
// marked incomplete and the start date moves to today; both are persisted.
// It reports whether the reset happened.
func (s *TrackerService) ResetProgress(ctx context.Context, confirm ConfirmFunc) (bool, error) {
	if confirm == nil || !confirm(ResetPrompt) {
		s.logger.Info("Reset declined")
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return false, ErrNotLoaded
	}

	var cleared progress.CompletionState
	today := progress.Today(s.now())

	if err := s.store.Set(ctx, progress.KeyCompletedTopics, cleared.Encode()); err != nil {
		return false, fmt.Errorf("failed to persist cleared completion state: %w", err)
	}
	if err := s.store.Set(ctx, progress.KeyStartDate, progress.FormatDate(today)); err != nil {
		// Put the previous completion state back so both keys still agree.
		if rbErr := s.store.Set(ctx, progress.KeyCompletedTopics, s.completed.Encode()); rbErr != nil {
			s.logger.WithError(rbErr).Error("Failed to restore completion state after reset failure")
		}
		return false, fmt.Errorf("failed to persist start date: %w", err)
	}
	s.completed = cleared
	s.startDate = today

	s.logger.WithField("start_date", progress.FormatDate(today)).Info("Progress reset")
	return true, nil
}

// Summary derives the display values from the current state.
func (s *TrackerService) Summary() (Summary, error) {
	s.mu.Lock()
	completed, startDate, loaded := s.completed, s.startDate, s.loaded
	s.mu.Unlock()

	if !loaded {
		return Summary{}, ErrNotLoaded
	}

	now := s.now()
	next := progress.NextReminder(startDate, now, s.reminderHour)

	topics := progress.Topics()
	cards := make([]Card, len(topics))
	for i, topic := range topics {
		cards[i] = Card{
			Index:    topic.Index,
			Day:      topic.Day(),
			DayLabel: topic.DayLabel(),
			Title:    topic.Title(),
			Status:   completed.Status(i),
		}
	}

	return Summary{
		Completed:          completed,
		StartDate:          progress.FormatDate(startDate),
		CompletedCount:     completed.CompletedCount(),
		TotalDays:          progress.TopicCount,
		ProgressPercentage: completed.ProgressPercentage(),
		CurrentDay:         completed.CurrentDay(),
		DaysSinceStart:     progress.DaysSinceStart(startDate, now),
		NextReminder:       next,
		Countdown:          progress.FormatCountdown(next.Sub(now)),
		Cards:              cards,
	}, nil
}
