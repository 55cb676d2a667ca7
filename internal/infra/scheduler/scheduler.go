package scheduler

import (
	"fmt"
	"time"

	"learning_tracker/internal/app" // For LiveView interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ViewScheduler runs the two periodic tasks of a mounted view: quote rotation
// and countdown refresh. Each job is skipped if its previous run is still going.
type ViewScheduler struct {
	cronEngine             *cron.Cron
	view                   app.LiveView
	logger                 *logrus.Entry
	cronSpecQuoteRotation  string
	cronSpecCountdownCheck string

	quoteEntry     cron.EntryID
	countdownEntry cron.EntryID
}

func NewViewScheduler(
	view app.LiveView,
	logger *logrus.Entry,
	cronSpecQuoteRotation string, // e.g., "@every 10s"
	cronSpecCountdownCheck string, // e.g., "@every 1m"
) *ViewScheduler {
	cronLogger := cron.PrintfLogger(logger.WithField("component", "cron"))
	return &ViewScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger), cron.Recover(cronLogger)),
		),
		view:                   view,
		logger:                 logger.WithField("component", "scheduler"),
		cronSpecQuoteRotation:  cronSpecQuoteRotation,
		cronSpecCountdownCheck: cronSpecCountdownCheck,
	}
}

// Start registers both jobs and starts the cron engine.
func (s *ViewScheduler) Start() error {
	s.logger.Info("Starting view scheduler...")

	var err error
	s.quoteEntry, err = s.cronEngine.AddFunc(s.cronSpecQuoteRotation, s.rotateQuote)
	if err != nil {
		return fmt.Errorf("could not add quote rotation job: %w", err)
	}

	s.countdownEntry, err = s.cronEngine.AddFunc(s.cronSpecCountdownCheck, s.refreshCountdown)
	if err != nil {
		s.cronEngine.Remove(s.quoteEntry)
		return fmt.Errorf("could not add countdown refresh job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.WithFields(logrus.Fields{
		"quote_rotation":    s.cronSpecQuoteRotation,
		"countdown_refresh": s.cronSpecCountdownCheck,
	}).Info("View scheduler started with jobs.")
	return nil
}

func (s *ViewScheduler) rotateQuote() {
	s.view.RotateQuote()
}

func (s *ViewScheduler) refreshCountdown() {
	if _, err := s.view.RefreshCountdown(); err != nil {
		s.logger.WithError(err).Error("Error during countdown refresh")
	}
}

// NextRuns returns the next scheduled time of the rotation and refresh jobs.
func (s *ViewScheduler) NextRuns() (quote, countdown time.Time) {
	return s.cronEngine.Entry(s.quoteEntry).Next, s.cronEngine.Entry(s.countdownEntry).Next
}

// Stop cancels both jobs and waits for running ones to finish.
func (s *ViewScheduler) Stop() {
	s.logger.Info("Stopping view scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.cronEngine.Remove(s.quoteEntry)
	s.cronEngine.Remove(s.countdownEntry)
	s.logger.Info("View scheduler gracefully stopped.")
}
