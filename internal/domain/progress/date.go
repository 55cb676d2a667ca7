package progress

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for StartDate.
const DateLayout = "2006-01-02"

// DefaultReminderHour is the local hour of the daily reminder.
const DefaultReminderHour = 9

// Today truncates now to local midnight.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// FormatDate renders a StartDate for storage.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate reads a stored StartDate as local midnight in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", raw, err)
	}
	return date, nil
}

// calendarDays counts whole calendar days from start to now. Negative when
// start lies in the future.
func calendarDays(start, now time.Time) int {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// DaysSinceStart returns the whole days elapsed since start, clamped at 0.
func DaysSinceStart(start, now time.Time) int {
	days := calendarDays(start, now.In(start.Location()))
	if days < 0 {
		return 0
	}
	return days
}

// NextReminder returns reminderHour:00 on the day after start + elapsed days.
// The result is always strictly after now; a target that has already passed
// is rolled forward by whole days.
func NextReminder(start, now time.Time, reminderHour int) time.Time {
	local := now.In(start.Location())
	days := calendarDays(start, local)
	target := time.Date(start.Year(), start.Month(), start.Day()+days+1, reminderHour, 0, 0, 0, start.Location())
	for !target.After(local) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// FormatCountdown renders d as whole hours and whole minutes, e.g. "14h 5m".
// Negative durations render as zero.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
