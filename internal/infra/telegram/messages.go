package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"learning_tracker/internal/app"
	"learning_tracker/internal/domain/progress"
)

const (
	msgNotOwner      = "Sorry, this tracker belongs to someone else."
	msgError         = "Something went wrong. Please try again later."
	msgToggleUsage   = "Usage: /toggle <day>, where day is 1-20."
	msgAllComplete   = "🎉 All 20 days are already complete!"
	msgResetDeclined = "Reset cancelled. Your progress is unchanged."
	msgResetDone     = "↺ Progress reset. Day 1 starts today."
	msgUnknownAction = "Unknown action."
)

const (
	callbackResetYes = "reset_yes"
	callbackResetNo  = "reset_no"
)

func helpText() string {
	var b strings.Builder
	b.WriteString("Available commands:\n\n")
	b.WriteString("/status - show progress, current day and the next reminder countdown\n")
	b.WriteString("/toggle <day> - mark a day done or not done\n")
	b.WriteString("/complete - complete the current day\n")
	b.WriteString("/reset - reset all progress (asks for confirmation)\n")
	b.WriteString("/help - show this message")
	return b.String()
}

// cardMarker renders a card status as a single glyph.
func cardMarker(status progress.CardStatus) string {
	switch status {
	case progress.CardCompleted:
		return "✅"
	case progress.CardCurrent:
		return "👉"
	default:
		return "▫️"
	}
}

// FormatStatus renders the tracker as a chat message.
func FormatStatus(vm app.ViewModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", vm.Title)
	fmt.Fprintf(&b, "Completed: %d/%d (%.0f%%)\n", vm.CompletedCount, vm.TotalDays, vm.ProgressPercentage)
	if vm.Completed.AllComplete() {
		b.WriteString("🎉 All days complete!\n")
	} else {
		fmt.Fprintf(&b, "Current day: %d\n", vm.CurrentDay)
	}
	fmt.Fprintf(&b, "Days since start: %d\n", vm.DaysSinceStart)
	fmt.Fprintf(&b, "⏰ Next daily reminder in %s\n\n", vm.Countdown)
	for _, card := range vm.Cards {
		fmt.Fprintf(&b, "%s %d. %s\n", cardMarker(card.Status), card.Day, card.Title)
	}
	fmt.Fprintf(&b, "\n%s", vm.Quote)
	return b.String()
}

// parseDayArg reads the single 1-based day argument of /toggle.
func parseDayArg(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	day, err := strconv.Atoi(args[0])
	if err != nil || day < 1 || day > progress.TopicCount {
		return 0, false
	}
	return day, true
}
