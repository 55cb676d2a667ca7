package progress

import (
	"encoding/json"
	"fmt"
)

// CompletionState holds one completion flag per topic, index-aligned with Topics.
type CompletionState [TopicCount]bool

// Toggle flips the flag at index. The caller validates the index.
func (s *CompletionState) Toggle(index int) {
	s[index] = !s[index]
}

// CompletedCount returns the number of completed days.
func (s CompletionState) CompletedCount() int {
	count := 0
	for _, done := range s {
		if done {
			count++
		}
	}
	return count
}

// ProgressPercentage returns completed days as a percentage of TopicCount.
func (s CompletionState) ProgressPercentage() float64 {
	return float64(s.CompletedCount()*100) / TopicCount
}

// FirstIncomplete returns the 0-based index of the first incomplete day.
func (s CompletionState) FirstIncomplete() (int, bool) {
	for i, done := range s {
		if !done {
			return i, true
		}
	}
	return -1, false
}

// CurrentDay returns the 1-based day of the first incomplete entry,
// or TopicCount when everything is complete.
func (s CompletionState) CurrentDay() int {
	if i, ok := s.FirstIncomplete(); ok {
		return i + 1
	}
	return TopicCount
}

// IsCurrent reports whether the card at index is the next actionable day:
// not completed, and either the first day or following a completed day.
// Out-of-order completion can mark more than one card current.
func (s CompletionState) IsCurrent(index int) bool {
	if s[index] {
		return false
	}
	return index == 0 || s[index-1]
}

// Status returns the card status for index.
func (s CompletionState) Status(index int) CardStatus {
	switch {
	case s[index]:
		return CardCompleted
	case s.IsCurrent(index):
		return CardCurrent
	default:
		return CardPending
	}
}

// AllComplete reports whether every day is done.
func (s CompletionState) AllComplete() bool {
	return s.CompletedCount() == TopicCount
}

// Encode returns the persisted form: a JSON array of TopicCount booleans.
func (s CompletionState) Encode() string {
	data, _ := json.Marshal(s[:])
	return string(data)
}

// DecodeCompletionState parses the persisted form. Anything other than a
// JSON array of exactly TopicCount booleans is rejected.
func DecodeCompletionState(raw string) (CompletionState, error) {
	var flags []bool
	if err := json.Unmarshal([]byte(raw), &flags); err != nil {
		return CompletionState{}, fmt.Errorf("invalid completion state: %w", err)
	}
	if len(flags) != TopicCount {
		return CompletionState{}, fmt.Errorf("invalid completion state: expected %d entries, got %d", TopicCount, len(flags))
	}
	var s CompletionState
	copy(s[:], flags)
	return s, nil
}
