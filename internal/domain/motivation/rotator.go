// internal/domain/motivation/rotator.go
package motivation

import "sync"

// Rotator cycles through a fixed list of quotes. Safe for concurrent use.
type Rotator struct {
	mu     sync.RWMutex
	quotes []string
	index  int
}

// NewRotator returns a rotator over quotes, positioned at the first one.
// An empty list falls back to Quotes.
func NewRotator(quotes []string) *Rotator {
	if len(quotes) == 0 {
		quotes = Quotes
	}
	return &Rotator{quotes: quotes}
}

// Advance moves to the next quote, wrapping at the end, and returns it.
func (r *Rotator) Advance() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % len(r.quotes)
	return r.quotes[r.index]
}

// Current returns the quote at the cursor.
func (r *Rotator) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.quotes[r.index]
}

// Index returns the cursor position.
func (r *Rotator) Index() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index
}

// Reset moves the cursor back to the first quote.
func (r *Rotator) Reset() {
	r.mu.Lock()
	r.index = 0
	r.mu.Unlock()
}

// Len returns the number of quotes.
func (r *Rotator) Len() int {
	return len(r.quotes)
}
