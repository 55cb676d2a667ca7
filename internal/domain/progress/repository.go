package progress

import (
	"context"
	"errors"
)

// Keys under which the tracker persists its state.
const (
	KeyCompletedTopics = "completedTopics"
	KeyStartDate       = "startDate"
)

// ErrNotFound is returned by a Store when a key has never been set.
var ErrNotFound = errors.New("key not found")

// Store is the local key/value storage the tracker persists into.
type Store interface {
	// Get returns the value for key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error
}
