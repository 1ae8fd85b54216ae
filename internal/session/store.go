// Package session owns the simulator state between requests.
//
// The rule engine is pure; this package is where its results are committed.
// Every mutation goes through Store.Update, which applies the change to a
// copy and commits it only when the callback succeeds.
package session

import (
	"context"
	"errors"
	"time"

	"moneywise/internal/domain"
)

// ErrNotFound is returned for unknown or ended sessions
var ErrNotFound = errors.New("session not found")

// Store keeps sessions for their lifetime
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, s *domain.Session) error
	// Get returns a copy of the session.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Update runs fn on a copy and commits it when fn returns nil, bumping
	// Version. Updates to the same session are serialized.
	Update(ctx context.Context, id string, fn func(s *domain.Session) error) (*domain.Session, error)
	// Delete ends the session.
	Delete(ctx context.Context, id string) error
	// Sweep ends sessions not updated since cutoff and reports how many.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}
