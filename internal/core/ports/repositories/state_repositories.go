package repositories

import (
	"context"

	"github.com/balancify/balancify_app/internal/core/domain"
)

// StateRepository is the durable key-value slot the full ledger state
// round-trips through. Implementations must satisfy
// LoadState(SaveState(S)) == S for any valid state S, envelope metadata aside.
type StateRepository interface {
	// SaveState serializes and writes the full state to the slot. A rejected
	// write returns an error wrapping apperrors.ErrPersistence.
	SaveState(ctx context.Context, state domain.LedgerState) error

	// LoadState reads the slot. An absent slot yields an empty state, not an
	// error; an unreadable or malformed document returns an error wrapping
	// apperrors.ErrCorruptData.
	LoadState(ctx context.Context) (domain.LedgerState, error)
}
