package sqlitekv

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/balancify/balancify_app/internal/apperrors"
	"github.com/balancify/balancify_app/internal/core/domain"
	portsrepo "github.com/balancify/balancify_app/internal/core/ports/repositories"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// slotKey names the single key-value slot the full ledger state lives in.
const slotKey = "balancify_data"

// envelopeVersion tags the persisted document.
const envelopeVersion = "2.0"

// stateEnvelope is the versioned document written to the slot.
type stateEnvelope struct {
	Version     string                   `json:"version"`
	Months      map[string]domain.Month  `json:"months"`
	Budgets     map[string]domain.Budget `json:"budgets"`
	LastUpdated time.Time                `json:"lastUpdated"`
}

// StateRepository persists the full ledger state as a JSON envelope in a
// one-row sqlite table, the embedded analogue of a durable key-value slot.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository prepares the slot table on the given database handle and
// returns the repository. Migrations run against the same handle so an
// in-memory database works too.
func NewStateRepository(db *sql.DB) (*StateRepository, error) {
	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to prepare ledger_state schema: %w", err)
	}
	return &StateRepository{db: db}, nil
}

// Ensure StateRepository implements the StateRepository port
var _ portsrepo.StateRepository = (*StateRepository)(nil)

func runMigrations(db *sql.DB) error {
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SaveState serializes the state into the versioned envelope and upserts it
// into the slot. A rejected write wraps apperrors.ErrPersistence.
func (r *StateRepository) SaveState(ctx context.Context, state domain.LedgerState) error {
	envelope := stateEnvelope{
		Version:     envelopeVersion,
		Months:      state.Months,
		Budgets:     state.Budgets,
		LastUpdated: time.Now().UTC(),
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("%w: marshal ledger state: %v", apperrors.ErrPersistence, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO ledger_state (slot, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		slotKey, string(payload), envelope.LastUpdated.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("%w: write ledger state: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// LoadState reads the slot. An absent slot yields an empty state (first run);
// an unparseable or shape-missing payload wraps apperrors.ErrCorruptData so
// callers can degrade to an empty state with a warning.
func (r *StateRepository) LoadState(ctx context.Context) (domain.LedgerState, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM ledger_state WHERE slot = ?`, slotKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewLedgerState(), nil
	}
	if err != nil {
		return domain.LedgerState{}, fmt.Errorf("%w: read ledger state: %v", apperrors.ErrPersistence, err)
	}

	var envelope stateEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return domain.LedgerState{}, fmt.Errorf("%w: parse ledger state: %v", apperrors.ErrCorruptData, err)
	}
	// A well-formed envelope always carries both collections, even when empty.
	if envelope.Months == nil && envelope.Budgets == nil {
		return domain.LedgerState{}, fmt.Errorf("%w: document missing months and budgets", apperrors.ErrCorruptData)
	}

	state := domain.LedgerState{Months: envelope.Months, Budgets: envelope.Budgets}
	if state.Months == nil {
		state.Months = make(map[string]domain.Month)
	}
	if state.Budgets == nil {
		state.Budgets = make(map[string]domain.Budget)
	}
	// Keep every month's expense sequence non-nil so round-tripped states
	// compare equal to freshly built ones.
	for id, m := range state.Months {
		if m.Expenses == nil {
			m.Expenses = []domain.Expense{}
			state.Months[id] = m
		}
	}
	return state, nil
}
