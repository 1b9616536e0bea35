package services

import (
	"context"

	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/balancify/balancify_app/internal/dto"
)

// LedgerSvcFacade owns all month and budget state and every mutation of it.
// Mutations are atomic with respect to the in-memory state: a failed operation
// leaves the store exactly as it was.
type LedgerSvcFacade interface {
	SnapshotProvider

	// AddMonth validates and inserts a new month with an empty expense
	// sequence. Fails with a ValidationError carrying every violated rule, or
	// with apperrors.ErrDuplicateMonth when the (month, year) pair exists.
	AddMonth(ctx context.Context, req dto.CreateMonthRequest) (*domain.Month, error)

	// DeleteMonth removes the month and, cascading, all its expenses.
	// Fails with apperrors.ErrNotFound when the id is absent.
	DeleteMonth(ctx context.Context, monthID string) error

	// AddExpense resolves the custom category, validates, and appends a new
	// expense to the month's sequence.
	AddExpense(ctx context.Context, monthID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes the matching expense; a no-op when either id is
	// absent.
	DeleteExpense(ctx context.Context, monthID, expenseID string) error

	// SetBudget inserts or replaces the budget for a category. Setting an
	// existing category is an update, not an error.
	SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a category's budget if present; a no-op otherwise.
	DeleteBudget(ctx context.Context, category string) error

	// ListMonths returns all months sorted most recent first (year descending,
	// then calendar month descending).
	ListMonths(ctx context.Context) []domain.Month

	// GetMonth returns one month by id, or apperrors.ErrNotFound.
	GetMonth(ctx context.Context, monthID string) (*domain.Month, error)

	// ListBudgets returns all budgets sorted by category.
	ListBudgets(ctx context.Context) []domain.Budget

	// ClearAll irreversibly empties both collections and persists the empty
	// state.
	ClearAll(ctx context.Context) error

	// Save writes the current state to durable storage immediately.
	Save(ctx context.Context) error

	// LastSaveError reports the outcome of the most recent background save;
	// nil when it succeeded.
	LastSaveError() error

	// Export builds the one-way backup document from the current state.
	Export(ctx context.Context) dto.ExportDocument
}

// SnapshotProvider exposes a read-only deep copy of the current ledger state.
// Consumers that only derive statistics depend on this, not on the mutation
// surface.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) domain.LedgerState
}
