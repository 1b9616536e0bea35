package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/balancify/balancify_app/internal/apperrors"
	"github.com/balancify/balancify_app/internal/core/domain"
	portsrepo "github.com/balancify/balancify_app/internal/core/ports/repositories"
	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
	"github.com/balancify/balancify_app/internal/dto"
)

// ExportVersion tags the one-way backup document.
const ExportVersion = "2.0"

// ledgerService owns the in-memory month and budget collections. A single
// RWMutex keeps every mutation atomic with respect to concurrent readers;
// after each successful mutation the state is written through to the state
// repository, and a failed write is recorded but never fails the mutation.
type ledgerService struct {
	BaseService

	mu          sync.RWMutex
	state       domain.LedgerState
	stateRepo   portsrepo.StateRepository
	lastSaveErr error
}

// NewLedgerService creates a ledger service seeded with an initial state,
// typically the one loaded from the state repository at startup. A nil repo
// disables persistence (used by tests).
func NewLedgerService(stateRepo portsrepo.StateRepository, initial domain.LedgerState) portssvc.LedgerSvcFacade {
	if initial.Months == nil {
		initial.Months = make(map[string]domain.Month)
	}
	if initial.Budgets == nil {
		initial.Budgets = make(map[string]domain.Budget)
	}
	return &ledgerService{
		state:     initial,
		stateRepo: stateRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AddMonth validates and inserts a new month with an empty expense sequence.
func (s *ledgerService) AddMonth(ctx context.Context, req dto.CreateMonthRequest) (*domain.Month, error) {
	if msgs := domain.ValidateMonthInput(req.Month, req.Year, req.Income); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	monthID := domain.MonthID(req.Month, req.Year)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.state.Months[monthID]; exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateMonth, monthID)
	}

	month := domain.Month{
		ID:        monthID,
		Month:     req.Month,
		Year:      req.Year,
		Income:    req.Income,
		Expenses:  []domain.Expense{},
		CreatedAt: time.Now().UTC(),
	}
	s.state.Months[monthID] = month
	s.persistLocked(ctx)

	s.LogInfo(ctx, "Month added", slog.String("month_id", monthID))
	result := month.Clone()
	return &result, nil
}

// DeleteMonth removes the month and all its expenses.
func (s *ledgerService) DeleteMonth(ctx context.Context, monthID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.state.Months[monthID]; !exists {
		return fmt.Errorf("%w: month %s", apperrors.ErrNotFound, monthID)
	}

	delete(s.state.Months, monthID)
	s.persistLocked(ctx)

	s.LogInfo(ctx, "Month deleted", slog.String("month_id", monthID))
	return nil
}

// AddExpense resolves the custom category, validates, and appends a new
// expense to the month's sequence in entry order.
func (s *ledgerService) AddExpense(ctx context.Context, monthID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	category := strings.TrimSpace(req.Category)
	if category == domain.CategoryOther {
		custom := strings.TrimSpace(req.CustomCategory)
		if custom == "" {
			return nil, apperrors.ErrMissingCustomCategory
		}
		category = custom
	}

	if msgs := domain.ValidateExpenseInput(monthID, category, req.Amount); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	month, exists := s.state.Months[monthID]
	if !exists {
		return nil, fmt.Errorf("%w: month %s", apperrors.ErrNotFound, monthID)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ID:        uuid.NewString(),
		Category:  category,
		Amount:    req.Amount,
		Note:      strings.TrimSpace(req.Note),
		Date:      now,
		CreatedAt: now,
	}
	month.Expenses = append(month.Expenses, expense)
	s.state.Months[monthID] = month
	s.persistLocked(ctx)

	s.LogInfo(ctx, "Expense added",
		slog.String("month_id", monthID),
		slog.String("expense_id", expense.ID),
		slog.String("category", category))
	return &expense, nil
}

// DeleteExpense removes the matching expense from the month's sequence by id.
// A no-op when either id is absent.
func (s *ledgerService) DeleteExpense(ctx context.Context, monthID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	month, exists := s.state.Months[monthID]
	if !exists {
		return nil
	}

	for i, e := range month.Expenses {
		if e.ID == expenseID {
			month.Expenses = append(month.Expenses[:i], month.Expenses[i+1:]...)
			s.state.Months[monthID] = month
			s.persistLocked(ctx)
			s.LogInfo(ctx, "Expense deleted",
				slog.String("month_id", monthID),
				slog.String("expense_id", expenseID))
			return nil
		}
	}
	return nil
}

// SetBudget inserts or replaces the budget for a category. Setting an
// existing category is an update, not an error.
func (s *ledgerService) SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, error) {
	category := strings.TrimSpace(req.Category)
	if msgs := domain.ValidateBudgetInput(category, req.Amount); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	period := domain.BudgetPeriod(req.Period)
	if period == "" {
		period = domain.PeriodMonthly
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget := domain.Budget{
		Category:  category,
		Amount:    req.Amount,
		Period:    period,
		CreatedAt: time.Now().UTC(),
	}
	s.state.Budgets[category] = budget
	s.persistLocked(ctx)

	s.LogInfo(ctx, "Budget set", slog.String("category", category))
	return &budget, nil
}

// DeleteBudget removes a category's budget if present; a no-op otherwise.
func (s *ledgerService) DeleteBudget(ctx context.Context, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.state.Budgets[category]; !exists {
		return nil
	}
	delete(s.state.Budgets, category)
	s.persistLocked(ctx)

	s.LogInfo(ctx, "Budget deleted", slog.String("category", category))
	return nil
}

// ListMonths returns all months sorted most recent first: year descending,
// then calendar month index descending. This ordering is used consistently
// for dropdowns and tile lists.
func (s *ledgerService) ListMonths(ctx context.Context) []domain.Month {
	s.mu.RLock()
	defer s.mu.RUnlock()

	months := make([]domain.Month, 0, len(s.state.Months))
	for _, m := range s.state.Months {
		months = append(months, m.Clone())
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return domain.MonthIndex(months[i].Month) > domain.MonthIndex(months[j].Month)
	})
	return months
}

// GetMonth returns one month by id.
func (s *ledgerService) GetMonth(ctx context.Context, monthID string) (*domain.Month, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	month, exists := s.state.Months[monthID]
	if !exists {
		return nil, fmt.Errorf("%w: month %s", apperrors.ErrNotFound, monthID)
	}
	result := month.Clone()
	return &result, nil
}

// ListBudgets returns all budgets sorted by category for stable output.
func (s *ledgerService) ListBudgets(ctx context.Context) []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	budgets := make([]domain.Budget, 0, len(s.state.Budgets))
	for _, b := range s.state.Budgets {
		budgets = append(budgets, b)
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].Category < budgets[j].Category })
	return budgets
}

// ClearAll irreversibly empties both collections and persists the empty state.
func (s *ledgerService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.NewLedgerState()
	s.persistLocked(ctx)

	s.LogInfo(ctx, "All ledger data cleared")
	return nil
}

// Save writes the current state to durable storage immediately.
func (s *ledgerService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persistLocked(ctx)
	return s.lastSaveErr
}

// LastSaveError reports the outcome of the most recent save attempt.
func (s *ledgerService) LastSaveError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSaveErr
}

// Snapshot returns a deep copy of the current state for read-only consumers.
func (s *ledgerService) Snapshot(ctx context.Context) domain.LedgerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Export builds the one-way backup document from the current state.
func (s *ledgerService) Export(ctx context.Context) dto.ExportDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state.Clone()
	return dto.ExportDocument{
		Months:     snapshot.Months,
		Budgets:    snapshot.Budgets,
		ExportDate: time.Now().UTC(),
		Version:    ExportVersion,
	}
}

// persistLocked writes the state through to the repository. The caller must
// hold the write lock. Failures are recorded and logged, never propagated:
// the in-memory state stays authoritative and usable.
func (s *ledgerService) persistLocked(ctx context.Context) {
	if s.stateRepo == nil {
		return
	}
	if err := s.stateRepo.SaveState(ctx, s.state.Clone()); err != nil {
		s.lastSaveErr = err
		s.LogError(ctx, err, "Failed to persist ledger state")
		return
	}
	s.lastSaveErr = nil
}
