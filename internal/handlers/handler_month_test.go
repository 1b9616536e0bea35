package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/balancify/balancify_app/internal/apperrors"
	"github.com/balancify/balancify_app/internal/core/domain"
	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
	"github.com/balancify/balancify_app/internal/dto"
	"github.com/balancify/balancify_app/internal/handlers"
	"github.com/balancify/balancify_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AddMonth(ctx context.Context, req dto.CreateMonthRequest) (*domain.Month, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Month), args.Error(1)
}
func (m *MockLedgerService) DeleteMonth(ctx context.Context, monthID string) error {
	args := m.Called(ctx, monthID)
	return args.Error(0)
}
func (m *MockLedgerService) AddExpense(ctx context.Context, monthID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, monthID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockLedgerService) DeleteExpense(ctx context.Context, monthID, expenseID string) error {
	args := m.Called(ctx, monthID, expenseID)
	return args.Error(0)
}
func (m *MockLedgerService) SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockLedgerService) DeleteBudget(ctx context.Context, category string) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockLedgerService) ListMonths(ctx context.Context) []domain.Month {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Month)
}
func (m *MockLedgerService) GetMonth(ctx context.Context, monthID string) (*domain.Month, error) {
	args := m.Called(ctx, monthID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Month), args.Error(1)
}
func (m *MockLedgerService) ListBudgets(ctx context.Context) []domain.Budget {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Budget)
}
func (m *MockLedgerService) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLedgerService) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLedgerService) LastSaveError() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockLedgerService) Export(ctx context.Context) dto.ExportDocument {
	args := m.Called(ctx)
	return args.Get(0).(dto.ExportDocument)
}
func (m *MockLedgerService) Snapshot(ctx context.Context) domain.LedgerState {
	args := m.Called(ctx)
	return args.Get(0).(domain.LedgerState)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type MonthHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
}

func (suite *MonthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockLedgerService = new(MockLedgerService)

	services := &portssvc.ServiceContainer{
		Ledger: suite.mockLedgerService,
	}
	handlers.RegisterRoutes(suite.router, &config.Config{}, services)
}

func (suite *MonthHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *MonthHandlerTestSuite) TestCreateMonth_Success() {
	req := dto.CreateMonthRequest{Month: "February", Year: 2024, Income: decimal.NewFromInt(50000)}
	expected := &domain.Month{
		ID:        "February-2024",
		Month:     "February",
		Year:      2024,
		Income:    decimal.NewFromInt(50000),
		Expenses:  []domain.Expense{},
		CreatedAt: time.Now().UTC(),
	}

	suite.mockLedgerService.On("AddMonth", mock.Anything, mock.MatchedBy(func(r dto.CreateMonthRequest) bool {
		return r.Month == req.Month && r.Year == req.Year && r.Income.Equal(req.Income)
	})).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/months", req)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.MonthResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("February-2024", body.ID)
	suite.Equal("February", body.Month)
	suite.Equal(2024, body.Year)
	suite.Empty(body.Expenses)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *MonthHandlerTestSuite) TestCreateMonth_ValidationErrorsReportedTogether() {
	msgs := []string{
		"Please select a month",
		"Please enter a valid year between 2020 and 2030",
		"Please enter a valid income amount",
	}
	suite.mockLedgerService.On("AddMonth", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError(msgs)).Once()

	w := suite.postJSON("/api/v1/months", dto.CreateMonthRequest{})

	suite.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Errors []string `json:"errors"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(msgs, body.Errors)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *MonthHandlerTestSuite) TestCreateMonth_DuplicateConflict() {
	suite.mockLedgerService.On("AddMonth", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicateMonth).Once()

	w := suite.postJSON("/api/v1/months",
		dto.CreateMonthRequest{Month: "February", Year: 2024, Income: decimal.NewFromInt(1000)})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "February 2024 already exists")
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *MonthHandlerTestSuite) TestListMonths_PreservesServiceOrder() {
	months := []domain.Month{
		{ID: "March-2024", Month: "March", Year: 2024, Income: decimal.NewFromInt(1), Expenses: []domain.Expense{}},
		{ID: "February-2024", Month: "February", Year: 2024, Income: decimal.NewFromInt(1), Expenses: []domain.Expense{}},
		{ID: "December-2023", Month: "December", Year: 2023, Income: decimal.NewFromInt(1), Expenses: []domain.Expense{}},
	}
	suite.mockLedgerService.On("ListMonths", mock.Anything).Return(months).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/months", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.MonthResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 3)
	suite.Equal("March-2024", body[0].ID)
	suite.Equal("February-2024", body[1].ID)
	suite.Equal("December-2023", body[2].ID)
}

func (suite *MonthHandlerTestSuite) TestGetMonth_NotFound() {
	suite.mockLedgerService.On("GetMonth", mock.Anything, "April-2024").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/months/April-2024", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *MonthHandlerTestSuite) TestDeleteMonth_Success() {
	suite.mockLedgerService.On("DeleteMonth", mock.Anything, "February-2024").Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/months/February-2024", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *MonthHandlerTestSuite) TestDeleteMonth_NotFound() {
	suite.mockLedgerService.On("DeleteMonth", mock.Anything, "April-2024").
		Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/months/April-2024", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MonthHandlerTestSuite) TestCreateExpense_Success() {
	now := time.Now().UTC()
	expected := &domain.Expense{
		ID:        "exp-1",
		Category:  "Food",
		Amount:    decimal.NewFromFloat(49.99),
		Note:      "groceries",
		Date:      now,
		CreatedAt: now,
	}
	suite.mockLedgerService.On("AddExpense", mock.Anything, "February-2024",
		mock.MatchedBy(func(r dto.CreateExpenseRequest) bool {
			return r.Category == "Food" && r.Amount.Equal(decimal.NewFromFloat(49.99))
		})).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/months/February-2024/expenses",
		dto.CreateExpenseRequest{Category: "Food", Amount: decimal.NewFromFloat(49.99), Note: "groceries"})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.ExpenseResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("exp-1", body.ID)
	suite.Equal("Food", body.Category)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *MonthHandlerTestSuite) TestCreateExpense_MissingCustomCategory() {
	suite.mockLedgerService.On("AddExpense", mock.Anything, "February-2024", mock.Anything).
		Return(nil, apperrors.ErrMissingCustomCategory).Once()

	w := suite.postJSON("/api/v1/months/February-2024/expenses",
		dto.CreateExpenseRequest{Category: "Other", Amount: decimal.NewFromInt(10)})

	suite.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Errors []string `json:"errors"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal([]string{"Please specify the custom category."}, body.Errors)
}

func (suite *MonthHandlerTestSuite) TestCreateExpense_MonthNotFound() {
	suite.mockLedgerService.On("AddExpense", mock.Anything, "April-2024", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postJSON("/api/v1/months/April-2024/expenses",
		dto.CreateExpenseRequest{Category: "Food", Amount: decimal.NewFromInt(10)})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MonthHandlerTestSuite) TestDeleteExpense_AbsentIsNoContent() {
	suite.mockLedgerService.On("DeleteExpense", mock.Anything, "February-2024", "missing-id").
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/months/February-2024/expenses/missing-id", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestMonthHandler(t *testing.T) {
	suite.Run(t, new(MonthHandlerTestSuite))
}
