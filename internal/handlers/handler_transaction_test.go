package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/handlers"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken signs an HS256 token for ownerID.
func generateTestToken(t *testing.T, ownerID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    "finance-test",
		Subject:   ownerID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, ownerID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error {
	args := m.Called(ctx, transactionID, ownerID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	ownerID     string
	token       string
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()

	suite.router = gin.New()
	suite.mockService = new(MockTransactionService)
	suite.ownerID = "owner_" + uuid.NewString()
	suite.token = generateTestToken(suite.T(), suite.ownerID)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret, ""))
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleTransaction(ownerID string) *domain.Transaction {
	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	return &domain.Transaction{
		TransactionID:     uuid.NewString(),
		OwnerID:           ownerID,
		PersonType:        domain.PersonType{ID: "p1", Code: domain.PersonIndividual, Title: "Individual"},
		OperationDateTime: at,
		Type:              domain.TransactionType{ID: "t2", Code: domain.TypeExpense, Title: "Expense"},
		Amount:            decimal.RequireFromString("1500").Round(domain.AmountScale),
		Status:            domain.TransactionStatus{ID: "s1", Code: domain.StatusNew, Title: "New"},
		AuditFields:       domain.AuditFields{CreatedAt: at, CreatedBy: ownerID, LastUpdatedAt: at, LastUpdatedBy: ownerID},
	}
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		PersonType:        "INDIVIDUAL",
		OperationDateTime: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
		TransactionType:   "EXPENSE",
		Amount:            decimal.RequireFromString("1500"),
		RecipientInn:      "7707083893",
	}
	created := sampleTransaction(suite.ownerID)
	suite.mockService.On("CreateTransaction", mock.Anything, suite.ownerID, mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.TransactionType == "EXPENSE" && r.Amount.Equal(decimal.NewFromInt(1500))
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal("1500.00000", resp.Amount)
	suite.True(resp.Editable)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidINNRejectedByBinding() {
	req := map[string]any{
		"personType":        "INDIVIDUAL",
		"operationDateTime": "2024-05-10T12:00:00Z",
		"transactionType":   "EXPENSE",
		"amount":            "10",
		"recipientInn":      "12ab",
	}

	w := suite.do(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "inn")
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ServiceValidationError() {
	suite.mockService.On("CreateTransaction", mock.Anything, suite.ownerID, mock.Anything).
		Return(nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"personType":        "LEGAL",
		"operationDateTime": "2024-05-10T12:00:00Z",
		"transactionType":   "INCOME",
		"amount":            "-1",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "amount must be positive")
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	id := uuid.NewString()
	suite.mockService.On("GetTransactionByID", mock.Anything, id, suite.ownerID).
		Return(nil, fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/"+id, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"Transaction not found"}`, w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ParsesFiltersAndSort() {
	resp := &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}, Total: 0}
	suite.mockService.On("ListTransactions", mock.Anything, suite.ownerID, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 5 &&
			p.Sort == filter.Sort{Field: filter.SortByAmount, Descending: false} &&
			p.Filter.Inn != nil && *p.Filter.Inn == "7707083893" &&
			p.Filter.AmountMin != nil && p.Filter.AmountMin.Equal(decimal.NewFromInt(100)) &&
			p.Filter.DateEnd != nil && p.Filter.DateEnd.Equal(time.Date(2024, 5, 31, 23, 59, 59, 999999999, time.UTC))
	})).Return(resp, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=5&sortBy=amount&sortDir=asc&inn=7707083893&amountMin=100&dateEnd=2024-05-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidRange() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?amountMin=abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotEditable() {
	id := uuid.NewString()
	suite.mockService.On("UpdateTransaction", mock.Anything, id, suite.ownerID, mock.Anything).
		Return(nil, fmt.Errorf("%w: transaction in status COMPLETED cannot be edited", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodPut, "/api/v1/transactions/"+id, map[string]any{"comment": "late fix"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "cannot be edited")
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	id := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, id, suite.ownerID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/"+id, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_MissingDeletedStatus() {
	id := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, id, suite.ownerID).
		Return(fmt.Errorf("status DELETED: %w", apperrors.ErrConfigurationMissing)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/"+id, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Reference data is not configured"}`, w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestRequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}
