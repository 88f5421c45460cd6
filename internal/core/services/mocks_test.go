package services_test

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	"github.com/SscSPs/personal_finance_app/internal/core/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) QueryTransactions(ctx context.Context, f filter.Filter, sort filter.Sort, page *filter.Page) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, f, sort, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, expectedStatusID string) error {
	args := m.Called(ctx, txn, expectedStatusID)
	return args.Error(0)
}

// --- Mock AggregationRepository ---
type MockAggregationRepository struct {
	mock.Mock
}

func (m *MockAggregationRepository) CountTransactions(ctx context.Context, c domain.AggregateConstraints) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAggregationRepository) SumAmount(ctx context.Context, c domain.AggregateConstraints) (decimal.Decimal, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregationRepository) CountByDimension(ctx context.Context, dim domain.Dimension, c domain.AggregateConstraints) ([]domain.LabeledCount, error) {
	args := m.Called(ctx, dim, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LabeledCount), args.Error(1)
}

func (m *MockAggregationRepository) SumByDimension(ctx context.Context, dim domain.Dimension, c domain.AggregateConstraints) ([]domain.LabeledAmount, error) {
	args := m.Called(ctx, dim, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LabeledAmount), args.Error(1)
}

// --- Mock ReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) FindStatusByCode(ctx context.Context, code domain.StatusCode) (*domain.TransactionStatus, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionStatus), args.Error(1)
}

func (m *MockReferenceRepository) FindStatusByID(ctx context.Context, statusID string) (*domain.TransactionStatus, error) {
	args := m.Called(ctx, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionStatus), args.Error(1)
}

func (m *MockReferenceRepository) FindTypeByCode(ctx context.Context, code domain.TypeCode) (*domain.TransactionType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionType), args.Error(1)
}

func (m *MockReferenceRepository) FindTypeByID(ctx context.Context, typeID string) (*domain.TransactionType, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionType), args.Error(1)
}

func (m *MockReferenceRepository) FindPersonTypeByCode(ctx context.Context, code domain.PersonTypeCode) (*domain.PersonType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonType), args.Error(1)
}

func (m *MockReferenceRepository) ListReferenceData(ctx context.Context) (*domain.ReferenceData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceData), args.Error(1)
}

// --- Mock BankRepository ---
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	return m.Called(ctx, bank).Error(0)
}

func (m *MockBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	return m.Called(ctx, bank).Error(0)
}

func (m *MockBankRepository) DeleteBank(ctx context.Context, bankID string) error {
	return m.Called(ctx, bankID).Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByOwner(ctx context.Context, ownerID string, typeCode *domain.TypeCode) ([]domain.Category, error) {
	args := m.Called(ctx, ownerID, typeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

// --- Mock DocumentRenderer ---
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, doc report.Document) ([]byte, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) ContentType() string { return "application/test" }

func (m *MockRenderer) Extension() string { return "bin" }
