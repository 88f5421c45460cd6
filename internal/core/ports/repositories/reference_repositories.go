package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// ReferenceRepository defines lookups over the seeded status, type and person type tables.
// Lookups by code return apperrors.ErrConfigurationMissing when the code is not seeded;
// lookups by id return apperrors.ErrNotFound.
type ReferenceRepository interface {
	FindStatusByCode(ctx context.Context, code domain.StatusCode) (*domain.TransactionStatus, error)
	FindStatusByID(ctx context.Context, statusID string) (*domain.TransactionStatus, error)
	FindTypeByCode(ctx context.Context, code domain.TypeCode) (*domain.TransactionType, error)
	FindTypeByID(ctx context.Context, typeID string) (*domain.TransactionType, error)
	FindPersonTypeByCode(ctx context.Context, code domain.PersonTypeCode) (*domain.PersonType, error)
	ListReferenceData(ctx context.Context) (*domain.ReferenceData, error)
}

// BankReader defines read operations for bank data
type BankReader interface {
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank data
type BankWriter interface {
	SaveBank(ctx context.Context, bank domain.Bank) error
	UpdateBank(ctx context.Context, bank domain.Bank) error
	// DeleteBank removes a bank. Returns apperrors.ErrForbidden while transactions still reference it.
	DeleteBank(ctx context.Context, bankID string) error
}

// BankRepositoryFacade combines all bank-related repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}

// CategoryReader defines read operations for category data
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategoriesByOwner(ctx context.Context, ownerID string, typeCode *domain.TypeCode) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	// DeleteCategory removes a category. Returns apperrors.ErrForbidden while transactions still reference it.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
