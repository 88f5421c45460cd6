package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

// ReferenceService exposes the seeded reference data.
type ReferenceService interface {
	GetReferenceData(ctx context.Context) (*domain.ReferenceData, error)
}

// BankReaderSvc defines read operations for bank data
type BankReaderSvc interface {
	GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// BankWriterSvc defines write operations for bank data
type BankWriterSvc interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error)
	UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest) (*domain.Bank, error)
	DeleteBank(ctx context.Context, bankID string) error
}

// BankSvcFacade combines all bank-related service interfaces
type BankSvcFacade interface {
	BankReaderSvc
	BankWriterSvc
}

// CategoryReaderSvc defines read operations for category data
type CategoryReaderSvc interface {
	// GetCategoryByID returns a category owned by ownerID.
	GetCategoryByID(ctx context.Context, categoryID string, ownerID string) (*domain.Category, error)
	// ListCategories lists the owner's categories, optionally of one type only.
	ListCategories(ctx context.Context, ownerID string, typeCode *domain.TypeCode) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, ownerID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string, ownerID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
