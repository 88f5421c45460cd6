package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID returns a non-deleted transaction owned by ownerID.
	GetTransactionByID(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error)

	// ListTransactions composes the owner filter from params and returns one
	// page in the requested order together with the total number of matches.
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction records a new transaction in status NEW.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction changes a transaction that is still editable.
	UpdateTransaction(ctx context.Context, transactionID string, ownerID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction moves a deletable transaction to DELETED.
	DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
