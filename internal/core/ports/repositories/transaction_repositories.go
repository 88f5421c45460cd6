package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction regardless of owner or status.
	// Returns apperrors.ErrNotFound when no row exists.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// QueryTransactions evaluates f and returns the matching page in sort order
	// together with the total number of matches. A nil page returns every match.
	QueryTransactions(ctx context.Context, f filter.Filter, sort filter.Sort, page *filter.Page) ([]domain.Transaction, int64, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites the mutable fields and audit update stamp of an
	// existing transaction if its stored status is still expectedStatusID.
	// A row deleted in the meantime yields ErrNotFound, any other status change ErrForbidden.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, expectedStatusID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
