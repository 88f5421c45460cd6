package pgsql

import (
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AggregationRepo: newAggregationRepository(dbPool),
		ReferenceRepo:   newPgxReferenceRepository(dbPool),
		BankRepo:        newPgxBankRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
	}
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)
