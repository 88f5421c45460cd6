package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// transactionFrom joins every table a filter predicate may reference.
// The aliases are the ones filter.Col* constants expect.
const transactionFrom = `
	FROM transactions t
	JOIN transaction_statuses ts ON ts.id = t.status_id
	JOIN transaction_types tt ON tt.id = t.transaction_type_id
`

const transactionSelect = `
	SELECT t.transaction_id, t.owner_id,
	       pt.id, pt.code, pt.title,
	       t.operation_date_time,
	       tt.id, tt.code, tt.title,
	       c.category_id, c.title, ct.code,
	       t.amount,
	       ts.id, ts.code, ts.title,
	       sb.bank_id, sb.title, sb.bik, sb.created_at, t.sender_account_number,
	       rb.bank_id, rb.title, rb.bik, rb.created_at, t.recipient_account_number,
	       t.recipient_inn, t.recipient_phone, t.comment,
	       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
` + transactionFrom + `
	JOIN person_types pt ON pt.id = t.person_type_id
	LEFT JOIN categories c ON c.category_id = t.category_id
	LEFT JOIN transaction_types ct ON ct.id = c.transaction_type_id
	LEFT JOIN banks sb ON sb.bank_id = t.sender_bank_id
	LEFT JOIN banks rb ON rb.bank_id = t.recipient_bank_id
`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.CollectableRow) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.OwnerID,
		&m.PersonTypeID, &m.PersonTypeCode, &m.PersonTypeTitle,
		&m.OperationDateTime,
		&m.TypeID, &m.TypeCode, &m.TypeTitle,
		&m.CategoryID, &m.CategoryTitle, &m.CategoryTypeCode,
		&m.Amount,
		&m.StatusID, &m.StatusCode, &m.StatusTitle,
		&m.SenderBankID, &m.SenderBankTitle, &m.SenderBankBIK, &m.SenderBankCreatedAt, &m.SenderAccountNumber,
		&m.RecipientBankID, &m.RecipientBankTitle, &m.RecipientBankBIK, &m.RecipientBankCreatedAt, &m.RecipientAccountNumber,
		&m.RecipientInn, &m.RecipientPhone, &m.Comment,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindTransactionByID retrieves a transaction regardless of owner or status.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if !isUUID(transactionID) {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	query := transactionSelect + ` WHERE t.transaction_id = $1`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// QueryTransactions pushes the filter down as a WHERE clause and pages with LIMIT/OFFSET.
func (r *PgxTransactionRepository) QueryTransactions(ctx context.Context, f filter.Filter, order filter.Sort, page *filter.Page) ([]domain.Transaction, int64, error) {
	countArgs := &filter.Args{}
	countQuery := `SELECT COUNT(*)` + transactionFrom + ` WHERE ` + f.Where(countArgs)
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs.Values()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	args := &filter.Args{}
	query := transactionSelect + ` WHERE ` + f.Where(args) + ` ORDER BY ` + order.OrderBy()
	if page != nil {
		if page.Limit > 0 {
			query += ` LIMIT ` + args.Next(page.Limit)
		}
		if page.Offset > 0 {
			query += ` OFFSET ` + args.Next(page.Offset)
		}
	}

	rows, err := r.Pool.Query(ctx, query, args.Values()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	modelTxns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), total, nil
}

// SaveTransaction inserts a new transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, owner_id, person_type_id, operation_date_time, transaction_type_id,
			category_id, amount, status_id, sender_bank_id, sender_account_number,
			recipient_bank_id, recipient_account_number, recipient_inn, recipient_phone, comment,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.OwnerID, m.PersonTypeID, m.OperationDateTime, m.TypeID,
		m.CategoryID, m.Amount, m.StatusID, m.SenderBankID, m.SenderAccountNumber,
		m.RecipientBankID, m.RecipientAccountNumber, m.RecipientInn, m.RecipientPhone, m.Comment,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "transaction "+m.TransactionID)
	}
	return nil
}

// UpdateTransaction locks the row, checks that its status is still
// expectedStatusID and overwrites its mutable columns.
// Owner and creation stamps are never changed.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, expectedStatusID string) error {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var statusID, statusCode string
	err = tx.QueryRow(ctx, `
		SELECT t.status_id::text, ts.code
		FROM transactions t
		JOIN transaction_statuses ts ON ts.id = t.status_id
		WHERE t.transaction_id = $1
		FOR UPDATE OF t`, m.TransactionID).Scan(&statusID, &statusCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrNotFound)
		}
		return apperrors.NewAppError(500, "failed to lock transaction "+m.TransactionID, err)
	}
	if domain.StatusCode(statusCode) == domain.StatusDeleted {
		return fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrNotFound)
	}
	if statusID != expectedStatusID {
		return fmt.Errorf("%w: transaction %s changed to status %s", apperrors.ErrForbidden, m.TransactionID, statusCode)
	}

	query := `
		UPDATE transactions SET
			person_type_id = $2, operation_date_time = $3, transaction_type_id = $4,
			category_id = $5, amount = $6, status_id = $7,
			sender_bank_id = $8, sender_account_number = $9,
			recipient_bank_id = $10, recipient_account_number = $11,
			recipient_inn = $12, recipient_phone = $13, comment = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE transaction_id = $1;
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID, m.PersonTypeID, m.OperationDateTime, m.TypeID,
		m.CategoryID, m.Amount, m.StatusID,
		m.SenderBankID, m.SenderAccountNumber,
		m.RecipientBankID, m.RecipientAccountNumber,
		m.RecipientInn, m.RecipientPhone, m.Comment,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "transaction "+m.TransactionID)
	}

	return r.Commit(ctx, tx)
}
