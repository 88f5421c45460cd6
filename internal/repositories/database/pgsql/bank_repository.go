package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankRepository struct {
	BaseRepository
}

func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

func scanBank(row pgx.CollectableRow) (models.Bank, error) {
	var m models.Bank
	err := row.Scan(&m.BankID, &m.Title, &m.BIK, &m.CreatedAt)
	return m, err
}

func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	if !isUUID(bankID) {
		return nil, fmt.Errorf("bank %s: %w", bankID, apperrors.ErrNotFound)
	}
	rows, err := r.Pool.Query(ctx, `SELECT bank_id, title, bik, created_at FROM banks WHERE bank_id = $1`, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank %s: %w", bankID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanBank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bank %s: %w", bankID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan bank %s: %w", bankID, err)
	}
	bank := mapping.ToDomainBank(m)
	return &bank, nil
}

func (r *PgxBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	rows, err := r.Pool.Query(ctx, `SELECT bank_id, title, bik, created_at FROM banks ORDER BY title, bank_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	modelBanks, err := pgx.CollectRows(rows, scanBank)
	if err != nil {
		return nil, fmt.Errorf("failed to scan banks: %w", err)
	}
	banks := make([]domain.Bank, len(modelBanks))
	for i, m := range modelBanks {
		banks[i] = mapping.ToDomainBank(m)
	}
	return banks, nil
}

func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO banks (bank_id, title, bik, created_at) VALUES ($1, $2, $3, $4)`,
		m.BankID, m.Title, m.BIK, m.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "bank "+m.BIK)
	}
	return nil
}

func (r *PgxBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	tag, err := r.Pool.Exec(ctx, `UPDATE banks SET title = $2, bik = $3 WHERE bank_id = $1`, m.BankID, m.Title, m.BIK)
	if err != nil {
		return translateWriteError(err, "bank "+m.BIK)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bank %s: %w", m.BankID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBankRepository) DeleteBank(ctx context.Context, bankID string) error {
	if !isUUID(bankID) {
		return fmt.Errorf("bank %s: %w", bankID, apperrors.ErrNotFound)
	}
	tag, err := r.Pool.Exec(ctx, `DELETE FROM banks WHERE bank_id = $1`, bankID)
	if err != nil {
		return translateWriteError(err, "bank "+bankID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bank %s: %w", bankID, apperrors.ErrNotFound)
	}
	return nil
}
