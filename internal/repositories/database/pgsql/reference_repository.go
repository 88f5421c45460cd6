package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Lookup tables, never built from user input.
const (
	tableStatuses    = "transaction_statuses"
	tableTypes       = "transaction_types"
	tablePersonTypes = "person_types"
)

type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepository {
	return &PgxReferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReferenceRepository = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) findOne(ctx context.Context, table, column, value string) (*models.Reference, error) {
	query := fmt.Sprintf(`SELECT id, code, title FROM %s WHERE %s = $1`, table, column)
	var m models.Reference
	if err := r.Pool.QueryRow(ctx, query, value).Scan(&m.ID, &m.Code, &m.Title); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxReferenceRepository) listAll(ctx context.Context, table string) ([]models.Reference, error) {
	rows, err := r.Pool.Query(ctx, fmt.Sprintf(`SELECT id, code, title FROM %s ORDER BY code`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Reference, error) {
		var m models.Reference
		err := row.Scan(&m.ID, &m.Code, &m.Title)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}
	return refs, nil
}

// byCodeError keeps "code is not seeded" apart from other failures.
func byCodeError(err error, what, code string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s is not seeded: %w", what, code, apperrors.ErrConfigurationMissing)
	}
	return fmt.Errorf("failed to find %s %s: %w", what, code, err)
}

func byIDError(err error, what, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, apperrors.ErrNotFound)
	}
	return fmt.Errorf("failed to find %s %s: %w", what, id, err)
}

func (r *PgxReferenceRepository) FindStatusByCode(ctx context.Context, code domain.StatusCode) (*domain.TransactionStatus, error) {
	m, err := r.findOne(ctx, tableStatuses, "code", string(code))
	if err != nil {
		return nil, byCodeError(err, "status", string(code))
	}
	return &domain.TransactionStatus{ID: m.ID, Code: domain.StatusCode(m.Code), Title: m.Title}, nil
}

func (r *PgxReferenceRepository) FindStatusByID(ctx context.Context, statusID string) (*domain.TransactionStatus, error) {
	if !isUUID(statusID) {
		return nil, fmt.Errorf("status %s: %w", statusID, apperrors.ErrNotFound)
	}
	m, err := r.findOne(ctx, tableStatuses, "id", statusID)
	if err != nil {
		return nil, byIDError(err, "status", statusID)
	}
	return &domain.TransactionStatus{ID: m.ID, Code: domain.StatusCode(m.Code), Title: m.Title}, nil
}

func (r *PgxReferenceRepository) FindTypeByCode(ctx context.Context, code domain.TypeCode) (*domain.TransactionType, error) {
	m, err := r.findOne(ctx, tableTypes, "code", string(code))
	if err != nil {
		return nil, byCodeError(err, "transaction type", string(code))
	}
	return &domain.TransactionType{ID: m.ID, Code: domain.TypeCode(m.Code), Title: m.Title}, nil
}

func (r *PgxReferenceRepository) FindTypeByID(ctx context.Context, typeID string) (*domain.TransactionType, error) {
	if !isUUID(typeID) {
		return nil, fmt.Errorf("transaction type %s: %w", typeID, apperrors.ErrNotFound)
	}
	m, err := r.findOne(ctx, tableTypes, "id", typeID)
	if err != nil {
		return nil, byIDError(err, "transaction type", typeID)
	}
	return &domain.TransactionType{ID: m.ID, Code: domain.TypeCode(m.Code), Title: m.Title}, nil
}

func (r *PgxReferenceRepository) FindPersonTypeByCode(ctx context.Context, code domain.PersonTypeCode) (*domain.PersonType, error) {
	m, err := r.findOne(ctx, tablePersonTypes, "code", string(code))
	if err != nil {
		return nil, byCodeError(err, "person type", string(code))
	}
	return &domain.PersonType{ID: m.ID, Code: domain.PersonTypeCode(m.Code), Title: m.Title}, nil
}

func (r *PgxReferenceRepository) ListReferenceData(ctx context.Context) (*domain.ReferenceData, error) {
	statuses, err := r.listAll(ctx, tableStatuses)
	if err != nil {
		return nil, err
	}
	types, err := r.listAll(ctx, tableTypes)
	if err != nil {
		return nil, err
	}
	personTypes, err := r.listAll(ctx, tablePersonTypes)
	if err != nil {
		return nil, err
	}

	ref := &domain.ReferenceData{
		Statuses:    make([]domain.TransactionStatus, len(statuses)),
		Types:       make([]domain.TransactionType, len(types)),
		PersonTypes: make([]domain.PersonType, len(personTypes)),
	}
	for i, m := range statuses {
		ref.Statuses[i] = domain.TransactionStatus{ID: m.ID, Code: domain.StatusCode(m.Code), Title: m.Title}
	}
	for i, m := range types {
		ref.Types[i] = domain.TransactionType{ID: m.ID, Code: domain.TypeCode(m.Code), Title: m.Title}
	}
	for i, m := range personTypes {
		ref.PersonTypes[i] = domain.PersonType{ID: m.ID, Code: domain.PersonTypeCode(m.Code), Title: m.Title}
	}
	return ref, nil
}
