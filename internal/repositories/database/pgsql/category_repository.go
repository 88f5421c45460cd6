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

const categorySelect = `
	SELECT c.category_id, c.owner_id, c.title,
	       tt.id, tt.code, tt.title, c.budget,
	       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
	FROM categories c
	JOIN transaction_types tt ON tt.id = c.transaction_type_id
`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.CollectableRow) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID, &m.OwnerID, &m.Title,
		&m.TypeID, &m.TypeCode, &m.TypeTitle, &m.Budget,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	if !isUUID(categoryID) {
		return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	rows, err := r.Pool.Query(ctx, categorySelect+` WHERE c.category_id = $1`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category %s: %w", categoryID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan category %s: %w", categoryID, err)
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategoriesByOwner(ctx context.Context, ownerID string, typeCode *domain.TypeCode) ([]domain.Category, error) {
	query := categorySelect + ` WHERE c.owner_id = $1`
	args := []any{ownerID}
	if typeCode != nil {
		query += ` AND tt.code = $2`
		args = append(args, string(*typeCode))
	}
	query += ` ORDER BY c.title, c.category_id`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for owner %s: %w", ownerID, err)
	}
	modelCategories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	categories := make([]domain.Category, len(modelCategories))
	for i, m := range modelCategories {
		categories[i] = mapping.ToDomainCategory(m)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, owner_id, title, transaction_type_id, budget,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.OwnerID, m.Title, m.TypeID, m.Budget,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "category "+m.CategoryID)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories SET title = $2, budget = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Title, m.Budget, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateWriteError(err, "category "+m.CategoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", m.CategoryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	if !isUUID(categoryID) {
		return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return translateWriteError(err, "category "+categoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return nil
}
