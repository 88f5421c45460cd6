package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// aggregationRepository implements the AggregationRepository interface
type aggregationRepository struct {
	BaseRepository
}

func newAggregationRepository(db *pgxpool.Pool) portsrepo.AggregationRepository {
	return &aggregationRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// dimensionSQL returns the extra join and the key and label expressions of a grouping.
// Inner joins drop transactions without a value for the dimension.
func dimensionSQL(dim domain.Dimension) (join, key, label string) {
	switch dim {
	case domain.DimensionStatus:
		return "", "ts.id", "ts.code"
	case domain.DimensionSenderBank:
		return " JOIN banks b ON b.bank_id = t.sender_bank_id", "b.bank_id", "b.title"
	case domain.DimensionRecipientBank:
		return " JOIN banks b ON b.bank_id = t.recipient_bank_id", "b.bank_id", "b.title"
	case domain.DimensionCategory:
		return " JOIN categories c ON c.category_id = t.category_id", "c.category_id", "c.title"
	default:
		panic(fmt.Sprintf("pgsql: unhandled dimension %q", string(dim)))
	}
}

// groupedQuery builds a grouped aggregate ordered by each group's first transaction.
func groupedQuery(dim domain.Dimension, aggregate string, c domain.AggregateConstraints) (string, []any) {
	join, key, label := dimensionSQL(dim)
	args := &filter.Args{}
	where := filter.ForAggregation(c).Where(args)
	query := fmt.Sprintf(`
		SELECT %[1]s, %[2]s, %[3]s
		%[4]s%[5]s
		WHERE %[6]s
		GROUP BY %[1]s, %[2]s
		ORDER BY MIN(t.operation_date_time), MIN(t.transaction_id::text)
	`, key, label, aggregate, transactionFrom, join, where)
	return query, args.Values()
}

func (r *aggregationRepository) CountTransactions(ctx context.Context, c domain.AggregateConstraints) (int64, error) {
	args := &filter.Args{}
	query := `SELECT COUNT(*)` + transactionFrom + ` WHERE ` + filter.ForAggregation(c).Where(args)
	var count int64
	if err := r.Pool.QueryRow(ctx, query, args.Values()...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting transactions: %w", err)
	}
	return count, nil
}

func (r *aggregationRepository) SumAmount(ctx context.Context, c domain.AggregateConstraints) (decimal.Decimal, error) {
	args := &filter.Args{}
	query := `SELECT COALESCE(SUM(t.amount), 0)` + transactionFrom + ` WHERE ` + filter.ForAggregation(c).Where(args)
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args.Values()...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("error summing transaction amounts: %w", err)
	}
	return sum, nil
}

func (r *aggregationRepository) CountByDimension(ctx context.Context, dim domain.Dimension, c domain.AggregateConstraints) ([]domain.LabeledCount, error) {
	query, args := groupedQuery(dim, "COUNT(*)", c)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying counts by %s: %w", dim, err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LabeledCount, error) {
		var key string
		var lc domain.LabeledCount
		err := row.Scan(&key, &lc.Label, &lc.Count)
		return lc, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning counts by %s: %w", dim, err)
	}
	return result, nil
}

func (r *aggregationRepository) SumByDimension(ctx context.Context, dim domain.Dimension, c domain.AggregateConstraints) ([]domain.LabeledAmount, error) {
	query, args := groupedQuery(dim, "COALESCE(SUM(t.amount), 0)", c)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying amounts by %s: %w", dim, err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LabeledAmount, error) {
		var key string
		var la domain.LabeledAmount
		err := row.Scan(&key, &la.Label, &la.Amount)
		return la, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning amounts by %s: %w", dim, err)
	}
	return result, nil
}
