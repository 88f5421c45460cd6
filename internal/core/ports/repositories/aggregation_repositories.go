package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregationRepository defines the grouped numeric queries over transactions.
// Grouped rows are returned one per underlying entity id, ordered by the first
// occurrence of that id (earliest operation time, then transaction id). Rows
// sharing a display label are merged by the caller.
type AggregationRepository interface {
	// CountTransactions counts the transactions matching c.
	CountTransactions(ctx context.Context, c domain.AggregateConstraints) (int64, error)

	// SumAmount sums the amounts matching c. No rows yields zero.
	SumAmount(ctx context.Context, c domain.AggregateConstraints) (decimal.Decimal, error)

	// CountByDimension counts the transactions matching c per dimension value.
	// Transactions without a value for the dimension are skipped.
	CountByDimension(ctx context.Context, dim domain.Dimension, c domain.AggregateConstraints) ([]domain.LabeledCount, error)

	// SumByDimension sums the amounts matching c per dimension value.
	SumByDimension(ctx context.Context, dim domain.Dimension, c domain.AggregateConstraints) ([]domain.LabeledAmount, error)
}
