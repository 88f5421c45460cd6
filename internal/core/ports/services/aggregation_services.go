package services

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregationService defines the numeric summaries over an owner's transactions.
// Every operation excludes DELETED transactions.
type AggregationService interface {
	// CountInRange counts transactions with an operation time in [start, end].
	CountInRange(ctx context.Context, ownerID string, start, end time.Time) (int64, error)

	// CountByPeriod counts transactions in the look-back window of period ending
	// at anchor. A nil anchor means now.
	CountByPeriod(ctx context.Context, ownerID string, period domain.Period, anchor *time.Time) (*domain.PeriodCount, error)

	// SumByType sums the amounts of one transaction type in [start, end].
	SumByType(ctx context.Context, ownerID string, typeCode domain.TypeCode, start, end time.Time) (decimal.Decimal, error)

	// SumByTypes sums the amounts of several transaction types in [start, end].
	SumByTypes(ctx context.Context, ownerID string, typeCodes []domain.TypeCode, start, end time.Time) (decimal.Decimal, error)

	// CountByStatus counts transactions per status code.
	CountByStatus(ctx context.Context, ownerID string) (domain.CountGroups, error)

	// CountBySenderBank counts transactions per sender bank title.
	CountBySenderBank(ctx context.Context, ownerID string) (domain.CountGroups, error)

	// CountByRecipientBank counts transactions per recipient bank title.
	CountByRecipientBank(ctx context.Context, ownerID string) (domain.CountGroups, error)

	// SumByCategory sums amounts of one type per category title, optionally
	// restricted to window.
	SumByCategory(ctx context.Context, ownerID string, typeCode domain.TypeCode, window *domain.Window) (domain.AmountGroups, error)

	// Balance returns income, outflow (expenses and transfers) and their difference in [start, end].
	Balance(ctx context.Context, ownerID string, start, end time.Time) (domain.Totals, error)

	// Dashboard gathers every dashboard aggregate for window. Any failure fails the call.
	Dashboard(ctx context.Context, ownerID string, window domain.Window) (*domain.DashboardSummary, error)
}
