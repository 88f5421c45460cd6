package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// aggregationService implements the AggregationService interface
type aggregationService struct {
	BaseService
	aggRepo portsrepo.AggregationRepository
}

// AggregationServiceOption is a functional option for configuring the aggregation service
type AggregationServiceOption func(*aggregationService)

// WithAggregationClock overrides the clock used to anchor period windows.
func WithAggregationClock(clock func() time.Time) AggregationServiceOption {
	return func(s *aggregationService) {
		s.Clock = clock
	}
}

// NewAggregationService creates a new aggregation service with the provided options
func NewAggregationService(repo portsrepo.AggregationRepository, options ...AggregationServiceOption) portssvc.AggregationService {
	svc := &aggregationService{aggRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure aggregationService implements the AggregationService interface
var _ portssvc.AggregationService = (*aggregationService)(nil)

func (s *aggregationService) rangeConstraints(ownerID string, start, end time.Time) (domain.AggregateConstraints, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return domain.AggregateConstraints{}, err
	}
	w := domain.Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return domain.AggregateConstraints{}, err
	}
	return domain.AggregateConstraints{OwnerID: ownerID}.InWindow(w), nil
}

// normalizeTypeCodes parses every code and returns them in canonical form.
func normalizeTypeCodes(codes ...domain.TypeCode) ([]domain.TypeCode, error) {
	out := make([]domain.TypeCode, 0, len(codes))
	for _, code := range codes {
		parsed, err := domain.ParseTypeCode(string(code))
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

// CountInRange counts transactions with an operation time in [start, end].
func (s *aggregationService) CountInRange(ctx context.Context, ownerID string, start, end time.Time) (int64, error) {
	c, err := s.rangeConstraints(ownerID, start, end)
	if err != nil {
		return 0, err
	}
	n, err := s.aggRepo.CountTransactions(ctx, c)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions in range",
			slog.String("owner_id", ownerID),
			slog.String("start", start.Format(time.RFC3339)),
			slog.String("end", end.Format(time.RFC3339)))
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

// CountByPeriod counts transactions in the look-back window of period.
func (s *aggregationService) CountByPeriod(ctx context.Context, ownerID string, period domain.Period, anchor *time.Time) (*domain.PeriodCount, error) {
	period, err := domain.ParsePeriod(string(period))
	if err != nil {
		return nil, err
	}
	at := s.Now()
	if anchor != nil {
		at = *anchor
	}
	w := period.Window(at)
	n, err := s.CountInRange(ctx, ownerID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return &domain.PeriodCount{Period: period, Window: w, Count: n}, nil
}

// SumByType sums the amounts of one transaction type in [start, end].
func (s *aggregationService) SumByType(ctx context.Context, ownerID string, typeCode domain.TypeCode, start, end time.Time) (decimal.Decimal, error) {
	return s.SumByTypes(ctx, ownerID, []domain.TypeCode{typeCode}, start, end)
}

// SumByTypes sums the amounts of several transaction types in [start, end].
func (s *aggregationService) SumByTypes(ctx context.Context, ownerID string, typeCodes []domain.TypeCode, start, end time.Time) (decimal.Decimal, error) {
	c, err := s.rangeConstraints(ownerID, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	typeCodes, err = normalizeTypeCodes(typeCodes...)
	if err != nil {
		return decimal.Zero, err
	}
	if len(typeCodes) == 0 {
		return decimal.Zero, nil
	}
	sum, err := s.aggRepo.SumAmount(ctx, c.OfTypes(typeCodes...))
	if err != nil {
		s.LogError(ctx, err, "Failed to sum transaction amounts",
			slog.String("owner_id", ownerID),
			slog.Any("type_codes", typeCodes))
		return decimal.Zero, fmt.Errorf("failed to sum amounts: %w", err)
	}
	return sum, nil
}

func (s *aggregationService) countBy(ctx context.Context, ownerID string, dim domain.Dimension) (domain.CountGroups, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return domain.CountGroups{}, err
	}
	rows, err := s.aggRepo.CountByDimension(ctx, dim, domain.AggregateConstraints{OwnerID: ownerID})
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions by dimension",
			slog.String("owner_id", ownerID),
			slog.String("dimension", string(dim)))
		return domain.CountGroups{}, fmt.Errorf("failed to count by %s: %w", dim, err)
	}
	return domain.NewCountGroups(rows), nil
}

// CountByStatus counts transactions per status code.
func (s *aggregationService) CountByStatus(ctx context.Context, ownerID string) (domain.CountGroups, error) {
	return s.countBy(ctx, ownerID, domain.DimensionStatus)
}

// CountBySenderBank counts transactions per sender bank title.
func (s *aggregationService) CountBySenderBank(ctx context.Context, ownerID string) (domain.CountGroups, error) {
	return s.countBy(ctx, ownerID, domain.DimensionSenderBank)
}

// CountByRecipientBank counts transactions per recipient bank title.
func (s *aggregationService) CountByRecipientBank(ctx context.Context, ownerID string) (domain.CountGroups, error) {
	return s.countBy(ctx, ownerID, domain.DimensionRecipientBank)
}

// SumByCategory sums amounts of one type per category title.
func (s *aggregationService) SumByCategory(ctx context.Context, ownerID string, typeCode domain.TypeCode, window *domain.Window) (domain.AmountGroups, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return domain.AmountGroups{}, err
	}
	typeCode, err := domain.ParseTypeCode(string(typeCode))
	if err != nil {
		return domain.AmountGroups{}, err
	}
	c := domain.AggregateConstraints{OwnerID: ownerID}.OfTypes(typeCode)
	if window != nil {
		if err := window.Validate(); err != nil {
			return domain.AmountGroups{}, err
		}
		c = c.InWindow(*window)
	}
	rows, err := s.aggRepo.SumByDimension(ctx, domain.DimensionCategory, c)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum amounts by category",
			slog.String("owner_id", ownerID),
			slog.String("type_code", string(typeCode)))
		return domain.AmountGroups{}, fmt.Errorf("failed to sum by category: %w", err)
	}
	return domain.NewAmountGroups(rows), nil
}

// Balance returns income minus outflow in [start, end].
func (s *aggregationService) Balance(ctx context.Context, ownerID string, start, end time.Time) (domain.Totals, error) {
	income, err := s.SumByType(ctx, ownerID, domain.TypeIncome, start, end)
	if err != nil {
		return domain.Totals{}, err
	}
	outflow, err := s.SumByTypes(ctx, ownerID, domain.OutflowTypes, start, end)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.NewTotals(income, outflow), nil
}

// Dashboard runs every dashboard aggregate concurrently and waits for all of them.
func (s *aggregationService) Dashboard(ctx context.Context, ownerID string, window domain.Window) (*domain.DashboardSummary, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{
		Window:       window,
		PeriodCounts: make([]domain.PeriodCount, len(domain.Periods)),
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.Balance(gctx, ownerID, window.Start, window.End)
		summary.Totals = totals
		return err
	})
	for i, period := range domain.Periods {
		i, period := i, period
		g.Go(func() error {
			pc, err := s.CountByPeriod(gctx, ownerID, period, &window.End)
			if err != nil {
				return err
			}
			summary.PeriodCounts[i] = *pc
			return nil
		})
	}
	g.Go(func() error {
		groups, err := s.CountByStatus(gctx, ownerID)
		summary.ByStatus = groups
		return err
	})
	g.Go(func() error {
		groups, err := s.CountBySenderBank(gctx, ownerID)
		summary.BySenderBank = groups
		return err
	})
	g.Go(func() error {
		groups, err := s.CountByRecipientBank(gctx, ownerID)
		summary.ByRecipientBank = groups
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard summary", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Dashboard summary generated successfully",
		slog.String("owner_id", ownerID),
		slog.String("start", window.Start.Format(time.RFC3339)),
		slog.String("end", window.End.Format(time.RFC3339)))
	return summary, nil
}
