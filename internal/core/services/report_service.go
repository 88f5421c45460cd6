package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/core/report"
)

// reportService implements the ReportService interface
type reportService struct {
	BaseService
	txnRepo     portsrepo.TransactionReader
	aggregation portssvc.AggregationService
	renderer    portssvc.DocumentRenderer
}

// ReportServiceOption is a functional option for configuring the report service
type ReportServiceOption func(*reportService)

// WithReportClock overrides the clock used for default windows and file names.
func WithReportClock(clock func() time.Time) ReportServiceOption {
	return func(s *reportService) {
		s.Clock = clock
	}
}

// NewReportService creates a new report service with the provided options
func NewReportService(
	txnRepo portsrepo.TransactionReader,
	aggregation portssvc.AggregationService,
	renderer portssvc.DocumentRenderer,
	options ...ReportServiceOption,
) portssvc.ReportService {
	svc := &reportService{
		txnRepo:     txnRepo,
		aggregation: aggregation,
		renderer:    renderer,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportService implements the ReportService interface
var _ portssvc.ReportService = (*reportService)(nil)

// exportWindow fills missing date bounds from the last month ending now so
// that the listed rows and the totals cover the same range.
func (s *reportService) exportWindow(params filter.Params) (filter.Params, domain.Window) {
	w := domain.LastMonth(s.Now())
	switch {
	case params.DateStart == nil && params.DateEnd == nil:
	case params.DateStart == nil:
		w = domain.LastMonth(*params.DateEnd)
	case params.DateEnd == nil:
		w.Start = *params.DateStart
	default:
		w = domain.Window{Start: *params.DateStart, End: *params.DateEnd}
	}
	start, end := w.Start, w.End
	params.DateStart, params.DateEnd = &start, &end
	return params, w
}

// TransactionsReport exports the owner's transactions matching params.
func (s *reportService) TransactionsReport(ctx context.Context, ownerID string, params filter.Params) (*portssvc.RenderedReport, error) {
	params, window := s.exportWindow(params)
	f, err := filter.Compose(ownerID, params)
	if err != nil {
		return nil, err
	}

	txns, _, err := s.txnRepo.QueryTransactions(ctx, f, filter.DefaultSort(), nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to query transactions for export", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	totals, err := s.aggregation.Balance(ctx, ownerID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	doc := report.TransactionsReport(report.TransactionsInput{Window: window, Transactions: txns, Totals: totals})
	rendered, err := s.render(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transaction export generated successfully",
		slog.String("owner_id", ownerID),
		slog.Int("row_count", len(txns)))
	return rendered, nil
}

// CategoryReport renders the per-category distribution of one transaction type.
func (s *reportService) CategoryReport(ctx context.Context, ownerID string, typeCode domain.TypeCode, window *domain.Window) (*portssvc.RenderedReport, error) {
	typeCode, err := domain.ParseTypeCode(string(typeCode))
	if err != nil {
		return nil, err
	}
	w := domain.LastMonth(s.Now())
	if window != nil {
		w = *window
	}

	groups, err := s.aggregation.SumByCategory(ctx, ownerID, typeCode, &w)
	if err != nil {
		return nil, err
	}
	totals, err := s.aggregation.Balance(ctx, ownerID, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	doc := report.CategoryReport(report.CategoryInput{Window: w, TypeCode: typeCode, Groups: groups, Totals: totals})
	rendered, err := s.render(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Category report generated successfully",
		slog.String("owner_id", ownerID),
		slog.String("type_code", string(typeCode)),
		slog.Int("category_count", groups.Len()))
	return rendered, nil
}

// DashboardReport renders the dashboard summary and chart sheets.
func (s *reportService) DashboardReport(ctx context.Context, ownerID string, window *domain.Window) (*portssvc.RenderedReport, error) {
	w := domain.LastYear(s.Now())
	if window != nil {
		w = *window
	}
	summary, err := s.aggregation.Dashboard(ctx, ownerID, w)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, report.DashboardReport(*summary))
}

func (s *reportService) render(ctx context.Context, doc report.Document) (*portssvc.RenderedReport, error) {
	content, err := s.renderer.Render(ctx, doc)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report", slog.String("report", doc.Name))
		return nil, fmt.Errorf("failed to render %s report: %w", doc.Name, err)
	}
	return &portssvc.RenderedReport{
		FileName:    fmt.Sprintf("%s_%s.%s", doc.Name, s.Now().Format("20060102_150405"), s.renderer.Extension()),
		ContentType: s.renderer.ContentType(),
		Content:     content,
	}, nil
}
