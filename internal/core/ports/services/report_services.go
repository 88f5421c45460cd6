package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	"github.com/SscSPs/personal_finance_app/internal/core/report"
)

// RenderedReport is a serialized report ready to be sent as an attachment.
type RenderedReport struct {
	FileName    string
	ContentType string
	Content     []byte
}

// DocumentRenderer serializes an assembled report document.
type DocumentRenderer interface {
	Render(ctx context.Context, doc report.Document) ([]byte, error)
	ContentType() string
	Extension() string
}

// ReportService assembles and renders the downloadable reports.
type ReportService interface {
	// TransactionsReport exports the transactions matching params. Without
	// dates the window defaults to the last month ending now.
	TransactionsReport(ctx context.Context, ownerID string, params filter.Params) (*RenderedReport, error)

	// CategoryReport renders the per-category distribution of one type. A nil
	// window defaults to the last month ending now.
	CategoryReport(ctx context.Context, ownerID string, typeCode domain.TypeCode, window *domain.Window) (*RenderedReport, error)

	// DashboardReport renders the summary and chart sheets. A nil window
	// defaults to the last year ending now.
	DashboardReport(ctx context.Context, ownerID string, window *domain.Window) (*RenderedReport, error)
}
