package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/SscSPs/personal_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

const reportExportedEvent = "report_exported"

// reportHandler serves the downloadable workbooks.
type reportHandler struct {
	reportService portssvc.ReportService
	posthog       *utils.PosthogClientWrapper
	now           func() time.Time
}

func newReportHandler(rs portssvc.ReportService, posthog *utils.PosthogClientWrapper) *reportHandler {
	return &reportHandler{reportService: rs, posthog: posthog, now: time.Now}
}

// RegisterReportRoutes registers the report export routes. A nil limiter
// leaves the exports unthrottled.
func RegisterReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportService, exportLimiter *limiter.Limiter, posthog *utils.PosthogClientWrapper) {
	h := newReportHandler(reportService, posthog)

	reports := rg.Group("/reports")
	if exportLimiter != nil {
		reports.Use(middleware.RateLimit(exportLimiter))
	}
	{
		reports.GET("/transactions.xlsx", h.exportTransactions)
		reports.GET("/categories.xlsx", h.exportCategories)
		reports.GET("/dashboard.xlsx", h.exportDashboard)
	}
}

// exportTransactions godoc
// @Summary Export transactions as a workbook
// @Description Exports the transactions matching the filters. Without dates the last month is exported.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   senderBankId query string false "Sender bank ID"
// @Param   recipientBankId query string false "Recipient bank ID"
// @Param   dateStart query string false "Earliest operation date"
// @Param   dateEnd query string false "Latest operation date"
// @Param   statusId query string false "Status ID"
// @Param   inn query string false "Recipient INN"
// @Param   amountMin query string false "Minimum amount"
// @Param   amountMax query string false "Maximum amount"
// @Param   transactionTypeId query string false "Transaction type ID"
// @Param   categoryId query string false "Category ID"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many exports"
// @Failure 500 {object} map[string]string "Failed to render report"
// @Security BearerAuth
// @Router /reports/transactions.xlsx [get]
func (h *reportHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var q dto.TransactionFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params for transaction export", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	params, err := q.ToFilterParams()
	if err != nil {
		writeServiceError(c, logger, err, "Report", "Failed to export transactions")
		return
	}

	rendered, err := h.reportService.TransactionsReport(c.Request.Context(), ownerID, params)
	if err != nil {
		writeServiceError(c, logger, err, "Report", "Failed to export transactions")
		return
	}
	h.send(c, logger, "transactions", rendered)
}

// exportCategories godoc
// @Summary Export the category distribution as a workbook
// @Description Without dates the last month is used
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param typeCode query string true "INCOME, EXPENSE or TRANSFER"
// @Param startDate query string false "Window start"
// @Param endDate query string false "Window end"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid type or range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many exports"
// @Failure 500 {object} map[string]string "Failed to render report"
// @Security BearerAuth
// @Router /reports/categories.xlsx [get]
func (h *reportHandler) exportCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var q dto.CategoryReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params for category export", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	code, err := domain.ParseTypeCode(q.TypeCode)
	if err != nil {
		writeServiceError(c, logger, err, "Report", "Failed to export categories")
		return
	}
	w, err := q.OptionalWindow(domain.LastMonth(h.now()))
	if err != nil {
		writeServiceError(c, logger, err, "Report", "Failed to export categories")
		return
	}

	rendered, err := h.reportService.CategoryReport(c.Request.Context(), ownerID, code, w)
	if err != nil {
		writeServiceError(c, logger, err, "Report", "Failed to export categories")
		return
	}
	h.send(c, logger, "categories", rendered)
}

// exportDashboard godoc
// @Summary Export the dashboard as a workbook
// @Description Without dates the last year is used
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string false "Window start"
// @Param endDate query string false "Window end"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many exports"
// @Failure 500 {object} map[string]string "Failed to render report"
// @Security BearerAuth
// @Router /reports/dashboard.xlsx [get]
func (h *reportHandler) exportDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var q dto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params for dashboard export", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	w, err := q.OptionalWindow(domain.LastYear(h.now()))
	if err != nil {
		writeServiceError(c, logger, err, "Report", "Failed to export dashboard")
		return
	}

	rendered, err := h.reportService.DashboardReport(c.Request.Context(), ownerID, w)
	if err != nil {
		writeServiceError(c, logger, err, "Report", "Failed to export dashboard")
		return
	}
	h.send(c, logger, "dashboard", rendered)
}

func (h *reportHandler) send(c *gin.Context, logger *slog.Logger, kind string, rendered *portssvc.RenderedReport) {
	logger.Info("Report exported",
		slog.String("report", kind),
		slog.String("file_name", rendered.FileName),
		slog.Int("size_bytes", len(rendered.Content)))
	middleware.PosthogEvent(c, h.posthog, reportExportedEvent, map[string]any{
		"report":     kind,
		"size_bytes": len(rendered.Content),
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.FileName))
	c.Data(http.StatusOK, rendered.ContentType, rendered.Content)
}
