package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statsHandler serves the aggregation endpoints.
type statsHandler struct {
	aggregationService portssvc.AggregationService
	now                func() time.Time
}

func newStatsHandler(as portssvc.AggregationService) *statsHandler {
	return &statsHandler{aggregationService: as, now: time.Now}
}

// RegisterStatsRoutes registers the statistics routes under /transactions/stats.
func RegisterStatsRoutes(rg *gin.RouterGroup, aggregationService portssvc.AggregationService) {
	h := newStatsHandler(aggregationService)

	stats := rg.Group("/transactions/stats")
	{
		stats.GET("/count-by-period", h.countByPeriod)
		stats.GET("/amount-by-type", h.amountByType)
		stats.GET("/balance", h.balance)
		stats.GET("/count-by-status", h.countByStatus)
		stats.GET("/count-by-bank", h.countByBank)
		stats.GET("/amount-by-category", h.amountByCategory)
	}
}

// countByPeriod godoc
// @Summary Count transactions in a look-back period
// @Tags stats
// @Produce json
// @Param period query string true "week, month, quarter or year"
// @Param baseDate query string false "End of the period, defaults to now"
// @Success 200 {object} dto.PeriodCountResponse
// @Failure 400 {object} map[string]string "Invalid period or date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to count transactions"
// @Security BearerAuth
// @Router /transactions/stats/count-by-period [get]
func (h *statsHandler) countByPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var q dto.CountByPeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params for CountByPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := domain.ParsePeriod(q.Period)
	if err != nil {
		writeServiceError(c, logger, err, "Period", "Failed to count transactions")
		return
	}
	anchor, err := dto.ParseDateParam(q.BaseDate, false)
	if err != nil {
		writeServiceError(c, logger, err, "Period", "Failed to count transactions")
		return
	}

	pc, err := h.aggregationService.CountByPeriod(c.Request.Context(), ownerID, period, anchor)
	if err != nil {
		writeServiceError(c, logger, err, "Period", "Failed to count transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodCountResponse(pc))
}

// amountByType godoc
// @Summary Sum transaction amounts of one type
// @Tags stats
// @Produce json
// @Param typeCode query string true "INCOME, EXPENSE or TRANSFER"
// @Param startDate query string false "Window start, defaults to one month before now"
// @Param endDate query string false "Window end, defaults to now"
// @Success 200 {object} dto.AmountResponse
// @Failure 400 {object} map[string]string "Invalid type or range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to sum transactions"
// @Security BearerAuth
// @Router /transactions/stats/amount-by-type [get]
func (h *statsHandler) amountByType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var q dto.AmountByTypeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params for AmountByType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	code, err := domain.ParseTypeCode(q.TypeCode)
	if err != nil {
		writeServiceError(c, logger, err, "Type", "Failed to sum transactions")
		return
	}
	w, err := q.Window(domain.LastMonth(h.now()))
	if err != nil {
		writeServiceError(c, logger, err, "Type", "Failed to sum transactions")
		return
	}

	amount, err := h.aggregationService.SumByType(c.Request.Context(), ownerID, code, w.Start, w.End)
	if err != nil {
		writeServiceError(c, logger, err, "Type", "Failed to sum transactions")
		return
	}
	c.JSON(http.StatusOK, dto.AmountResponse{TypeCode: string(code), StartDate: w.Start, EndDate: w.End, Amount: amount})
}

// balance godoc
// @Summary Income, outflow and balance over a window
// @Tags stats
// @Produce json
// @Param startDate query string false "Window start, defaults to one month before now"
// @Param endDate query string false "Window end, defaults to now"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Security BearerAuth
// @Router /transactions/stats/balance [get]
func (h *statsHandler) balance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var q dto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params for Balance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	w, err := q.Window(domain.LastMonth(h.now()))
	if err != nil {
		writeServiceError(c, logger, err, "Balance", "Failed to compute balance")
		return
	}

	totals, err := h.aggregationService.Balance(c.Request.Context(), ownerID, w.Start, w.End)
	if err != nil {
		writeServiceError(c, logger, err, "Balance", "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(w, totals))
}

// countByStatus godoc
// @Summary Count transactions per status
// @Tags stats
// @Produce json
// @Success 200 {array} domain.LabeledCount
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to count transactions"
// @Security BearerAuth
// @Router /transactions/stats/count-by-status [get]
func (h *statsHandler) countByStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	groups, err := h.aggregationService.CountByStatus(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, logger, err, "Status", "Failed to count transactions")
		return
	}
	c.JSON(http.StatusOK, groups.Rows())
}

// countByBank godoc
// @Summary Count transactions per sender and recipient bank
// @Tags stats
// @Produce json
// @Success 200 {object} dto.CountByBankResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to count transactions"
// @Security BearerAuth
// @Router /transactions/stats/count-by-bank [get]
func (h *statsHandler) countByBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	senders, err := h.aggregationService.CountBySenderBank(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, logger, err, "Bank", "Failed to count transactions")
		return
	}
	recipients, err := h.aggregationService.CountByRecipientBank(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, logger, err, "Bank", "Failed to count transactions")
		return
	}
	c.JSON(http.StatusOK, dto.CountByBankResponse{SenderBanks: senders.Rows(), RecipientBanks: recipients.Rows()})
}

// amountByCategory godoc
// @Summary Distribution of one transaction type across categories
// @Description Without dates the whole history of the type is used
// @Tags stats
// @Produce json
// @Param typeCode query string true "INCOME, EXPENSE or TRANSFER"
// @Param startDate query string false "Window start"
// @Param endDate query string false "Window end"
// @Success 200 {object} dto.AmountByCategoryResponse
// @Failure 400 {object} map[string]string "Invalid type or range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to sum transactions"
// @Security BearerAuth
// @Router /transactions/stats/amount-by-category [get]
func (h *statsHandler) amountByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var q dto.CategoryReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params for AmountByCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	code, err := domain.ParseTypeCode(q.TypeCode)
	if err != nil {
		writeServiceError(c, logger, err, "Type", "Failed to sum transactions")
		return
	}
	w, err := q.OptionalWindow(domain.LastMonth(h.now()))
	if err != nil {
		writeServiceError(c, logger, err, "Type", "Failed to sum transactions")
		return
	}

	groups, err := h.aggregationService.SumByCategory(c.Request.Context(), ownerID, code, w)
	if err != nil {
		writeServiceError(c, logger, err, "Category", "Failed to sum transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToAmountByCategoryResponse(code, groups))
}
