package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests related to banks.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// RegisterBankRoutes registers the bank routes. Banks are shared by all owners.
func RegisterBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.GET("", h.listBanks)
		banks.POST("", h.createBank)
		banks.PUT("/:id", h.updateBank)
		banks.DELETE("/:id", h.deleteBank)
	}
}

// listBanks godoc
// @Summary List banks
// @Tags banks
// @Produce json
// @Success 200 {array} dto.BankResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list banks"
// @Security BearerAuth
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	banks, err := h.bankService.ListBanks(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Banks", "Failed to list banks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBankResponse(banks))
}

// createBank godoc
// @Summary Register a bank
// @Tags banks
// @Accept json
// @Produce json
// @Param bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "BIK already registered"
// @Failure 500 {object} map[string]string "Failed to create bank"
// @Security BearerAuth
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "Bank", "Failed to create bank")
		return
	}
	logger.Info("Bank created successfully", slog.String("bank_id", bank.BankID))
	c.JSON(http.StatusCreated, dto.ToBankResponse(bank))
}

// updateBank godoc
// @Summary Update a bank
// @Tags banks
// @Accept json
// @Produce json
// @Param id path string true "Bank ID"
// @Param bank body dto.UpdateBankRequest true "Fields to update"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 409 {object} map[string]string "BIK already registered"
// @Failure 500 {object} map[string]string "Failed to update bank"
// @Security BearerAuth
// @Router /banks/{id} [put]
func (h *bankHandler) updateBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("id")
	var req dto.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("bank_id", bankID))
	bank, err := h.bankService.UpdateBank(c.Request.Context(), bankID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Bank", "Failed to update bank")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

// deleteBank godoc
// @Summary Delete a bank
// @Tags banks
// @Param id path string true "Bank ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Bank is still referenced by transactions"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to delete bank"
// @Security BearerAuth
// @Router /banks/{id} [delete]
func (h *bankHandler) deleteBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("id")

	logger = logger.With(slog.String("bank_id", bankID))
	if err := h.bankService.DeleteBank(c.Request.Context(), bankID); err != nil {
		writeServiceError(c, logger, err, "Bank", "Failed to delete bank")
		return
	}
	logger.Info("Bank deleted successfully")
	c.Status(http.StatusNoContent)
}
