package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterReferenceRoutes registers the reference data listing.
func RegisterReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceService) {
	rg.GET("/reference", getReferenceData(referenceService))
}

// getReferenceData godoc
// @Summary List statuses, transaction types and person types
// @Tags reference
// @Produce json
// @Success 200 {object} dto.ReferenceDataResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load reference data"
// @Security BearerAuth
// @Router /reference [get]
func getReferenceData(referenceService portssvc.ReferenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		data, err := referenceService.GetReferenceData(c.Request.Context())
		if err != nil {
			writeServiceError(c, logger, err, "Reference data", "Failed to load reference data")
			return
		}
		c.JSON(http.StatusOK, dto.ToReferenceDataResponse(data))
	}
}
