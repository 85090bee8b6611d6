package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
	"github.com/promobandhu/admin-backend/internal/handlers/dto"
	"github.com/promobandhu/admin-backend/internal/services"
)

// ReportHandler lida com as leituras de relatório: negócios e SMS
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler cria um novo ReportHandler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ListBusinesses lista negócios com filtros
func (h *ReportHandler) ListBusinesses(c *gin.Context) {
	filters := repositories.BusinessFilters{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 20),
	}
	if status := c.Query("status"); status != "" {
		s := entities.BusinessStatus(status)
		filters.Status = &s
	}

	businesses, err := h.reportService.ListBusinesses(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToBusinessResponses(businesses)})
}

// GetBusiness busca um negócio por ID
func (h *ReportHandler) GetBusiness(c *gin.Context) {
	business, err := h.reportService.GetBusiness(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// SmsUsageByBusiness retorna o consumo acumulado de SMS por negócio
func (h *ReportHandler) SmsUsageByBusiness(c *gin.Context) {
	totals, err := h.reportService.SmsUsageByBusiness(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToBusinessSmsUsageResponses(totals)})
}

// SmsUsageMonthly retorna o consumo mensal de SMS da plataforma
func (h *ReportHandler) SmsUsageMonthly(c *gin.Context) {
	year := parseIntQuery(c, "year", 0)

	totals, err := h.reportService.SmsUsageMonthly(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToMonthlySmsUsageResponses(totals)})
}
