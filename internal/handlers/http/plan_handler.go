package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promobandhu/admin-backend/internal/handlers/dto"
	"github.com/promobandhu/admin-backend/internal/services"
)

// PlanHandler lida com requisições HTTP de planos de cobrança
type PlanHandler struct {
	planService *services.PlanService
}

// NewPlanHandler cria um novo PlanHandler
func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// ListPlans lista todos os planos
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToPlanResponses(plans)})
}

// GetPlan busca um plano por ID
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.planService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

// CreatePlan cria um novo plano
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req dto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), req.ToPlanEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlanResponse(plan))
}

// UpdatePlan substitui os campos de um plano existente
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req dto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), c.Param("id"), req.ToPlanEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

// DeletePlan remove um plano
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
