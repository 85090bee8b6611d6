package http

import (
	errs "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
	"github.com/promobandhu/admin-backend/internal/handlers/dto"
	"github.com/promobandhu/admin-backend/internal/services"
)

// SubscriptionHandler lida com requisições HTTP de assinaturas
type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

// NewSubscriptionHandler cria um novo SubscriptionHandler
func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// ListSubscriptions lista assinaturas com filtros
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	filters := repositories.SubscriptionFilters{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 20),
	}
	if businessID := c.Query("business_id"); businessID != "" {
		filters.BusinessID = &businessID
	}
	if status := c.Query("status"); status != "" {
		s := entities.SubscriptionStatus(status)
		filters.Status = &s
	}

	subscriptions, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToSubscriptionResponses(subscriptions, time.Now())})
}

// GetSubscription busca uma assinatura por ID
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	subscription, err := h.subscriptionService.GetSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription, time.Now()))
}

// CreateSubscription cria uma assinatura para um negócio
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	subscription, err := h.subscriptionService.CreateSubscription(c.Request.Context(), services.CreateSubscriptionInput{
		BusinessID: req.BusinessID,
		Plan:       entities.PlanTier(req.Plan),
		Status:     entities.SubscriptionStatus(req.Status),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TrialDays:  req.TrialDays,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubscriptionResponse(subscription, time.Now()))
}

// UpdateSubscription aplica uma substituição parcial de campos.
// Alterar status por aqui é uma edição direta, sem os efeitos do
// endpoint de cancelamento.
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input := services.UpdateSubscriptionInput{
		TrialStartsAt:    req.TrialStartsAt,
		TrialEndsAt:      req.TrialEndsAt,
		CurrentPeriodEnd: req.CurrentPeriodEnd,
		NextRenewalAt:    req.NextRenewalAt,
	}
	if req.Plan != nil {
		plan := entities.PlanTier(*req.Plan)
		input.Plan = &plan
	}
	if req.Status != nil {
		status := entities.SubscriptionStatus(*req.Status)
		input.Status = &status
	}

	subscription, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription, time.Now()))
}

// CancelSubscription executa a transição dedicada para cancelled.
// Cancelar de novo não é erro para o chamador: responde 200 com o
// registro intacto e um aviso.
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	subscription, err := h.subscriptionService.CancelSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, entities.ErrSubscriptionAlreadyCancelled) && subscription != nil {
			c.JSON(http.StatusOK, dto.CancelSubscriptionResponse{
				Subscription: dto.ToSubscriptionResponse(subscription, time.Now()),
				Warning:      dto.T(c, "warning.subscription_already_cancelled"),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelSubscriptionResponse{
		Subscription: dto.ToSubscriptionResponse(subscription, time.Now()),
	})
}

// DeleteSubscription remove uma assinatura definitivamente
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
