package dto

import (
	"time"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// TopupOptionDTO representa um pacote avulso de SMS de um plano
type TopupOptionDTO struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	SMS    int     `json:"sms" binding:"required,gt=0"`
}

// PlanRequest representa a requisição para criar ou substituir um plano
type PlanRequest struct {
	Name           string           `json:"name" binding:"required,min=2,max=255"`
	Description    string           `json:"description" binding:"omitempty,max=1000"`
	Status         string           `json:"status" binding:"required,oneof=active inactive"`
	BillingType    string           `json:"billing_type" binding:"required,oneof=one_time recurring"`
	BillingCycle   *string          `json:"billing_cycle" binding:"omitempty,oneof=monthly yearly weekly daily"`
	Amount         float64          `json:"amount" binding:"min=0"`
	DiscountAmount float64          `json:"discount_amount" binding:"min=0"`
	SMSLimit       int              `json:"sms_limit" binding:"min=0"`
	OfferLimit     int              `json:"offer_limit" binding:"min=0"`
	IsPopular      bool             `json:"is_popular"`
	SortOrder      int              `json:"sort_order"`
	Features       []string         `json:"features"`
	AllowTopups    bool             `json:"allow_topups"`
	TopupOptions   []TopupOptionDTO `json:"topup_options" binding:"omitempty,dive"`
}

// PlanResponse representa a resposta de um plano
type PlanResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Status         string           `json:"status"`
	BillingType    string           `json:"billing_type"`
	BillingCycle   *string          `json:"billing_cycle,omitempty"`
	Amount         float64          `json:"amount"`
	DiscountAmount float64          `json:"discount_amount"`
	SMSLimit       int              `json:"sms_limit"`
	OfferLimit     int              `json:"offer_limit"`
	IsPopular      bool             `json:"is_popular"`
	SortOrder      int              `json:"sort_order"`
	Features       []string         `json:"features"`
	AllowTopups    bool             `json:"allow_topups"`
	TopupOptions   []TopupOptionDTO `json:"topup_options,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToPlanEntity converte a requisição para a entidade Plan
func (r *PlanRequest) ToPlanEntity() *entities.Plan {
	plan := &entities.Plan{
		Name:           r.Name,
		Description:    r.Description,
		Status:         entities.PlanStatus(r.Status),
		BillingType:    entities.BillingType(r.BillingType),
		Amount:         r.Amount,
		DiscountAmount: r.DiscountAmount,
		SMSLimit:       r.SMSLimit,
		OfferLimit:     r.OfferLimit,
		IsPopular:      r.IsPopular,
		SortOrder:      r.SortOrder,
		Features:       r.Features,
		AllowTopups:    r.AllowTopups,
	}

	if r.BillingCycle != nil {
		cycle := entities.BillingCycle(*r.BillingCycle)
		plan.BillingCycle = &cycle
	}

	for _, opt := range r.TopupOptions {
		plan.TopupOptions = append(plan.TopupOptions, entities.TopupOption{
			Amount: opt.Amount,
			SMS:    opt.SMS,
		})
	}

	return plan
}

// ToPlanResponse converte uma entidade Plan
func ToPlanResponse(plan *entities.Plan) PlanResponse {
	response := PlanResponse{
		ID:             plan.ID,
		Name:           plan.Name,
		Description:    plan.Description,
		Status:         string(plan.Status),
		BillingType:    string(plan.BillingType),
		Amount:         plan.Amount,
		DiscountAmount: plan.DiscountAmount,
		SMSLimit:       plan.SMSLimit,
		OfferLimit:     plan.OfferLimit,
		IsPopular:      plan.IsPopular,
		SortOrder:      plan.SortOrder,
		Features:       plan.Features,
		AllowTopups:    plan.AllowTopups,
		CreatedAt:      plan.CreatedAt,
		UpdatedAt:      plan.UpdatedAt,
	}

	if plan.BillingCycle != nil {
		cycle := string(*plan.BillingCycle)
		response.BillingCycle = &cycle
	}

	for _, opt := range plan.TopupOptions {
		response.TopupOptions = append(response.TopupOptions, TopupOptionDTO{
			Amount: opt.Amount,
			SMS:    opt.SMS,
		})
	}

	return response
}

// ToPlanResponses converte uma lista de Plan
func ToPlanResponses(plans []*entities.Plan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = ToPlanResponse(p)
	}
	return responses
}
