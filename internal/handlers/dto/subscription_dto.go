package dto

import (
	"time"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// CreateSubscriptionRequest representa a requisição para criar uma
// assinatura. As datas explícitas e trial_days são mutuamente
// exclusivas: quem informa start_date precisa informar end_date.
type CreateSubscriptionRequest struct {
	BusinessID string     `json:"business_id" binding:"required"`
	Plan       string     `json:"plan" binding:"required,oneof=basic standard premium"`
	Status     string     `json:"status" binding:"required,oneof=trial active cancelled"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	TrialDays  *int       `json:"trial_days" binding:"omitempty,min=1"`
}

// UpdateSubscriptionRequest representa uma atualização parcial de
// assinatura. Alterar status por aqui é uma edição direta — não passa
// pelos efeitos do endpoint de cancelamento.
type UpdateSubscriptionRequest struct {
	Plan             *string    `json:"plan" binding:"omitempty,oneof=basic standard premium"`
	Status           *string    `json:"status" binding:"omitempty,oneof=trial active cancelled"`
	TrialStartsAt    *time.Time `json:"trial_starts_at"`
	TrialEndsAt      *time.Time `json:"trial_ends_at"`
	CurrentPeriodEnd *time.Time `json:"current_period_end"`
	NextRenewalAt    *time.Time `json:"next_renewal_at"`
}

// PlanBenefitsResponse descreve os benefícios do nível de plano
type PlanBenefitsResponse struct {
	Offers   int      `json:"offers"`
	SMS      int      `json:"sms"`
	Features []string `json:"features"`
}

// SubscriptionResponse representa a resposta de uma assinatura
type SubscriptionResponse struct {
	ID                 string               `json:"id"`
	BusinessID         string               `json:"business_id"`
	Plan               string               `json:"plan"`
	PlanLabel          string               `json:"plan_label"`
	Status             string               `json:"status"`
	StatusLabel        string               `json:"status_label"`
	TrialStartsAt      *time.Time           `json:"trial_starts_at,omitempty"`
	TrialEndsAt        *time.Time           `json:"trial_ends_at,omitempty"`
	TrialDaysRemaining *int                 `json:"trial_days_remaining,omitempty"`
	CurrentPeriodEnd   *time.Time           `json:"current_period_end,omitempty"`
	NextRenewalAt      *time.Time           `json:"next_renewal_at,omitempty"`
	CancelledAt        *time.Time           `json:"cancelled_at,omitempty"`
	Benefits           PlanBenefitsResponse `json:"benefits"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// CancelSubscriptionResponse embute a assinatura e um aviso opcional
// para o caso de cancelamento repetido
type CancelSubscriptionResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Warning      string               `json:"warning,omitempty"`
}

// ToSubscriptionResponse converte uma entidade Subscription
func ToSubscriptionResponse(sub *entities.Subscription, now time.Time) SubscriptionResponse {
	benefits := entities.BenefitsFor(sub.Plan)

	return SubscriptionResponse{
		ID:                 sub.ID,
		BusinessID:         sub.BusinessID,
		Plan:               string(sub.Plan),
		PlanLabel:          sub.Plan.Label(),
		Status:             string(sub.Status),
		StatusLabel:        sub.Status.Label(),
		TrialStartsAt:      sub.TrialStartsAt,
		TrialEndsAt:        sub.TrialEndsAt,
		TrialDaysRemaining: sub.TrialDaysRemaining(now),
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		NextRenewalAt:      sub.NextRenewalAt,
		CancelledAt:        sub.CancelledAt,
		Benefits: PlanBenefitsResponse{
			Offers:   benefits.Offers,
			SMS:      benefits.SMS,
			Features: benefits.Features,
		},
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}

// ToSubscriptionResponses converte uma lista de Subscription
func ToSubscriptionResponses(subs []*entities.Subscription, now time.Time) []SubscriptionResponse {
	responses := make([]SubscriptionResponse, len(subs))
	for i, s := range subs {
		responses[i] = ToSubscriptionResponse(s, now)
	}
	return responses
}
