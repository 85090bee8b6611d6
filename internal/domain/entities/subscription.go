package entities

import (
	"errors"
	"time"
)

// PlanTier é o nível de plano de uma assinatura.
// Ordenado por benefício crescente: basic < standard < premium.
type PlanTier string

const (
	PlanTierBasic    PlanTier = "basic"
	PlanTierStandard PlanTier = "standard"
	PlanTierPremium  PlanTier = "premium"
)

// SubscriptionStatus é o estado do ciclo de vida de uma assinatura
type SubscriptionStatus string

const (
	SubscriptionStatusTrial     SubscriptionStatus = "trial"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// DefaultTrialDays é a duração do trial quando o chamador não informa
// datas explícitas nem um trialDays próprio
const DefaultTrialDays = 14

var (
	ErrInvalidPlanTier              = errors.New("invalid plan tier")
	ErrInvalidSubscriptionStatus    = errors.New("invalid subscription status")
	ErrSubscriptionAlreadyCancelled = errors.New("subscription is already cancelled")
	ErrSubscriptionDateOrder        = errors.New("end date must be after start date")
	ErrSubscriptionBusinessRequired = errors.New("business is required")
)

// Subscription é o registro de assinatura de um negócio: nível de
// plano, estado do ciclo de vida e janelas de tempo derivadas.
// `cancelled` é terminal — não existe transição de saída.
type Subscription struct {
	ID               string
	BusinessID       string
	Plan             PlanTier
	Status           SubscriptionStatus
	TrialStartsAt    *time.Time
	TrialEndsAt      *time.Time
	CurrentPeriodEnd *time.Time
	NextRenewalAt    *time.Time
	CancelledAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsCancelled verifica se a assinatura está no estado terminal
func (s *Subscription) IsCancelled() bool {
	return s.Status == SubscriptionStatusCancelled
}

// Cancel transiciona a assinatura para cancelled.
// Retorna ErrSubscriptionAlreadyCancelled sem alterar nada se a
// assinatura já estiver cancelada — o estado é terminal.
func (s *Subscription) Cancel(now time.Time) error {
	if s.IsCancelled() {
		return ErrSubscriptionAlreadyCancelled
	}
	s.Status = SubscriptionStatusCancelled
	s.CancelledAt = &now
	s.NextRenewalAt = nil
	return nil
}

// TrialDaysRemaining retorna os dias restantes de trial:
// ceil((trialEndsAt - now) / 1 dia), nunca negativo.
// Retorna nil quando a assinatura não tem fim de trial definido.
func (s *Subscription) TrialDaysRemaining(now time.Time) *int {
	if s.TrialEndsAt == nil {
		return nil
	}
	remaining := s.TrialEndsAt.Sub(now)
	if remaining <= 0 {
		zero := 0
		return &zero
	}
	days := int((remaining + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	return &days
}

// Validate valida regras de negócio da entidade Subscription
func (s *Subscription) Validate() error {
	if s.BusinessID == "" {
		return ErrSubscriptionBusinessRequired
	}
	switch s.Plan {
	case PlanTierBasic, PlanTierStandard, PlanTierPremium:
	default:
		return ErrInvalidPlanTier
	}
	switch s.Status {
	case SubscriptionStatusTrial, SubscriptionStatusActive, SubscriptionStatusCancelled:
	default:
		return ErrInvalidSubscriptionStatus
	}
	if s.TrialStartsAt != nil && s.TrialEndsAt != nil && !s.TrialEndsAt.After(*s.TrialStartsAt) {
		return ErrSubscriptionDateOrder
	}
	return nil
}

// PlanBenefits descreve os benefícios de um nível de plano
type PlanBenefits struct {
	Offers   int
	SMS      int
	Features []string
}

// tierBenefits é a tabela estática de benefícios por nível de plano
var tierBenefits = map[PlanTier]PlanBenefits{
	PlanTierBasic: {
		Offers:   5,
		SMS:      400,
		Features: []string{"Business profile", "5 active offers", "400 SMS/month"},
	},
	PlanTierStandard: {
		Offers:   10,
		SMS:      600,
		Features: []string{"Business profile", "10 active offers", "600 SMS/month", "Featured listing"},
	},
	PlanTierPremium: {
		Offers:   20,
		SMS:      1000,
		Features: []string{"Business profile", "20 active offers", "1000 SMS/month", "Featured listing", "Priority support"},
	},
}

// BenefitsFor retorna os benefícios do nível de plano
func BenefitsFor(tier PlanTier) PlanBenefits {
	return tierBenefits[tier]
}

// Label retorna o rótulo de apresentação do nível de plano
func (t PlanTier) Label() string {
	switch t {
	case PlanTierBasic:
		return "Basic"
	case PlanTierStandard:
		return "Standard"
	case PlanTierPremium:
		return "Premium"
	}
	return string(t)
}

// Label retorna o rótulo de apresentação do status
func (s SubscriptionStatus) Label() string {
	switch s {
	case SubscriptionStatusTrial:
		return "Trial"
	case SubscriptionStatusActive:
		return "Active"
	case SubscriptionStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}
