package entities

import (
	"errors"
	"strings"
	"time"
)

// PlanStatus indica se um plano está disponível para venda
type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusInactive PlanStatus = "inactive"
)

// BillingType é a forma de cobrança de um plano
type BillingType string

const (
	BillingTypeOneTime   BillingType = "one_time"
	BillingTypeRecurring BillingType = "recurring"
)

// BillingCycle é o ciclo de cobrança de planos recorrentes
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
	BillingCycleWeekly  BillingCycle = "weekly"
	BillingCycleDaily   BillingCycle = "daily"
)

var (
	ErrPlanNameRequired       = errors.New("plan name is required")
	ErrInvalidPlanStatus      = errors.New("invalid plan status")
	ErrInvalidBillingType     = errors.New("invalid billing type")
	ErrBillingCycleRequired   = errors.New("billing cycle is required for recurring plans")
	ErrBillingCycleNotAllowed = errors.New("billing cycle only applies to recurring plans")
	ErrInvalidBillingCycle    = errors.New("invalid billing cycle")
	ErrNegativePlanAmount     = errors.New("plan amounts and limits must not be negative")
	ErrTopupOptionsNotAllowed = errors.New("topup options require allow_topups")
	ErrInvalidTopupOption     = errors.New("topup options must have positive amount and sms")
)

// TopupOption é um pacote avulso de SMS vendável junto a um plano
type TopupOption struct {
	Amount float64 `json:"amount"`
	SMS    int     `json:"sms"`
}

// Plan é um template de oferta vendável (nível de cobrança),
// distinto de Subscription, que é a instância viva por negócio.
type Plan struct {
	ID             string
	Name           string
	Description    string
	Status         PlanStatus
	BillingType    BillingType
	BillingCycle   *BillingCycle // apenas quando BillingType = recurring
	Amount         float64
	DiscountAmount float64
	SMSLimit       int
	OfferLimit     int
	IsPopular      bool
	SortOrder      int
	Features       []string
	AllowTopups    bool
	TopupOptions   []TopupOption // apenas quando AllowTopups
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate valida regras de negócio da entidade Plan
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrPlanNameRequired
	}

	switch p.Status {
	case PlanStatusActive, PlanStatusInactive:
	default:
		return ErrInvalidPlanStatus
	}

	switch p.BillingType {
	case BillingTypeOneTime:
		if p.BillingCycle != nil {
			return ErrBillingCycleNotAllowed
		}
	case BillingTypeRecurring:
		if p.BillingCycle == nil {
			return ErrBillingCycleRequired
		}
		switch *p.BillingCycle {
		case BillingCycleMonthly, BillingCycleYearly, BillingCycleWeekly, BillingCycleDaily:
		default:
			return ErrInvalidBillingCycle
		}
	default:
		return ErrInvalidBillingType
	}

	if p.Amount < 0 || p.DiscountAmount < 0 || p.SMSLimit < 0 || p.OfferLimit < 0 {
		return ErrNegativePlanAmount
	}

	if !p.AllowTopups && len(p.TopupOptions) > 0 {
		return ErrTopupOptionsNotAllowed
	}
	for _, opt := range p.TopupOptions {
		if opt.Amount <= 0 || opt.SMS <= 0 {
			return ErrInvalidTopupOption
		}
	}

	return nil
}
