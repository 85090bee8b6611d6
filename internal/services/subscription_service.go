package services

import (
	"context"
	"time"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
	"github.com/promobandhu/admin-backend/internal/domain/ports"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// SubscriptionService contém a lógica de negócio do ciclo de vida de
// assinaturas
type SubscriptionService struct {
	subRepo      repositories.SubscriptionRepository
	businessRepo repositories.BusinessRepository
	logger       ports.Logger
	now          func() time.Time
}

// NewSubscriptionService cria um novo SubscriptionService
func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	businessRepo repositories.BusinessRepository,
	logger ports.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subRepo:      subRepo,
		businessRepo: businessRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateSubscriptionInput representa os dados para criar uma assinatura.
// Ou o chamador informa StartDate/EndDate explícitos, ou TrialDays
// (default 14) para derivar a janela de trial.
type CreateSubscriptionInput struct {
	BusinessID string
	Plan       entities.PlanTier
	Status     entities.SubscriptionStatus
	StartDate  *time.Time
	EndDate    *time.Time
	TrialDays  *int
}

// UpdateSubscriptionInput representa uma atualização parcial.
// Campos nil são mantidos. Atualizar status diretamente NÃO passa
// pelos efeitos do cancelamento dedicado — são operações distintas.
type UpdateSubscriptionInput struct {
	Plan             *entities.PlanTier
	Status           *entities.SubscriptionStatus
	TrialStartsAt    *time.Time
	TrialEndsAt      *time.Time
	CurrentPeriodEnd *time.Time
	NextRenewalAt    *time.Time
}

// CreateSubscription cria uma assinatura para um negócio
func (s *SubscriptionService) CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*entities.Subscription, error) {
	business, err := s.businessRepo.FindByID(ctx, input.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, errors.ErrBusinessNotFound
	}

	sub := &entities.Subscription{
		BusinessID: input.BusinessID,
		Plan:       input.Plan,
		Status:     input.Status,
	}

	now := s.now()

	switch {
	case input.StartDate != nil || input.EndDate != nil:
		// Caminho explícito: ambas as datas são obrigatórias e o fim
		// precisa ser estritamente posterior ao início
		if input.StartDate == nil || input.EndDate == nil {
			return nil, entities.ErrSubscriptionDateOrder
		}
		if !input.EndDate.After(*input.StartDate) {
			return nil, entities.ErrSubscriptionDateOrder
		}
		if input.Status == entities.SubscriptionStatusTrial {
			sub.TrialStartsAt = input.StartDate
			sub.TrialEndsAt = input.EndDate
		} else {
			sub.CurrentPeriodEnd = input.EndDate
		}
		if input.Status != entities.SubscriptionStatusCancelled {
			sub.NextRenewalAt = input.EndDate
		}

	case input.Status == entities.SubscriptionStatusTrial:
		// Caminho implícito: janela de trial derivada de TrialDays
		days := entities.DefaultTrialDays
		if input.TrialDays != nil && *input.TrialDays > 0 {
			days = *input.TrialDays
		}
		start := now
		end := now.AddDate(0, 0, days)
		sub.TrialStartsAt = &start
		sub.TrialEndsAt = &end
		sub.NextRenewalAt = &end
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("subscription created",
		"id", sub.ID,
		"business_id", sub.BusinessID,
		"plan", string(sub.Plan),
		"status", string(sub.Status),
	)
	return sub, nil
}

// GetSubscription busca uma assinatura por ID
func (s *SubscriptionService) GetSubscription(ctx context.Context, id string) (*entities.Subscription, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.ErrSubscriptionNotFound
	}
	return sub, nil
}

// ListSubscriptions lista assinaturas com filtros
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, filters repositories.SubscriptionFilters) ([]*entities.Subscription, error) {
	return s.subRepo.List(ctx, filters)
}

// UpdateSubscription aplica uma substituição parcial de campos
func (s *SubscriptionService) UpdateSubscription(ctx context.Context, id string, input UpdateSubscriptionInput) (*entities.Subscription, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.ErrSubscriptionNotFound
	}

	if input.Plan != nil {
		sub.Plan = *input.Plan
	}
	if input.Status != nil {
		sub.Status = *input.Status
	}
	if input.TrialStartsAt != nil {
		sub.TrialStartsAt = input.TrialStartsAt
	}
	if input.TrialEndsAt != nil {
		sub.TrialEndsAt = input.TrialEndsAt
	}
	if input.CurrentPeriodEnd != nil {
		sub.CurrentPeriodEnd = input.CurrentPeriodEnd
	}
	if input.NextRenewalAt != nil {
		sub.NextRenewalAt = input.NextRenewalAt
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	sub.UpdatedAt = s.now()
	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	return s.subRepo.FindByID(ctx, id)
}

// CancelSubscription executa a transição dedicada para cancelled.
// Cancelar uma assinatura já cancelada não altera nada — o chamador
// recebe ErrSubscriptionAlreadyCancelled junto com o registro atual
// para tratar como aviso informativo.
func (s *SubscriptionService) CancelSubscription(ctx context.Context, id string) (*entities.Subscription, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.ErrSubscriptionNotFound
	}

	if err := sub.Cancel(s.now()); err != nil {
		return sub, err
	}

	sub.UpdatedAt = s.now()
	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("subscription cancelled", "id", sub.ID, "business_id", sub.BusinessID)
	return s.subRepo.FindByID(ctx, id)
}

// DeleteSubscription remove uma assinatura definitivamente
func (s *SubscriptionService) DeleteSubscription(ctx context.Context, id string) error {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return errors.ErrSubscriptionNotFound
	}
	return s.subRepo.Delete(ctx, id)
}
