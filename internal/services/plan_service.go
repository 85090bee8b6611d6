package services

import (
	"context"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
	"github.com/promobandhu/admin-backend/internal/domain/ports"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// PlanService contém a lógica de negócio para planos de cobrança
type PlanService struct {
	planRepo repositories.PlanRepository
	logger   ports.Logger
}

// NewPlanService cria um novo PlanService
func NewPlanService(planRepo repositories.PlanRepository, logger ports.Logger) *PlanService {
	return &PlanService{planRepo: planRepo, logger: logger}
}

// CreatePlan cria um novo plano
func (s *PlanService) CreatePlan(ctx context.Context, plan *entities.Plan) (*entities.Plan, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("plan created", "id", plan.ID, "name", plan.Name)
	return plan, nil
}

// GetPlan busca um plano por ID
func (s *PlanService) GetPlan(ctx context.Context, id string) (*entities.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.ErrPlanNotFound
	}
	return plan, nil
}

// ListPlans lista todos os planos ordenados por sort_order
func (s *PlanService) ListPlans(ctx context.Context) ([]*entities.Plan, error) {
	return s.planRepo.List(ctx)
}

// UpdatePlan substitui os campos de um plano existente
func (s *PlanService) UpdatePlan(ctx context.Context, id string, plan *entities.Plan) (*entities.Plan, error) {
	existing, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrPlanNotFound
	}

	plan.ID = id
	plan.CreatedAt = existing.CreatedAt
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	return s.planRepo.FindByID(ctx, id)
}

// DeletePlan remove um plano
func (s *PlanService) DeletePlan(ctx context.Context, id string) error {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if plan == nil {
		return errors.ErrPlanNotFound
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("plan deleted", "id", id, "name", plan.Name)
	return nil
}
