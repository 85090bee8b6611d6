package repositories

import (
	"context"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// PlanRepository define a interface para persistência de planos de cobrança
type PlanRepository interface {
	Create(ctx context.Context, plan *entities.Plan) error
	FindByID(ctx context.Context, id string) (*entities.Plan, error)
	List(ctx context.Context) ([]*entities.Plan, error)
	Update(ctx context.Context, plan *entities.Plan) error
	Delete(ctx context.Context, id string) error
}
