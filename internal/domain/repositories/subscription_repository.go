package repositories

import (
	"context"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// SubscriptionRepository define a interface para persistência de assinaturas
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entities.Subscription) error
	FindByID(ctx context.Context, id string) (*entities.Subscription, error)
	Update(ctx context.Context, sub *entities.Subscription) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters SubscriptionFilters) ([]*entities.Subscription, error)
}

// SubscriptionFilters contém filtros para listagem de assinaturas
type SubscriptionFilters struct {
	BusinessID *string
	Status     *entities.SubscriptionStatus
	Page       int // Página (começa em 1)
	PageSize   int // Itens por página (default: 20, max: 100)
}
