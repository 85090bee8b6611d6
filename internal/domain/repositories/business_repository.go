package repositories

import (
	"context"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// BusinessRepository define a interface de leitura de negócios.
// O cadastro de negócios é escrito por outro serviço; o admin só lê.
type BusinessRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Business, error)
	List(ctx context.Context, filters BusinessFilters) ([]*entities.Business, error)
}

// BusinessFilters contém filtros para listagem de negócios
type BusinessFilters struct {
	Status   *entities.BusinessStatus
	Page     int
	PageSize int
}
