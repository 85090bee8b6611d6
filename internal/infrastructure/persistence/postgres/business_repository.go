package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// BusinessRepository implementa repositories.BusinessRepository
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository cria um novo BusinessRepository
func NewBusinessRepository(db *gorm.DB) repositories.BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*entities.Business, error) {
	var model BusinessModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toBusinessEntity(&model), nil
}

func (r *BusinessRepository) List(ctx context.Context, filters repositories.BusinessFilters) ([]*entities.Business, error) {
	var models []*BusinessModel

	db := getDB(ctx, r.db)
	query := db.Model(&BusinessModel{})

	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	query = query.Order("name").Limit(pageSize).Offset((page - 1) * pageSize)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	businesses := make([]*entities.Business, len(models))
	for i, model := range models {
		businesses[i] = toBusinessEntity(model)
	}
	return businesses, nil
}

func toBusinessEntity(model *BusinessModel) *entities.Business {
	return &entities.Business{
		ID:        model.ID,
		Name:      model.Name,
		City:      model.City,
		Status:    entities.BusinessStatus(model.Status),
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}
