package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// SubscriptionRepository implementa repositories.SubscriptionRepository
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository cria um novo SubscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) repositories.SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *entities.Subscription) error {
	model := r.toModel(sub)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.Omit("Business").Create(model).Error; err != nil {
		return err
	}

	sub.ID = model.ID
	sub.CreatedAt = time.Unix(model.CreatedAt, 0)
	sub.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id string) (*entities.Subscription, error) {
	var model SubscriptionModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *entities.Subscription) error {
	model := r.toModel(sub)

	db := getDB(ctx, r.db)
	// Select("*") garante que campos limpos (ex: next_renewal_at)
	// sobrescrevam a coluna com NULL
	return db.Select("*").Omit("Business", "CreatedAt").Save(model).Error
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.Delete(&SubscriptionModel{}, "id = ?", id).Error
}

func (r *SubscriptionRepository) List(ctx context.Context, filters repositories.SubscriptionFilters) ([]*entities.Subscription, error) {
	var models []*SubscriptionModel

	db := getDB(ctx, r.db)
	query := db.Model(&SubscriptionModel{})

	if filters.BusinessID != nil {
		query = query.Where("business_id = ?", *filters.BusinessID)
	}
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

	query = query.Order("created_at DESC").Limit(pageSize).Offset((page - 1) * pageSize)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	subs := make([]*entities.Subscription, len(models))
	for i, model := range models {
		subs[i] = r.toEntity(model)
	}
	return subs, nil
}

// Conversores

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}

func timePtr(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0)
	return &t
}

func (r *SubscriptionRepository) toModel(sub *entities.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:               sub.ID,
		BusinessID:       sub.BusinessID,
		Plan:             string(sub.Plan),
		Status:           string(sub.Status),
		TrialStartsAt:    unixPtr(sub.TrialStartsAt),
		TrialEndsAt:      unixPtr(sub.TrialEndsAt),
		CurrentPeriodEnd: unixPtr(sub.CurrentPeriodEnd),
		NextRenewalAt:    unixPtr(sub.NextRenewalAt),
		CancelledAt:      unixPtr(sub.CancelledAt),
		CreatedAt:        sub.CreatedAt.Unix(),
		UpdatedAt:        sub.UpdatedAt.Unix(),
	}
}

func (r *SubscriptionRepository) toEntity(model *SubscriptionModel) *entities.Subscription {
	return &entities.Subscription{
		ID:               model.ID,
		BusinessID:       model.BusinessID,
		Plan:             entities.PlanTier(model.Plan),
		Status:           entities.SubscriptionStatus(model.Status),
		TrialStartsAt:    timePtr(model.TrialStartsAt),
		TrialEndsAt:      timePtr(model.TrialEndsAt),
		CurrentPeriodEnd: timePtr(model.CurrentPeriodEnd),
		NextRenewalAt:    timePtr(model.NextRenewalAt),
		CancelledAt:      timePtr(model.CancelledAt),
		CreatedAt:        time.Unix(model.CreatedAt, 0),
		UpdatedAt:        time.Unix(model.UpdatedAt, 0),
	}
}
