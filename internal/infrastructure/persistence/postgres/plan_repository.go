package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// PlanRepository implementa repositories.PlanRepository
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository cria um novo PlanRepository
func NewPlanRepository(db *gorm.DB) repositories.PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *entities.Plan) error {
	model, err := r.toModel(plan)
	if err != nil {
		return err
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	plan.ID = model.ID
	plan.CreatedAt = time.Unix(model.CreatedAt, 0)
	plan.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*entities.Plan, error) {
	var model PlanModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *PlanRepository) List(ctx context.Context) ([]*entities.Plan, error) {
	var models []*PlanModel

	db := getDB(ctx, r.db)
	if err := db.Order("sort_order, name").Find(&models).Error; err != nil {
		return nil, err
	}

	plans := make([]*entities.Plan, 0, len(models))
	for _, model := range models {
		plan, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *PlanRepository) Update(ctx context.Context, plan *entities.Plan) error {
	model, err := r.toModel(plan)
	if err != nil {
		return err
	}

	db := getDB(ctx, r.db)
	return db.Select("*").Omit("CreatedAt").Save(model).Error
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.Delete(&PlanModel{}, "id = ?", id).Error
}

// Conversores

func (r *PlanRepository) toModel(plan *entities.Plan) (*PlanModel, error) {
	features, err := json.Marshal(plan.Features)
	if err != nil {
		return nil, err
	}

	var topups datatypes.JSON
	if plan.AllowTopups {
		data, err := json.Marshal(plan.TopupOptions)
		if err != nil {
			return nil, err
		}
		topups = data
	}

	var cycle *string
	if plan.BillingCycle != nil {
		c := string(*plan.BillingCycle)
		cycle = &c
	}

	return &PlanModel{
		ID:             plan.ID,
		Name:           plan.Name,
		Description:    plan.Description,
		Status:         string(plan.Status),
		BillingType:    string(plan.BillingType),
		BillingCycle:   cycle,
		Amount:         plan.Amount,
		DiscountAmount: plan.DiscountAmount,
		SMSLimit:       plan.SMSLimit,
		OfferLimit:     plan.OfferLimit,
		IsPopular:      plan.IsPopular,
		SortOrder:      plan.SortOrder,
		Features:       features,
		AllowTopups:    plan.AllowTopups,
		TopupOptions:   topups,
		CreatedAt:      plan.CreatedAt.Unix(),
		UpdatedAt:      plan.UpdatedAt.Unix(),
	}, nil
}

func (r *PlanRepository) toEntity(model *PlanModel) (*entities.Plan, error) {
	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, err
		}
	}

	var topups []entities.TopupOption
	if len(model.TopupOptions) > 0 {
		if err := json.Unmarshal(model.TopupOptions, &topups); err != nil {
			return nil, err
		}
	}

	var cycle *entities.BillingCycle
	if model.BillingCycle != nil {
		c := entities.BillingCycle(*model.BillingCycle)
		cycle = &c
	}

	return &entities.Plan{
		ID:             model.ID,
		Name:           model.Name,
		Description:    model.Description,
		Status:         entities.PlanStatus(model.Status),
		BillingType:    entities.BillingType(model.BillingType),
		BillingCycle:   cycle,
		Amount:         model.Amount,
		DiscountAmount: model.DiscountAmount,
		SMSLimit:       model.SMSLimit,
		OfferLimit:     model.OfferLimit,
		IsPopular:      model.IsPopular,
		SortOrder:      model.SortOrder,
		Features:       features,
		AllowTopups:    model.AllowTopups,
		TopupOptions:   topups,
		CreatedAt:      time.Unix(model.CreatedAt, 0),
		UpdatedAt:      time.Unix(model.UpdatedAt, 0),
	}, nil
}
