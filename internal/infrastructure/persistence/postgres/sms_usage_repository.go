package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// SmsUsageRepository implementa repositories.SmsUsageRepository
type SmsUsageRepository struct {
	db *gorm.DB
}

// NewSmsUsageRepository cria um novo SmsUsageRepository
func NewSmsUsageRepository(db *gorm.DB) repositories.SmsUsageRepository {
	return &SmsUsageRepository{db: db}
}

func (r *SmsUsageRepository) BusinessTotals(ctx context.Context) ([]repositories.BusinessSmsTotal, error) {
	var totals []repositories.BusinessSmsTotal

	db := getDB(ctx, r.db)
	err := db.Model(&SmsUsageModel{}).
		Select(`sms_usage.business_id,
			businesses.name AS business_name,
			SUM(sms_usage.sent) AS sent,
			SUM(sms_usage.delivered) AS delivered,
			SUM(sms_usage.failed) AS failed`).
		Joins("JOIN businesses ON businesses.id = sms_usage.business_id").
		Group("sms_usage.business_id, businesses.name").
		Order("sent DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *SmsUsageRepository) Monthly(ctx context.Context, year int) ([]repositories.MonthlySmsTotal, error) {
	var totals []repositories.MonthlySmsTotal

	db := getDB(ctx, r.db)
	query := db.Model(&SmsUsageModel{}).
		Select(`month,
			SUM(sent) AS sent,
			SUM(delivered) AS delivered,
			SUM(failed) AS failed`).
		Group("month").
		Order("month")

	if year > 0 {
		query = query.Where("month LIKE ?", fmt.Sprintf("%04d-%%", year))
	}

	if err := query.Scan(&totals).Error; err != nil {
		return nil, err
	}

	return totals, nil
}
