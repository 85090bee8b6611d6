package services

import (
	"context"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// ReportService agrupa as leituras de relatório: negócios e consumo
// de SMS. Não há mutações aqui — os dados são escritos por outros
// serviços da plataforma.
type ReportService struct {
	businessRepo repositories.BusinessRepository
	smsRepo      repositories.SmsUsageRepository
}

// NewReportService cria um novo ReportService
func NewReportService(
	businessRepo repositories.BusinessRepository,
	smsRepo repositories.SmsUsageRepository,
) *ReportService {
	return &ReportService{businessRepo: businessRepo, smsRepo: smsRepo}
}

// GetBusiness busca um negócio por ID
func (s *ReportService) GetBusiness(ctx context.Context, id string) (*entities.Business, error) {
	business, err := s.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, errors.ErrBusinessNotFound
	}
	return business, nil
}

// ListBusinesses lista negócios com filtros
func (s *ReportService) ListBusinesses(ctx context.Context, filters repositories.BusinessFilters) ([]*entities.Business, error) {
	return s.businessRepo.List(ctx, filters)
}

// SmsUsageByBusiness retorna o consumo acumulado de SMS por negócio
func (s *ReportService) SmsUsageByBusiness(ctx context.Context) ([]repositories.BusinessSmsTotal, error) {
	return s.smsRepo.BusinessTotals(ctx)
}

// SmsUsageMonthly retorna o consumo mensal de SMS da plataforma,
// opcionalmente restrito a um ano
func (s *ReportService) SmsUsageMonthly(ctx context.Context, year int) ([]repositories.MonthlySmsTotal, error) {
	return s.smsRepo.Monthly(ctx, year)
}
