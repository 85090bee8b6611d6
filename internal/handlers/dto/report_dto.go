package dto

import (
	"time"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// BusinessResponse representa a resposta de um negócio
type BusinessResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BusinessSmsUsageResponse é o total acumulado de SMS de um negócio
type BusinessSmsUsageResponse struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Sent         int    `json:"sent"`
	Delivered    int    `json:"delivered"`
	Failed       int    `json:"failed"`
}

// MonthlySmsUsageResponse é o total de SMS da plataforma em um mês
type MonthlySmsUsageResponse struct {
	Month     string `json:"month"`
	Sent      int    `json:"sent"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
}

// ToBusinessResponse converte uma entidade Business
func ToBusinessResponse(business *entities.Business) BusinessResponse {
	return BusinessResponse{
		ID:        business.ID,
		Name:      business.Name,
		City:      business.City,
		Status:    string(business.Status),
		CreatedAt: business.CreatedAt,
	}
}

// ToBusinessResponses converte uma lista de Business
func ToBusinessResponses(businesses []*entities.Business) []BusinessResponse {
	responses := make([]BusinessResponse, len(businesses))
	for i, b := range businesses {
		responses[i] = ToBusinessResponse(b)
	}
	return responses
}

// ToBusinessSmsUsageResponses converte os totais por negócio
func ToBusinessSmsUsageResponses(totals []repositories.BusinessSmsTotal) []BusinessSmsUsageResponse {
	responses := make([]BusinessSmsUsageResponse, len(totals))
	for i, t := range totals {
		responses[i] = BusinessSmsUsageResponse{
			BusinessID:   t.BusinessID,
			BusinessName: t.BusinessName,
			Sent:         t.Sent,
			Delivered:    t.Delivered,
			Failed:       t.Failed,
		}
	}
	return responses
}

// ToMonthlySmsUsageResponses converte os totais mensais
func ToMonthlySmsUsageResponses(totals []repositories.MonthlySmsTotal) []MonthlySmsUsageResponse {
	responses := make([]MonthlySmsUsageResponse, len(totals))
	for i, t := range totals {
		responses[i] = MonthlySmsUsageResponse{
			Month:     t.Month,
			Sent:      t.Sent,
			Delivered: t.Delivered,
			Failed:    t.Failed,
		}
	}
	return responses
}
