package repositories

import "context"

// BusinessSmsTotal é o total acumulado de SMS de um negócio
type BusinessSmsTotal struct {
	BusinessID   string
	BusinessName string
	Sent         int
	Delivered    int
	Failed       int
}

// MonthlySmsTotal é o total de SMS da plataforma em um mês (2006-01)
type MonthlySmsTotal struct {
	Month     string
	Sent      int
	Delivered int
	Failed    int
}

// SmsUsageRepository define a interface de leitura de consumo de SMS.
// Relatórios são somente leitura; quem escreve é o pipeline de envio.
type SmsUsageRepository interface {
	BusinessTotals(ctx context.Context) ([]BusinessSmsTotal, error)
	Monthly(ctx context.Context, year int) ([]MonthlySmsTotal, error)
}
