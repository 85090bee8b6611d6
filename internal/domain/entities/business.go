package entities

import "time"

// BusinessStatus indica se um negócio está ativo na plataforma
type BusinessStatus string

const (
	BusinessStatusActive   BusinessStatus = "active"
	BusinessStatusInactive BusinessStatus = "inactive"
)

// Business é o negócio local dono de assinaturas e consumidor de SMS.
// O cadastro completo de negócios (endereço, ofertas, anúncios) vive
// fora deste serviço; aqui mantemos só o que assinaturas e relatórios
// referenciam.
type Business struct {
	ID        string
	Name      string
	City      string
	Status    BusinessStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
