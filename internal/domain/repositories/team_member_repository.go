package repositories

import (
	"context"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// TeamMemberRepository define a interface para persistência de membros
// da equipe. Leituras sempre carregam o grafo de autorização completo
// (job role com grupos e permissões, grupos extras com permissões).
type TeamMemberRepository interface {
	Create(ctx context.Context, member *entities.TeamMember) error
	FindByID(ctx context.Context, id string) (*entities.TeamMember, error)
	FindByEmail(ctx context.Context, email string) (*entities.TeamMember, error)
	Update(ctx context.Context, member *entities.TeamMember) error
	// ReplaceExtraGroups substitui por inteiro os grupos extras do membro
	ReplaceExtraGroups(ctx context.Context, memberID string, groupIDs []uint) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters TeamMemberFilters) ([]*entities.TeamMember, int64, error)
}

// TeamMemberFilters contém filtros para listagem de membros
type TeamMemberFilters struct {
	// Search casa, sem diferenciar maiúsculas, com email, celular ou
	// nome do job role
	Search string
	Limit  int // default: 20, max: 100
	Offset int
}
