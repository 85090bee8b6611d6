package entities

import (
	"errors"
	"sort"
	"time"

	"github.com/promobandhu/admin-backend/internal/domain/valueobjects"
)

var (
	ErrTeamMemberEmailRequired   = errors.New("email is required")
	ErrTeamMemberJobRoleRequired = errors.New("job role is required")
)

// TeamMember representa um membro da equipe administrativa.
// Cada membro tem exatamente um JobRole (papel primário) e zero ou
// mais grupos extras, concedidos aditivamente.
type TeamMember struct {
	ID           string
	Email        valueobjects.Email
	Mobile       *string
	PasswordHash string
	JobRole      JobRole
	ExtraGroups  []Group
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft delete
}

// EffectivePermissions retorna o conjunto efetivo de permissões do
// membro: a união das permissões alcançáveis pelos grupos do job role
// e pelos grupos extras. União pura — sem precedência nem revogação,
// independente de ordem, sem duplicatas. O resultado é ordenado para
// ser determinístico.
func (m *TeamMember) EffectivePermissions() []string {
	seen := make(map[string]struct{})

	for _, g := range m.JobRole.Groups {
		for _, p := range g.Permissions {
			seen[p.Key] = struct{}{}
		}
	}
	for _, g := range m.ExtraGroups {
		for _, p := range g.Permissions {
			seen[p.Key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasPermission verifica se o membro tem a permissão no conjunto efetivo
func (m *TeamMember) HasPermission(key string) bool {
	for _, g := range m.JobRole.Groups {
		if g.HasPermission(key) {
			return true
		}
	}
	for _, g := range m.ExtraGroups {
		if g.HasPermission(key) {
			return true
		}
	}
	return false
}

// IsDeleted verifica se o membro foi deletado (soft delete)
func (m *TeamMember) IsDeleted() bool {
	return m.DeletedAt != nil
}

// SoftDelete marca o membro como deletado
func (m *TeamMember) SoftDelete() {
	now := time.Now()
	m.DeletedAt = &now
}

// Validate valida regras de negócio da entidade TeamMember
func (m *TeamMember) Validate() error {
	if m.Email.String() == "" {
		return ErrTeamMemberEmailRequired
	}
	if m.JobRole.ID == 0 {
		return ErrTeamMemberJobRoleRequired
	}
	return nil
}
