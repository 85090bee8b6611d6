package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidJobRoleName = errors.New("job role name must be at least 2 characters")
)

// JobRole é um conjunto nomeado de grupos, atribuído a um membro da
// equipe como seu papel primário. O conjunto de grupos é substituído
// por inteiro, com a mesma semântica de Group.Permissions.
type JobRole struct {
	ID        uint
	Name      string
	Groups    []Group
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida regras de negócio da entidade JobRole
func (j *JobRole) Validate() error {
	if len(strings.TrimSpace(j.Name)) < 2 {
		return ErrInvalidJobRoleName
	}
	return nil
}

// PermissionKeys retorna a união das permissões de todos os grupos do
// job role, sem duplicatas
func (j *JobRole) PermissionKeys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, g := range j.Groups {
		for _, p := range g.Permissions {
			if _, ok := seen[p.Key]; ok {
				continue
			}
			seen[p.Key] = struct{}{}
			keys = append(keys, p.Key)
		}
	}
	return keys
}
