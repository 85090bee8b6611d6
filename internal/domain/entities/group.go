package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidGroupName = errors.New("group name must be at least 2 characters")
)

// Group é um conjunto nomeado de permissões (um "role" em termos RBAC).
// O conjunto de permissões é sempre substituído por inteiro, nunca
// alterado incrementalmente.
type Group struct {
	ID          uint
	Name        string
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate valida regras de negócio da entidade Group
func (g *Group) Validate() error {
	if len(strings.TrimSpace(g.Name)) < 2 {
		return ErrInvalidGroupName
	}
	return nil
}

// PermissionKeys retorna as chaves de permissão do grupo
func (g *Group) PermissionKeys() []string {
	keys := make([]string, len(g.Permissions))
	for i, p := range g.Permissions {
		keys[i] = p.Key
	}
	return keys
}

// HasPermission verifica se o grupo contém a permissão
func (g *Group) HasPermission(key string) bool {
	for _, p := range g.Permissions {
		if p.Key == key {
			return true
		}
	}
	return false
}
