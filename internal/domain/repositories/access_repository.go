package repositories

import (
	"context"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// PermissionRepository define a interface para persistência de permissões
type PermissionRepository interface {
	Create(ctx context.Context, permission *entities.Permission) error
	FindByID(ctx context.Context, id uint) (*entities.Permission, error)
	FindByKey(ctx context.Context, key string) (*entities.Permission, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*entities.Permission, error)
	List(ctx context.Context) ([]*entities.Permission, error)
	// Delete remove a permissão e, em cascata, seus vínculos com grupos
	Delete(ctx context.Context, id uint) error
}

// GroupRepository define a interface para persistência de grupos
type GroupRepository interface {
	Create(ctx context.Context, group *entities.Group) error
	FindByID(ctx context.Context, id uint) (*entities.Group, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*entities.Group, error)
	List(ctx context.Context) ([]*entities.Group, error)
	Update(ctx context.Context, group *entities.Group) error
	Delete(ctx context.Context, id uint) error
	// ReplacePermissions substitui POR INTEIRO o conjunto de permissões
	// do grupo pelo informado. Nunca é um patch incremental.
	ReplacePermissions(ctx context.Context, groupID uint, permissionIDs []uint) error
}

// JobRoleRepository define a interface para persistência de job roles
type JobRoleRepository interface {
	Create(ctx context.Context, jobRole *entities.JobRole) error
	FindByID(ctx context.Context, id uint) (*entities.JobRole, error)
	List(ctx context.Context) ([]*entities.JobRole, error)
	// ReplaceGroups substitui por inteiro o conjunto de grupos do job
	// role, com a mesma semântica de ReplacePermissions.
	ReplaceGroups(ctx context.Context, jobRoleID uint, groupIDs []uint) error
}
