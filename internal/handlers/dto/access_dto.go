package dto

import (
	"time"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// CreatePermissionRequest representa a requisição para criar uma permissão
type CreatePermissionRequest struct {
	Key   string `json:"key" binding:"required,min=3,max=100"`
	Label string `json:"label" binding:"omitempty,max=255"`
}

// PermissionResponse representa a resposta de uma permissão
type PermissionResponse struct {
	ID        uint      `json:"id"`
	Key       string    `json:"key"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGroupRequest representa a requisição para criar um grupo
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateGroupRequest representa a requisição para renomear um grupo
type UpdateGroupRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// SetGroupPermissionsRequest substitui por inteiro o conjunto de
// permissões do grupo
type SetGroupPermissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids" binding:"required"`
}

// GroupResponse representa a resposta de um grupo
type GroupResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Permissions []PermissionResponse `json:"permissions"`
	CreatedAt   time.Time            `json:"created_at"`
}

// CreateJobRoleRequest representa a requisição para criar um job role
type CreateJobRoleRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// SetJobRoleGroupsRequest substitui por inteiro o conjunto de grupos
// do job role
type SetJobRoleGroupsRequest struct {
	GroupIDs []uint `json:"group_ids" binding:"required"`
}

// JobRoleResponse representa a resposta de um job role
type JobRoleResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Groups    []GroupResponse `json:"groups"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToPermissionResponse converte uma entidade Permission
func ToPermissionResponse(permission *entities.Permission) PermissionResponse {
	return PermissionResponse{
		ID:        permission.ID,
		Key:       permission.Key,
		Label:     permission.Label,
		CreatedAt: permission.CreatedAt,
	}
}

// ToPermissionResponses converte uma lista de Permission
func ToPermissionResponses(permissions []*entities.Permission) []PermissionResponse {
	responses := make([]PermissionResponse, len(permissions))
	for i, p := range permissions {
		responses[i] = ToPermissionResponse(p)
	}
	return responses
}

// ToGroupResponse converte uma entidade Group
func ToGroupResponse(group *entities.Group) GroupResponse {
	permissions := make([]PermissionResponse, len(group.Permissions))
	for i := range group.Permissions {
		permissions[i] = ToPermissionResponse(&group.Permissions[i])
	}

	return GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Permissions: permissions,
		CreatedAt:   group.CreatedAt,
	}
}

// ToGroupResponses converte uma lista de Group
func ToGroupResponses(groups []*entities.Group) []GroupResponse {
	responses := make([]GroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = ToGroupResponse(g)
	}
	return responses
}

// ToJobRoleResponse converte uma entidade JobRole
func ToJobRoleResponse(jobRole *entities.JobRole) JobRoleResponse {
	groups := make([]GroupResponse, len(jobRole.Groups))
	for i := range jobRole.Groups {
		groups[i] = ToGroupResponse(&jobRole.Groups[i])
	}

	return JobRoleResponse{
		ID:        jobRole.ID,
		Name:      jobRole.Name,
		Groups:    groups,
		CreatedAt: jobRole.CreatedAt,
	}
}

// ToJobRoleResponses converte uma lista de JobRole
func ToJobRoleResponses(jobRoles []*entities.JobRole) []JobRoleResponse {
	responses := make([]JobRoleResponse, len(jobRoles))
	for i, j := range jobRoles {
		responses[i] = ToJobRoleResponse(j)
	}
	return responses
}
