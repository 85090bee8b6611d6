package dto

import (
	"time"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
)

// CreateTeamMemberRequest representa a requisição para criar um membro
type CreateTeamMemberRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=8,max=72"`
	Mobile        *string `json:"mobile" binding:"omitempty,max=20"`
	JobRoleID     uint    `json:"job_role_id" binding:"required"`
	ExtraGroupIDs []uint  `json:"extra_group_ids"`
}

// UpdateTeamMemberRequest representa uma atualização parcial.
// Senha ausente ou em branco significa "não alterar".
type UpdateTeamMemberRequest struct {
	Email         *string `json:"email" binding:"omitempty,email"`
	Password      *string `json:"password" binding:"omitempty,max=72"`
	Mobile        *string `json:"mobile" binding:"omitempty,max=20"`
	JobRoleID     *uint   `json:"job_role_id"`
	ExtraGroupIDs []uint  `json:"extra_group_ids"`
}

// TeamMemberResponse representa a resposta de um membro da equipe
type TeamMemberResponse struct {
	ID                   string          `json:"id"`
	Email                string          `json:"email"`
	Mobile               *string         `json:"mobile,omitempty"`
	JobRole              JobRoleResponse `json:"job_role"`
	ExtraGroups          []GroupResponse `json:"extra_groups"`
	EffectivePermissions []string        `json:"effective_permissions"`
	CreatedAt            time.Time       `json:"created_at"`
}

// TeamMemberListResponse é a resposta paginada da listagem de membros
type TeamMemberListResponse struct {
	Items []TeamMemberResponse `json:"items"`
	Total int64                `json:"total"`
}

// ToTeamMemberResponse converte uma entidade TeamMember
func ToTeamMemberResponse(member *entities.TeamMember) TeamMemberResponse {
	extraGroups := make([]GroupResponse, len(member.ExtraGroups))
	for i := range member.ExtraGroups {
		extraGroups[i] = ToGroupResponse(&member.ExtraGroups[i])
	}

	return TeamMemberResponse{
		ID:                   member.ID,
		Email:                member.Email.String(),
		Mobile:               member.Mobile,
		JobRole:              ToJobRoleResponse(&member.JobRole),
		ExtraGroups:          extraGroups,
		EffectivePermissions: member.EffectivePermissions(),
		CreatedAt:            member.CreatedAt,
	}
}

// ToTeamMemberListResponse converte uma página de membros
func ToTeamMemberListResponse(members []*entities.TeamMember, total int64) TeamMemberListResponse {
	items := make([]TeamMemberResponse, len(members))
	for i, m := range members {
		items[i] = ToTeamMemberResponse(m)
	}
	return TeamMemberListResponse{Items: items, Total: total}
}
