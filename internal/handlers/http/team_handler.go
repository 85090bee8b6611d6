package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/promobandhu/admin-backend/internal/domain/repositories"
	"github.com/promobandhu/admin-backend/internal/handlers/dto"
	"github.com/promobandhu/admin-backend/internal/services"
)

// TeamHandler lida com requisições HTTP de membros da equipe
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler cria um novo TeamHandler
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeamMembers lista membros com busca e paginação
func (h *TeamHandler) ListTeamMembers(c *gin.Context) {
	filters := repositories.TeamMemberFilters{
		Search: c.Query("search"),
		Limit:  parseIntQuery(c, "limit", 20),
		Offset: parseIntQuery(c, "offset", 0),
	}

	members, total, err := h.teamService.ListTeamMembers(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberListResponse(members, total))
}

// GetTeamMember busca um membro por ID
func (h *TeamHandler) GetTeamMember(c *gin.Context) {
	member, err := h.teamService.GetTeamMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member))
}

// CreateTeamMember cria um novo membro da equipe
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	member, err := h.teamService.CreateTeamMember(c.Request.Context(), services.CreateTeamMemberInput{
		Email:         req.Email,
		Password:      req.Password,
		Mobile:        req.Mobile,
		JobRoleID:     req.JobRoleID,
		ExtraGroupIDs: req.ExtraGroupIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamMemberResponse(member))
}

// UpdateTeamMember atualiza um membro com substituição parcial de campos
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	member, err := h.teamService.UpdateTeamMember(c.Request.Context(), c.Param("id"), services.UpdateTeamMemberInput{
		Email:         req.Email,
		Password:      req.Password,
		Mobile:        req.Mobile,
		JobRoleID:     req.JobRoleID,
		ExtraGroupIDs: req.ExtraGroupIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member))
}

// DeleteTeamMember remove um membro da equipe
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	if err := h.teamService.DeleteTeamMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
