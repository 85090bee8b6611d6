package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/promobandhu/admin-backend/internal/handlers/dto"
	"github.com/promobandhu/admin-backend/internal/services"
)

// AccessHandler lida com requisições HTTP do registro de acesso:
// permissões, grupos e job roles
type AccessHandler struct {
	accessService *services.AccessService
}

// NewAccessHandler cria um novo AccessHandler
func NewAccessHandler(accessService *services.AccessService) *AccessHandler {
	return &AccessHandler{
		accessService: accessService,
	}
}

// ListPermissions lista todas as permissões
func (h *AccessHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.accessService.ListPermissions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToPermissionResponses(permissions)})
}

// CreatePermission cria uma nova permissão
func (h *AccessHandler) CreatePermission(c *gin.Context) {
	var req dto.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	permission, err := h.accessService.CreatePermission(c.Request.Context(), req.Key, req.Label)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPermissionResponse(permission))
}

// DeletePermission remove uma permissão e seus vínculos com grupos
func (h *AccessHandler) DeletePermission(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.accessService.DeletePermission(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListGroups lista todos os grupos com suas permissões
func (h *AccessHandler) ListGroups(c *gin.Context) {
	groups, err := h.accessService.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToGroupResponses(groups)})
}

// CreateGroup cria um novo grupo
func (h *AccessHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	group, err := h.accessService.CreateGroup(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// UpdateGroup renomeia um grupo
func (h *AccessHandler) UpdateGroup(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBindingError(c, err)
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	group, err := h.accessService.UpdateGroup(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// DeleteGroup remove um grupo e seus vínculos
func (h *AccessHandler) DeleteGroup(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.accessService.DeleteGroup(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetGroupPermissions substitui por inteiro as permissões do grupo
func (h *AccessHandler) SetGroupPermissions(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBindingError(c, err)
		return
	}

	var req dto.SetGroupPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	group, err := h.accessService.SetGroupPermissions(c.Request.Context(), id, req.PermissionIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// ListJobRoles lista todos os job roles com seus grupos
func (h *AccessHandler) ListJobRoles(c *gin.Context) {
	jobRoles, err := h.accessService.ListJobRoles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToJobRoleResponses(jobRoles)})
}

// CreateJobRole cria um novo job role
func (h *AccessHandler) CreateJobRole(c *gin.Context) {
	var req dto.CreateJobRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	jobRole, err := h.accessService.CreateJobRole(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobRoleResponse(jobRole))
}

// SetJobRoleGroups substitui por inteiro os grupos do job role
func (h *AccessHandler) SetJobRoleGroups(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBindingError(c, err)
		return
	}

	var req dto.SetJobRoleGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	jobRole, err := h.accessService.SetJobRoleGroups(c.Request.Context(), id, req.GroupIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobRoleResponse(jobRole))
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
