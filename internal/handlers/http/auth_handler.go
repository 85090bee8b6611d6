package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promobandhu/admin-backend/internal/handlers/dto"
	"github.com/promobandhu/admin-backend/internal/services"
)

// AuthHandler lida com requisições HTTP de autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica um membro e emite o par de tokens
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserProfile(result.Member),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

// Logout revoga o refresh token do membro
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	// Corpo ausente é aceito — logout sem refresh token só descarta o
	// estado do cliente
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
