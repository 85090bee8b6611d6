package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/handlers/dto"
)

// CurrentMemberContextKey é a chave do membro autenticado no contexto do Gin
const CurrentMemberContextKey = "current_member"

// Authenticator valida um access token e devolve o membro com seu
// grafo de autorização carregado
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entities.TeamMember, error)
}

// AuthMiddleware protege rotas com autenticação bearer e checagem de
// permissão efetiva
type AuthMiddleware struct {
	authenticator Authenticator
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// RequireAuth exige um bearer token válido e carrega o membro no contexto
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		member, err := m.authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		c.Set(CurrentMemberContextKey, member)
		c.Next()
	}
}

// RequirePermission exige que o membro autenticado possua a permissão
// efetiva informada. Deve ser usado depois de RequireAuth.
func (m *AuthMiddleware) RequirePermission(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		member := CurrentMember(c)
		if member == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		if !member.HasPermission(key) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
			return
		}

		c.Next()
	}
}

// CurrentMember retorna o membro autenticado da requisição, ou nil
func CurrentMember(c *gin.Context) *entities.TeamMember {
	value, exists := c.Get(CurrentMemberContextKey)
	if !exists {
		return nil
	}
	member, ok := value.(*entities.TeamMember)
	if !ok {
		return nil
	}
	return member
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
