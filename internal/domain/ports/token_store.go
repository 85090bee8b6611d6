package ports

import (
	"context"
	"time"
)

// TokenStore define a interface para persistência de refresh tokens.
// Tokens são opacos; o valor guardado é o ID do membro dono do token.
type TokenStore interface {
	Save(ctx context.Context, token, memberID string, ttl time.Duration) error
	// Get retorna o ID do membro dono do token, ou "" se o token não
	// existe ou expirou.
	Get(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}
