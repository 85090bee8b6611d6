package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/infrastructure/config"
)

// Claims são as claims do access token de um membro da equipe
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"` // nome do job role, apenas informativo
	jwt.RegisteredClaims
}

// TokenManager emite e verifica access tokens (JWT HS256) e gera
// refresh tokens opacos
type TokenManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewTokenManager cria um novo TokenManager
func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:        []byte(cfg.Secret),
		accessExpiry:  cfg.AccessExpiry,
		refreshExpiry: cfg.RefreshExpiry,
	}
}

// RefreshExpiry retorna o TTL configurado para refresh tokens
func (m *TokenManager) RefreshExpiry() time.Duration {
	return m.refreshExpiry
}

// Generate emite um access token para o membro
func (m *TokenManager) Generate(member *entities.TeamMember, now time.Time) (string, error) {
	claims := Claims{
		Email: member.Email.String(),
		Role:  member.JobRole.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessExpiry)),
			Issuer:    "promobandhu-admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifica assinatura e expiração de um access token e retorna
// suas claims
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

// NewRefreshToken gera um refresh token opaco
func (m *TokenManager) NewRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
