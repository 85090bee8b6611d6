package auth

import (
	"testing"
	"time"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/valueobjects"
	"github.com/promobandhu/admin-backend/internal/infrastructure/config"
)

func testMember(t *testing.T) *entities.TeamMember {
	t.Helper()
	email, err := valueobjects.NewEmail("admin@promobandhu.com")
	if err != nil {
		t.Fatalf("setup falhou: %v", err)
	}
	return &entities.TeamMember{
		ID:      "member-1",
		Email:   email,
		JobRole: entities.JobRole{ID: 1, Name: "Admin"},
	}
}

func newTestManager(secret string, accessExpiry time.Duration) *TokenManager {
	return NewTokenManager(&config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 720 * time.Hour,
	})
}

func TestTokenManager(t *testing.T) {
	t.Run("gera e verifica token", func(t *testing.T) {
		manager := newTestManager("test-secret", 15*time.Minute)
		member := testMember(t)

		token, err := manager.Generate(member, time.Now())
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		claims, err := manager.Parse(token)
		if err != nil {
			t.Fatalf("esperava token válido, obteve erro: %v", err)
		}
		if claims.Subject != "member-1" {
			t.Errorf("esperava subject 'member-1', obteve '%s'", claims.Subject)
		}
		if claims.Email != "admin@promobandhu.com" {
			t.Errorf("esperava email do membro, obteve '%s'", claims.Email)
		}
		if claims.Role != "Admin" {
			t.Errorf("esperava role 'Admin', obteve '%s'", claims.Role)
		}
	})

	t.Run("rejeita token expirado", func(t *testing.T) {
		manager := newTestManager("test-secret", 15*time.Minute)
		member := testMember(t)

		token, err := manager.Generate(member, time.Now().Add(-time.Hour))
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		if _, err := manager.Parse(token); err == nil {
			t.Error("esperava erro para token expirado, obteve sucesso")
		}
	})

	t.Run("rejeita token assinado com outro segredo", func(t *testing.T) {
		member := testMember(t)

		token, err := newTestManager("secret-a", 15*time.Minute).Generate(member, time.Now())
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		if _, err := newTestManager("secret-b", 15*time.Minute).Parse(token); err == nil {
			t.Error("esperava erro para assinatura inválida, obteve sucesso")
		}
	})

	t.Run("rejeita token malformado", func(t *testing.T) {
		manager := newTestManager("test-secret", 15*time.Minute)

		if _, err := manager.Parse("not-a-jwt"); err == nil {
			t.Error("esperava erro para token malformado, obteve sucesso")
		}
	})
}

func TestNewRefreshToken(t *testing.T) {
	manager := newTestManager("test-secret", 15*time.Minute)

	a, err := manager.NewRefreshToken()
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}
	b, err := manager.NewRefreshToken()
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if len(a) != 64 {
		t.Errorf("esperava token de 64 caracteres hex, obteve %d", len(a))
	}
	if a == b {
		t.Error("esperava tokens distintos")
	}
}
