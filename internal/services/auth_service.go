package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
	"github.com/promobandhu/admin-backend/internal/domain/ports"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
	"github.com/promobandhu/admin-backend/internal/infrastructure/auth"
)

// AuthService contém a lógica de autenticação de membros da equipe
type AuthService struct {
	memberRepo repositories.TeamMemberRepository
	tokens     *auth.TokenManager
	tokenStore ports.TokenStore
	logger     ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	memberRepo repositories.TeamMemberRepository,
	tokens *auth.TokenManager,
	tokenStore ports.TokenStore,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		tokens:     tokens,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

// LoginResult é o resultado de um login bem-sucedido
type LoginResult struct {
	Member       *entities.TeamMember
	AccessToken  string
	RefreshToken string
}

// Login verifica as credenciais e emite o par de tokens.
// O refresh token fica registrado no token store com TTL; o access
// token é um JWT autossuficiente.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed", "email", email)
		return nil, errors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Generate(member, time.Now())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.NewRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := s.tokenStore.Save(ctx, refreshToken, member.ID, s.tokens.RefreshExpiry()); err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", "member_id", member.ID)
	return &LoginResult{
		Member:       member,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revoga o refresh token do membro
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokenStore.Revoke(ctx, refreshToken)
}

// Authenticate valida um access token e carrega o membro com seu
// grafo de autorização completo
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*entities.TeamMember, error) {
	claims, err := s.tokens.Parse(accessToken)
	if err != nil {
		return nil, errors.ErrUnauthorized
	}

	member, err := s.memberRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if member == nil {
		// Membro removido depois da emissão do token
		return nil, errors.ErrUnauthorized
	}

	return member, nil
}
