package dto

import "github.com/promobandhu/admin-backend/internal/domain/entities"

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserProfile é o perfil resumido retornado no login e cacheado pelo
// cliente
type UserProfile struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Mobile *string `json:"mobile,omitempty"`
	Role   string  `json:"role"`
}

// LoginResponse representa a resposta de um login bem-sucedido
type LoginResponse struct {
	User         UserProfile `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// LogoutRequest representa a requisição de logout
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ToUserProfile converte um TeamMember para UserProfile
func ToUserProfile(member *entities.TeamMember) UserProfile {
	return UserProfile{
		ID:     member.ID,
		Email:  member.Email.String(),
		Mobile: member.Mobile,
		Role:   member.JobRole.Name,
	}
}
