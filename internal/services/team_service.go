package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
	"github.com/promobandhu/admin-backend/internal/domain/ports"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
	"github.com/promobandhu/admin-backend/internal/domain/valueobjects"
)

// TeamService contém a lógica de negócio para membros da equipe
type TeamService struct {
	memberRepo  repositories.TeamMemberRepository
	jobRoleRepo repositories.JobRoleRepository
	groupRepo   repositories.GroupRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewTeamService cria um novo TeamService
func NewTeamService(
	memberRepo repositories.TeamMemberRepository,
	jobRoleRepo repositories.JobRoleRepository,
	groupRepo repositories.GroupRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *TeamService {
	return &TeamService{
		memberRepo:  memberRepo,
		jobRoleRepo: jobRoleRepo,
		groupRepo:   groupRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreateTeamMemberInput representa os dados para criar um membro
type CreateTeamMemberInput struct {
	Email         string
	Password      string
	Mobile        *string
	JobRoleID     uint
	ExtraGroupIDs []uint
}

// UpdateTeamMemberInput representa os dados para atualizar um membro.
// Campos nil são mantidos; senha em branco significa "não alterar".
type UpdateTeamMemberInput struct {
	Email         *string
	Password      *string
	Mobile        *string
	JobRoleID     *uint
	ExtraGroupIDs []uint // nil = manter; lista (mesmo vazia) = substituir
}

// CreateTeamMember cria um novo membro da equipe
func (s *TeamService) CreateTeamMember(ctx context.Context, input CreateTeamMemberInput) (*entities.TeamMember, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	jobRole, err := s.jobRoleRepo.FindByID(ctx, input.JobRoleID)
	if err != nil {
		return nil, err
	}
	if jobRole == nil {
		return nil, errors.ErrJobRoleNotFound
	}

	mobile, err := normalizeMobile(input.Mobile)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &entities.TeamMember{
		Email:        email,
		Mobile:       mobile,
		PasswordHash: string(hash),
		JobRole:      *jobRole,
	}
	if err := member.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.memberRepo.Create(txCtx, member); err != nil {
			return err
		}
		if len(input.ExtraGroupIDs) > 0 {
			if err := s.ensureGroupsExist(txCtx, input.ExtraGroupIDs); err != nil {
				return err
			}
			return s.memberRepo.ReplaceExtraGroups(txCtx, member.ID, input.ExtraGroupIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("team member created", "id", member.ID, "email", member.Email.String())
	return s.memberRepo.FindByID(ctx, member.ID)
}

// UpdateTeamMember atualiza um membro com substituição parcial de campos
func (s *TeamService) UpdateTeamMember(ctx context.Context, id string, input UpdateTeamMemberInput) (*entities.TeamMember, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.ErrTeamMemberNotFound
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		if email.String() != member.Email.String() {
			existing, err := s.memberRepo.FindByEmail(ctx, email.String())
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, errors.ErrEmailAlreadyExists
			}
		}
		member.Email = email
	}

	// Senha em branco significa "não alterar"
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		member.PasswordHash = string(hash)
	}

	if input.Mobile != nil {
		mobile, err := normalizeMobile(input.Mobile)
		if err != nil {
			return nil, err
		}
		member.Mobile = mobile
	}

	if input.JobRoleID != nil {
		jobRole, err := s.jobRoleRepo.FindByID(ctx, *input.JobRoleID)
		if err != nil {
			return nil, err
		}
		if jobRole == nil {
			return nil, errors.ErrJobRoleNotFound
		}
		member.JobRole = *jobRole
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.memberRepo.Update(txCtx, member); err != nil {
			return err
		}
		if input.ExtraGroupIDs != nil {
			if err := s.ensureGroupsExist(txCtx, input.ExtraGroupIDs); err != nil {
				return err
			}
			return s.memberRepo.ReplaceExtraGroups(txCtx, member.ID, input.ExtraGroupIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.memberRepo.FindByID(ctx, id)
}

// GetTeamMember busca um membro por ID com o grafo de autorização
func (s *TeamService) GetTeamMember(ctx context.Context, id string) (*entities.TeamMember, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.ErrTeamMemberNotFound
	}
	return member, nil
}

// DeleteTeamMember remove (soft delete) um membro da equipe
func (s *TeamService) DeleteTeamMember(ctx context.Context, id string) error {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return errors.ErrTeamMemberNotFound
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("team member deleted", "id", id, "email", member.Email.String())
	return nil
}

// ListTeamMembers lista membros com busca e paginação
func (s *TeamService) ListTeamMembers(ctx context.Context, filters repositories.TeamMemberFilters) ([]*entities.TeamMember, int64, error) {
	return s.memberRepo.List(ctx, filters)
}

func (s *TeamService) ensureGroupsExist(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.groupRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(uniqueIDs(ids)) {
		return errors.ErrGroupNotFound
	}
	return nil
}

func normalizeMobile(raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	mobile, err := valueobjects.NewMobile(*raw)
	if err != nil {
		return nil, err
	}
	value := mobile.String()
	return &value, nil
}
