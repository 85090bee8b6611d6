package services

import (
	"context"
	"strings"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
	"github.com/promobandhu/admin-backend/internal/domain/ports"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// AccessService contém a lógica de negócio do registro de acesso:
// permissões, grupos e job roles
type AccessService struct {
	permRepo    repositories.PermissionRepository
	groupRepo   repositories.GroupRepository
	jobRoleRepo repositories.JobRoleRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewAccessService cria um novo AccessService
func NewAccessService(
	permRepo repositories.PermissionRepository,
	groupRepo repositories.GroupRepository,
	jobRoleRepo repositories.JobRoleRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AccessService {
	return &AccessService{
		permRepo:    permRepo,
		groupRepo:   groupRepo,
		jobRoleRepo: jobRoleRepo,
		uow:         uow,
		logger:      logger,
	}
}

// ListPermissions lista todas as permissões
func (s *AccessService) ListPermissions(ctx context.Context) ([]*entities.Permission, error) {
	return s.permRepo.List(ctx)
}

// CreatePermission cria uma nova permissão
func (s *AccessService) CreatePermission(ctx context.Context, key, label string) (*entities.Permission, error) {
	permission := &entities.Permission{
		Key:   strings.TrimSpace(key),
		Label: label,
	}
	if err := permission.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.permRepo.FindByKey(ctx, permission.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrPermissionKeyExists
	}

	if err := s.permRepo.Create(ctx, permission); err != nil {
		return nil, err
	}

	s.logger.Info("permission created", "id", permission.ID, "key", permission.Key)
	return permission, nil
}

// DeletePermission remove uma permissão; o vínculo com todos os grupos
// que a referenciam é removido em cascata
func (s *AccessService) DeletePermission(ctx context.Context, id uint) error {
	permission, err := s.permRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if permission == nil {
		return errors.ErrPermissionNotFound
	}

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.permRepo.Delete(txCtx, id); err != nil {
			return err
		}
		s.logger.Info("permission deleted", "id", id, "key", permission.Key)
		return nil
	})
}

// ListGroups lista todos os grupos com suas permissões
func (s *AccessService) ListGroups(ctx context.Context) ([]*entities.Group, error) {
	return s.groupRepo.List(ctx)
}

// CreateGroup cria um novo grupo com conjunto de permissões vazio
func (s *AccessService) CreateGroup(ctx context.Context, name string) (*entities.Group, error) {
	group := &entities.Group{Name: strings.TrimSpace(name)}
	if err := group.Validate(); err != nil {
		return nil, err
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	s.logger.Info("group created", "id", group.ID, "name", group.Name)
	return group, nil
}

// UpdateGroup renomeia um grupo
func (s *AccessService) UpdateGroup(ctx context.Context, id uint, name string) (*entities.Group, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, errors.ErrGroupNotFound
	}

	group.Name = strings.TrimSpace(name)
	if err := group.Validate(); err != nil {
		return nil, err
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	return s.groupRepo.FindByID(ctx, id)
}

// DeleteGroup remove um grupo e todos os seus vínculos
func (s *AccessService) DeleteGroup(ctx context.Context, id uint) error {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return errors.ErrGroupNotFound
	}

	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.groupRepo.Delete(txCtx, id); err != nil {
			return err
		}
		s.logger.Info("group deleted", "id", id, "name", group.Name)
		return nil
	})
}

// SetGroupPermissions substitui POR INTEIRO o conjunto de permissões
// do grupo. Qualquer permissão fora da lista é removida; idempotente
// para a mesma lista.
func (s *AccessService) SetGroupPermissions(ctx context.Context, groupID uint, permissionIDs []uint) (*entities.Group, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, errors.ErrGroupNotFound
	}

	if err := s.ensurePermissionsExist(ctx, permissionIDs); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.groupRepo.ReplacePermissions(txCtx, groupID, permissionIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("group permissions replaced", "group_id", groupID, "count", len(permissionIDs))
	return s.groupRepo.FindByID(ctx, groupID)
}

// ListJobRoles lista todos os job roles com seus grupos
func (s *AccessService) ListJobRoles(ctx context.Context) ([]*entities.JobRole, error) {
	return s.jobRoleRepo.List(ctx)
}

// CreateJobRole cria um novo job role com conjunto de grupos vazio
func (s *AccessService) CreateJobRole(ctx context.Context, name string) (*entities.JobRole, error) {
	jobRole := &entities.JobRole{Name: strings.TrimSpace(name)}
	if err := jobRole.Validate(); err != nil {
		return nil, err
	}

	if err := s.jobRoleRepo.Create(ctx, jobRole); err != nil {
		return nil, err
	}

	s.logger.Info("job role created", "id", jobRole.ID, "name", jobRole.Name)
	return jobRole, nil
}

// SetJobRoleGroups substitui por inteiro o conjunto de grupos do job
// role, com a mesma semântica de SetGroupPermissions
func (s *AccessService) SetJobRoleGroups(ctx context.Context, jobRoleID uint, groupIDs []uint) (*entities.JobRole, error) {
	jobRole, err := s.jobRoleRepo.FindByID(ctx, jobRoleID)
	if err != nil {
		return nil, err
	}
	if jobRole == nil {
		return nil, errors.ErrJobRoleNotFound
	}

	if err := s.ensureGroupsExist(ctx, groupIDs); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.jobRoleRepo.ReplaceGroups(txCtx, jobRoleID, groupIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("job role groups replaced", "job_role_id", jobRoleID, "count", len(groupIDs))
	return s.jobRoleRepo.FindByID(ctx, jobRoleID)
}

func (s *AccessService) ensurePermissionsExist(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.permRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(uniqueIDs(ids)) {
		return errors.ErrPermissionNotFound
	}
	return nil
}

func (s *AccessService) ensureGroupsExist(ctx context.Context, ids []uint) error {
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

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
