package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// PermissionRepository implementa repositories.PermissionRepository
type PermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository cria um novo PermissionRepository
func NewPermissionRepository(db *gorm.DB) repositories.PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) Create(ctx context.Context, permission *entities.Permission) error {
	model := toPermissionModel(permission)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	permission.ID = model.ID
	permission.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *PermissionRepository) FindByID(ctx context.Context, id uint) (*entities.Permission, error) {
	var model PermissionModel

	db := getDB(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toPermissionEntity(&model), nil
}

func (r *PermissionRepository) FindByKey(ctx context.Context, key string) (*entities.Permission, error) {
	var model PermissionModel

	db := getDB(ctx, r.db)
	if err := db.Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toPermissionEntity(&model), nil
}

func (r *PermissionRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entities.Permission, error) {
	var models []*PermissionModel

	db := getDB(ctx, r.db)
	if err := db.Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	permissions := make([]*entities.Permission, len(models))
	for i, model := range models {
		permissions[i] = toPermissionEntity(model)
	}
	return permissions, nil
}

func (r *PermissionRepository) List(ctx context.Context) ([]*entities.Permission, error) {
	var models []*PermissionModel

	db := getDB(ctx, r.db)
	if err := db.Order("key").Find(&models).Error; err != nil {
		return nil, err
	}

	permissions := make([]*entities.Permission, len(models))
	for i, model := range models {
		permissions[i] = toPermissionEntity(model)
	}
	return permissions, nil
}

func (r *PermissionRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	// Remover a permissão de todos os grupos que a referenciam antes
	// de deletar a linha
	if err := db.Exec("DELETE FROM group_permissions WHERE permission_id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&PermissionModel{}, id).Error
}

// GroupRepository implementa repositories.GroupRepository
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository cria um novo GroupRepository
func NewGroupRepository(db *gorm.DB) repositories.GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *entities.Group) error {
	model := toGroupModel(group)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	group.ID = model.ID
	group.CreatedAt = time.Unix(model.CreatedAt, 0)
	group.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*entities.Group, error) {
	var model GroupModel

	db := getDB(ctx, r.db)
	if err := db.Preload("Permissions").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toGroupEntity(&model), nil
}

func (r *GroupRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entities.Group, error) {
	var models []*GroupModel

	db := getDB(ctx, r.db)
	if err := db.Preload("Permissions").Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	groups := make([]*entities.Group, len(models))
	for i, model := range models {
		groups[i] = toGroupEntity(model)
	}
	return groups, nil
}

func (r *GroupRepository) List(ctx context.Context) ([]*entities.Group, error) {
	var models []*GroupModel

	db := getDB(ctx, r.db)
	if err := db.Preload("Permissions").Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	groups := make([]*entities.Group, len(models))
	for i, model := range models {
		groups[i] = toGroupEntity(model)
	}
	return groups, nil
}

func (r *GroupRepository) Update(ctx context.Context, group *entities.Group) error {
	db := getDB(ctx, r.db)
	return db.Model(&GroupModel{}).Where("id = ?", group.ID).Update("name", group.Name).Error
}

func (r *GroupRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	if err := db.Exec("DELETE FROM group_permissions WHERE group_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM job_role_groups WHERE group_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM team_member_groups WHERE group_id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&GroupModel{}, id).Error
}

func (r *GroupRepository) ReplacePermissions(ctx context.Context, groupID uint, permissionIDs []uint) error {
	db := getDB(ctx, r.db)

	permissions := make([]PermissionModel, len(permissionIDs))
	for i, id := range permissionIDs {
		permissions[i] = PermissionModel{ID: id}
	}

	// Association Replace tem exatamente a semântica do contrato:
	// o conjunto final é o informado, nada além
	return db.Model(&GroupModel{ID: groupID}).Association("Permissions").Replace(&permissions)
}

// JobRoleRepository implementa repositories.JobRoleRepository
type JobRoleRepository struct {
	db *gorm.DB
}

// NewJobRoleRepository cria um novo JobRoleRepository
func NewJobRoleRepository(db *gorm.DB) repositories.JobRoleRepository {
	return &JobRoleRepository{db: db}
}

func (r *JobRoleRepository) Create(ctx context.Context, jobRole *entities.JobRole) error {
	model := toJobRoleModel(jobRole)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	jobRole.ID = model.ID
	jobRole.CreatedAt = time.Unix(model.CreatedAt, 0)
	jobRole.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *JobRoleRepository) FindByID(ctx context.Context, id uint) (*entities.JobRole, error) {
	var model JobRoleModel

	db := getDB(ctx, r.db)
	if err := db.Preload("Groups.Permissions").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toJobRoleEntity(&model), nil
}

func (r *JobRoleRepository) List(ctx context.Context) ([]*entities.JobRole, error) {
	var models []*JobRoleModel

	db := getDB(ctx, r.db)
	if err := db.Preload("Groups.Permissions").Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	jobRoles := make([]*entities.JobRole, len(models))
	for i, model := range models {
		jobRoles[i] = toJobRoleEntity(model)
	}
	return jobRoles, nil
}

func (r *JobRoleRepository) ReplaceGroups(ctx context.Context, jobRoleID uint, groupIDs []uint) error {
	db := getDB(ctx, r.db)

	groups := make([]GroupModel, len(groupIDs))
	for i, id := range groupIDs {
		groups[i] = GroupModel{ID: id}
	}

	return db.Model(&JobRoleModel{ID: jobRoleID}).Association("Groups").Replace(&groups)
}

// Conversores

func toPermissionModel(permission *entities.Permission) *PermissionModel {
	return &PermissionModel{
		ID:    permission.ID,
		Key:   permission.Key,
		Label: permission.Label,
	}
}

func toPermissionEntity(model *PermissionModel) *entities.Permission {
	return &entities.Permission{
		ID:        model.ID,
		Key:       model.Key,
		Label:     model.Label,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}
}

func toGroupModel(group *entities.Group) *GroupModel {
	return &GroupModel{
		ID:   group.ID,
		Name: group.Name,
	}
}

func toGroupEntity(model *GroupModel) *entities.Group {
	permissions := make([]entities.Permission, len(model.Permissions))
	for i, p := range model.Permissions {
		permissions[i] = *toPermissionEntity(&p)
	}

	return &entities.Group{
		ID:          model.ID,
		Name:        model.Name,
		Permissions: permissions,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}

func toJobRoleModel(jobRole *entities.JobRole) *JobRoleModel {
	return &JobRoleModel{
		ID:   jobRole.ID,
		Name: jobRole.Name,
	}
}

func toJobRoleEntity(model *JobRoleModel) *entities.JobRole {
	groups := make([]entities.Group, len(model.Groups))
	for i, g := range model.Groups {
		groups[i] = *toGroupEntity(&g)
	}

	return &entities.JobRole{
		ID:        model.ID,
		Name:      model.Name,
		Groups:    groups,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}
