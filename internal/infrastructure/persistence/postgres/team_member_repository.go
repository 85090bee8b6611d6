package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
	"github.com/promobandhu/admin-backend/internal/domain/valueobjects"
)

// TeamMemberRepository implementa repositories.TeamMemberRepository
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository cria um novo TeamMemberRepository
func NewTeamMemberRepository(db *gorm.DB) repositories.TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	model := r.toModel(member)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.Omit("JobRole", "ExtraGroups").Create(model).Error; err != nil {
		return err
	}

	member.ID = model.ID
	member.CreatedAt = time.Unix(model.CreatedAt, 0)
	member.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *TeamMemberRepository) FindByID(ctx context.Context, id string) (*entities.TeamMember, error) {
	var model TeamMemberModel

	db := getDB(ctx, r.db)
	// Soft delete: ignorar registros deletados
	err := db.Preload("JobRole.Groups.Permissions").
		Preload("ExtraGroups.Permissions").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *TeamMemberRepository) FindByEmail(ctx context.Context, email string) (*entities.TeamMember, error) {
	var model TeamMemberModel

	db := getDB(ctx, r.db)
	// Soft delete: ignorar registros deletados
	err := db.Preload("JobRole.Groups.Permissions").
		Preload("ExtraGroups.Permissions").
		Where("email = ? AND deleted_at IS NULL", email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *entities.TeamMember) error {
	model := r.toModel(member)

	db := getDB(ctx, r.db)
	return db.Omit("JobRole", "ExtraGroups", "CreatedAt").Save(model).Error
}

func (r *TeamMemberRepository) ReplaceExtraGroups(ctx context.Context, memberID string, groupIDs []uint) error {
	db := getDB(ctx, r.db)

	groups := make([]GroupModel, len(groupIDs))
	for i, id := range groupIDs {
		groups[i] = GroupModel{ID: id}
	}

	return db.Model(&TeamMemberModel{ID: memberID}).Association("ExtraGroups").Replace(&groups)
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&TeamMemberModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *TeamMemberRepository) List(ctx context.Context, filters repositories.TeamMemberFilters) ([]*entities.TeamMember, int64, error) {
	db := getDB(ctx, r.db)

	query := db.Model(&TeamMemberModel{}).
		Joins("LEFT JOIN job_roles ON job_roles.id = team_members.job_role_id").
		Where("team_members.deleted_at IS NULL")

	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where(
			"team_members.email ILIKE ? OR team_members.mobile ILIKE ? OR job_roles.name ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filters.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	var models []*TeamMemberModel
	err := query.
		Preload("JobRole.Groups.Permissions").
		Preload("ExtraGroups.Permissions").
		Order("team_members.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	members := make([]*entities.TeamMember, 0, len(models))
	for _, model := range models {
		member, err := r.toEntity(model)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, member)
	}

	return members, total, nil
}

// Conversores

func (r *TeamMemberRepository) toModel(member *entities.TeamMember) *TeamMemberModel {
	var deletedAt *int64
	if member.DeletedAt != nil {
		ts := member.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &TeamMemberModel{
		ID:           member.ID,
		Email:        member.Email.String(),
		Mobile:       member.Mobile,
		PasswordHash: member.PasswordHash,
		JobRoleID:    member.JobRole.ID,
		CreatedAt:    member.CreatedAt.Unix(),
		UpdatedAt:    member.UpdatedAt.Unix(),
		DeletedAt:    deletedAt,
	}
}

func (r *TeamMemberRepository) toEntity(model *TeamMemberModel) (*entities.TeamMember, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	extraGroups := make([]entities.Group, len(model.ExtraGroups))
	for i, g := range model.ExtraGroups {
		extraGroups[i] = *toGroupEntity(&g)
	}

	return &entities.TeamMember{
		ID:           model.ID,
		Email:        email,
		Mobile:       model.Mobile,
		PasswordHash: model.PasswordHash,
		JobRole:      *toJobRoleEntity(&model.JobRole),
		ExtraGroups:  extraGroups,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
		DeletedAt:    deletedAt,
	}, nil
}
