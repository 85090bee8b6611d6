package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
)

// fakePermissionRepo guarda permissões em memória
type fakePermissionRepo struct {
	permissions map[uint]*entities.Permission
	nextID      uint
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{permissions: make(map[uint]*entities.Permission), nextID: 1}
}

func (r *fakePermissionRepo) Create(_ context.Context, p *entities.Permission) error {
	p.ID = r.nextID
	r.nextID++
	r.permissions[p.ID] = p
	return nil
}

func (r *fakePermissionRepo) FindByID(_ context.Context, id uint) (*entities.Permission, error) {
	return r.permissions[id], nil
}

func (r *fakePermissionRepo) FindByKey(_ context.Context, key string) (*entities.Permission, error) {
	for _, p := range r.permissions {
		if p.Key == key {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePermissionRepo) FindByIDs(_ context.Context, ids []uint) ([]*entities.Permission, error) {
	var found []*entities.Permission
	seen := make(map[uint]struct{})
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.permissions[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (r *fakePermissionRepo) List(_ context.Context) ([]*entities.Permission, error) {
	var all []*entities.Permission
	for _, p := range r.permissions {
		all = append(all, p)
	}
	return all, nil
}

func (r *fakePermissionRepo) Delete(_ context.Context, id uint) error {
	delete(r.permissions, id)
	return nil
}

// fakeGroupRepo guarda grupos em memória e registra as substituições
type fakeGroupRepo struct {
	groups       map[uint]*entities.Group
	permRepo     *fakePermissionRepo
	nextID       uint
	replaceCalls [][]uint
}

func newFakeGroupRepo(permRepo *fakePermissionRepo) *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[uint]*entities.Group), permRepo: permRepo, nextID: 1}
}

func (r *fakeGroupRepo) Create(_ context.Context, g *entities.Group) error {
	g.ID = r.nextID
	r.nextID++
	r.groups[g.ID] = g
	return nil
}

func (r *fakeGroupRepo) FindByID(_ context.Context, id uint) (*entities.Group, error) {
	return r.groups[id], nil
}

func (r *fakeGroupRepo) FindByIDs(_ context.Context, ids []uint) ([]*entities.Group, error) {
	var found []*entities.Group
	seen := make(map[uint]struct{})
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if g, ok := r.groups[id]; ok {
			found = append(found, g)
		}
	}
	return found, nil
}

func (r *fakeGroupRepo) List(_ context.Context) ([]*entities.Group, error) {
	var all []*entities.Group
	for _, g := range r.groups {
		all = append(all, g)
	}
	return all, nil
}

func (r *fakeGroupRepo) Update(_ context.Context, g *entities.Group) error {
	r.groups[g.ID] = g
	return nil
}

func (r *fakeGroupRepo) Delete(_ context.Context, id uint) error {
	delete(r.groups, id)
	return nil
}

func (r *fakeGroupRepo) ReplacePermissions(_ context.Context, groupID uint, permissionIDs []uint) error {
	r.replaceCalls = append(r.replaceCalls, permissionIDs)
	group := r.groups[groupID]
	group.Permissions = nil
	for _, id := range permissionIDs {
		if p, ok := r.permRepo.permissions[id]; ok {
			group.Permissions = append(group.Permissions, *p)
		}
	}
	return nil
}

// fakeJobRoleRepo guarda job roles em memória
type fakeJobRoleRepo struct {
	jobRoles  map[uint]*entities.JobRole
	groupRepo *fakeGroupRepo
	nextID    uint
}

func newFakeJobRoleRepo(groupRepo *fakeGroupRepo) *fakeJobRoleRepo {
	return &fakeJobRoleRepo{jobRoles: make(map[uint]*entities.JobRole), groupRepo: groupRepo, nextID: 1}
}

func (r *fakeJobRoleRepo) Create(_ context.Context, j *entities.JobRole) error {
	j.ID = r.nextID
	r.nextID++
	r.jobRoles[j.ID] = j
	return nil
}

func (r *fakeJobRoleRepo) FindByID(_ context.Context, id uint) (*entities.JobRole, error) {
	return r.jobRoles[id], nil
}

func (r *fakeJobRoleRepo) List(_ context.Context) ([]*entities.JobRole, error) {
	var all []*entities.JobRole
	for _, j := range r.jobRoles {
		all = append(all, j)
	}
	return all, nil
}

func (r *fakeJobRoleRepo) ReplaceGroups(_ context.Context, jobRoleID uint, groupIDs []uint) error {
	jobRole := r.jobRoles[jobRoleID]
	jobRole.Groups = nil
	for _, id := range groupIDs {
		if g, ok := r.groupRepo.groups[id]; ok {
			jobRole.Groups = append(jobRole.Groups, *g)
		}
	}
	return nil
}

func setupAccessService(t *testing.T) (*AccessService, *fakePermissionRepo, *fakeGroupRepo, *fakeJobRoleRepo) {
	t.Helper()
	permRepo := newFakePermissionRepo()
	groupRepo := newFakeGroupRepo(permRepo)
	jobRoleRepo := newFakeJobRoleRepo(groupRepo)
	service := NewAccessService(permRepo, groupRepo, jobRoleRepo, fakeUnitOfWork{}, nopLogger{})
	return service, permRepo, groupRepo, jobRoleRepo
}

func TestCreatePermission(t *testing.T) {
	ctx := context.Background()

	t.Run("cria permissão válida", func(t *testing.T) {
		service, _, _, _ := setupAccessService(t)

		permission, err := service.CreatePermission(ctx, "BUSINESS_VIEW", "View businesses")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if permission.ID == 0 {
			t.Error("esperava ID atribuído")
		}
	})

	t.Run("rejeita chave curta antes de tocar o repositório", func(t *testing.T) {
		service, permRepo, _, _ := setupAccessService(t)

		_, err := service.CreatePermission(ctx, "AB", "")
		if err != entities.ErrInvalidPermissionKey {
			t.Fatalf("esperava ErrInvalidPermissionKey, obteve %v", err)
		}
		if len(permRepo.permissions) != 0 {
			t.Error("não esperava permissão persistida")
		}
	})

	t.Run("rejeita chave duplicada", func(t *testing.T) {
		service, _, _, _ := setupAccessService(t)

		if _, err := service.CreatePermission(ctx, "TEAM_VIEW", ""); err != nil {
			t.Fatalf("setup falhou: %v", err)
		}
		_, err := service.CreatePermission(ctx, "TEAM_VIEW", "")
		if err != errors.ErrPermissionKeyExists {
			t.Errorf("esperava ErrPermissionKeyExists, obteve %v", err)
		}
	})
}

func TestSetGroupPermissions(t *testing.T) {
	ctx := context.Background()

	t.Run("substitui o conjunto por inteiro", func(t *testing.T) {
		service, _, groupRepo, _ := setupAccessService(t)

		p1, _ := service.CreatePermission(ctx, "TEAM_VIEW", "")
		p2, _ := service.CreatePermission(ctx, "TEAM_MANAGE", "")
		p3, _ := service.CreatePermission(ctx, "PLAN_VIEW", "")
		group, _ := service.CreateGroup(ctx, "Operators")

		if _, err := service.SetGroupPermissions(ctx, group.ID, []uint{p1.ID, p2.ID}); err != nil {
			t.Fatalf("primeira substituição falhou: %v", err)
		}

		// A segunda lista remove p1/p2 e vincula só p3
		updated, err := service.SetGroupPermissions(ctx, group.ID, []uint{p3.ID})
		if err != nil {
			t.Fatalf("segunda substituição falhou: %v", err)
		}

		got := updated.PermissionKeys()
		want := []string{"PLAN_VIEW"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("esperava %v, obteve %v", want, got)
		}
		if len(groupRepo.replaceCalls) != 2 {
			t.Errorf("esperava 2 substituições, obteve %d", len(groupRepo.replaceCalls))
		}
	})

	t.Run("lista vazia esvazia o grupo", func(t *testing.T) {
		service, _, _, _ := setupAccessService(t)

		p1, _ := service.CreatePermission(ctx, "TEAM_VIEW", "")
		group, _ := service.CreateGroup(ctx, "Operators")
		if _, err := service.SetGroupPermissions(ctx, group.ID, []uint{p1.ID}); err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		updated, err := service.SetGroupPermissions(ctx, group.ID, []uint{})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}
		if len(updated.Permissions) != 0 {
			t.Errorf("esperava grupo vazio, obteve %v", updated.PermissionKeys())
		}
	})

	t.Run("rejeita permissão inexistente sem alterar o grupo", func(t *testing.T) {
		service, _, groupRepo, _ := setupAccessService(t)

		group, _ := service.CreateGroup(ctx, "Operators")
		_, err := service.SetGroupPermissions(ctx, group.ID, []uint{999})
		if err != errors.ErrPermissionNotFound {
			t.Fatalf("esperava ErrPermissionNotFound, obteve %v", err)
		}
		if len(groupRepo.replaceCalls) != 0 {
			t.Error("não esperava substituição aplicada")
		}
	})

	t.Run("grupo inexistente retorna not found", func(t *testing.T) {
		service, _, _, _ := setupAccessService(t)

		_, err := service.SetGroupPermissions(ctx, 42, nil)
		if err != errors.ErrGroupNotFound {
			t.Errorf("esperava ErrGroupNotFound, obteve %v", err)
		}
	})
}

func TestSetJobRoleGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("substitui grupos e reflete nas permissões agregadas", func(t *testing.T) {
		service, _, _, _ := setupAccessService(t)

		p1, _ := service.CreatePermission(ctx, "TEAM_VIEW", "")
		group, _ := service.CreateGroup(ctx, "Viewers")
		if _, err := service.SetGroupPermissions(ctx, group.ID, []uint{p1.ID}); err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		jobRole, _ := service.CreateJobRole(ctx, "Support")
		updated, err := service.SetJobRoleGroups(ctx, jobRole.ID, []uint{group.ID})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}

		got := updated.PermissionKeys()
		if !reflect.DeepEqual(got, []string{"TEAM_VIEW"}) {
			t.Errorf("esperava [TEAM_VIEW], obteve %v", got)
		}
	})

	t.Run("rejeita grupo inexistente", func(t *testing.T) {
		service, _, _, _ := setupAccessService(t)

		jobRole, _ := service.CreateJobRole(ctx, "Support")
		_, err := service.SetJobRoleGroups(ctx, jobRole.ID, []uint{7})
		if err != errors.ErrGroupNotFound {
			t.Errorf("esperava ErrGroupNotFound, obteve %v", err)
		}
	})
}
