package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
	"github.com/viamercantil/pos-interno/internal/domain/role"
)

// fakeRoleRepo é um repositório de cargos em memória para os testes
type fakeRoleRepo struct {
	roles map[string]*role.Role
	perms map[string]map[string]bool
}

func newFakeRoleRepo(roles ...*role.Role) *fakeRoleRepo {
	f := &fakeRoleRepo{
		roles: make(map[string]*role.Role),
		perms: make(map[string]map[string]bool),
	}
	for _, r := range roles {
		f.roles[r.ID] = r
		f.perms[r.ID] = make(map[string]bool)
	}
	return f
}

func (f *fakeRoleRepo) Create(_ context.Context, r *role.Role) error {
	f.roles[r.ID] = r
	seeded := make(map[string]bool, len(role.PermissionCatalog))
	for _, key := range role.PermissionCatalog {
		seeded[key] = false
	}
	f.perms[r.ID] = seeded
	return nil
}

func (f *fakeRoleRepo) FindByID(_ context.Context, id string) (*role.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, role.ErrRoleNotFound
	}
	return r, nil
}

func (f *fakeRoleRepo) List(_ context.Context) ([]*role.Role, error) {
	result := make([]*role.Role, 0, len(f.roles))
	for _, r := range f.roles {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeRoleRepo) Update(_ context.Context, r *role.Role) error {
	if _, ok := f.roles[r.ID]; !ok {
		return role.ErrRoleNotFound
	}
	f.roles[r.ID] = r
	return nil
}

func (f *fakeRoleRepo) Delete(_ context.Context, id string) error {
	r, ok := f.roles[id]
	if !ok {
		return role.ErrRoleNotFound
	}
	if r.IsMaster {
		return role.ErrMasterUndeletable
	}
	delete(f.roles, id)
	delete(f.perms, id)
	return nil
}

func (f *fakeRoleRepo) FindPermissions(_ context.Context, roleID string) ([]*role.Permission, error) {
	result := make([]*role.Permission, 0)
	for key, allowed := range f.perms[roleID] {
		result = append(result, &role.Permission{RoleID: roleID, PermissionKey: key, Allowed: allowed})
	}
	return result, nil
}

func (f *fakeRoleRepo) UpsertPermissions(_ context.Context, roleID string, updates map[string]bool) error {
	if _, ok := f.perms[roleID]; !ok {
		f.perms[roleID] = make(map[string]bool)
	}
	for key, allowed := range updates {
		f.perms[roleID][key] = allowed
	}
	return nil
}

func masterUser() *internaluser.User {
	return &internaluser.User{
		ID:       "m1",
		Username: "dono",
		RoleID:   "master",
		Role:     &internaluser.RoleRef{ID: "master", Name: "master", IsMaster: true},
		IsActive: true,
	}
}

func sellerUser() *internaluser.User {
	return &internaluser.User{
		ID:       "v1",
		Username: "vendedor",
		RoleID:   "vendedor",
		Role:     &internaluser.RoleRef{ID: "vendedor", Name: "vendedor"},
		IsActive: true,
	}
}

func TestResolvePermissionsEmptyRole(t *testing.T) {
	resolver := NewPermissionResolver(newFakeRoleRepo())

	perms, err := resolver.ResolvePermissions(context.Background(), "")
	if err != nil {
		t.Fatalf("ResolvePermissions: %v", err)
	}
	if len(perms) != 0 {
		t.Fatalf("usuário sem cargo deveria ter mapa vazio, obtido %v", perms)
	}
}

func TestHasPermissionMasterBypass(t *testing.T) {
	resolver := NewPermissionResolver(newFakeRoleRepo())

	// Master passa em qualquer chave, até as que não existem no catálogo
	for _, key := range []string{role.PermSalesCancel, role.PermPermissionsManage, "chave.inventada"} {
		ok, err := resolver.HasPermission(context.Background(), masterUser(), key)
		if err != nil {
			t.Fatalf("HasPermission(%s): %v", key, err)
		}
		if !ok {
			t.Errorf("master deveria ter %s", key)
		}
	}
}

func TestHasPermissionDefaultFalse(t *testing.T) {
	repo := newFakeRoleRepo(&role.Role{ID: "vendedor", Name: "vendedor"})
	resolver := NewPermissionResolver(repo)

	ok, err := resolver.HasPermission(context.Background(), sellerUser(), role.PermSalesCreate)
	if err != nil {
		t.Fatalf("HasPermission: %v", err)
	}
	if ok {
		t.Fatal("permissão nunca persistida deveria ser negada")
	}

	if err := repo.UpsertPermissions(context.Background(), "vendedor", map[string]bool{role.PermSalesCreate: true}); err != nil {
		t.Fatalf("UpsertPermissions: %v", err)
	}

	ok, err = resolver.HasPermission(context.Background(), sellerUser(), role.PermSalesCreate)
	if err != nil {
		t.Fatalf("HasPermission: %v", err)
	}
	if !ok {
		t.Fatal("permissão concedida deveria ser aceita")
	}
}

func TestAllowed(t *testing.T) {
	perms := map[string]bool{role.PermSalesView: true, role.PermSalesCancel: false}

	if !Allowed(sellerUser(), perms, role.PermSalesView) {
		t.Error("sales.view concedida deveria passar")
	}
	if Allowed(sellerUser(), perms, role.PermSalesCancel) {
		t.Error("sales.cancel negada não deveria passar")
	}
	if Allowed(sellerUser(), perms, role.PermReportsView) {
		t.Error("chave ausente do mapa deveria ser negada")
	}
	if !Allowed(masterUser(), nil, role.PermReportsView) {
		t.Error("master passa mesmo sem mapa resolvido")
	}
}

func TestSetPermissionsRejectsMasterRole(t *testing.T) {
	repo := newFakeRoleRepo(&role.Role{ID: "master", Name: "master", IsMaster: true})
	resolver := NewPermissionResolver(repo)

	err := resolver.SetPermissions(context.Background(), "master", map[string]bool{role.PermSalesView: false})
	if !errors.Is(err, role.ErrMasterImmutable) {
		t.Fatalf("esperado ErrMasterImmutable, obtido %v", err)
	}
}

func TestSetPermissionsPartialUpdate(t *testing.T) {
	repo := newFakeRoleRepo()
	if err := repo.Create(context.Background(), &role.Role{ID: "caixa", Name: "caixa"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Estado inicial: catálogo inteiro semeado como false
	if err := repo.UpsertPermissions(context.Background(), "caixa", map[string]bool{role.PermSalesView: true}); err != nil {
		t.Fatalf("UpsertPermissions: %v", err)
	}

	resolver := NewPermissionResolver(repo)
	if err := resolver.SetPermissions(context.Background(), "caixa", map[string]bool{role.PermSalesCreate: true}); err != nil {
		t.Fatalf("SetPermissions: %v", err)
	}

	perms, err := resolver.ResolvePermissions(context.Background(), "caixa")
	if err != nil {
		t.Fatalf("ResolvePermissions: %v", err)
	}
	// A chave informada mudou e as demais ficaram como estavam
	if !perms[role.PermSalesCreate] {
		t.Error("sales.create deveria ter sido concedida")
	}
	if !perms[role.PermSalesView] {
		t.Error("sales.view não deveria ter sido tocada")
	}
	if perms[role.PermSalesCancel] {
		t.Error("sales.cancel continua negada")
	}
}

func TestSetPermissionsUnknownRole(t *testing.T) {
	resolver := NewPermissionResolver(newFakeRoleRepo())

	err := resolver.SetPermissions(context.Background(), "inexistente", map[string]bool{role.PermSalesView: true})
	if !errors.Is(err, role.ErrRoleNotFound) {
		t.Fatalf("esperado ErrRoleNotFound, obtido %v", err)
	}
}
