package auth

import (
	"context"
	"fmt"

	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
	"github.com/viamercantil/pos-interno/internal/domain/role"
)

// PermissionResolver resolve as permissões efetivas de um cargo
type PermissionResolver struct {
	roles role.Repository
}

// NewPermissionResolver cria uma nova instância de PermissionResolver
func NewPermissionResolver(roles role.Repository) *PermissionResolver {
	return &PermissionResolver{roles: roles}
}

// ResolvePermissions monta o mapa de permissões do cargo a partir das linhas
// persistidas. Chaves ausentes são tratadas como false pelo consumidor
func (r *PermissionResolver) ResolvePermissions(ctx context.Context, roleID string) (map[string]bool, error) {
	if roleID == "" {
		return map[string]bool{}, nil
	}

	perms, err := r.roles.FindPermissions(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("falha ao resolver permissões: %w", err)
	}

	result := make(map[string]bool, len(perms))
	for _, p := range perms {
		result[p.PermissionKey] = p.Allowed
	}
	return result, nil
}

// HasPermission verifica se o usuário possui a permissão. O cargo master
// curto-circuita a verificação: tem todas as permissões, inclusive chaves que
// nunca foram persistidas, e nunca depende das linhas da tabela
func (r *PermissionResolver) HasPermission(ctx context.Context, u *internaluser.User, key string) (bool, error) {
	if u.IsMaster() {
		return true, nil
	}
	perms, err := r.ResolvePermissions(ctx, u.RoleID)
	if err != nil {
		return false, err
	}
	return perms[key], nil
}

// Allowed aplica a mesma regra do HasPermission sobre um mapa já resolvido
func Allowed(u *internaluser.User, perms map[string]bool, key string) bool {
	if u.IsMaster() {
		return true
	}
	return perms[key]
}

// SetPermissions aplica uma atualização parcial às permissões do cargo:
// chaves listadas são atualizadas ou inseridas, as demais ficam como estão.
// O cargo master é rejeitado antes de chegar aqui pelo gateway, mas a regra
// é verificada de novo para proteger chamadas fora do fluxo normal
func (r *PermissionResolver) SetPermissions(ctx context.Context, roleID string, updates map[string]bool) error {
	target, err := r.roles.FindByID(ctx, roleID)
	if err != nil {
		return err
	}
	if target.IsMaster {
		return role.ErrMasterImmutable
	}
	if len(updates) == 0 {
		return nil
	}
	return r.roles.UpsertPermissions(ctx, roleID, updates)
}
