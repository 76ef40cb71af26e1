package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/internal/infrastructure/database"
)

// ErrRoleDuplicateName indica conflito de nome de cargo
var ErrRoleDuplicateName = errors.New("já existe um cargo com este nome")

// RoleRepository implementa a interface role.Repository usando PostgreSQL
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository cria uma nova instância de RoleRepository
func NewRoleRepository(db *pgxpool.Pool) role.Repository {
	return &RoleRepository{
		db: db,
	}
}

// Create implementa role.Repository.Create. O cargo nasce com todas as chaves
// do catálogo semeadas como false, para que a resolução de permissões nunca
// dependa de linhas ausentes em cargos criados pelo fluxo normal
func (r *RoleRepository) Create(ctx context.Context, ro *role.Role) error {
	now := time.Now()
	ro.CreatedAt = now
	ro.UpdatedAt = now

	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO internal_roles (id, name, description, is_master, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, ro.ID, ro.Name, ro.Description, ro.IsMaster, ro.IsActive, ro.CreatedAt, ro.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrRoleDuplicateName
			}
			return fmt.Errorf("falha ao inserir cargo: %w", err)
		}

		for _, key := range role.PermissionCatalog {
			_, err := tx.Exec(ctx, `
				INSERT INTO internal_permissions (id, role_id, permission_key, allowed)
				VALUES ($1, $2, $3, false)
			`, uuid.New().String(), ro.ID, key)
			if err != nil {
				return fmt.Errorf("falha ao semear permissão %s: %w", key, err)
			}
		}

		return nil
	})
}

// FindByID implementa role.Repository.FindByID
func (r *RoleRepository) FindByID(ctx context.Context, id string) (*role.Role, error) {
	ro := &role.Role{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, is_master, is_active, created_at, updated_at
		FROM internal_roles
		WHERE id = $1
	`, id).Scan(&ro.ID, &ro.Name, &ro.Description, &ro.IsMaster, &ro.IsActive, &ro.CreatedAt, &ro.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, role.ErrRoleNotFound
		}
		return nil, fmt.Errorf("falha ao buscar cargo: %w", err)
	}

	return ro, nil
}

// List implementa role.Repository.List
func (r *RoleRepository) List(ctx context.Context) ([]*role.Role, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, is_master, is_active, created_at, updated_at
		FROM internal_roles
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar cargos: %w", err)
	}
	defer rows.Close()

	roles := make([]*role.Role, 0)
	for rows.Next() {
		ro := &role.Role{}
		if err := rows.Scan(&ro.ID, &ro.Name, &ro.Description, &ro.IsMaster, &ro.IsActive, &ro.CreatedAt, &ro.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler cargo: %w", err)
		}
		roles = append(roles, ro)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer cargos: %w", err)
	}

	return roles, nil
}

// Update implementa role.Repository.Update
func (r *RoleRepository) Update(ctx context.Context, ro *role.Role) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE internal_roles
		SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`, ro.ID, ro.Name, ro.Description, ro.IsActive, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrRoleDuplicateName
		}
		return fmt.Errorf("falha ao atualizar cargo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// Delete implementa role.Repository.Delete
func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	ro, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ro.IsMaster {
		return role.ErrMasterUndeletable
	}

	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM internal_permissions WHERE role_id = $1", id); err != nil {
			return fmt.Errorf("falha ao remover permissões do cargo: %w", err)
		}
		if _, err := tx.Exec(ctx, "DELETE FROM internal_roles WHERE id = $1", id); err != nil {
			return fmt.Errorf("falha ao remover cargo: %w", err)
		}
		return nil
	})
}

// FindPermissions implementa role.Repository.FindPermissions
func (r *RoleRepository) FindPermissions(ctx context.Context, roleID string) ([]*role.Permission, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, role_id, permission_key, allowed
		FROM internal_permissions
		WHERE role_id = $1
	`, roleID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar permissões: %w", err)
	}
	defer rows.Close()

	perms := make([]*role.Permission, 0)
	for rows.Next() {
		p := &role.Permission{}
		if err := rows.Scan(&p.ID, &p.RoleID, &p.PermissionKey, &p.Allowed); err != nil {
			return nil, fmt.Errorf("falha ao ler permissão: %w", err)
		}
		perms = append(perms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer permissões: %w", err)
	}

	return perms, nil
}

// UpsertPermissions implementa role.Repository.UpsertPermissions. O par
// (role_id, permission_key) é único, então o upsert usa ON CONFLICT para
// manter no máximo uma linha por chave
func (r *RoleRepository) UpsertPermissions(ctx context.Context, roleID string, updates map[string]bool) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		for key, allowed := range updates {
			_, err := tx.Exec(ctx, `
				INSERT INTO internal_permissions (id, role_id, permission_key, allowed)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (role_id, permission_key)
				DO UPDATE SET allowed = EXCLUDED.allowed
			`, uuid.New().String(), roleID, key, allowed)
			if err != nil {
				return fmt.Errorf("falha ao gravar permissão %s: %w", key, err)
			}
		}
		return nil
	})
}
