package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
)

// Erros específicos do repositório de usuários internos
var (
	ErrUserDuplicateUsername = errors.New("já existe um usuário com este nome")
	ErrUserMasterUndeletable = errors.New("o titular do cargo master não pode ser removido")
)

// UserRepository implementa a interface internaluser.Repository usando PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) internaluser.Repository {
	return &UserRepository{
		db: db,
	}
}

const userSelectColumns = `
	u.id, u.username, u.password_hash, u.full_name, u.role_id::text, u.is_active,
	u.last_login, u.created_at, u.updated_at,
	r.id::text, r.name, r.is_master
`

// scanUser lê uma linha do SELECT padrão de usuários com o join de cargo
func scanUser(row pgx.Row) (*internaluser.User, error) {
	u := &internaluser.User{}
	var roleID, roleRefID, roleRefName pgtype.Text
	var roleIsMaster pgtype.Bool
	var lastLogin pgtype.Timestamptz

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.FullName,
		&roleID,
		&u.IsActive,
		&lastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
		&roleRefID,
		&roleRefName,
		&roleIsMaster,
	)
	if err != nil {
		return nil, err
	}

	if roleID.Valid {
		u.RoleID = roleID.String
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	if roleRefID.Valid {
		u.Role = &internaluser.RoleRef{
			ID:       roleRefID.String,
			Name:     roleRefName.String,
			IsMaster: roleIsMaster.Bool,
		}
	}

	return u, nil
}

// Create implementa internaluser.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *internaluser.User) error {
	// O nome é persistido já normalizado para que a unicidade do banco
	// cubra a comparação sem diferenciar caixa
	u.Username = internaluser.NormalizeUsername(u.Username)

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	var roleID interface{}
	if u.RoleID != "" {
		roleID = u.RoleID
	}

	query := `
		INSERT INTO internal_users (
			id, username, password_hash, full_name, role_id, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.Exec(ctx, query,
		u.ID,
		u.Username,
		u.PasswordHash,
		u.FullName,
		roleID,
		u.IsActive,
		u.CreatedAt,
		u.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrUserDuplicateUsername
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	return nil
}

// FindByID implementa internaluser.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*internaluser.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM internal_users u
		LEFT JOIN internal_roles r ON r.id = u.role_id
		WHERE u.id = $1
	`, userSelectColumns)

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internaluser.ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	return u, nil
}

// FindByUsername implementa internaluser.Repository.FindByUsername
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*internaluser.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM internal_users u
		LEFT JOIN internal_roles r ON r.id = u.role_id
		WHERE u.username = $1
	`, userSelectColumns)

	u, err := scanUser(r.db.QueryRow(ctx, query, internaluser.NormalizeUsername(username)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internaluser.ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	return u, nil
}

// List implementa internaluser.Repository.List
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*internaluser.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM internal_users u
		LEFT JOIN internal_roles r ON r.id = u.role_id
		ORDER BY u.username
		LIMIT $1 OFFSET $2
	`, userSelectColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*internaluser.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler usuário: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer usuários: %w", err)
	}

	return users, nil
}

// Update implementa internaluser.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *internaluser.User) error {
	u.Username = internaluser.NormalizeUsername(u.Username)

	var roleID interface{}
	if u.RoleID != "" {
		roleID = u.RoleID
	}

	query := `
		UPDATE internal_users
		SET username = $2, full_name = $3, role_id = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, u.ID, u.Username, u.FullName, roleID, u.IsActive, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrUserDuplicateUsername
		}
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return internaluser.ErrUserNotFound
	}

	return nil
}

// Delete implementa internaluser.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	// O titular do cargo master nunca é removido
	var isMaster bool
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(r.is_master, false)
		FROM internal_users u
		LEFT JOIN internal_roles r ON r.id = u.role_id
		WHERE u.id = $1
	`, id).Scan(&isMaster)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internaluser.ErrUserNotFound
		}
		return fmt.Errorf("falha ao verificar cargo do usuário: %w", err)
	}
	if isMaster {
		return ErrUserMasterUndeletable
	}

	tag, err := r.db.Exec(ctx, "DELETE FROM internal_users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao remover usuário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return internaluser.ErrUserNotFound
	}

	return nil
}

// UpdatePassword implementa internaluser.Repository.UpdatePassword
func (r *UserRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE internal_users SET password_hash = $2, updated_at = $3 WHERE id = $1",
		id, hashedPassword, time.Now())
	if err != nil {
		return fmt.Errorf("falha ao atualizar senha: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return internaluser.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin implementa internaluser.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE internal_users SET last_login = $2 WHERE id = $1",
		id, time.Now())
	if err != nil {
		return fmt.Errorf("falha ao atualizar último login: %w", err)
	}
	return nil
}

// Count implementa internaluser.Repository.Count
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM internal_users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar usuários: %w", err)
	}
	return count, nil
}
