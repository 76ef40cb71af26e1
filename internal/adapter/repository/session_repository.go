package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/domain/session"
)

// SessionRepository implementa a interface session.Repository usando PostgreSQL
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository cria uma nova instância de SessionRepository
func NewSessionRepository(db *pgxpool.Pool) session.Repository {
	return &SessionRepository{
		db: db,
	}
}

// Create implementa session.Repository.Create
func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO internal_sessions (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID, s.UserID, s.Token, s.ExpiresAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao inserir sessão: %w", err)
	}
	return nil
}

// FindByToken implementa session.Repository.FindByToken
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*session.Session, error) {
	s := &session.Session{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, token, expires_at, created_at
		FROM internal_sessions
		WHERE token = $1
	`, token).Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao buscar sessão: %w", err)
	}

	return s, nil
}

// DeleteByID implementa session.Repository.DeleteByID
func (r *SessionRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM internal_sessions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao remover sessão: %w", err)
	}
	return nil
}

// DeleteByToken implementa session.Repository.DeleteByToken
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM internal_sessions WHERE token = $1", token)
	if err != nil {
		return fmt.Errorf("falha ao remover sessão: %w", err)
	}
	return nil
}

// DeleteByUser implementa session.Repository.DeleteByUser
func (r *SessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM internal_sessions WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("falha ao remover sessões do usuário: %w", err)
	}
	return nil
}
