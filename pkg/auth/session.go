package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
	"github.com/viamercantil/pos-interno/internal/domain/session"
)

// Erros de sessão. As mensagens são seguras para o usuário final
var (
	ErrSessionNotFound = errors.New("sessão inválida")
	ErrSessionExpired  = errors.New("sessão expirada")
	ErrUserDisabled    = errors.New("usuário desativado")
)

// SessionService emite, valida e revoga sessões de usuários internos
type SessionService struct {
	sessions session.Repository
	users    internaluser.Repository
	duration time.Duration

	// Now é substituível em testes
	Now func() time.Time
}

// NewSessionService cria uma nova instância de SessionService. A duração da
// sessão pode ser ajustada por SESSION_DURATION_HOURS, com padrão de 8 horas
func NewSessionService(sessions session.Repository, users internaluser.Repository, duration time.Duration) *SessionService {
	if duration <= 0 {
		duration = session.DefaultDuration
	}
	return &SessionService{
		sessions: sessions,
		users:    users,
		duration: duration,
		Now:      time.Now,
	}
}

// CreateSession gera um token opaco e persiste uma nova sessão com janela
// fixa de validade. O token concatena dois UUIDs aleatórios (244 bits de
// aleatoriedade), o mesmo formato emitido pelo sistema anterior
func (s *SessionService) CreateSession(ctx context.Context, userID string) (*session.Session, error) {
	now := s.Now()
	sess := &session.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     uuid.New().String() + "-" + uuid.New().String(),
		ExpiresAt: now.Add(s.duration),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("falha ao criar sessão: %w", err)
	}

	return sess, nil
}

// ValidateSession busca a sessão pelo token e devolve o usuário associado.
// Sessões expiradas são removidas na hora (limpeza preguiçosa) e tratadas
// como inválidas. A validade nunca é estendida por atividade
func (s *SessionService) ValidateSession(ctx context.Context, token string) (*session.Session, *internaluser.User, error) {
	sess, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}

	if sess.IsExpired(s.Now()) {
		// Autolimpeza: a linha expirada nunca volta a ser válida
		if delErr := s.sessions.DeleteByID(ctx, sess.ID); delErr != nil {
			return nil, nil, fmt.Errorf("falha ao remover sessão expirada: %w", delErr)
		}
		return nil, nil, ErrSessionExpired
	}

	u, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		// Sessão órfã: o usuário foi removido mas a linha de sessão sobrou
		if errors.Is(err, internaluser.ErrUserNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}
	if !u.IsActive {
		return nil, nil, ErrUserDisabled
	}

	return sess, u, nil
}

// RevokeSession remove a sessão do token informado. A operação é idempotente:
// revogar um token desconhecido não é erro
func (s *SessionService) RevokeSession(ctx context.Context, token string) error {
	return s.sessions.DeleteByToken(ctx, token)
}
