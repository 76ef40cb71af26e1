package session

import (
	"time"
)

// DefaultDuration é a janela fixa de validade de uma sessão. A sessão nunca é
// renovada por atividade: expira exatamente 8 horas após o login
const DefaultDuration = 8 * time.Hour

// Session representa uma sessão autenticada de um usuário interno
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired verifica se a sessão já passou da janela de validade
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
