package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
	"github.com/viamercantil/pos-interno/internal/domain/session"
)

// fakeSessionRepo é um repositório de sessões em memória para os testes
type fakeSessionRepo struct {
	byToken map[string]*session.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byToken: make(map[string]*session.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *session.Session) error {
	f.byToken[s.Token] = s
	return nil
}

func (f *fakeSessionRepo) FindByToken(_ context.Context, token string) (*session.Session, error) {
	s, ok := f.byToken[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) DeleteByID(_ context.Context, id string) error {
	for token, s := range f.byToken {
		if s.ID == id {
			delete(f.byToken, token)
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(f.byToken, token)
	return nil
}

func (f *fakeSessionRepo) DeleteByUser(_ context.Context, userID string) error {
	for token, s := range f.byToken {
		if s.UserID == userID {
			delete(f.byToken, token)
		}
	}
	return nil
}

// fakeUserRepo é um repositório de usuários em memória para os testes
type fakeUserRepo struct {
	byID       map[string]*internaluser.User
	byUsername map[string]*internaluser.User
	lookups    int
}

func newFakeUserRepo(users ...*internaluser.User) *fakeUserRepo {
	f := &fakeUserRepo{
		byID:       make(map[string]*internaluser.User),
		byUsername: make(map[string]*internaluser.User),
	}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byUsername[u.Username] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *internaluser.User) error {
	f.byID[u.ID] = u
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*internaluser.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, internaluser.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*internaluser.User, error) {
	f.lookups++
	u, ok := f.byUsername[internaluser.NormalizeUsername(username)]
	if !ok {
		return nil, internaluser.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*internaluser.User, error) {
	result := make([]*internaluser.User, 0, len(f.byID))
	for _, u := range f.byID {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *internaluser.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return internaluser.ErrUserNotFound
	}
	f.byID[u.ID] = u
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	u, ok := f.byID[id]
	if !ok {
		return internaluser.ErrUserNotFound
	}
	delete(f.byUsername, u.Username)
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hashedPassword string) error {
	u, ok := f.byID[id]
	if !ok {
		return internaluser.ErrUserNotFound
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id string) error {
	u, ok := f.byID[id]
	if !ok {
		return internaluser.ErrUserNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(f.byID), nil
}

func activeUser() *internaluser.User {
	return &internaluser.User{
		ID:       "u1",
		Username: "carlos",
		FullName: "Carlos Silva",
		IsActive: true,
	}
}

func TestCreateSessionTokenFormat(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), newFakeUserRepo(), 0)

	sess, err := svc.CreateSession(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	// Dois UUIDs (36 caracteres cada) ligados por hífen
	if len(sess.Token) != 73 {
		t.Fatalf("token com %d caracteres, esperado 73: %q", len(sess.Token), sess.Token)
	}
	if strings.Count(sess.Token, "-") != 9 {
		t.Fatalf("token com formato inesperado: %q", sess.Token)
	}
	if got := sess.ExpiresAt.Sub(sess.CreatedAt); got != 8*time.Hour {
		t.Fatalf("validade = %v, esperado 8h", got)
	}
}

func TestValidateSessionHappyPath(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := newFakeUserRepo(activeUser())
	svc := NewSessionService(sessions, users, session.DefaultDuration)

	created, err := svc.CreateSession(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	sess, u, err := svc.ValidateSession(context.Background(), created.Token)
	if err != nil {
		t.Fatalf("ValidateSession: %v", err)
	}
	if sess.ID != created.ID {
		t.Fatalf("sessão diferente da criada: %s != %s", sess.ID, created.ID)
	}
	if u.ID != "u1" {
		t.Fatalf("usuário = %s, esperado u1", u.ID)
	}
}

func TestValidateSessionUnknownToken(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), newFakeUserRepo(), session.DefaultDuration)

	_, _, err := svc.ValidateSession(context.Background(), "token-inexistente")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("esperado ErrSessionNotFound, obtido %v", err)
	}
}

func TestValidateSessionExpiredSelfHeals(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := newFakeUserRepo(activeUser())
	svc := NewSessionService(sessions, users, session.DefaultDuration)

	created, err := svc.CreateSession(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	// Avança o relógio além da janela de 8 horas
	svc.Now = func() time.Time { return time.Now().Add(9 * time.Hour) }

	_, _, err = svc.ValidateSession(context.Background(), created.Token)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("esperado ErrSessionExpired, obtido %v", err)
	}

	// A linha expirada foi removida: a segunda validação não a encontra mais
	if _, ok := sessions.byToken[created.Token]; ok {
		t.Fatal("sessão expirada deveria ter sido removida")
	}
	_, _, err = svc.ValidateSession(context.Background(), created.Token)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("esperado ErrSessionNotFound após a limpeza, obtido %v", err)
	}
}

func TestValidateSessionDisabledUser(t *testing.T) {
	sessions := newFakeSessionRepo()
	u := activeUser()
	users := newFakeUserRepo(u)
	svc := NewSessionService(sessions, users, session.DefaultDuration)

	created, err := svc.CreateSession(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	// Desativação derruba o acesso imediatamente, mesmo com sessão vigente
	u.IsActive = false

	_, _, err = svc.ValidateSession(context.Background(), created.Token)
	if !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("esperado ErrUserDisabled, obtido %v", err)
	}
}

func TestValidateSessionOrphan(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := newFakeUserRepo()
	svc := NewSessionService(sessions, users, session.DefaultDuration)

	created, err := svc.CreateSession(context.Background(), "usuario-removido")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	_, _, err = svc.ValidateSession(context.Background(), created.Token)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("sessão órfã deveria ser inválida, obtido %v", err)
	}
}

func TestRevokeSessionIdempotent(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := newFakeUserRepo(activeUser())
	svc := NewSessionService(sessions, users, session.DefaultDuration)

	created, err := svc.CreateSession(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if err := svc.RevokeSession(context.Background(), created.Token); err != nil {
		t.Fatalf("RevokeSession: %v", err)
	}
	// Revogar de novo (ou revogar token desconhecido) não é erro
	if err := svc.RevokeSession(context.Background(), created.Token); err != nil {
		t.Fatalf("revogação repetida deveria ser silenciosa: %v", err)
	}

	_, _, err = svc.ValidateSession(context.Background(), created.Token)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("token revogado deveria ser inválido, obtido %v", err)
	}
}
