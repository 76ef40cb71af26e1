package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/internal/domain/session"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// nopLogger descarta tudo nos testes
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// fakeUserRepo é um repositório de usuários em memória
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

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return internaluser.ErrUserNotFound
	}
	u.PasswordHash = hash
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

func (f *fakeUserRepo) Count(_ context.Context) (int, error) { return len(f.byID), nil }

// fakeSessionRepo é um repositório de sessões em memória
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

// fakeRoleRepo é um repositório de cargos em memória
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
	f.perms[r.ID] = make(map[string]bool)
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
	f.roles[r.ID] = r
	return nil
}

func (f *fakeRoleRepo) Delete(_ context.Context, id string) error {
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

type authFixture struct {
	users    *fakeUserRepo
	roles    *fakeRoleRepo
	sessions *fakeSessionRepo
	service  *auth.SessionService
	router   *gin.Engine
}

func newAuthFixture(t *testing.T, users *fakeUserRepo, roles *fakeRoleRepo) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := newFakeSessionRepo()
	service := auth.NewSessionService(sessions, users, session.DefaultDuration)
	resolver := auth.NewPermissionResolver(roles)
	ctrl := NewAuthController(users, roles, service, resolver, nopLogger{})

	router := gin.New()
	router.POST("/internal-auth", ctrl.Handle)

	return &authFixture{
		users:    users,
		roles:    roles,
		sessions: sessions,
		service:  service,
		router:   router,
	}
}

func (f *authFixture) post(t *testing.T, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/internal-auth", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func newTestUser(t *testing.T, username, password string) *internaluser.User {
	t.Helper()
	u := &internaluser.User{
		ID:       "u-" + username,
		Username: username,
		FullName: "Usuário " + username,
		IsActive: true,
	}
	if err := u.SetPassword(password); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	return u
}

func TestLoginPasswordLengthGateBeforeLookup(t *testing.T) {
	users := newFakeUserRepo(newTestUser(t, "carlos", "senha123"))
	f := newAuthFixture(t, users, newFakeRoleRepo())

	w := f.post(t, map[string]interface{}{
		"action":   "login",
		"username": "carlos",
		"password": "senha1234",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Senha deve ter no máximo 8 caracteres" {
		t.Fatalf("mensagem inesperada: %v", body["error"])
	}
	// A rejeição acontece antes de qualquer consulta de credencial
	if users.lookups != 0 {
		t.Fatalf("lookup de usuário não deveria ter ocorrido, ocorreram %d", users.lookups)
	}
}

func TestLoginGenericErrorMessage(t *testing.T) {
	users := newFakeUserRepo(newTestUser(t, "carlos", "senha123"))
	f := newAuthFixture(t, users, newFakeRoleRepo())

	unknown := f.post(t, map[string]interface{}{
		"action": "login", "username": "ninguem", "password": "senha123",
	})
	wrongPass := f.post(t, map[string]interface{}{
		"action": "login", "username": "carlos", "password": "errada12",
	})

	// Usuário inexistente e senha errada são indistinguíveis na resposta
	if unknown.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d e %d, esperado 401 em ambos", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Fatalf("corpos diferentes: %q vs %q", unknown.Body.String(), wrongPass.Body.String())
	}
	body := decodeBody(t, unknown)
	if body["error"] != "Usuário ou senha inválidos" {
		t.Fatalf("mensagem inesperada: %v", body["error"])
	}
}

func TestLoginDisabledUser(t *testing.T) {
	u := newTestUser(t, "carlos", "senha123")
	u.IsActive = false
	f := newAuthFixture(t, newFakeUserRepo(u), newFakeRoleRepo())

	w := f.post(t, map[string]interface{}{
		"action": "login", "username": "carlos", "password": "senha123",
	})

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, esperado 403", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Usuário desativado. Contate o administrador." {
		t.Fatalf("mensagem inesperada: %v", body["error"])
	}
}

func TestLoginSuccess(t *testing.T) {
	u := newTestUser(t, "carlos", "senha123")
	u.RoleID = "vendedor"
	u.Role = &internaluser.RoleRef{ID: "vendedor", Name: "vendedor"}
	roles := newFakeRoleRepo(&role.Role{ID: "vendedor", Name: "vendedor"})
	roles.perms["vendedor"][role.PermSalesCreate] = true

	users := newFakeUserRepo(u)
	f := newAuthFixture(t, users, roles)

	// Username com caixa alta e espaços é normalizado antes da busca
	w := f.post(t, map[string]interface{}{
		"action": "login", "username": "  CARLOS ", "password": "senha123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("success = %v", body["success"])
	}
	token, _ := body["token"].(string)
	if len(token) != 73 {
		t.Fatalf("token com %d caracteres, esperado 73", len(token))
	}
	perms, _ := body["permissions"].(map[string]interface{})
	if perms[role.PermSalesCreate] != true {
		t.Fatalf("permissões não devolvidas: %v", body["permissions"])
	}
	if u.LastLogin == nil {
		t.Fatal("último login deveria ter sido registrado")
	}
	if _, ok := f.sessions.byToken[token]; !ok {
		t.Fatal("sessão deveria ter sido persistida")
	}
}

func TestValidateSessionFlow(t *testing.T) {
	u := newTestUser(t, "carlos", "senha123")
	f := newAuthFixture(t, newFakeUserRepo(u), newFakeRoleRepo())

	login := f.post(t, map[string]interface{}{
		"action": "login", "username": "carlos", "password": "senha123",
	})
	token := decodeBody(t, login)["token"].(string)

	w := f.post(t, map[string]interface{}{"action": "validate", "token": token})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["valid"] != true {
		t.Fatalf("valid = %v", body["valid"])
	}
	user, _ := body["user"].(map[string]interface{})
	if user["username"] != "carlos" {
		t.Fatalf("usuário inesperado: %v", body["user"])
	}
}

func TestValidateInvalidToken(t *testing.T) {
	f := newAuthFixture(t, newFakeUserRepo(), newFakeRoleRepo())

	w := f.post(t, map[string]interface{}{"action": "validate", "token": "desconhecido"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Sessão inválida" {
		t.Fatalf("mensagem inesperada: %v", body["error"])
	}
	if body["valid"] != false {
		t.Fatalf("valid = %v, esperado false", body["valid"])
	}
}

func TestValidateMissingToken(t *testing.T) {
	f := newAuthFixture(t, newFakeUserRepo(), newFakeRoleRepo())

	w := f.post(t, map[string]interface{}{"action": "validate"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	u := newTestUser(t, "carlos", "senha123")
	f := newAuthFixture(t, newFakeUserRepo(u), newFakeRoleRepo())

	login := f.post(t, map[string]interface{}{
		"action": "login", "username": "carlos", "password": "senha123",
	})
	token := decodeBody(t, login)["token"].(string)

	first := f.post(t, map[string]interface{}{"action": "logout", "token": token})
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", first.Code)
	}

	// O token some e validar de novo falha
	validate := f.post(t, map[string]interface{}{"action": "validate", "token": token})
	if validate.Code != http.StatusUnauthorized {
		t.Fatalf("token revogado deveria ser inválido, status = %d", validate.Code)
	}

	// Logout repetido (ou de token desconhecido) continua retornando sucesso
	second := f.post(t, map[string]interface{}{"action": "logout", "token": token})
	if second.Code != http.StatusOK {
		t.Fatalf("logout repetido deveria retornar 200, obtido %d", second.Code)
	}
}

func TestUnknownAction(t *testing.T) {
	f := newAuthFixture(t, newFakeUserRepo(), newFakeRoleRepo())

	w := f.post(t, map[string]interface{}{"action": "refresh"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Ação inválida" {
		t.Fatalf("mensagem inesperada: %v", body["error"])
	}
}

func TestManagePermissionsRequiresPrivilege(t *testing.T) {
	u := newTestUser(t, "vendedor", "senha123")
	u.RoleID = "vendedor"
	u.Role = &internaluser.RoleRef{ID: "vendedor", Name: "vendedor"}
	roles := newFakeRoleRepo(
		&role.Role{ID: "vendedor", Name: "vendedor"},
		&role.Role{ID: "caixa", Name: "caixa"},
	)
	f := newAuthFixture(t, newFakeUserRepo(u), roles)

	login := f.post(t, map[string]interface{}{
		"action": "login", "username": "vendedor", "password": "senha123",
	})
	token := decodeBody(t, login)["token"].(string)

	w := f.post(t, map[string]interface{}{
		"action":      "manage_permissions",
		"token":       token,
		"role_id":     "caixa",
		"permissions": map[string]bool{role.PermSalesView: true},
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, esperado 403", w.Code)
	}
}

func TestManagePermissionsRejectsMasterTarget(t *testing.T) {
	u := newTestUser(t, "dono", "senha123")
	u.RoleID = "master"
	u.Role = &internaluser.RoleRef{ID: "master", Name: "master", IsMaster: true}
	roles := newFakeRoleRepo(&role.Role{ID: "master", Name: "master", IsMaster: true})
	f := newAuthFixture(t, newFakeUserRepo(u), roles)

	login := f.post(t, map[string]interface{}{
		"action": "login", "username": "dono", "password": "senha123",
	})
	token := decodeBody(t, login)["token"].(string)

	w := f.post(t, map[string]interface{}{
		"action":      "manage_permissions",
		"token":       token,
		"role_id":     "master",
		"permissions": map[string]bool{role.PermSalesView: false},
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, esperado 403", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "As permissões do cargo master não podem ser alteradas" {
		t.Fatalf("mensagem inesperada: %v", body["error"])
	}
}

func TestManagePermissionsSuccess(t *testing.T) {
	u := newTestUser(t, "dono", "senha123")
	u.RoleID = "master"
	u.Role = &internaluser.RoleRef{ID: "master", Name: "master", IsMaster: true}
	roles := newFakeRoleRepo(
		&role.Role{ID: "master", Name: "master", IsMaster: true},
		&role.Role{ID: "caixa", Name: "caixa"},
	)
	f := newAuthFixture(t, newFakeUserRepo(u), roles)

	login := f.post(t, map[string]interface{}{
		"action": "login", "username": "dono", "password": "senha123",
	})
	token := decodeBody(t, login)["token"].(string)

	w := f.post(t, map[string]interface{}{
		"action":      "manage_permissions",
		"token":       token,
		"role_id":     "caixa",
		"permissions": map[string]bool{role.PermSalesView: true, role.PermSalesCreate: true},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
	if !roles.perms["caixa"][role.PermSalesView] || !roles.perms["caixa"][role.PermSalesCreate] {
		t.Fatalf("permissões não aplicadas: %v", roles.perms["caixa"])
	}
}
