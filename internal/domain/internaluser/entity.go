package internaluser

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength é o limite de tamanho da senha herdado do sistema legado.
// A constante é mantida por compatibilidade com os usuários existentes, ainda
// que o limite baixo seja uma restrição questionável.
const MaxPasswordLength = 8

var (
	ErrEmptyUsername   = errors.New("nome de usuário não pode ser vazio")
	ErrEmptyFullName   = errors.New("nome completo não pode ser vazio")
	ErrPasswordTooLong = errors.New("senha deve ter no máximo 8 caracteres")
	ErrEmptyPassword   = errors.New("senha não pode ser vazia")
)

// RoleRef é a referência ao cargo do usuário, carregada junto com o usuário
type RoleRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsMaster bool   `json:"is_master"`
}

// User representa um usuário interno do sistema
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	RoleID       string     `json:"role_id,omitempty"`
	Role         *RoleRef   `json:"role,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NormalizeUsername aplica a normalização canônica de nomes de usuário:
// remoção de espaços nas pontas e caixa baixa
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// SetPassword valida e configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsMaster verifica se o usuário pertence ao cargo master
func (u *User) IsMaster() bool {
	return u.Role != nil && u.Role.IsMaster
}

// Validate verifica os campos obrigatórios do usuário
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(u.FullName) == "" {
		return ErrEmptyFullName
	}
	return nil
}
