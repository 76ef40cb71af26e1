package internaluser

import (
	"errors"
	"testing"
)

func TestSetPasswordAndCheck(t *testing.T) {
	u := &User{}
	if err := u.SetPassword("abc12345"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "abc12345" {
		t.Fatalf("senha deveria ser armazenada como hash, obtido %q", u.PasswordHash)
	}
	if !u.CheckPassword("abc12345") {
		t.Fatal("CheckPassword deveria aceitar a senha correta")
	}
	if u.CheckPassword("abc12346") {
		t.Fatal("CheckPassword deveria rejeitar senha errada")
	}
}

func TestSetPasswordTooLong(t *testing.T) {
	u := &User{}
	if err := u.SetPassword("123456789"); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("senha com 9 caracteres deveria ser rejeitada, obtido %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatal("hash não deveria ser definido quando a senha é rejeitada")
	}
}

func TestSetPasswordEmpty(t *testing.T) {
	u := &User{}
	if err := u.SetPassword(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("senha vazia deveria ser rejeitada, obtido %v", err)
	}
}

func TestNormalizeUsername(t *testing.T) {
	cases := map[string]string{
		"Admin":     "admin",
		"  joao  ":  "joao",
		" MARIA ":   "maria",
		"vendedor1": "vendedor1",
	}
	for in, want := range cases {
		if got := NormalizeUsername(in); got != want {
			t.Errorf("NormalizeUsername(%q) = %q, esperado %q", in, got, want)
		}
	}
}

func TestIsMaster(t *testing.T) {
	u := &User{}
	if u.IsMaster() {
		t.Fatal("usuário sem cargo não é master")
	}
	u.Role = &RoleRef{ID: "r1", Name: "vendedor", IsMaster: false}
	if u.IsMaster() {
		t.Fatal("cargo comum não é master")
	}
	u.Role.IsMaster = true
	if !u.IsMaster() {
		t.Fatal("cargo master deveria ser reconhecido")
	}
}

func TestValidate(t *testing.T) {
	u := &User{Username: "admin", FullName: "Administrador"}
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	u = &User{Username: "  ", FullName: "Administrador"}
	if err := u.Validate(); !errors.Is(err, ErrEmptyUsername) {
		t.Fatalf("esperado ErrEmptyUsername, obtido %v", err)
	}

	u = &User{Username: "admin", FullName: ""}
	if err := u.Validate(); !errors.Is(err, ErrEmptyFullName) {
		t.Fatalf("esperado ErrEmptyFullName, obtido %v", err)
	}
}
