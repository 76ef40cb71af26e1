package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/viamercantil/pos-interno/internal/adapter/repository"
	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
	"github.com/viamercantil/pos-interno/internal/infrastructure/database"
)

// Cria o usuário administrador inicial vinculado ao cargo master. O cargo em
// si já é semeado pela migração; aqui só falta o usuário, que precisa de um
// hash bcrypt gerado em tempo de execução.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	username := getEnv("SEED_ADMIN_USERNAME", "admin")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")
	fullName := getEnv("SEED_ADMIN_NAME", "Administrador")

	db, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := repository.NewUserRepository(db)

	if _, err := users.FindByUsername(ctx, username); err == nil {
		log.Printf("Usuário %q já existe, nada a fazer", username)
		return
	} else if !errors.Is(err, internaluser.ErrUserNotFound) {
		log.Fatalf("Erro ao verificar usuário existente: %v", err)
	}

	var masterRoleID string
	err = db.QueryRow(ctx, "SELECT id::text FROM internal_roles WHERE is_master = true LIMIT 1").Scan(&masterRoleID)
	if err != nil {
		log.Fatalf("Erro ao localizar o cargo master (as migrações foram executadas?): %v", err)
	}

	u := &internaluser.User{
		ID:       uuid.New().String(),
		Username: username,
		FullName: fullName,
		RoleID:   masterRoleID,
		IsActive: true,
	}
	if err := u.SetPassword(password); err != nil {
		log.Fatalf("Erro ao definir a senha do administrador: %v", err)
	}

	if err := users.Create(ctx, u); err != nil {
		log.Fatalf("Erro ao criar o usuário administrador: %v", err)
	}

	log.Printf("Usuário administrador %q criado com sucesso", username)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
