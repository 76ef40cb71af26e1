package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/domain/supplier"
)

// SupplierRepository implementa a interface supplier.Repository usando PostgreSQL
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO suppliers (
			id, name, cnpj, contact_name, phone, email, address, city, state,
			notes, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, s.ID, s.Name, s.Cnpj, s.ContactName, s.Phone, s.Email, s.Address, s.City, s.State,
		s.Notes, s.IsActive, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao inserir fornecedor: %w", err)
	}
	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	s := &supplier.Supplier{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, cnpj, contact_name, phone, email, address, city, state,
		       notes, is_active, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Cnpj, &s.ContactName, &s.Phone, &s.Email, &s.Address,
		&s.City, &s.State, &s.Notes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplier.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("falha ao buscar fornecedor: %w", err)
	}

	return s, nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, cnpj, contact_name, phone, email, address, city, state,
		       notes, is_active, created_at, updated_at
		FROM suppliers
		ORDER BY name
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*supplier.Supplier, 0)
	for rows.Next() {
		s := &supplier.Supplier{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Cnpj, &s.ContactName, &s.Phone, &s.Email,
			&s.Address, &s.City, &s.State, &s.Notes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer fornecedores: %w", err)
	}

	return suppliers, nil
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE suppliers
		SET name = $2, cnpj = $3, contact_name = $4, phone = $5, email = $6,
		    address = $7, city = $8, state = $9, notes = $10, is_active = $11, updated_at = $12
		WHERE id = $1
	`, s.ID, s.Name, s.Cnpj, s.ContactName, s.Phone, s.Email, s.Address, s.City,
		s.State, s.Notes, s.IsActive, time.Now())
	if err != nil {
		return fmt.Errorf("falha ao atualizar fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return supplier.ErrSupplierNotFound
	}
	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao remover fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return supplier.ErrSupplierNotFound
	}
	return nil
}

// Count implementa supplier.Repository.Count
func (r *SupplierRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM suppliers").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar fornecedores: %w", err)
	}
	return count, nil
}
