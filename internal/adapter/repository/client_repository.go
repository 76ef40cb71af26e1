package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/domain/client"
)

// ClientRepository implementa a interface client.Repository usando PostgreSQL
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

// Create implementa client.Repository.Create. O código sequencial do cliente
// é gerado pelo banco (coluna serial) e lido de volta
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	err := r.db.QueryRow(ctx, `
		INSERT INTO clientes (
			id, empresa_nome, contato, cnpj_cpf, telefone, fax, endereco, bairro,
			cidade_estado, cep, insc_estadual_identidade, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING codigo
	`, c.ID, c.EmpresaNome, c.Contato, c.CnpjCpf, c.Telefone, c.Fax, c.Endereco, c.Bairro,
		c.CidadeEstado, c.Cep, c.InscEstadualIdentidade, c.IsActive, c.CreatedAt, c.UpdatedAt).Scan(&c.Codigo)
	if err != nil {
		return fmt.Errorf("falha ao inserir cliente: %w", err)
	}
	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	c := &client.Client{}
	err := r.db.QueryRow(ctx, `
		SELECT id, codigo, empresa_nome, contato, cnpj_cpf, telefone, fax, endereco,
		       bairro, cidade_estado, cep, insc_estadual_identidade, is_active, created_at, updated_at
		FROM clientes
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Codigo, &c.EmpresaNome, &c.Contato, &c.CnpjCpf, &c.Telefone, &c.Fax,
		&c.Endereco, &c.Bairro, &c.CidadeEstado, &c.Cep, &c.InscEstadualIdentidade,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("falha ao buscar cliente: %w", err)
	}

	return c, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, codigo, empresa_nome, contato, cnpj_cpf, telefone, fax, endereco,
		       bairro, cidade_estado, cep, insc_estadual_identidade, is_active, created_at, updated_at
		FROM clientes
		ORDER BY empresa_nome
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]*client.Client, 0)
	for rows.Next() {
		c := &client.Client{}
		if err := rows.Scan(&c.ID, &c.Codigo, &c.EmpresaNome, &c.Contato, &c.CnpjCpf, &c.Telefone,
			&c.Fax, &c.Endereco, &c.Bairro, &c.CidadeEstado, &c.Cep, &c.InscEstadualIdentidade,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler cliente: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer clientes: %w", err)
	}

	return clients, nil
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE clientes
		SET empresa_nome = $2, contato = $3, cnpj_cpf = $4, telefone = $5, fax = $6,
		    endereco = $7, bairro = $8, cidade_estado = $9, cep = $10,
		    insc_estadual_identidade = $11, is_active = $12, updated_at = $13
		WHERE id = $1
	`, c.ID, c.EmpresaNome, c.Contato, c.CnpjCpf, c.Telefone, c.Fax, c.Endereco,
		c.Bairro, c.CidadeEstado, c.Cep, c.InscEstadualIdentidade, c.IsActive, time.Now())
	if err != nil {
		return fmt.Errorf("falha ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM clientes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao remover cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM clientes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar clientes: %w", err)
	}
	return count, nil
}
