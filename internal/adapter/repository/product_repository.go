package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/domain/product"
)

// ProductRepository implementa a interface product.Repository usando PostgreSQL
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO products (
			id, name, description, sku, setor, cost_price, price_varejo,
			price_revenda, stock, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, p.ID, p.Name, p.Description, p.SKU, p.Setor, p.CostPrice, p.PriceVarejo,
		p.PriceRevenda, p.Stock, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao inserir produto: %w", err)
	}
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	p := &product.Product{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, sku, setor, cost_price, price_varejo,
		       price_revenda, stock, is_active, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Setor, &p.CostPrice,
		&p.PriceVarejo, &p.PriceRevenda, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("falha ao buscar produto: %w", err)
	}

	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, sku, setor, cost_price, price_varejo,
		       price_revenda, stock, is_active, created_at, updated_at
		FROM products
		ORDER BY name
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p := &product.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Setor, &p.CostPrice,
			&p.PriceVarejo, &p.PriceRevenda, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer produtos: %w", err)
	}

	return products, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, sku = $4, setor = $5, cost_price = $6,
		    price_varejo = $7, price_revenda = $8, is_active = $9, updated_at = $10
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.SKU, p.Setor, p.CostPrice,
		p.PriceVarejo, p.PriceRevenda, p.IsActive, time.Now())
	if err != nil {
		return fmt.Errorf("falha ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao remover produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar produtos: %w", err)
	}
	return count, nil
}

// AdjustStock implementa product.Repository.AdjustStock. O UPDATE relativo
// (stock = stock + delta) é atômico no banco, o que evita a corrida de
// atualização perdida quando duas vendas do mesmo produto são criadas ao
// mesmo tempo
func (r *ProductRepository) AdjustStock(ctx context.Context, tx pgx.Tx, productID string, delta int) error {
	tag, err := tx.Exec(ctx,
		"UPDATE products SET stock = stock + $2, updated_at = $3 WHERE id = $1",
		productID, delta, time.Now())
	if err != nil {
		return fmt.Errorf("falha ao ajustar estoque do produto %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}
