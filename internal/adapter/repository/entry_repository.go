package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/domain/entry"
	"github.com/viamercantil/pos-interno/internal/domain/product"
	"github.com/viamercantil/pos-interno/internal/infrastructure/database"
)

// EntryRepository implementa a interface entry.Repository usando PostgreSQL.
// A mutação de estoque acontece na mesma transação da linha de entrada
type EntryRepository struct {
	db       *pgxpool.Pool
	products product.Repository
}

// NewEntryRepository cria uma nova instância de EntryRepository
func NewEntryRepository(db *pgxpool.Pool, products product.Repository) entry.Repository {
	return &EntryRepository{
		db:       db,
		products: products,
	}
}

// Create implementa entry.Repository.Create
func (r *EntryRepository) Create(ctx context.Context, e *entry.Entry) error {
	e.CreatedAt = time.Now()

	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		var supplierID interface{}
		if e.SupplierID != "" {
			supplierID = e.SupplierID
		}
		var createdBy interface{}
		if e.CreatedBy != "" {
			createdBy = e.CreatedBy
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO product_entries (
				id, product_id, supplier_id, quantity, cost_price, sale_price,
				entry_date, notes, created_by, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, e.ID, e.ProductID, supplierID, e.Quantity, e.CostPrice, e.SalePrice,
			e.EntryDate, e.Notes, createdBy, e.CreatedAt)
		if err != nil {
			return fmt.Errorf("falha ao inserir entrada: %w", err)
		}

		// A entrada credita o estoque no mesmo commit
		return r.products.AdjustStock(ctx, tx, e.ProductID, e.StockDelta())
	})
}

// FindByID implementa entry.Repository.FindByID
func (r *EntryRepository) FindByID(ctx context.Context, id string) (*entry.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, `
		SELECT id, product_id, supplier_id::text, quantity, cost_price, sale_price,
		       entry_date, notes, created_by::text, created_at
		FROM product_entries
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entry.ErrEntryNotFound
		}
		return nil, fmt.Errorf("falha ao buscar entrada: %w", err)
	}
	return e, nil
}

// List implementa entry.Repository.List
func (r *EntryRepository) List(ctx context.Context, limit, offset int) ([]*entry.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, supplier_id::text, quantity, cost_price, sale_price,
		       entry_date, notes, created_by::text, created_at
		FROM product_entries
		ORDER BY entry_date DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar entradas: %w", err)
	}
	defer rows.Close()

	entries := make([]*entry.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler entrada: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer entradas: %w", err)
	}

	return entries, nil
}

// Delete implementa entry.Repository.Delete
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, "DELETE FROM product_entries WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("falha ao remover entrada: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entry.ErrEntryNotFound
		}

		// Estornar a quantidade creditada pela entrada
		return r.products.AdjustStock(ctx, tx, e.ProductID, -e.StockDelta())
	})
}

func scanEntry(row pgx.Row) (*entry.Entry, error) {
	e := &entry.Entry{}
	var supplierID, createdBy, notes pgtype.Text

	err := row.Scan(
		&e.ID,
		&e.ProductID,
		&supplierID,
		&e.Quantity,
		&e.CostPrice,
		&e.SalePrice,
		&e.EntryDate,
		&notes,
		&createdBy,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.SupplierID = supplierID.String
	e.CreatedBy = createdBy.String
	e.Notes = notes.String

	return e, nil
}
