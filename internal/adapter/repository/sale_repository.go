package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/domain/product"
	"github.com/viamercantil/pos-interno/internal/domain/sale"
	"github.com/viamercantil/pos-interno/internal/infrastructure/database"
)

// SaleRepository implementa a interface sale.Repository usando PostgreSQL.
// Criação e cancelamento são unidades atômicas: venda, itens e ajustes de
// estoque entram no mesmo commit, de modo que uma falha no meio não deixa
// venda órfã nem estoque debitado pela metade
type SaleRepository struct {
	db       *pgxpool.Pool
	products product.Repository
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool, products product.Repository) sale.Repository {
	return &SaleRepository{
		db:       db,
		products: products,
	}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		var clientID interface{}
		if s.ClientID != "" {
			clientID = s.ClientID
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO sales (
				id, client_id, attendant_name, payment_method, subtotal, discount,
				total, notes, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, s.ID, clientID, s.AttendantName, string(s.PaymentMethod), s.Subtotal,
			s.Discount, s.Total, s.Notes, string(s.Status), s.CreatedAt, s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("falha ao inserir venda: %w", err)
		}

		for _, item := range s.Items {
			item.SaleID = s.ID
			_, err := tx.Exec(ctx, `
				INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, total)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, item.ID, item.SaleID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Total)
			if err != nil {
				return fmt.Errorf("falha ao inserir item da venda: %w", err)
			}
		}

		// Os itens debitam o estoque no mesmo commit
		for _, delta := range sale.StockDebits(s.Items) {
			if err := r.products.AdjustStock(ctx, tx, delta.ProductID, delta.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx, `
		SELECT id, client_id::text, attendant_name, payment_method, subtotal, discount,
		       total, notes, status, created_at, updated_at
		FROM sales
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("falha ao buscar venda: %w", err)
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, client_id::text, attendant_name, payment_method, subtotal, discount,
		       total, notes, status, created_at, updated_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer vendas: %w", err)
	}

	for _, s := range sales {
		items, err := r.findItems(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}

	return sales, nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM sales").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar vendas: %w", err)
	}
	return count, nil
}

// Cancel implementa sale.Repository.Cancel. A entidade já foi transicionada
// em memória (status cancelled, valores zerados); aqui os itens são removidos
// com a devolução de estoque de cada um, tudo na mesma transação que grava o
// novo status
func (r *SaleRepository) Cancel(ctx context.Context, s *sale.Sale) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT product_id, quantity FROM sale_items WHERE sale_id = $1", s.ID)
		if err != nil {
			return fmt.Errorf("falha ao buscar itens da venda: %w", err)
		}

		items := make([]*sale.Item, 0)
		for rows.Next() {
			item := &sale.Item{}
			if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
				rows.Close()
				return fmt.Errorf("falha ao ler item da venda: %w", err)
			}
			items = append(items, item)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("falha ao percorrer itens da venda: %w", err)
		}

		if _, err := tx.Exec(ctx, "DELETE FROM sale_items WHERE sale_id = $1", s.ID); err != nil {
			return fmt.Errorf("falha ao remover itens da venda: %w", err)
		}

		// Devolver o estoque de cada item removido
		for _, delta := range sale.StockReturns(items) {
			if err := r.products.AdjustStock(ctx, tx, delta.ProductID, delta.Quantity); err != nil {
				return err
			}
		}

		tag, err := tx.Exec(ctx, `
			UPDATE sales
			SET status = $2, subtotal = 0, discount = 0, total = 0, updated_at = $3
			WHERE id = $1
		`, s.ID, string(sale.StatusCancelled), s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("falha ao cancelar venda: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return sale.ErrSaleNotFound
		}

		return nil
	})
}

// Update implementa sale.Repository.Update. Apenas os campos mutáveis são
// gravados; itens e subtotal nunca mudam depois da criação
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	var clientID interface{}
	if s.ClientID != "" {
		clientID = s.ClientID
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE sales
		SET client_id = $2, payment_method = $3, discount = $4, total = $5,
		    notes = $6, updated_at = $7
		WHERE id = $1
	`, s.ID, clientID, string(s.PaymentMethod), s.Discount, s.Total, s.Notes, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao atualizar venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}
	return nil
}

// Report implementa sale.Repository.Report. O custo de cada venda é calculado
// com o preço de custo corrente do cadastro de produtos, não com um snapshot:
// editar o custo de um produto desloca o lucro histórico, comportamento
// assumido do sistema
func (r *SaleRepository) Report(ctx context.Context, from, to time.Time) ([]*sale.ReportRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.total, s.status, s.created_at,
		       COALESCE(SUM(i.quantity * p.cost_price), 0)
		FROM sales s
		LEFT JOIN sale_items i ON i.sale_id = s.id
		LEFT JOIN products p ON p.id = i.product_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		GROUP BY s.id, s.total, s.status, s.created_at
		ORDER BY s.created_at
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar relatório de vendas: %w", err)
	}
	defer rows.Close()

	result := make([]*sale.ReportRow, 0)
	for rows.Next() {
		row := &sale.ReportRow{}
		var status string
		if err := rows.Scan(&row.SaleID, &row.Total, &status, &row.CreatedAt, &row.Cost); err != nil {
			return nil, fmt.Errorf("falha ao ler linha do relatório: %w", err)
		}
		row.Status = sale.Status(status)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer relatório: %w", err)
	}

	return result, nil
}

func (r *SaleRepository) findItems(ctx context.Context, saleID string) ([]*sale.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, total
		FROM sale_items
		WHERE sale_id = $1
	`, saleID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	items := make([]*sale.Item, 0)
	for rows.Next() {
		item := &sale.Item{}
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, fmt.Errorf("falha ao ler item da venda: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer itens da venda: %w", err)
	}

	return items, nil
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	s := &sale.Sale{}
	var clientID pgtype.Text
	var paymentMethod, status string

	err := row.Scan(
		&s.ID,
		&clientID,
		&s.AttendantName,
		&paymentMethod,
		&s.Subtotal,
		&s.Discount,
		&s.Total,
		&s.Notes,
		&status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.ClientID = clientID.String
	s.PaymentMethod = sale.PaymentMethod(paymentMethod)
	s.Status = sale.Status(status)

	return s, nil
}
