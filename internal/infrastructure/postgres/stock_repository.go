package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, product_id, available_quantity, product_price, total_price, date_created`

// Create persiste el registro de stock de un producto (1:1 con products).
func (r *StockRepo) Create(s *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, product_id, available_quantity, product_price, total_price, date_created)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProductID, s.AvailableQuantity, s.ProductPrice, s.TotalPrice, s.DateCreated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de stock por ID.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock")
}

// GetByProductID obtiene el registro de stock de un producto.
func (r *StockRepo) GetByProductID(productID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE product_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "get stock by product")
}

// GetForUpdate obtiene el stock de un producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *StockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE product_id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "lock stock")
}

// List lista registros de stock paginados.
func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks ORDER BY date_created DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	var out []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.ProductID, &s.AvailableQuantity, &s.ProductPrice, &s.TotalPrice, &s.DateCreated); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Count cuenta los registros de stock.
func (r *StockRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM stocks`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stocks: %w", err)
	}
	return n, nil
}

// Update persiste cantidad, precio y total derivado.
func (r *StockRepo) Update(s *entity.Stock) error {
	query := `
		UPDATE stocks
		SET available_quantity = $2, product_price = $3, total_price = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		s.ID, s.AvailableQuantity, s.ProductPrice, s.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByProductID elimina el registro de stock de un producto.
func (r *StockRepo) DeleteByProductID(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

func (r *StockRepo) scanOne(row pgx.Row, op string) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.ProductID, &s.AvailableQuantity, &s.ProductPrice, &s.TotalPrice, &s.DateCreated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
