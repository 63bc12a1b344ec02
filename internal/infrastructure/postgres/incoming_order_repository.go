package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.IncomingOrderRepository = (*IncomingOrderRepo)(nil)

// IncomingOrderRepo implementación de IncomingOrderRepository sobre PostgreSQL (usable con pool o tx).
type IncomingOrderRepo struct {
	q Querier
}

// NewIncomingOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIncomingOrderRepository(q Querier) *IncomingOrderRepo {
	return &IncomingOrderRepo{q: q}
}

const incomingColumns = `id, product_id, supplier_id, quantity_supply, total_price, supply_date, date_created`

// Create persiste un pedido entrante.
func (r *IncomingOrderRepo) Create(o *entity.IncomingOrder) error {
	query := `
		INSERT INTO incoming_orders (id, product_id, supplier_id, quantity_supply, total_price, supply_date, date_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.ProductID, o.SupplierID, o.QuantitySupply, o.TotalPrice, o.SupplyDate, o.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("insert incoming order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido entrante por ID.
func (r *IncomingOrderRepo) GetByID(id string) (*entity.IncomingOrder, error) {
	query := `SELECT ` + incomingColumns + ` FROM incoming_orders WHERE id = $1`
	var o entity.IncomingOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProductID, &o.SupplierID, &o.QuantitySupply, &o.TotalPrice, &o.SupplyDate, &o.DateCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incoming order: %w", err)
	}
	return &o, nil
}

// List lista pedidos entrantes paginados (vista admin).
func (r *IncomingOrderRepo) List(limit, offset int) ([]*entity.IncomingOrder, error) {
	query := `SELECT ` + incomingColumns + ` FROM incoming_orders ORDER BY date_created DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Count cuenta todos los pedidos entrantes.
func (r *IncomingOrderRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM incoming_orders`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count incoming orders: %w", err)
	}
	return n, nil
}

// ListBySupplier lista los pedidos de un proveedor. El filtro va en la
// consulta, no después de leer.
func (r *IncomingOrderRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.IncomingOrder, error) {
	query := `SELECT ` + incomingColumns + ` FROM incoming_orders WHERE supplier_id = $1 ORDER BY date_created DESC LIMIT $2 OFFSET $3`
	return r.list(query, supplierID, limit, offset)
}

// CountBySupplier cuenta los pedidos de un proveedor.
func (r *IncomingOrderRepo) CountBySupplier(supplierID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM incoming_orders WHERE supplier_id = $1`, supplierID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count incoming orders by supplier: %w", err)
	}
	return n, nil
}

// Update actualiza cantidad y total. supply_date es inmutable.
func (r *IncomingOrderRepo) Update(o *entity.IncomingOrder) error {
	query := `
		UPDATE incoming_orders
		SET quantity_supply = $2, total_price = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, o.ID, o.QuantitySupply, o.TotalPrice)
	if err != nil {
		return fmt.Errorf("update incoming order: %w", err)
	}
	return nil
}

// Delete elimina un pedido entrante.
func (r *IncomingOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM incoming_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete incoming order: %w", err)
	}
	return nil
}

func (r *IncomingOrderRepo) list(query string, args ...any) ([]*entity.IncomingOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list incoming orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.IncomingOrder
	for rows.Next() {
		var o entity.IncomingOrder
		if err := rows.Scan(&o.ID, &o.ProductID, &o.SupplierID, &o.QuantitySupply, &o.TotalPrice, &o.SupplyDate, &o.DateCreated); err != nil {
			return nil, fmt.Errorf("scan incoming order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
