package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.OutgoingOrderRepository = (*OutgoingOrderRepo)(nil)

// OutgoingOrderRepo implementación de OutgoingOrderRepository sobre PostgreSQL (usable con pool o tx).
type OutgoingOrderRepo struct {
	q Querier
}

// NewOutgoingOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOutgoingOrderRepository(q Querier) *OutgoingOrderRepo {
	return &OutgoingOrderRepo{q: q}
}

const outgoingColumns = `id, product_id, customer_id, quantity_order, discount, total_price, total_price_to_pay, order_date, date_created`

// Create persiste un pedido saliente.
func (r *OutgoingOrderRepo) Create(o *entity.OutgoingOrder) error {
	query := `
		INSERT INTO outgoing_orders (id, product_id, customer_id, quantity_order, discount, total_price, total_price_to_pay, order_date, date_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.ProductID, o.CustomerID, o.QuantityOrder, o.Discount, o.TotalPrice, o.TotalPriceToPay, o.OrderDate, o.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("insert outgoing order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido saliente por ID.
func (r *OutgoingOrderRepo) GetByID(id string) (*entity.OutgoingOrder, error) {
	query := `SELECT ` + outgoingColumns + ` FROM outgoing_orders WHERE id = $1`
	var o entity.OutgoingOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProductID, &o.CustomerID, &o.QuantityOrder, &o.Discount, &o.TotalPrice, &o.TotalPriceToPay, &o.OrderDate, &o.DateCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outgoing order: %w", err)
	}
	return &o, nil
}

// List lista pedidos salientes paginados (vista admin).
func (r *OutgoingOrderRepo) List(limit, offset int) ([]*entity.OutgoingOrder, error) {
	query := `SELECT ` + outgoingColumns + ` FROM outgoing_orders ORDER BY date_created DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Count cuenta todos los pedidos salientes.
func (r *OutgoingOrderRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM outgoing_orders`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count outgoing orders: %w", err)
	}
	return n, nil
}

// ListByCustomer lista los pedidos de un cliente.
func (r *OutgoingOrderRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.OutgoingOrder, error) {
	query := `SELECT ` + outgoingColumns + ` FROM outgoing_orders WHERE customer_id = $1 ORDER BY date_created DESC LIMIT $2 OFFSET $3`
	return r.list(query, customerID, limit, offset)
}

// CountByCustomer cuenta los pedidos de un cliente.
func (r *OutgoingOrderRepo) CountByCustomer(customerID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM outgoing_orders WHERE customer_id = $1`, customerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count outgoing orders by customer: %w", err)
	}
	return n, nil
}

// Update actualiza cantidad, descuento y totales. order_date es inmutable.
func (r *OutgoingOrderRepo) Update(o *entity.OutgoingOrder) error {
	query := `
		UPDATE outgoing_orders
		SET quantity_order = $2, discount = $3, total_price = $4, total_price_to_pay = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.QuantityOrder, o.Discount, o.TotalPrice, o.TotalPriceToPay,
	)
	if err != nil {
		return fmt.Errorf("update outgoing order: %w", err)
	}
	return nil
}

// Delete elimina un pedido saliente.
func (r *OutgoingOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM outgoing_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete outgoing order: %w", err)
	}
	return nil
}

func (r *OutgoingOrderRepo) list(query string, args ...any) ([]*entity.OutgoingOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list outgoing orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.OutgoingOrder
	for rows.Next() {
		var o entity.OutgoingOrder
		if err := rows.Scan(&o.ID, &o.ProductID, &o.CustomerID, &o.QuantityOrder, &o.Discount, &o.TotalPrice, &o.TotalPriceToPay, &o.OrderDate, &o.DateCreated); err != nil {
			return nil, fmt.Errorf("scan outgoing order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
