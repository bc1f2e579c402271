package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ecommerce-api/internal/domain"
	"github.com/jhoicas/Ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/Ecommerce-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Las invariantes del carrito viven en los índices:
//   - uq_orders_one_cart_per_user: UNIQUE (user_id) WHERE status = 'cart'
//   - uq_order_items_product:      UNIQUE (order_id, product_id)
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetCartByUser devuelve la orden cart del usuario con sus líneas, o nil.
func (r *OrderRepo) GetCartByUser(userID string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, status, created_at, updated_at
		FROM orders WHERE user_id = $1 AND status = $2`
	var o entity.Order
	var status string
	err := r.q.QueryRow(context.Background(), query, userID, string(entity.StatusCart)).Scan(
		&o.ID, &o.UserID, &status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	o.Status = entity.OrderStatus(status)

	items, err := r.itemsByOrder(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// CreateCart inserta una orden cart vacía. El índice único parcial convierte
// la carrera de creación en ErrDuplicateCart, que el caso de uso resuelve
// releyendo el carrito ganador.
func (r *OrderRepo) CreateCart(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, string(order.Status), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCart
		}
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

// UpsertItem inserta la línea o suma la cantidad si ya existe una para el
// mismo producto. El DO UPDATE no toca unit_price: el precio queda capturado
// en la primera inserción aunque el producto cambie de precio después.
func (r *OrderRepo) UpsertItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id, product_id)
		DO UPDATE SET quantity = order_items.quantity + EXCLUDED.quantity`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("upsert order item: %w", err)
	}
	return nil
}

// RemoveItem borra una línea de la orden. El WHERE incluye order_id, así que
// una línea ajena o inexistente no matchea filas y responde NotFound.
func (r *OrderRepo) RemoveItem(orderID, itemID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM order_items WHERE id = $1 AND order_id = $2`,
		itemID, orderID,
	)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkPlaced transiciona la orden de cart a placed. El WHERE sobre status
// hace la transición one-way: una orden ya placed no matchea.
func (r *OrderRepo) MarkPlaced(orderID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`,
		orderID, string(entity.StatusPlaced), string(entity.StatusCart),
	)
	if err != nil {
		return fmt.Errorf("mark order placed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) itemsByOrder(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
