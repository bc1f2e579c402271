package repository

import "github.com/jhoicas/Ecommerce-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order/OrderItem.
// La unicidad "una orden cart por usuario" y "product_id único por orden"
// se garantizan en el almacenamiento (índices únicos), no en memoria.
type OrderRepository interface {
	// GetCartByUser devuelve la orden cart del usuario con sus líneas,
	// o nil si no tiene carrito activo.
	GetCartByUser(userID string) (*entity.Order, error)
	// CreateCart inserta una orden cart vacía. Devuelve domain.ErrDuplicateCart
	// si otro carrito cart ya existe para el usuario (carrera de creación).
	CreateCart(order *entity.Order) error
	// UpsertItem inserta la línea o, si ya existe una para (order_id,
	// product_id), suma la cantidad conservando el unit_price original.
	UpsertItem(item *entity.OrderItem) error
	// RemoveItem borra una línea de la orden indicada. domain.ErrNotFound si
	// la línea no existe o pertenece a otra orden.
	RemoveItem(orderID, itemID string) error
	// MarkPlaced transiciona la orden de cart a placed (one-way).
	MarkPlaced(orderID string) error
}
