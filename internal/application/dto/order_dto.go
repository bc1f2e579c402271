package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddItemRequest entrada para agregar un producto al carrito.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderItemResponse línea del carrito/pedido. UnitPrice es el precio
// capturado al agregar la línea, no el precio actual del producto.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse carrito activo o pedido confirmado.
type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
}

// CheckoutResponse confirmación de pedido.
type CheckoutResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}
