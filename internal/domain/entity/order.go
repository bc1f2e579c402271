package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. No hay más transiciones: un carrito pasa a Placed
// en el checkout y a partir de ahí la orden es inmutable.
type OrderStatus string

const (
	StatusCart   OrderStatus = "cart"
	StatusPlaced OrderStatus = "placed"
)

// Order es el carrito activo (Status = cart) o un pedido confirmado
// (Status = placed). Invariante: a lo sumo una orden cart por usuario.
type Order struct {
	ID        string
	UserID    string
	Status    OrderStatus
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total suma quantity * unit_price de todas las líneas.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// OrderItem es una línea del carrito. Invariante: ProductID único dentro de
// la orden; agregar un producto existente suma cantidades en la misma línea.
// UnitPrice se captura del producto al agregarlo por primera vez y no se
// refresca si el precio cambia antes del checkout.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
