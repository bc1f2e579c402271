package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado por una Company.
// Stock es el inventario disponible; nunca puede quedar negativo
// (lo garantiza el checkout con bloqueo de fila más el CHECK en la tabla).
type Product struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta actual
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
