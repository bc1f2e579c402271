package order

import (
	"sort"

	"github.com/jhoicas/Ecommerce-api/internal/domain"
	"github.com/jhoicas/Ecommerce-api/internal/domain/repository"
)

// Reservation pide quantity unidades de un producto.
type Reservation struct {
	ProductID string
	Quantity  int
}

// StockLedger descuenta inventario de forma todo-o-nada. Debe usarse con un
// ProductRepository atado a la transacción del checkout: los SELECT FOR UPDATE
// serializan checkouts concurrentes que compiten por las mismas unidades.
type StockLedger struct {
	productRepo repository.ProductRepository
}

// NewStockLedger construye el ledger sobre el repositorio (pool o tx).
func NewStockLedger(productRepo repository.ProductRepository) *StockLedger {
	return &StockLedger{productRepo: productRepo}
}

// Reserve valida la disponibilidad de TODAS las reservas antes de mutar
// CUALQUIER stock. Primera fase: bloquear cada fila (FOR UPDATE, en orden de
// product_id para no generar deadlocks entre checkouts cruzados) y verificar
// quantity <= stock; la primera violación aborta con InsufficientStockError y
// cero mutaciones. Segunda fase: descontar todas las cantidades.
func (l *StockLedger) Reserve(items []Reservation) error {
	if len(items) == 0 {
		return nil
	}
	sorted := make([]Reservation, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	remaining := make(map[string]int, len(sorted))
	for _, it := range sorted {
		product, err := l.productRepo.GetForUpdate(it.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if it.Quantity > product.Stock {
			return &domain.InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
		}
		remaining[it.ProductID] = product.Stock - it.Quantity
	}
	for _, it := range sorted {
		if err := l.productRepo.UpdateStock(it.ProductID, remaining[it.ProductID]); err != nil {
			return err
		}
	}
	return nil
}
