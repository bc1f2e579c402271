package order

import (
	"context"

	"github.com/jhoicas/Ecommerce-api/internal/domain"
	"github.com/jhoicas/Ecommerce-api/internal/domain/repository"
)

// CheckoutUseCase convierte el carrito del usuario en un pedido confirmado:
// valida las líneas, descuenta stock vía StockLedger y marca la orden como
// placed, todo dentro de una sola transacción.
type CheckoutUseCase struct {
	txRunner TxRunner
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(txRunner TxRunner) *CheckoutUseCase {
	return &CheckoutUseCase{txRunner: txRunner}
}

// Checkout ejecuta la transición Cart -> Placed del carrito del usuario y
// devuelve el id del pedido. Carrito ausente o sin líneas: ErrEmptyCart.
// Cualquier línea sin stock suficiente: InsufficientStockError con el nombre
// del producto y ninguna mutación (rollback de la tx completa). Después de un
// checkout exitoso la orden es inmutable y el próximo acceso al carrito crea
// uno nuevo vacío.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string) (string, error) {
	var orderID string
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		cart, err := orderRepo.GetCartByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return domain.ErrEmptyCart
		}

		reservations := make([]Reservation, 0, len(cart.Items))
		for _, it := range cart.Items {
			reservations = append(reservations, Reservation{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		ledger := NewStockLedger(productRepo)
		if err := ledger.Reserve(reservations); err != nil {
			return err
		}

		if err := orderRepo.MarkPlaced(cart.ID); err != nil {
			return err
		}
		orderID = cart.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return orderID, nil
}
