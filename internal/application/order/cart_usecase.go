package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ecommerce-api/internal/domain"
	"github.com/jhoicas/Ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/Ecommerce-api/internal/domain/repository"
)

// CartUseCase administra el carrito activo de un cliente: lookup-or-create,
// agregar líneas (merge por producto) y quitar líneas.
type CartUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{orderRepo: orderRepo, productRepo: productRepo}
}

// GetOrCreateCart devuelve la orden cart del usuario, creándola si no existe.
// El índice único parcial (user_id WHERE status='cart') hace imposible que dos
// llamadas concurrentes del mismo usuario creen dos carritos: la que pierde la
// carrera recibe ErrDuplicateCart y relee el carrito ganador.
func (uc *CartUseCase) GetOrCreateCart(userID string) (*entity.Order, error) {
	cart, err := uc.orderRepo.GetCartByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	now := time.Now()
	cart = &entity.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    entity.StatusCart,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orderRepo.CreateCart(cart); err != nil {
		if err == domain.ErrDuplicateCart {
			return uc.orderRepo.GetCartByUser(userID)
		}
		return nil, err
	}
	return cart, nil
}

// AddItem agrega quantity unidades del producto al carrito del usuario.
// Si ya hay una línea para ese producto se suma la cantidad en la misma línea
// (product_id único por orden); el unit_price se captura del precio actual
// del producto solo en la primera inserción y no se refresca después.
func (uc *CartUseCase) AddItem(userID, productID string, quantity int) (*entity.Order, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	cart, err := uc.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}
	item := &entity.OrderItem{
		ID:        uuid.New().String(),
		OrderID:   cart.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}
	if err := uc.orderRepo.UpsertItem(item); err != nil {
		return nil, err
	}
	return uc.orderRepo.GetCartByUser(userID)
}

// RemoveItem quita una línea del carrito del usuario. Una línea inexistente o
// de un carrito ajeno responde NotFound (el borrado está acotado al carrito
// propio, así que un id ajeno simplemente no matchea filas).
func (uc *CartUseCase) RemoveItem(userID, itemID string) error {
	cart, err := uc.orderRepo.GetCartByUser(userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.RemoveItem(cart.ID, itemID)
}
