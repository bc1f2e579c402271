package order

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ecommerce-api/internal/domain"
	"github.com/jhoicas/Ecommerce-api/internal/domain/entity"
)

type checkoutFixture struct {
	orderRepo   *memOrderRepo
	productRepo *memProductRepo
	cartUC      *CartUseCase
	checkoutUC  *CheckoutUseCase
}

func newCheckoutFixture() *checkoutFixture {
	orderRepo := newMemOrderRepo()
	productRepo := newMemProductRepo()
	return &checkoutFixture{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartUC:      NewCartUseCase(orderRepo, productRepo),
		checkoutUC:  NewCheckoutUseCase(newMemTxRunner(orderRepo, productRepo)),
	}
}

func TestCheckout_Success(t *testing.T) {
	fx := newCheckoutFixture()
	userID := uuid.New().String()
	p := seedProduct(t, fx.productRepo, "Silla ergonómica", "250.00", 5)

	cart, err := fx.cartUC.AddItem(userID, p.ID, 2)
	require.NoError(t, err)

	orderID, err := fx.checkoutUC.Checkout(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, orderID)

	assert.Equal(t, 3, fx.productRepo.stock(p.ID))

	placed := fx.orderRepo.get(orderID)
	require.NotNil(t, placed)
	assert.Equal(t, entity.StatusPlaced, placed.Status)
	require.Len(t, placed.Items, 1)

	// el próximo acceso al carrito crea uno nuevo vacío
	fresh, err := fx.cartUC.GetOrCreateCart(userID)
	require.NoError(t, err)
	assert.NotEqual(t, orderID, fresh.ID)
	assert.Empty(t, fresh.Items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	fx := newCheckoutFixture()
	userID := uuid.New().String()

	// sin carrito
	_, err := fx.checkoutUC.Checkout(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	// carrito sin líneas
	_, err = fx.cartUC.GetOrCreateCart(userID)
	require.NoError(t, err)
	_, err = fx.checkoutUC.Checkout(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_InsufficientStockLeavesEverythingIntact(t *testing.T) {
	fx := newCheckoutFixture()
	userID := uuid.New().String()
	p1 := seedProduct(t, fx.productRepo, "Laptop", "1500.00", 5)
	p2 := seedProduct(t, fx.productRepo, "Docking station", "200.00", 2)

	_, err := fx.cartUC.AddItem(userID, p1.ID, 3)
	require.NoError(t, err)
	cart, err := fx.cartUC.AddItem(userID, p2.ID, 10)
	require.NoError(t, err)

	_, err = fx.checkoutUC.Checkout(context.Background(), userID)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, p2.ID, stockErr.ProductID)
	assert.Equal(t, "Docking station", stockErr.ProductName)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// todo-o-nada: ningún stock descontado, el carrito sigue en cart
	assert.Equal(t, 5, fx.productRepo.stock(p1.ID))
	assert.Equal(t, 2, fx.productRepo.stock(p2.ID))
	assert.Equal(t, entity.StatusCart, fx.orderRepo.get(cart.ID).Status)

	// el carrito queda utilizable: bajar la cantidad y reintentar funciona
	require.NoError(t, fx.cartUC.RemoveItem(userID, cart.Items[1].ID))
	_, err = fx.checkoutUC.Checkout(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, fx.productRepo.stock(p1.ID))
}

func TestCheckout_ConcurrentBuyersOneWins(t *testing.T) {
	fx := newCheckoutFixture()
	p := seedProduct(t, fx.productRepo, "Edición limitada", "99.00", 1)

	userA := uuid.New().String()
	userB := uuid.New().String()
	_, err := fx.cartUC.AddItem(userA, p.ID, 1)
	require.NoError(t, err)
	_, err = fx.cartUC.AddItem(userB, p.ID, 1)
	require.NoError(t, err)

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, userID := range []string{userA, userB} {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			_, results[i] = fx.checkoutUC.Checkout(context.Background(), userID)
		}(i, userID)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactamente un checkout debe ganar la unidad")
	assert.Equal(t, 1, losses, "el perdedor debe recibir stock insuficiente")
	assert.Equal(t, 0, fx.productRepo.stock(p.ID))
}

func TestCheckout_PlacedOrderIsFinal(t *testing.T) {
	fx := newCheckoutFixture()
	userID := uuid.New().String()
	p := seedProduct(t, fx.productRepo, "Parlante", "80.00", 3)

	_, err := fx.cartUC.AddItem(userID, p.ID, 1)
	require.NoError(t, err)
	orderID, err := fx.checkoutUC.Checkout(context.Background(), userID)
	require.NoError(t, err)

	// segundo checkout sin nuevo carrito: vacío
	_, err = fx.checkoutUC.Checkout(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	// marcar placed de nuevo no matchea filas
	assert.ErrorIs(t, fx.orderRepo.MarkPlaced(orderID), domain.ErrNotFound)
}
