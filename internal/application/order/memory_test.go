package order

import (
	"context"
	"sync"

	"github.com/jhoicas/Ecommerce-api/internal/domain"
	"github.com/jhoicas/Ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/Ecommerce-api/internal/domain/repository"
)

// Fakes en memoria para los tests del paquete. Replican las invariantes que
// en producción viven en los índices únicos de PostgreSQL: una orden cart por
// usuario y product_id único por orden.

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*entity.Order)}
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = make([]entity.OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}

func (r *memOrderRepo) GetCartByUser(userID string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.UserID == userID && o.Status == entity.StatusCart {
			return cloneOrder(o), nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) CreateCart(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.UserID == order.UserID && o.Status == entity.StatusCart {
			return domain.ErrDuplicateCart
		}
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *memOrderRepo) UpsertItem(item *entity.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[item.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range o.Items {
		if o.Items[i].ProductID == item.ProductID {
			// merge: suma cantidades, conserva el unit_price original
			o.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	o.Items = append(o.Items, *item)
	return nil
}

func (r *memOrderRepo) RemoveItem(orderID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memOrderRepo) MarkPlaced(orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok || o.Status != entity.StatusCart {
		return domain.ErrNotFound
	}
	o.Status = entity.StatusPlaced
	return nil
}

func (r *memOrderRepo) get(orderID string) *entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil
	}
	return cloneOrder(o)
}

func (r *memOrderRepo) cartCount(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, o := range r.orders {
		if o.UserID == userID && o.Status == entity.StatusCart {
			n++
		}
	}
	return n
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) put(p *entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *p
	r.products[p.ID] = &c
}

func (r *memProductRepo) stock(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id].Stock
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.put(p)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) List(companyID string, limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if companyID == "" || p.CompanyID == companyID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.put(p)
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) UpdateStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

// memTxRunner serializa las transacciones con un mutex (equivalente al
// bloqueo de filas de la versión PostgreSQL) y restaura un snapshot si fn
// falla, imitando el rollback.
type memTxRunner struct {
	mu          sync.Mutex
	orderRepo   *memOrderRepo
	productRepo *memProductRepo
}

func newMemTxRunner(orderRepo *memOrderRepo, productRepo *memProductRepo) *memTxRunner {
	return &memTxRunner{orderRepo: orderRepo, productRepo: productRepo}
}

func (t *memTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ordersSnap := make(map[string]*entity.Order, len(t.orderRepo.orders))
	t.orderRepo.mu.Lock()
	for id, o := range t.orderRepo.orders {
		ordersSnap[id] = cloneOrder(o)
	}
	t.orderRepo.mu.Unlock()

	productsSnap := make(map[string]*entity.Product, len(t.productRepo.products))
	t.productRepo.mu.Lock()
	for id, p := range t.productRepo.products {
		c := *p
		productsSnap[id] = &c
	}
	t.productRepo.mu.Unlock()

	if err := fn(t.orderRepo, t.productRepo); err != nil {
		t.orderRepo.mu.Lock()
		t.orderRepo.orders = ordersSnap
		t.orderRepo.mu.Unlock()
		t.productRepo.mu.Lock()
		t.productRepo.products = productsSnap
		t.productRepo.mu.Unlock()
		return err
	}
	return nil
}
