package usecase

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ecommerce-api/internal/application/dto"
	"github.com/jhoicas/Ecommerce-api/internal/domain"
	"github.com/jhoicas/Ecommerce-api/internal/domain/authz"
	"github.com/jhoicas/Ecommerce-api/internal/domain/entity"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductRepo) List(companyID string, limit, offset int) ([]*entity.Product, error) {
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

func (r *fakeProductRepo) Update(p *entity.Product) error {
	return r.Create(p)
}

func (r *fakeProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func empresaPrincipal(companyID string) authz.Principal {
	return authz.Principal{
		UserID:    uuid.New().String(),
		Role:      entity.RoleEmpresa,
		CompanyID: companyID,
	}
}

func TestProductCreate_AssignsPrincipalCompany(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	principal := empresaPrincipal(uuid.New().String())

	out, err := uc.Create(principal, dto.CreateProductRequest{
		Name:  "Escritorio",
		Price: decimal.RequireFromString("180.00"),
		Stock: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, principal.CompanyID, out.CompanyID)
	assert.Equal(t, 4, out.Stock)
}

func TestProductCreate_RejectsNonEmpresa(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	for _, role := range []entity.Role{entity.RoleCliente, entity.RoleAdmin} {
		_, err := uc.Create(authz.Principal{UserID: "u", Role: role, CompanyID: "c"}, dto.CreateProductRequest{
			Name:  "Mesa",
			Price: decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %s", role)
	}
}

func TestProductCreate_RejectsNegativeValues(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	principal := empresaPrincipal(uuid.New().String())

	_, err := uc.Create(principal, dto.CreateProductRequest{Name: "x", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(principal, dto.CreateProductRequest{Name: "x", Price: decimal.NewFromInt(1), Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_OwnershipEnforced(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)
	owner := empresaPrincipal(uuid.New().String())

	created, err := uc.Create(owner, dto.CreateProductRequest{
		Name:  "Lámpara",
		Price: decimal.RequireFromString("35.00"),
		Stock: 6,
	})
	require.NoError(t, err)

	newName := "Lámpara LED"
	// otra empresa: Forbidden, no NotFound (el producto sí existe)
	_, err = uc.Update(empresaPrincipal(uuid.New().String()), created.ID, dto.UpdateProductRequest{Name: &newName})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// admin no salta la propiedad de productos
	admin := authz.Principal{UserID: "a", Role: entity.RoleAdmin}
	_, err = uc.Update(admin, created.ID, dto.UpdateProductRequest{Name: &newName})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// dueño: ok
	out, err := uc.Update(owner, created.ID, dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Lámpara LED", out.Name)
}

func TestProductUpdate_NotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	name := "no importa"
	_, err := uc.Update(empresaPrincipal("c1"), uuid.New().String(), dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_OwnershipEnforced(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)
	owner := empresaPrincipal(uuid.New().String())

	created, err := uc.Create(owner, dto.CreateProductRequest{
		Name:  "Estantería",
		Price: decimal.RequireFromString("75.00"),
	})
	require.NoError(t, err)

	err = uc.Delete(empresaPrincipal(uuid.New().String()), created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(owner, created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_FilterByCompany(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)
	a := empresaPrincipal(uuid.New().String())
	b := empresaPrincipal(uuid.New().String())

	for _, p := range []authz.Principal{a, a, b} {
		_, err := uc.Create(p, dto.CreateProductRequest{Name: "p", Price: decimal.NewFromInt(1)})
		require.NoError(t, err)
	}

	all, err := uc.List("", 50, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)

	onlyA, err := uc.List(a.CompanyID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, onlyA.Items, 2)
}
