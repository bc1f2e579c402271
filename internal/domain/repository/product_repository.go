package repository

import "github.com/jhoicas/Ecommerce-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// GetForUpdate y UpdateStock existen para el checkout: se usan solo dentro
// de una transacción (TxRunner) para bloquear la fila y descontar stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(companyID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	UpdateStock(id string, stock int) error
}
