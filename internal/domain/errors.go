package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmptyCart          = errors.New("carrito vacío")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrDuplicateCart: violación del índice único parcial "un carrito Cart por
	// usuario". El caso de uso lo resuelve releyendo el carrito ganador; si
	// llega a un caller externo es un bug, no un error de usuario.
	ErrDuplicateCart = errors.New("carrito duplicado para el usuario")
)

// InsufficientStockError identifica el producto que hizo fallar el checkout.
// Envuelve ErrInsufficientStock para que errors.Is siga funcionando.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s", e.ProductName)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
