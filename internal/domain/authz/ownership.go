// Package authz contiene la política de propiedad multi-tenant.
// Las funciones son puras: reciben el Principal explícito (derivado de los
// claims JWT por el middleware) y la entidad, sin estado de request ambiente.
package authz

import (
	"fmt"

	"github.com/jhoicas/Ecommerce-api/internal/domain"
	"github.com/jhoicas/Ecommerce-api/internal/domain/entity"
)

// Principal es la identidad autenticada de la llamada en curso.
// CompanyID solo viene asignado para usuarios con rol empresa.
type Principal struct {
	UserID    string
	Role      entity.Role
	CompanyID string
}

// ErrCompanyNotAssigned: usuario empresa sin CompanyID. Es un error de
// configuración de la cuenta, no "no es dueño de nada"; se distingue del
// ErrForbidden genérico pero sigue siendo un 403 (errors.Is lo envuelve).
var ErrCompanyNotAssigned = fmt.Errorf("usuario empresa sin company_id asignado: %w", domain.ErrForbidden)

// CanMutateProduct decide si el principal puede crear/editar/borrar el
// producto. Solo usuarios empresa de la misma Company; los admins NO tienen
// bypass sobre productos (solo sobre la gestión de empresas).
func CanMutateProduct(p Principal, product *entity.Product) error {
	if p.Role != entity.RoleEmpresa {
		return domain.ErrForbidden
	}
	if p.CompanyID == "" {
		return ErrCompanyNotAssigned
	}
	if product != nil && product.CompanyID != p.CompanyID {
		// El producto existe pero es de otra empresa: Forbidden, no NotFound.
		return domain.ErrForbidden
	}
	return nil
}

// CanManageCompanies decide si el principal puede administrar empresas y
// crear usuarios empresa. Reservado al rol admin.
func CanManageCompanies(p Principal) error {
	if p.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
