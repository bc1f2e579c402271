package entity

import "time"

// Role es el rol cerrado de un usuario. Se mantienen los valores en español
// que viajan en el claim JWT; cualquier otro string es inválido.
type Role string

const (
	RoleCliente Role = "cliente" // compra: carrito y checkout
	RoleEmpresa Role = "empresa" // administra los productos de su Company
	RoleAdmin   Role = "admin"   // administra empresas y usuarios empresa
)

// ParseRole valida un rol recibido desde fuera (claims, requests).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCliente, RoleEmpresa, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User representa un usuario del sistema. CompanyID solo está asignado
// cuando Role es empresa; para clientes y admins queda vacío.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CompanyID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
