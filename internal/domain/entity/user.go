package entity

import (
	"time"

	"github.com/tu-usuario/inventario-desktop/internal/domain"
)

// User representa un usuario del gestor de inventario.
type User struct {
	ID           int64
	Username     string // único, case-sensitive
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         domain.Role
	LastLogin    *time.Time // nil hasta el primer inicio de sesión exitoso
}
