package dto

import "github.com/tu-usuario/inventario-desktop/internal/domain/entity"

// LoginResponse resultado de un login exitoso: el usuario autenticado y un
// token de sesión firmado para que la capa de presentación lo retenga.
type LoginResponse struct {
	Token string
	User  entity.User
}
