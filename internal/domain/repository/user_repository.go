package repository

import (
	"time"

	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	// TouchLastLogin estampa la fecha del último inicio de sesión del usuario.
	TouchLastLogin(id int64, at time.Time) error
	List() ([]*entity.User, error)
	Count() (int64, error)
}
