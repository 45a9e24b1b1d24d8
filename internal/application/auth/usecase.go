// Package auth implementa el almacén de credenciales: sembrado inicial,
// autenticación y emisión del token de sesión de escritorio.
package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-desktop/internal/application/dto"
	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
	"github.com/tu-usuario/inventario-desktop/internal/domain/repository"
	"github.com/tu-usuario/inventario-desktop/pkg/session"
)

// SessionConfig configuración para la emisión de tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Cuentas semilla creadas en el primer arranque, una por rol.
var seedUsers = []struct {
	username string
	password string
	role     domain.Role
}{
	{"ADMIN", "admin23", domain.RoleAdmin},
	{"PRODUCTOS", "productos19", domain.RoleProductos},
	{"ALMACENES", "almacenes11", domain.RoleAlmacenes},
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	users      repository.UserRepository
	sessionCfg SessionConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, sessionCfg SessionConfig) *UseCase {
	return &UseCase{users: users, sessionCfg: sessionCfg}
}

// SeedDefaults crea las cuentas por defecto si la tabla de usuarios está vacía.
// El chequeo es solo count == 0: en arranques posteriores no vuelve a sembrar.
func (uc *UseCase) SeedDefaults() error {
	n, err := uc.users.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, s := range seedUsers {
		if err := uc.CreateUser(s.username, s.password, s.role); err != nil {
			return err
		}
	}
	return nil
}

// CreateUser persiste un usuario nuevo con la contraseña digerida con bcrypt.
// Devuelve domain.ErrUsernameAlreadyExists si el nombre ya está tomado.
func (uc *UseCase) CreateUser(username, password string, role domain.Role) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.NewValidationError("usuario", "no puede ser vacío")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.Create(&entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// Authenticate verifica usuario/contraseña. Devuelve (nil, nil) tanto para
// usuario inexistente como para contraseña incorrecta: el fallo es uniforme.
// En un acierto estampa last_login (confirmado antes de retornar) y devuelve
// el usuario con el last_login anterior a esta llamada.
func (uc *UseCase) Authenticate(username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	user, err := uc.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	if err := uc.users.TouchLastLogin(user.ID, time.Now()); err != nil {
		return nil, err
	}
	return user, nil
}

// Login autentica y emite el token de sesión para la capa de presentación.
func (uc *UseCase) Login(username, password string) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := session.Generate(uc.sessionCfg.Secret, user.Username,
		string(user.Role), uc.sessionCfg.Issuer, uc.sessionCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *user}, nil
}
