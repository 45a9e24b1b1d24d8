package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrInvalidCredentials es el único resultado de un login fallido: no se
	// distingue usuario inexistente de contraseña incorrecta.
	ErrInvalidCredentials    = errors.New("usuario o contraseña incorrectos")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
)

// ValidationError señala un campo de entrada inválido antes de cualquier escritura.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: campo %q: %s", e.Field, e.Msg)
}

// Is permite detectar el error con errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye un error de validación para el campo indicado.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// InvalidFilterValueError señala un criterio de filtro numérico no parseable.
// El llamador no debe aplicar ningún filtrado cuando lo recibe.
type InvalidFilterValueError struct {
	Field string
	Value string
}

func (e *InvalidFilterValueError) Error() string {
	return fmt.Sprintf("filtro: el campo %q no es numérico: %q", e.Field, e.Value)
}

// Is permite detectar el error con errors.Is(err, ErrInvalidInput).
func (e *InvalidFilterValueError) Is(target error) bool { return target == ErrInvalidInput }
