package sqlite

import "strings"

// isUniqueViolation verifica si un error del driver es una violación de
// constraint único (incluye la clave primaria de almacenes).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
