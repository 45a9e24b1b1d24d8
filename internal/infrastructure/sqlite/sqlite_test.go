package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-desktop/internal/infrastructure/sqlite"
)

// newBaseDB abre una base en memoria con solo el esquema base (sin columnas
// de auditoría), como queda una instalación vieja antes de la evolución.
func newBaseDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(db))
	return db
}

// newTestDB abre una base en memoria lista para usar: esquema base más la
// evolución de columnas de auditoría, igual que el arranque real.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := newBaseDB(t)
	require.NoError(t, sqlite.EnsureAuditColumns(db, time.Now()))
	return db
}
