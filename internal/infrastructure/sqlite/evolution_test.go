package sqlite_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-desktop/internal/infrastructure/sqlite"
)

// countColumns cuenta las columnas actuales de una tabla vía PRAGMA.
func countColumns(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	require.NoError(t, err)
	defer rows.Close()
	n := 0
	for rows.Next() {
		n++
	}
	require.NoError(t, rows.Err())
	return n
}

func TestEnsureAuditColumns_AgregaLasTresColumnas(t *testing.T) {
	db := newBaseDB(t)

	// Esquema base: products tiene 6 columnas, warehouses 2.
	require.Equal(t, 6, countColumns(t, db, "products"))
	require.Equal(t, 2, countColumns(t, db, "warehouses"))

	require.NoError(t, sqlite.EnsureAuditColumns(db, time.Now()))

	assert.Equal(t, 9, countColumns(t, db, "products"))
	assert.Equal(t, 5, countColumns(t, db, "warehouses"))
}

func TestEnsureAuditColumns_EsIdempotente(t *testing.T) {
	db := newBaseDB(t)

	require.NoError(t, sqlite.EnsureAuditColumns(db, time.Now()))
	require.NoError(t, sqlite.EnsureAuditColumns(db, time.Now()),
		"correr la evolución dos veces seguidas no debe fallar")

	assert.Equal(t, 9, countColumns(t, db, "products"),
		"no deben duplicarse columnas")
}

func TestEnsureAuditColumns_RellenaFilasPreexistentes(t *testing.T) {
	db := newBaseDB(t)

	// Fila creada antes de que existiera la auditoría.
	_, err := db.Exec(
		`INSERT INTO products (name, description, price, stock, warehouse_id)
		 VALUES ('legado', '', '1.50', 2, 1)`)
	require.NoError(t, err)

	evolutionTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	require.NoError(t, sqlite.EnsureAuditColumns(db, evolutionTime))

	var createdAt sql.NullString
	require.NoError(t, db.QueryRow(
		`SELECT created_at FROM products WHERE name = 'legado'`).Scan(&createdAt))
	require.True(t, createdAt.Valid, "la fila legada debe quedar con created_at")
	assert.Equal(t, evolutionTime.Format(sqlite.TimeLayout), createdAt.String)
}

func TestEnsureAuditColumns_NoTocaFilasConCreatedAt(t *testing.T) {
	db := newBaseDB(t)

	firstRun := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	require.NoError(t, sqlite.EnsureAuditColumns(db, firstRun))

	// Fila creada después de la evolución, con su propio created_at.
	original := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	_, err := db.Exec(
		`INSERT INTO products (name, description, price, stock, warehouse_id, created_at)
		 VALUES ('nuevo', '', '2.00', 1, 1, ?)`,
		original.Format(sqlite.TimeLayout))
	require.NoError(t, err)

	// Una corrida posterior no debe sobreescribir el created_at existente.
	secondRun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	require.NoError(t, sqlite.EnsureAuditColumns(db, secondRun))

	var createdAt string
	require.NoError(t, db.QueryRow(
		`SELECT created_at FROM products WHERE name = 'nuevo'`).Scan(&createdAt))
	assert.Equal(t, original.Format(sqlite.TimeLayout), createdAt)
}
