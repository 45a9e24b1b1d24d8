package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Columnas de auditoría que la evolución agrega a cada tabla de entidades.
var auditColumns = []string{"created_at", "updated_at", "updated_by"}

// Tablas que llevan auditoría.
var auditedTables = []string{"products", "warehouses"}

// EnsureAuditColumns inspecciona las tablas de entidades y agrega las columnas
// de auditoría que falten (TEXT nullable), y luego rellena created_at en las
// filas que lo tengan NULL con la fecha dada. Es idempotente: correrla en cada
// arranque es seguro. Cualquier fallo aquí es fatal para el arranque.
func EnsureAuditColumns(db *sql.DB, now time.Time) error {
	for _, table := range auditedTables {
		existing, err := tableColumns(db, table)
		if err != nil {
			return fmt.Errorf("inspeccionar columnas de %s: %w", table, err)
		}
		for _, col := range auditColumns {
			if existing[col] {
				continue
			}
			stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", table, col)
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("agregar columna %s.%s: %w", table, col, err)
			}
		}
		backfill := fmt.Sprintf("UPDATE %s SET created_at = COALESCE(created_at, ?)", table)
		if _, err := db.Exec(backfill, formatTime(now)); err != nil {
			return fmt.Errorf("rellenar created_at en %s: %w", table, err)
		}
	}
	return nil
}

// tableColumns devuelve los nombres de columna existentes (en minúsculas).
func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[strings.ToLower(name)] = true
	}
	return cols, rows.Err()
}
