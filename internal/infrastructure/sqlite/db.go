// Package sqlite implementa los adaptadores de persistencia sobre SQLite
// embebido (driver puro Go, sin cgo).
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// TimeLayout es el formato con el que se persisten las fechas (columnas TEXT).
const TimeLayout = "2006-01-02 15:04:05"

// Open abre (o crea) la base local y verifica la conexión.
// El pool queda limitado a una sola conexión: hay exactamente un lector y un
// escritor durante toda la vida del proceso.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping inicial a la base: %w", err)
	}
	return db, nil
}

func formatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// parseTime convierte una columna TEXT nullable en time.Time (cero si es NULL
// o no parseable, caso de filas anteriores a la evolución de esquema).
func parseTime(ns sql.NullString) time.Time {
	if !ns.Valid {
		return time.Time{}
	}
	t, err := time.ParseInLocation(TimeLayout, ns.String, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
