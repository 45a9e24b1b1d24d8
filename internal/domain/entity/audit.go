package entity

import "time"

// Audit agrupa los metadatos de auditoría de cada fila: fecha de creación
// (se fija una vez), fecha de última modificación y usuario que la hizo.
// Para filas anteriores a la evolución de esquema los campos pueden venir
// en cero / vacío hasta que una escritura los estampe.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	UpdatedBy string
}
