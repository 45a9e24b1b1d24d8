package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
	"github.com/tu-usuario/inventario-desktop/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre SQLite.
type WarehouseRepo struct {
	db *sql.DB
}

// NewWarehouseRepository construye el adaptador de persistencia para almacenes.
func NewWarehouseRepository(db *sql.DB) *WarehouseRepo {
	return &WarehouseRepo{db: db}
}

// Create persiste un nuevo almacén con el id elegido por el llamador.
// Devuelve domain.ErrDuplicate si el id ya existe.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	_, err := r.db.Exec(
		`INSERT INTO warehouses (id, name, created_at, updated_at, updated_by)
		 VALUES (?, ?, ?, ?, ?)`,
		warehouse.ID, warehouse.Name, formatTime(warehouse.CreatedAt),
		formatTime(warehouse.UpdatedAt), warehouse.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// List devuelve todos los almacenes ordenados por id.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	rows, err := r.db.Query(
		`SELECT id, name, created_at, updated_at, updated_by FROM warehouses ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		var (
			w         entity.Warehouse
			createdAt sql.NullString
			updatedAt sql.NullString
			updatedBy sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.Name, &createdAt, &updatedAt, &updatedBy); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		w.CreatedAt = parseTime(createdAt)
		w.UpdatedAt = parseTime(updatedAt)
		w.UpdatedBy = updatedBy.String
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update sobreescribe el nombre más la auditoría de modificación; el id nunca
// cambia y created_at no se toca. Devuelve domain.ErrNotFound si no existe.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	res, err := r.db.Exec(
		`UPDATE warehouses SET name = ?, updated_at = ?, updated_by = ? WHERE id = ?`,
		warehouse.Name, formatTime(warehouse.UpdatedAt), warehouse.UpdatedBy, warehouse.ID,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected de update warehouse: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un almacén por id. Un borrado de cero filas no es error.
// Los productos que lo referencien quedan huérfanos (FK informativo).
func (r *WarehouseRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM warehouses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

// GetAudit devuelve solo los campos de auditoría, nil si el id no existe.
func (r *WarehouseRepo) GetAudit(id int64) (*entity.Audit, error) {
	return getAudit(r.db, "warehouses", id)
}
