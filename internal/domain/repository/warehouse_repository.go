package repository

import "github.com/tu-usuario/inventario-desktop/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	// Create persiste el almacén con el id elegido por el llamador.
	Create(warehouse *entity.Warehouse) error
	List() ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id int64) error
	// GetAudit devuelve solo los campos de auditoría, nil si el id no existe.
	GetAudit(id int64) (*entity.Audit, error)
}
