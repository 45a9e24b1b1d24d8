package repository

import "github.com/tu-usuario/inventario-desktop/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna product.ID con el id generado.
	Create(product *entity.Product) error
	// List devuelve todos los productos ordenados por id ascendente,
	// con el nombre del almacén resuelto.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	// GetAudit devuelve solo los campos de auditoría, nil si el id no existe.
	GetAudit(id int64) (*entity.Audit, error)
}
