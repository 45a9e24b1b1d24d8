package dto

// CreateWarehouseRequest datos de alta de almacén. El id lo elige el usuario.
type CreateWarehouseRequest struct {
	ID   string
	Name string
}

// UpdateWarehouseRequest datos de edición de almacén (el id va aparte y no cambia).
type UpdateWarehouseRequest struct {
	Name string
}
