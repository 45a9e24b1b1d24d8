package dto

// CreateProductRequest datos de alta de producto. Los campos numéricos llegan
// como texto tal cual los tipeó el usuario y se validan antes de escribir.
type CreateProductRequest struct {
	Name        string
	Description string
	Price       string
	Stock       string
	WarehouseID string
}

// UpdateProductRequest datos de edición de producto (el id va aparte y no cambia).
type UpdateProductRequest struct {
	Name        string
	Description string
	Price       string
	Stock       string
	WarehouseID string
}
