package entity

// Warehouse representa una bodega o almacén donde se guarda inventario.
// El ID lo elige el llamador al crear y es inmutable después.
type Warehouse struct {
	ID   int64
	Name string
	Audit
}
