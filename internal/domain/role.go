package domain

// Role es el rol de un usuario. En la base se guarda como texto opaco;
// la interpretación vive aquí, en un conjunto cerrado con chequeos de capacidad,
// en lugar de comparaciones de strings repartidas por los llamadores.
type Role string

// Roles predefinidos (cuentas semilla, una por rol).
const (
	RoleAdmin     Role = "ADMIN"
	RoleProductos Role = "PRODUCTOS"
	RoleAlmacenes Role = "ALMACENES"
)

// CanManageProducts indica si el rol puede crear/editar/eliminar productos.
func (r Role) CanManageProducts() bool {
	return r == RoleAdmin || r == RoleProductos
}

// CanManageWarehouses indica si el rol puede crear/editar/eliminar almacenes.
func (r Role) CanManageWarehouses() bool {
	return r == RoleAdmin || r == RoleAlmacenes
}

// CanManageUsers indica si el rol puede crear usuarios nuevos.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}
