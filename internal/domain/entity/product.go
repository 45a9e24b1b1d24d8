package entity

import (
	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// WarehouseName se deriva del JOIN con almacenes al listar; queda vacío si la
// referencia quedó huérfana (el FK es informativo, no se hace cumplir).
type Product struct {
	ID            int64 // asignado por el almacén de datos
	Name          string
	Description   string
	Price         decimal.Decimal
	Stock         int64
	WarehouseID   int64
	WarehouseName string
	Audit
}
