// Package search implementa el motor de filtrado en memoria sobre listados
// ya cargados (servicio de dominio, funciones puras).
package search

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
)

// ProductCriteria agrupa los criterios opcionales de búsqueda de productos.
// Un campo vacío no impone restricción; todos los presentes se combinan con AND.
// Los rangos numéricos llegan como texto tal cual los tipeó el usuario.
type ProductCriteria struct {
	ID          string // igualdad exacta contra el id decimal, tras recortar espacios
	Name        string // subcadena, sin distinguir mayúsculas
	Description string // subcadena, sin distinguir mayúsculas
	Warehouse   string // subcadena sobre el nombre del almacén
	PriceMin    string // cota inferior inclusiva
	PriceMax    string // cota superior inclusiva
	StockMin    string
	StockMax    string
}

// WarehouseCriteria agrupa los criterios opcionales de búsqueda de almacenes.
type WarehouseCriteria struct {
	ID   string
	Name string
}

// Products aplica los criterios sobre la lista y devuelve los que cumplen todos.
// Si una cota numérica no es parseable devuelve InvalidFilterValueError con el
// campo ofensor y ningún resultado.
func Products(items []*entity.Product, c ProductCriteria) ([]*entity.Product, error) {
	priceMin, err := parsePrice("precio_min", c.PriceMin)
	if err != nil {
		return nil, err
	}
	priceMax, err := parsePrice("precio_max", c.PriceMax)
	if err != nil {
		return nil, err
	}
	stockMin, err := parseStock("stock_min", c.StockMin)
	if err != nil {
		return nil, err
	}
	stockMax, err := parseStock("stock_max", c.StockMax)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(c.ID)
	out := make([]*entity.Product, 0, len(items))
	for _, p := range items {
		if id != "" && strconv.FormatInt(p.ID, 10) != id {
			continue
		}
		if !containsFold(p.Name, c.Name) {
			continue
		}
		if !containsFold(p.Description, c.Description) {
			continue
		}
		if !containsFold(p.WarehouseName, c.Warehouse) {
			continue
		}
		if priceMin != nil && p.Price.LessThan(*priceMin) {
			continue
		}
		if priceMax != nil && p.Price.GreaterThan(*priceMax) {
			continue
		}
		if stockMin != nil && p.Stock < *stockMin {
			continue
		}
		if stockMax != nil && p.Stock > *stockMax {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Warehouses aplica los criterios sobre la lista de almacenes.
func Warehouses(items []*entity.Warehouse, c WarehouseCriteria) ([]*entity.Warehouse, error) {
	id := strings.TrimSpace(c.ID)
	out := make([]*entity.Warehouse, 0, len(items))
	for _, w := range items {
		if id != "" && strconv.FormatInt(w.ID, 10) != id {
			continue
		}
		if !containsFold(w.Name, c.Name) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

// containsFold reporta si sub es subcadena de s bajo case folding Unicode.
// Un sub vacío no restringe; un s vacío nunca contiene un sub no vacío.
func containsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(sub))
}

func parsePrice(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &domain.InvalidFilterValueError{Field: field, Value: raw}
	}
	return &d, nil
}

func parseStock(field, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &domain.InvalidFilterValueError{Field: field, Value: raw}
	}
	return &n, nil
}
