package usecase

import (
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
	"github.com/tu-usuario/inventario-desktop/internal/domain/repository"
	"github.com/tu-usuario/inventario-desktop/internal/domain/search"
)

// SearchUseCase aplica el motor de filtrado sobre los listados completos.
type SearchUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(products repository.ProductRepository, warehouses repository.WarehouseRepository) *SearchUseCase {
	return &SearchUseCase{products: products, warehouses: warehouses}
}

// FilterProducts carga el listado y aplica los criterios. Una cota numérica
// inválida devuelve InvalidFilterValueError y ningún resultado.
func (uc *SearchUseCase) FilterProducts(c search.ProductCriteria) ([]*entity.Product, error) {
	items, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return search.Products(items, c)
}

// FilterWarehouses carga el listado de almacenes y aplica los criterios.
func (uc *SearchUseCase) FilterWarehouses(c search.WarehouseCriteria) ([]*entity.Warehouse, error) {
	items, err := uc.warehouses.List()
	if err != nil {
		return nil, err
	}
	return search.Warehouses(items, c)
}
