package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-desktop/internal/application/dto"
	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
	"github.com/tu-usuario/inventario-desktop/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos con estampado de auditoría.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y crea un producto nuevo. Estampa creación = modificación =
// ahora y el usuario que lo creó. El id lo asigna el almacén de datos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, actingUsername string) (*entity.Product, error) {
	fields, err := parseProductFields(in.Name, in.Description, in.Price, in.Stock, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:        fields.name,
		Description: fields.description,
		Price:       fields.price,
		Stock:       fields.stock,
		WarehouseID: fields.warehouseID,
		Audit: entity.Audit{
			CreatedAt: now,
			UpdatedAt: now,
			UpdatedBy: actingUsername,
		},
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List devuelve todos los productos ordenados por id.
func (uc *ProductUseCase) List() ([]*entity.Product, error) {
	return uc.repo.List()
}

// Update valida y sobreescribe los campos mutables del producto. Estampa
// modificación = ahora y el usuario actuante; la fecha de creación no se toca.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest, actingUsername string) error {
	fields, err := parseProductFields(in.Name, in.Description, in.Price, in.Stock, in.WarehouseID)
	if err != nil {
		return err
	}
	product := &entity.Product{
		ID:          id,
		Name:        fields.name,
		Description: fields.description,
		Price:       fields.price,
		Stock:       fields.stock,
		WarehouseID: fields.warehouseID,
		Audit: entity.Audit{
			UpdatedAt: time.Now(),
			UpdatedBy: actingUsername,
		},
	}
	return uc.repo.Update(product)
}

// Delete elimina un producto por id (sin error si no existe).
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// GetAudit devuelve los campos de auditoría del producto, nil si no existe.
func (uc *ProductUseCase) GetAudit(id int64) (*entity.Audit, error) {
	return uc.repo.GetAudit(id)
}

type productFields struct {
	name        string
	description string
	price       decimal.Decimal
	stock       int64
	warehouseID int64
}

// parseProductFields valida la entrada tipeada por el usuario antes de
// cualquier escritura, nombrando el campo ofensor.
func parseProductFields(name, description, price, stock, warehouseID string) (*productFields, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("nombre", "no puede ser vacío")
	}
	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return nil, domain.NewValidationError("precio", "no es numérico")
	}
	if p.IsNegative() {
		return nil, domain.NewValidationError("precio", "no puede ser negativo")
	}
	s, err := strconv.ParseInt(strings.TrimSpace(stock), 10, 64)
	if err != nil {
		return nil, domain.NewValidationError("stock", "no es un entero")
	}
	w, err := strconv.ParseInt(strings.TrimSpace(warehouseID), 10, 64)
	if err != nil {
		return nil, domain.NewValidationError("almacén", "no es un id válido")
	}
	return &productFields{
		name:        name,
		description: strings.TrimSpace(description),
		price:       p,
		stock:       s,
		warehouseID: w,
	}, nil
}
