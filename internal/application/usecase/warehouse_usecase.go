package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/tu-usuario/inventario-desktop/internal/application/dto"
	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
	"github.com/tu-usuario/inventario-desktop/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para almacenes con estampado de auditoría.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create valida y crea un almacén nuevo con el id elegido por el usuario.
// Devuelve domain.ErrDuplicate si el id ya existe.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest, actingUsername string) (*entity.Warehouse, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(in.ID), 10, 64)
	if err != nil {
		return nil, domain.NewValidationError("id", "no es un entero")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("nombre", "no puede ser vacío")
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:   id,
		Name: name,
		Audit: entity.Audit{
			CreatedAt: now,
			UpdatedAt: now,
			UpdatedBy: actingUsername,
		},
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// List devuelve todos los almacenes ordenados por id.
func (uc *WarehouseUseCase) List() ([]*entity.Warehouse, error) {
	return uc.repo.List()
}

// Update sobreescribe el nombre del almacén; el id nunca cambia. Estampa
// modificación = ahora y el usuario actuante; la fecha de creación no se toca.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *WarehouseUseCase) Update(id int64, in dto.UpdateWarehouseRequest, actingUsername string) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.NewValidationError("nombre", "no puede ser vacío")
	}
	warehouse := &entity.Warehouse{
		ID:   id,
		Name: name,
		Audit: entity.Audit{
			UpdatedAt: time.Now(),
			UpdatedBy: actingUsername,
		},
	}
	return uc.repo.Update(warehouse)
}

// Delete elimina un almacén por id (sin error si no existe).
func (uc *WarehouseUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// GetAudit devuelve los campos de auditoría del almacén, nil si no existe.
func (uc *WarehouseUseCase) GetAudit(id int64) (*entity.Audit, error) {
	return uc.repo.GetAudit(id)
}
