package sqlite_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
	"github.com/tu-usuario/inventario-desktop/internal/infrastructure/sqlite"
)

func newProduct(name, price string, stock, warehouseID int64, by string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		Name:        name,
		Description: "descripción de " + name,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		WarehouseID: warehouseID,
		Audit: entity.Audit{
			CreatedAt: now,
			UpdatedAt: now,
			UpdatedBy: by,
		},
	}
}

func TestProductRepo_CreateAsignaIdYListaIdaYVuelta(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProductRepository(db)

	p := newProduct("Widget", "9.99", 5, 1, "alice")
	require.NoError(t, repo.Create(p))
	assert.NotZero(t, p.ID, "el almacén de datos debe asignar el id")

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "descripción de Widget", got.Description)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")),
		"el precio debe volver exacto, sin coerción")
	assert.Equal(t, int64(5), got.Stock)
	assert.Equal(t, int64(1), got.WarehouseID)
	assert.Equal(t, "alice", got.UpdatedBy)
}

func TestProductRepo_ListOrdenadoPorIdConNombreDeAlmacen(t *testing.T) {
	db := newTestDB(t)
	products := sqlite.NewProductRepository(db)
	warehouses := sqlite.NewWarehouseRepository(db)

	now := time.Now()
	require.NoError(t, warehouses.Create(&entity.Warehouse{
		ID: 7, Name: "Central",
		Audit: entity.Audit{CreatedAt: now, UpdatedAt: now, UpdatedBy: "alice"},
	}))

	require.NoError(t, products.Create(newProduct("B", "2.00", 1, 7, "alice")))
	require.NoError(t, products.Create(newProduct("A", "1.00", 1, 99, "alice"))) // referencia huérfana

	list, err := products.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID, "el listado va por id ascendente")
	assert.Equal(t, "Central", list[0].WarehouseName)
	assert.Equal(t, "", list[1].WarehouseName,
		"una referencia huérfana deja el nombre de almacén vacío")
}

func TestProductRepo_UpdateNoTocaCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProductRepository(db)

	p := newProduct("Widget", "9.99", 5, 1, "alice")
	require.NoError(t, repo.Create(p))

	before, err := repo.GetAudit(p.ID)
	require.NoError(t, err)
	require.NotNil(t, before)
	assert.Equal(t, before.CreatedAt, before.UpdatedAt,
		"al crear, creación y modificación coinciden")
	assert.Equal(t, "alice", before.UpdatedBy)

	p.Name = "Widget v2"
	p.UpdatedAt = time.Now()
	p.UpdatedBy = "bob"
	require.NoError(t, repo.Update(p))

	after, err := repo.GetAudit(p.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, before.CreatedAt, after.CreatedAt, "created_at no se toca en updates")
	assert.Equal(t, "bob", after.UpdatedBy)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestProductRepo_UpdateDeIdInexistenteDevuelveNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProductRepository(db)

	p := newProduct("fantasma", "1.00", 1, 1, "alice")
	p.ID = 12345
	assert.ErrorIs(t, repo.Update(p), domain.ErrNotFound)
}

func TestProductRepo_DeleteExcluyeDelListadoYToleraInexistentes(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProductRepository(db)

	p := newProduct("Widget", "9.99", 5, 1, "alice")
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.Delete(p.ID))
	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	// Borrar un id inexistente no es error y no altera el listado.
	require.NoError(t, repo.Delete(99999))
	list, err = repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductRepo_GetAuditDeIdInexistenteEsNil(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProductRepository(db)

	audit, err := repo.GetAudit(424242)
	require.NoError(t, err)
	assert.Nil(t, audit)
}
