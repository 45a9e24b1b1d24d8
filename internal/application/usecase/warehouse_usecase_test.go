package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-desktop/internal/application/dto"
	"github.com/tu-usuario/inventario-desktop/internal/application/usecase"
	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/infrastructure/sqlite"
)

func newWarehouseUseCase(t *testing.T) *usecase.WarehouseUseCase {
	t.Helper()
	return usecase.NewWarehouseUseCase(sqlite.NewWarehouseRepository(newStore(t)))
}

func TestWarehouseUseCase_CreateConIdElegidoPorElUsuario(t *testing.T) {
	uc := newWarehouseUseCase(t)

	w, err := uc.Create(dto.CreateWarehouseRequest{ID: " 42 ", Name: "Central"}, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), w.ID)

	audit, err := uc.GetAudit(42)
	require.NoError(t, err)
	require.NotNil(t, audit)
	assert.Equal(t, audit.CreatedAt, audit.UpdatedAt)
	assert.Equal(t, "alice", audit.UpdatedBy)
}

func TestWarehouseUseCase_IdDuplicadoYValidacion(t *testing.T) {
	uc := newWarehouseUseCase(t)

	_, err := uc.Create(dto.CreateWarehouseRequest{ID: "1", Name: "Central"}, "alice")
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateWarehouseRequest{ID: "1", Name: "Otra"}, "alice")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateWarehouseRequest{ID: "uno", Name: "Otra"}, "alice")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "id", verr.Field)

	_, err = uc.Create(dto.CreateWarehouseRequest{ID: "2", Name: "  "}, "alice")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "nombre", verr.Field)
}

func TestWarehouseUseCase_UpdateEstampaModificador(t *testing.T) {
	uc := newWarehouseUseCase(t)

	_, err := uc.Create(dto.CreateWarehouseRequest{ID: "1", Name: "Central"}, "alice")
	require.NoError(t, err)
	before, err := uc.GetAudit(1)
	require.NoError(t, err)

	require.NoError(t, uc.Update(1, dto.UpdateWarehouseRequest{Name: "Central renovada"}, "bob"))

	after, err := uc.GetAudit(1)
	require.NoError(t, err)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, "bob", after.UpdatedBy)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Central renovada", list[0].Name)
}

func TestWarehouseUseCase_UpdateInexistenteDevuelveNotFound(t *testing.T) {
	uc := newWarehouseUseCase(t)

	err := uc.Update(9, dto.UpdateWarehouseRequest{Name: "fantasma"}, "alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
