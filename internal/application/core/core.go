// Package core arma el núcleo de persistencia que consume la capa de
// presentación: abre el almacén, corre migraciones y evolución de esquema,
// siembra las cuentas por defecto y construye los casos de uso.
package core

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tu-usuario/inventario-desktop/internal/application/auth"
	"github.com/tu-usuario/inventario-desktop/internal/application/usecase"
	"github.com/tu-usuario/inventario-desktop/internal/infrastructure/sqlite"
	"github.com/tu-usuario/inventario-desktop/pkg/config"
	"github.com/tu-usuario/inventario-desktop/pkg/logger"
)

// Core agrupa los casos de uso que la presentación invoca durante la sesión.
type Core struct {
	Auth       *auth.UseCase
	Products   *usecase.ProductUseCase
	Warehouses *usecase.WarehouseUseCase
	Search     *usecase.SearchUseCase

	db *sql.DB
}

// New inicializa el núcleo. Debe llamarse exactamente una vez, antes de
// cualquier otra operación; cualquier fallo aquí es fatal para el arranque.
func New(cfg *config.Config, log *logger.Logger) (*Core, error) {
	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("arranque: %w", err)
	}
	if err := sqlite.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("arranque: %w", err)
	}
	if err := sqlite.EnsureAuditColumns(db, time.Now()); err != nil {
		db.Close()
		return nil, fmt.Errorf("arranque: evolución de esquema: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	warehouseRepo := sqlite.NewWarehouseRepository(db)

	authUC := auth.NewUseCase(userRepo, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})
	if err := authUC.SeedDefaults(); err != nil {
		db.Close()
		return nil, fmt.Errorf("arranque: sembrado de usuarios: %w", err)
	}

	log.Info().Str("db", cfg.DB.Path).Msg("núcleo de persistencia inicializado")

	return &Core{
		Auth:       authUC,
		Products:   usecase.NewProductUseCase(productRepo),
		Warehouses: usecase.NewWarehouseUseCase(warehouseRepo),
		Search:     usecase.NewSearchUseCase(productRepo, warehouseRepo),
		db:         db,
	}, nil
}

// Close libera la conexión al almacén local.
func (c *Core) Close() error {
	return c.db.Close()
}
