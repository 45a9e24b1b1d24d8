package main

import (
	"github.com/tu-usuario/inventario-desktop/internal/application/core"
	"github.com/tu-usuario/inventario-desktop/pkg/config"
	"github.com/tu-usuario/inventario-desktop/pkg/logger"
)

// El binario inicializa el núcleo de persistencia y se lo entrega a la capa
// de presentación (las ventanas de escritorio viven fuera de este módulo).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	c, err := core.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("arranque del núcleo")
	}
	defer c.Close()

	products, err := c.Products.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listado inicial de productos")
	}
	warehouses, err := c.Warehouses.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listado inicial de almacenes")
	}
	log.Info().
		Int("productos", len(products)).
		Int("almacenes", len(warehouses)).
		Msg("núcleo listo para la sesión")
}
