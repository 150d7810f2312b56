// seed_catalog aplica el esquema del catálogo y carga los productos mock en PostgreSQL,
// para arrancar la API con CATALOG_SOURCE=postgres.
//
// Uso: go run ./cmd/seed_catalog [ruta/001_products.sql]
// Por defecto aplica internal/infrastructure/postgres/migrations/001_products.sql.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/tunezone-api/internal/infrastructure/memory"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tunezone-api/pkg/config"
	"github.com/jhoicas/tunezone-api/pkg/logger"
)

const defaultSchema = "internal/infrastructure/postgres/migrations/001_products.sql"

func main() {
	schemaPath := defaultSchema
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed_catalog")

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer esquema")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	products := memory.SeedProducts()
	err = postgres.NewTxRunner(pool).Run(ctx, func(repo *postgres.ProductRepo) error {
		return repo.Upsert(ctx, products)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar productos")
	}
	log.Info().Int("products", len(products)).Msg("catálogo cargado")
}
