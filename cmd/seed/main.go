// seed aprovisiona las cuentas por defecto y el registro de datos de empresa.
// Se ejecuta una vez como tarea operacional antes de servir tráfico:
//
//	go run ./cmd/seed
//
// Idempotente: las cuentas y la empresa existentes se omiten. Sale con código
// distinto de cero ante cualquier fallo, después de liberar la conexión.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/application/seed"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/infrastructure/postgres"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/config"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	// La conexión se libera pase lo que pase, incluido un fallo del seeder.
	defer pool.Close()

	seeder := seed.New(
		postgres.NewUserRepository(pool),
		postgres.NewEmpresaRepository(pool),
		log,
	)
	return seeder.Run()
}
