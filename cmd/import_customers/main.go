// import_customers carga clientes de un rider desde un CSV (exportado de planillas)
// aplicando las mismas reglas que POST /api/customer.
//
// Uso: go run ./cmd/import_customers -rider rider@example.com [-encoding windows-1252] [-dry-run] clientes.csv
// Columnas: name, address, phone, lat, lng, remarks (cabecera obligatoria, orden libre).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/rider-tracker/internal/application/customer"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
	"github.com/jhoicas/rider-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/rider-tracker/pkg/config"
	"github.com/jhoicas/rider-tracker/pkg/geo"
	"github.com/jhoicas/rider-tracker/pkg/logger"
)

func main() {
	riderEmail := flag.String("rider", "", "email del rider dueño de los clientes")
	enc := flag.String("encoding", "utf-8", "utf-8 | latin1 | windows-1252")
	sep := flag.String("sep", ",", "separador de columnas")
	dryRun := flag.Bool("dry-run", false, "valida contra la base y descarta los cambios")
	flag.Parse()

	if *riderEmail == "" || flag.NArg() != 1 || len([]rune(*sep)) != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_customers -rider <email> [-encoding utf-8] [-sep ,] [-dry-run] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("import_customers")

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := readRows(f, *enc, []rune(*sep)[0])
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rider, err := postgres.NewUserRepository(pool).GetByEmail(ctx, strings.ToLower(strings.TrimSpace(*riderEmail)))
	if err != nil {
		log.Fatal().Err(err).Msg("buscar rider")
	}
	if rider == nil {
		log.Fatal().Str("email", *riderEmail).Msg("rider no encontrado")
	}

	// Todo el archivo en una transacción: un error inesperado no deja el padrón a medias.
	fallback := geo.Point{Lat: cfg.Geo.FallbackLat, Lng: cfg.Geo.FallbackLng}
	var rep report
	err = postgres.NewTxRunner(pool).RunCustomers(ctx, func(customers repository.CustomerRepository) error {
		var err error
		rep, err = importRows(ctx, customer.NewCustomerUseCase(customers, fallback, log), rider.ID, rows, log)
		if err != nil {
			return err
		}
		if *dryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		log.Fatal().Err(err).Msg("importación interrumpida, sin cambios")
	}
	log.Info().
		Int("rows", len(rows)).
		Int("created", rep.Created).
		Int("duplicates", rep.Duplicates).
		Int("invalid", rep.Invalid).
		Bool("dry_run", *dryRun).
		Msg("importación terminada")
}
