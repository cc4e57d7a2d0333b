package main

import (
	"context"
	"flag"
	"os"

	"github.com/McNamara84/ernie-sub002/internal/pkg/application/coverage"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/datasets"
	"github.com/McNamara84/ernie-sub002/internal/pkg/application/services/geocoding"
	"github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/config"
	"github.com/McNamara84/ernie-sub002/internal/pkg/infrastructure/repositories/database"
	presentation "github.com/McNamara84/ernie-sub002/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

var configFileName string

func loadConfiguration(ctx context.Context, path string) *config.Cfg {
	log := logging.GetFromContext(ctx)

	cfgfile, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("no configuration file found at %s, using defaults.", path)
		return config.Defaults()
	}
	defer cfgfile.Close()

	cfg, err := config.Load(cfgfile)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to load configuration from %s", path)
	}

	return cfg
}

func main() {
	serviceName := "ernie-coverage"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&configFileName, "config", "/opt/ernie/config.yaml", "The portal configuration file")
	flag.Parse()

	cfg := loadConfiguration(ctx, configFileName)

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")
	dbPath := env.GetVariableOrDefault(log, "SQLITE_DB_PATH", "")

	db, err := database.NewDatabaseConnection(database.NewSQLiteConnector(dbPath))
	if err != nil {
		log.Fatal().Msgf("failed to connect to database, shutting down... %s", err.Error())
	}

	factory := coverage.NewFactory(cfg.Coverage.DefaultTimezone)
	svc := datasets.NewDatasetService(log, db, factory, cfg.Coverage.MaxEntries)
	geocoder := geocoding.NewGeocoder(log, cfg.Geocoder.SearchURL)

	r := chi.NewRouter()

	app := presentation.NewAPI(r, ctx, svc, geocoder)
	if err = app.Start(port); err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
