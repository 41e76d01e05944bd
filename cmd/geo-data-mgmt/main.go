package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/application/datasource"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/application/location"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/assets"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/logging"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database/geostore"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/router"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/presentation/api"
	"github.com/trailsense/geo-data-mgmt/pkg/geo"
)

const serviceName string = "geo-data-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	configurationFile
	tilesFile
	contactsFile
	weatherFile
	rasterDir

	devmode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		configurationFile: "",
		tilesFile:         "",
		contactsFile:      "",
		weatherFile:       "",
		rasterDir:         "/opt/trailsense/rasters",

		devmode: "false",
	}
}

type appConfig struct {
	RasterDir              string `yaml:"rasterDir"`
	PrewarmIntervalSeconds int    `yaml:"prewarmIntervalSeconds"`
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	ctx, logger := logging.NewLogger(ctx, serviceName, version())
	logger.Info().Msg("starting up ...")

	cfg, err := loadAppConfig(flags)
	exitIf(err, logger, "could not read service configuration")

	storage, err := newStorage(ctx, flags)
	exitIf(err, logger, "could not create or connect to database")

	err = seed(ctx, storage, flags)
	exitIf(err, logger, "could not seed database")

	ds := datasource.New(storage)

	registry := location.NewRegistry()
	registry.Subscribe("quadrant-prewarm", time.Duration(cfg.PrewarmIntervalSeconds)*time.Second, func(p geo.Point) {
		_, err := ds.GetQuadrant(ctx, p)
		if err != nil {
			logger.Debug().Err(err).
				Float64("latitude", p.Latitude).
				Float64("longitude", p.Longitude).
				Msg("no quadrant to pre-warm at reported location")
		}
	})

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), ds, assets.NewFilesystemProvider(cfg.RasterDir), registry)
	exitIf(err, logger, "failed to register handlers")

	apiPort := fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort])
	logger.Info().Str("address", apiPort).Msg("serving requests")

	err = http.ListenAndServe(apiPort, r)
	exitIf(err, logger, "failed to start request router")
}

func newStorage(ctx context.Context, flags flagMap) (geostore.GeoStorage, error) {
	if flags[devmode] == "true" || os.Getenv("POSTGRES_HOST") == "" {
		return geostore.NewGeoStorage(database.NewSQLiteConnector(ctx))
	}

	return geostore.NewGeoStorage(database.NewPostgreSQLConnector(ctx, database.LoadConfigFromEnv(ctx)))
}

func loadAppConfig(flags flagMap) (*appConfig, error) {
	cfg := &appConfig{
		RasterDir:              flags[rasterDir],
		PrewarmIntervalSeconds: 30,
	}

	if flags[configurationFile] == "" {
		return cfg, nil
	}

	f, err := os.Open(flags[configurationFile])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func seed(ctx context.Context, storage geostore.GeoStorage, flags flagMap) error {
	seeders := []struct {
		flag flagType
		fn   func(context.Context, io.Reader) error
	}{
		{tilesFile, storage.SeedTiles},
		{contactsFile, storage.SeedContacts},
		{weatherFile, storage.SeedWeather},
	}

	for _, s := range seeders {
		if flags[s.flag] == "" {
			continue
		}

		f, err := os.Open(flags[s.flag])
		if err != nil {
			return err
		}

		err = s.fn(ctx, f)
		f.Close()

		if err != nil {
			return err
		}
	}

	return nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := func(name string, def string) string {
		if value := os.Getenv(name); value != "" {
			return value
		}
		return def
	}

	flags[listenAddress] = envOrDef("LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef("SERVICE_PORT", flags[servicePort])
	flags[rasterDir] = envOrDef("RASTER_DIR", flags[rasterDir])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Func("tiles", "raster tile registrations to seed", apply(tilesFile))
	flag.Func("contacts", "emergency contacts to seed", apply(contactsFile))
	flag.Func("weather", "weather forecasts to seed", apply(weatherFile))
	flag.Func("rasters", "directory holding raster tile images", apply(rasterDir))
	flag.Func("devmode", "enable dev mode", apply(devmode))
	flag.Parse()

	return ctx, flags
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	infoMap := map[string]string{}
	for _, s := range buildInfo.Settings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	if sha == "" {
		return "unknown"
	}

	return sha
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Error().Err(err).Msg(msg)
		os.Exit(1)
	}
}
