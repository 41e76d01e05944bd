package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database/geostore"
	"github.com/trailsense/geo-data-mgmt/pkg/geo"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := loadAppConfig(defaultFlags())
	is.NoErr(err)
	is.Equal("/opt/trailsense/rasters", cfg.RasterDir)
	is.Equal(30, cfg.PrewarmIntervalSeconds)
}

func TestLoadAppConfigFromFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	is.NoErr(os.WriteFile(path, []byte("rasterDir: /srv/tiles\nprewarmIntervalSeconds: 5\n"), 0o644))

	flags := defaultFlags()
	flags[configurationFile] = path

	cfg, err := loadAppConfig(flags)
	is.NoErr(err)
	is.Equal("/srv/tiles", cfg.RasterDir)
	is.Equal(5, cfg.PrewarmIntervalSeconds)
}

func TestSeedFromFiles(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	tiles := filepath.Join(t.TempDir(), "tiles.csv")
	is.NoErr(os.WriteFile(tiles, []byte("i;j;rasterPath\n44;191;tiles/44_191.png\n"), 0o644))

	storage, err := geostore.NewGeoStorage(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	flags := defaultFlags()
	flags[tilesFile] = tiles

	is.NoErr(seed(ctx, storage, flags))

	quadrant, err := storage.GetQuadrant(ctx, geo.Point{Latitude: 45.5, Longitude: 11.5})
	is.NoErr(err)
	is.Equal("tiles/44_191.png", quadrant.RasterPath)
}
