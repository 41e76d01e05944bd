package geostore

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/trailsense/geo-data-mgmt/pkg/geo"
	"github.com/trailsense/geo-data-mgmt/pkg/types"

	"github.com/matryer/is"
)

func TestSeedTiles(t *testing.T) {
	is, ctx, s := testSetupGeoStorage(t)

	err := s.SeedTiles(ctx, bytes.NewBufferString(tileCSVMock))
	is.NoErr(err)

	quadrant, err := s.GetQuadrant(ctx, geo.Point{Latitude: 45.5, Longitude: 11.5})
	is.NoErr(err)
	is.Equal("tiles/44_191.png", quadrant.RasterPath)

	quadrant, err = s.GetQuadrant(ctx, geo.Point{Latitude: 90.0, Longitude: -180.0})
	is.NoErr(err)
	is.Equal("tiles/0_0.png", quadrant.RasterPath)
}

func TestSeedTilesUpdatesExistingCell(t *testing.T) {
	is, ctx, s := testSetupGeoStorage(t)

	seedTile(is, ctx, s, 44, 191, "tiles/old.png")
	seedTile(is, ctx, s, 44, 191, "tiles/new.png")

	quadrant, err := s.GetQuadrant(ctx, geo.Point{Latitude: 45.5, Longitude: 11.5})
	is.NoErr(err)
	is.Equal("tiles/new.png", quadrant.RasterPath)
}

func TestSeedTilesRejectsIndexOutOfRange(t *testing.T) {
	is, ctx, s := testSetupGeoStorage(t)

	err := s.SeedTiles(ctx, bytes.NewBufferString("i;j;rasterPath\n180;0;tiles/x.png\n"))
	is.True(err != nil)
}

func TestSeedContacts(t *testing.T) {
	is, ctx, s := testSetupGeoStorage(t)

	seedContacts(is, ctx, s, "Mountain Rescue;118;5;0;0;5")

	contacts, err := s.GetContacts(ctx, geo.Point{Latitude: 2.5, Longitude: 2.5})
	is.NoErr(err)
	is.Equal(1, len(contacts))
	is.Equal("Mountain Rescue", contacts[0].Name)
	is.Equal(5.0, contacts[0].Coverage.NorthWest.Latitude)
	is.Equal(0.0, contacts[0].Coverage.NorthWest.Longitude)
}

func TestSeedContactsRejectsUnorderedEdges(t *testing.T) {
	is, ctx, s := testSetupGeoStorage(t)

	err := s.SeedContacts(ctx, bytes.NewBufferString("name;value;north;south;west;east\nBad;118;0;5;0;5\n"))
	is.True(err != nil)
}

func TestSeedWeatherRejectsUnknownForecast(t *testing.T) {
	is, ctx, s := testSetupGeoStorage(t)

	err := s.SeedWeather(ctx, bytes.NewBufferString(
		"lat;lon;date;morning;morningTemp;afternoon;afternoonTemp;night;nightTemp\n"+
			"45.5;11.5;2026-05-01;hailing;1;cloudy;2;stormy;3\n"))
	is.True(err != nil)
}

func TestSeedWeatherNormalizesDateToUTC(t *testing.T) {
	is, ctx, s := testSetupGeoStorage(t)

	seedWeather(is, ctx, s, "45.5;11.5;2026-05-01;sunny;12.5;cloudy;18.0;stormy;9.0")

	forecast, err := s.GetWeatherInfo(ctx,
		geo.Point{Latitude: 45.5, Longitude: 11.5},
		time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC))
	is.NoErr(err)
	is.Equal(types.ForecastSunny, forecast.Morning.Forecast)
	is.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), forecast.Date)
}

func seedTile(is *is.I, ctx context.Context, s GeoStorage, i, j int, path string) {
	csv := fmt.Sprintf("i;j;rasterPath\n%d;%d;%s\n", i, j, path)
	is.NoErr(s.SeedTiles(ctx, bytes.NewBufferString(csv)))
}

func seedContacts(is *is.I, ctx context.Context, s GeoStorage, rows ...string) {
	csv := "name;value;north;south;west;east\n" + strings.Join(rows, "\n") + "\n"
	is.NoErr(s.SeedContacts(ctx, bytes.NewBufferString(csv)))
}

func seedWeather(is *is.I, ctx context.Context, s GeoStorage, rows ...string) {
	csv := "lat;lon;date;morning;morningTemp;afternoon;afternoonTemp;night;nightTemp\n" +
		strings.Join(rows, "\n") + "\n"
	is.NoErr(s.SeedWeather(ctx, bytes.NewBufferString(csv)))
}

const tileCSVMock string = `i;j;rasterPath
44;191;tiles/44_191.png
0;0;tiles/0_0.png
179;359;tiles/179_359.png
`
