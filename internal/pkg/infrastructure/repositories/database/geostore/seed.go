package geostore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/trailsense/geo-data-mgmt/pkg/geo"
)

// SeedTiles loads quadrant raster registrations from semicolon-separated
// rows of the form i;j;rasterPath. Existing registrations for the same cell
// are updated in place.
func (g *geoStorage) SeedTiles(ctx context.Context, r io.Reader) error {
	rows, err := readSeedRows(r)
	if err != nil {
		return err
	}

	for idx, row := range rows {
		record, err := newTileRecord(row)
		if err != nil {
			return fmt.Errorf("tile seed row %d: %w", idx+2, err)
		}

		var existing QuadrantTile
		result := g.db.WithContext(ctx).
			Where("lat_index = ? AND long_index = ?", record.i, record.j).
			First(&existing)

		if result.Error == nil {
			existing.RasterPath = record.rasterPath
			if err := g.db.WithContext(ctx).Save(&existing).Error; err != nil {
				return err
			}
			continue
		}

		tile := QuadrantTile{LatIndex: record.i, LongIndex: record.j, RasterPath: record.rasterPath}
		if err := g.db.WithContext(ctx).Create(&tile).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedContacts loads emergency contacts from rows of the form
// name;value;north;south;west;east.
func (g *geoStorage) SeedContacts(ctx context.Context, r io.Reader) error {
	rows, err := readSeedRows(r)
	if err != nil {
		return err
	}

	for idx, row := range rows {
		contact, err := newContactRecord(row)
		if err != nil {
			return fmt.Errorf("contact seed row %d: %w", idx+2, err)
		}

		if err := g.db.WithContext(ctx).Create(&contact).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedWeather loads per-day forecasts from rows of the form
// lat;lon;date;morning;morningTemp;afternoon;afternoonTemp;night;nightTemp
// where date is formatted 2006-01-02 and forecasts name a known condition.
func (g *geoStorage) SeedWeather(ctx context.Context, r io.Reader) error {
	rows, err := readSeedRows(r)
	if err != nil {
		return err
	}

	for idx, row := range rows {
		record, err := newWeatherRecord(row)
		if err != nil {
			return fmt.Errorf("weather seed row %d: %w", idx+2, err)
		}

		if err := g.db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}

	return nil
}

func readSeedRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv data: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// first row is the header
	return rows[1:], nil
}

type tileRecord struct {
	i, j       int
	rasterPath string
}

func newTileRecord(row []string) (tileRecord, error) {
	if len(row) < 3 {
		return tileRecord{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}

	i, err := strconv.Atoi(row[0])
	if err != nil {
		return tileRecord{}, fmt.Errorf("failed to parse lat index: %w", err)
	}

	j, err := strconv.Atoi(row[1])
	if err != nil {
		return tileRecord{}, fmt.Errorf("failed to parse long index: %w", err)
	}

	if _, err := geo.Bounds(i, j); err != nil {
		return tileRecord{}, err
	}

	path := strings.TrimSpace(row[2])
	if path == "" {
		return tileRecord{}, fmt.Errorf("raster path must not be empty")
	}

	return tileRecord{i: i, j: j, rasterPath: path}, nil
}

func newContactRecord(row []string) (Contact, error) {
	if len(row) < 6 {
		return Contact{}, fmt.Errorf("expected 6 columns, got %d", len(row))
	}

	edges := make([]float64, 4)
	for n, col := range row[2:6] {
		v, err := strconv.ParseFloat(col, 64)
		if err != nil {
			return Contact{}, fmt.Errorf("failed to parse coverage edge: %w", err)
		}
		edges[n] = v
	}

	north, south, west, east := edges[0], edges[1], edges[2], edges[3]
	if north < south || east < west {
		return Contact{}, fmt.Errorf("coverage edges are not ordered")
	}

	return Contact{
		Name:  row[0],
		Value: row[1],
		North: north,
		South: south,
		West:  west,
		East:  east,
	}, nil
}

func newWeatherRecord(row []string) (WeatherRecord, error) {
	if len(row) < 9 {
		return WeatherRecord{}, fmt.Errorf("expected 9 columns, got %d", len(row))
	}

	lat, err := strconv.ParseFloat(row[0], 64)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("failed to parse latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("failed to parse longitude: %w", err)
	}

	point, err := geo.NewPoint(lat, lon)
	if err != nil {
		return WeatherRecord{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", row[2], time.UTC)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("failed to parse date: %w", err)
	}

	forecasts := make([]string, 3)
	temperatures := make([]float64, 3)
	for n := 0; n < 3; n++ {
		forecast := strings.ToLower(row[3+2*n])
		if !knownForecasts[forecast] {
			return WeatherRecord{}, fmt.Errorf("unknown forecast %q", forecast)
		}
		forecasts[n] = forecast

		temperature, err := strconv.ParseFloat(row[4+2*n], 64)
		if err != nil {
			return WeatherRecord{}, fmt.Errorf("failed to parse temperature: %w", err)
		}
		temperatures[n] = temperature
	}

	i, j := geo.PointToIndex(point)

	return WeatherRecord{
		LatIndex:  i,
		LongIndex: j,
		Date:      date,

		MorningForecast:      forecasts[0],
		MorningTemperature:   temperatures[0],
		AfternoonForecast:    forecasts[1],
		AfternoonTemperature: temperatures[1],
		NightForecast:        forecasts[2],
		NightTemperature:     temperatures[2],
	}, nil
}

var knownForecasts = map[string]bool{
	"sunny": true, "cloudy": true, "rainy": true, "snowy": true, "stormy": true,
}
