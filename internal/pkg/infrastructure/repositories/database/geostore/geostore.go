package geostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/logging"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/trailsense/geo-data-mgmt/pkg/geo"
	"github.com/trailsense/geo-data-mgmt/pkg/types"
)

var ErrNoSuchQuadrant = fmt.Errorf("no raster tile registered for quadrant")
var ErrNoSuchWeatherForecast = fmt.Errorf("no weather forecast for location and date")
var ErrExperienceNotFound = fmt.Errorf("experience not found")
var ErrTrackNotFound = fmt.Errorf("track not found")
var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

//go:generate moq -rm -out geostore_mock.go . GeoStorage

// GeoStorage is the single storage capability of the service: durable CRUD
// over the experience graph plus quadrant-scoped lookups of raster tiles,
// emergency contacts and weather forecasts.
type GeoStorage interface {
	GetExperiences(ctx context.Context) ([]Experience, error)
	SaveExperience(ctx context.Context, experience *Experience) error
	DeleteExperience(ctx context.Context, experienceID uint) error

	GetTracks(ctx context.Context, experienceID uint) ([]Track, error)
	GetCheckpoints(ctx context.Context, trackID uint) ([]Checkpoint, error)

	GetTelemetries(ctx context.Context, trackID uint) ([]Telemetry, error)
	CreateTelemetry(ctx context.Context, trackID uint, events []types.TelemetryEvent) (Telemetry, error)

	GetQuadrant(ctx context.Context, p geo.Point) (geo.Quadrant, error)
	GetContacts(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error)
	GetWeatherInfo(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error)

	GetUserPoints(ctx context.Context, experienceID uint) ([]types.UserPoint, error)
	AddUserPoint(ctx context.Context, experienceID uint, p geo.Point) error

	SeedTiles(ctx context.Context, r io.Reader) error
	SeedContacts(ctx context.Context, r io.Reader) error
	SeedWeather(ctx context.Context, r io.Reader) error
}

func NewGeoStorage(connect database.ConnectorFunc) (GeoStorage, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(
		&Experience{}, &Track{}, &Checkpoint{},
		&Telemetry{}, &TelemetryEvent{},
		&Contact{}, &QuadrantTile{}, &WeatherRecord{}, &UserPoint{},
	)
	if err != nil {
		return nil, err
	}

	return &geoStorage{db: impl}, nil
}

type geoStorage struct {
	db *gorm.DB
}

func (g *geoStorage) GetExperiences(ctx context.Context) ([]Experience, error) {
	var experiences []Experience

	result := g.db.WithContext(ctx).Find(&experiences)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	return experiences, nil
}

func (g *geoStorage) SaveExperience(ctx context.Context, experience *Experience) error {
	if experience.ID == 0 {
		var existing Experience
		result := g.db.WithContext(ctx).Where("name = ?", experience.Name).First(&existing)
		if result.Error == nil {
			experience.ID = existing.ID
		}
	}

	tx := g.db.WithContext(ctx).Session(&gorm.Session{
		FullSaveAssociations:   true,
		SkipDefaultTransaction: true,
	})

	return tx.Save(experience).Error
}

// DeleteExperience removes an experience together with everything it owns.
// Reads that were scoped to the experience and are still in flight observe
// empty results afterwards, never an error.
func (g *geoStorage) DeleteExperience(ctx context.Context, experienceID uint) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		trackIDs := tx.Model(&Track{}).Select("id").Where("experience_id = ?", experienceID)
		telemetryIDs := tx.Model(&Telemetry{}).Select("id").Where("track_id IN (?)", trackIDs)

		if err := tx.Where("telemetry_id IN (?)", telemetryIDs).Delete(&TelemetryEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("track_id IN (?)", trackIDs).Delete(&Telemetry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("track_id IN (?)", trackIDs).Delete(&Checkpoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("experience_id = ?", experienceID).Delete(&UserPoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("experience_id = ?", experienceID).Delete(&Track{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Experience{}, experienceID).Error
	})
}

// GetTracks returns the tracks of an experience. An experience that no
// longer exists yields an empty slice rather than an error, tolerating
// reads racing a concurrent deletion.
func (g *geoStorage) GetTracks(ctx context.Context, experienceID uint) ([]Track, error) {
	var tracks []Track

	result := g.db.WithContext(ctx).
		Where("experience_id = ?", experienceID).
		Find(&tracks)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	return tracks, nil
}

func (g *geoStorage) GetCheckpoints(ctx context.Context, trackID uint) ([]Checkpoint, error) {
	var checkpoints []Checkpoint

	result := g.db.WithContext(ctx).
		Where("track_id = ?", trackID).
		Order("num").
		Find(&checkpoints)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	return checkpoints, nil
}

func (g *geoStorage) GetTelemetries(ctx context.Context, trackID uint) ([]Telemetry, error) {
	var telemetries []Telemetry

	result := g.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp")
		}).
		Where("track_id = ?", trackID).
		Find(&telemetries)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	return telemetries, nil
}

// CreateTelemetry persists a new telemetry built from a finalized event
// list. Repeated calls with identical events create distinct telemetries.
func (g *geoStorage) CreateTelemetry(ctx context.Context, trackID uint, events []types.TelemetryEvent) (Telemetry, error) {
	var track Track

	result := g.db.WithContext(ctx).Select("id").First(&track, trackID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Telemetry{}, ErrTrackNotFound
		}
		return Telemetry{}, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	telemetry := Telemetry{TrackID: trackID}
	for _, e := range events {
		telemetry.Events = append(telemetry.Events, TelemetryEvent{
			Timestamp: e.Timestamp,
			Type:      string(e.Type),
			Value:     e.Value,
		})
	}

	result = g.db.WithContext(ctx).Create(&telemetry)
	if result.Error != nil {
		return Telemetry{}, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	return telemetry, nil
}

func (g *geoStorage) GetQuadrant(ctx context.Context, p geo.Point) (geo.Quadrant, error) {
	i, j := geo.PointToIndex(p)

	var tile QuadrantTile
	result := g.db.WithContext(ctx).
		Where("lat_index = ? AND long_index = ?", i, j).
		First(&tile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return geo.Quadrant{}, fmt.Errorf("%w: (%d, %d)", ErrNoSuchQuadrant, i, j)
		}

		logger := logging.GetLoggerFromContext(ctx)
		logger.Error().Err(result.Error).Msg("quadrant lookup failed")

		return geo.Quadrant{}, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	quadrant, err := geo.Bounds(i, j)
	if err != nil {
		return geo.Quadrant{}, err
	}

	quadrant.RasterPath = tile.RasterPath

	return quadrant, nil
}

func (g *geoStorage) GetContacts(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error) {
	var rows []Contact

	// coverage regions are closed intervals, boundary points count as inside
	result := g.db.WithContext(ctx).
		Where("north >= ? AND south <= ? AND west <= ? AND east >= ?",
			p.Latitude, p.Latitude, p.Longitude, p.Longitude).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	contacts := make([]types.EmergencyContact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, row.EmergencyContact())
	}

	return contacts, nil
}

func (g *geoStorage) GetWeatherInfo(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error) {
	i, j := geo.PointToIndex(p)
	day := toUTCDay(date)

	var record WeatherRecord
	result := g.db.WithContext(ctx).
		Where("lat_index = ? AND long_index = ? AND date = ?", i, j, day).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return types.WeatherForecast{}, fmt.Errorf("%w: (%d, %d) on %s",
				ErrNoSuchWeatherForecast, i, j, day.Format("2006-01-02"))
		}
		return types.WeatherForecast{}, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	return record.Forecast(), nil
}

func (g *geoStorage) GetUserPoints(ctx context.Context, experienceID uint) ([]types.UserPoint, error) {
	var rows []UserPoint

	result := g.db.WithContext(ctx).
		Where("experience_id = ?", experienceID).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	points := make([]types.UserPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, row.Point())
	}

	return points, nil
}

func (g *geoStorage) AddUserPoint(ctx context.Context, experienceID uint, p geo.Point) error {
	var experience Experience

	result := g.db.WithContext(ctx).Select("id").First(&experience, experienceID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("%w: %s", ErrRepositoryError, result.Error.Error())
	}

	point := UserPoint{
		ExperienceID: experienceID,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
	}

	return g.db.WithContext(ctx).Create(&point).Error
}

func toUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
