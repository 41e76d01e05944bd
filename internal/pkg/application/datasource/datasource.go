package datasource

import (
	"context"
	"time"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database/geostore"
	"github.com/trailsense/geo-data-mgmt/pkg/geo"
	"github.com/trailsense/geo-data-mgmt/pkg/types"
)

// DataSource is the single data access contract consumed by the presentation
// layer and by external collaborators. Reads go through the cache; errors of
// the underlying storage surface unchanged.
type DataSource interface {
	GetExperiences(ctx context.Context) ([]geostore.Experience, error)
	SaveExperience(ctx context.Context, experience *geostore.Experience) error
	DeleteExperience(ctx context.Context, experienceID uint) error

	GetTracks(ctx context.Context, experienceID uint) ([]geostore.Track, error)
	GetCheckpoints(ctx context.Context, trackID uint) ([]geostore.Checkpoint, error)

	GetTelemetries(ctx context.Context, trackID uint) ([]geostore.Telemetry, error)
	CreateTelemetry(ctx context.Context, trackID uint, events []types.TelemetryEvent) (geostore.Telemetry, error)

	GetQuadrant(ctx context.Context, p geo.Point) (geo.Quadrant, error)
	GetContacts(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error)
	GetWeatherInfo(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error)

	GetUserPoints(ctx context.Context, experienceID uint) ([]types.UserPoint, error)
	AddUserPoint(ctx context.Context, experienceID uint, p geo.Point) error
}

type dataSourceImpl struct {
	cache *cachedStorage
}

// New composes the storage behind the caching decorator.
func New(storage geostore.GeoStorage) DataSource {
	return &dataSourceImpl{
		cache: newCachedStorage(storage),
	}
}

func (d *dataSourceImpl) GetExperiences(ctx context.Context) ([]geostore.Experience, error) {
	return d.cache.GetExperiences(ctx)
}
func (d *dataSourceImpl) SaveExperience(ctx context.Context, experience *geostore.Experience) error {
	return d.cache.SaveExperience(ctx, experience)
}
func (d *dataSourceImpl) DeleteExperience(ctx context.Context, experienceID uint) error {
	return d.cache.DeleteExperience(ctx, experienceID)
}
func (d *dataSourceImpl) GetTracks(ctx context.Context, experienceID uint) ([]geostore.Track, error) {
	return d.cache.GetTracks(ctx, experienceID)
}
func (d *dataSourceImpl) GetCheckpoints(ctx context.Context, trackID uint) ([]geostore.Checkpoint, error) {
	return d.cache.GetCheckpoints(ctx, trackID)
}
func (d *dataSourceImpl) GetTelemetries(ctx context.Context, trackID uint) ([]geostore.Telemetry, error) {
	return d.cache.GetTelemetries(ctx, trackID)
}
func (d *dataSourceImpl) CreateTelemetry(ctx context.Context, trackID uint, events []types.TelemetryEvent) (geostore.Telemetry, error) {
	return d.cache.CreateTelemetry(ctx, trackID, events)
}
func (d *dataSourceImpl) GetQuadrant(ctx context.Context, p geo.Point) (geo.Quadrant, error) {
	return d.cache.GetQuadrant(ctx, p)
}
func (d *dataSourceImpl) GetContacts(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error) {
	return d.cache.GetContacts(ctx, p)
}
func (d *dataSourceImpl) GetWeatherInfo(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error) {
	return d.cache.GetWeatherInfo(ctx, p, date)
}
func (d *dataSourceImpl) GetUserPoints(ctx context.Context, experienceID uint) ([]types.UserPoint, error) {
	return d.cache.GetUserPoints(ctx, experienceID)
}
func (d *dataSourceImpl) AddUserPoint(ctx context.Context, experienceID uint, p geo.Point) error {
	return d.cache.AddUserPoint(ctx, experienceID, p)
}
