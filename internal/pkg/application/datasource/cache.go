package datasource

import (
	"context"
	"strconv"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database/geostore"
	"github.com/trailsense/geo-data-mgmt/pkg/geo"
	"github.com/trailsense/geo-data-mgmt/pkg/types"
)

// cachedStorage memoizes the most recent result per query family. Errors from
// the wrapped storage propagate unchanged and never leave a cache entry behind.
//
// The experience list is populated on first read and kept for the lifetime of
// the decorator, writes included; callers that need read-your-write freshness
// on the list construct a new DataSource.
type cachedStorage struct {
	store geostore.GeoStorage

	mu          sync.RWMutex
	experiences []geostore.Experience
	hasList     bool
	quadrant    *geo.Quadrant
	contacts    *contactsEntry
	weather     *weatherEntry

	userPoints cmap.ConcurrentMap[string, []types.UserPoint]
	pointLocks cmap.ConcurrentMap[string, *sync.Mutex]
}

type contactsEntry struct {
	point    geo.Point
	contacts []types.EmergencyContact
}

type weatherEntry struct {
	point    geo.Point
	day      time.Time
	forecast types.WeatherForecast
}

func newCachedStorage(store geostore.GeoStorage) *cachedStorage {
	return &cachedStorage{
		store:      store,
		userPoints: cmap.New[[]types.UserPoint](),
		pointLocks: cmap.New[*sync.Mutex](),
	}
}

func (c *cachedStorage) GetExperiences(ctx context.Context) ([]geostore.Experience, error) {
	c.mu.RLock()
	if c.hasList {
		experiences := c.experiences
		c.mu.RUnlock()
		return experiences, nil
	}
	c.mu.RUnlock()

	experiences, err := c.store.GetExperiences(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.experiences = experiences
	c.hasList = true
	c.mu.Unlock()

	return experiences, nil
}

func (c *cachedStorage) SaveExperience(ctx context.Context, experience *geostore.Experience) error {
	return c.store.SaveExperience(ctx, experience)
}

func (c *cachedStorage) DeleteExperience(ctx context.Context, experienceID uint) error {
	err := c.store.DeleteExperience(ctx, experienceID)
	if err != nil {
		return err
	}

	c.userPoints.Remove(experienceKey(experienceID))

	return nil
}

func (c *cachedStorage) GetTracks(ctx context.Context, experienceID uint) ([]geostore.Track, error) {
	return c.store.GetTracks(ctx, experienceID)
}

func (c *cachedStorage) GetCheckpoints(ctx context.Context, trackID uint) ([]geostore.Checkpoint, error) {
	return c.store.GetCheckpoints(ctx, trackID)
}

func (c *cachedStorage) GetTelemetries(ctx context.Context, trackID uint) ([]geostore.Telemetry, error) {
	return c.store.GetTelemetries(ctx, trackID)
}

func (c *cachedStorage) CreateTelemetry(ctx context.Context, trackID uint, events []types.TelemetryEvent) (geostore.Telemetry, error) {
	return c.store.CreateTelemetry(ctx, trackID, events)
}

// GetQuadrant reuses the last returned quadrant as long as it still contains
// the queried point. Consecutive lookups during a map pan mostly land in the
// same cell.
func (c *cachedStorage) GetQuadrant(ctx context.Context, p geo.Point) (geo.Quadrant, error) {
	c.mu.RLock()
	if c.quadrant != nil && c.quadrant.Contains(p) {
		quadrant := *c.quadrant
		c.mu.RUnlock()
		return quadrant, nil
	}
	c.mu.RUnlock()

	quadrant, err := c.store.GetQuadrant(ctx, p)
	if err != nil {
		return geo.Quadrant{}, err
	}

	c.mu.Lock()
	c.quadrant = &quadrant
	c.mu.Unlock()

	return quadrant, nil
}

// GetContacts hits the cache only when the queried point equals the previous
// one by value.
func (c *cachedStorage) GetContacts(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error) {
	c.mu.RLock()
	if c.contacts != nil && c.contacts.point == p {
		contacts := c.contacts.contacts
		c.mu.RUnlock()
		return contacts, nil
	}
	c.mu.RUnlock()

	contacts, err := c.store.GetContacts(ctx, p)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.contacts = &contactsEntry{point: p, contacts: contacts}
	c.mu.Unlock()

	return contacts, nil
}

func (c *cachedStorage) GetWeatherInfo(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error) {
	day := toUTCDay(date)

	c.mu.RLock()
	if c.weather != nil && c.weather.point == p && c.weather.day.Equal(day) {
		forecast := c.weather.forecast
		c.mu.RUnlock()
		return forecast, nil
	}
	c.mu.RUnlock()

	forecast, err := c.store.GetWeatherInfo(ctx, p, date)
	if err != nil {
		return types.WeatherForecast{}, err
	}

	c.mu.Lock()
	c.weather = &weatherEntry{point: p, day: day, forecast: forecast}
	c.mu.Unlock()

	return forecast, nil
}

func (c *cachedStorage) GetUserPoints(ctx context.Context, experienceID uint) ([]types.UserPoint, error) {
	key := experienceKey(experienceID)

	lock := c.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	if points, ok := c.userPoints.Get(key); ok {
		return points, nil
	}

	points, err := c.store.GetUserPoints(ctx, experienceID)
	if err != nil {
		return nil, err
	}

	c.userPoints.Set(key, points)

	return points, nil
}

// AddUserPoint drops the cached point list of the written experience only.
// Entries for other experiences stay valid.
func (c *cachedStorage) AddUserPoint(ctx context.Context, experienceID uint, p geo.Point) error {
	key := experienceKey(experienceID)

	lock := c.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	err := c.store.AddUserPoint(ctx, experienceID, p)
	if err != nil {
		return err
	}

	c.userPoints.Remove(key)

	return nil
}

// lockFor serializes point reads and writes per experience.
func (c *cachedStorage) lockFor(key string) *sync.Mutex {
	c.pointLocks.SetIfAbsent(key, &sync.Mutex{})
	lock, _ := c.pointLocks.Get(key)
	return lock
}

func experienceKey(experienceID uint) string {
	return strconv.FormatUint(uint64(experienceID), 10)
}

func toUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
