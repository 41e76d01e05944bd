package datasource

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database/geostore"
	"github.com/trailsense/geo-data-mgmt/pkg/geo"
	"github.com/trailsense/geo-data-mgmt/pkg/types"

	"github.com/matryer/is"
)

func TestContactsAreQueriedOncePerPoint(t *testing.T) {
	is, ctx, mock := testSetup(t)
	cache := newCachedStorage(mock)

	p := geo.Point{Latitude: 45.0, Longitude: 11.0}

	first, err := cache.GetContacts(ctx, p)
	is.NoErr(err)
	second, err := cache.GetContacts(ctx, p)
	is.NoErr(err)

	is.Equal(1, len(mock.GetContactsCalls()))
	is.Equal(first, second)
}

func TestContactsForDifferentPointsAreNotConflated(t *testing.T) {
	is, ctx, mock := testSetup(t)
	mock.GetContactsFunc = func(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error) {
		return []types.EmergencyContact{{Name: fmt.Sprintf("contact at %.0f", p.Latitude), Value: "118"}}, nil
	}
	cache := newCachedStorage(mock)

	first, err := cache.GetContacts(ctx, geo.Point{Latitude: 45.0, Longitude: 11.0})
	is.NoErr(err)
	second, err := cache.GetContacts(ctx, geo.Point{Latitude: 46.0, Longitude: 11.0})
	is.NoErr(err)

	is.Equal(2, len(mock.GetContactsCalls()))
	is.Equal("contact at 45", first[0].Name)
	is.Equal("contact at 46", second[0].Name)
}

func TestQuadrantIsReusedWhileItContainsThePoint(t *testing.T) {
	is, ctx, mock := testSetup(t)
	cache := newCachedStorage(mock)

	// both points land in cell (44, 191), the third does not
	first, err := cache.GetQuadrant(ctx, geo.Point{Latitude: 45.2, Longitude: 11.2})
	is.NoErr(err)
	second, err := cache.GetQuadrant(ctx, geo.Point{Latitude: 45.8, Longitude: 11.8})
	is.NoErr(err)

	is.Equal(1, len(mock.GetQuadrantCalls()))
	is.Equal(first, second)

	third, err := cache.GetQuadrant(ctx, geo.Point{Latitude: 47.5, Longitude: 11.2})
	is.NoErr(err)

	is.Equal(2, len(mock.GetQuadrantCalls()))
	is.True(third.I != first.I)
}

func TestExperienceListIsQueriedOnce(t *testing.T) {
	is, ctx, mock := testSetup(t)
	cache := newCachedStorage(mock)

	_, err := cache.GetExperiences(ctx)
	is.NoErr(err)
	_, err = cache.GetExperiences(ctx)
	is.NoErr(err)

	err = cache.SaveExperience(ctx, &geostore.Experience{Name: "new"})
	is.NoErr(err)

	// the list stays cached across writes for the decorator's lifetime
	_, err = cache.GetExperiences(ctx)
	is.NoErr(err)
	is.Equal(1, len(mock.GetExperiencesCalls()))
	is.Equal(1, len(mock.SaveExperienceCalls()))
}

func TestWeatherIsKeyedOnPointAndDay(t *testing.T) {
	is, ctx, mock := testSetup(t)
	cache := newCachedStorage(mock)

	p := geo.Point{Latitude: 45.0, Longitude: 11.0}
	day := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	_, err := cache.GetWeatherInfo(ctx, p, day)
	is.NoErr(err)

	// same day, different time of day
	_, err = cache.GetWeatherInfo(ctx, p, day.Add(9*time.Hour))
	is.NoErr(err)
	is.Equal(1, len(mock.GetWeatherInfoCalls()))

	_, err = cache.GetWeatherInfo(ctx, p, day.AddDate(0, 0, 1))
	is.NoErr(err)
	is.Equal(2, len(mock.GetWeatherInfoCalls()))

	_, err = cache.GetWeatherInfo(ctx, geo.Point{Latitude: 46.0, Longitude: 11.0}, day)
	is.NoErr(err)
	is.Equal(3, len(mock.GetWeatherInfoCalls()))
}

func TestErrorsPropagateAndLeaveNoCacheEntry(t *testing.T) {
	is, ctx, mock := testSetup(t)

	failing := true
	mock.GetContactsFunc = func(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error) {
		if failing {
			return nil, geostore.ErrRepositoryError
		}
		return []types.EmergencyContact{{Name: "Mountain Rescue", Value: "118"}}, nil
	}
	cache := newCachedStorage(mock)

	p := geo.Point{Latitude: 45.0, Longitude: 11.0}

	_, err := cache.GetContacts(ctx, p)
	is.True(errors.Is(err, geostore.ErrRepositoryError))

	failing = false
	contacts, err := cache.GetContacts(ctx, p)
	is.NoErr(err)
	is.Equal(1, len(contacts))
	is.Equal(2, len(mock.GetContactsCalls()))
}

func TestWeatherNotFoundIsNotCached(t *testing.T) {
	is, ctx, mock := testSetup(t)
	mock.GetWeatherInfoFunc = func(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error) {
		return types.WeatherForecast{}, geostore.ErrNoSuchWeatherForecast
	}
	cache := newCachedStorage(mock)

	p := geo.Point{Latitude: 45.0, Longitude: 11.0}
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := cache.GetWeatherInfo(ctx, p, day)
	is.True(errors.Is(err, geostore.ErrNoSuchWeatherForecast))

	_, err = cache.GetWeatherInfo(ctx, p, day)
	is.True(errors.Is(err, geostore.ErrNoSuchWeatherForecast))
	is.Equal(2, len(mock.GetWeatherInfoCalls()))
}

func TestAddUserPointInvalidatesOnlyTheWrittenExperience(t *testing.T) {
	is, ctx, mock := testSetup(t)

	backing := map[uint][]types.UserPoint{
		1: {},
		2: {{ExperienceID: 2, Point: geo.Point{Latitude: 1.0, Longitude: 1.0}}},
	}
	mock.GetUserPointsFunc = func(ctx context.Context, experienceID uint) ([]types.UserPoint, error) {
		return backing[experienceID], nil
	}
	mock.AddUserPointFunc = func(ctx context.Context, experienceID uint, p geo.Point) error {
		backing[experienceID] = append(backing[experienceID], types.UserPoint{ExperienceID: experienceID, Point: p})
		return nil
	}
	cache := newCachedStorage(mock)

	alpha, err := cache.GetUserPoints(ctx, 1)
	is.NoErr(err)
	is.Equal(0, len(alpha))
	beta, err := cache.GetUserPoints(ctx, 2)
	is.NoErr(err)
	is.Equal(1, len(beta))

	is.NoErr(cache.AddUserPoint(ctx, 1, geo.Point{Latitude: 4.0, Longitude: 4.0}))

	// the store's value for the unrelated experience changes underneath
	backing[2] = nil

	alpha, err = cache.GetUserPoints(ctx, 1)
	is.NoErr(err)
	is.Equal(1, len(alpha))
	is.Equal(geo.Point{Latitude: 4.0, Longitude: 4.0}, alpha[0].Point)

	beta, err = cache.GetUserPoints(ctx, 2)
	is.NoErr(err)
	is.Equal(1, len(beta))

	// one initial read per experience plus the re-read after the write
	is.Equal(3, len(mock.GetUserPointsCalls()))
}

func TestFailedAddUserPointKeepsTheCachedList(t *testing.T) {
	is, ctx, mock := testSetup(t)
	mock.AddUserPointFunc = func(ctx context.Context, experienceID uint, p geo.Point) error {
		return geostore.ErrExperienceNotFound
	}
	cache := newCachedStorage(mock)

	_, err := cache.GetUserPoints(ctx, 1)
	is.NoErr(err)

	err = cache.AddUserPoint(ctx, 1, geo.Point{Latitude: 4.0, Longitude: 4.0})
	is.True(errors.Is(err, geostore.ErrExperienceNotFound))

	_, err = cache.GetUserPoints(ctx, 1)
	is.NoErr(err)
	is.Equal(1, len(mock.GetUserPointsCalls()))
}

func TestDeleteExperienceDropsItsPointEntry(t *testing.T) {
	is, ctx, mock := testSetup(t)
	cache := newCachedStorage(mock)

	_, err := cache.GetUserPoints(ctx, 1)
	is.NoErr(err)

	is.NoErr(cache.DeleteExperience(ctx, 1))

	_, err = cache.GetUserPoints(ctx, 1)
	is.NoErr(err)
	is.Equal(2, len(mock.GetUserPointsCalls()))
}

func testSetup(t *testing.T) (*is.I, context.Context, *geostore.GeoStorageMock) {
	is := is.New(t)
	ctx := context.Background()

	mock := &geostore.GeoStorageMock{
		GetExperiencesFunc: func(ctx context.Context) ([]geostore.Experience, error) {
			return []geostore.Experience{{Name: "experience-1"}}, nil
		},
		SaveExperienceFunc: func(ctx context.Context, experience *geostore.Experience) error {
			return nil
		},
		DeleteExperienceFunc: func(ctx context.Context, experienceID uint) error {
			return nil
		},
		GetTracksFunc: func(ctx context.Context, experienceID uint) ([]geostore.Track, error) {
			return []geostore.Track{{Name: "track-1"}}, nil
		},
		GetCheckpointsFunc: func(ctx context.Context, trackID uint) ([]geostore.Checkpoint, error) {
			return []geostore.Checkpoint{}, nil
		},
		GetTelemetriesFunc: func(ctx context.Context, trackID uint) ([]geostore.Telemetry, error) {
			return []geostore.Telemetry{}, nil
		},
		CreateTelemetryFunc: func(ctx context.Context, trackID uint, events []types.TelemetryEvent) (geostore.Telemetry, error) {
			return geostore.Telemetry{TrackID: trackID}, nil
		},
		GetQuadrantFunc: func(ctx context.Context, p geo.Point) (geo.Quadrant, error) {
			return geo.QuadrantAt(p), nil
		},
		GetContactsFunc: func(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error) {
			return []types.EmergencyContact{{Name: "Mountain Rescue", Value: "118"}}, nil
		},
		GetWeatherInfoFunc: func(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error) {
			return types.WeatherForecast{Date: date}, nil
		},
		GetUserPointsFunc: func(ctx context.Context, experienceID uint) ([]types.UserPoint, error) {
			return []types.UserPoint{}, nil
		},
		AddUserPointFunc: func(ctx context.Context, experienceID uint, p geo.Point) error {
			return nil
		},
	}

	return is, ctx, mock
}
