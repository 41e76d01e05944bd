package datasource

import (
	"context"
	"errors"
	"testing"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database/geostore"
	"github.com/trailsense/geo-data-mgmt/pkg/geo"
)

func TestFacadeDelegatesToTheCachedStorage(t *testing.T) {
	is, ctx, mock := testSetup(t)
	ds := New(mock)

	experiences, err := ds.GetExperiences(ctx)
	is.NoErr(err)
	is.Equal(1, len(experiences))
	is.Equal("experience-1", experiences[0].Name)

	tracks, err := ds.GetTracks(ctx, 1)
	is.NoErr(err)
	is.Equal("track-1", tracks[0].Name)

	quadrant, err := ds.GetQuadrant(ctx, geo.Point{Latitude: 45.5, Longitude: 11.5})
	is.NoErr(err)
	is.Equal(44, quadrant.I)
	is.Equal(191, quadrant.J)
}

func TestFacadeCachesAcrossCalls(t *testing.T) {
	is, ctx, mock := testSetup(t)
	ds := New(mock)

	p := geo.Point{Latitude: 45.0, Longitude: 11.0}

	_, err := ds.GetContacts(ctx, p)
	is.NoErr(err)
	_, err = ds.GetContacts(ctx, p)
	is.NoErr(err)

	is.Equal(1, len(mock.GetContactsCalls()))
}

func TestFacadeSurfacesStorageErrors(t *testing.T) {
	is, ctx, mock := testSetup(t)
	mock.GetQuadrantFunc = func(ctx context.Context, p geo.Point) (geo.Quadrant, error) {
		return geo.Quadrant{}, geostore.ErrNoSuchQuadrant
	}
	ds := New(mock)

	_, err := ds.GetQuadrant(ctx, geo.Point{Latitude: 45.5, Longitude: 11.5})
	is.True(errors.Is(err, geostore.ErrNoSuchQuadrant))
}
