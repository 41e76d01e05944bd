package geo

import (
	"errors"
	"fmt"
)

var ErrInvalidCoordinates = errors.New("coordinates out of range")

// Point is a geographic coordinate pair. Latitude is in [-90, 90] and
// longitude in [-180, 180). Points compare by value.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewPoint(latitude, longitude float64) (Point, error) {
	if latitude < -90.0 || latitude > 90.0 {
		return Point{}, fmt.Errorf("%w: latitude %f", ErrInvalidCoordinates, latitude)
	}

	if longitude < -180.0 || longitude >= 180.0 {
		return Point{}, fmt.Errorf("%w: longitude %f", ErrInvalidCoordinates, longitude)
	}

	return Point{Latitude: latitude, Longitude: longitude}, nil
}
