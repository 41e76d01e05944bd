package types

import (
	"time"

	"github.com/trailsense/geo-data-mgmt/pkg/geo"
)

// EmergencyContact is a name/value pair valid inside a geographic coverage
// region. Coverage uses closed-interval containment.
type EmergencyContact struct {
	Name     string     `json:"name"`
	Value    string     `json:"value"`
	Coverage geo.Region `json:"coverage"`
}

type Forecast string

const (
	ForecastSunny  Forecast = "sunny"
	ForecastCloudy Forecast = "cloudy"
	ForecastRainy  Forecast = "rainy"
	ForecastSnowy  Forecast = "snowy"
	ForecastStormy Forecast = "stormy"
)

type WeatherSample struct {
	Forecast    Forecast `json:"forecast"`
	Temperature float64  `json:"temperature"`
}

// WeatherForecast is the per-quadrant, per-day forecast record. Date is
// normalized to midnight UTC.
type WeatherForecast struct {
	Date      time.Time     `json:"date"`
	Morning   WeatherSample `json:"morning"`
	Afternoon WeatherSample `json:"afternoon"`
	Night     WeatherSample `json:"night"`
}

// UserPoint is an ad-hoc waypoint added by the user during an experience.
type UserPoint struct {
	ExperienceID uint      `json:"experienceID"`
	Point        geo.Point `json:"point"`
}

type TelemetryEventType string

const (
	EventCheckpointReached TelemetryEventType = "checkpoint_reached"
	EventHeartRate         TelemetryEventType = "heart_rate"
)

// TelemetryEvent is one timestamped sample of a recorded track traversal:
// either a checkpoint-reached event (value holds the checkpoint number) or a
// heart-rate reading.
type TelemetryEvent struct {
	Timestamp time.Time          `json:"timestamp"`
	Type      TelemetryEventType `json:"type"`
	Value     int                `json:"value"`
}
