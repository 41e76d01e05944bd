package geostore

import (
	"time"

	"gorm.io/gorm"

	"github.com/trailsense/geo-data-mgmt/pkg/geo"
	"github.com/trailsense/geo-data-mgmt/pkg/types"
)

// Experience is a named itinerary container owning its tracks and the user
// points added while it was active.
type Experience struct {
	gorm.Model `json:"-"`

	Name string `gorm:"uniqueIndex" json:"name"`

	Tracks     []Track     `gorm:"constraint:OnDelete:CASCADE" json:"tracks,omitempty"`
	UserPoints []UserPoint `gorm:"constraint:OnDelete:CASCADE" json:"userPoints,omitempty"`
}

// Track is a predefined path of ordered checkpoints, with zero or more
// recorded traversals attached.
type Track struct {
	gorm.Model `json:"-"`

	ExperienceID uint   `json:"-"`
	Name         string `json:"name"`

	Checkpoints []Checkpoint `gorm:"constraint:OnDelete:CASCADE" json:"checkpoints,omitempty"`
	Telemetries []Telemetry  `gorm:"constraint:OnDelete:CASCADE" json:"telemetries,omitempty"`
}

type Checkpoint struct {
	gorm.Model `json:"-"`

	TrackID   uint    `json:"-"`
	Num       int     `json:"num"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Checkpoint) Point() geo.Point {
	return geo.Point{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Telemetry is one recorded traversal of a track. The event list is written
// once at creation and never modified afterwards.
type Telemetry struct {
	gorm.Model `json:"-"`

	TrackID uint             `json:"-"`
	Events  []TelemetryEvent `gorm:"constraint:OnDelete:CASCADE" json:"events,omitempty"`
}

type TelemetryEvent struct {
	gorm.Model `json:"-"`

	TelemetryID uint      `json:"-"`
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"`
	Value       int       `json:"value"`
}

func (e TelemetryEvent) Event() types.TelemetryEvent {
	return types.TelemetryEvent{
		Timestamp: e.Timestamp,
		Type:      types.TelemetryEventType(e.Type),
		Value:     e.Value,
	}
}

// Contact is an emergency contact with its closed-interval coverage
// rectangle, stored edge by edge.
type Contact struct {
	gorm.Model `json:"-"`

	Name  string  `json:"name"`
	Value string  `json:"value"`
	North float64 `json:"north"`
	South float64 `json:"south"`
	West  float64 `json:"west"`
	East  float64 `json:"east"`
}

func (c Contact) EmergencyContact() types.EmergencyContact {
	return types.EmergencyContact{
		Name:  c.Name,
		Value: c.Value,
		Coverage: geo.Region{
			NorthWest: geo.Point{Latitude: c.North, Longitude: c.West},
			SouthEast: geo.Point{Latitude: c.South, Longitude: c.East},
		},
	}
}

// QuadrantTile registers the raster map asset covering one grid cell.
type QuadrantTile struct {
	gorm.Model `json:"-"`

	LatIndex   int    `gorm:"uniqueIndex:idx_tiles_cell" json:"i"`
	LongIndex  int    `gorm:"uniqueIndex:idx_tiles_cell" json:"j"`
	RasterPath string `json:"rasterPath"`
}

// WeatherRecord holds the forecast for one grid cell and one day, with
// morning, afternoon and night readings. Date is midnight UTC.
type WeatherRecord struct {
	gorm.Model `json:"-"`

	LatIndex  int       `gorm:"uniqueIndex:idx_weather_cell_date" json:"i"`
	LongIndex int       `gorm:"uniqueIndex:idx_weather_cell_date" json:"j"`
	Date      time.Time `gorm:"uniqueIndex:idx_weather_cell_date" json:"date"`

	MorningForecast      string  `json:"morningForecast"`
	MorningTemperature   float64 `json:"morningTemperature"`
	AfternoonForecast    string  `json:"afternoonForecast"`
	AfternoonTemperature float64 `json:"afternoonTemperature"`
	NightForecast        string  `json:"nightForecast"`
	NightTemperature     float64 `json:"nightTemperature"`
}

func (w WeatherRecord) Forecast() types.WeatherForecast {
	return types.WeatherForecast{
		Date: w.Date,
		Morning: types.WeatherSample{
			Forecast:    types.Forecast(w.MorningForecast),
			Temperature: w.MorningTemperature,
		},
		Afternoon: types.WeatherSample{
			Forecast:    types.Forecast(w.AfternoonForecast),
			Temperature: w.AfternoonTemperature,
		},
		Night: types.WeatherSample{
			Forecast:    types.Forecast(w.NightForecast),
			Temperature: w.NightTemperature,
		},
	}
}

type UserPoint struct {
	gorm.Model `json:"-"`

	ExperienceID uint    `json:"experienceID"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

func (u UserPoint) Point() types.UserPoint {
	return types.UserPoint{
		ExperienceID: u.ExperienceID,
		Point:        geo.Point{Latitude: u.Latitude, Longitude: u.Longitude},
	}
}
