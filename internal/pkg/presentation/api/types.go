package api

import (
	"time"

	"github.com/samber/lo"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database/geostore"
	"github.com/trailsense/geo-data-mgmt/pkg/types"
)

type experienceResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type trackResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type checkpointData struct {
	Num       int     `json:"num"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type telemetryEventData struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Value     int       `json:"value"`
}

type telemetryResponse struct {
	ID     uint                 `json:"id"`
	Events []telemetryEventData `json:"events"`
}

type userPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type newExperienceRequest struct {
	Name   string `json:"name"`
	Tracks []struct {
		Name        string           `json:"name"`
		Checkpoints []checkpointData `json:"checkpoints"`
	} `json:"tracks"`
}

type newTelemetryRequest struct {
	Events []telemetryEventData `json:"events"`
}

type newUserPointRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toExperienceResponses(experiences []geostore.Experience) []experienceResponse {
	return lo.Map(experiences, func(e geostore.Experience, _ int) experienceResponse {
		return experienceResponse{ID: e.ID, Name: e.Name}
	})
}

func toTrackResponses(tracks []geostore.Track) []trackResponse {
	return lo.Map(tracks, func(t geostore.Track, _ int) trackResponse {
		return trackResponse{ID: t.ID, Name: t.Name}
	})
}

func toCheckpointResponses(checkpoints []geostore.Checkpoint) []checkpointData {
	return lo.Map(checkpoints, func(c geostore.Checkpoint, _ int) checkpointData {
		return checkpointData{Num: c.Num, Latitude: c.Latitude, Longitude: c.Longitude}
	})
}

func toTelemetryResponse(t geostore.Telemetry) telemetryResponse {
	return telemetryResponse{
		ID: t.ID,
		Events: lo.Map(t.Events, func(e geostore.TelemetryEvent, _ int) telemetryEventData {
			return telemetryEventData{Timestamp: e.Timestamp, Type: e.Type, Value: e.Value}
		}),
	}
}

func toTelemetryResponses(telemetries []geostore.Telemetry) []telemetryResponse {
	return lo.Map(telemetries, toTelemetryResponseIndexed)
}

func toTelemetryResponseIndexed(t geostore.Telemetry, _ int) telemetryResponse {
	return toTelemetryResponse(t)
}

func toUserPointResponses(points []types.UserPoint) []userPointResponse {
	return lo.Map(points, func(p types.UserPoint, _ int) userPointResponse {
		return userPointResponse{Latitude: p.Point.Latitude, Longitude: p.Point.Longitude}
	})
}

func (r newExperienceRequest) experience() *geostore.Experience {
	experience := &geostore.Experience{Name: r.Name}

	for _, t := range r.Tracks {
		track := geostore.Track{Name: t.Name}
		for _, c := range t.Checkpoints {
			track.Checkpoints = append(track.Checkpoints, geostore.Checkpoint{
				Num:       c.Num,
				Latitude:  c.Latitude,
				Longitude: c.Longitude,
			})
		}
		experience.Tracks = append(experience.Tracks, track)
	}

	return experience
}

func (r newTelemetryRequest) events() []types.TelemetryEvent {
	return lo.Map(r.Events, func(e telemetryEventData, _ int) types.TelemetryEvent {
		return types.TelemetryEvent{
			Timestamp: e.Timestamp,
			Type:      types.TelemetryEventType(e.Type),
			Value:     e.Value,
		}
	})
}
