package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trailsense/geo-data-mgmt/internal/pkg/application/datasource"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/application/location"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/assets"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/logging"
	"github.com/trailsense/geo-data-mgmt/internal/pkg/infrastructure/repositories/database/geostore"
	"github.com/trailsense/geo-data-mgmt/pkg/geo"
)

var tracer = otel.Tracer("geo-data-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, ds datasource.DataSource, rasters assets.RasterProvider, registry *location.Registry) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetLoggerFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/experiences", func(r chi.Router) {
			r.Get("/", getExperiencesHandler(log, ds))
			r.Post("/", createExperienceHandler(log, ds))
			r.Delete("/{experienceID}", deleteExperienceHandler(log, ds))

			r.Get("/{experienceID}/tracks", getTracksHandler(log, ds))
			r.Get("/{experienceID}/userpoints", getUserPointsHandler(log, ds))
			r.Post("/{experienceID}/userpoints", addUserPointHandler(log, ds))
		})

		r.Route("/tracks", func(r chi.Router) {
			r.Get("/{trackID}/checkpoints", getCheckpointsHandler(log, ds))
			r.Get("/{trackID}/telemetries", getTelemetriesHandler(log, ds))
			r.Post("/{trackID}/telemetries", createTelemetryHandler(log, ds))
		})

		r.Get("/quadrants", getQuadrantHandler(log, ds))
		r.Get("/quadrants/raster", getQuadrantRasterHandler(log, ds, rasters))
		r.Get("/contacts", getContactsHandler(log, ds))
		r.Get("/weather", getWeatherHandler(log, ds))

		r.Post("/location", notifyLocationHandler(log, registry))
	})

	return router, nil
}

func getExperiencesHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-experiences")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		experiences, err := ds.GetExperiences(ctx)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch experiences")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toExperienceResponses(experiences))
	}
}

func createExperienceHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-experience")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		var req newExperienceRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil || req.Name == "" {
			log.Error().Msg("invalid experience payload")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		experience := req.experience()

		err = ds.SaveExperience(ctx, experience)
		if err != nil {
			log.Error().Err(err).Msg("unable to save experience")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, experienceResponse{ID: experience.ID, Name: experience.Name})
	}
}

func deleteExperienceHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-experience")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		experienceID, err := uintParam(r, "experienceID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = ds.DeleteExperience(ctx, experienceID)
		if err != nil {
			log.Error().Err(err).Uint("experience_id", experienceID).Msg("unable to delete experience")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getTracksHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-tracks")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		experienceID, err := uintParam(r, "experienceID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		tracks, err := ds.GetTracks(ctx, experienceID)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch tracks")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toTrackResponses(tracks))
	}
}

func getCheckpointsHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-checkpoints")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		trackID, err := uintParam(r, "trackID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		checkpoints, err := ds.GetCheckpoints(ctx, trackID)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch checkpoints")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toCheckpointResponses(checkpoints))
	}
}

func getTelemetriesHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-telemetries")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		trackID, err := uintParam(r, "trackID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		telemetries, err := ds.GetTelemetries(ctx, trackID)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch telemetries")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toTelemetryResponses(telemetries))
	}
}

func createTelemetryHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-telemetry")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		trackID, err := uintParam(r, "trackID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req newTelemetryRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			log.Error().Msg("invalid telemetry payload")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		telemetry, err := ds.CreateTelemetry(ctx, trackID, req.events())
		if errors.Is(err, geostore.ErrTrackNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error().Err(err).Uint("track_id", trackID).Msg("unable to create telemetry")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toTelemetryResponse(telemetry))
	}
}

func getUserPointsHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-userpoints")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		experienceID, err := uintParam(r, "experienceID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		points, err := ds.GetUserPoints(ctx, experienceID)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch user points")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toUserPointResponses(points))
	}
}

func addUserPointHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "add-userpoint")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		experienceID, err := uintParam(r, "experienceID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req newUserPointRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		point, err := geo.NewPoint(req.Latitude, req.Longitude)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = ds.AddUserPoint(ctx, experienceID, point)
		if errors.Is(err, geostore.ErrExperienceNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error().Err(err).Uint("experience_id", experienceID).Msg("unable to add user point")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func getQuadrantHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-quadrant")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		point, err := pointFromQuery(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		quadrant, err := ds.GetQuadrant(ctx, point)
		if errors.Is(err, geostore.ErrNoSuchQuadrant) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch quadrant")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, quadrant)
	}
}

func getQuadrantRasterHandler(log zerolog.Logger, ds datasource.DataSource, rasters assets.RasterProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-quadrant-raster")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		point, err := pointFromQuery(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		quadrant, err := ds.GetQuadrant(ctx, point)
		if errors.Is(err, geostore.ErrNoSuchQuadrant) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch quadrant")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		tile, err := rasters.Open(ctx, quadrant.RasterPath)
		if errors.Is(err, assets.ErrNoSuchRaster) {
			log.Warn().Str("raster_path", quadrant.RasterPath).Msg("registered raster tile is missing")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("unable to open raster tile")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer tile.Close()

		w.Header().Add("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		_, err = io.Copy(w, tile)
		if err != nil {
			log.Error().Err(err).Msg("unable to stream raster tile")
		}
	}
}

func getContactsHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-contacts")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		point, err := pointFromQuery(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contacts, err := ds.GetContacts(ctx, point)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch contacts")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, contacts)
	}
}

func getWeatherHandler(log zerolog.Logger, ds datasource.DataSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-weather")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		point, err := pointFromQuery(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		date := time.Now().UTC()
		if d := r.URL.Query().Get("date"); d != "" {
			date, err = time.ParseInLocation("2006-01-02", d, time.UTC)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		forecast, err := ds.GetWeatherInfo(ctx, point, date)
		if errors.Is(err, geostore.ErrNoSuchWeatherForecast) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch weather forecast")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, forecast)
	}
}

// notifyLocationHandler feeds reported positions to the location registry,
// from where subscribers such as the quadrant pre-warmer pick them up.
func notifyLocationHandler(log zerolog.Logger, registry *location.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		_, span := tracer.Start(r.Context(), "notify-location")
		defer func() { recordAnyErrorAndEndSpan(err, span) }()

		var req newUserPointRequest
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		point, err := geo.NewPoint(req.Latitude, req.Longitude)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		registry.Notify(point)

		w.WriteHeader(http.StatusAccepted)
	}
}

func pointFromQuery(r *http.Request) (geo.Point, error) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		return geo.Point{}, err
	}

	lon, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		return geo.Point{}, err
	}

	return geo.NewPoint(lat, lon)
}

func uintParam(r *http.Request, name string) (uint, error) {
	value, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	return uint(value), err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func recordAnyErrorAndEndSpan(err error, span trace.Span) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
