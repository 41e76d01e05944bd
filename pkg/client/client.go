package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trailsense/geo-data-mgmt/pkg/geo"
	"github.com/trailsense/geo-data-mgmt/pkg/types"
)

var tracer = otel.Tracer("geo-data-client")

var ErrNotFound = fmt.Errorf("not found")

// GeoDataClient is the client side of the geo data service, for collaborators
// that resolve quadrants, contacts and weather over HTTP.
type GeoDataClient interface {
	GetQuadrant(ctx context.Context, p geo.Point) (geo.Quadrant, error)
	GetContacts(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error)
	GetWeatherInfo(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error)
	ReportLocation(ctx context.Context, p geo.Point) error
}

type geoDataClient struct {
	url string
}

func NewGeoDataClient(serviceURL string) GeoDataClient {
	return &geoDataClient{
		url: serviceURL,
	}
}

func (c *geoDataClient) GetQuadrant(ctx context.Context, p geo.Point) (geo.Quadrant, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-quadrant")
	defer func() { recordAnyErrorAndEndSpan(err, span) }()

	var quadrant geo.Quadrant
	err = c.get(ctx, "/api/v0/quadrants?"+pointQuery(p), &quadrant)
	if err != nil {
		return geo.Quadrant{}, err
	}

	return quadrant, nil
}

func (c *geoDataClient) GetContacts(ctx context.Context, p geo.Point) ([]types.EmergencyContact, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-contacts")
	defer func() { recordAnyErrorAndEndSpan(err, span) }()

	var contacts []types.EmergencyContact
	err = c.get(ctx, "/api/v0/contacts?"+pointQuery(p), &contacts)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

func (c *geoDataClient) GetWeatherInfo(ctx context.Context, p geo.Point, date time.Time) (types.WeatherForecast, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-weather")
	defer func() { recordAnyErrorAndEndSpan(err, span) }()

	target := fmt.Sprintf("/api/v0/weather?%s&date=%s", pointQuery(p), date.UTC().Format("2006-01-02"))

	var forecast types.WeatherForecast
	err = c.get(ctx, target, &forecast)
	if err != nil {
		return types.WeatherForecast{}, err
	}

	return forecast, nil
}

func (c *geoDataClient) ReportLocation(ctx context.Context, p geo.Point) error {
	var err error
	ctx, span := tracer.Start(ctx, "report-location")
	defer func() { recordAnyErrorAndEndSpan(err, span) }()

	body := fmt.Sprintf(`{"latitude":%f,"longitude":%f}`, p.Latitude, p.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/v0/location", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	client := httpClient()
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to report location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return err
	}

	return nil
}

func (c *geoDataClient) get(ctx context.Context, target string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+target, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	client := httpClient()
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to retrieve data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

func httpClient() http.Client {
	return http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func pointQuery(p geo.Point) string {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", p.Latitude))
	q.Set("longitude", fmt.Sprintf("%f", p.Longitude))
	return q.Encode()
}

func recordAnyErrorAndEndSpan(err error, span trace.Span) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
