package backend

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/mapping"
	"github.com/ecotravel-admin/internal/normalize"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/record"
	"github.com/ecotravel-admin/internal/pkg/utils"
)

type locationClient struct {
	*Client
}

// NewLocationClient создает клиент локаций
func NewLocationClient(c *Client) repository.LocationRepository {
	return &locationClient{Client: c}
}

func (c *locationClient) List(ctx context.Context, locationType domain.LocationType) ([]domain.Location, error) {
	var query url.Values
	if locationType != "" {
		query = url.Values{"location_type": {string(locationType)}}
	}
	body, err := c.do(ctx, request{method: http.MethodGet, path: "/locations/", query: query})
	if err != nil {
		return nil, err
	}
	return mapping.LocationsFromBackend(normalize.ExtractList(body, normalize.LocationListKeys...), locationType), nil
}

func (c *locationClient) ListByVariant(ctx context.Context, locationType domain.LocationType) ([]domain.Location, error) {
	collection := locationType.CollectionSegment()
	if collection == "" {
		return nil, apperrors.ErrInvalidLocationType
	}
	body, err := c.do(ctx, request{method: http.MethodGet, path: "/locations/" + collection})
	if err != nil {
		return nil, err
	}
	return mapping.LocationsFromBackend(normalize.ExtractList(body, normalize.LocationListKeys...), locationType), nil
}

func (c *locationClient) GetByID(ctx context.Context, locationType domain.LocationType, id string) (*domain.Location, error) {
	path := "/locations/" + segment(id)
	if seg := locationType.PathSegment(); seg != "" {
		path = "/locations/" + seg + "/" + segment(id)
	}
	body, err := c.do(ctx, request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	obj, err := object(body, normalize.LocationObjectKeys...)
	if err != nil {
		return nil, err
	}

	// идентификатор запроса и есть URI id локации
	withID := make(record.Record, len(obj)+1)
	for k, v := range obj {
		withID[k] = v
	}
	withID["uri_id"] = id

	loc := mapping.LocationFromBackend(withID, locationType)
	return &loc, nil
}

func (c *locationClient) Create(ctx context.Context, locationType domain.LocationType, payload domain.LocationPayload) (record.Record, error) {
	seg := locationType.PathSegment()
	if seg == "" {
		return nil, apperrors.ErrInvalidLocationType
	}
	body, err := c.do(ctx, request{method: http.MethodPost, path: "/locations/" + seg, body: payload})
	if err != nil {
		return nil, err
	}
	return result(body), nil
}

func (c *locationClient) Update(ctx context.Context, locationType domain.LocationType, id string, payload domain.LocationPayload) (record.Record, error) {
	seg := locationType.PathSegment()
	if seg == "" {
		return nil, apperrors.ErrInvalidLocationType
	}
	body, err := c.do(ctx, request{method: http.MethodPut, path: "/locations/" + seg + "/" + segment(id), body: payload})
	if err != nil {
		return nil, err
	}
	return result(body), nil
}

func (c *locationClient) Delete(ctx context.Context, id string) (record.Record, error) {
	body, err := c.do(ctx, request{method: http.MethodDelete, path: "/locations/" + segment(id)})
	if err != nil {
		return nil, err
	}
	return result(body), nil
}

// Nearby ищет локации в радиусе. Если travel API не вернул distance_km,
// расстояние считается по формуле гаверсинусов.
func (c *locationClient) Nearby(ctx context.Context, q domain.NearbyQuery) ([]domain.NearbyLocation, error) {
	query := url.Values{
		"latitude":  {strconv.FormatFloat(q.Center.Lat, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(q.Center.Lon, 'f', -1, 64)},
		"radius_km": {strconv.FormatFloat(q.RadiusKm, 'f', -1, 64)},
	}
	if q.Type != "" {
		query.Set("location_type", string(q.Type))
	}

	body, err := c.do(ctx, request{method: http.MethodGet, path: "/locations/nearby", query: query})
	if err != nil {
		return nil, err
	}

	recs := normalize.ExtractList(body, normalize.NearbyListKeys...)
	out := make([]domain.NearbyLocation, 0, len(recs))
	for _, rec := range recs {
		loc := mapping.LocationFromBackend(rec, q.Type)
		distance := rec.Float("distance_km")
		if !rec.Has("distance_km") {
			distance = utils.HaversineKm(q.Center, domain.Point{Lat: loc.Latitude, Lon: loc.Longitude})
		}
		out = append(out, domain.NearbyLocation{
			Location:   loc,
			DistanceKm: math.Round(distance*100) / 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}
