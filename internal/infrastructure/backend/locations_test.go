package backend

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotravel-admin/internal/domain"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
)

func TestLocationClient_List(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK,
		`{"cities":[{"locationId":"loc_1","locationName":"Tunis","location":"http://example.org/eco#City_Tunis","population":"638845"}]}`)

	locs, err := NewLocationClient(c).List(context.Background(), domain.LocationTypeCity)

	require.NoError(t, err)
	assert.Equal(t, "/locations/", got.path)
	assert.Equal(t, "location_type=City", got.query)
	require.Len(t, locs, 1)
	assert.Equal(t, "City_Tunis", locs[0].URIID)
	assert.Equal(t, 638845, locs[0].Population)
}

func TestLocationClient_ListByVariant(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"natural_sites":[{"locationName":"Ichkeul","protectedStatus":true}]}`)

	locs, err := NewLocationClient(c).ListByVariant(context.Background(), domain.LocationTypeNaturalSite)

	require.NoError(t, err)
	assert.Equal(t, "/locations/natural-sites", got.path)
	require.Len(t, locs, 1)
	assert.Equal(t, domain.LocationTypeNaturalSite, locs[0].Type)

	_, err = NewLocationClient(c).ListByVariant(context.Background(), "Planet")
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocationType)
}

func TestLocationClient_GetByID(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"region":{"locationName":"Cap Bon","climateType":"Mediterranean"}}`)

	loc, err := NewLocationClient(c).GetByID(context.Background(), domain.LocationTypeRegion, "Region_CapBon")

	require.NoError(t, err)
	assert.Equal(t, "/locations/region/Region_CapBon", got.path)
	assert.Equal(t, "Region_CapBon", loc.URIID)
	assert.Equal(t, "Mediterranean", loc.ClimateType)
}

func TestLocationClient_CreateAndUpdate(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"message":"ok"}`)
	client := NewLocationClient(c)

	_, err := client.Create(context.Background(), domain.LocationTypeCity, domain.LocationPayload{LocationID: "loc_1", LocationName: "Tunis"})
	require.NoError(t, err)
	assert.Equal(t, "/locations/city", got.path)
	assert.Equal(t, "loc_1", got.body["locationId"])

	_, err = client.Update(context.Background(), domain.LocationTypeNaturalSite, "Site_1", domain.LocationPayload{LocationName: "Ichkeul"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/locations/natural-site/Site_1", got.path)
	assert.NotContains(t, got.body, "locationId")
}

func TestLocationClient_Nearby(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{
		"center": {"lat": 36.8, "lon": 10.18},
		"locations": [
			{"location": "http://example.org/eco#City_Sousse", "locationName": "Sousse", "latitude": "35.8256", "longitude": "10.6084"},
			{"location": "http://example.org/eco#City_Ariana", "locationName": "Ariana", "latitude": "36.86", "longitude": "10.19", "distance_km": 6.57}
		]
	}`)

	res, err := NewLocationClient(c).Nearby(context.Background(), domain.NearbyQuery{
		Center:   domain.Point{Lat: 36.8065, Lon: 10.1815},
		RadiusKm: 150,
	})

	require.NoError(t, err)
	assert.Equal(t, "/locations/nearby", got.path)
	assert.Contains(t, got.query, "radius_km=150")
	assert.NotContains(t, got.query, "location_type")
	require.Len(t, res, 2)
	assert.Equal(t, "Ariana", res[0].Name, "sorted by distance")
	assert.Equal(t, 6.57, res[0].DistanceKm)
	assert.InDelta(t, 115.6, res[1].DistanceKm, 1.0)
}
