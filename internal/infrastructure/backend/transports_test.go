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

func TestTransportClient(t *testing.T) {
	t.Run("list with type filter", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK, `{"transports":[{"transportId":"BIKE-1","bikeModel":"Urban"}]}`)

		list, err := NewTransportClient(c).List(context.Background(), domain.TransportKindBike)

		require.NoError(t, err)
		assert.Equal(t, "type=bike", got.query)
		require.Len(t, list, 1)
		assert.Equal(t, domain.TransportKindBike, list[0].Kind)
	})

	t.Run("get unwraps transport", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, `{"transport":{"transportId":"EV-1","vehicleModel":"Zoe"}}`)

		tr, err := NewTransportClient(c).GetByID(context.Background(), "EV-1")

		require.NoError(t, err)
		assert.Equal(t, "EV-1", tr.ID)
		assert.Equal(t, "Zoe", tr.VehicleModel)
	})

	t.Run("create posts to variant path", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK, `{"status":"created"}`)

		_, err := NewTransportClient(c).Create(context.Background(), domain.TransportKindPublicTransport,
			domain.PublicTransportPayload{TransportBase: domain.TransportBase{TransportID: "PT-1"}, FrequencyMinutes: 30})

		require.NoError(t, err)
		assert.Equal(t, "/transport/public-transport", got.path)
		assert.Equal(t, "PT-1", got.body["transportId"])
	})

	t.Run("create rejects unknown kind", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, `{}`)

		_, err := NewTransportClient(c).Create(context.Background(), "boat", struct{}{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidTransportKind)
	})

	t.Run("search escapes term", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK, `[]`)

		list, err := NewTransportClient(c).Search(context.Background(), "city bike")

		require.NoError(t, err)
		assert.Equal(t, "/transport/search/city bike", got.path)
		assert.Empty(t, list)
	})

	t.Run("rankings", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK, `{"results":[{"transportId":"BIKE-1"}]}`)

		list, err := NewTransportClient(c).Ranking(context.Background(), domain.TransportRankingCheapest)
		require.NoError(t, err)
		assert.Equal(t, "/transport/stats/cheapest", got.path)
		assert.Len(t, list, 1)

		_, err = NewTransportClient(c).Ranking(context.Background(), "slowest")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("update omits absent fields", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK, `{}`)
		price := 0.3

		_, err := NewTransportClient(c).Update(context.Background(), "BIKE-1", domain.TransportUpdate{PricePerKm: &price})

		require.NoError(t, err)
		assert.Len(t, got.body, 1)
		assert.Equal(t, 0.3, got.body["pricePerKm"])
	})
}

func TestPlannerClient(t *testing.T) {
	t.Run("compare", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK, `{"comparison":"{}"}`)

		_, err := NewPlannerClient(c).CompareActivities(context.Background(), "A1", "A2")

		require.NoError(t, err)
		assert.Equal(t, "/activities/compare", got.path)
		assert.Equal(t, "A1", got.body["activity_id1"])
		assert.Equal(t, "A2", got.body["activity_id2"])
	})

	t.Run("itinerary uses query params", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK, `{"days":[]}`)
		budget := 80.0

		_, err := NewPlannerClient(c).GenerateItinerary(context.Background(), domain.ItineraryRequest{
			StartDate: "2024-07-01", Difficulty: "Easy", BudgetPerNight: &budget, PreferredSeason: "Summer",
		})

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, got.method)
		assert.Nil(t, got.body)
		assert.Equal(t, "budget_per_night=80&difficulty=Easy&preferred_season=Summer&start_date=2024-07-01", got.query)
	})

	t.Run("optimize trip body", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK, `{}`)

		_, err := NewPlannerClient(c).OptimizeTrip(context.Background(), domain.TripRequest{
			TouristID: "T1", OptimizationMode: domain.OptimizationModeEco, ActivityIDs: []string{"A1"},
		})

		require.NoError(t, err)
		assert.Equal(t, "/carbon-optimizer/optimize-trip", got.path)
		assert.Equal(t, "eco", got.body["optimization_mode"])
		assert.Equal(t, []interface{}{"A1"}, got.body["activity_ids"])
	})
}
