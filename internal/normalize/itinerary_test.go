package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotravel-admin/internal/domain"
)

func TestItineraryQuery(t *testing.T) {
	budget := 80.0
	assert.Equal(t,
		"Itinerary starting 2024-07-01, Difficulty: Moderate, Budget: 80/night, Season: Summer",
		ItineraryQuery(domain.ItineraryRequest{StartDate: "2024-07-01", Difficulty: "Moderate", BudgetPerNight: &budget, PreferredSeason: "Summer"}))
	assert.Equal(t,
		"Itinerary starting 2024-07-01, Difficulty: Easy, Budget: N/A/night, Season: N/A",
		ItineraryQuery(domain.ItineraryRequest{StartDate: "2024-07-01", Difficulty: "Easy"}))
}

func TestNormalizeItinerary(t *testing.T) {
	req := domain.ItineraryRequest{StartDate: "2024-07-01", Difficulty: "Moderate"}

	t.Run("documented shape", func(t *testing.T) {
		data := decode(t, `{
			"start_date": "2024-07-01", "end_date": "2024-07-03", "status": "generated",
			"total_price": 320.5, "total_eco_score": 8.4, "generation_date": "2024-06-01T10:00:00",
			"days": [
				{"day": 1, "date": "2024-07-01", "description": "Medina", "eco_score": 8, "total_price": 100,
				 "activities": [{"name": "Walk"}], "accommodation": {"name": "Dar"}, "weather": "sunny", "notes": ""},
				{"date": "2024-07-02"}
			],
			"recommendations": ["Bring water", {"tip": "hat"}]
		}`)

		got := NormalizeItinerary(data, req)

		assert.True(t, got.SchemaValid)
		assert.Equal(t, "generated", got.Status)
		assert.Equal(t, "2024-07-03", got.EndDate)
		require.NotNil(t, got.TotalPrice)
		assert.Equal(t, 320.5, *got.TotalPrice)
		require.Len(t, got.Days, 2)
		assert.Equal(t, 1, got.Days[0].Day)
		assert.Equal(t, "Dar", got.Days[0].Accommodation.String("name"))
		assert.Len(t, got.Days[0].Activities, 1)
		assert.Equal(t, "sunny", got.Days[0].Extra.String("weather"))
		assert.NotContains(t, got.Days[0].Extra, "notes")
		assert.Equal(t, 2, got.Days[1].Day, "missing day number falls back to position")
		assert.Equal(t, []string{"Bring water", `{"tip":"hat"}`}, got.Recommendations)
		assert.Equal(t, "2024-06-01T10:00:00", got.GenerationDate)
	})

	t.Run("wrapped in itinerary", func(t *testing.T) {
		data := decode(t, `{"status":"ok","itinerary":{"days":[{"day":1}],"total_price":0}}`)

		got := NormalizeItinerary(data, req)

		assert.Equal(t, "ok", got.Status, "outer fields fill gaps of the wrapped payload")
		assert.Len(t, got.Days, 1)
		assert.Nil(t, got.TotalPrice)
		assert.Equal(t, "2024-07-01", got.StartDate)
	})

	t.Run("unexpected shape keeps defaults", func(t *testing.T) {
		prev := now
		now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
		defer func() { now = prev }()

		got := NormalizeItinerary(decode(t, `"nothing"`), req)

		assert.False(t, got.SchemaValid)
		assert.Equal(t, "success", got.Status)
		assert.Empty(t, got.Days)
		assert.NotNil(t, got.Recommendations)
		assert.Equal(t, "2024-01-02T03:04:05.000Z", got.GenerationDate)
		assert.Equal(t, "nothing", got.Raw)
	})
}
