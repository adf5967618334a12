package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/mapping"
	"github.com/ecotravel-admin/internal/normalize"
)

type plannerClient struct {
	*Client
}

// NewPlannerClient создает клиент сравнения, оптимизации и генерации маршрутов
func NewPlannerClient(c *Client) repository.PlannerRepository {
	return &plannerClient{Client: c}
}

func (c *plannerClient) ListActivities(ctx context.Context, activityType string) (*domain.ActivityList, error) {
	req := request{method: http.MethodGet, path: "/activities/"}
	if activityType != "" {
		req.query = url.Values{"type": {activityType}}
	}
	body, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	activities := mapping.ActivitiesFromBackend(normalize.ExtractList(body, normalize.ActivityListKeys...))
	return &domain.ActivityList{
		Activities: activities,
		Count:      normalize.ListCount(body, len(activities)),
		Type:       activityType,
	}, nil
}

func (c *plannerClient) CompareActivities(ctx context.Context, activity1, activity2 string) (any, error) {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/activities/compare",
		body: map[string]string{
			"activity_id1": activity1,
			"activity_id2": activity2,
		},
	})
}

func (c *plannerClient) OptimizeTrip(ctx context.Context, req domain.TripRequest) (any, error) {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/carbon-optimizer/optimize-trip",
		body:   req,
		long:   true,
	})
}

// GenerateItinerary передаёт параметры в query string, тело запроса пустое
func (c *plannerClient) GenerateItinerary(ctx context.Context, req domain.ItineraryRequest) (any, error) {
	query := url.Values{
		"start_date": {req.StartDate},
		"difficulty": {req.Difficulty},
	}
	if req.BudgetPerNight != nil && *req.BudgetPerNight != 0 {
		query.Set("budget_per_night", strconv.FormatFloat(*req.BudgetPerNight, 'f', -1, 64))
	}
	if req.PreferredSeason != "" {
		query.Set("preferred_season", req.PreferredSeason)
	}
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/itineraries/generate-3day-itinerary",
		query:  query,
		long:   true,
	})
}
