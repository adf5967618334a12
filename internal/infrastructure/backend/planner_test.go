package backend

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotravel-admin/internal/domain"
)

func TestPlannerClient_ListActivities(t *testing.T) {
	t.Run("filtered by type", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK,
			`{"activities":[{"activityId":"ACT-1","activityName":"Dune Walk","activityType":"NatureActivity"}],"count":1}`)

		list, err := NewPlannerClient(c).ListActivities(context.Background(), domain.ActivityTypeNature)

		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, got.method)
		assert.Equal(t, "/activities/", got.path)
		assert.Equal(t, "type=NatureActivity", got.query)
		require.Len(t, list.Activities, 1)
		assert.Equal(t, "ACT-1", list.Activities[0].ID)
		assert.Equal(t, "Dune Walk", list.Activities[0].Name)
		assert.Equal(t, 1, list.Count)
		assert.Equal(t, domain.ActivityTypeNature, list.Type)
	})

	t.Run("bare array without filter", func(t *testing.T) {
		c, got := newTestClient(t, http.StatusOK,
			`[{"activityId":"A"},{"activityId":"B"},"junk"]`)

		list, err := NewPlannerClient(c).ListActivities(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, got.query)
		assert.Len(t, list.Activities, 2)
		assert.Equal(t, 2, list.Count)
	})
}
