package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
)

type sample struct {
	TouristID string `json:"tourist_id" validate:"required"`
	Date      string `json:"booking_date" validate:"omitempty,isodate"`
	Status    string `json:"booking_status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := Validate(&sample{TouristID: "abc", Date: "2024-05-01", Status: "pending"})
		assert.NoError(t, err)

		err = Validate(&sample{TouristID: "abc", Date: "2024-05-01T10:30:00"})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := Validate(&sample{Date: "01/05/2024", Status: "lost"})
		require.Error(t, err)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_FAILED", appErr.Code)
		assert.Contains(t, appErr.Message, "tourist_id is required")
		assert.Contains(t, appErr.Message, "booking_date must be a date")
		assert.Contains(t, appErr.Message, "booking_status must be one of")
	})
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("type", "City", "required,oneof=City NaturalSite Region"))

	err := Var("type", "Village", "required,oneof=City NaturalSite Region")
	require.Error(t, err)
	assert.Contains(t, apperrors.UserMessage(err), "type must be one of")
}
