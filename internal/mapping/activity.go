package mapping

import (
	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// ActivityFromBackend maps a travel API activity to the picker view. The id
// falls back to the fragment of the activity URI.
func ActivityFromBackend(rec record.Record) domain.Activity {
	uri := rec.String("uri")
	id := rec.String("activityId")
	if id == "" && uri != "" {
		id = ExtractFragment(uri)
	}

	a := domain.Activity{
		ID:              id,
		Type:            rec.String("activityType", "type"),
		Name:            rec.String("activityName"),
		Description:     rec.String("activityDescription"),
		PricePerPerson:  rec.Float("pricePerPerson"),
		DurationHours:   rec.Int("durationHours"),
		DifficultyLevel: rec.String("difficultyLevel"),
		ActivityRating:  rec.Float("activityRating"),
		URI:             uri,
	}
	if a.DurationHours == 0 {
		a.DurationHours = 1
	}
	if a.DifficultyLevel == "" {
		a.DifficultyLevel = domain.DifficultyEasy
	}
	return a
}

// ActivitiesFromBackend maps every object of a list.
func ActivitiesFromBackend(recs []record.Record) []domain.Activity {
	out := make([]domain.Activity, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ActivityFromBackend(rec))
	}
	return out
}
