package domain

// Подклассы активностей travel API
const (
	ActivityTypeAdventure = "AdventureActivity"
	ActivityTypeCultural  = "CulturalActivity"
	ActivityTypeNature    = "NatureActivity"
)

// ActivityTypes lists the accepted activity type filters.
var ActivityTypes = []string{ActivityTypeAdventure, ActivityTypeCultural, ActivityTypeNature}

// Activity - активность в списке выбора страницы сравнения
type Activity struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	PricePerPerson  float64 `json:"pricePerPerson"`
	DurationHours   int     `json:"durationHours"`
	DifficultyLevel string  `json:"difficultyLevel"`
	ActivityRating  float64 `json:"activityRating"`
	URI             string  `json:"uri,omitempty"`
}

// ActivityList - ответ списка активностей
type ActivityList struct {
	Activities []Activity `json:"activities"`
	Count      int        `json:"count"`
	Type       string     `json:"type,omitempty"`
}
