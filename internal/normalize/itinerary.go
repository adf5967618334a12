package normalize

import (
	"fmt"
	"strconv"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// поля дня, которые выносятся в отдельные поля ItineraryDay
var itineraryDayKeys = map[string]bool{
	"day": true, "date": true, "description": true, "eco_score": true,
	"total_price": true, "activities": true, "accommodation": true,
}

// ItineraryQuery описывает запрос одной строкой для заголовка результата.
func ItineraryQuery(req domain.ItineraryRequest) string {
	budget := "N/A"
	if req.BudgetPerNight != nil && *req.BudgetPerNight != 0 {
		budget = strconv.FormatFloat(*req.BudgetPerNight, 'f', -1, 64)
	}
	season := req.PreferredSeason
	if season == "" {
		season = "N/A"
	}
	return fmt.Sprintf("Itinerary starting %s, Difficulty: %s, Budget: %s/night, Season: %s",
		req.StartDate, req.Difficulty, budget, season)
}

// NormalizeItinerary builds the itinerary view. An "itinerary" object is
// unwrapped first; fields missing from it are read from the outer response.
func NormalizeItinerary(data any, req domain.ItineraryRequest) domain.Itinerary {
	outer, _ := record.From(data)
	if outer == nil {
		outer = record.Record{}
	}
	payload := outer
	if inner, ok := outer.Object("itinerary"); ok {
		payload = inner
	}

	valid, _ := ItinerarySchema.Check(payload)

	get := func(key string) (any, bool) {
		if v, ok := payload.Value(key); ok {
			return v, true
		}
		return outer.Value(key)
	}
	str := func(key string) string {
		if v, ok := get(key); ok {
			return record.Record{key: v}.String(key)
		}
		return ""
	}

	it := domain.Itinerary{
		Query:           ItineraryQuery(req),
		StartDate:       str("start_date"),
		EndDate:         str("end_date"),
		Status:          str("status"),
		TotalPrice:      optionalNumber(get("total_price")),
		TotalEcoScore:   optionalNumber(get("total_eco_score")),
		Days:            []domain.ItineraryDay{},
		Recommendations: []string{},
		GenerationDate:  str("generation_date"),
		SchemaValid:     valid,
		Raw:             data,
	}
	if it.StartDate == "" {
		it.StartDate = req.StartDate
	}
	if it.Status == "" {
		it.Status = "success"
	}
	if it.GenerationDate == "" {
		it.GenerationDate = now().UTC().Format("2006-01-02T15:04:05.000Z")
	}

	if days, ok := get("days"); ok {
		if list, ok := days.([]any); ok {
			for i, d := range record.Objects(list) {
				it.Days = append(it.Days, normalizeDay(d, i))
			}
		}
	}
	if recs, ok := get("recommendations"); ok {
		if list, ok := recs.([]any); ok {
			for _, r := range list {
				if s := stringify(r); s != "" {
					it.Recommendations = append(it.Recommendations, s)
				}
			}
		}
	}

	return it
}

func normalizeDay(d record.Record, index int) domain.ItineraryDay {
	day := domain.ItineraryDay{
		Day:         d.Int("day"),
		Date:        d.String("date"),
		Description: d.String("description"),
		EcoScore:    d.Float("eco_score"),
		TotalPrice:  d.Float("total_price"),
		Activities:  d.Records("activities"),
	}
	if day.Day == 0 {
		day.Day = index + 1
	}
	if acc, ok := d.Object("accommodation"); ok && len(acc) > 0 {
		day.Accommodation = acc
	}

	extra := record.Record{}
	for k, v := range d {
		if itineraryDayKeys[k] || isEmptyValue(v) {
			continue
		}
		extra[k] = v
	}
	if len(extra) > 0 {
		day.Extra = extra
	}
	return day
}

// optionalNumber - nil для отсутствующих, нулевых и нечисловых значений
func optionalNumber(v any, ok bool) *float64 {
	if !ok {
		return nil
	}
	f := record.ToFloat(v)
	if f == 0 {
		return nil
	}
	return &f
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case record.Record:
		return len(t) == 0
	default:
		return false
	}
}
