package normalize

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema - документированная схема ответа travel API
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

func mustSchema(name, source string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("normalize: invalid %s schema: %v", name, err))
	}
	return &Schema{name: name, schema: s}
}

// Name returns the schema name used in logs.
func (s *Schema) Name() string { return s.name }

// Check validates a decoded JSON value. The returned strings describe every
// violation and are empty when the value conforms.
func (s *Schema) Check(doc any) (bool, []string) {
	res, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return false, []string{err.Error()}
	}
	if res.Valid() {
		return true, nil
	}
	errs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		errs = append(errs, fmt.Sprintf("%v", e))
	}
	return false, errs
}

// ComparisonSchema - ответ /activities/compare после разворачивания поля comparison
var ComparisonSchema = mustSchema("comparison", `{
	"type": "object",
	"required": ["activity1", "activity2"],
	"properties": {
		"activity1": {"type": "object"},
		"activity2": {"type": "object"},
		"differences": {"type": "object"}
	}
}`)

// ItinerarySchema - ответ /itineraries/generate-3day-itinerary
var ItinerarySchema = mustSchema("itinerary", `{
	"type": "object",
	"required": ["days"],
	"properties": {
		"start_date": {"type": "string"},
		"end_date": {"type": ["string", "null"]},
		"status": {"type": "string"},
		"total_price": {"type": ["number", "null"]},
		"total_eco_score": {"type": ["number", "null"]},
		"days": {"type": "array", "items": {"type": "object"}},
		"recommendations": {"type": "array"},
		"generation_date": {"type": "string"}
	}
}`)

// TripSchema - ответ /carbon-optimizer/optimize-trip
var TripSchema = mustSchema("trip", `{
	"type": "object",
	"required": ["trip_summary", "transport_segments", "carbon_footprint"],
	"properties": {
		"trip_summary": {"type": "object"},
		"daily_itinerary": {"type": "array", "items": {"type": "object"}},
		"transport_segments": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"distance_km": {"type": "number"},
					"duration_minutes": {"type": "number"},
					"co2_emissions_kg": {"type": "number"},
					"cost_euros": {"type": "number"}
				}
			}
		},
		"carbon_footprint": {
			"type": "object",
			"properties": {
				"total_co2_kg": {"type": "number"},
				"rating": {"type": "string"}
			}
		},
		"compensation_suggestions": {"type": "array"},
		"total_cost": {"type": "number"},
		"eco_score": {"type": "number"}
	}
}`)
