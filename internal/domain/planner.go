package domain

import "github.com/ecotravel-admin/internal/pkg/record"

// OptimizationMode - стратегия оптимизации поездки
type OptimizationMode string

const (
	OptimizationModeBalanced OptimizationMode = "balanced"
	OptimizationModeEco      OptimizationMode = "eco"
	OptimizationModeTime     OptimizationMode = "time"
)

// Difficulty levels accepted by the itinerary generator.
const (
	DifficultyEasy      = "Easy"
	DifficultyModerate  = "Moderate"
	DifficultyDifficult = "Difficult"
	DifficultyExpert    = "Expert"
)

// TripRequest - тело POST /carbon-optimizer/optimize-trip
type TripRequest struct {
	TouristID        string           `json:"tourist_id"`
	AccommodationID  string           `json:"accommodation_id"`
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	OptimizationMode OptimizationMode `json:"optimization_mode"`
	ActivityIDs      []string         `json:"activity_ids"`
}

// ItineraryRequest - параметры POST /itineraries/generate-3day-itinerary
type ItineraryRequest struct {
	StartDate       string
	Difficulty      string
	BudgetPerNight  *float64
	PreferredSeason string
}

// Comparison - нормализованный результат сравнения двух активностей
type Comparison struct {
	Query       string           `json:"query"`
	Status      string           `json:"status"`
	Summary     any              `json:"summary,omitempty"`
	Winner      any              `json:"winner,omitempty"`
	Activity1   ComparedActivity `json:"activity1"`
	Activity2   ComparedActivity `json:"activity2"`
	Differences record.Record    `json:"differences"`
	// Attributes - объединение ключей обеих активностей для таблицы сравнения
	Attributes []string `json:"attributes"`
	Available  bool     `json:"available"`
	Source     string   `json:"source"`
	Raw        any      `json:"raw,omitempty"`
}

type ComparedActivity struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Data record.Record `json:"data"`
}

// Comparison sources.
const (
	ComparisonSourceSchema    = "schema"
	ComparisonSourceHeuristic = "heuristic"
	ComparisonSourceNone      = "none"
)

// Itinerary - нормализованный трёхдневный маршрут
type Itinerary struct {
	Query           string         `json:"query"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date,omitempty"`
	Status          string         `json:"status"`
	TotalPrice      *float64       `json:"total_price"`
	TotalEcoScore   *float64       `json:"total_eco_score"`
	Days            []ItineraryDay `json:"days"`
	Recommendations []string       `json:"recommendations"`
	GenerationDate  string         `json:"generation_date"`
	SchemaValid     bool           `json:"schema_valid"`
	Raw             any            `json:"raw,omitempty"`
}

type ItineraryDay struct {
	Day           int             `json:"day"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	EcoScore      float64         `json:"eco_score"`
	TotalPrice    float64         `json:"total_price"`
	Activities    []record.Record `json:"activities"`
	Accommodation record.Record   `json:"accommodation,omitempty"`
	// Extra - прочие непустые поля дня, как их вернул travel API
	Extra record.Record `json:"extra,omitempty"`
}

// OptimizedTrip - нормализованный результат оптимизации поездки
type OptimizedTrip struct {
	Query                   string             `json:"query"`
	TripSummary             record.Record      `json:"trip_summary"`
	DailyItinerary          []record.Record    `json:"daily_itinerary"`
	TransportSegments       []TransportSegment `json:"transport_segments"`
	CarbonFootprint         CarbonFootprint    `json:"carbon_footprint"`
	CompensationSuggestions []record.Record    `json:"compensation_suggestions"`
	TotalCost               float64            `json:"total_cost"`
	EcoScore                float64            `json:"eco_score"`
	SchemaValid             bool               `json:"schema_valid"`
}

type TransportSegment struct {
	FromLocation    string  `json:"from_location"`
	ToLocation      string  `json:"to_location"`
	TransportType   string  `json:"transport_type"`
	TransportName   string  `json:"transport_name"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	CO2EmissionsKg  float64 `json:"co2_emissions_kg"`
	CostEuros       float64 `json:"cost_euros"`
	EcoScore        float64 `json:"eco_score"`
}

type CarbonFootprint struct {
	TotalCO2Kg            float64 `json:"total_co2_kg"`
	EquivalentTreesNeeded int     `json:"equivalent_trees_needed"`
	EquivalentKmCar       int     `json:"equivalent_km_car"`
	Rating                string  `json:"rating"`
	Category              string  `json:"category"`
}
