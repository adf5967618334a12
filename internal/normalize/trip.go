package normalize

import (
	"fmt"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// TripQuery описывает запрос оптимизации одной строкой.
func TripQuery(req domain.TripRequest) string {
	return fmt.Sprintf("Optimizing trip for %s from %s to %s", req.TouristID, req.StartDate, req.EndDate)
}

// NormalizeTrip builds the optimized trip view from the optimizer response.
func NormalizeTrip(data any, req domain.TripRequest) domain.OptimizedTrip {
	obj, _ := record.From(data)
	if obj == nil {
		obj = record.Record{}
	}

	valid, _ := TripSchema.Check(obj)

	trip := domain.OptimizedTrip{
		Query:                   TripQuery(req),
		DailyItinerary:          obj.Records("daily_itinerary"),
		TransportSegments:       []domain.TransportSegment{},
		CompensationSuggestions: []record.Record{},
		TotalCost:               obj.Float("total_cost"),
		EcoScore:                obj.Float("eco_score"),
		SchemaValid:             valid,
	}

	trip.TripSummary, _ = obj.Object("trip_summary")
	if trip.TripSummary == nil {
		trip.TripSummary = record.Record{}
	}

	for _, seg := range obj.Records("transport_segments") {
		trip.TransportSegments = append(trip.TransportSegments, domain.TransportSegment{
			FromLocation:    seg.String("from_location", "from"),
			ToLocation:      seg.String("to_location", "to"),
			TransportType:   seg.String("transport_type"),
			TransportName:   seg.String("transport_name"),
			DistanceKm:      seg.Float("distance_km"),
			DurationMinutes: seg.Int("duration_minutes"),
			CO2EmissionsKg:  seg.Float("co2_emissions_kg"),
			CostEuros:       seg.Float("cost_euros"),
			EcoScore:        seg.Float("eco_score"),
		})
	}

	if cf, ok := obj.Object("carbon_footprint"); ok {
		trip.CarbonFootprint = domain.CarbonFootprint{
			TotalCO2Kg:            cf.Float("total_co2_kg"),
			EquivalentTreesNeeded: cf.Int("equivalent_trees_needed"),
			EquivalentKmCar:       cf.Int("equivalent_km_car"),
			Rating:                cf.String("rating"),
			Category:              cf.String("category"),
		}
	}

	// предложения бывают строками, их оборачиваем в {"description": ...}
	if list, ok := obj.List("compensation_suggestions"); ok {
		for _, item := range list {
			if rec, ok := record.From(item); ok {
				trip.CompensationSuggestions = append(trip.CompensationSuggestions, rec)
			} else if s := stringify(item); s != "" {
				trip.CompensationSuggestions = append(trip.CompensationSuggestions, record.Record{"description": s})
			}
		}
	}

	return trip
}
