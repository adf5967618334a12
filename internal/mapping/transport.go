package mapping

import (
	"fmt"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// intOr возвращает def, если значение отсутствует или равно 0
func intOr(form record.Record, key string, def int) int {
	if v := form.Int(key); v != 0 {
		return v
	}
	return def
}

func transportBase(form record.Record, idPrefix, defaultType string, defaultCapacity int, defaultHours string) domain.TransportBase {
	id := form.String("id")
	if id == "" {
		id = fmt.Sprintf("%s-%d", idPrefix, now().UnixMilli())
	}
	return domain.TransportBase{
		TransportID:         id,
		TransportName:       form.String("transportName"),
		TransportType:       orDefault(form.String("transportType"), defaultType),
		PricePerKm:          form.Float("pricePerKm"),
		CarbonEmissionPerKm: form.Float("carbonEmissionPerKm"),
		Capacity:            intOr(form, "capacity", defaultCapacity),
		Availability:        form.Bool("availability"),
		OperatingHours:      orDefault(form.String("operatingHours"), defaultHours),
		AverageSpeed:        form.Float("averageSpeed"),
		ContactPhone:        form.String("contactPhone"),
	}
}

// BikeToBackend maps a bike form to the POST /transport/bike payload.
func BikeToBackend(form record.Record) domain.BikePayload {
	return domain.BikePayload{
		TransportBase:      transportBase(form, "BIKE", "City Bike", 1, "24/7"),
		BikeModel:          form.String("bikeModel"),
		IsElectric:         form.Bool("isElectric"),
		BatteryRange:       form.Float("batteryRange"),
		RentalPricePerHour: form.Float("rentalPricePerHour"),
		FrameSize:          orDefault(form.String("frameSize"), "M"),
	}
}

// ElectricVehicleToBackend maps an electric vehicle form.
func ElectricVehicleToBackend(form record.Record) domain.ElectricVehiclePayload {
	return domain.ElectricVehiclePayload{
		TransportBase:       transportBase(form, "EV", "Electric Car", 4, "24/7"),
		VehicleModel:        form.String("vehicleModel"),
		VehicleBatteryRange: form.Float("vehicleBatteryRange"),
		ChargingTime:        form.Int("chargingTime"),
		SeatingCapacity:     intOr(form, "seatingCapacity", 4),
		DailyRentalPrice:    form.Float("dailyRentalPrice"),
		HasAirConditioning:  form.Bool("hasAirConditioning"),
	}
}

// PublicTransportToBackend maps a public transport form.
func PublicTransportToBackend(form record.Record) domain.PublicTransportPayload {
	return domain.PublicTransportPayload{
		TransportBase:         transportBase(form, "PT", "Bus", 50, "06:00-23:00"),
		LineNumber:            form.String("lineNumber"),
		RouteDescription:      form.String("routeDescription"),
		TicketPrice:           form.Float("ticketPrice"),
		FrequencyMinutes:      intOr(form, "frequencyMinutes", 30),
		AccessibleForDisabled: form.Bool("accessibleForDisabled"),
	}
}

// TransportToBackend выбирает маппер по варианту. Неизвестный вариант даёт nil.
func TransportToBackend(kind domain.TransportKind, form record.Record) any {
	switch kind {
	case domain.TransportKindBike:
		return BikeToBackend(form)
	case domain.TransportKindElectricVehicle:
		return ElectricVehicleToBackend(form)
	case domain.TransportKindPublicTransport:
		return PublicTransportToBackend(form)
	default:
		return nil
	}
}

// TransportUpdateToBackend keeps transportName, availability, pricePerKm and
// operatingHours. Absent fields, and a zero or unparsable price, are omitted.
func TransportUpdateToBackend(form record.Record) domain.TransportUpdate {
	var upd domain.TransportUpdate
	if v, ok := form["transportName"]; ok && v != nil {
		upd.TransportName = ptr(form.String("transportName"))
	}
	if v, ok := form["availability"]; ok && v != nil {
		upd.Availability = ptr(form.Bool("availability"))
	}
	if price := form.Float("pricePerKm"); price != 0 {
		upd.PricePerKm = ptr(price)
	}
	if v, ok := form["operatingHours"]; ok && v != nil {
		upd.OperatingHours = ptr(form.String("operatingHours"))
	}
	return upd
}

// TransportKindOf определяет вариант по маркерным полям, пустая строка - не определён.
func TransportKindOf(rec record.Record) domain.TransportKind {
	switch {
	case rec.Has("bikeModel") || rec.Has("frameSize"):
		return domain.TransportKindBike
	case rec.Has("vehicleModel") || rec.Has("chargingTime"):
		return domain.TransportKindElectricVehicle
	case rec.Has("lineNumber") || rec.Has("frequencyMinutes"):
		return domain.TransportKindPublicTransport
	default:
		return ""
	}
}

// TransportFromBackend maps a travel API transport to the flat admin view.
func TransportFromBackend(rec record.Record) domain.Transport {
	t := domain.Transport{
		ID:                  rec.String("transportId", "transportid", "transport_id"),
		Kind:                TransportKindOf(rec),
		TransportName:       rec.String("transportName"),
		TransportType:       rec.String("transportType"),
		PricePerKm:          rec.Float("pricePerKm"),
		CarbonEmissionPerKm: rec.Float("carbonEmissionPerKm"),
		Capacity:            rec.Int("capacity"),
		Availability:        rec.Bool("availability"),
		OperatingHours:      rec.String("operatingHours"),
		AverageSpeed:        rec.Float("averageSpeed"),
		ContactPhone:        rec.String("contactPhone"),
		URI:                 rec.String("uri"),
	}

	switch t.Kind {
	case domain.TransportKindBike:
		t.BikeFields = &domain.BikeFields{
			BikeModel:          rec.String("bikeModel"),
			IsElectric:         rec.Bool("isElectric"),
			BatteryRange:       rec.Float("batteryRange"),
			RentalPricePerHour: rec.Float("rentalPricePerHour"),
			FrameSize:          rec.String("frameSize"),
		}
	case domain.TransportKindElectricVehicle:
		t.ElectricVehicleFields = &domain.ElectricVehicleFields{
			VehicleModel:        rec.String("vehicleModel"),
			VehicleBatteryRange: rec.Float("vehicleBatteryRange"),
			ChargingTime:        rec.Int("chargingTime"),
			SeatingCapacity:     rec.Int("seatingCapacity"),
			DailyRentalPrice:    rec.Float("dailyRentalPrice"),
			HasAirConditioning:  rec.Bool("hasAirConditioning"),
		}
	case domain.TransportKindPublicTransport:
		t.PublicTransportFields = &domain.PublicTransportFields{
			LineNumber:            rec.String("lineNumber"),
			RouteDescription:      rec.String("routeDescription"),
			TicketPrice:           rec.Float("ticketPrice"),
			FrequencyMinutes:      rec.Int("frequencyMinutes"),
			AccessibleForDisabled: rec.Bool("accessibleForDisabled"),
		}
	}

	return t
}

// TransportsFromBackend maps every object of a list.
func TransportsFromBackend(recs []record.Record) []domain.Transport {
	out := make([]domain.Transport, 0, len(recs))
	for _, rec := range recs {
		out = append(out, TransportFromBackend(rec))
	}
	return out
}
