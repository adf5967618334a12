package dto

import (
	"github.com/ecotravel-admin/internal/domain"
)

// BookingRequest - форма создания бронирования
type BookingRequest struct {
	BookingID        string `json:"booking_id" validate:"omitempty,max=128"`
	BookingDate      string `json:"booking_date" validate:"omitempty,isodate"`
	BookingStatus    string `json:"booking_status" validate:"omitempty,oneof=pending confirmed cancelled"`
	CheckOutDate     string `json:"check_out_date" validate:"omitempty,isodate"`
	PaymentMethod    string `json:"payment_method"`
	ConfirmationCode string `json:"confirmation_code"`
	SpecialRequests  string `json:"special_requests" validate:"max=2000"`
	TouristID        string `json:"tourist_id"`
	Tourist          string `json:"tourist"`
	TouristURI       string `json:"tourist_uri"`
	AccommodationID  string `json:"accommodation_id"`
	ActivityID       string `json:"activity_id"`
}

// ToForm converts the request into the domain booking form.
func (r BookingRequest) ToForm() domain.BookingForm {
	return domain.BookingForm{
		BookingID:        r.BookingID,
		BookingDate:      r.BookingDate,
		BookingStatus:    r.BookingStatus,
		CheckOutDate:     r.CheckOutDate,
		PaymentMethod:    r.PaymentMethod,
		ConfirmationCode: r.ConfirmationCode,
		SpecialRequests:  r.SpecialRequests,
		TouristID:        r.TouristID,
		Tourist:          r.Tourist,
		TouristURI:       r.TouristURI,
		AccommodationID:  r.AccommodationID,
		ActivityID:       r.ActivityID,
	}
}

// BookingUpdateRequest - изменяемые поля бронирования
type BookingUpdateRequest struct {
	BookingDate   string `json:"booking_date" validate:"omitempty,isodate"`
	BookingStatus string `json:"booking_status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// ToForm converts the request into the domain booking form.
func (r BookingUpdateRequest) ToForm() domain.BookingForm {
	return domain.BookingForm{
		BookingDate:   r.BookingDate,
		BookingStatus: r.BookingStatus,
	}
}

// NearbyRequest - поиск локаций в радиусе
type NearbyRequest struct {
	Lat      float64 `query:"latitude" json:"latitude" validate:"min=-90,max=90"`
	Lon      float64 `query:"longitude" json:"longitude" validate:"min=-180,max=180"`
	RadiusKm float64 `query:"radius_km" json:"radius_km" validate:"omitempty,gt=0"`
	Type     string  `query:"location_type" json:"location_type" validate:"omitempty,oneof=City NaturalSite Region"`
}

// CompareRequest - сравнение двух активностей
type CompareRequest struct {
	ActivityID1   string `json:"activity_id1" validate:"required"`
	ActivityID2   string `json:"activity_id2" validate:"required,nefield=ActivityID1"`
	Activity1Name string `json:"activity1_name"`
	Activity2Name string `json:"activity2_name"`
}

// TripRequest - оптимизация поездки по углеродному следу
type TripRequest struct {
	TouristID        string   `json:"tourist_id" validate:"required"`
	AccommodationID  string   `json:"accommodation_id" validate:"required"`
	StartDate        string   `json:"start_date" validate:"required,isodate"`
	EndDate          string   `json:"end_date" validate:"required,isodate"`
	OptimizationMode string   `json:"optimization_mode" validate:"omitempty,oneof=balanced eco time"`
	ActivityIDs      []string `json:"activity_ids" validate:"required,min=1,dive,required"`
}

// ToDomain applies the default optimization mode.
func (r TripRequest) ToDomain() domain.TripRequest {
	mode := domain.OptimizationMode(r.OptimizationMode)
	if mode == "" {
		mode = domain.OptimizationModeBalanced
	}
	return domain.TripRequest{
		TouristID:        r.TouristID,
		AccommodationID:  r.AccommodationID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		OptimizationMode: mode,
		ActivityIDs:      r.ActivityIDs,
	}
}

// ItineraryRequest - генерация трёхдневного маршрута
type ItineraryRequest struct {
	StartDate       string   `json:"start_date" validate:"required,isodate"`
	Difficulty      string   `json:"difficulty" validate:"omitempty,oneof=Easy Moderate Difficult Expert"`
	BudgetPerNight  *float64 `json:"budget_per_night" validate:"omitempty,gt=0"`
	PreferredSeason string   `json:"preferred_season" validate:"max=32"`
}

// ToDomain applies the default difficulty.
func (r ItineraryRequest) ToDomain() domain.ItineraryRequest {
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyModerate
	}
	return domain.ItineraryRequest{
		StartDate:       r.StartDate,
		Difficulty:      difficulty,
		BudgetPerNight:  r.BudgetPerNight,
		PreferredSeason: r.PreferredSeason,
	}
}

// AuditListRequest - фильтр журнала действий
type AuditListRequest struct {
	Resource string `query:"resource" validate:"omitempty,oneof=booking location transport"`
	EntityID string `query:"entity_id"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=500"`
}
