// Package mapping translates records between the admin naming convention and
// the travel API naming convention. Functions here never fail: absent or
// unparsable values fall back to defaults.
package mapping

import (
	"regexp"
	"strings"
	"time"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// ISOMillis - формат времени, который travel API принимает для booking_date
const ISOMillis = "2006-01-02T15:04:05.000Z"

var dateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// now подменяется в тестах
var now = time.Now

// NormalizeDateTime приводит дату формы к ISO дате-времени:
// пустое значение - текущее время UTC, YYYY-MM-DD - полночь этой даты,
// остальное (в том числе значения с T) передаётся без изменений.
func NormalizeDateTime(value string) string {
	if value == "" {
		return now().UTC().Format(ISOMillis)
	}
	if dateOnly.MatchString(value) {
		return value + "T00:00:00"
	}
	return value
}

// ExtractFragment возвращает часть URI после последнего '#'.
// Значение без '#' возвращается как есть.
func ExtractFragment(value string) string {
	if i := strings.LastIndex(value, "#"); i >= 0 {
		return value[i+1:]
	}
	return value
}

// StripTouristPrefix убирает префикс "tourist_" (без учёта регистра) и пробелы.
func StripTouristPrefix(id string) string {
	id = strings.TrimSpace(id)
	if len(id) >= len("tourist_") && strings.EqualFold(id[:len("tourist_")], "tourist_") {
		id = id[len("tourist_"):]
	}
	return strings.TrimSpace(id)
}

// FormTouristID - первое непустое из tourist_id, tourist, tourist_uri.
func FormTouristID(form domain.BookingForm) string {
	for _, v := range []string{form.TouristID, form.Tourist, form.TouristURI} {
		if v != "" {
			return v
		}
	}
	return ""
}

// BookingToBackend maps a booking form to the BookingCreate payload.
func BookingToBackend(form domain.BookingForm) domain.BookingCreate {
	status := form.BookingStatus
	if status == "" {
		status = string(domain.DefaultBookingStatus)
	}

	touristID := FormTouristID(form)
	if touristID != "" {
		touristID = ExtractFragment(touristID)
	}

	return domain.BookingCreate{
		BookingID:        form.BookingID,
		BookingDate:      NormalizeDateTime(form.BookingDate),
		BookingStatus:    status,
		CheckOutDate:     form.CheckOutDate,
		PaymentMethod:    form.PaymentMethod,
		ConfirmationCode: form.ConfirmationCode,
		SpecialRequests:  form.SpecialRequests,
		TouristID:        touristID,
		AccommodationID:  form.AccommodationID,
		ActivityID:       form.ActivityID,
	}
}

// BookingUpdateToBackend keeps only the fields the update endpoint accepts.
func BookingUpdateToBackend(form domain.BookingForm) domain.BookingUpdate {
	return domain.BookingUpdate{
		BookingDate: form.BookingDate,
		Status:      form.BookingStatus,
	}
}

// BookingFromBackend maps a travel API booking object to the admin view.
func BookingFromBackend(rec record.Record) domain.Booking {
	touristURI := rec.String("tourist", "tourist_id")
	touristID := ""
	if touristURI != "" {
		touristID = ExtractFragment(touristURI)
	}

	return domain.Booking{
		BookingID:        rec.String("booking_id"),
		BookingURL:       rec.String("booking_url"),
		BookingDate:      rec.String("booking_date"),
		BookingStatus:    rec.String("status", "booking_status"),
		ConfirmationCode: rec.String("confirmation_code"),
		TouristID:        touristID,
		TouristURI:       touristURI,
	}
}

// BookingsFromBackend maps every object of a list.
func BookingsFromBackend(recs []record.Record) []domain.Booking {
	out := make([]domain.Booking, 0, len(recs))
	for _, rec := range recs {
		out = append(out, BookingFromBackend(rec))
	}
	return out
}
