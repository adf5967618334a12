package domain

// BookingStatus - статус бронирования
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// DefaultBookingStatus подставляется, когда статус в форме не выбран
const DefaultBookingStatus = BookingStatusConfirmed

// BookingStatuses returns the closed set of booking statuses.
func BookingStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled}
}

// IsValid checks the status against the closed set.
func (s BookingStatus) IsValid() bool {
	for _, st := range BookingStatuses() {
		if st == s {
			return true
		}
	}
	return false
}

// Booking - бронирование в именовании админки
type Booking struct {
	BookingID        string `json:"booking_id"`
	BookingURL       string `json:"booking_url,omitempty"`
	BookingDate      string `json:"booking_date"`
	BookingStatus    string `json:"booking_status"`
	ConfirmationCode string `json:"confirmation_code"`
	TouristID        string `json:"tourist_id"`
	TouristURI       string `json:"tourist_uri"`
}

// BookingList - список бронирований с количеством
type BookingList struct {
	Bookings  []Booking `json:"bookings"`
	Count     int       `json:"count"`
	TouristID string    `json:"tourist_id,omitempty"`
}

// BookingForm - поля формы бронирования в именовании админки
type BookingForm struct {
	BookingID        string
	BookingDate      string
	BookingStatus    string
	CheckOutDate     string
	PaymentMethod    string
	ConfirmationCode string
	SpecialRequests  string
	TouristID        string
	Tourist          string
	TouristURI       string
	AccommodationID  string
	ActivityID       string
}

// BookingCreate - тело POST /bookings/create в именовании travel API
type BookingCreate struct {
	BookingID        string `json:"booking_id,omitempty"`
	BookingDate      string `json:"booking_date"`
	BookingStatus    string `json:"booking_status"`
	CheckOutDate     string `json:"check_out_date,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	SpecialRequests  string `json:"special_requests,omitempty"`
	TouristID        string `json:"tourist_id,omitempty"`
	AccommodationID  string `json:"accommodation_id,omitempty"`
	ActivityID       string `json:"activity_id,omitempty"`
}

// BookingUpdate - тело PUT /bookings/{id}; travel API меняет только дату и статус
type BookingUpdate struct {
	BookingDate string `json:"booking_date,omitempty"`
	Status      string `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u BookingUpdate) IsEmpty() bool {
	return u.BookingDate == "" && u.Status == ""
}

// BookingCreated - ответ travel API на создание бронирования
type BookingCreated struct {
	Status           string `json:"status"`
	BookingID        string `json:"booking_id"`
	ConfirmationCode string `json:"confirmation_code"`
	Message          string `json:"message,omitempty"`
}
