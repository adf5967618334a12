package mapping

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestNormalizeDateTime(t *testing.T) {
	freezeTime(t, time.Date(2024, 3, 9, 8, 7, 6, 5_000_000, time.FixedZone("CET", 3600)))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"date only", "2024-05-01", "2024-05-01T00:00:00"},
		{"already has time", "2024-05-01T10:30:00", "2024-05-01T10:30:00"},
		{"with zone", "2024-05-01T10:30:00Z", "2024-05-01T10:30:00Z"},
		{"empty uses now in utc", "", "2024-03-09T07:07:06.005Z"},
		{"free text passes", "tomorrow", "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDateTime(tt.input))
		})
	}
}

func TestExtractFragment(t *testing.T) {
	assert.Equal(t, "Tourist_John", ExtractFragment("http://example.org#Tourist_John"))
	assert.Equal(t, "c", ExtractFragment("a#b#c"))
	assert.Equal(t, "abc123", ExtractFragment("abc123"))
	assert.Equal(t, "", ExtractFragment("http://example.org#"))
}

func TestStripTouristPrefix(t *testing.T) {
	assert.Equal(t, "abc123", StripTouristPrefix("tourist_abc123"))
	assert.Equal(t, "abc123", StripTouristPrefix("  Tourist_abc123 "))
	assert.Equal(t, "abc123", StripTouristPrefix("TOURIST_ abc123"))
	assert.Equal(t, "John", StripTouristPrefix("John"))
	assert.Equal(t, "tourist", StripTouristPrefix("tourist"))
}

func TestBookingToBackend(t *testing.T) {
	t.Run("applies defaults and extracts tourist fragment", func(t *testing.T) {
		got := BookingToBackend(domain.BookingForm{
			BookingID:   "B-1",
			BookingDate: "2024-05-01",
			TouristURI:  "http://example.org/eco#Tourist_John",
		})

		want := domain.BookingCreate{
			BookingID:     "B-1",
			BookingDate:   "2024-05-01T00:00:00",
			BookingStatus: "confirmed",
			TouristID:     "Tourist_John",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BookingToBackend() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tourist_id wins over tourist and tourist_uri", func(t *testing.T) {
		got := BookingToBackend(domain.BookingForm{
			BookingDate:   "2024-05-01T09:00:00",
			BookingStatus: "pending",
			TouristID:     "T1",
			Tourist:       "T2",
			TouristURI:    "http://x#T3",
		})
		assert.Equal(t, "T1", got.TouristID)
		assert.Equal(t, "pending", got.BookingStatus)
		assert.Equal(t, "2024-05-01T09:00:00", got.BookingDate)
	})

	t.Run("no tourist leaves it empty", func(t *testing.T) {
		got := BookingToBackend(domain.BookingForm{BookingDate: "2024-05-01"})
		assert.Empty(t, got.TouristID)
	})
}

func TestBookingUpdateToBackend(t *testing.T) {
	upd := BookingUpdateToBackend(domain.BookingForm{BookingStatus: "cancelled", TouristID: "T1"})
	assert.Equal(t, domain.BookingUpdate{Status: "cancelled"}, upd)
	assert.False(t, upd.IsEmpty())
	assert.True(t, BookingUpdateToBackend(domain.BookingForm{}).IsEmpty())
}

func TestBookingFromBackend(t *testing.T) {
	rec := record.Record{
		"booking_id":        "B-7",
		"booking_url":       "http://example.org/eco#Booking_B-7",
		"booking_date":      "2024-05-01T00:00:00",
		"status":            "pending",
		"confirmation_code": "CONF-1",
		"tourist":           "http://example.org/eco#Tourist_John",
	}

	got := BookingFromBackend(rec)

	want := domain.Booking{
		BookingID:        "B-7",
		BookingURL:       "http://example.org/eco#Booking_B-7",
		BookingDate:      "2024-05-01T00:00:00",
		BookingStatus:    "pending",
		ConfirmationCode: "CONF-1",
		TouristID:        "Tourist_John",
		TouristURI:       "http://example.org/eco#Tourist_John",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BookingFromBackend() mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingRoundTrip(t *testing.T) {
	forms := []domain.BookingForm{
		{BookingID: "B-1", BookingDate: "2024-05-01", BookingStatus: "pending", TouristID: "John"},
		{BookingID: "B-2", BookingDate: "2024-06-01T12:00:00", TouristURI: "http://example.org#Tourist_Ann"},
		{BookingID: "B-3", BookingStatus: "cancelled", Tourist: "Bob"},
	}

	for _, form := range forms {
		t.Run(form.BookingID, func(t *testing.T) {
			sent := BookingToBackend(form)
			back := BookingFromBackend(record.FromStruct(sent))

			require.Equal(t, form.BookingID, back.BookingID)
			assert.Equal(t, sent.TouristID, back.TouristID)
			assert.Equal(t, ExtractFragment(FormTouristID(form)), back.TouristID)

			wantStatus := form.BookingStatus
			if wantStatus == "" {
				wantStatus = string(domain.DefaultBookingStatus)
			}
			assert.Equal(t, wantStatus, back.BookingStatus)
		})
	}
}
