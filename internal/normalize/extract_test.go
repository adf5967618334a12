package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotravel-admin/internal/pkg/record"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := record.Decode([]byte(s))
	require.NoError(t, err)
	return v
}

func TestExtractList(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		keys     []string
		expected []string
	}{
		{"keyed", `{"bookings":[{"booking_id":"1"},{"booking_id":"2"}]}`, BookingListKeys, []string{"1", "2"}},
		{"bare array", `[{"booking_id":"1"},{"booking_id":"2"}]`, BookingListKeys, []string{"1", "2"}},
		{"no recognized key", `{}`, BookingListKeys, []string{}},
		{"results fallback", `{"results":[{"booking_id":"9"}]}`, BookingListKeys, []string{"9"}},
		{"first matching key wins", `{"cities":[{"booking_id":"c"}],"locations":[{"booking_id":"l"}]}`, LocationListKeys, []string{"l"}},
		{"non-array value under key is skipped", `{"locations":"none","regions":[{"booking_id":"r"}]}`, LocationListKeys, []string{"r"}},
		{"non-object elements skipped", `[1,"x",{"booking_id":"ok"},null]`, BookingListKeys, []string{"ok"}},
		{"scalar body", `"oops"`, BookingListKeys, []string{}},
		{"null body", `null`, BookingListKeys, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractList(decode(t, tt.body), tt.keys...)
			require.NotNil(t, got)

			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.String("booking_id"))
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestExtractObject(t *testing.T) {
	assert.Equal(t, "Tunis", ExtractObject(decode(t, `{"city":{"locationName":"Tunis"}}`), LocationObjectKeys...).String("locationName"))
	assert.Equal(t, "Bus 5", ExtractObject(decode(t, `{"transportName":"Bus 5"}`), TransportObjectKeys...).String("transportName"))
	assert.Empty(t, ExtractObject(decode(t, `[1,2]`), TransportObjectKeys...))
}

func TestListCount(t *testing.T) {
	assert.Equal(t, 7, ListCount(decode(t, `{"count":7,"bookings":[]}`), 0))
	assert.Equal(t, 2, ListCount(decode(t, `{"count":0}`), 2))
	assert.Equal(t, 3, ListCount(decode(t, `[]`), 3))
}
