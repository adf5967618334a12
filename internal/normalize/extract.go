// Package normalize turns the loosely shaped bodies of the travel API into
// the records and view models the admin API serves.
package normalize

import (
	"time"

	"github.com/ecotravel-admin/internal/pkg/record"
)

var now = time.Now

// Ключи, под которыми travel API отдаёт списки, в порядке проверки
var (
	BookingListKeys   = []string{"bookings"}
	LocationListKeys  = []string{"locations", "cities", "natural_sites", "regions"}
	NearbyListKeys    = []string{"locations", "nearby_locations"}
	TransportListKeys = []string{"transports"}
	ActivityListKeys  = []string{"activities"}

	LocationObjectKeys  = []string{"city", "natural_site", "region"}
	TransportObjectKeys = []string{"transport"}
)

// ExtractList returns the objects of the first array found under keys, else
// the body itself when it is an array, else the "results" array. Non-object
// elements are skipped; an unrecognized shape yields an empty slice.
func ExtractList(body any, keys ...string) []record.Record {
	if obj, ok := record.From(body); ok {
		for _, k := range keys {
			if list, ok := obj.List(k); ok {
				return record.Objects(list)
			}
		}
	}
	if list, ok := body.([]any); ok {
		return record.Objects(list)
	}
	if obj, ok := record.From(body); ok {
		if list, ok := obj.List("results"); ok {
			return record.Objects(list)
		}
	}
	return []record.Record{}
}

// ExtractObject unwraps a single-object response: the first object found under
// keys, else the body itself. A non-object body yields an empty record.
func ExtractObject(body any, keys ...string) record.Record {
	obj, ok := record.From(body)
	if !ok {
		return record.Record{}
	}
	for _, k := range keys {
		if inner, ok := obj.Object(k); ok {
			return inner
		}
	}
	return obj
}

// ListCount возвращает count из ответа, если он положительный, иначе n.
func ListCount(body any, n int) int {
	if obj, ok := record.From(body); ok {
		if c := obj.Int("count"); c > 0 {
			return c
		}
	}
	return n
}
