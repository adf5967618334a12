package mapping

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// NewLocationID генерирует locationId вида loc_<unix-ms>_<9 символов>
func NewLocationID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("loc_%d_%s", now().UnixMilli(), suffix)
}

// NewLocationURIID генерирует location_id вида Location_<unix-ms>
func NewLocationURIID() string {
	return fmt.Sprintf("Location_%d", now().UnixMilli())
}

// LocationToBackend maps a location form to the create payload.
// Variant fields are set only for the form's type.
func LocationToBackend(form record.Record) domain.LocationPayload {
	locationID := form.String("id")
	if locationID == "" {
		locationID = NewLocationID()
	}
	uriID := form.String("uri_id")
	if uriID == "" {
		uriID = NewLocationURIID()
	}

	p := domain.LocationPayload{
		LocationURIID:       uriID,
		LocationID:          locationID,
		LocationName:        form.String("name"),
		Latitude:            form.Float("latitude"),
		Longitude:           form.Float("longitude"),
		Address:             form.String("address"),
		LocationDescription: form.String("description"),
	}

	switch domain.LocationType(form.String("type")) {
	case domain.LocationTypeCity:
		p.Population = ptr(form.Int("population"))
		p.PostalCode = ptr(form.String("postalCode"))
		p.TouristAttractions = ptr(form.String("touristAttractions"))
	case domain.LocationTypeNaturalSite:
		p.ProtectedStatus = ptr(form.Bool("protectedStatus"))
		p.BiodiversityIndex = ptr(form.Float("biodiversityIndex"))
		p.AreaSizeHectares = ptr(form.Float("areaSizeHectares"))
		p.EntryFee = ptr(form.Float("entryFee"))
	case domain.LocationTypeRegion:
		p.ClimateType = ptr(form.String("climateType"))
		p.RegionArea = ptr(form.Float("regionArea"))
		p.MainAttractions = ptr(form.String("mainAttractions"))
	}

	return p
}

// LocationUpdateToBackend - как LocationToBackend, но без обоих идентификаторов.
func LocationUpdateToBackend(form record.Record) domain.LocationPayload {
	p := LocationToBackend(form)
	p.LocationURIID = ""
	p.LocationID = ""
	return p
}

// LocationURIID извлекает идентификатор URI: uri_id, иначе фрагмент location
// после '#', иначе последний сегмент пути.
func LocationURIID(rec record.Record) string {
	if id := rec.String("uri_id"); id != "" {
		return id
	}
	loc := rec.String("location")
	if loc == "" {
		return ""
	}
	if i := strings.Index(loc, "#"); i >= 0 {
		rest := loc[i+1:]
		if j := strings.Index(rest, "#"); j >= 0 {
			rest = rest[:j]
		}
		return rest
	}
	return loc[strings.LastIndex(loc, "/")+1:]
}

// LocationFromBackend maps a travel API location to the admin view.
// requested is the type the caller asked for and may be empty; marker fields
// (population, protectedStatus, climateType) take precedence over it.
func LocationFromBackend(rec record.Record, requested domain.LocationType) domain.Location {
	loc := domain.Location{
		ID:          rec.String("locationId", "locationid"),
		URIID:       LocationURIID(rec),
		Type:        requested,
		Name:        rec.String("locationName", "locationname"),
		Latitude:    rec.Float("latitude"),
		Longitude:   rec.Float("longitude"),
		Address:     rec.String("address"),
		Description: rec.String("locationDescription", "locationdescription"),
	}
	if loc.Type == "" {
		loc.Type = domain.LocationTypeCity
	}

	if requested == domain.LocationTypeCity || rec.Has("population") {
		loc.CityFields = &domain.CityFields{
			Population:         rec.Int("population"),
			PostalCode:         rec.String("postalCode", "postalcode"),
			TouristAttractions: rec.String("touristAttractions", "touristattractions"),
		}
		loc.Type = domain.LocationTypeCity
	}
	if requested == domain.LocationTypeNaturalSite || rec.Has("protectedStatus") || rec.Has("protectedstatus") {
		loc.NaturalSiteFields = &domain.NaturalSiteFields{
			ProtectedStatus:   rec.Bool("protectedStatus", "protectedstatus"),
			BiodiversityIndex: rec.Float("biodiversityIndex", "biodiversityindex"),
			AreaSizeHectares:  rec.Float("areaSizeHectares", "areasizehectares"),
			EntryFee:          rec.Float("entryFee", "entryfee"),
		}
		loc.Type = domain.LocationTypeNaturalSite
	}
	if requested == domain.LocationTypeRegion || rec.Has("climateType") || rec.Has("climatetype") {
		loc.RegionFields = &domain.RegionFields{
			ClimateType:     rec.String("climateType", "climatetype"),
			RegionArea:      rec.Float("regionArea", "regionarea"),
			MainAttractions: rec.String("mainAttractions", "mainattractions"),
		}
		loc.Type = domain.LocationTypeRegion
	}

	return loc
}

// LocationsFromBackend maps every object of a list with the same requested type.
func LocationsFromBackend(recs []record.Record, requested domain.LocationType) []domain.Location {
	out := make([]domain.Location, 0, len(recs))
	for _, rec := range recs {
		out = append(out, LocationFromBackend(rec, requested))
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
