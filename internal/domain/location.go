package domain

// LocationType - дискриминатор варианта локации
type LocationType string

const (
	LocationTypeCity        LocationType = "City"
	LocationTypeNaturalSite LocationType = "NaturalSite"
	LocationTypeRegion      LocationType = "Region"
)

// LocationTypes returns the closed set of location variants.
func LocationTypes() []LocationType {
	return []LocationType{LocationTypeCity, LocationTypeNaturalSite, LocationTypeRegion}
}

// IsValid checks the type against the closed set.
func (t LocationType) IsValid() bool {
	for _, lt := range LocationTypes() {
		if lt == t {
			return true
		}
	}
	return false
}

// PathSegment - сегмент пути travel API для одиночной локации (city, natural-site, region)
func (t LocationType) PathSegment() string {
	switch t {
	case LocationTypeCity:
		return "city"
	case LocationTypeNaturalSite:
		return "natural-site"
	case LocationTypeRegion:
		return "region"
	default:
		return ""
	}
}

// CollectionSegment - сегмент пути travel API для списка (cities, natural-sites, regions)
func (t LocationType) CollectionSegment() string {
	switch t {
	case LocationTypeCity:
		return "cities"
	case LocationTypeNaturalSite:
		return "natural-sites"
	case LocationTypeRegion:
		return "regions"
	default:
		return ""
	}
}

// ClimateTypes - допустимые значения climateType для регионов
var ClimateTypes = []string{"Tropical", "Temperate", "Arid", "Continental", "Polar", "Mediterranean"}

// Location - локация в именовании админки. Поля варианта заполнены только для своего типа.
type Location struct {
	ID          string       `json:"id"`
	URIID       string       `json:"uri_id"`
	Type        LocationType `json:"type"`
	Name        string       `json:"name"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Address     string       `json:"address"`
	Description string       `json:"description"`

	*CityFields
	*NaturalSiteFields
	*RegionFields
}

type CityFields struct {
	Population         int    `json:"population"`
	PostalCode         string `json:"postalCode"`
	TouristAttractions string `json:"touristAttractions"`
}

type NaturalSiteFields struct {
	ProtectedStatus   bool    `json:"protectedStatus"`
	BiodiversityIndex float64 `json:"biodiversityIndex"`
	AreaSizeHectares  float64 `json:"areaSizeHectares"`
	EntryFee          float64 `json:"entryFee"`
}

type RegionFields struct {
	ClimateType     string  `json:"climateType"`
	RegionArea      float64 `json:"regionArea"`
	MainAttractions string  `json:"mainAttractions"`
}

// LocationPayload - тело создания/обновления локации в именовании travel API
type LocationPayload struct {
	LocationURIID       string  `json:"location_id,omitempty"`
	LocationID          string  `json:"locationId,omitempty"`
	LocationName        string  `json:"locationName"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Address             string  `json:"address"`
	LocationDescription string  `json:"locationDescription"`

	Population         *int    `json:"population,omitempty"`
	PostalCode         *string `json:"postalCode,omitempty"`
	TouristAttractions *string `json:"touristAttractions,omitempty"`

	ProtectedStatus   *bool    `json:"protectedStatus,omitempty"`
	BiodiversityIndex *float64 `json:"biodiversityIndex,omitempty"`
	AreaSizeHectares  *float64 `json:"areaSizeHectares,omitempty"`
	EntryFee          *float64 `json:"entryFee,omitempty"`

	ClimateType     *string  `json:"climateType,omitempty"`
	RegionArea      *float64 `json:"regionArea,omitempty"`
	MainAttractions *string  `json:"mainAttractions,omitempty"`
}

// NearbyQuery - параметры поиска локаций в радиусе
type NearbyQuery struct {
	Center   Point
	RadiusKm float64
	Type     LocationType
}

// NearbyLocation - локация с расстоянием от точки поиска
type NearbyLocation struct {
	Location
	DistanceKm float64 `json:"distance_km"`
}
