package domain

// TransportKind - вариант транспорта
type TransportKind string

const (
	TransportKindBike            TransportKind = "bike"
	TransportKindElectricVehicle TransportKind = "electric-vehicle"
	TransportKindPublicTransport TransportKind = "public-transport"
)

// TransportKinds returns the closed set of transport variants.
func TransportKinds() []TransportKind {
	return []TransportKind{TransportKindBike, TransportKindElectricVehicle, TransportKindPublicTransport}
}

// IsValid checks the kind against the closed set.
func (k TransportKind) IsValid() bool {
	for _, tk := range TransportKinds() {
		if tk == k {
			return true
		}
	}
	return false
}

// TransportRanking - готовые выборки travel API
type TransportRanking string

const (
	TransportRankingZeroEmission TransportRanking = "zero-emission"
	TransportRankingCheapest     TransportRanking = "cheapest"
	TransportRankingFastest      TransportRanking = "fastest"
	TransportRankingEcoScore     TransportRanking = "eco-score"
)

// Path returns the travel API path of the ranking, empty for unknown rankings.
func (r TransportRanking) Path() string {
	switch r {
	case TransportRankingZeroEmission:
		return "/transport/filter/zero-emission"
	case TransportRankingCheapest:
		return "/transport/stats/cheapest"
	case TransportRankingFastest:
		return "/transport/stats/fastest"
	case TransportRankingEcoScore:
		return "/transport/stats/eco-score"
	default:
		return ""
	}
}

// Transport - транспорт в именовании админки
type Transport struct {
	ID                  string        `json:"id"`
	Kind                TransportKind `json:"kind,omitempty"`
	TransportName       string        `json:"transportName"`
	TransportType       string        `json:"transportType"`
	PricePerKm          float64       `json:"pricePerKm"`
	CarbonEmissionPerKm float64       `json:"carbonEmissionPerKm"`
	Capacity            int           `json:"capacity"`
	Availability        bool          `json:"availability"`
	OperatingHours      string        `json:"operatingHours"`
	AverageSpeed        float64       `json:"averageSpeed"`
	ContactPhone        string        `json:"contactPhone"`
	URI                 string        `json:"uri"`

	*BikeFields
	*ElectricVehicleFields
	*PublicTransportFields
}

type BikeFields struct {
	BikeModel          string  `json:"bikeModel"`
	IsElectric         bool    `json:"isElectric"`
	BatteryRange       float64 `json:"batteryRange"`
	RentalPricePerHour float64 `json:"rentalPricePerHour"`
	FrameSize          string  `json:"frameSize"`
}

type ElectricVehicleFields struct {
	VehicleModel        string  `json:"vehicleModel"`
	VehicleBatteryRange float64 `json:"vehicleBatteryRange"`
	ChargingTime        int     `json:"chargingTime"`
	SeatingCapacity     int     `json:"seatingCapacity"`
	DailyRentalPrice    float64 `json:"dailyRentalPrice"`
	HasAirConditioning  bool    `json:"hasAirConditioning"`
}

type PublicTransportFields struct {
	LineNumber            string  `json:"lineNumber"`
	RouteDescription      string  `json:"routeDescription"`
	TicketPrice           float64 `json:"ticketPrice"`
	FrequencyMinutes      int     `json:"frequencyMinutes"`
	AccessibleForDisabled bool    `json:"accessibleForDisabled"`
}

// TransportBase - общие поля тела создания транспорта в travel API
type TransportBase struct {
	TransportID         string  `json:"transportId"`
	TransportName       string  `json:"transportName"`
	TransportType       string  `json:"transportType"`
	PricePerKm          float64 `json:"pricePerKm"`
	CarbonEmissionPerKm float64 `json:"carbonEmissionPerKm"`
	Capacity            int     `json:"capacity"`
	Availability        bool    `json:"availability"`
	OperatingHours      string  `json:"operatingHours"`
	AverageSpeed        float64 `json:"averageSpeed"`
	ContactPhone        string  `json:"contactPhone"`
}

type BikePayload struct {
	TransportBase
	BikeModel          string  `json:"bikeModel"`
	IsElectric         bool    `json:"isElectric"`
	BatteryRange       float64 `json:"batteryRange"`
	RentalPricePerHour float64 `json:"rentalPricePerHour"`
	FrameSize          string  `json:"frameSize"`
}

type ElectricVehiclePayload struct {
	TransportBase
	VehicleModel        string  `json:"vehicleModel"`
	VehicleBatteryRange float64 `json:"vehicleBatteryRange"`
	ChargingTime        int     `json:"chargingTime"`
	SeatingCapacity     int     `json:"seatingCapacity"`
	DailyRentalPrice    float64 `json:"dailyRentalPrice"`
	HasAirConditioning  bool    `json:"hasAirConditioning"`
}

type PublicTransportPayload struct {
	TransportBase
	LineNumber            string  `json:"lineNumber"`
	RouteDescription      string  `json:"routeDescription"`
	TicketPrice           float64 `json:"ticketPrice"`
	FrequencyMinutes      int     `json:"frequencyMinutes"`
	AccessibleForDisabled bool    `json:"accessibleForDisabled"`
}

// TransportUpdate - тело PUT /transport/{id}; отсутствующие поля не отправляются
type TransportUpdate struct {
	TransportName  *string  `json:"transportName,omitempty"`
	Availability   *bool    `json:"availability,omitempty"`
	PricePerKm     *float64 `json:"pricePerKm,omitempty"`
	OperatingHours *string  `json:"operatingHours,omitempty"`
}
