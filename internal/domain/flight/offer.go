package flight

import "time"

// DefaultSafetyScore is reported for every offer until a real safety source exists.
const DefaultSafetyScore = 8.0

// Offers serialize every key; absent optional values are pointer-nil and render as null.

type Endpoint struct {
	City        string     `json:"city"`
	CityCode    string     `json:"cityCode"`
	Airport     string     `json:"airport"`
	AirportCode string     `json:"airportCode"`
	Time        *time.Time `json:"time"`
}

type Layover struct {
	DurationMinutes int    `json:"durationMinutes"`
	AirportName     string `json:"airportName"`
	AirportCode     string `json:"airportCode"`
	IsOvernight     bool   `json:"isOvernight"`
}

type Carbon struct {
	ThisFlight        *int `json:"thisFlight"`
	TypicalForRoute   *int `json:"typicalForRoute"`
	DifferencePercent *int `json:"differencePercent"`
}

type Amenities struct {
	HasWifi           bool    `json:"hasWifi"`
	WifiFree          bool    `json:"wifiFree"`
	HasPower          bool    `json:"hasPower"`
	HasIFE            bool    `json:"hasIFE"`
	IFEType           *string `json:"ifeType"`
	MealIncluded      bool    `json:"mealIncluded"`
	MealType          *string `json:"mealType"`
	Legroom           *string `json:"legroom"`
	SeatPitchInches   *int    `json:"seatPitchInches"`
	SeatPitchCategory *string `json:"seatPitchCategory"`
}

type Offer struct {
	ID              string    `json:"id"`
	FlightNumber    string    `json:"flightNumber"`
	Airline         string    `json:"airline"`
	AirlineCode     string    `json:"airlineCode"`
	AirlineLogo     *string   `json:"airlineLogo"`
	Departure       Endpoint  `json:"departure"`
	Arrival         Endpoint  `json:"arrival"`
	DurationMinutes int       `json:"durationMinutes"`
	Stops           int       `json:"stops"`
	StopCities      []string  `json:"stopCities"`
	Cabin           string    `json:"cabin"`
	AircraftModel   *string   `json:"aircraftModel"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	SeatsRemaining  *int      `json:"seatsRemaining"`
	BookingToken    *string   `json:"bookingToken"`
	CarbonEmissions *Carbon   `json:"carbonEmissions"`
	Extensions      []string  `json:"flightExtensions"`
	OftenDelayed    bool      `json:"oftenDelayed"`
	IsOvernight     bool      `json:"isOvernight"`
	Layovers        []Layover `json:"layoverDetails"`
	Amenities       Amenities `json:"facilities"`
	SafetyScore     float64   `json:"safetyScore"`
}
