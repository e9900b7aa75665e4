package serpapi

import "encoding/json"

// Raw response shapes. Only the fields the normalizer reads are declared.

type RawAirportTime struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

type RawSegment struct {
	DepartureAirport RawAirportTime `json:"departure_airport"`
	ArrivalAirport   RawAirportTime `json:"arrival_airport"`
	Duration         int            `json:"duration"`
	Airplane         string         `json:"airplane"`
	Airline          string         `json:"airline"`
	AirlineLogo      string         `json:"airline_logo"`
	TravelClass      string         `json:"travel_class"`
	FlightNumber     string         `json:"flight_number"`
	Legroom          string         `json:"legroom"`
	Extensions       []string       `json:"extensions"`
	Overnight        bool           `json:"overnight"`
	OftenDelayed     bool           `json:"often_delayed_by_over_30_min"`
	TicketAlsoSoldBy []string       `json:"ticket_also_sold_by"`
}

type RawLayover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight"`
}

type RawCarbon struct {
	ThisFlight        *int `json:"this_flight"`
	TypicalForRoute   *int `json:"typical_for_this_route"`
	DifferencePercent *int `json:"difference_percent"`
}

type RawItinerary struct {
	Flights         []RawSegment `json:"flights"`
	Layovers        []RawLayover `json:"layovers"`
	TotalDuration   int          `json:"total_duration"`
	CarbonEmissions *RawCarbon   `json:"carbon_emissions"`
	Price           *float64     `json:"price"`
	Type            string       `json:"type"`
	AirlineLogo     string       `json:"airline_logo"`
	Extensions      []string     `json:"extensions"`
	BookingToken    string       `json:"booking_token"`
	DepartureToken  string       `json:"departure_token"`
}

type RawPriceInsights struct {
	LowestPrice       *float64    `json:"lowest_price"`
	PriceLevel        string      `json:"price_level"`
	TypicalPriceRange []float64   `json:"typical_price_range"`
	PriceHistory      [][]float64 `json:"price_history"`
}

type RawSearchMetadata struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	GoogleFlightsURL string `json:"google_flights_url"`
}

type RawSearchResponse struct {
	SearchMetadata RawSearchMetadata `json:"search_metadata"`
	BestFlights    []RawItinerary    `json:"best_flights"`
	OtherFlights   []RawItinerary    `json:"other_flights"`
	PriceInsights  *RawPriceInsights `json:"price_insights"`
	Error          string            `json:"error"`
}

type RawSuggestionAirport struct {
	Name     *string         `json:"name"`
	ID       *string         `json:"id"`
	City     *string         `json:"city"`
	CityID   *string         `json:"city_id"`
	Distance json.RawMessage `json:"distance"`
}

type RawSuggestion struct {
	Position    *int                   `json:"position"`
	Name        *string                `json:"name"`
	Type        *string                `json:"type"`
	Description *string                `json:"description"`
	ID          *string                `json:"id"`
	Airports    []RawSuggestionAirport `json:"airports"`
}

type RawAutocompleteResponse struct {
	Suggestions []RawSuggestion `json:"suggestions"`
	Error       string          `json:"error"`
}

type RawBookingRequest struct {
	URL      string `json:"url"`
	PostData string `json:"post_data"`
}

type RawBookingLeg struct {
	BookWith       string            `json:"book_with"`
	Airline        bool              `json:"airline"`
	Price          *float64          `json:"price"`
	BookingRequest RawBookingRequest `json:"booking_request"`
	BookingPhone   string            `json:"booking_phone"`
}

func (l RawBookingLeg) empty() bool {
	return l.BookWith == "" && l.BookingRequest.URL == "" && l.BookingPhone == ""
}

type RawBookingOption struct {
	SeparateTickets bool          `json:"separate_tickets"`
	Together        RawBookingLeg `json:"together"`
	Departing       RawBookingLeg `json:"departing"`
	Returning       RawBookingLeg `json:"returning"`
}

type RawBookingResponse struct {
	SearchMetadata RawSearchMetadata  `json:"search_metadata"`
	BookingOptions []RawBookingOption `json:"booking_options"`
	Error          string             `json:"error"`
}
