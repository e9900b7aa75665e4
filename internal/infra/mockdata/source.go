package mockdata

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"net/url"
	"strings"
	"time"

	"airease-backend/internal/domain/airport"
	"airease-backend/internal/domain/booking"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/domain/insight"
	"airease-backend/internal/domain/location"
	"airease-backend/internal/pkg/ptr"
	"airease-backend/internal/usecase/queries"
)

// OfferIDPrefix marks offers generated locally.
const OfferIDPrefix = "mock-"

type carrier struct {
	name     string
	code     string
	aircraft string
	legroom  string
	extras   []string
}

var fleet = []carrier{
	{name: "Cathay Pacific", code: "CX", aircraft: "Airbus A350-900", legroom: "32 in", extras: []string{"Free Wi-Fi", "In-seat power & USB outlets", "On-demand video", "Hot meal"}},
	{name: "Singapore Airlines", code: "SQ", aircraft: "Boeing 787-10", legroom: "32 in", extras: []string{"Wi-Fi for a fee", "In-seat power outlet", "On-demand video", "Meal provided"}},
	{name: "ANA", code: "NH", aircraft: "Boeing 787-9", legroom: "34 in", extras: []string{"Free Wi-Fi", "In-seat USB outlet", "On-demand video", "Hot meal"}},
	{name: "United", code: "UA", aircraft: "Boeing 777-200", legroom: "31 in", extras: []string{"Wi-Fi for a fee", "Stream media to your device", "Snacks for purchase"}},
	{name: "Lufthansa", code: "LH", aircraft: "Airbus A340-600", legroom: "31 in", extras: []string{"In-seat power outlet", "Live TV", "Meal provided"}},
	{name: "Emirates", code: "EK", aircraft: "Airbus A380-800", legroom: "33 in", extras: []string{"Free Wi-Fi", "In-seat power & USB outlets", "On-demand video", "Hot meal"}},
	{name: "Budget Air", code: "ZB", aircraft: "Airbus A320neo", legroom: "28 in", extras: nil},
}

var hubs = []string{"HKG", "SIN", "DXB", "FRA", "ICN"}

// Source serves deterministic data for any valid route. It never fails.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

func hash(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// routeBase is the typical fare for a route, independent of date.
func routeBase(from, to string) float64 {
	return float64(180 + hash(from, to)%820)
}

func routeMinutes(from, to string) int {
	return 75 + int(hash(to, from)%690)
}

// dayFactor varies a route's fare by date within 0.78-1.32.
func dayFactor(from, to, date string) float64 {
	return 0.78 + float64(hash(from, to, date)%55)/100
}

func round(v float64) float64 {
	return math.Round(v)
}

func (s *Source) SearchFlights(_ context.Context, p flight.SearchParams) (*queries.FlightSearch, error) {
	seed := hash(p.From, p.To, p.Date)
	count := 4 + int(seed%3)
	base := routeBase(p.From, p.To) * dayFactor(p.From, p.To, p.Date) * cabinFactor(p.Cabin)
	minutes := routeMinutes(p.From, p.To)
	day, _ := flight.ParseDate(p.Date)

	offers := make([]flight.Offer, 0, count)
	for i := 0; i < count; i++ {
		c := fleet[(int(seed%uint64(len(fleet)))+i)%len(fleet)]
		stops := i % 3
		if p.Stops != nil && stops > *p.Stops {
			stops = *p.Stops
		}
		offers = append(offers, s.offer(p, c, seed, i, stops, base, minutes, day))
	}

	pi := s.insight(p.From, p.To, p.Date, p.Cabin)
	return &queries.FlightSearch{Offers: offers, Insight: &pi}, nil
}

func cabinFactor(c flight.Cabin) float64 {
	switch c {
	case flight.CabinPremium:
		return 1.6
	case flight.CabinBusiness:
		return 3.2
	case flight.CabinFirst:
		return 5.5
	default:
		return 1
	}
}

func (s *Source) offer(p flight.SearchParams, c carrier, seed uint64, i, stops int, base float64, minutes int, day time.Time) flight.Offer {
	h := hash(p.From, p.To, p.Date, fmt.Sprint(i))

	departAt := day.Add(time.Duration(6+int(h%16)) * time.Hour).Add(time.Duration(h%4*15) * time.Minute)

	var layovers []flight.Layover
	var stopCities []string
	total := minutes
	for k := 0; k < stops; k++ {
		code := hubFor(p.From, p.To, k+i)
		a, _ := airport.Lookup(code)
		wait := 55 + int((h>>uint(8*(k+1)))%180)
		layovers = append(layovers, flight.Layover{
			DurationMinutes: wait,
			AirportName:     a.Name,
			AirportCode:     a.Code,
			IsOvernight:     wait > 600,
		})
		stopCities = append(stopCities, a.City)
		total += wait + 45
	}
	arriveAt := departAt.Add(time.Duration(total) * time.Minute)

	// nonstop costs more; every step down the list gets a little cheaper
	price := base * (1 + 0.12*float64(2-stops)) * (1 + float64(h%9)/100)

	dep := endpointFor(p.From, departAt)
	arr := endpointFor(p.To, arriveAt)

	typical := int(90 + (seed % 400))
	this := typical + int(h%60) - 30
	diff := (this - typical) * 100 / typical

	return flight.Offer{
		ID:              fmt.Sprintf("%s%016x", OfferIDPrefix, h),
		FlightNumber:    fmt.Sprintf("%s %d", c.code, 100+h%900),
		Airline:         c.name,
		AirlineCode:     c.code,
		Departure:       dep,
		Arrival:         arr,
		DurationMinutes: total,
		Stops:           stops,
		StopCities:      stopCities,
		Cabin:           cabinLabel(p.Cabin),
		AircraftModel:   ptr.Of(c.aircraft),
		Price:           round(price),
		Currency:        p.Currency,
		SeatsRemaining:  ptr.Of(1 + int(h%9)),
		BookingToken:    ptr.Of(fmt.Sprintf("mock-token-%016x", h)),
		CarbonEmissions: &flight.Carbon{
			ThisFlight:        ptr.Of(this * 1000),
			TypicalForRoute:   ptr.Of(typical * 1000),
			DifferencePercent: ptr.Of(diff),
		},
		Extensions:   c.extras,
		OftenDelayed: h%11 == 0,
		IsOvernight:  arriveAt.YearDay() != departAt.YearDay(),
		Layovers:     layovers,
		Amenities:    flight.ParseAmenities(c.extras, c.legroom),
		SafetyScore:  flight.DefaultSafetyScore,
	}
}

func hubFor(from, to string, k int) string {
	for n := 0; n < len(hubs); n++ {
		code := hubs[(k+n)%len(hubs)]
		if code != from && code != to {
			return code
		}
	}
	return hubs[0]
}

func endpointFor(code string, at time.Time) flight.Endpoint {
	a, _ := airport.Lookup(code)
	return flight.Endpoint{
		City:        a.City,
		CityCode:    a.Code,
		Airport:     a.Name,
		AirportCode: a.Code,
		Time:        &at,
	}
}

func cabinLabel(c flight.Cabin) string {
	switch c {
	case flight.CabinPremium:
		return "Premium economy"
	case flight.CabinBusiness:
		return "Business"
	case flight.CabinFirst:
		return "First"
	default:
		return "Economy"
	}
}

func (s *Source) PriceInsight(_ context.Context, q queries.InsightQuery) (*insight.PriceInsight, error) {
	pi := s.insight(q.From, q.To, q.OutboundDate, q.Cabin)
	return &pi, nil
}

func (s *Source) insight(from, to, date string, cabin flight.Cabin) insight.PriceInsight {
	base := routeBase(from, to) * cabinFactor(cabin)
	lowest := round(base * dayFactor(from, to, date))
	r := &insight.PriceRange{Low: round(base * 0.9), High: round(base * 1.2)}

	day, _ := flight.ParseDate(date)
	history := make([]insight.PricePoint, 0, insight.HistoryLimit)
	for k := insight.HistoryLimit; k >= 1; k-- {
		d := day.AddDate(0, 0, -k).Format(flight.DateLayout)
		history = append(history, insight.PricePoint{
			Date:  d,
			Price: round(base * dayFactor(from, to, d)),
		})
	}

	return insight.New(&lowest, r, "", history)
}

func (s *Source) Suggest(_ context.Context, q queries.SuggestQuery) (location.Suggestions, error) {
	needle := strings.ToLower(strings.TrimSpace(q.Query))

	var items []location.Suggestion
	pos := 1
	for _, c := range airport.Cities() {
		if !cityMatches(c, needle) {
			continue
		}
		airports := make([]location.Airport, 0, len(c.Airports))
		for _, a := range c.Airports {
			airports = append(airports, location.Airport{
				Name: ptr.Of(a.Name),
				Code: ptr.Of(a.Code),
				City: ptr.Of(a.City),
			})
		}
		items = append(items, location.Suggestion{
			Position:    ptr.Of(pos),
			Name:        ptr.Of(c.Name + ", " + c.Country),
			Type:        ptr.Of(location.TypeCity),
			Description: ptr.Of("City in " + c.Country),
			ID:          ptr.Of("city:" + strings.ToLower(strings.ReplaceAll(c.Name, " ", "-"))),
			Airports:    airports,
		})
		pos++
	}
	for _, country := range airport.Countries() {
		if !strings.Contains(strings.ToLower(country), needle) {
			continue
		}
		items = append(items, location.Suggestion{
			Position:    ptr.Of(pos),
			Name:        ptr.Of(country),
			Type:        ptr.Of(location.TypeRegion),
			Description: ptr.Of("Country"),
			ID:          ptr.Of("region:" + strings.ToLower(strings.ReplaceAll(country, " ", "-"))),
		})
		pos++
	}

	return location.Finalize(q.Query, items, q.ExcludeRegions), nil
}

func cityMatches(c airport.City, needle string) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Country), needle) {
		return true
	}
	for _, a := range c.Airports {
		if strings.ToLower(a.Code) == needle || strings.Contains(strings.ToLower(a.Name), needle) {
			return true
		}
	}
	return false
}

func (s *Source) BookingOptions(_ context.Context, token, currency string) (booking.Options, error) {
	h := hash(token, currency)
	gf := "https://www.google.com/travel/flights?q=" + url.QueryEscape("booking "+token)
	return booking.Options{
		Options: []booking.Option{{
			BookWith:  "AirEase Demo",
			IsAirline: false,
			Price:     ptr.Of(float64(200 + h%800)),
			URL:       ptr.Of(gf),
		}},
		GoogleFlightsURL: ptr.Of(gf),
	}, nil
}
