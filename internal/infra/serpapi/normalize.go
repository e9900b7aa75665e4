package serpapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"airease-backend/internal/domain/airport"
	"airease-backend/internal/domain/booking"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/domain/insight"
	"airease-backend/internal/domain/location"
	"airease-backend/internal/pkg/ptr"

	"github.com/oklog/ulid/v2"
)

const providerTimeLayout = "2006-01-02 15:04"

// OfferIDPrefix marks offers that came from the live provider.
const OfferIDPrefix = "serp-"

// NormalizeFlights maps best_flights followed by other_flights. Itineraries without segments are skipped.
func NormalizeFlights(raw *RawSearchResponse, currency string) []flight.Offer {
	if raw == nil {
		return []flight.Offer{}
	}

	all := make([]RawItinerary, 0, len(raw.BestFlights)+len(raw.OtherFlights))
	all = append(all, raw.BestFlights...)
	all = append(all, raw.OtherFlights...)

	offers := make([]flight.Offer, 0, len(all))
	for _, it := range all {
		if len(it.Flights) == 0 {
			continue
		}
		offers = append(offers, normalizeItinerary(it, currency))
	}
	return offers
}

func normalizeItinerary(it RawItinerary, currency string) flight.Offer {
	first := it.Flights[0]
	last := it.Flights[len(it.Flights)-1]

	offer := flight.Offer{
		ID:              OfferIDPrefix + strings.ToLower(ulid.Make().String()),
		FlightNumber:    first.FlightNumber,
		Airline:         first.Airline,
		AirlineCode:     flight.AirlineCode(first.FlightNumber),
		AirlineLogo:     ptr.NonEmpty(first.AirlineLogo),
		Departure:       endpoint(first.DepartureAirport),
		Arrival:         endpoint(last.ArrivalAirport),
		DurationMinutes: it.TotalDuration,
		Stops:           len(it.Layovers),
		Cabin:           first.TravelClass,
		AircraftModel:   ptr.NonEmpty(first.Airplane),
		Currency:        flight.NormalizeCurrency(currency),
		BookingToken:    ptr.NonEmpty(it.BookingToken),
		Extensions:      it.Extensions,
		OftenDelayed:    first.OftenDelayed,
		IsOvernight:     first.Overnight,
		Amenities:       flight.ParseAmenities(first.Extensions, first.Legroom),
		SafetyScore:     flight.DefaultSafetyScore,
	}
	if offer.AirlineLogo == nil {
		offer.AirlineLogo = ptr.NonEmpty(it.AirlineLogo)
	}
	if it.Price != nil {
		offer.Price = *it.Price
	}
	if it.CarbonEmissions != nil {
		offer.CarbonEmissions = &flight.Carbon{
			ThisFlight:        it.CarbonEmissions.ThisFlight,
			TypicalForRoute:   it.CarbonEmissions.TypicalForRoute,
			DifferencePercent: it.CarbonEmissions.DifferencePercent,
		}
	}
	if len(it.Layovers) > 0 {
		offer.StopCities = make([]string, 0, len(it.Layovers))
		offer.Layovers = make([]flight.Layover, 0, len(it.Layovers))
		for _, l := range it.Layovers {
			offer.StopCities = append(offer.StopCities, l.Name)
			offer.Layovers = append(offer.Layovers, flight.Layover{
				DurationMinutes: l.Duration,
				AirportName:     l.Name,
				AirportCode:     l.ID,
				IsOvernight:     l.Overnight,
			})
		}
	}
	return offer
}

func endpoint(a RawAirportTime) flight.Endpoint {
	ep := flight.Endpoint{
		City:        cityName(a),
		CityCode:    a.ID,
		Airport:     a.Name,
		AirportCode: a.ID,
	}
	if t, err := time.Parse(providerTimeLayout, a.Time); err == nil {
		ep.Time = &t
	}
	return ep
}

func cityName(a RawAirportTime) string {
	if known, ok := airport.Lookup(a.ID); ok {
		return known.City
	}
	if name, _, found := strings.Cut(a.Name, " Airport"); found && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// NormalizeInsight returns nil when the provider sent no price_insights block.
func NormalizeInsight(raw *RawPriceInsights) *insight.PriceInsight {
	if raw == nil {
		return nil
	}

	var r *insight.PriceRange
	if len(raw.TypicalPriceRange) == 2 {
		r = &insight.PriceRange{Low: raw.TypicalPriceRange[0], High: raw.TypicalPriceRange[1]}
	}

	history := make([]insight.PricePoint, 0, len(raw.PriceHistory))
	for _, p := range raw.PriceHistory {
		if len(p) < 2 {
			continue
		}
		history = append(history, insight.PricePoint{
			Date:  time.Unix(int64(p[0]), 0).UTC().Format(flight.DateLayout),
			Price: p[1],
		})
	}

	pi := insight.New(raw.LowestPrice, r, raw.PriceLevel, history)
	return &pi
}

func NormalizeSuggestions(query string, raw *RawAutocompleteResponse, excludeRegions bool) location.Suggestions {
	var items []location.Suggestion
	if raw != nil {
		items = make([]location.Suggestion, 0, len(raw.Suggestions))
		for _, s := range raw.Suggestions {
			item := location.Suggestion{
				Position:    s.Position,
				Name:        s.Name,
				Type:        s.Type,
				Description: s.Description,
				ID:          s.ID,
				Airports:    make([]location.Airport, 0, len(s.Airports)),
			}
			for _, a := range s.Airports {
				item.Airports = append(item.Airports, location.Airport{
					Name:     a.Name,
					Code:     a.ID,
					City:     a.City,
					CityID:   a.CityID,
					Distance: distance(a.Distance),
				})
			}
			items = append(items, item)
		}
	}
	return location.Finalize(query, items, excludeRegions)
}

// distance arrives either as a display string or as a bare number.
func distance(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		v := strconv.FormatFloat(f, 'f', -1, 64)
		return &v
	}
	return nil
}

func NormalizeBookingOptions(raw *RawBookingResponse) booking.Options {
	out := booking.Options{Options: []booking.Option{}}
	if raw == nil {
		return out
	}
	out.GoogleFlightsURL = ptr.NonEmpty(raw.SearchMetadata.GoogleFlightsURL)

	for _, o := range raw.BookingOptions {
		leg := o.Together
		if o.SeparateTickets {
			leg = o.Departing
		}
		if leg.empty() {
			continue
		}
		opt := booking.Option{
			BookWith:        leg.BookWith,
			IsAirline:       leg.Airline,
			Price:           leg.Price,
			URL:             ptr.NonEmpty(leg.BookingRequest.URL),
			PostData:        ptr.NonEmpty(leg.BookingRequest.PostData),
			Phone:           ptr.NonEmpty(leg.BookingPhone),
			SeparateTickets: o.SeparateTickets,
		}
		if o.SeparateTickets {
			opt.Departing = bookingLeg(o.Departing)
			if !o.Returning.empty() {
				opt.Returning = bookingLeg(o.Returning)
			}
		}
		out.Options = append(out.Options, opt)
	}
	return out
}

func bookingLeg(l RawBookingLeg) *booking.Leg {
	return &booking.Leg{
		BookWith:  l.BookWith,
		IsAirline: l.Airline,
		Price:     l.Price,
		URL:       ptr.NonEmpty(l.BookingRequest.URL),
		PostData:  ptr.NonEmpty(l.BookingRequest.PostData),
		Phone:     ptr.NonEmpty(l.BookingPhone),
	}
}
