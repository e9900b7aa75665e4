package serpapi

import (
	"context"
	"errors"

	"airease-backend/internal/domain/booking"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/domain/insight"
	"airease-backend/internal/domain/location"
	"airease-backend/internal/usecase/queries"
)

var errNoPriceInsights = errors.New("response has no price_insights block")

// Source adapts the client to the coordinator's FlightSource port.
type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) SearchFlights(ctx context.Context, p flight.SearchParams) (*queries.FlightSearch, error) {
	raw, err := s.client.Search(ctx, FlightQuery{
		DepartureID:  p.From,
		ArrivalID:    p.To,
		OutboundDate: p.Date,
		ReturnDate:   p.ReturnDate,
		Adults:       p.Adults,
		Currency:     p.Currency,
		Stops:        p.Stops,
		TravelClass:  p.Cabin.TravelClass(),
	})
	if err != nil {
		return nil, err
	}
	return &queries.FlightSearch{
		Offers:  NormalizeFlights(raw, p.Currency),
		Insight: NormalizeInsight(raw.PriceInsights),
	}, nil
}

func (s *Source) PriceInsight(ctx context.Context, q queries.InsightQuery) (*insight.PriceInsight, error) {
	raw, err := s.client.PriceInsights(ctx, FlightQuery{
		DepartureID:  q.From,
		ArrivalID:    q.To,
		OutboundDate: q.OutboundDate,
		ReturnDate:   q.ReturnDate,
		Adults:       q.Adults,
		Currency:     q.Currency,
		TravelClass:  q.Cabin.TravelClass(),
	})
	if err != nil {
		return nil, err
	}
	pi := NormalizeInsight(raw.PriceInsights)
	if pi == nil {
		return nil, &Error{Kind: KindMalformed, Err: errNoPriceInsights}
	}
	return pi, nil
}

func (s *Source) Suggest(ctx context.Context, q queries.SuggestQuery) (location.Suggestions, error) {
	raw, err := s.client.Autocomplete(ctx, AutocompleteQuery{
		Q:              q.Query,
		GL:             q.GL,
		HL:             q.HL,
		ExcludeRegions: q.ExcludeRegions,
	})
	if err != nil {
		return location.Suggestions{}, err
	}
	return NormalizeSuggestions(q.Query, raw, q.ExcludeRegions), nil
}

func (s *Source) BookingOptions(ctx context.Context, token, currency string) (booking.Options, error) {
	raw, err := s.client.BookingOptions(ctx, token, currency)
	if err != nil {
		return booking.Options{}, err
	}
	return NormalizeBookingOptions(raw), nil
}
