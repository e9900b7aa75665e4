package queries

import (
	"context"

	"airease-backend/internal/domain/booking"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/domain/insight"
	"airease-backend/internal/domain/location"
)

// FlightSearch is what a source returns for one search.
type FlightSearch struct {
	Offers  []flight.Offer
	Insight *insight.PriceInsight
}

type InsightQuery struct {
	From         string
	To           string
	OutboundDate string
	ReturnDate   *string
	Currency     string
	Adults       int
	Cabin        flight.Cabin
}

type SuggestQuery struct {
	Query          string
	GL             string
	HL             string
	ExcludeRegions bool
}

// FlightSource is implemented by the live provider adapter and by the mock data set.
type FlightSource interface {
	SearchFlights(ctx context.Context, params flight.SearchParams) (*FlightSearch, error)
	PriceInsight(ctx context.Context, q InsightQuery) (*insight.PriceInsight, error)
	Suggest(ctx context.Context, q SuggestQuery) (location.Suggestions, error)
	BookingOptions(ctx context.Context, token, currency string) (booking.Options, error)
}

// Cache is a TTL key-value store owned by one query service.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
}
