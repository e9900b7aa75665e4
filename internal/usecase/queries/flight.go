package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"airease-backend/internal/domain/airport"
	"airease-backend/internal/domain/booking"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/domain/insight"
	"airease-backend/internal/domain/location"
	"airease-backend/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	ErrOfferNotFound      = errs.Mark(errs.New("flight offer not found or expired"), errs.ErrNotFound)
	ErrHistoryUnavailable = errs.Mark(errs.New("price history unavailable for this offer"), errs.ErrNotFound)
	ErrNoBookingOptions   = errs.Mark(booking.ErrNoOptions, errs.ErrNotFound)
	ErrNoBookingRedirect  = errs.Mark(booking.ErrNoRedirect, errs.ErrNotFound)
)

// Strategy is fixed at construction; there is no runtime switch.
type Strategy string

const (
	StrategyProvider Strategy = "provider"
	StrategyMock     Strategy = "mock"
)

type DataSource string

const (
	DataSourceProvider DataSource = "provider"
	DataSourceMock     DataSource = "mock"
)

// Origin tells callers where data came from. Degraded means the provider was tried and failed.
type Origin struct {
	DataSource DataSource
	Degraded   bool
}

func (o Origin) merge(other Origin) Origin {
	if other.DataSource == DataSourceMock {
		o.DataSource = DataSourceMock
	}
	o.Degraded = o.Degraded || other.Degraded
	return o
}

type SearchResult struct {
	Flights         []flight.Offer
	Total           int
	RestrictedCount int
	SearchID        string
	IsAuthenticated bool
	PriceInsight    *insight.PriceInsight
	Origin          Origin
}

type InsightParams struct {
	From         string
	To           string
	OutboundDate string
	ReturnDate   string
	Currency     string
	Adults       *int
	TravelClass  string
}

type InsightResult struct {
	Route    insight.Route
	Insights insight.PriceInsight
	Currency string
	Origin   Origin
}

type CompareParams struct {
	From     string
	To       string
	Dates    []string
	Currency string
}

type CompareResult struct {
	Route          insight.CompareRoute
	Currency       string
	DateComparison []insight.DateComparison
	Recommendation *insight.Recommendation
	Origin         Origin
}

type SuggestResult struct {
	Suggestions location.Suggestions
	Origin      Origin
}

type BookingResult struct {
	Options booking.Options
	Origin  Origin
}

type BookingRedirectParams struct {
	Token      string
	Currency   string
	Preference booking.Preference
}

type RedirectResult struct {
	Target           booking.Target
	GoogleFlightsURL *string
	Origin           Origin
}

type PriceHistoryResult struct {
	History  insight.History
	Currency string
	Origin   Origin
}

// DirectoryQuery searches the local airport directory. Zero Limit means the default.
type DirectoryQuery struct {
	Query string
	Limit int
}

type FlightQueries interface {
	Search(ctx context.Context, in flight.SearchInput, authenticated bool) (*SearchResult, error)
	Insights(ctx context.Context, p InsightParams) (*InsightResult, error)
	CompareDates(ctx context.Context, p CompareParams) (*CompareResult, error)
	Suggest(ctx context.Context, q SuggestQuery) (*SuggestResult, error)
	FlightDetail(ctx context.Context, id string) (*flight.Offer, error)
	PriceHistory(ctx context.Context, id string) (*PriceHistoryResult, error)
	BookingOptions(ctx context.Context, token, currency string) (*BookingResult, error)
	BookingRedirect(ctx context.Context, p BookingRedirectParams) (*RedirectResult, error)
	SearchAirports(q DirectoryQuery) ([]airport.Airport, error)
	SearchCities(q DirectoryQuery) ([]airport.City, error)
}

type flightQueriesImpl struct {
	strategy    Strategy
	provider    FlightSource
	mock        FlightSource
	searchCache Cache[*FlightSearch]
	offerCache  Cache[flight.Offer]
	group       singleflight.Group
	logger      *slog.Logger
}

func NewFlightQueries(
	strategy Strategy,
	provider FlightSource,
	mock FlightSource,
	searchCache Cache[*FlightSearch],
	offerCache Cache[flight.Offer],
	logger *slog.Logger,
) FlightQueries {
	if provider == nil {
		strategy = StrategyMock
	}
	return &flightQueriesImpl{
		strategy:    strategy,
		provider:    provider,
		mock:        mock,
		searchCache: searchCache,
		offerCache:  offerCache,
		logger:      logger,
	}
}

// kindedError is satisfied by source errors that classify themselves.
type kindedError interface {
	FailureKind() string
}

func failureKind(err error) string {
	var k kindedError
	if errors.As(err, &k) {
		return k.FailureKind()
	}
	return "unknown"
}

func invalidInput(err error) error {
	return errs.Mark(err, errs.ErrInvalidInput)
}

// withFallback tries the provider under StrategyProvider and serves the mock source on any failure.
func withFallback[T any](ctx context.Context, q *flightQueriesImpl, op string, call func(FlightSource) (T, error)) (T, Origin, error) {
	degraded := false
	if q.strategy == StrategyProvider {
		v, err := call(q.provider)
		if err == nil {
			return v, Origin{DataSource: DataSourceProvider}, nil
		}
		degraded = true
		q.logger.WarnContext(ctx, "provider call failed, serving mock data",
			slog.String("operation", op),
			slog.String("kind", failureKind(err)),
			slog.String("error", err.Error()),
		)
	}

	v, err := call(q.mock)
	if err != nil {
		var zero T
		return zero, Origin{}, errs.Wrapf(err, "mock %s", op)
	}
	return v, Origin{DataSource: DataSourceMock, Degraded: degraded}, nil
}

func (q *flightQueriesImpl) Search(ctx context.Context, in flight.SearchInput, authenticated bool) (*SearchResult, error) {
	params, err := flight.NewSearchParams(in)
	if err != nil {
		return nil, invalidInput(err)
	}

	found, origin, err := withFallback(ctx, q, "search", func(src FlightSource) (*FlightSearch, error) {
		if src == q.provider {
			return q.cachedProviderSearch(ctx, params)
		}
		return src.SearchFlights(ctx, params)
	})
	if err != nil {
		return nil, err
	}

	offers := make([]flight.Offer, len(found.Offers))
	copy(offers, found.Offers)
	flight.Sort(offers, params.SortBy)
	for _, o := range offers {
		q.offerCache.Set(o.ID, o)
	}

	total := len(offers)
	restricted := 0
	if !authenticated && total > flight.AnonymousResultLimit {
		restricted = total - flight.AnonymousResultLimit
		offers = offers[:flight.AnonymousResultLimit]
	}

	return &SearchResult{
		Flights:         offers,
		Total:           total,
		RestrictedCount: restricted,
		SearchID:        ulid.Make().String(),
		IsAuthenticated: authenticated,
		PriceInsight:    found.Insight,
		Origin:          origin,
	}, nil
}

// cachedProviderSearch serves repeated queries from cache and coalesces concurrent identical misses.
func (q *flightQueriesImpl) cachedProviderSearch(ctx context.Context, params flight.SearchParams) (*FlightSearch, error) {
	key := searchKey(params)
	if cached, ok := q.searchCache.Get(key); ok {
		return cached, nil
	}

	v, err, _ := q.group.Do(key, func() (any, error) {
		res, err := q.provider.SearchFlights(ctx, params)
		if err != nil {
			return nil, err
		}
		q.searchCache.Set(key, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*FlightSearch), nil
}

func searchKey(p flight.SearchParams) string {
	ret := ""
	if p.ReturnDate != nil {
		ret = *p.ReturnDate
	}
	stops := "any"
	if p.Stops != nil {
		stops = fmt.Sprint(*p.Stops)
	}
	return strings.Join([]string{p.From, p.To, p.Date, ret, fmt.Sprint(p.Adults), p.Currency, stops, string(p.Cabin)}, "|")
}

func (q *flightQueriesImpl) Insights(ctx context.Context, p InsightParams) (*InsightResult, error) {
	iq, err := newInsightQuery(p.From, p.To, p.OutboundDate, p.ReturnDate, p.Currency, p.Adults, p.TravelClass)
	if err != nil {
		return nil, err
	}

	pi, origin, err := withFallback(ctx, q, "price_insights", func(src FlightSource) (*insight.PriceInsight, error) {
		return src.PriceInsight(ctx, iq)
	})
	if err != nil {
		return nil, err
	}

	return &InsightResult{
		Route: insight.Route{
			Departure:    iq.From,
			Arrival:      iq.To,
			OutboundDate: iq.OutboundDate,
			ReturnDate:   iq.ReturnDate,
		},
		Insights: *pi,
		Currency: iq.Currency,
		Origin:   origin,
	}, nil
}

func newInsightQuery(from, to, outbound, ret, currency string, requestedAdults *int, travelClass string) (InsightQuery, error) {
	fromCode, err := airport.Resolve(from)
	if err != nil {
		return InsightQuery{}, invalidInput(err)
	}
	toCode, err := airport.Resolve(to)
	if err != nil {
		return InsightQuery{}, invalidInput(err)
	}
	if fromCode == toCode {
		return InsightQuery{}, invalidInput(flight.ErrSameRoute)
	}

	out, err := flight.ParseDate(outbound)
	if err != nil {
		return InsightQuery{}, invalidInput(err)
	}
	var returnDate *string
	if ret != "" {
		rt, err := flight.ParseDate(ret)
		if err != nil {
			return InsightQuery{}, invalidInput(err)
		}
		if rt.Before(out) {
			return InsightQuery{}, invalidInput(flight.ErrReturnBeforeOut)
		}
		returnDate = &ret
	}

	adults, err := flight.ResolveAdults(requestedAdults)
	if err != nil {
		return InsightQuery{}, invalidInput(err)
	}

	cabin, err := flight.ParseCabin(travelClass)
	if err != nil {
		return InsightQuery{}, invalidInput(err)
	}

	return InsightQuery{
		From:         fromCode,
		To:           toCode,
		OutboundDate: outbound,
		ReturnDate:   returnDate,
		Currency:     flight.NormalizeCurrency(currency),
		Adults:       adults,
		Cabin:        cabin,
	}, nil
}

func (q *flightQueriesImpl) CompareDates(ctx context.Context, p CompareParams) (*CompareResult, error) {
	if err := insight.ValidateCompareCount(len(p.Dates)); err != nil {
		return nil, invalidInput(err)
	}

	queries := make([]InsightQuery, len(p.Dates))
	for i, d := range p.Dates {
		iq, err := newInsightQuery(p.From, p.To, strings.TrimSpace(d), "", p.Currency, nil, "")
		if err != nil {
			return nil, err
		}
		queries[i] = iq
	}

	entries := make([]insight.DateComparison, len(queries))
	origins := make([]Origin, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, iq := range queries {
		g.Go(func() error {
			pi, origin, err := withFallback(gctx, q, "compare_dates", func(src FlightSource) (*insight.PriceInsight, error) {
				return src.PriceInsight(gctx, iq)
			})
			if err != nil {
				return err
			}
			entries[i] = insight.DateComparison{
				Date:              iq.OutboundDate,
				LowestPrice:       pi.LowestPrice,
				PriceLevel:        pi.PriceLevel,
				TypicalPriceRange: pi.TypicalPriceRange,
			}
			origins[i] = origin
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	origin := Origin{DataSource: DataSourceProvider}
	for _, o := range origins {
		origin = origin.merge(o)
	}

	return &CompareResult{
		Route:          insight.CompareRoute{Departure: queries[0].From, Arrival: queries[0].To},
		Currency:       queries[0].Currency,
		DateComparison: entries,
		Recommendation: insight.Recommend(entries),
		Origin:         origin,
	}, nil
}

func (q *flightQueriesImpl) Suggest(ctx context.Context, sq SuggestQuery) (*SuggestResult, error) {
	query, err := location.NormalizeQuery(sq.Query)
	if err != nil {
		return nil, invalidInput(err)
	}
	sq.Query = query

	s, origin, err := withFallback(ctx, q, "autocomplete", func(src FlightSource) (location.Suggestions, error) {
		return src.Suggest(ctx, sq)
	})
	if err != nil {
		return nil, err
	}
	return &SuggestResult{Suggestions: s, Origin: origin}, nil
}

func (q *flightQueriesImpl) FlightDetail(_ context.Context, id string) (*flight.Offer, error) {
	offer, ok := q.offerCache.Get(id)
	if !ok {
		return nil, ErrOfferNotFound
	}
	return &offer, nil
}

func (q *flightQueriesImpl) BookingOptions(ctx context.Context, token, currency string) (*BookingResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, invalidInput(booking.ErrEmptyToken)
	}

	opts, origin, err := withFallback(ctx, q, "booking_options", func(src FlightSource) (booking.Options, error) {
		return src.BookingOptions(ctx, token, flight.NormalizeCurrency(currency))
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{Options: opts, Origin: origin}, nil
}

// PriceHistory reads the route insight for a cached offer's departure day.
func (q *flightQueriesImpl) PriceHistory(ctx context.Context, id string) (*PriceHistoryResult, error) {
	offer, ok := q.offerCache.Get(id)
	if !ok {
		return nil, ErrOfferNotFound
	}
	if offer.Departure.Time == nil || offer.Departure.AirportCode == "" || offer.Arrival.AirportCode == "" {
		return nil, ErrHistoryUnavailable
	}

	cabin, err := flight.ParseCabin(offer.Cabin)
	if err != nil {
		cabin = flight.CabinEconomy
	}
	iq := InsightQuery{
		From:         offer.Departure.AirportCode,
		To:           offer.Arrival.AirportCode,
		OutboundDate: offer.Departure.Time.Format(flight.DateLayout),
		Currency:     flight.NormalizeCurrency(offer.Currency),
		Adults:       flight.MinAdults,
		Cabin:        cabin,
	}

	pi, origin, err := withFallback(ctx, q, "price_history", func(src FlightSource) (*insight.PriceInsight, error) {
		return src.PriceInsight(ctx, iq)
	})
	if err != nil {
		return nil, err
	}
	return &PriceHistoryResult{
		History:  insight.NewHistory(offer.ID, offer.Price, *pi),
		Currency: iq.Currency,
		Origin:   origin,
	}, nil
}

// BookingRedirect resolves a token and picks the option and leg the browser should open.
func (q *flightQueriesImpl) BookingRedirect(ctx context.Context, p BookingRedirectParams) (*RedirectResult, error) {
	res, err := q.BookingOptions(ctx, p.Token, p.Currency)
	if err != nil {
		return nil, err
	}

	opt, ok := res.Options.Select(p.Preference)
	if !ok {
		return nil, ErrNoBookingOptions
	}
	target, err := opt.Target(p.Preference)
	if err != nil {
		return nil, ErrNoBookingRedirect
	}
	return &RedirectResult{
		Target:           target,
		GoogleFlightsURL: res.Options.GoogleFlightsURL,
		Origin:           res.Origin,
	}, nil
}

func (q *flightQueriesImpl) SearchAirports(dq DirectoryQuery) ([]airport.Airport, error) {
	out, err := airport.SearchAirports(dq.Query, dq.Limit)
	if err != nil {
		return nil, invalidInput(err)
	}
	return out, nil
}

func (q *flightQueriesImpl) SearchCities(dq DirectoryQuery) ([]airport.City, error) {
	out, err := airport.SearchCities(dq.Query, dq.Limit)
	if err != nil {
		return nil, invalidInput(err)
	}
	return out, nil
}
