package response

import (
	"airease-backend/internal/domain/booking"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/domain/insight"
	"airease-backend/internal/domain/location"
	"airease-backend/internal/usecase/queries"
)

type SearchMeta struct {
	Total           int    `json:"total"`
	SearchID        string `json:"searchId"`
	RestrictedCount int    `json:"restrictedCount"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	DataSource      string `json:"dataSource"`
	Degraded        bool   `json:"degraded"`
}

type SearchResponse struct {
	Flights       []flight.Offer        `json:"flights"`
	Meta          SearchMeta            `json:"meta"`
	PriceInsights *insight.PriceInsight `json:"priceInsights"`
}

func FromSearchResult(r *queries.SearchResult) SearchResponse {
	flights := r.Flights
	if flights == nil {
		flights = []flight.Offer{}
	}
	return SearchResponse{
		Flights: flights,
		Meta: SearchMeta{
			Total:           r.Total,
			SearchID:        r.SearchID,
			RestrictedCount: r.RestrictedCount,
			IsAuthenticated: r.IsAuthenticated,
			DataSource:      string(r.Origin.DataSource),
			Degraded:        r.Origin.Degraded,
		},
		PriceInsights: r.PriceInsight,
	}
}

type InsightsResponse struct {
	Route      insight.Route        `json:"route"`
	Insights   insight.PriceInsight `json:"insights"`
	Currency   string               `json:"currency"`
	DataSource string               `json:"dataSource"`
	Degraded   bool                 `json:"degraded"`
}

func FromInsightResult(r *queries.InsightResult) InsightsResponse {
	return InsightsResponse{
		Route:      r.Route,
		Insights:   r.Insights,
		Currency:   r.Currency,
		DataSource: string(r.Origin.DataSource),
		Degraded:   r.Origin.Degraded,
	}
}

type CompareResponse struct {
	Route          insight.CompareRoute     `json:"route"`
	Currency       string                   `json:"currency"`
	DateComparison []insight.DateComparison `json:"dateComparison"`
	Recommendation *insight.Recommendation  `json:"recommendation"`
	DataSource     string                   `json:"dataSource"`
	Degraded       bool                     `json:"degraded"`
}

func FromCompareResult(r *queries.CompareResult) CompareResponse {
	return CompareResponse{
		Route:          r.Route,
		Currency:       r.Currency,
		DateComparison: r.DateComparison,
		Recommendation: r.Recommendation,
		DataSource:     string(r.Origin.DataSource),
		Degraded:       r.Origin.Degraded,
	}
}

type SuggestionsResponse struct {
	location.Suggestions
	DataSource string `json:"dataSource"`
	Degraded   bool   `json:"degraded"`
}

func FromSuggestResult(r *queries.SuggestResult) SuggestionsResponse {
	res := SuggestionsResponse{
		Suggestions: r.Suggestions,
		DataSource:  string(r.Origin.DataSource),
		Degraded:    r.Origin.Degraded,
	}
	if res.Suggestions.Suggestions == nil {
		res.Suggestions.Suggestions = []location.Suggestion{}
	}
	return res
}

type BookingResponse struct {
	booking.Options
	Preferred  *booking.Option `json:"preferred"`
	DataSource string          `json:"dataSource"`
	Degraded   bool            `json:"degraded"`
}

func FromBookingResult(r *queries.BookingResult) BookingResponse {
	res := BookingResponse{
		Options:    r.Options,
		DataSource: string(r.Origin.DataSource),
		Degraded:   r.Origin.Degraded,
	}
	if p, ok := r.Options.Preferred(); ok {
		res.Preferred = &p
	}
	return res
}

type PriceHistoryResponse struct {
	insight.History
	Currency   string `json:"currency"`
	DataSource string `json:"dataSource"`
	Degraded   bool   `json:"degraded"`
}

func FromPriceHistoryResult(r *queries.PriceHistoryResult) PriceHistoryResponse {
	return PriceHistoryResponse{
		History:    r.History,
		Currency:   r.Currency,
		DataSource: string(r.Origin.DataSource),
		Degraded:   r.Origin.Degraded,
	}
}
