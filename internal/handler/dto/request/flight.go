package request

import (
	"airease-backend/internal/domain/booking"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/usecase/queries"
)

type SearchFlightsQuery struct {
	From       string `form:"from" binding:"required"`
	To         string `form:"to" binding:"required"`
	Date       string `form:"date" binding:"required"`
	ReturnDate string `form:"returnDate"`
	Adults     *int   `form:"adults"`
	Currency   string `form:"currency"`
	Stops      *int   `form:"stops"`
	Cabin      string `form:"cabin"`
	SortBy     string `form:"sortBy"`
}

func (q *SearchFlightsQuery) ToInput() flight.SearchInput {
	return flight.SearchInput{
		From:       q.From,
		To:         q.To,
		Date:       q.Date,
		ReturnDate: q.ReturnDate,
		Adults:     q.Adults,
		Currency:   q.Currency,
		Stops:      q.Stops,
		Cabin:      q.Cabin,
		SortBy:     q.SortBy,
	}
}

type AutocompleteQuery struct {
	Q              string `form:"q" binding:"required"`
	GL             string `form:"gl"`
	HL             string `form:"hl"`
	ExcludeRegions bool   `form:"excludeRegions"`
}

func (q *AutocompleteQuery) ToSuggestQuery() queries.SuggestQuery {
	return queries.SuggestQuery{
		Query:          q.Q,
		GL:             q.GL,
		HL:             q.HL,
		ExcludeRegions: q.ExcludeRegions,
	}
}

type PriceInsightsQuery struct {
	From         string `form:"from" binding:"required"`
	To           string `form:"to" binding:"required"`
	OutboundDate string `form:"outboundDate" binding:"required"`
	ReturnDate   string `form:"returnDate"`
	Currency     string `form:"currency"`
	Adults       *int   `form:"adults"`
	TravelClass  string `form:"travelClass"`
}

func (q *PriceInsightsQuery) ToParams() queries.InsightParams {
	return queries.InsightParams{
		From:         q.From,
		To:           q.To,
		OutboundDate: q.OutboundDate,
		ReturnDate:   q.ReturnDate,
		Currency:     q.Currency,
		Adults:       q.Adults,
		TravelClass:  q.TravelClass,
	}
}

// CompareDatesQuery takes dates as one comma-separated value.
type CompareDatesQuery struct {
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
	Dates    string `form:"dates" binding:"required"`
	Currency string `form:"currency"`
}

type BookingOptionsQuery struct {
	Token    string `form:"token" binding:"required"`
	Currency string `form:"currency"`
}

type BookingRedirectQuery struct {
	Token           string `form:"token" binding:"required"`
	Currency        string `form:"currency"`
	AirlineName     string `form:"airlineName"`
	PreferExpedia   bool   `form:"preferExpedia"`
	PreferDeparting bool   `form:"preferDeparting"`
	PreferReturning bool   `form:"preferReturning"`
}

func (q BookingRedirectQuery) ToParams() queries.BookingRedirectParams {
	return queries.BookingRedirectParams{
		Token:    q.Token,
		Currency: q.Currency,
		Preference: booking.Preference{
			AirlineName:     q.AirlineName,
			PreferExpedia:   q.PreferExpedia,
			PreferDeparting: q.PreferDeparting,
			PreferReturning: q.PreferReturning,
		},
	}
}

// DirectorySearchQuery searches the local airport directory.
type DirectorySearchQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit"`
}

func (q DirectorySearchQuery) ToDirectoryQuery() queries.DirectoryQuery {
	return queries.DirectoryQuery{Query: q.Q, Limit: q.Limit}
}
