//go:build unit

package flight_test

import (
	"testing"
	"time"

	"airease-backend/internal/domain/airport"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() flight.SearchInput {
	return flight.SearchInput{From: "HND", To: "LAX", Date: "2025-06-01"}
}

func TestNewSearchParams(t *testing.T) {
	t.Run("基本成功ケース: defaults are applied", func(t *testing.T) {
		p, err := flight.NewSearchParams(validInput())

		require.NoError(t, err)
		assert.Equal(t, "HND", p.From)
		assert.Equal(t, "LAX", p.To)
		assert.Equal(t, 1, p.Adults)
		assert.Equal(t, "USD", p.Currency)
		assert.Equal(t, flight.CabinEconomy, p.Cabin)
		assert.Equal(t, flight.SortByScore, p.SortBy)
		assert.Nil(t, p.ReturnDate)
	})

	t.Run("city names and lower case codes resolve", func(t *testing.T) {
		in := validInput()
		in.From = "tokyo"
		in.To = "lax"

		p, err := flight.NewSearchParams(in)
		require.NoError(t, err)
		assert.Equal(t, "NRT", p.From)
		assert.Equal(t, "LAX", p.To)
	})

	cases := []struct {
		name   string
		mutate func(*flight.SearchInput)
		err    error
	}{
		{name: "同一路線NG", mutate: func(in *flight.SearchInput) { in.To = "hnd" }, err: flight.ErrSameRoute},
		{name: "unknown airport", mutate: func(in *flight.SearchInput) { in.To = "ZZZ" }, err: airport.ErrUnknownAirport},
		{name: "loose date format", mutate: func(in *flight.SearchInput) { in.Date = "2025-6-1" }, err: flight.ErrInvalidDate},
		{name: "return before outbound", mutate: func(in *flight.SearchInput) { in.ReturnDate = "2025-05-31" }, err: flight.ErrReturnBeforeOut},
		{name: "adults above nine", mutate: func(in *flight.SearchInput) { in.Adults = ptr.Of(10) }, err: flight.ErrInvalidAdults},
		{name: "explicit zero adults", mutate: func(in *flight.SearchInput) { in.Adults = ptr.Of(0) }, err: flight.ErrInvalidAdults},
		{name: "negative adults", mutate: func(in *flight.SearchInput) { in.Adults = ptr.Of(-1) }, err: flight.ErrInvalidAdults},
		{name: "stops above two", mutate: func(in *flight.SearchInput) { in.Stops = ptr.Of(3) }, err: flight.ErrInvalidStops},
		{name: "unknown cabin", mutate: func(in *flight.SearchInput) { in.Cabin = "suite" }, err: flight.ErrInvalidCabin},
		{name: "unknown sort", mutate: func(in *flight.SearchInput) { in.SortBy = "legroom" }, err: flight.ErrInvalidSortBy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := flight.NewSearchParams(in)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("same day return is allowed", func(t *testing.T) {
		in := validInput()
		in.ReturnDate = in.Date
		in.Currency = " eur "

		p, err := flight.NewSearchParams(in)
		require.NoError(t, err)
		require.NotNil(t, p.ReturnDate)
		assert.Equal(t, "2025-06-01", *p.ReturnDate)
		assert.Equal(t, "EUR", p.Currency)
	})
}

func TestParseCabin(t *testing.T) {
	for input, want := range map[string]flight.Cabin{
		"":                flight.CabinEconomy,
		"Premium_Economy": flight.CabinPremium,
		"BUSINESS":        flight.CabinBusiness,
		"first":           flight.CabinFirst,
	} {
		got, err := flight.ParseCabin(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	assert.Equal(t, 1, flight.CabinEconomy.TravelClass())
	assert.Equal(t, 4, flight.CabinFirst.TravelClass())
}

func TestSort(t *testing.T) {
	early := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	late := early.Add(3 * time.Hour)

	offers := func() []flight.Offer {
		return []flight.Offer{
			{ID: "a", Price: 500, DurationMinutes: 600, SafetyScore: 8, Departure: flight.Endpoint{Time: &late}},
			{ID: "b", Price: 300, DurationMinutes: 700, SafetyScore: 9},
			{ID: "c", Price: 400, DurationMinutes: 500, SafetyScore: 9, Departure: flight.Endpoint{Time: &early}},
		}
	}
	ids := func(o []flight.Offer) []string {
		out := make([]string, len(o))
		for i := range o {
			out[i] = o[i].ID
		}
		return out
	}

	cases := []struct {
		by   flight.SortBy
		want []string
	}{
		{by: flight.SortByScore, want: []string{"b", "c", "a"}},
		{by: flight.SortByPrice, want: []string{"b", "c", "a"}},
		{by: flight.SortByDuration, want: []string{"c", "a", "b"}},
		{by: flight.SortByDeparture, want: []string{"c", "a", "b"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.by), func(t *testing.T) {
			o := offers()
			flight.Sort(o, tc.by)
			assert.Equal(t, tc.want, ids(o))
		})
	}
}
