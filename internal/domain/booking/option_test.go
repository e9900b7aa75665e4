//go:build unit

package booking_test

import (
	"testing"

	"airease-backend/internal/domain/booking"
	"airease-backend/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOptions() booking.Options {
	return booking.Options{Options: []booking.Option{
		{BookWith: "Trip.com", URL: ptr.Of("https://trip.example")},
		{BookWith: "Expedia", URL: ptr.Of("https://expedia.example")},
		{BookWith: "Japan Airlines", IsAirline: true, URL: ptr.Of("https://jal.example")},
		{BookWith: "All Nippon Airways", IsAirline: true, URL: ptr.Of("https://ana.example")},
	}}
}

func TestOptions_Select(t *testing.T) {
	tests := []struct {
		name string
		opts booking.Options
		pref booking.Preference
		want string
	}{
		{name: "named airline's own site wins", opts: sampleOptions(), pref: booking.Preference{AirlineName: "ANA"}, want: "All Nippon Airways"},
		{name: "name match is case insensitive", opts: sampleOptions(), pref: booking.Preference{AirlineName: "japan airlines"}, want: "Japan Airlines"},
		{name: "unknown airline falls back to any airline site", opts: sampleOptions(), pref: booking.Preference{AirlineName: "Delta"}, want: "Japan Airlines"},
		{name: "no preference picks the first airline site", opts: sampleOptions(), want: "Japan Airlines"},
		{name: "Expedia 優先なら航空会社より先に選ぶ", opts: sampleOptions(), pref: booking.Preference{AirlineName: "ANA", PreferExpedia: true}, want: "Expedia"},
		{
			name: "without an airline site Expedia comes next",
			opts: booking.Options{Options: []booking.Option{{BookWith: "Trip.com"}, {BookWith: "Expedia"}}},
			want: "Expedia",
		},
		{
			name: "first option is the last resort",
			opts: booking.Options{Options: []booking.Option{{BookWith: "Trip.com"}, {BookWith: "Kiwi"}}},
			pref: booking.Preference{PreferExpedia: true},
			want: "Trip.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.opts.Select(tt.pref)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.BookWith)
		})
	}

	t.Run("empty options", func(t *testing.T) {
		_, ok := booking.Options{}.Select(booking.Preference{AirlineName: "ANA"})
		assert.False(t, ok)
	})

	t.Run("preferred is the selection without preference", func(t *testing.T) {
		got, ok := sampleOptions().Preferred()
		require.True(t, ok)
		assert.Equal(t, "Japan Airlines", got.BookWith)
	})
}

func TestOption_Target(t *testing.T) {
	separate := booking.Option{
		BookWith:        "ANA",
		IsAirline:       true,
		URL:             ptr.Of("https://ana.example/out"),
		SeparateTickets: true,
		Departing:       &booking.Leg{BookWith: "ANA", IsAirline: true, Price: ptr.Of(400.0), URL: ptr.Of("https://ana.example/out"), PostData: ptr.Of("u=out")},
		Returning:       &booking.Leg{BookWith: "United", IsAirline: true, Price: ptr.Of(380.0), URL: ptr.Of("https://united.example/back"), PostData: ptr.Of("u=back")},
	}

	t.Run("together ticket posts its form", func(t *testing.T) {
		opt := booking.Option{BookWith: "JAL", Price: ptr.Of(820.0), URL: ptr.Of("https://jal.example"), PostData: ptr.Of("u=abc%3D%3D&lang=en")}

		got, err := opt.Target(booking.Preference{})
		require.NoError(t, err)
		assert.Equal(t, "https://jal.example", got.URL)
		assert.Equal(t, []booking.Field{{Name: "u", Value: "abc=="}, {Name: "lang", Value: "en"}}, got.Fields)
		assert.Equal(t, 820.0, *got.Price)
	})

	t.Run("separate tickets open the departing leg by default", func(t *testing.T) {
		for _, pref := range []booking.Preference{{}, {PreferDeparting: true}} {
			got, err := separate.Target(pref)
			require.NoError(t, err)
			assert.Equal(t, "https://ana.example/out", got.URL)
			assert.Equal(t, "out", got.Fields[0].Value)
		}
	})

	t.Run("復路を指定すると復路のチケットを開く", func(t *testing.T) {
		got, err := separate.Target(booking.Preference{PreferReturning: true})
		require.NoError(t, err)
		assert.Equal(t, "United", got.BookWith)
		assert.Equal(t, "https://united.example/back", got.URL)
		assert.Equal(t, 380.0, *got.Price)
	})

	t.Run("returning preference on a together ticket is ignored", func(t *testing.T) {
		opt := booking.Option{BookWith: "JAL", URL: ptr.Of("https://jal.example")}
		got, err := opt.Target(booking.Preference{PreferReturning: true})
		require.NoError(t, err)
		assert.Equal(t, "https://jal.example", got.URL)
	})

	t.Run("phone only", func(t *testing.T) {
		opt := booking.Option{BookWith: "Air Local", Phone: ptr.Of("+81 3 0000 0000")}
		got, err := opt.Target(booking.Preference{})
		require.NoError(t, err)
		assert.Empty(t, got.URL)
		assert.Equal(t, "+81 3 0000 0000", got.Phone)
	})

	t.Run("neither url nor phone", func(t *testing.T) {
		_, err := booking.Option{BookWith: "Nowhere"}.Target(booking.Preference{})
		assert.ErrorIs(t, err, booking.ErrNoRedirect)
	})
}

func TestParsePostData(t *testing.T) {
	assert.Equal(t, []booking.Field{{Name: "a", Value: "1"}, {Name: "b", Value: "x y"}},
		booking.ParsePostData("a=1&b=x+y&novalue&=orphan"))
	assert.Empty(t, booking.ParsePostData(""))
}
