//go:build unit

package flight_test

import (
	"testing"

	"airease-backend/internal/domain/flight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmenities(t *testing.T) {
	t.Run("extensions are read case-insensitively", func(t *testing.T) {
		a := flight.ParseAmenities([]string{
			"Free Wi-Fi",
			"In-seat power & USB outlets",
			"On-demand video",
			"Hot meal provided",
		}, "32 in")

		assert.True(t, a.HasWifi)
		assert.True(t, a.WifiFree)
		assert.True(t, a.HasPower)
		assert.True(t, a.HasIFE)
		require.NotNil(t, a.IFEType)
		assert.Equal(t, "On-demand video", *a.IFEType)
		assert.True(t, a.MealIncluded)
		require.NotNil(t, a.MealType)
		assert.Equal(t, "Hot meal", *a.MealType)
		require.NotNil(t, a.SeatPitchInches)
		assert.Equal(t, 32, *a.SeatPitchInches)
		assert.Equal(t, flight.PitchAverage, *a.SeatPitchCategory)
	})

	t.Run("paid wifi and snacks only", func(t *testing.T) {
		a := flight.ParseAmenities([]string{"Wi-Fi for a fee", "Snack"}, "")

		assert.True(t, a.HasWifi)
		assert.False(t, a.WifiFree)
		assert.True(t, a.MealIncluded)
		assert.Equal(t, "Snacks", *a.MealType)
		assert.Nil(t, a.Legroom)
	})

	t.Run("nothing mentioned is unavailable", func(t *testing.T) {
		a := flight.ParseAmenities(nil, "")
		assert.Equal(t, flight.Amenities{}, a)
	})

	t.Run("unparseable legroom is kept raw", func(t *testing.T) {
		a := flight.ParseAmenities(nil, "Extra reclined seat")
		require.NotNil(t, a.Legroom)
		assert.Nil(t, a.SeatPitchInches)
		assert.Nil(t, a.SeatPitchCategory)
	})
}

func TestSeatPitchCategory(t *testing.T) {
	assert.Equal(t, flight.PitchAboveAverage, flight.SeatPitchCategory(34))
	assert.Equal(t, flight.PitchAverage, flight.SeatPitchCategory(31))
	assert.Equal(t, flight.PitchBelowAverage, flight.SeatPitchCategory(30))
}

func TestAirlineCode(t *testing.T) {
	cases := map[string]string{
		"BA 301":  "BA",
		"nh106":   "NH",
		"3K 521":  "K",
		"":        "XX",
		"1234":    "XX",
		"UA  857": "UA",
	}
	for input, want := range cases {
		assert.Equal(t, want, flight.AirlineCode(input), input)
	}
}
