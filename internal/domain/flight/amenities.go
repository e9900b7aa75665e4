package flight

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	PitchAboveAverage = "Above average"
	PitchAverage      = "Average"
	PitchBelowAverage = "Below average"
)

// SeatPitchCategory buckets legroom: >=34 above average, >=31 average.
func SeatPitchCategory(inches int) string {
	switch {
	case inches >= 34:
		return PitchAboveAverage
	case inches >= 31:
		return PitchAverage
	default:
		return PitchBelowAverage
	}
}

// ParseLegroom reads the leading integer of values such as "31 in".
func ParseLegroom(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ParseAmenities derives cabin features from the provider's free-text extensions.
// Anything not mentioned is reported as unavailable.
func ParseAmenities(extensions []string, legroom string) Amenities {
	joined := strings.ToLower(strings.Join(extensions, " "))
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(joined, w) {
				return true
			}
		}
		return false
	}

	var a Amenities

	if has("wi-fi", "wifi") {
		a.HasWifi = true
		a.WifiFree = has("free wi-fi", "free wifi")
	}

	a.HasPower = has("power", "usb", "outlet")

	if has("video", "tv", "entertainment") {
		a.HasIFE = true
		var t string
		switch {
		case has("on-demand"):
			t = "On-demand video"
		case has("live tv"):
			t = "Live TV"
		case has("stream"):
			t = "Stream to device"
		default:
			t = "In-flight entertainment"
		}
		a.IFEType = &t
	}

	switch {
	case has("meal", "food", "dinner", "lunch", "breakfast"):
		a.MealIncluded = true
		t := "Meal included"
		if has("hot meal") {
			t = "Hot meal"
		} else if has("snack") {
			t = "Snacks"
		}
		a.MealType = &t
	case has("snack"):
		a.MealIncluded = true
		t := "Snacks"
		a.MealType = &t
	}

	if legroom != "" {
		raw := legroom
		a.Legroom = &raw
		if inches, ok := ParseLegroom(legroom); ok {
			cat := SeatPitchCategory(inches)
			a.SeatPitchInches = &inches
			a.SeatPitchCategory = &cat
		}
	}

	return a
}

// AirlineCode takes the letters of the flight number prefix, e.g. "BA 301" -> "BA".
func AirlineCode(flightNumber string) string {
	fields := strings.Fields(flightNumber)
	if len(fields) == 0 {
		return "XX"
	}

	var b strings.Builder
	for _, r := range fields[0] {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() == 2 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "XX"
	}
	return b.String()
}
