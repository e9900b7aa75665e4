package location

import (
	"errors"
	"sort"
	"strings"
)

var ErrEmptyQuery = errors.New("query must not be empty")

const (
	TypeCity   = "city"
	TypeRegion = "region"
)

type Airport struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	City     *string `json:"city"`
	CityID   *string `json:"cityId"`
	Distance *string `json:"distance"`
}

type Suggestion struct {
	Position    *int      `json:"position"`
	Name        *string   `json:"name"`
	Type        *string   `json:"type"`
	Description *string   `json:"description"`
	ID          *string   `json:"id"`
	Airports    []Airport `json:"airports"`
}

type Suggestions struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}

func NormalizeQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}

// Order sorts by position ascending; entries without a position keep their order at the end.
func Order(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		a, b := s[i].Position, s[j].Position
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

// AirportsOnly drops suggestions that carry no airports, such as countries and regions.
func AirportsOnly(s []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(s))
	for _, item := range s {
		if len(item.Airports) > 0 {
			out = append(out, item)
		}
	}
	return out
}

// Finalize orders suggestions and applies the region filter.
func Finalize(query string, s []Suggestion, excludeRegions bool) Suggestions {
	if excludeRegions {
		s = AirportsOnly(s)
	}
	if s == nil {
		s = []Suggestion{}
	}
	for i := range s {
		if s[i].Airports == nil {
			s[i].Airports = []Airport{}
		}
	}
	Order(s)
	return Suggestions{Query: query, Suggestions: s}
}
