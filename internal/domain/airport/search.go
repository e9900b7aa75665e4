package airport

import (
	"errors"
	"sort"
	"strings"
)

const (
	MinQueryLength     = 2
	DefaultSearchLimit = 10
	MaxAirportResults  = 50
	MaxCityResults     = 20
)

var (
	ErrShortQuery   = errors.New("query must be at least 2 characters")
	ErrInvalidLimit = errors.New("limit is out of range")
)

// SearchAirports matches code, name or city. An exact code ranks first, then code
// prefixes, then the rest in directory order.
func SearchAirports(query string, limit int) ([]Airport, error) {
	q, limit, err := searchArgs(query, limit, MaxAirportResults)
	if err != nil {
		return nil, err
	}
	upper := strings.ToUpper(q)
	lower := strings.ToLower(q)

	type ranked struct {
		a    Airport
		rank int
	}
	var hits []ranked
	for _, a := range directory {
		switch {
		case a.Code == upper:
			hits = append(hits, ranked{a, 0})
		case strings.HasPrefix(a.Code, upper):
			hits = append(hits, ranked{a, 1})
		case strings.Contains(strings.ToLower(a.Name), lower), strings.Contains(strings.ToLower(a.City), lower):
			hits = append(hits, ranked{a, 2})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	out := make([]Airport, 0, min(len(hits), limit))
	for _, h := range hits[:min(len(hits), limit)] {
		out = append(out, h.a)
	}
	return out, nil
}

// SearchCities matches city or country names. Cities whose name starts with the query come first.
func SearchCities(query string, limit int) ([]City, error) {
	q, limit, err := searchArgs(query, limit, MaxCityResults)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(q)

	var prefix, rest []City
	for _, c := range Cities() {
		name := strings.ToLower(c.Name)
		switch {
		case strings.HasPrefix(name, lower):
			prefix = append(prefix, c)
		case strings.Contains(name, lower), strings.Contains(strings.ToLower(c.Country), lower):
			rest = append(rest, c)
		}
	}
	out := append(prefix, rest...)
	if out == nil {
		out = []City{}
	}
	return out[:min(len(out), limit)], nil
}

// PrimaryCode is the airport searched when the city itself is the origin or destination.
func (c City) PrimaryCode() string {
	if code, ok := cityCodes[strings.ToLower(c.Name)]; ok {
		return code
	}
	if len(c.Airports) > 0 {
		return c.Airports[0].Code
	}
	return ""
}

func searchArgs(query string, limit, maxLimit int) (string, int, error) {
	q := strings.TrimSpace(query)
	if len([]rune(q)) < MinQueryLength {
		return "", 0, ErrShortQuery
	}
	switch {
	case limit == 0:
		limit = DefaultSearchLimit
	case limit < 0 || limit > maxLimit:
		return "", 0, ErrInvalidLimit
	}
	return q, limit, nil
}
