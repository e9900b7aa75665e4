package flight

import (
	"errors"
	"sort"
	"strings"
	"time"

	"airease-backend/internal/domain/airport"
)

const (
	DateLayout = "2006-01-02"

	MinAdults = 1
	MaxAdults = 9

	// AnonymousResultLimit caps how many offers an unauthenticated caller sees.
	AnonymousResultLimit = 3

	DefaultCurrency = "USD"
)

var (
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrReturnBeforeOut = errors.New("return date must not be before departure date")
	ErrSameRoute       = errors.New("departure and arrival must differ")
	ErrInvalidStops    = errors.New("stops must be 0, 1 or 2")
	ErrInvalidAdults   = errors.New("adults must be between 1 and 9")
	ErrInvalidCabin    = errors.New("cabin must be one of economy, premium, business, first")
	ErrInvalidSortBy   = errors.New("sortBy must be one of score, price, duration, departure, arrival")
)

type Cabin string

const (
	CabinEconomy  Cabin = "economy"
	CabinPremium  Cabin = "premium"
	CabinBusiness Cabin = "business"
	CabinFirst    Cabin = "first"
)

func ParseCabin(s string) (Cabin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "economy":
		return CabinEconomy, nil
	case "premium", "premium_economy", "premium-economy", "premium economy":
		return CabinPremium, nil
	case "business":
		return CabinBusiness, nil
	case "first":
		return CabinFirst, nil
	default:
		return "", ErrInvalidCabin
	}
}

// TravelClass is the provider's numeric cabin code.
func (c Cabin) TravelClass() int {
	switch c {
	case CabinPremium:
		return 2
	case CabinBusiness:
		return 3
	case CabinFirst:
		return 4
	default:
		return 1
	}
}

type SortBy string

const (
	SortByScore     SortBy = "score"
	SortByPrice     SortBy = "price"
	SortByDuration  SortBy = "duration"
	SortByDeparture SortBy = "departure"
	SortByArrival   SortBy = "arrival"
)

func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByScore:
		return SortByScore, nil
	case SortByPrice:
		return SortByPrice, nil
	case SortByDuration:
		return SortByDuration, nil
	case SortByDeparture:
		return SortByDeparture, nil
	case SortByArrival:
		return SortByArrival, nil
	default:
		return "", ErrInvalidSortBy
	}
}

// Sort orders offers in place. Ties keep their incoming order.
func Sort(offers []Offer, by SortBy) {
	less := func(i, j int) bool {
		a, b := offers[i], offers[j]
		switch by {
		case SortByPrice:
			return a.Price < b.Price
		case SortByDuration:
			return a.DurationMinutes < b.DurationMinutes
		case SortByDeparture:
			return timeBefore(a.Departure.Time, b.Departure.Time)
		case SortByArrival:
			return timeBefore(a.Arrival.Time, b.Arrival.Time)
		default:
			if a.SafetyScore != b.SafetyScore {
				return a.SafetyScore > b.SafetyScore
			}
			return a.Price < b.Price
		}
	}
	sort.SliceStable(offers, less)
}

// nil times sort last
func timeBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

// SearchInput is the unvalidated query as received from a caller.
type SearchInput struct {
	From       string
	To         string
	Date       string
	ReturnDate string
	Adults     *int
	Currency   string
	Stops      *int
	Cabin      string
	SortBy     string
}

type SearchParams struct {
	From       string
	To         string
	Date       string
	ReturnDate *string
	Adults     int
	Currency   string
	Stops      *int
	Cabin      Cabin
	SortBy     SortBy
}

func NewSearchParams(in SearchInput) (SearchParams, error) {
	from, err := airport.Resolve(in.From)
	if err != nil {
		return SearchParams{}, err
	}
	to, err := airport.Resolve(in.To)
	if err != nil {
		return SearchParams{}, err
	}
	if from == to {
		return SearchParams{}, ErrSameRoute
	}

	out, err := ParseDate(in.Date)
	if err != nil {
		return SearchParams{}, err
	}

	var returnDate *string
	if in.ReturnDate != "" {
		ret, err := ParseDate(in.ReturnDate)
		if err != nil {
			return SearchParams{}, err
		}
		if ret.Before(out) {
			return SearchParams{}, ErrReturnBeforeOut
		}
		rd := in.ReturnDate
		returnDate = &rd
	}

	adults, err := ResolveAdults(in.Adults)
	if err != nil {
		return SearchParams{}, err
	}

	if in.Stops != nil {
		if err := ValidateStops(*in.Stops); err != nil {
			return SearchParams{}, err
		}
	}

	cabin, err := ParseCabin(in.Cabin)
	if err != nil {
		return SearchParams{}, err
	}
	sortBy, err := ParseSortBy(in.SortBy)
	if err != nil {
		return SearchParams{}, err
	}

	return SearchParams{
		From:       from,
		To:         to,
		Date:       in.Date,
		ReturnDate: returnDate,
		Adults:     adults,
		Currency:   NormalizeCurrency(in.Currency),
		Stops:      in.Stops,
		Cabin:      cabin,
		SortBy:     sortBy,
	}, nil
}

// ParseDate accepts only the exact YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ResolveAdults defaults a missing count to one. An explicit value must be in range.
func ResolveAdults(n *int) (int, error) {
	if n == nil {
		return MinAdults, nil
	}
	if err := ValidateAdults(*n); err != nil {
		return 0, err
	}
	return *n, nil
}

func ValidateAdults(n int) error {
	if n < MinAdults || n > MaxAdults {
		return ErrInvalidAdults
	}
	return nil
}

func ValidateStops(n int) error {
	if n < 0 || n > 2 {
		return ErrInvalidStops
	}
	return nil
}

func NormalizeCurrency(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultCurrency
	}
	return s
}
