package booking

import (
	"errors"
	"net/url"
	"slices"
	"strings"
)

var (
	ErrEmptyToken = errors.New("booking token must not be empty")
	ErrNoOptions  = errors.New("no booking options available")
	ErrNoRedirect = errors.New("booking option does not support online redirect")
)

// Leg is one ticket of a separate-ticket itinerary.
type Leg struct {
	BookWith  string   `json:"bookWith"`
	IsAirline bool     `json:"isAirline"`
	Price     *float64 `json:"price"`
	URL       *string  `json:"url"`
	PostData  *string  `json:"postData"`
	Phone     *string  `json:"phone"`
}

// Option is one place a selected itinerary can be bought.
// For separate tickets the top-level fields describe the departing leg.
type Option struct {
	BookWith        string   `json:"bookWith"`
	IsAirline       bool     `json:"isAirline"`
	Price           *float64 `json:"price"`
	URL             *string  `json:"url"`
	PostData        *string  `json:"postData"`
	Phone           *string  `json:"phone"`
	SeparateTickets bool     `json:"separateTickets"`
	Departing       *Leg     `json:"departing,omitempty"`
	Returning       *Leg     `json:"returning,omitempty"`
}

type Options struct {
	Options          []Option `json:"options"`
	GoogleFlightsURL *string  `json:"googleFlightsUrl"`
}

// Preference steers which option and which leg a redirect opens.
type Preference struct {
	AirlineName     string
	PreferExpedia   bool
	PreferDeparting bool
	PreferReturning bool
}

// Preferred is the option picked with no stated preference.
func (o Options) Preferred() (Option, bool) {
	return o.Select(Preference{})
}

// Select picks an option. With PreferExpedia the order is Expedia then the first option.
// Otherwise it is the named airline's own site, any airline site, Expedia, then the first option.
func (o Options) Select(p Preference) (Option, bool) {
	if len(o.Options) == 0 {
		return Option{}, false
	}

	if !p.PreferExpedia {
		if names := airlineNames(p.AirlineName); len(names) > 0 {
			for _, opt := range o.Options {
				if opt.IsAirline && matchesAny(opt.BookWith, names) {
					return opt, true
				}
			}
		}
		for _, opt := range o.Options {
			if opt.IsAirline {
				return opt, true
			}
		}
	}
	for _, opt := range o.Options {
		if isExpedia(opt.BookWith) {
			return opt, true
		}
	}
	return o.Options[0], true
}

// Field is one hidden input of the booking form.
type Field struct {
	Name  string
	Value string
}

// Target is where the browser is sent. A phone-only option has no URL.
type Target struct {
	BookWith string
	Price    *float64
	URL      string
	Fields   []Field
	Phone    string
}

// Target resolves the leg to open. Separate tickets open the departing leg unless
// PreferReturning is set.
func (o Option) Target(p Preference) (Target, error) {
	leg := Leg{
		BookWith:  o.BookWith,
		IsAirline: o.IsAirline,
		Price:     o.Price,
		URL:       o.URL,
		PostData:  o.PostData,
		Phone:     o.Phone,
	}
	if o.SeparateTickets {
		switch {
		case p.PreferReturning && o.Returning != nil:
			leg = *o.Returning
		case o.Departing != nil:
			leg = *o.Departing
		}
	}
	if leg.BookWith == "" {
		leg.BookWith = o.BookWith
	}

	t := Target{BookWith: leg.BookWith, Price: leg.Price}
	switch {
	case leg.URL != nil && *leg.URL != "":
		t.URL = *leg.URL
		if leg.PostData != nil {
			t.Fields = ParsePostData(*leg.PostData)
		}
	case leg.Phone != nil && *leg.Phone != "":
		t.Phone = *leg.Phone
	default:
		return Target{}, ErrNoRedirect
	}
	return t, nil
}

// ParsePostData splits a form-encoded body into fields, keeping their order.
// Values are decoded so the browser re-encodes them exactly once.
func ParsePostData(s string) []Field {
	var fields []Field
	for _, pair := range strings.Split(s, "&") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		if v, err := url.QueryUnescape(value); err == nil {
			value = v
		}
		fields = append(fields, Field{Name: name, Value: value})
	}
	return fields
}

// airlineGroups lists spellings that name the same carrier.
var airlineGroups = [][]string{
	{"all nippon", "all nippon airways", "ana"},
	{"japan airlines", "jal"},
	{"delta", "delta air lines"},
	{"united", "united airlines"},
	{"american", "american airlines"},
	{"southwest", "southwest airlines"},
	{"british airways"},
	{"lufthansa"},
	{"air france"},
	{"klm", "klm royal dutch"},
	{"cathay", "cathay pacific"},
	{"singapore", "singapore airlines"},
	{"emirates"},
	{"qatar", "qatar airways"},
	{"etihad", "etihad airways"},
}

func airlineNames(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	for _, group := range airlineGroups {
		if slices.Contains(group, name) || strings.Contains(name, group[0]) {
			return append([]string{name}, group...)
		}
	}
	return []string{name}
}

func matchesAny(bookWith string, names []string) bool {
	bookWith = strings.ToLower(bookWith)
	for _, n := range names {
		if strings.Contains(bookWith, n) {
			return true
		}
	}
	return false
}

func isExpedia(bookWith string) bool {
	return strings.Contains(strings.ToLower(bookWith), "expedia")
}
