package airport

import (
	"errors"
	"sort"
	"strings"
)

var ErrUnknownAirport = errors.New("unknown airport")

type Airport struct {
	Code    string
	Name    string
	City    string
	Country string
}

// directory holds the airports the service can search and validate against.
var directory = []Airport{
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	{Code: "HND", Name: "Haneda Airport", City: "Tokyo", Country: "Japan"},
	{Code: "KIX", Name: "Kansai International Airport", City: "Osaka", Country: "Japan"},
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom"},
	{Code: "LGW", Name: "Gatwick Airport", City: "London", Country: "United Kingdom"},
	{Code: "CDG", Name: "Paris Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{Code: "ORY", Name: "Paris Orly Airport", City: "Paris", Country: "France"},
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States"},
	{Code: "EWR", Name: "Newark Liberty International Airport", City: "New York", Country: "United States"},
	{Code: "LGA", Name: "LaGuardia Airport", City: "New York", Country: "United States"},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States"},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States"},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States"},
	{Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "United States"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	{Code: "GMP", Name: "Gimpo International Airport", City: "Seoul", Country: "South Korea"},
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia"},
	{Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China"},
	{Code: "PKX", Name: "Beijing Daxing International Airport", City: "Beijing", Country: "China"},
	{Code: "SHA", Name: "Shanghai Hongqiao International Airport", City: "Shanghai", Country: "China"},
	{Code: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China"},
	{Code: "CAN", Name: "Guangzhou Baiyun International Airport", City: "Guangzhou", Country: "China"},
	{Code: "SZX", Name: "Shenzhen Bao'an International Airport", City: "Shenzhen", Country: "China"},
	{Code: "CTU", Name: "Chengdu Shuangliu International Airport", City: "Chengdu", Country: "China"},
	{Code: "HGH", Name: "Hangzhou Xiaoshan International Airport", City: "Hangzhou", Country: "China"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong"},
	{Code: "TPE", Name: "Taiwan Taoyuan International Airport", City: "Taipei", Country: "Taiwan"},
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand"},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada"},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada"},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand"},
}

// cityCodes maps free-form city names to the airport searched on their behalf.
var cityCodes = map[string]string{
	"tokyo":       "NRT",
	"london":      "LHR",
	"paris":       "CDG",
	"new york":    "JFK",
	"los angeles": "LAX",
	"singapore":   "SIN",
	"seoul":       "ICN",
	"sydney":      "SYD",
	"beijing":     "PEK",
	"shanghai":    "SHA",
	"guangzhou":   "CAN",
	"shenzhen":    "SZX",
	"chengdu":     "CTU",
	"hangzhou":    "HGH",
	"hong kong":   "HKG",
}

var byCode = func() map[string]Airport {
	m := make(map[string]Airport, len(directory))
	for _, a := range directory {
		m[a.Code] = a
	}
	return m
}()

func Lookup(code string) (Airport, bool) {
	a, ok := byCode[strings.ToUpper(code)]
	return a, ok
}

// Resolve turns an IATA code or a known city name into a directory code.
func Resolve(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrUnknownAirport
	}

	if isCodeShape(s) {
		if a, ok := Lookup(s); ok {
			return a.Code, nil
		}
	}

	if code, ok := cityCodes[strings.ToLower(s)]; ok {
		return code, nil
	}
	return "", ErrUnknownAirport
}

func isCodeShape(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// City groups the airports that serve one city.
type City struct {
	Name     string
	Country  string
	Airports []Airport
}

// Cities returns every city in the directory ordered by name.
func Cities() []City {
	idx := map[string]int{}
	var cities []City
	for _, a := range directory {
		i, ok := idx[a.City]
		if !ok {
			i = len(cities)
			idx[a.City] = i
			cities = append(cities, City{Name: a.City, Country: a.Country})
		}
		cities[i].Airports = append(cities[i].Airports, a)
	}
	sort.SliceStable(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	return cities
}

// Countries returns the distinct countries in the directory ordered by name.
func Countries() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, a := range directory {
		if _, ok := seen[a.Country]; ok {
			continue
		}
		seen[a.Country] = struct{}{}
		out = append(out, a.Country)
	}
	sort.Strings(out)
	return out
}
