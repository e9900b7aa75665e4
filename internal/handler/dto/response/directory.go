package response

import (
	"fmt"

	"airease-backend/internal/domain/airport"
)

type AirportResult struct {
	IATACode string `json:"iataCode"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

type CityResult struct {
	City        string   `json:"city"`
	Country     string   `json:"country"`
	AirportCode string   `json:"airportCode"`
	Airports    []string `json:"airports"`
	DisplayName string   `json:"displayName"`
}

func FromAirports(as []airport.Airport) []AirportResult {
	out := make([]AirportResult, 0, len(as))
	for _, a := range as {
		out = append(out, AirportResult{IATACode: a.Code, Name: a.Name, City: a.City, Country: a.Country})
	}
	return out
}

func FromCities(cs []airport.City) []CityResult {
	out := make([]CityResult, 0, len(cs))
	for _, c := range cs {
		codes := make([]string, 0, len(c.Airports))
		for _, a := range c.Airports {
			codes = append(codes, a.Code)
		}
		primary := c.PrimaryCode()
		out = append(out, CityResult{
			City:        c.Name,
			Country:     c.Country,
			AirportCode: primary,
			Airports:    codes,
			DisplayName: fmt.Sprintf("%s, %s (%s)", c.Name, c.Country, primary),
		})
	}
	return out
}
