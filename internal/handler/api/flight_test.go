//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"airease-backend/internal/domain/airport"
	"airease-backend/internal/domain/booking"
	"airease-backend/internal/domain/flight"
	"airease-backend/internal/domain/insight"
	"airease-backend/internal/domain/location"
	"airease-backend/internal/handler/api"
	resdto "airease-backend/internal/handler/dto/response"
	"airease-backend/internal/handler/middleware"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/pkg/ptr"
	"airease-backend/internal/usecase/queries"
	"airease-backend/tests/common/httptest"
	queriesmock "airease-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FlightHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockFlightQueries
}

func (s *FlightHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockFlightQueries(s.mockCtrl)

	flights := api.NewFlightHandler(s.mockQueries)
	insights := api.NewInsightsHandler(s.mockQueries)
	autocomplete := api.NewAutocompleteHandler(s.mockQueries)

	s.router.GET("/flights/search", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set(middleware.ContextKeyUserID, uuid.New())
		}
		flights.Search(c)
	})
	s.router.GET("/flights/:id", flights.Detail)
	s.router.GET("/flights/:id/price-history", flights.PriceHistory)
	s.router.GET("/booking/options", flights.BookingOptions)
	s.router.GET("/booking/redirect", flights.BookingRedirect)
	s.router.GET("/airports/search", autocomplete.SearchAirports)
	s.router.GET("/cities/search", autocomplete.SearchCities)
	s.router.GET("/price-insights", insights.Insights)
	s.router.GET("/price-insights/compare", insights.Compare)
	s.router.GET("/autocomplete/locations", autocomplete.Locations)
	s.router.GET("/autocomplete/airports", autocomplete.Airports)
}

func (s *FlightHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFlightHandlerSuite(t *testing.T) {
	suite.Run(t, new(FlightHandlerTestSuite))
}

var mockOrigin = queries.Origin{DataSource: queries.DataSourceMock, Degraded: true}

func (s *FlightHandlerTestSuite) TestSearch() {
	expectedInput := flight.SearchInput{From: "HND", To: "LAX", Date: "2025-06-01", Adults: ptr.Of(2)}

	s.Run("success: passes anonymous flag and exposes origin headers", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), expectedInput, false).
			Return(&queries.SearchResult{
				Flights:         []flight.Offer{{ID: "a"}, {ID: "b"}, {ID: "c"}},
				Total:           7,
				RestrictedCount: 4,
				SearchID:        "01HZX",
				Origin:          mockOrigin,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/search?from=HND&to=LAX&date=2025-06-01&adults=2", nil, "")

		var response resdto.SearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Flights, 3)
		s.Equal(7, response.Meta.Total)
		s.Equal(4, response.Meta.RestrictedCount)
		s.False(response.Meta.IsAuthenticated)
		s.Equal("mock", response.Meta.DataSource)
		s.True(response.Meta.Degraded)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			api.HeaderDataSource: "mock",
			api.HeaderDegraded:   "true",
		})
	})

	s.Run("success: authenticated caller is flagged", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), expectedInput, true).
			Return(&queries.SearchResult{IsAuthenticated: true, Origin: queries.Origin{DataSource: queries.DataSourceProvider}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/search?from=HND&to=LAX&date=2025-06-01&adults=2", nil, "token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]any{}, response["flights"])
		s.Empty(rec.Header().Get(api.HeaderDegraded))
	})

	s.Run("error: 400 when a required parameter is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/search?from=HND&to=LAX", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: explicit adults=0 is passed on and rejected", func() {
		zero := flight.SearchInput{From: "HND", To: "LAX", Date: "2025-06-01", Adults: ptr.Of(0)}
		s.mockQueries.EXPECT().Search(gomock.Any(), zero, false).
			Return(nil, errs.Mark(flight.ErrInvalidAdults, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/search?from=HND&to=LAX&date=2025-06-01&adults=0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, flight.ErrInvalidAdults.Error())
	})

	s.Run("error: validation errors surface their reason", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any(), false).
			Return(nil, errs.Mark(flight.ErrInvalidDate, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/search?from=HND&to=LAX&date=June", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, flight.ErrInvalidDate.Error())
	})
}

func (s *FlightHandlerTestSuite) TestDetail() {
	s.Run("success: returns the cached offer", func() {
		s.mockQueries.EXPECT().FlightDetail(gomock.Any(), "offer-1").
			Return(&flight.Offer{ID: "offer-1", FlightNumber: "NH 106"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/offer-1", nil, "")

		var response flight.Offer
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("NH 106", response.FlightNumber)
	})

	s.Run("error: 404 for unknown or expired offers", func() {
		s.mockQueries.EXPECT().FlightDetail(gomock.Any(), "gone").
			Return(nil, queries.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/gone", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Flight not found or expired")
	})
}

func (s *FlightHandlerTestSuite) TestBookingOptions() {
	s.Run("success: marks the airline option as preferred", func() {
		price := 420.0
		s.mockQueries.EXPECT().BookingOptions(gomock.Any(), "tok", "USD").
			Return(&queries.BookingResult{
				Options: booking.Options{Options: []booking.Option{
					{BookWith: "Agency", Price: &price},
					{BookWith: "ANA", IsAirline: true, Price: &price},
				}},
				Origin: queries.Origin{DataSource: queries.DataSourceProvider},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/options?token=tok&currency=USD", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Options.Options, 2)
		s.Require().NotNil(response.Preferred)
		s.Equal("ANA", response.Preferred.BookWith)
		s.Equal("provider", response.DataSource)
	})

	s.Run("error: 400 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/options", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Booking token is required")
	})
}

func (s *FlightHandlerTestSuite) TestBookingRedirect() {
	s.Run("success: posts the selected leg to the seller", func() {
		want := queries.BookingRedirectParams{
			Token:    "tok",
			Currency: "jpy",
			Preference: booking.Preference{
				AirlineName:     "ANA",
				PreferReturning: true,
			},
		}
		s.mockQueries.EXPECT().BookingRedirect(gomock.Any(), want).
			Return(&queries.RedirectResult{
				Target: booking.Target{
					BookWith: "ANA",
					Price:    ptr.Of(61200.0),
					URL:      "https://ana.example/back",
					Fields:   []booking.Field{{Name: "u", Value: "abc=="}, {Name: "lang", Value: `"en"`}},
				},
				Origin: queries.Origin{DataSource: queries.DataSourceProvider},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/booking/redirect?token=tok&currency=jpy&airlineName=ANA&preferReturning=true", nil, "")

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		body := rec.Body.String()
		s.Contains(body, `action="https://ana.example/back" method="POST"`)
		s.Contains(body, `name="u" value="abc=="`)
		s.Contains(body, `name="lang" value="&#34;en&#34;"`, "field values are escaped")
		s.Contains(body, "JPY 61200")
		s.Contains(body, `.submit()`)
		s.Equal("provider", rec.Header().Get(api.HeaderDataSource))
	})

	s.Run("success: phone-only option shows the number", func() {
		s.mockQueries.EXPECT().BookingRedirect(gomock.Any(), gomock.Any()).
			Return(&queries.RedirectResult{
				Target: booking.Target{BookWith: "Air Local", Phone: "+81 3 0000 0000"},
				Origin: mockOrigin,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/redirect?token=tok", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "+81 3 0000 0000")
		s.NotContains(rec.Body.String(), "<form")
		s.Equal("true", rec.Header().Get(api.HeaderDegraded))
	})

	s.Run("script URLs are neutralised", func() {
		s.mockQueries.EXPECT().BookingRedirect(gomock.Any(), gomock.Any()).
			Return(&queries.RedirectResult{Target: booking.Target{BookWith: "X", URL: "javascript:alert(1)"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/redirect?token=tok", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(rec.Body.String(), "javascript:alert")
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		text   string
	}{
		{"no options", queries.ErrNoBookingOptions, http.StatusNotFound, "No booking options available"},
		{"no online redirect", queries.ErrNoBookingRedirect, http.StatusNotFound, "Booking redirect not available"},
		{"invalid token", errs.Mark(booking.ErrEmptyToken, errs.ErrInvalidInput), http.StatusBadRequest, "booking token must not be empty"},
		{"unexpected failure", errs.New("boom"), http.StatusInternalServerError, "Something went wrong"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockQueries.EXPECT().BookingRedirect(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/redirect?token=tok", nil, "")

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Header().Get("Content-Type"), "text/html")
			s.Contains(rec.Body.String(), tc.text)
		})
	}

	s.Run("error: token が無い場合は 400 の HTML", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/redirect", nil, "")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Booking token is required")
	})
}

func (s *FlightHandlerTestSuite) TestPriceHistory() {
	s.Run("success: returns the history with its origin", func() {
		s.mockQueries.EXPECT().PriceHistory(gomock.Any(), "offer-1").
			Return(&queries.PriceHistoryResult{
				History: insight.History{
					FlightID:     "offer-1",
					Points:       []insight.PricePoint{{Date: "2025-05-30", Price: 500}, {Date: "2025-05-31", Price: 450}},
					CurrentPrice: 460,
					Trend:        insight.TrendFalling,
				},
				Currency: "USD",
				Origin:   mockOrigin,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/offer-1/price-history", nil, "")

		var response resdto.PriceHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("offer-1", response.FlightID)
		s.Len(response.Points, 2)
		s.Equal(insight.TrendFalling, response.Trend)
		s.Equal("mock", response.DataSource)
		s.True(response.Degraded)
	})

	s.Run("error: 404 for unknown offers", func() {
		s.mockQueries.EXPECT().PriceHistory(gomock.Any(), "gone").Return(nil, queries.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/flights/gone/price-history", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Flight not found or expired")
	})
}

func (s *FlightHandlerTestSuite) TestDirectorySearch() {
	s.Run("airports: maps directory entries", func() {
		s.mockQueries.EXPECT().SearchAirports(queries.DirectoryQuery{Query: "tok", Limit: 5}).
			Return([]airport.Airport{{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/airports/search?q=tok&limit=5", nil, "")

		var response []resdto.AirportResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("NRT", response[0].IATACode)
		s.Equal("Tokyo", response[0].City)
	})

	s.Run("cities: carries the primary airport", func() {
		s.mockQueries.EXPECT().SearchCities(queries.DirectoryQuery{Query: "lon"}).
			Return([]airport.City{{Name: "London", Country: "United Kingdom", Airports: []airport.Airport{{Code: "LHR"}, {Code: "LGW"}}}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cities/search?q=lon", nil, "")

		var response []resdto.CityResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("LHR", response[0].AirportCode)
		s.Equal([]string{"LHR", "LGW"}, response[0].Airports)
		s.Equal("London, United Kingdom (LHR)", response[0].DisplayName)
	})

	s.Run("empty result is an empty array", func() {
		s.mockQueries.EXPECT().SearchCities(gomock.Any()).Return([]airport.City{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cities/search?q=zz", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: short query surfaces the reason", func() {
		s.mockQueries.EXPECT().SearchAirports(gomock.Any()).
			Return(nil, errs.Mark(airport.ErrShortQuery, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/airports/search?q=t", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at least 2 characters")
	})

	s.Run("error: q が無い場合は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cities/search", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Query parameter q is required")
	})
}

func (s *FlightHandlerTestSuite) TestInsights() {
	s.Run("success: returns insights for the route", func() {
		low := 98.0
		s.mockQueries.EXPECT().Insights(gomock.Any(), queries.InsightParams{From: "HND", To: "LAX", OutboundDate: "2025-06-01"}).
			Return(&queries.InsightResult{
				Route:    insight.Route{Departure: "HND", Arrival: "LAX", OutboundDate: "2025-06-01"},
				Insights: insight.PriceInsight{LowestPrice: &low, PriceLevel: insight.LevelLow},
				Currency: "USD",
				Origin:   mockOrigin,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/price-insights?from=HND&to=LAX&outboundDate=2025-06-01", nil, "")

		var response resdto.InsightsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(insight.LevelLow, response.Insights.PriceLevel)
		s.Equal("USD", response.Currency)
	})

	s.Run("error: explicit adults=0 is rejected", func() {
		s.mockQueries.EXPECT().Insights(gomock.Any(), queries.InsightParams{From: "HND", To: "LAX", OutboundDate: "2025-06-01", Adults: ptr.Of(0)}).
			Return(nil, errs.Mark(flight.ErrInvalidAdults, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/price-insights?from=HND&to=LAX&outboundDate=2025-06-01&adults=0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, flight.ErrInvalidAdults.Error())
	})

	s.Run("error: 400 without outboundDate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/price-insights?from=HND&to=LAX", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *FlightHandlerTestSuite) TestCompare() {
	s.Run("success: splits and trims the date list", func() {
		s.mockQueries.EXPECT().CompareDates(gomock.Any(), queries.CompareParams{
			From:  "HND",
			To:    "LAX",
			Dates: []string{"2025-06-01", "2025-06-02", "2025-06-03"},
		}).Return(&queries.CompareResult{
			Route:  insight.CompareRoute{Departure: "HND", Arrival: "LAX"},
			Origin: queries.Origin{DataSource: queries.DataSourceProvider},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/price-insights/compare?from=HND&to=LAX&dates=2025-06-01,%202025-06-02,,2025-06-03", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: too many dates is a 400 with the reason", func() {
		s.mockQueries.EXPECT().CompareDates(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(insight.ErrTooManyDates, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/price-insights/compare?from=HND&to=LAX&dates=a,b,c,d,e,f", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at most 5 dates")
	})
}

func (s *FlightHandlerTestSuite) TestAutocomplete() {
	s.Run("locations: passes the flag through", func() {
		s.mockQueries.EXPECT().Suggest(gomock.Any(), queries.SuggestQuery{Query: "tok"}).
			Return(&queries.SuggestResult{
				Suggestions: location.Suggestions{Query: "tok", Suggestions: []location.Suggestion{}},
				Origin:      queries.Origin{DataSource: queries.DataSourceMock},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/autocomplete/locations?q=tok", nil, "")

		var response resdto.SuggestionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("tok", response.Query)
		s.Equal("mock", response.DataSource)
		s.False(response.Degraded)
		s.Equal("mock", rec.Header().Get(api.HeaderDataSource))
	})

	s.Run("airports: always excludes regions", func() {
		s.mockQueries.EXPECT().Suggest(gomock.Any(), queries.SuggestQuery{Query: "new", ExcludeRegions: true}).
			Return(&queries.SuggestResult{Suggestions: location.Suggestions{Query: "new"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/autocomplete/airports?q=new", nil, "")
		var response resdto.SuggestionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Suggestions.Suggestions, "empty list is an array, not null")
	})

	s.Run("degraded fallback is reported in the body too", func() {
		s.mockQueries.EXPECT().Suggest(gomock.Any(), queries.SuggestQuery{Query: "par"}).
			Return(&queries.SuggestResult{
				Suggestions: location.Suggestions{Query: "par", Suggestions: []location.Suggestion{}},
				Origin:      queries.Origin{DataSource: queries.DataSourceMock, Degraded: true},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/autocomplete/locations?q=par", nil, "")

		var response resdto.SuggestionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("mock", response.DataSource)
		s.True(response.Degraded)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.HeaderDegraded: "true"})
	})

	s.Run("error: q が無い場合は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/autocomplete/locations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Query parameter q is required")
	})
}
