package api

import (
	"net/http"

	"airease-backend/internal/domain/flight"
	reqdto "airease-backend/internal/handler/dto/request"
	resdto "airease-backend/internal/handler/dto/response"
	"airease-backend/internal/handler/httperr"
	"airease-backend/internal/handler/middleware"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	q queries.FlightQueries
}

func NewFlightHandler(q queries.FlightQueries) *FlightHandler {
	return &FlightHandler{q: q}
}

// @Summary Search flights
// @Description Search flight offers. Anonymous callers see at most 3 results.
// @Tags flights
// @Produce json
// @Param from query string true "Departure airport code or city"
// @Param to query string true "Arrival airport code or city"
// @Param date query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param adults query int false "Adults (1-9)"
// @Param currency query string false "Currency code"
// @Param stops query int false "Max stops (0-2)"
// @Param cabin query string false "economy, premium, business or first"
// @Param sortBy query string false "score, price, duration, departure or arrival"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/flights/search [get]
func (h *FlightHandler) Search(c *gin.Context) {
	var req reqdto.SearchFlightsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.q.Search(c.Request.Context(), req.ToInput(), middleware.IsAuthenticated(c))
	if err != nil {
		abortFlightError(c, err)
		return
	}

	setOrigin(c, result.Origin)
	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}

// @Summary Flight detail
// @Description Get an offer returned by a recent search
// @Tags flights
// @Produce json
// @Param id path string true "Flight offer ID"
// @Success 200 {object} flight.Offer
// @Failure 404 {object} httperr.Response
// @Router /v1/flights/{id} [get]
func (h *FlightHandler) Detail(c *gin.Context) {
	offer, err := h.q.FlightDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortFlightError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// @Summary Booking options
// @Description Resolve a booking token into booking options
// @Tags booking
// @Produce json
// @Param token query string true "Booking token from a search result"
// @Param currency query string false "Currency code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/booking/options [get]
func (h *FlightHandler) BookingOptions(c *gin.Context) {
	var req reqdto.BookingOptionsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking token is required", nil)
		return
	}

	result, err := h.q.BookingOptions(c.Request.Context(), req.Token, req.Currency)
	if err != nil {
		abortFlightError(c, err)
		return
	}

	setOrigin(c, result.Origin)
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Flight price history
// @Description Recent price movement for the route of a cached offer
// @Tags flights
// @Produce json
// @Param id path string true "Flight offer ID"
// @Success 200 {object} resdto.PriceHistoryResponse
// @Failure 404 {object} httperr.Response
// @Router /v1/flights/{id}/price-history [get]
func (h *FlightHandler) PriceHistory(c *gin.Context) {
	result, err := h.q.PriceHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortFlightError(c, err)
		return
	}

	setOrigin(c, result.Origin)
	c.JSON(http.StatusOK, resdto.FromPriceHistoryResult(result))
}

// @Summary Redirect to booking
// @Description Resolve a booking token and return a page that posts the booking form to the seller
// @Tags booking
// @Produce html
// @Param token query string true "Booking token from a search result"
// @Param currency query string false "Currency code"
// @Param airlineName query string false "Airline whose own site is preferred"
// @Param preferExpedia query bool false "Prefer Expedia over airline sites"
// @Param preferDeparting query bool false "Open the departing ticket of a separate-ticket option"
// @Param preferReturning query bool false "Open the returning ticket of a separate-ticket option"
// @Success 200 {string} string "auto-submitting booking form"
// @Failure 400 {string} string "error page"
// @Failure 404 {string} string "error page"
// @Router /v1/booking/redirect [get]
func (h *FlightHandler) BookingRedirect(c *gin.Context) {
	var req reqdto.BookingRedirectQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithErrorPage(c, http.StatusBadRequest, err, "Booking token is required", "Search again and pick a flight to book.")
		return
	}

	result, err := h.q.BookingRedirect(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidInput):
			abortWithErrorPage(c, http.StatusBadRequest, err, "Invalid booking request", rootMessage(err))
		case errs.Is(err, queries.ErrNoBookingOptions):
			abortWithErrorPage(c, http.StatusNotFound, err, "No booking options available", "This flight may no longer be available. Please try a new search.")
		case errs.Is(err, errs.ErrNotFound):
			abortWithErrorPage(c, http.StatusNotFound, err, "Booking redirect not available", "This option cannot be booked online. Please try a different option.")
		default:
			abortWithErrorPage(c, http.StatusInternalServerError, err, "Something went wrong", "Please try again in a moment.")
		}
		return
	}

	setOrigin(c, result.Origin)
	page := newBookingPage(result.Target, flight.NormalizeCurrency(req.Currency))
	if result.Target.URL == "" {
		renderPage(c, http.StatusOK, phoneTmpl, page)
		return
	}
	renderPage(c, http.StatusOK, redirectTmpl, page)
}
