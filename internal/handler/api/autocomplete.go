package api

import (
	"net/http"

	reqdto "airease-backend/internal/handler/dto/request"
	resdto "airease-backend/internal/handler/dto/response"
	"airease-backend/internal/handler/httperr"
	"airease-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AutocompleteHandler struct {
	q queries.FlightQueries
}

func NewAutocompleteHandler(q queries.FlightQueries) *AutocompleteHandler {
	return &AutocompleteHandler{q: q}
}

// @Summary Location autocomplete
// @Description Suggest cities, regions and airports for a partial query
// @Tags autocomplete
// @Produce json
// @Param q query string true "Search text"
// @Param gl query string false "Country code"
// @Param hl query string false "Language code"
// @Param excludeRegions query bool false "Drop region suggestions"
// @Success 200 {object} response.SuggestionsResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/autocomplete/locations [get]
func (h *AutocompleteHandler) Locations(c *gin.Context) {
	h.suggest(c, false)
}

// @Summary Airport autocomplete
// @Description Like locations, with regions always excluded
// @Tags autocomplete
// @Produce json
// @Param q query string true "Search text"
// @Param gl query string false "Country code"
// @Param hl query string false "Language code"
// @Success 200 {object} response.SuggestionsResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/autocomplete/airports [get]
func (h *AutocompleteHandler) Airports(c *gin.Context) {
	h.suggest(c, true)
}

func (h *AutocompleteHandler) suggest(c *gin.Context, airportsOnly bool) {
	var req reqdto.AutocompleteQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter q is required", nil)
		return
	}
	sq := req.ToSuggestQuery()
	if airportsOnly {
		sq.ExcludeRegions = true
	}

	result, err := h.q.Suggest(c.Request.Context(), sq)
	if err != nil {
		abortFlightError(c, err)
		return
	}

	setOrigin(c, result.Origin)
	c.JSON(http.StatusOK, resdto.FromSuggestResult(result))
}

// @Summary Search airports
// @Description Search the airport directory by IATA code, airport name or city
// @Tags airports
// @Produce json
// @Param q query string true "Search text, at least 2 characters"
// @Param limit query int false "Maximum results (1-50, default 10)"
// @Success 200 {array} response.AirportResult
// @Failure 400 {object} httperr.Response
// @Router /v1/airports/search [get]
func (h *AutocompleteHandler) SearchAirports(c *gin.Context) {
	var req reqdto.DirectorySearchQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter q is required", nil)
		return
	}

	airports, err := h.q.SearchAirports(req.ToDirectoryQuery())
	if err != nil {
		abortFlightError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAirports(airports))
}

// @Summary Search cities
// @Description Search the cities served by the airport directory
// @Tags cities
// @Produce json
// @Param q query string true "Search text, at least 2 characters"
// @Param limit query int false "Maximum results (1-20, default 10)"
// @Success 200 {array} response.CityResult
// @Failure 400 {object} httperr.Response
// @Router /v1/cities/search [get]
func (h *AutocompleteHandler) SearchCities(c *gin.Context) {
	var req reqdto.DirectorySearchQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter q is required", nil)
		return
	}

	cities, err := h.q.SearchCities(req.ToDirectoryQuery())
	if err != nil {
		abortFlightError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCities(cities))
}
