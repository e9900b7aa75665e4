package api

import (
	"net/http"
	"strings"

	reqdto "airease-backend/internal/handler/dto/request"
	resdto "airease-backend/internal/handler/dto/response"
	"airease-backend/internal/handler/httperr"
	"airease-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	q queries.FlightQueries
}

func NewInsightsHandler(q queries.FlightQueries) *InsightsHandler {
	return &InsightsHandler{q: q}
}

// @Summary Price insights
// @Description Price level, typical range and history for a route and date
// @Tags insights
// @Produce json
// @Param from query string true "Departure airport code or city"
// @Param to query string true "Arrival airport code or city"
// @Param outboundDate query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param currency query string false "Currency code"
// @Param adults query int false "Adults (1-9)"
// @Param travelClass query string false "economy, premium, business or first"
// @Success 200 {object} resdto.InsightsResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/price-insights [get]
func (h *InsightsHandler) Insights(c *gin.Context) {
	var req reqdto.PriceInsightsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.q.Insights(c.Request.Context(), req.ToParams())
	if err != nil {
		abortFlightError(c, err)
		return
	}

	setOrigin(c, result.Origin)
	c.JSON(http.StatusOK, resdto.FromInsightResult(result))
}

// @Summary Compare dates
// @Description Compare prices across 2 to 5 departure dates
// @Tags insights
// @Produce json
// @Param from query string true "Departure airport code or city"
// @Param to query string true "Arrival airport code or city"
// @Param dates query string true "Comma-separated dates (YYYY-MM-DD)"
// @Param currency query string false "Currency code"
// @Success 200 {object} resdto.CompareResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/price-insights/compare [get]
func (h *InsightsHandler) Compare(c *gin.Context) {
	var req reqdto.CompareDatesQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var dates []string
	for _, d := range strings.Split(req.Dates, ",") {
		if d = strings.TrimSpace(d); d != "" {
			dates = append(dates, d)
		}
	}

	result, err := h.q.CompareDates(c.Request.Context(), queries.CompareParams{
		From:     req.From,
		To:       req.To,
		Dates:    dates,
		Currency: req.Currency,
	})
	if err != nil {
		abortFlightError(c, err)
		return
	}

	setOrigin(c, result.Origin)
	c.JSON(http.StatusOK, resdto.FromCompareResult(result))
}
