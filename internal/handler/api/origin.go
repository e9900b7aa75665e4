package api

import (
	"errors"
	"net/http"

	"airease-backend/internal/handler/httperr"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	HeaderDataSource = "X-Data-Source"
	HeaderDegraded   = "X-Data-Degraded"
)

// setOrigin exposes where the payload came from. Status codes never change on fallback.
func setOrigin(c *gin.Context, o queries.Origin) {
	c.Header(HeaderDataSource, string(o.DataSource))
	if o.Degraded {
		c.Header(HeaderDegraded, "true")
	}
}

// abortFlightError maps flight query failures. Provider failures never get here; they fall back to mock data.
func abortFlightError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, rootMessage(err), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Flight not found or expired", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// rootMessage returns the innermost error text, which carries the user-facing validation reason.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
