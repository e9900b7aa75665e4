package api

import (
	"net/http"

	reqdto "airease-backend/internal/handler/dto/request"
	resdto "airease-backend/internal/handler/dto/response"
	"airease-backend/internal/handler/httperr"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/pkg/ptr"
	"airease-backend/internal/usecase/commands"
	"airease-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	cmds commands.ReportCommands
	q    queries.ReportQueries
}

func NewReportHandler(cmds commands.ReportCommands, q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{cmds: cmds, q: q}
}

// @Summary Report categories
// @Tags reports
// @Produce json
// @Success 200 {object} resdto.CategoriesResponse
// @Router /api/reports/categories [get]
func (h *ReportHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CategoriesResponse{Categories: h.q.Categories()})
}

// @Summary Submit feedback report
// @Description Store a report about wrong flight data. The admin is notified on a best-effort basis.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReportRequest true "Report"
// @Success 200 {object} resdto.ReportResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reports/ [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req reqdto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, errs.ErrInvalidInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, rootMessage(err), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to submit report", nil)
		return
	}

	h.respondWithReport(c, result.ReportID)
}

// @Summary List feedback reports
// @Tags reports
// @Produce json
// @Param userEmail query string false "Reporter email"
// @Param category query string false "Category"
// @Param status query string false "Status"
// @Param limit query int false "Max items (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ReportResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reports/ [get]
func (h *ReportHandler) List(c *gin.Context) {
	var req reqdto.ListReportsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	items, err := h.q.List(c.Request.Context(), queries.ReportFilter{
		UserEmail: ptr.NonEmpty(req.UserEmail),
		Category:  ptr.NonEmpty(req.Category),
		Status:    ptr.NonEmpty(req.Status),
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
	if err != nil {
		if errs.Is(err, errs.ErrInvalidInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, rootMessage(err), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	res, err := resdto.FromReportList(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get feedback report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} resdto.ReportResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reports/{id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Report not found", nil)
		return
	}
	h.respondWithReport(c, id)
}

func (h *ReportHandler) respondWithReport(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrReportNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Report not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load report", nil)
		return
	}

	res, err := resdto.FromReportView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load report", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
