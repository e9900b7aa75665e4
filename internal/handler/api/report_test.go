//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"airease-backend/internal/domain/report"
	"airease-backend/internal/handler/api"
	resdto "airease-backend/internal/handler/dto/response"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/pkg/ptr"
	"airease-backend/internal/usecase/commands"
	"airease-backend/internal/usecase/queries"
	"airease-backend/tests/common/builder"
	"airease-backend/tests/common/httptest"
	"airease-backend/tests/common/testutil"
	commandsmock "airease-backend/tests/mock/commands"
	queriesmock "airease-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReportCommands
	mockQueries  *queriesmock.MockReportQueries
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReportCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	h := api.NewReportHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/reports/categories", h.Categories)
	s.router.POST("/reports", h.Create)
	s.router.GET("/reports", h.List)
	s.router.GET("/reports/:id", h.Get)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestCategories() {
	s.mockQueries.EXPECT().Categories().Return([]queries.CategoryView{
		{Value: "price_error", Label: "Price Error"},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/categories", nil, "")

	var response resdto.CategoriesResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Categories, 1)
	s.Equal("Price Error", response.Categories[0].Label)
}

func (s *ReportHandlerTestSuite) TestCreate() {
	b := builder.NewReportBuilder()
	reqBody := b.BuildDTO()
	view := b.BuildReadModel()

	s.Run("success: returns the stored report", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(&commands.CreateReportResult{ReportID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reports", reqBody, "")

		var response resdto.ReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Price Error", response.CategoryLabel)
		s.Equal("pending", response.Status)
		s.Equal("NH 10", response.FlightInfo["flightNumber"])
	})

	s.Run("error: 400 on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing content", mutate: testutil.Field("content", nil)},
			{name: "missing category", mutate: testutil.Field("category", nil)},
			{name: "invalid email", mutate: testutil.Field("userEmail", "nope")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reports", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: unknown category is a 400 with the reason", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(report.ErrInvalidCategory, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reports", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, report.ErrInvalidCategory.Error())
	})

	s.Run("error: storage failure is a 500", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reports", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to submit report")
	})
}

func (s *ReportHandlerTestSuite) TestList() {
	view := builder.NewReportBuilder().BuildReadModel()

	s.Run("success: forwards filters and paging", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReportFilter{
			UserEmail: ptr.NonEmpty("reporter@example.com"),
			Category:  ptr.NonEmpty("price_error"),
			Limit:     10,
			Offset:    5,
		}).Return([]queries.ReportView{*view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reports?userEmail=reporter@example.com&category=price_error&limit=10&offset=5", nil, "")

		var response []resdto.ReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.ID, response[0].ID)
	})

	s.Run("success: empty result is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReportFilter{}).Return([]queries.ReportView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: limit above 200 is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports?limit=201", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: invalid status filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(report.ErrInvalidStatus, errs.ErrInvalidInput)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports?status=unknown", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, report.ErrInvalidStatus.Error())
	})
}

func (s *ReportHandlerTestSuite) TestGet() {
	s.Run("error: malformed id is a 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Report not found")
	})

	s.Run("error: unknown id is a 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrReportNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Report not found")
	})
}
