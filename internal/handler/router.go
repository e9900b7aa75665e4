package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"airease-backend/internal/handler/api"
	"airease-backend/internal/handler/middleware"
	"airease-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers is filled by fx.
type Handlers struct {
	fx.In

	Auth         *api.AuthHandler
	Flight       *api.FlightHandler
	Autocomplete *api.AutocompleteHandler
	Insights     *api.InsightsHandler
	Report       *api.ReportHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/v1")
	{
		flights := v1.Group("/flights")
		addRoutes(flights, []route{
			{Method: http.MethodGet, Path: "/search", Handler: h.Flight.Search, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Flight.Detail},
			{Method: http.MethodGet, Path: "/:id/price-history", Handler: h.Flight.PriceHistory},
		})

		addRoutes(v1.Group("/airports"), []route{
			{Method: http.MethodGet, Path: "/search", Handler: h.Autocomplete.SearchAirports},
		})
		addRoutes(v1.Group("/cities"), []route{
			{Method: http.MethodGet, Path: "/search", Handler: h.Autocomplete.SearchCities},
		})

		autocomplete := v1.Group("/autocomplete")
		addRoutes(autocomplete, []route{
			{Method: http.MethodGet, Path: "/locations", Handler: h.Autocomplete.Locations},
			{Method: http.MethodGet, Path: "/airports", Handler: h.Autocomplete.Airports},
		})

		insights := v1.Group("/price-insights")
		addRoutes(insights, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Insights.Insights},
			{Method: http.MethodGet, Path: "/compare", Handler: h.Insights.Compare},
		})

		addRoutes(v1.Group("/booking"), []route{
			{Method: http.MethodGet, Path: "/options", Handler: h.Flight.BookingOptions},
			{Method: http.MethodGet, Path: "/redirect", Handler: h.Flight.BookingRedirect},
		})
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/v1/auth")
		{
			limited := []gin.HandlerFunc{middleware.RateLimit(limiter)}
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: limited},
				{Method: http.MethodPost, Path: "/verify-email", Handler: h.Auth.VerifyEmail, Mw: limited},
				{Method: http.MethodPost, Path: "/resend-verification", Handler: h.Auth.ResendVerification, Mw: limited},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		reports := apiGroup.Group("/reports")
		addRoutes(reports, []route{
			{Method: http.MethodGet, Path: "/categories", Handler: h.Report.Categories},
			{Method: http.MethodPost, Path: "/", Handler: h.Report.Create},
			{Method: http.MethodGet, Path: "/", Handler: h.Report.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Report.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
