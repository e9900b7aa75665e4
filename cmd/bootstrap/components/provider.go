package components

import (
	"log/slog"

	"airease-backend/internal/domain/flight"
	"airease-backend/internal/infra/cache"
	"airease-backend/internal/infra/mockdata"
	"airease-backend/internal/infra/serpapi"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/pkg/config"
	"airease-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		NewSearchCache,
		NewOfferCache,
		NewFlightQueries,
	),
)

func NewSearchCache(cfg config.Config, clk clock.Clock) *cache.Memory[*queries.FlightSearch] {
	return cache.NewMemory(cfg.Provider.SearchCacheTTL, clk, cloneSearch)
}

func NewOfferCache(cfg config.Config, clk clock.Clock) *cache.Memory[flight.Offer] {
	return cache.NewMemory[flight.Offer](cfg.Provider.SearchCacheTTL, clk, nil)
}

// cloneSearch copies the offer slice so sorting a cached result cannot reorder it for other readers.
func cloneSearch(s *queries.FlightSearch) *queries.FlightSearch {
	if s == nil {
		return nil
	}
	out := *s
	out.Offers = append([]flight.Offer(nil), s.Offers...)
	return &out
}

// NewFlightQueries fixes the strategy once at startup. Without an API key only mock data is served.
func NewFlightQueries(
	cfg config.Config,
	searchCache *cache.Memory[*queries.FlightSearch],
	offerCache *cache.Memory[flight.Offer],
	logger *slog.Logger,
) queries.FlightQueries {
	mock := mockdata.NewSource()

	if !cfg.Provider.ProviderEnabled() {
		logger.Warn("SerpAPI disabled, serving mock flight data")
		return queries.NewFlightQueries(queries.StrategyMock, nil, mock, searchCache, offerCache, logger)
	}

	client := serpapi.NewClient(serpapi.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Timeout: cfg.Provider.Timeout,
	}, logger)
	logger.Info("SerpAPI enabled", slog.Duration("timeout", cfg.Provider.Timeout))

	return queries.NewFlightQueries(queries.StrategyProvider, serpapi.NewSource(client), mock, searchCache, offerCache, logger)
}
