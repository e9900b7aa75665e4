package components

import (
	"context"
	"log/slog"
	"time"

	"airease-backend/internal/domain/flight"
	"airease-backend/internal/infra/cache"
	"airease-backend/internal/infra/repository"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

const (
	maintenanceInterval = time.Minute
	// pending registrations are kept this long past expiry so late verify attempts still read "expired"
	verificationGrace = time.Hour
)

type MaintenanceParams struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Clock        clock.Clock
	Logger       *slog.Logger
	SearchCache  *cache.Memory[*queries.FlightSearch]
	OfferCache   *cache.Memory[flight.Offer]
	Verification *repository.MemoryVerificationStore
}

// RegisterMaintenance runs a background sweep of in-process state for the lifetime of the app.
func RegisterMaintenance(p MaintenanceParams) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(maintenanceInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						sweep(p)
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

func sweep(p MaintenanceParams) {
	searches := p.SearchCache.Purge()
	offers := p.OfferCache.Purge()

	var pending int
	if p.Verification != nil {
		pending = p.Verification.PurgeExpired(p.Clock.Now().Add(-verificationGrace))
	}

	if searches+offers+pending > 0 {
		p.Logger.Debug("Purged expired entries",
			slog.Int("searches", searches),
			slog.Int("offers", offers),
			slog.Int("verifications", pending),
		)
	}
}
