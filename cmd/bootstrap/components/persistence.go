package components

import (
	"log/slog"

	"airease-backend/internal/infra/repository"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/usecase/commands"
	"airease-backend/internal/usecase/queries"
	"airease-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Postgres backs users and reports when a pool exists; otherwise the in-memory repositories do.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUserStore,
		func(s UserStore) commands.UserRepository { return s },
		func(s UserStore) queries.UserReadStore { return s },
		NewReportStore,
		func(s ReportStore) commands.ReportRepository { return s },
		func(s ReportStore) queries.ReportReadStore { return s },
		NewVerificationStore,
	),
	fx.Invoke(RegisterMaintenance),
)

type UserStore interface {
	commands.UserRepository
	queries.UserReadStore
}

type ReportStore interface {
	commands.ReportRepository
	queries.ReportReadStore
}

func NewUserStore(pool *pgxpool.Pool) UserStore {
	if pool == nil {
		return repository.NewMemoryUserRepository()
	}
	return repository.NewUserRepository(pool)
}

func NewReportStore(pool *pgxpool.Pool) ReportStore {
	if pool == nil {
		return repository.NewMemoryReportRepository()
	}
	return repository.NewReportRepository(pool)
}

// VerificationStores exposes the memory store separately so the purge loop can reach it.
type VerificationStores struct {
	fx.Out

	Store  shared.VerificationStore
	Memory *repository.MemoryVerificationStore
}

func NewVerificationStore(client *redis.Client, clk clock.Clock, logger *slog.Logger) VerificationStores {
	if client != nil {
		logger.Info("verification codes stored in redis")
		return VerificationStores{Store: repository.NewRedisVerificationStore(client, clk)}
	}
	mem := repository.NewMemoryVerificationStore()
	return VerificationStores{Store: mem, Memory: mem}
}
