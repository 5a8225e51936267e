package components

import (
	"context"
	"log/slog"

	"course-booking-api/internal/infra/filestore"
	"course-booking-api/internal/infra/mongostore"
	"course-booking-api/internal/infra/postgres"
	"course-booking-api/internal/pkg/config"
	"course-booking-api/internal/seed"
	"course-booking-api/internal/usecase/commands"
	"course-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

// Stores bundles the backend-specific repository implementations behind the
// usecase-layer ports. Which backend fills it is decided once at startup
// from STORE_BACKEND; a store that cannot be reached is fatal.
type Stores struct {
	Catalog     commands.CatalogRepository
	CatalogRead queries.LessonReadStore
	Orders      commands.OrderRepository
	OrdersRead  queries.OrderReadStore
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
		func(s Stores) commands.CatalogRepository { return s.Catalog },
		func(s Stores) queries.LessonReadStore { return s.CatalogRead },
		func(s Stores) commands.OrderRepository { return s.Orders },
		func(s Stores) queries.OrderReadStore { return s.OrdersRead },
	),
)

func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		return newPostgresStores(lc, cfg, logger)
	case config.BackendMongo:
		return newMongoStores(lc, cfg, logger)
	default:
		return newFileStores(cfg, logger)
	}
}

func newPostgresStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	pool, cleanup, err := postgres.Connect(cfg.DB)
	if err != nil {
		return Stores{}, err
	}

	if err := postgres.EnsureSchema(context.Background(), pool); err != nil {
		cleanup()
		return Stores{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	lessons := postgres.NewLessonRepository(pool, logger)
	orders := postgres.NewOrderRepository(pool, logger)
	return Stores{
		Catalog:     lessons,
		CatalogRead: lessons,
		Orders:      orders,
		OrdersRead:  orders,
	}, nil
}

func newMongoStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	db, cleanup, err := mongostore.Connect(cfg.Mongo)
	if err != nil {
		return Stores{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	lessons := mongostore.NewLessonRepository(db, logger)
	orders := mongostore.NewOrderRepository(db, logger)
	return Stores{
		Catalog:     lessons,
		CatalogRead: lessons,
		Orders:      orders,
		OrdersRead:  orders,
	}, nil
}

func newFileStores(cfg config.Config, logger *slog.Logger) (Stores, error) {
	// Flat-file variant keeps the catalog in memory, seeded at startup.
	catalog := filestore.NewCatalogStore(seed.Lessons(), logger)

	orders, err := filestore.NewOrderStore(cfg.File.OrdersPath, logger)
	if err != nil {
		return Stores{}, err
	}

	return Stores{
		Catalog:     catalog,
		CatalogRead: catalog,
		Orders:      orders,
		OrdersRead:  orders,
	}, nil
}
