package components

import (
	"course-booking-api/internal/pkg/clock"
	"course-booking-api/internal/usecase/commands"
	"course-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewOrderUseCase,
		commands.NewCatalogUseCase,
		queries.NewLessonQueries,
		queries.NewOrderQueries,
	),
)
