package components

import (
	"course-booking-api/internal/handler"
	"course-booking-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCourseHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
