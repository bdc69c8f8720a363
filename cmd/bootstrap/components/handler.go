package components

import (
	"resource-form/internal/handler"
	"resource-form/internal/handler/api"
	"resource-form/internal/handler/middleware"
	"resource-form/internal/handler/page"
	"resource-form/internal/handler/view"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		view.Templates,
		api.NewResourceFormHandler,
		page.NewResourceFormHandler,
		middleware.NewRoleMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
