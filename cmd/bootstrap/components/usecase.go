package components

import (
	"resource-form/internal/usecase/resourceform"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		resourceform.NewFormUseCase,
	),
)
