package bootstrap

import (
	"resource-form/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
