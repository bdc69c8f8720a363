package components

import (
	"context"
	"log/slog"

	"resource-form/internal/infra/echo"
	"resource-form/internal/infra/session"
	"resource-form/internal/pkg/clock"
	"resource-form/internal/pkg/config"
	"resource-form/internal/usecase/resourceform"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewEchoClient,
			fx.As(new(resourceform.EchoClient)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(new(resourceform.SessionStore)),
		),
	),
)

func NewEchoClient(cfg config.Config, logger *slog.Logger) *echo.Client {
	return echo.NewClient(cfg.Echo.URL, cfg.Echo.Timeout, logger)
}

// NewSessionStore also runs the expiry sweeper for the lifetime of the app.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) *session.Store[*resourceform.Session] {
	store := session.NewStore[*resourceform.Session](clk, cfg.Form.SessionTTL, logger,
		session.WithMaxEntries(cfg.Form.MaxSessions),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				store.Run(ctx, cfg.Form.SweepInterval)
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

	return store
}
