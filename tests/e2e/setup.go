//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"resource-form/cmd/bootstrap"
	"resource-form/cmd/bootstrap/components"
	"resource-form/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const httpbinPort = "8080/tcp"

var (
	httpbinContainerOnce sync.Once
	httpbinTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config) {
	httpbinInfo := startContainers(t)

	router, cfg, app := buildE2EApp(echoURL(httpbinInfo))
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready",
		"httpbin_host", httpbinInfo.Host,
		"httpbin_port", httpbinInfo.Port.Port())

	return router, cfg
}

func echoURL(info ContainerInfo) string {
	return fmt.Sprintf("http://%s:%s/post", info.Host, info.Port.Port())
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startHTTPBinContainerOnce(t)

	info, err := getContainerHostPort(httpbinTestContainer, httpbinPort)
	require.NoError(t, err, "failed to read httpbin container address")

	return info
}

// ------------------------------------------------------------
// App built the way main builds it, with test config
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(echoURL string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(echoURL)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app started without a router")
	}

	return router, cfg, app
}

func createTestConfig(echoURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Echo.URL = echoURL
	return testConfig
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Start the httpbin echo service once and share it
// ------------------------------------------------------------
func startHTTPBinContainerOnce(t *testing.T) {
	httpbinContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "mccutchen/go-httpbin:v2.15.0",
			ExposedPorts: []string{httpbinPort},
			WaitingFor: wait.ForHTTP("/status/200").
				WithPort(nat.Port(httpbinPort)).
				WithStartupTimeout(60 * time.Second),
			Name:   "httpbin-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		httpbinTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start httpbin container")

		t.Cleanup(func() {
			if httpbinTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := httpbinTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate httpbin container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}
