package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, timeout, echo endpoint, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
	Echo   EchoConfig
	Form   FormConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,HX-Request,HX-Target,HX-Trigger"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type EchoConfig struct {
	URL string `envconfig:"ECHO_URL" default:"https://httpbin.org/post"`
	// 0 leaves the request bounded only by the caller's context
	Timeout time.Duration `envconfig:"ECHO_TIMEOUT" default:"0s"`
}

type FormConfig struct {
	Role          string        `envconfig:"FORM_ROLE" default:"admin"`
	SessionTTL    time.Duration `envconfig:"FORM_SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"FORM_SWEEP_INTERVAL" default:"1m"`
	// 0 leaves the session store unbounded
	MaxSessions int `envconfig:"FORM_MAX_SESSIONS" default:"10000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Echo: EchoConfig{
			URL:     "http://localhost:8081/post",
			Timeout: 5 * time.Second,
		},
		Form: FormConfig{
			Role:          "admin",
			SessionTTL:    30 * time.Minute,
			SweepInterval: time.Minute,
			MaxSessions:   100,
		},
	}
}
