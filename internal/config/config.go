// Package config loads the process-wide runtime configuration from the
// environment. The configuration is parsed once at startup and treated as
// immutable afterward; every component that needs it receives it explicitly.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Default public renderer endpoints, used when no server is configured.
const (
	DefaultPlantUMLServer = "http://www.plantuml.com/plantuml"
	DefaultKrokiServer    = "https://kroki.io"
)

// Config holds the runtime configuration for the UML MCP server.
//
// Local renderers are opt-in: a family only gets a local candidate when its
// use-local flag is set and its local base URL is non-empty. The remote
// (hosted) endpoint is always available as the final fallback.
type Config struct {
	// PlantUMLServer is the remote PlantUML-protocol base URL.
	PlantUMLServer string `env:"PLANTUML_SERVER" envDefault:"http://www.plantuml.com/plantuml"`

	// UseLocalPlantUML enables the self-hosted PlantUML server candidate.
	UseLocalPlantUML bool `env:"USE_LOCAL_PLANTUML"`

	// LocalPlantUMLServer is the self-hosted PlantUML base URL, typically a
	// Docker container on localhost.
	LocalPlantUMLServer string `env:"LOCAL_PLANTUML_SERVER" envDefault:"http://localhost:8080"`

	// KrokiServer is the remote Kroki-protocol base URL.
	KrokiServer string `env:"KROKI_SERVER" envDefault:"https://kroki.io"`

	// UseLocalKroki enables the self-hosted Kroki server candidate.
	UseLocalKroki bool `env:"USE_LOCAL_KROKI"`

	// LocalKrokiServer is the self-hosted Kroki base URL.
	LocalKrokiServer string `env:"LOCAL_KROKI_SERVER" envDefault:"http://localhost:8000"`

	// OutputDir is the default directory for persisted diagram artifacts,
	// used when a tool call does not name one.
	OutputDir string `env:"UML_MCP_OUTPUT_DIR" envDefault:"output"`

	// LogLevel gates verbose logging when set to "debug".
	LogLevel string `env:"UML_MCP_LOG_LEVEL"`
}

// FromEnv parses the configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}
