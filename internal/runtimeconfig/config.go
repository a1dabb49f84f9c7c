package runtimeconfig

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

var ErrLoggingProviderRequired = errors.New("contextprocessor config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("contextprocessor config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("contextprocessor config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("contextprocessor config: logging format is invalid")

// ErrBasePriorityOutOfRange guards the priority given to a configured root definition.
var ErrBasePriorityOutOfRange = errors.New("contextprocessor config: base priority must be between 0 and 100")

// Config aggregates feature flags and settings for building a root definition.
type Config struct {
	Logging    LoggingConfig
	Processors ProcessorsConfig
	Features   Features
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// ProcessorsConfig seeds the root definition. A blank BaseName keeps the default.
type ProcessorsConfig struct {
	BaseName     string
	BasePriority int
	BaseConfig   map[string]any
}

// Features toggles optional behaviour.
type Features struct {
	Logger bool
}

func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
		Processors: ProcessorsConfig{
			BaseName:     "ContextProcessor",
			BasePriority: 0,
			BaseConfig:   map[string]any{},
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Processors.BasePriority < 0 || cfg.Processors.BasePriority > 100 {
		return fmt.Errorf("%w: %d", ErrBasePriorityOutOfRange, cfg.Processors.BasePriority)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// BaseConfig returns a copy of the root configuration layer.
func (cfg Config) BaseConfig() map[string]any {
	if cfg.Processors.BaseConfig == nil {
		return map[string]any{}
	}
	return maps.Clone(cfg.Processors.BaseConfig)
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
