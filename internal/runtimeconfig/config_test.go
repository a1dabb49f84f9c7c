package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-contextprocessor/internal/runtimeconfig"
)

func TestConfigValidate_DefaultsAreValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_IgnoresLoggingWhenFeatureDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsBasePriorityOutOfRange(t *testing.T) {
	for _, priority := range []int{-1, 101} {
		cfg := runtimeconfig.DefaultConfig()
		cfg.Processors.BasePriority = priority

		if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrBasePriorityOutOfRange) {
			t.Fatalf("priority %d: expected ErrBasePriorityOutOfRange, got %v", priority, err)
		}
	}
}

func TestConfigBaseConfigReturnsCopy(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Processors.BaseConfig = map[string]any{"a": 1}

	copied := cfg.BaseConfig()
	copied["a"] = 2

	if cfg.Processors.BaseConfig["a"] != 1 {
		t.Fatal("expected BaseConfig to return a copy")
	}

	cfg.Processors.BaseConfig = nil
	if got := cfg.BaseConfig(); got == nil {
		t.Fatal("expected empty map for nil base config")
	}
}
