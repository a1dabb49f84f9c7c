package contextprocessor_test

import (
	"errors"
	"testing"

	contextprocessor "github.com/goliatone/go-contextprocessor"
)

func TestConfigValidateLoggerFeatureRequiresProvider(t *testing.T) {
	cfg := contextprocessor.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, contextprocessor.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := contextprocessor.DefaultConfig()
	cfg.Processors.BasePriority = 200

	if _, err := contextprocessor.New(cfg); !errors.Is(err, contextprocessor.ErrBasePriorityOutOfRange) {
		t.Fatalf("expected ErrBasePriorityOutOfRange, got %v", err)
	}
}

func TestNewBuildsConfiguredRoot(t *testing.T) {
	cfg := contextprocessor.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "error"
	cfg.Processors.BaseName = "SiteProcessor"
	cfg.Processors.BasePriority = 10
	cfg.Processors.BaseConfig = map[string]any{"locale": "en"}

	root, err := contextprocessor.New(cfg)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if root.Name() != "SiteProcessor" || root.Priority() != 10 {
		t.Fatalf("unexpected root %q/%d", root.Name(), root.Priority())
	}
	if root.Config()["locale"] != "en" {
		t.Fatalf("expected base config, got %v", root.Config())
	}
	if root == contextprocessor.Base() {
		t.Fatal("expected New to build a fresh root")
	}
}
