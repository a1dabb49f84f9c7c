package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

const (
	rootModule      = "contextprocessor"
	processorModule = "contextprocessor.processor"
)

const (
	fieldProcessorName       = "processor"
	fieldProcessorID         = "processor_id"
	fieldProcessorCategories = "categories"
	fieldProcessorPriority   = "priority"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ProcessorLogger returns the logger namespace reserved for processor definitions.
func ProcessorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, processorModule)
}

// WithProcessorContext enriches logger with the identifying fields of a
// processor definition. Blank values are skipped.
func WithProcessorContext(logger interfaces.Logger, name, id string, priority int, categories []string) interfaces.Logger {
	fields := map[string]any{
		fieldProcessorPriority: priority,
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		fields[fieldProcessorName] = trimmed
	}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		fields[fieldProcessorID] = trimmed
	}
	if len(categories) > 0 {
		fields[fieldProcessorCategories] = strings.Join(categories, ",")
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
