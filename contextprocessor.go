package contextprocessor

import (
	"github.com/goliatone/go-contextprocessor/internal/logging/gologger"
	"github.com/goliatone/go-contextprocessor/internal/processor"
	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

// Definition exports the processor definition type.
type Definition = processor.Definition

// Overrides exports the property set accepted by Definition.Extend.
type Overrides = processor.Overrides

// ProcessFunc exports the asynchronous process hook signature.
type ProcessFunc = processor.ProcessFunc

// TransformFunc exports the synchronous transform signature used with Sync and Async.
type TransformFunc = processor.TransformFunc

// Option exports root definition options.
type Option = processor.Option

// Processor exports the contract external collectors consume.
type Processor = interfaces.Processor

// Categories exports the normalised category sequence.
type Categories = interfaces.Categories

// ExecutionContext exports the caller metadata used for selection.
type ExecutionContext = interfaces.ExecutionContext

// ContentModel exports the mutable payload type.
type ContentModel = interfaces.ContentModel

const (
	MinPriority = processor.MinPriority
	MaxPriority = processor.MaxPriority
)

// Base returns the process-wide root definition that plugins extend.
func Base() *Definition {
	return processor.Root()
}

// New validates cfg and builds a fresh root definition from it. When the
// logger feature is enabled the root, and every definition extended from it,
// logs through go-logger.
func New(cfg Config) (*Definition, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []processor.Option{
		processor.WithPriority(cfg.Processors.BasePriority),
		processor.WithConfig(cfg.BaseConfig()),
	}
	if cfg.Processors.BaseName != "" {
		opts = append(opts, processor.WithName(cfg.Processors.BaseName))
	}

	if cfg.Features.Logger {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, processor.WithLoggerProvider(provider))
	}

	return processor.New(opts...), nil
}

// Sync adapts a synchronous transform to the asynchronous process contract.
func Sync(fn TransformFunc) ProcessFunc {
	return processor.Sync(fn)
}

// Async runs a transform on its own goroutine.
func Async(fn TransformFunc) ProcessFunc {
	return processor.Async(fn)
}

// NormalizeCategories accepts a single tag, a list, or nothing.
func NormalizeCategories(raw any) Categories {
	return interfaces.NormalizeCategories(raw)
}

// NewExecutionContext builds an execution context from a loose mapping.
func NewExecutionContext(raw map[string]any) ExecutionContext {
	return interfaces.NewExecutionContext(raw)
}

// WithLogger exports processor.WithLogger for hosts that build roots directly.
func WithLogger(logger interfaces.Logger) Option {
	return processor.WithLogger(logger)
}

// NewDefinition builds a root definition from options without a Config.
func NewDefinition(opts ...Option) *Definition {
	return processor.New(opts...)
}
