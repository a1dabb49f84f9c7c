package processor

import (
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-contextprocessor/internal/logging"
	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

// Option configures a root definition built with New.
type Option func(*Definition)

// New builds a root definition: no parent, default name and priority, no
// categories and a no-op process.
func New(opts ...Option) *Definition {
	name := DefaultName
	priority := DefaultPriority
	categories := interfaces.Categories{}

	def := &Definition{
		id:         uuid.New(),
		name:       &name,
		priority:   &priority,
		categories: &categories,
		config:     map[string]any{},
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(def)
		}
	}
	return def
}

var root = sync.OnceValue(func() *Definition {
	return New()
})

// Root returns the process-wide base definition.
func Root() *Definition {
	return root()
}

// WithLogger injects the logger used by the definition and every descendant
// that does not set its own. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(d *Definition) {
		if logger == nil {
			d.logger = logging.NoOp()
			return
		}
		d.logger = logger
	}
}

// WithLoggerProvider resolves the processor module logger from provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *Definition) {
		d.logger = logging.ProcessorLogger(provider)
	}
}

func WithName(name string) Option {
	return func(d *Definition) {
		d.name = &name
	}
}

func WithPriority(priority int) Option {
	return func(d *Definition) {
		d.priority = &priority
	}
}

// WithConfig sets the root configuration layer.
func WithConfig(config map[string]any) Option {
	return func(d *Definition) {
		d.config = cloneConfig(config)
	}
}
