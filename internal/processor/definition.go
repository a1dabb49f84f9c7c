package processor

import (
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

const (
	DefaultName     = "ContextProcessor"
	DefaultPriority = 0
	MinPriority     = 0
	MaxPriority     = 100
)

// Definition is a single node in a processor chain. Nodes are immutable after
// construction apart from the once-only memo of the merged configuration.
type Definition struct {
	id     uuid.UUID
	parent *Definition

	name       *string
	priority   *int
	categories *interfaces.Categories
	process    ProcessFunc
	logger     interfaces.Logger

	// config is this node's own layer and is never nil.
	config map[string]any

	configOnce sync.Once
	computed   map[string]any
}

// Overrides lists the properties a child definition replaces. Nil fields are
// inherited from the parent chain.
type Overrides struct {
	Name       *string
	Priority   *int
	Categories *interfaces.Categories
	// Config is the child's own configuration layer; it is merged with the
	// ancestors' layers rather than replacing them.
	Config  map[string]any
	Process ProcessFunc
}

func (o Overrides) WithName(name string) Overrides {
	o.Name = &name
	return o
}

func (o Overrides) WithPriority(priority int) Overrides {
	o.Priority = &priority
	return o
}

// WithCategories accepts the same shapes as interfaces.NormalizeCategories.
func (o Overrides) WithCategories(raw any) Overrides {
	categories := interfaces.NormalizeCategories(raw)
	o.Categories = &categories
	return o
}

func (o Overrides) WithConfig(config map[string]any) Overrides {
	o.Config = config
	return o
}

func (o Overrides) WithProcess(fn ProcessFunc) Overrides {
	o.Process = fn
	return o
}

// Extend returns a new definition whose parent is d. The receiver is not
// modified. Override values are taken as-is, without validation.
func (d *Definition) Extend(overrides Overrides) *Definition {
	child := &Definition{
		id:      uuid.New(),
		parent:  d,
		process: overrides.Process,
		config:  cloneConfig(overrides.Config),
	}
	if overrides.Name != nil {
		name := *overrides.Name
		child.name = &name
	}
	if overrides.Priority != nil {
		priority := *overrides.Priority
		child.priority = &priority
	}
	if overrides.Categories != nil {
		categories := overrides.Categories.Clone()
		child.categories = &categories
	}
	return child
}

func (d *Definition) ID() uuid.UUID {
	return d.id
}

// Parent returns the definition d was extended from, nil for a root.
func (d *Definition) Parent() *Definition {
	return d.parent
}

// Depth is the number of ancestors above d.
func (d *Definition) Depth() int {
	depth := 0
	for node := d.parent; node != nil; node = node.parent {
		depth++
	}
	return depth
}

func (d *Definition) Name() string {
	for node := d; node != nil; node = node.parent {
		if node.name != nil {
			return *node.name
		}
	}
	return DefaultName
}

// Priority ranges from MinPriority to MaxPriority; higher runs sooner. The
// value is advisory, nothing in this package orders definitions.
func (d *Definition) Priority() int {
	for node := d; node != nil; node = node.parent {
		if node.priority != nil {
			return *node.priority
		}
	}
	return DefaultPriority
}

// Categories returns the categories set by d or, when d sets none, by its
// nearest ancestor that does. Categories from different layers are never
// combined.
func (d *Definition) Categories() interfaces.Categories {
	for node := d; node != nil; node = node.parent {
		if node.categories != nil {
			return node.categories.Clone()
		}
	}
	return interfaces.Categories{}
}

// Accepts reports whether any category of exec equals one of d's categories.
func (d *Definition) Accepts(exec interfaces.ExecutionContext) bool {
	for node := d; node != nil; node = node.parent {
		if node.categories != nil {
			return exec.Categories.Intersects(*node.categories)
		}
	}
	return false
}

// OwnConfig returns a copy of the configuration layer set on d itself.
func (d *Definition) OwnConfig() map[string]any {
	return cloneConfig(d.config)
}

// Config returns the configuration merged across the chain: layers are
// applied from the root down to d, each one overwriting only the keys it
// holds. The result is computed on first use and cached on d; callers must
// treat it as read-only.
func (d *Definition) Config() map[string]any {
	d.configOnce.Do(func() {
		d.computed = mergeChainConfig(d)
	})
	return d.computed
}

func mergeChainConfig(d *Definition) map[string]any {
	layers := make([]map[string]any, 0, d.Depth()+1)
	for node := d; node != nil; node = node.parent {
		layers = append(layers, node.config)
	}

	merged := make(map[string]any)
	for i := len(layers) - 1; i >= 0; i-- {
		maps.Copy(merged, layers[i])
	}
	return merged
}

func cloneConfig(config map[string]any) map[string]any {
	if config == nil {
		return map[string]any{}
	}
	return maps.Clone(config)
}

var _ interfaces.Processor = (*Definition)(nil)
