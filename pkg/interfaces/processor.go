package interfaces

import (
	"context"
	"encoding/json"

	"github.com/goliatone/go-contextprocessor/pkg/completion"
)

// ContentModel is the mutable payload a processor transforms. It is passed by
// reference; processors read and write fields in place.
type ContentModel map[string]any

// ExecutionContext carries caller metadata. Only Categories takes part in
// processor selection; everything else is kept in Values untouched.
type ExecutionContext struct {
	Categories Categories
	Values     map[string]any
}

const executionCategoriesKey = "categories"

// NewExecutionContext builds an execution context from a loose mapping,
// normalising the "categories" entry.
func NewExecutionContext(raw map[string]any) ExecutionContext {
	exec := ExecutionContext{
		Categories: Categories{},
		Values:     map[string]any{},
	}
	for key, value := range raw {
		if key == executionCategoriesKey {
			exec.Categories = NormalizeCategories(value)
			continue
		}
		exec.Values[key] = value
	}
	return exec
}

// Value returns a metadata entry other than categories.
func (e ExecutionContext) Value(key string) (any, bool) {
	if e.Values == nil {
		return nil, false
	}
	value, ok := e.Values[key]
	return value, ok
}

func (e *ExecutionContext) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = NewExecutionContext(raw)
	return nil
}

// Processor is the contract a registry or collector relies on: filter with
// Accepts, order by Priority (higher first), then Process and wait on the
// returned future.
type Processor interface {
	Name() string
	Priority() int
	Categories() Categories
	Accepts(exec ExecutionContext) bool
	Config() map[string]any
	Process(ctx context.Context, exec ExecutionContext, model ContentModel) completion.Future
}
