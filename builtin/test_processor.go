package builtin

import (
	"context"

	"github.com/goliatone/go-contextprocessor/internal/processor"
	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

const (
	TestName     = "Text ContextProcessor"
	TestCategory = "test"
	TestValue    = "Test Property 1!"
)

// Test is the smallest useful processor: it marks the model so hosts can check
// their wiring end to end.
func Test(base *processor.Definition) *processor.Definition {
	return base.Extend(processor.Overrides{}.
		WithName(TestName).
		WithCategories([]string{TestCategory}).
		WithProcess(processor.Sync(func(_ context.Context, _ *processor.Definition, _ interfaces.ExecutionContext, model interfaces.ContentModel) error {
			model["test"] = TestValue
			return nil
		})))
}
