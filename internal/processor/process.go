package processor

import (
	"context"

	"github.com/goliatone/go-contextprocessor/internal/logging"
	"github.com/goliatone/go-contextprocessor/pkg/completion"
	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

// ProcessFunc transforms model in place. def is the definition Process was
// called on, so overrides inherited from an ancestor still see the caller's
// merged configuration. The returned future may already be settled.
type ProcessFunc func(ctx context.Context, def *Definition, exec interfaces.ExecutionContext, model interfaces.ContentModel) completion.Future

// TransformFunc is the synchronous shape most processors are written in.
type TransformFunc func(ctx context.Context, def *Definition, exec interfaces.ExecutionContext, model interfaces.ContentModel) error

// Sync runs fn inline and returns an already settled future.
func Sync(fn TransformFunc) ProcessFunc {
	return func(ctx context.Context, def *Definition, exec interfaces.ExecutionContext, model interfaces.ContentModel) completion.Future {
		if fn == nil {
			return completion.Completed(completion.Success())
		}
		if err := fn(ctx, def, exec, model); err != nil {
			return completion.Completed(completion.Failure(err))
		}
		return completion.Completed(completion.Success())
	}
}

// Async runs fn on its own goroutine and returns a pending future.
func Async(fn TransformFunc) ProcessFunc {
	return func(ctx context.Context, def *Definition, exec interfaces.ExecutionContext, model interfaces.ContentModel) completion.Future {
		if fn == nil {
			return completion.Completed(completion.Success())
		}
		return completion.Go(func() error {
			return fn(ctx, def, exec, model)
		})
	}
}

// Process applies the nearest process override in the chain. Without one it
// settles immediately and leaves model untouched. Failures from the override,
// including panics, settle the future as a failure wrapped with go-errors.
func (d *Definition) Process(ctx context.Context, exec interfaces.ExecutionContext, model interfaces.ContentModel) completion.Future {
	fn := d.resolveProcess()
	if fn == nil {
		return completion.Completed(completion.Success())
	}

	ctx = ensureContext(ctx)
	logger := d.loggerFor(ctx)

	if err := ctx.Err(); err != nil {
		logger.Error("processor.process.context_error", "error", err)
		return completion.Completed(completion.Failure(wrapContextError(err, d.Name())))
	}

	logger.Debug("processor.process.start")
	future := invoke(ctx, fn, d, exec, model)

	name := d.Name()
	return completion.Then(future, func(res completion.Result) completion.Result {
		if res.IsFailure() {
			logger.Error("processor.process.failed", "error", res.Err())
			return completion.Failure(wrapExecuteError(res.Err(), name))
		}
		logger.Debug("processor.process.success")
		return res
	})
}

func invoke(ctx context.Context, fn ProcessFunc, def *Definition, exec interfaces.ExecutionContext, model interfaces.ContentModel) (future completion.Future) {
	defer func() {
		if r := recover(); r != nil {
			future = completion.Completed(completion.Failure(completion.Recovered(r)))
		}
	}()

	future = fn(ctx, def, exec, model)
	if future == nil {
		future = completion.Completed(completion.Success())
	}
	return future
}

func (d *Definition) resolveProcess() ProcessFunc {
	for node := d; node != nil; node = node.parent {
		if node.process != nil {
			return node.process
		}
	}
	return nil
}

func (d *Definition) resolveLogger() interfaces.Logger {
	for node := d; node != nil; node = node.parent {
		if node.logger != nil {
			return node.logger
		}
	}
	return logging.NoOp()
}

func (d *Definition) loggerFor(ctx context.Context) interfaces.Logger {
	logger := d.resolveLogger().WithContext(ctx)
	return logging.WithProcessorContext(logger, d.Name(), d.id.String(), d.Priority(), d.Categories())
}

func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
