package completion

import (
	"context"
	"fmt"
	"sync"
)

// Future is a settle-once handle on asynchronous work.
type Future interface {
	// Done is closed once the future settles.
	Done() <-chan struct{}
	// Wait blocks until the future settles or ctx ends. When ctx ends first a
	// failure carrying ctx.Err() is returned and the future stays pending.
	Wait(ctx context.Context) Result
}

// Promise is a Future settled by its owner.
type Promise struct {
	once   sync.Once
	done   chan struct{}
	result Result
}

// NewPromise returns a pending promise.
func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// Settle stores r and releases waiters. Only the first call has effect; the
// return value reports whether this call settled the promise.
func (p *Promise) Settle(r Result) bool {
	settled := false
	p.once.Do(func() {
		p.result = r
		close(p.done)
		settled = true
	})
	return settled
}

func (p *Promise) Resolve() bool {
	return p.Settle(Success())
}

func (p *Promise) Reject(err error) bool {
	return p.Settle(Failure(err))
}

func (p *Promise) Done() <-chan struct{} {
	return p.done
}

func (p *Promise) Wait(ctx context.Context) Result {
	select {
	case <-p.done:
		return p.result
	default:
	}

	if ctx == nil {
		<-p.done
		return p.result
	}

	select {
	case <-p.done:
		return p.result
	case <-ctx.Done():
		return Failure(ctx.Err())
	}
}

var _ Future = (*Promise)(nil)

// Completed returns a future that is already settled with r.
func Completed(r Result) Future {
	p := NewPromise()
	p.Settle(r)
	return p
}

// Go runs fn on its own goroutine and settles the returned future with its
// outcome. A panic inside fn settles the future as a failure.
func Go(fn func() error) Future {
	p := NewPromise()
	if fn == nil {
		p.Resolve()
		return p
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.Reject(Recovered(r))
			}
		}()

		if err := fn(); err != nil {
			p.Reject(err)
			return
		}
		p.Resolve()
	}()

	return p
}

// Then derives a future settled with fn applied to f's result. When f is
// already settled fn runs inline and no goroutine is started.
func Then(f Future, fn func(Result) Result) Future {
	if f == nil {
		f = Completed(Success())
	}
	if fn == nil {
		return f
	}

	select {
	case <-f.Done():
		return Completed(fn(f.Wait(context.Background())))
	default:
	}

	p := NewPromise()
	go func() {
		<-f.Done()
		p.Settle(fn(f.Wait(context.Background())))
	}()
	return p
}

// Recovered converts a recovered panic value into an error.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("completion: recovered panic: %w", err)
	}
	return fmt.Errorf("completion: recovered panic: %v", v)
}
