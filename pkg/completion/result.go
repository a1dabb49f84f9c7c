package completion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownFailure replaces a nil error handed to Failure.
var ErrUnknownFailure = errors.New("completion: failure without error")

// Result is the settled outcome of a Future.
type Result struct {
	id        uuid.UUID
	createdAt time.Time
	err       error
	isSuccess bool
}

func Success() Result {
	return Result{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		isSuccess: true,
	}
}

func Failure(err error) Result {
	if err == nil {
		err = ErrUnknownFailure
	}
	return Result{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func (r Result) ID() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result) Err() error {
	return r.err
}

func (r Result) IsSuccess() bool {
	return r.isSuccess
}

func (r Result) IsFailure() bool {
	return !r.isSuccess
}
