package processor

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	processorExecuteFailed    = "PROCESSOR_EXECUTION_FAILED"
	processorContextCanceled  = "PROCESSOR_CONTEXT_CANCELED"
	processorContextTimeout   = "PROCESSOR_CONTEXT_TIMEOUT"
	processorContextErrorCode = "PROCESSOR_CONTEXT_ERROR"
	processorValidationCode   = "PROCESSOR_VALIDATION_FAILED"
)

func wrapExecuteError(err error, name string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("processor %q execution failed", name)).
		WithTextCode(processorExecuteFailed)
}

func wrapContextError(err error, name string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("processor %q cancelled", name)).
			WithTextCode(processorContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("processor %q deadline exceeded", name)).
			WithTextCode(processorContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("processor %q context error", name)).
			WithTextCode(processorContextErrorCode)
	}
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "processor definition invalid").
		WithTextCode(processorValidationCode)
}
