package domain

import (
	"errors"
	"fmt"
)

// ErrMetadataNotFound is returned when a metadata document is absent.
var ErrMetadataNotFound = errors.New("metadata not found")

// ErrMalformedMetadata is returned when a metadata document is not valid JSON
// or does not have the expected shape.
var ErrMalformedMetadata = errors.New("malformed metadata")

// ErrCalculatorNotFound is returned when a slug does not match any calculator.
var ErrCalculatorNotFound = errors.New("calculator not found")

// ErrModuleNotFound is returned when no implementation module is registered
// under a definition's module path.
var ErrModuleNotFound = errors.New("calculator module not found")

// ErrFunctionNotFound is returned when the module exists but does not expose
// the requested function.
var ErrFunctionNotFound = errors.New("calculator function not found")

// ErrContractViolation is returned when an implementation returns something
// other than a key/value result.
var ErrContractViolation = errors.New("calculator contract violation")

// ErrMissingInput is returned when a calculator requires an input that was not supplied.
var ErrMissingInput = errors.New("missing required field")

// ErrExecution is returned when a calculator or post-processor fails.
var ErrExecution = errors.New("calculator failed")

// ErrEmptyPayload is returned when a run request carries no inputs.
var ErrEmptyPayload = errors.New("request body must be a JSON object with calculator inputs")

// NotFoundError names the slug that could not be resolved.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown calculator slug '%s'", e.Slug)
}

func (e *NotFoundError) Unwrap() error { return ErrCalculatorNotFound }

// ResolutionError reports a module or function that could not be resolved.
// It indicates a packaging defect, not a client error.
type ResolutionError struct {
	Module   string
	Function string
	Err      error
}

func (e *ResolutionError) Error() string {
	if errors.Is(e.Err, ErrFunctionNotFound) {
		return fmt.Sprintf("module '%s' has no function '%s'", e.Module, e.Function)
	}
	return fmt.Sprintf("no module named '%s'", e.Module)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ContractViolationError names the calculator whose result had the wrong shape.
type ContractViolationError struct {
	Slug string
	Got  string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("calculator '%s' returned an unexpected result (%s); expected a mapping containing 'Answer' and 'Explanation'", e.Slug, e.Got)
}

func (e *ContractViolationError) Unwrap() error { return ErrContractViolation }

// MissingInputError is raised by calculators when a required input is absent.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: '%s'", ErrMissingInput, e.Field)
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// ExecutionError wraps any failure raised while running a calculator or its
// post-processor. The cause stays reachable through errors.As.
type ExecutionError struct {
	Slug string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("calculator '%s' failed: %v", e.Slug, e.Err)
}

func (e *ExecutionError) Unwrap() []error { return []error{ErrExecution, e.Err} }

// IsClientError reports whether err was caused by the request rather than by
// the service: an unknown slug, a missing input or an empty payload.
func IsClientError(err error) bool {
	return errors.Is(err, ErrCalculatorNotFound) ||
		errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrEmptyPayload)
}
