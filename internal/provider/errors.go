package provider

import (
	"errors"
	"fmt"
)

// InvalidRequestError indicates the caller's request was missing a required
// field. It is surfaced immediately; no provider is contacted and no
// fallback is attempted.
type InvalidRequestError struct {
	Field   string
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s - %s", e.Field, e.Message)
}

// UnconfiguredError indicates no credential is available for the provider.
type UnconfiguredError struct {
	Kind Kind
}

func (e *UnconfiguredError) Error() string {
	return fmt.Sprintf("%s provider is not configured", e.Kind)
}

// UnreachableError indicates a network failure, timeout, or non-success
// status from the upstream.
type UnreachableError struct {
	Kind Kind
	Err  error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s provider unreachable: %v", e.Kind, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the upstream answered with a payload that
// could not be parsed into the expected shape, after best-effort extraction.
type MalformedResponseError struct {
	Kind   Kind
	Detail string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s provider returned a malformed response: %s", e.Kind, e.Detail)
}

// AllSourcesExhaustedError indicates both the provider path and its fallback
// failed to produce any result. Given the fallback generator's always-succeeds
// contract this is effectively unreachable; if it occurs it is fatal and
// surfaced to the caller.
type AllSourcesExhaustedError struct {
	Kind Kind
}

func (e *AllSourcesExhaustedError) Error() string {
	return fmt.Sprintf("%s: all sources exhausted", e.Kind)
}

// Recoverable reports whether err is a provider-level failure the pipeline
// absorbs by falling back (unconfigured, unreachable, malformed response).
// Invalid requests and exhausted sources are not recoverable.
func Recoverable(err error) bool {
	var unconfigured *UnconfiguredError
	var unreachable *UnreachableError
	var malformed *MalformedResponseError
	return errors.As(err, &unconfigured) ||
		errors.As(err, &unreachable) ||
		errors.As(err, &malformed)
}
