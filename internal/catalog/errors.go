package catalog

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a catalog fetch failed
type FailureKind string

const (
	// FailureConfig means the fixed endpoint literal failed to parse.
	// Reaching this at runtime indicates a broken build, not a user problem.
	FailureConfig FailureKind = "Config"

	// FailureNetwork means the transport layer failed (timeout, DNS,
	// connection reset)
	FailureNetwork FailureKind = "Network"

	// FailureDecode means the response body did not match the feed schema
	FailureDecode FailureKind = "Decode"

	// FailureUnexpected covers everything else, including non-2xx statuses
	FailureUnexpected FailureKind = "Unexpected"
)

// String returns the string representation of FailureKind
func (fk FailureKind) String() string {
	return string(fk)
}

// IsRetryable returns true if a later fetch of the same request could
// plausibly succeed without anything changing on our side
func (fk FailureKind) IsRetryable() bool {
	return fk == FailureNetwork || fk == FailureUnexpected
}

// FetchError is the error returned by the catalog client. It tags the
// underlying cause with a FailureKind for diagnostics; callers that only
// care about "no records available" can treat it as a plain error.
type FetchError struct {
	Kind FailureKind
	Err  error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("catalog fetch (%s): %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As
func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error returned by the client.
// Errors that did not originate here are classified as unexpected.
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return FailureUnexpected
}
