package catalog

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected FailureKind
	}{
		{&FetchError{Kind: FailureNetwork, Err: errors.New("refused")}, FailureNetwork},
		{&FetchError{Kind: FailureDecode, Err: errors.New("bad json")}, FailureDecode},
		{fmt.Errorf("wrapped: %w", &FetchError{Kind: FailureConfig, Err: errors.New("bad url")}), FailureConfig},
		{errors.New("something else"), FailureUnexpected},
	}

	for _, test := range tests {
		if kind := KindOf(test.err); kind != test.expected {
			t.Errorf("KindOf(%v) = %s, expected %s", test.err, kind, test.expected)
		}
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &FetchError{Kind: FailureNetwork, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the underlying cause")
	}
}

func TestFailureKind_IsRetryable(t *testing.T) {
	if !FailureNetwork.IsRetryable() {
		t.Error("Expected network failures to be retryable")
	}
	if FailureConfig.IsRetryable() {
		t.Error("Expected config failures to not be retryable")
	}
	if FailureDecode.IsRetryable() {
		t.Error("Expected decode failures to not be retryable")
	}
}
