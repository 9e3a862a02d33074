package testutil

import (
	"errors"
	"testing"

	apperrors "centavo/internal/errors"
)

// AssertAppError checks that err carries the expected AppError code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertAmount compares centavo amounts with a labelled failure message.
func AssertAmount(t *testing.T, label string, want, got int64) {
	t.Helper()

	if got != want {
		t.Errorf("%s: expected %d centavos, got %d", label, want, got)
	}
}
