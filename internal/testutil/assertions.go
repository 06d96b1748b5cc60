package testutil

import (
	"errors"
	"testing"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/schema"
)

// AssertAppError checks that err is an *AppError with the expected error code.
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

// AssertIssue checks that err is a *schema.ValidationError reporting code at path.
func AssertIssue(t *testing.T, err error, path, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected issue %q at %q, got nil", code, path)
	}

	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *schema.ValidationError, got %T: %v", err, err)
	}

	if !verr.Has(path, code) {
		t.Errorf("expected issue %q at %q, got %v", code, path, verr.Issues)
	}
}
