package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

// =============================================================================
// Error Creation Tests
// =============================================================================

func TestError_New(t *testing.T) {
	err := New(DomainAuth, "test_code", "test message")

	if err.Domain != DomainAuth {
		t.Fatalf("expected domain %s, got %s", DomainAuth, err.Domain)
	}
	if err.Code != "test_code" {
		t.Fatalf("expected code test_code, got %s", err.Code)
	}
	if err.ExitCode != ExitFailure {
		t.Fatalf("expected exit code %d, got %d", ExitFailure, err.ExitCode)
	}
	if err.Message != "test message" {
		t.Fatalf("expected message 'test message', got %s", err.Message)
	}
}

func TestError_Wrap(t *testing.T) {
	cause := stderrors.New("underlying error")
	err := Wrap(cause, DomainDatabase, "query_failed", "query failed")

	if err.Unwrap() != cause {
		t.Fatal("expected wrapped error to be returned by Unwrap")
	}

	if got := err.Error(); got != "database.query_failed: query failed: underlying error" {
		t.Fatalf("unexpected error string: %s", got)
	}
}

// =============================================================================
// Error Methods Tests
// =============================================================================

func TestError_WithCause(t *testing.T) {
	original := ErrUserNotFound
	cause := stderrors.New("connection reset")

	wrapped := original.WithCause(cause)

	if original.Unwrap() != nil {
		t.Fatal("original error should not have cause")
	}
	if wrapped.Unwrap() != cause {
		t.Fatal("wrapped error should carry the cause")
	}
	if !stderrors.Is(wrapped, ErrUserNotFound) {
		t.Fatal("wrapped error should still match its sentinel")
	}
}

func TestError_WithMessage(t *testing.T) {
	custom := ErrInsufficientStock.WithMessagef("only %d left", 3)

	if custom.Message != "only 3 left" {
		t.Fatalf("unexpected message: %s", custom.Message)
	}
	if ErrInsufficientStock.Message != "Not enough inventory in store!" {
		t.Fatal("sentinel message must not change")
	}
	if !Is(custom, ErrInsufficientStock) {
		t.Fatal("custom message should not break Is")
	}
}

func TestError_IsAcrossDomains(t *testing.T) {
	if Is(ErrUserNotFound, ErrStoreNotFound) {
		t.Fatal("same code in different domains must not match")
	}
	wrapped := fmt.Errorf("handler: %w", ErrNotAdmin)
	if !Is(wrapped, ErrNotAdmin) {
		t.Fatal("fmt wrapping should preserve Is")
	}
}

// =============================================================================
// Helper Function Tests
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitOK},
		{"connection failure", ErrDatabaseConnection.WithCause(stderrors.New("refused")), ExitUnavailable},
		{"usage", ErrUsage, ExitFailure},
		{"standard error", stderrors.New("standard"), ExitFailure},
		{"wrapped connection failure", fmt.Errorf("startup: %w", ErrDatabaseConnection), ExitUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Fatalf("expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGetCodeAndDomain(t *testing.T) {
	if code := GetCode(ErrProductNotFound); code != CodeNotFound {
		t.Fatalf("expected code %s, got %s", CodeNotFound, code)
	}
	if domain := GetDomain(ErrProductNotFound); domain != DomainProduct {
		t.Fatalf("expected domain %s, got %s", DomainProduct, domain)
	}
	if GetCode(stderrors.New("standard")) != "" || GetDomain(stderrors.New("standard")) != "" {
		t.Fatal("standard errors should have empty code and domain")
	}
}

func TestIsUserFacing(t *testing.T) {
	if !IsUserFacing(ErrWrongManager) {
		t.Fatal("authorization errors are shown to the user")
	}
	if IsUserFacing(ErrDatabaseQuery.WithCause(stderrors.New("syntax"))) {
		t.Fatal("database errors are diagnostics")
	}
	if IsUserFacing(stderrors.New("plain")) {
		t.Fatal("plain errors are diagnostics")
	}
}

// =============================================================================
// Response Tests
// =============================================================================

func TestNewResponse(t *testing.T) {
	resp := NewResponse(ErrNotAdmin)
	if resp.Error != "auth.not_admin" {
		t.Fatalf("unexpected error code: %s", resp.Error)
	}
	if resp.Message != "ERROR: Not An Admin ID" {
		t.Fatalf("unexpected message: %s", resp.Message)
	}

	resp = NewResponse(stderrors.New("boom"))
	if resp.Error != "internal.internal_error" || resp.Message != "boom" {
		t.Fatalf("unexpected response for plain error: %+v", resp)
	}
}
