package model

import "testing"

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: ErrNotFound, Message: "Policy 'lifo' not found"}
	want := "NOT_FOUND: Policy 'lifo' not found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Policy", "lifo")
	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Message != "Policy 'lifo' not found" {
		t.Errorf("Message = %q, want %q", err.Message, "Policy 'lifo' not found")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Invalid simulation input",
		FieldError{Field: "head", Reason: ReasonOutOfRange, Message: "head must be in [0, 199]"},
		FieldError{Field: "requests", Reason: ReasonEmptyQueue, Message: "request queue is empty"},
	)
	if err.Code != ErrValidation {
		t.Errorf("Code = %q, want %q", err.Code, ErrValidation)
	}
	if len(err.Details) != 2 {
		t.Errorf("Details length = %d, want 2", len(err.Details))
	}
	if err.Details[0].Reason != ReasonOutOfRange {
		t.Errorf("Details[0].Reason = %q, want %q", err.Details[0].Reason, ReasonOutOfRange)
	}
}
