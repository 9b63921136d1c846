package request

import (
	"io"
	"log/slog"
	"testing"

	"github.com/me/goseek/pkg/model"
)

func testValidator() *Validator {
	return NewValidator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func hasFieldError(errs []model.FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func hasReason(errs []model.FieldError, reason string) bool {
	for _, e := range errs {
		if e.Reason == reason {
			return true
		}
	}
	return false
}

func TestWorkload_Valid(t *testing.T) {
	v := testValidator()
	if err := v.Workload(50, 200, []int{98, 183, 37, 122, 14, 124, 65, 67}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestWorkload_BoundaryPositions(t *testing.T) {
	v := testValidator()
	if err := v.Workload(0, 200, []int{0, 199}); err != nil {
		t.Errorf("edge cylinders should be valid, got %v", err)
	}
}

func TestWorkload_HeadOutOfRange(t *testing.T) {
	v := testValidator()
	for _, head := range []int{-1, 200, 1000} {
		apiErr := v.Workload(head, 200, []int{10})
		if apiErr == nil {
			t.Fatalf("head %d: expected error", head)
		}
		if apiErr.Code != model.ErrValidation {
			t.Errorf("head %d: Code = %q, want %q", head, apiErr.Code, model.ErrValidation)
		}
		if !hasFieldError(apiErr.Details, "head") {
			t.Errorf("head %d: expected head error, got %v", head, apiErr.Details)
		}
		if !hasReason(apiErr.Details, model.ReasonOutOfRange) {
			t.Errorf("head %d: expected out_of_range reason, got %v", head, apiErr.Details)
		}
	}
}

func TestWorkload_RequestOutOfRange(t *testing.T) {
	v := testValidator()
	apiErr := v.Workload(50, 200, []int{10, 20, 250})
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if !hasFieldError(apiErr.Details, "requests[2]") {
		t.Errorf("expected requests[2] error, got %v", apiErr.Details)
	}
}

func TestWorkload_EmptyQueue(t *testing.T) {
	v := testValidator()
	apiErr := v.Workload(50, 200, nil)
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if !hasReason(apiErr.Details, model.ReasonEmptyQueue) {
		t.Errorf("expected empty_queue reason, got %v", apiErr.Details)
	}
}

func TestWorkload_BadDiskSize(t *testing.T) {
	v := testValidator()
	apiErr := v.Workload(10, 0, []int{5})
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if !hasFieldError(apiErr.Details, "disk_size") {
		t.Errorf("expected disk_size error, got %v", apiErr.Details)
	}
	// Range checks against a nonsense bound would be noise.
	if hasFieldError(apiErr.Details, "head") {
		t.Errorf("unexpected head error: %v", apiErr.Details)
	}
}

func TestWorkload_CollectsAllErrors(t *testing.T) {
	v := testValidator()
	apiErr := v.Workload(-1, 100, []int{150, 20, -3})
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if len(apiErr.Details) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(apiErr.Details), apiErr.Details)
	}
	for _, field := range []string{"head", "requests[0]", "requests[2]"} {
		if !hasFieldError(apiErr.Details, field) {
			t.Errorf("expected %s error, got %v", field, apiErr.Details)
		}
	}
}

func TestSample_Valid(t *testing.T) {
	v := testValidator()
	if err := v.Sample(8, 200); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestSample_CountTooLarge(t *testing.T) {
	v := testValidator()
	for _, count := range []int{200, 201} {
		apiErr := v.Sample(count, 200)
		if apiErr == nil {
			t.Fatalf("count %d: expected error", count)
		}
		if !hasReason(apiErr.Details, model.ReasonSampleTooLarge) {
			t.Errorf("count %d: expected sample_count_too_large, got %v", count, apiErr.Details)
		}
	}
}

func TestSample_CountTooSmall(t *testing.T) {
	v := testValidator()
	apiErr := v.Sample(0, 200)
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if !hasFieldError(apiErr.Details, "count") {
		t.Errorf("expected count error, got %v", apiErr.Details)
	}
}
