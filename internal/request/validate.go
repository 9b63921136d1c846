package request

import (
	"fmt"
	"log/slog"

	"github.com/me/goseek/pkg/model"
)

// Validator performs range validation on simulation inputs. The scheduling
// policies assume in-range input, so every workload passes through here
// first.
type Validator struct {
	logger *slog.Logger
}

// NewValidator creates a Validator with the given logger.
func NewValidator(logger *slog.Logger) *Validator {
	return &Validator{logger: logger.With("component", "validator")}
}

// Workload checks a head position and request queue against the disk bounds.
// Returns nil if valid, or a *model.APIError with one FieldError per problem.
func (v *Validator) Workload(head, diskSize int, requests []int) *model.APIError {
	var errs []model.FieldError

	errs = append(errs, checkDiskSize(diskSize)...)
	if diskSize >= 1 {
		errs = append(errs, checkHead(head, diskSize)...)
		errs = append(errs, checkRequests(requests, diskSize)...)
	}
	if len(requests) == 0 {
		errs = append(errs, model.FieldError{
			Field:   "requests",
			Reason:  model.ReasonEmptyQueue,
			Message: "request queue is empty",
		})
	}

	if len(errs) == 0 {
		return nil
	}
	v.logger.Debug("workload rejected", "errors", len(errs))
	return model.NewValidationError("simulation input validation failed", errs...)
}

// Sample checks the parameters for drawing a random queue. The draw is
// without replacement, so count must stay below the number of cylinders.
func (v *Validator) Sample(count, diskSize int) *model.APIError {
	var errs []model.FieldError

	errs = append(errs, checkDiskSize(diskSize)...)
	if count < 1 {
		errs = append(errs, model.FieldError{
			Field:   "count",
			Reason:  model.ReasonOutOfRange,
			Message: fmt.Sprintf("count must be at least 1, got %d", count),
		})
	} else if diskSize >= 1 && count >= diskSize {
		errs = append(errs, model.FieldError{
			Field:   "count",
			Reason:  model.ReasonSampleTooLarge,
			Message: fmt.Sprintf("count %d must be less than disk size %d", count, diskSize),
		})
	}

	if len(errs) == 0 {
		return nil
	}
	v.logger.Debug("sample request rejected", "errors", len(errs))
	return model.NewValidationError("sample input validation failed", errs...)
}

func checkDiskSize(diskSize int) []model.FieldError {
	if diskSize >= 1 {
		return nil
	}
	return []model.FieldError{{
		Field:   "disk_size",
		Reason:  model.ReasonOutOfRange,
		Message: fmt.Sprintf("disk size must be a positive integer, got %d", diskSize),
	}}
}

func checkHead(head, diskSize int) []model.FieldError {
	if head >= 0 && head <= diskSize-1 {
		return nil
	}
	return []model.FieldError{{
		Field:   "head",
		Reason:  model.ReasonOutOfRange,
		Message: fmt.Sprintf("head must be in [0, %d], got %d", diskSize-1, head),
	}}
}

func checkRequests(requests []int, diskSize int) []model.FieldError {
	var errs []model.FieldError
	for i, r := range requests {
		if r < 0 || r > diskSize-1 {
			errs = append(errs, model.FieldError{
				Field:   fmt.Sprintf("requests[%d]", i),
				Reason:  model.ReasonOutOfRange,
				Message: fmt.Sprintf("request %d must be in [0, %d]", r, diskSize-1),
			})
		}
	}
	return errs
}
