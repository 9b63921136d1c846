// Package request parses and validates simulation workloads.
// This package is shared by the HTTP API, the web form, and the CLI.
package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/me/goseek/pkg/model"
	"github.com/me/goseek/pkg/sched"
)

// ParseQueue parses a comma-separated cylinder list such as "98,183,37".
// Blank entries are skipped. Every malformed token is reported, one
// FieldError each, so a form can flag all of them in a single round trip.
func ParseQueue(s string) ([]int, []model.FieldError) {
	var (
		queue []int
		errs  []model.FieldError
	)
	for i, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			errs = append(errs, model.FieldError{
				Field:   fmt.Sprintf("requests[%d]", i),
				Reason:  model.ReasonNotAnInteger,
				Message: fmt.Sprintf("%q is not an integer", token),
			})
			continue
		}
		queue = append(queue, n)
	}
	return queue, errs
}

// ParseInt parses a single integer field such as "head" or "disk_size".
func ParseInt(field, s string) (int, *model.FieldError) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &model.FieldError{
			Field:   field,
			Reason:  model.ReasonNotAnInteger,
			Message: fmt.Sprintf("%q is not an integer", s),
		}
	}
	return n, nil
}

// Cylinders converts a validated queue to the scheduling domain type.
func Cylinders(queue []int) []sched.Cylinder {
	out := make([]sched.Cylinder, len(queue))
	for i, n := range queue {
		out[i] = sched.Cylinder(n)
	}
	return out
}
