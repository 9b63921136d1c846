// Package render formats schedules for terminals and the web UI: key-value
// summaries, comparison tables, and step plots of the head path.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/me/goseek/pkg/sched"
)

// Sequence renders a visitation path as "50 -> 65 -> 67".
func Sequence(seq []sched.Cylinder) string {
	parts := make([]string, len(seq))
	for i, c := range seq {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, " -> ")
}

// WriteSchedule prints a single schedule as a key-value block.
func WriteSchedule(w io.Writer, s sched.Schedule) {
	fmt.Fprintf(w, "Policy:         %s\n", s.DisplayName())
	if s.Policy == sched.PolicySCAN {
		fmt.Fprintf(w, "Direction:      %s\n", s.Direction)
	}
	fmt.Fprintf(w, "Seek sequence:  %s\n", Sequence(s.Sequence))
	fmt.Fprintf(w, "Total seek:     %s cylinders\n", humanize.Comma(int64(s.TotalSeek)))
	if s.BoundaryStops > 0 {
		fmt.Fprintf(w, "Boundary stops: %d\n", s.BoundaryStops)
	}
}

// WriteComparison prints one row per policy plus a footer naming the
// cheapest schedule.
func WriteComparison(w io.Writer, schedules []sched.Schedule) {
	fmt.Fprintf(w, "%-8s  %-12s  %s\n", "POLICY", "TOTAL SEEK", "SEQUENCE")
	fmt.Fprintf(w, "%-8s  %-12s  %s\n", "------", "----------", "--------")
	for _, s := range schedules {
		fmt.Fprintf(w, "%-8s  %-12s  %s\n",
			s.DisplayName(), humanize.Comma(int64(s.TotalSeek)), Sequence(s.Sequence))
	}

	if best := sched.Best(schedules); best >= 0 {
		fmt.Fprintf(w, "\nBest: %s (%s cylinders)\n",
			schedules[best].DisplayName(), humanize.Comma(int64(schedules[best].TotalSeek)))
	}
}
