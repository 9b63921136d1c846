package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/me/goseek/pkg/sched"
)

// plotColumns is the inner width of the text plot. Cylinder values scale
// onto [0, plotColumns-1].
const plotColumns = 61

// WritePlot draws the head path as a step chart, one row per visited
// position, oldest at the top. Arrowheads show travel direction; edge stops
// render like any other position.
func WritePlot(w io.Writer, s sched.Schedule, diskSize int) {
	if len(s.Sequence) == 0 || diskSize < 1 {
		return
	}

	scale := func(c sched.Cylinder) int {
		if diskSize == 1 {
			return 0
		}
		return int(c) * (plotColumns - 1) / (diskSize - 1)
	}

	fmt.Fprintf(w, "%s  (total seek %d)\n", s.DisplayName(), s.TotalSeek)

	right := strconv.Itoa(diskSize - 1)
	fmt.Fprintf(w, " 0%s%s\n", strings.Repeat(" ", plotColumns-len(right)-1), right)

	prev := scale(s.Sequence[0])
	for i, c := range s.Sequence {
		col := scale(c)
		row := []byte(strings.Repeat(" ", plotColumns))
		lo, hi := col, prev
		if lo > hi {
			lo, hi = hi, lo
		}
		for j := lo; j <= hi; j++ {
			row[j] = '-'
		}
		switch {
		case i == 0 || col == prev:
			row[col] = '*'
		case col > prev:
			row[col] = '>'
		default:
			row[col] = '<'
		}
		fmt.Fprintf(w, "|%s| %d\n", row, int(c))
		prev = col
	}
}
