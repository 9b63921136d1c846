package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/me/goseek/pkg/sched"
)

const (
	svgWidth = 640
	svgPad   = 32
	svgRowH  = 26
	svgTop   = 28
)

// PlotSVG renders the head path as an SVG step chart for the web UI: the
// horizontal axis spans the cylinder range, service order runs top to
// bottom, matching how these charts are drawn on paper.
func PlotSVG(s sched.Schedule, diskSize int) template.HTML {
	if len(s.Sequence) == 0 || diskSize < 1 {
		return ""
	}

	plotW := svgWidth - 2*svgPad
	x := func(c sched.Cylinder) int {
		if diskSize == 1 {
			return svgPad
		}
		return svgPad + int(c)*plotW/(diskSize-1)
	}
	height := svgTop + svgRowH*(len(s.Sequence)-1) + svgPad

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" class="w-full">`, svgWidth, height)

	// Sweep policies get arrowheads along the path; the marker id carries
	// the policy name so five inline charts on one page do not collide.
	marker := ""
	if sweeps(s.Policy) && len(s.Sequence) > 1 {
		id := "arrow-" + string(s.Policy)
		fmt.Fprintf(&b, `<defs><marker id="%s" viewBox="0 0 6 6" refX="5" refY="3" markerWidth="6" markerHeight="6" orient="auto"><path d="M0,0 L6,3 L0,6 z" fill="#dc2626"/></marker></defs>`, id)
		marker = fmt.Sprintf(` marker-mid="url(#%s)" marker-end="url(#%s)"`, id, id)
	}

	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#cbd5e1" stroke-width="1"/>`,
		svgPad, svgTop-8, svgPad+plotW, svgTop-8)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" fill="#64748b">0</text>`, svgPad, svgTop-14)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" fill="#64748b" text-anchor="end">%d</text>`,
		svgPad+plotW, svgTop-14, diskSize-1)

	points := make([]string, 0, len(s.Sequence))
	for i, c := range s.Sequence {
		points = append(points, fmt.Sprintf("%d,%d", x(c), svgTop+i*svgRowH))
	}
	fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="#dc2626" stroke-width="2"%s/>`,
		strings.Join(points, " "), marker)

	for i, c := range s.Sequence {
		cx, cy := x(c), svgTop+i*svgRowH
		fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="3.5" fill="#1d4ed8"/>`, cx, cy)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" fill="#334155">%d</text>`, cx+8, cy+4, int(c))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String())
}

// sweeps reports whether the policy moves the arm in committed sweeps,
// where direction arrows help reading the chart.
func sweeps(p sched.Policy) bool {
	switch p {
	case sched.PolicySCAN, sched.PolicyCSCAN, sched.PolicyCLOOK:
		return true
	}
	return false
}
