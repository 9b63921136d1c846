package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/me/goseek/pkg/sched"
)

func TestSequence(t *testing.T) {
	got := Sequence([]sched.Cylinder{50, 65, 67})
	want := "50 -> 65 -> 67"
	if got != want {
		t.Errorf("Sequence = %q, want %q", got, want)
	}

	if got := Sequence(nil); got != "" {
		t.Errorf("Sequence(nil) = %q, want empty", got)
	}
}

func TestWriteSchedule(t *testing.T) {
	var buf bytes.Buffer
	WriteSchedule(&buf, sched.SSTF(50, []sched.Cylinder{55, 45}, 100))

	want := "Policy:         SSTF\n" +
		"Seek sequence:  50 -> 45 -> 55\n" +
		"Total seek:     15 cylinders\n"
	if buf.String() != want {
		t.Errorf("WriteSchedule output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteSchedule_SCAN(t *testing.T) {
	var buf bytes.Buffer
	WriteSchedule(&buf, sched.SCAN(50, []sched.Cylinder{60, 40}, 100, sched.TowardMax))

	out := buf.String()
	if !strings.Contains(out, "Direction:      toward-max") {
		t.Errorf("expected direction line, got:\n%s", out)
	}
	if !strings.Contains(out, "Boundary stops: 1") {
		t.Errorf("expected boundary stops line, got:\n%s", out)
	}
}

func TestWriteSchedule_GroupsThousands(t *testing.T) {
	var buf bytes.Buffer
	WriteSchedule(&buf, sched.Schedule{
		Policy:    sched.PolicyFCFS,
		Sequence:  []sched.Cylinder{0, 5000},
		TotalSeek: 5000,
	})

	if !strings.Contains(buf.String(), "5,000 cylinders") {
		t.Errorf("expected grouped total, got:\n%s", buf.String())
	}
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	schedules := sched.Compare(50, []sched.Cylinder{98, 183, 37, 122, 14, 124, 65, 67}, 200, sched.TowardMax)
	WriteComparison(&buf, schedules)

	out := buf.String()
	for _, want := range []string{"POLICY", "FCFS", "SSTF", "SCAN", "C-SCAN", "C-LOOK", "Best: SSTF (205 cylinders)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, five policies, blank, footer.
	if len(lines) != 9 {
		t.Errorf("got %d lines, want 9:\n%s", len(lines), out)
	}
}
