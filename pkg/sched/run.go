package sched

import "fmt"

// Run dispatches to the named policy. The direction applies to SCAN only;
// the remaining policies ignore it.
func Run(p Policy, head Cylinder, requests []Cylinder, diskSize int, dir Direction) (Schedule, error) {
	switch p {
	case PolicyFCFS:
		return FCFS(head, requests, diskSize), nil
	case PolicySSTF:
		return SSTF(head, requests, diskSize), nil
	case PolicySCAN:
		return SCAN(head, requests, diskSize, dir), nil
	case PolicyCSCAN:
		return CSCAN(head, requests, diskSize), nil
	case PolicyCLOOK:
		return CLOOK(head, requests, diskSize), nil
	}
	return Schedule{}, fmt.Errorf("unknown scheduling policy %q", p)
}

// Compare runs every policy over the same queue and returns the schedules in
// the order of Policies, so callers can rank them side by side.
func Compare(head Cylinder, requests []Cylinder, diskSize int, dir Direction) []Schedule {
	out := make([]Schedule, 0, len(Policies()))
	for _, p := range Policies() {
		s, _ := Run(p, head, requests, diskSize, dir)
		out = append(out, s)
	}
	return out
}

// Best returns the index of the schedule with the lowest total seek, or -1
// for an empty slice. Earlier entries win ties, so on Compare output the
// canonical policy order decides.
func Best(schedules []Schedule) int {
	best := -1
	for i, s := range schedules {
		if best == -1 || s.TotalSeek < schedules[best].TotalSeek {
			best = i
		}
	}
	return best
}
