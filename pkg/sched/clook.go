package sched

import "sort"

// CLOOK is C-SCAN without the edge stops: the arm sweeps up through the
// requests at or above the head, then jumps straight from the highest
// serviced request to the lowest pending one and sweeps up again. The jump
// distance still counts toward the total, but cylinders 0 and diskSize-1
// never appear unless a request names them.
func CLOOK(head Cylinder, requests []Cylinder, diskSize int) Schedule {
	high := make([]Cylinder, 0, len(requests))
	low := make([]Cylinder, 0, len(requests))
	for _, r := range requests {
		if r >= head {
			high = append(high, r)
		} else {
			low = append(low, r)
		}
	}
	sort.Slice(high, func(i, j int) bool { return high[i] < high[j] })
	sort.Slice(low, func(i, j int) bool { return low[i] < low[j] })

	seq := make([]Cylinder, 0, len(requests)+1)
	seq = append(seq, head)
	seq = append(seq, high...)
	seq = append(seq, low...)

	return Schedule{
		Policy:    PolicyCLOOK,
		Sequence:  seq,
		TotalSeek: SeekDistance(seq),
	}
}
