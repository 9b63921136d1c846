package sched

import "sort"

// CSCAN sweeps toward the max edge servicing requests in ascending order,
// then wraps: the arm runs to diskSize-1, jumps to 0, and sweeps up again
// for the requests it skipped. Both edge stops appear consecutively in the
// sequence and both count toward the total, so every pending request sees
// the arm approach from the same side. With nothing below the head there is
// no wrap and the result equals a one-sided sweep.
func CSCAN(head Cylinder, requests []Cylinder, diskSize int) Schedule {
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

	seq := make([]Cylinder, 0, len(requests)+3)
	seq = append(seq, head)
	seq = append(seq, high...)

	stops := 0
	if len(low) > 0 {
		seq = append(seq, Cylinder(diskSize-1), 0)
		stops = 2
		seq = append(seq, low...)
	}

	return Schedule{
		Policy:        PolicyCSCAN,
		Sequence:      seq,
		TotalSeek:     SeekDistance(seq),
		BoundaryStops: stops,
	}
}
