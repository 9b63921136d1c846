package sched

import "sort"

// SCAN sweeps the arm in one direction, servicing every pending request it
// passes, and reverses at the disk edge. The edge stop (diskSize-1 or 0) is
// only made when requests remain on the far side of the head; requests
// sitting exactly on the head ride along with the initial sweep. An
// unrecognized direction falls back to TowardMax.
func SCAN(head Cylinder, requests []Cylinder, diskSize int, dir Direction) Schedule {
	if dir != TowardMin {
		dir = TowardMax
	}

	forward := make([]Cylinder, 0, len(requests))
	behind := make([]Cylinder, 0, len(requests))
	for _, r := range requests {
		if (dir == TowardMax && r >= head) || (dir == TowardMin && r <= head) {
			forward = append(forward, r)
		} else {
			behind = append(behind, r)
		}
	}

	if dir == TowardMax {
		sort.Slice(forward, func(i, j int) bool { return forward[i] < forward[j] })
		sort.Slice(behind, func(i, j int) bool { return behind[i] > behind[j] })
	} else {
		sort.Slice(forward, func(i, j int) bool { return forward[i] > forward[j] })
		sort.Slice(behind, func(i, j int) bool { return behind[i] < behind[j] })
	}

	seq := make([]Cylinder, 0, len(requests)+2)
	seq = append(seq, head)
	seq = append(seq, forward...)

	stops := 0
	if len(behind) > 0 {
		edge := Cylinder(diskSize - 1)
		if dir == TowardMin {
			edge = 0
		}
		seq = append(seq, edge)
		stops = 1
		seq = append(seq, behind...)
	}

	return Schedule{
		Policy:        PolicySCAN,
		Direction:     dir,
		Sequence:      seq,
		TotalSeek:     SeekDistance(seq),
		BoundaryStops: stops,
	}
}
