package sched

// SSTF greedily services whichever pending request is closest to the current
// head position. When two pending requests are equidistant the lower cylinder
// wins, so the result does not depend on arrival order.
func SSTF(head Cylinder, requests []Cylinder, diskSize int) Schedule {
	pending := make([]Cylinder, len(requests))
	copy(pending, requests)

	seq := make([]Cylinder, 0, len(requests)+1)
	seq = append(seq, head)

	cur := head
	for len(pending) > 0 {
		best := 0
		bestDist := distance(cur, pending[0])
		for i := 1; i < len(pending); i++ {
			d := distance(cur, pending[i])
			if d < bestDist || (d == bestDist && pending[i] < pending[best]) {
				best = i
				bestDist = d
			}
		}
		cur = pending[best]
		seq = append(seq, cur)
		pending = append(pending[:best], pending[best+1:]...)
	}

	return Schedule{
		Policy:    PolicySSTF,
		Sequence:  seq,
		TotalSeek: SeekDistance(seq),
	}
}
