package sched

// SeekDistance sums the absolute head movement along a visitation sequence.
// Sequences with fewer than two positions cost nothing.
func SeekDistance(seq []Cylinder) int {
	total := 0
	for i := 1; i < len(seq); i++ {
		total += distance(seq[i-1], seq[i])
	}
	return total
}

func distance(a, b Cylinder) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
