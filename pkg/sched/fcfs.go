package sched

// FCFS services requests strictly in arrival order. It is the baseline every
// other policy is compared against.
func FCFS(head Cylinder, requests []Cylinder, diskSize int) Schedule {
	seq := make([]Cylinder, 0, len(requests)+1)
	seq = append(seq, head)
	seq = append(seq, requests...)
	return Schedule{
		Policy:    PolicyFCFS,
		Sequence:  seq,
		TotalSeek: SeekDistance(seq),
	}
}
