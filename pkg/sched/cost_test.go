package sched

import "testing"

func TestSeekDistance(t *testing.T) {
	tests := []struct {
		name string
		seq  []Cylinder
		want int
	}{
		{name: "empty", seq: nil, want: 0},
		{name: "head only", seq: []Cylinder{7}, want: 0},
		{name: "ascending", seq: []Cylinder{50, 65, 67}, want: 17},
		{name: "direction change", seq: []Cylinder{10, 5, 10}, want: 10},
		{name: "repeated position", seq: []Cylinder{12, 12, 12}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeekDistance(tt.seq); got != tt.want {
				t.Errorf("SeekDistance(%v) = %d, want %d", tt.seq, got, tt.want)
			}
		})
	}
}
