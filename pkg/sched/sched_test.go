package sched

import "testing"

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Policy
		wantErr bool
	}{
		{name: "lowercase", in: "fcfs", want: PolicyFCFS},
		{name: "uppercase", in: "SSTF", want: PolicySSTF},
		{name: "mixed case", in: "sCaN", want: PolicySCAN},
		{name: "display form", in: "C-SCAN", want: PolicyCSCAN},
		{name: "display form lowercase", in: "c-look", want: PolicyCLOOK},
		{name: "surrounding space", in: "  cscan  ", want: PolicyCSCAN},
		{name: "empty", in: "", wantErr: true},
		{name: "unknown", in: "lifo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePolicy(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePolicy(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Direction
		wantErr bool
	}{
		{name: "empty defaults to max", in: "", want: TowardMax},
		{name: "toward max", in: "toward-max", want: TowardMax},
		{name: "toward min", in: "toward-min", want: TowardMin},
		{name: "uppercase", in: "TOWARD-MIN", want: TowardMin},
		{name: "unknown", in: "up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDirection(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPolicyDisplayName(t *testing.T) {
	tests := []struct {
		policy Policy
		want   string
	}{
		{PolicyFCFS, "FCFS"},
		{PolicySSTF, "SSTF"},
		{PolicySCAN, "SCAN"},
		{PolicyCSCAN, "C-SCAN"},
		{PolicyCLOOK, "C-LOOK"},
		{Policy("lifo"), "lifo"},
	}

	for _, tt := range tests {
		if got := tt.policy.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.policy, got, tt.want)
		}
	}
}

func TestPoliciesOrder(t *testing.T) {
	want := []Policy{PolicyFCFS, PolicySSTF, PolicySCAN, PolicyCSCAN, PolicyCLOOK}
	got := Policies()
	if len(got) != len(want) {
		t.Fatalf("Policies() returned %d policies, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Policies()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPolicyDescriptions(t *testing.T) {
	for _, p := range Policies() {
		if p.Description() == "" {
			t.Errorf("Description(%q) is empty", p)
		}
	}
}
