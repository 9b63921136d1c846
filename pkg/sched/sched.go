// Package sched implements the classic disk-arm scheduling policies (FCFS,
// SSTF, SCAN, C-SCAN, C-LOOK) as pure functions over a shared contract: given
// an initial head position, a bounded cylinder range, and a queue of pending
// requests, each policy produces the ordered visitation sequence and its total
// seek distance.
//
// All functions copy their input before sorting or removal, never mutate
// caller-owned slices, and hold no state between calls, so they are safe to
// call concurrently. Inputs are assumed valid (head and every request in
// [0, diskSize-1]); range checking belongs to the calling layer.
package sched

import (
	"fmt"
	"strings"
)

// Cylinder addresses a track position on the simulated disk, in
// [0, diskSize-1] for a disk of diskSize cylinders.
type Cylinder int

// Direction selects which way the arm sweeps first in SCAN.
type Direction string

const (
	// TowardMax sweeps from the head toward cylinder diskSize-1.
	TowardMax Direction = "toward-max"
	// TowardMin sweeps from the head toward cylinder 0.
	TowardMin Direction = "toward-min"
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// ParseDirection resolves a user-supplied direction name. The empty string
// resolves to TowardMax, the conventional default sweep.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(TowardMax):
		return TowardMax, nil
	case string(TowardMin):
		return TowardMin, nil
	}
	return "", fmt.Errorf("unknown sweep direction %q (want %q or %q)", s, TowardMax, TowardMin)
}

// Policy identifies a disk scheduling policy.
type Policy string

const (
	PolicyFCFS  Policy = "fcfs"
	PolicySSTF  Policy = "sstf"
	PolicySCAN  Policy = "scan"
	PolicyCSCAN Policy = "cscan"
	PolicyCLOOK Policy = "clook"
)

// String returns the policy identifier.
func (p Policy) String() string {
	return string(p)
}

// DisplayName returns the conventional textbook name of the policy.
func (p Policy) DisplayName() string {
	switch p {
	case PolicyFCFS:
		return "FCFS"
	case PolicySSTF:
		return "SSTF"
	case PolicySCAN:
		return "SCAN"
	case PolicyCSCAN:
		return "C-SCAN"
	case PolicyCLOOK:
		return "C-LOOK"
	}
	return string(p)
}

// Description returns a one-line summary of how the policy moves the arm.
func (p Policy) Description() string {
	switch p {
	case PolicyFCFS:
		return "Services requests strictly in arrival order."
	case PolicySSTF:
		return "Always services the pending request closest to the head."
	case PolicySCAN:
		return "Sweeps in one direction to the disk edge, then reverses."
	case PolicyCSCAN:
		return "Sweeps to the max edge, jumps circularly to the min edge, sweeps again."
	case PolicyCLOOK:
		return "Like C-SCAN, but jumps from the last request to the lowest pending one."
	}
	return ""
}

// ParsePolicy resolves a user-supplied policy name. Matching is
// case-insensitive and tolerates the hyphenated display forms ("C-SCAN").
func ParsePolicy(s string) (Policy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	switch norm {
	case "fcfs":
		return PolicyFCFS, nil
	case "sstf":
		return PolicySSTF, nil
	case "scan":
		return PolicySCAN, nil
	case "cscan":
		return PolicyCSCAN, nil
	case "clook":
		return PolicyCLOOK, nil
	}
	return "", fmt.Errorf("unknown scheduling policy %q", s)
}

// Policies returns the five policies in conventional comparison order.
func Policies() []Policy {
	return []Policy{PolicyFCFS, PolicySSTF, PolicySCAN, PolicyCSCAN, PolicyCLOOK}
}

// Schedule is the result of running one policy over a request queue: the
// visitation sequence, starting at the initial head position, and its total
// seek distance. BoundaryStops counts the synthetic edge visits (cylinder 0
// or diskSize-1) SCAN and C-SCAN insert when the arm runs to the disk edge;
// these appear in Sequence and in TotalSeek but correspond to no request.
type Schedule struct {
	Policy        Policy     `json:"policy"`
	Direction     Direction  `json:"direction,omitempty"`
	Sequence      []Cylinder `json:"sequence"`
	TotalSeek     int        `json:"total_seek"`
	BoundaryStops int        `json:"boundary_stops"`
}

// DisplayName returns the textbook name of the schedule's policy.
func (s Schedule) DisplayName() string {
	return s.Policy.DisplayName()
}
