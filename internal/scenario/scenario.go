// Package scenario loads simulation workloads from YAML files, so runs can
// be kept in version control and replayed.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a stored simulation workload. Policy is optional; when empty
// the scenario is run under every policy.
type Scenario struct {
	Name      string `yaml:"name"`
	Head      int    `yaml:"head"`
	DiskSize  int    `yaml:"disk_size"`
	Requests  []int  `yaml:"requests"`
	Policy    string `yaml:"policy,omitempty"`
	Direction string `yaml:"direction,omitempty"`
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scenario document. Range checking is left to the
// caller; see the request package.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &sc, nil
}

// Suite is a batch of scenarios run back to back.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadSuite reads and decodes a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	st, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// ParseSuite decodes a YAML suite document. A suite without scenarios is
// rejected so a mistyped key fails loudly instead of running nothing.
func ParseSuite(data []byte) (*Suite, error) {
	var st Suite
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	if len(st.Scenarios) == 0 {
		return nil, fmt.Errorf("parse suite: no scenarios listed")
	}
	return &st, nil
}
