package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `name: worked example
head: 50
disk_size: 200
requests: [98, 183, 37, 122, 14, 124, 65, 67]
policy: scan
direction: toward-max
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Name != "worked example" {
		t.Errorf("Name = %q, want %q", sc.Name, "worked example")
	}
	if sc.Head != 50 || sc.DiskSize != 200 {
		t.Errorf("Head/DiskSize = %d/%d, want 50/200", sc.Head, sc.DiskSize)
	}
	if len(sc.Requests) != 8 || sc.Requests[0] != 98 {
		t.Errorf("Requests = %v", sc.Requests)
	}
	if sc.Policy != "scan" || sc.Direction != "toward-max" {
		t.Errorf("Policy/Direction = %q/%q", sc.Policy, sc.Direction)
	}
}

func TestParse_PolicyOptional(t *testing.T) {
	sc, err := Parse([]byte("head: 10\ndisk_size: 100\nrequests: [5]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Policy != "" {
		t.Errorf("Policy = %q, want empty", sc.Policy)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("requests: [1, 2")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Head != 50 {
		t.Errorf("Head = %d, want 50", sc.Head)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

const suiteYAML = `scenarios:
  - name: textbook
    head: 50
    disk_size: 200
    requests: [98, 183, 37, 122, 14, 124, 65, 67]
    policy: clook
  - name: shootout
    head: 50
    disk_size: 200
    requests: [98, 183, 37, 122, 14, 124, 65, 67]
`

func TestParseSuite(t *testing.T) {
	st, err := ParseSuite([]byte(suiteYAML))
	if err != nil {
		t.Fatalf("ParseSuite: %v", err)
	}
	if len(st.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, want 2", len(st.Scenarios))
	}
	if st.Scenarios[0].Policy != "clook" {
		t.Errorf("Scenarios[0].Policy = %q, want %q", st.Scenarios[0].Policy, "clook")
	}
	if st.Scenarios[1].Policy != "" {
		t.Errorf("Scenarios[1].Policy = %q, want empty", st.Scenarios[1].Policy)
	}
	if st.Scenarios[1].Name != "shootout" {
		t.Errorf("Scenarios[1].Name = %q, want %q", st.Scenarios[1].Name, "shootout")
	}
}

func TestParseSuite_Empty(t *testing.T) {
	if _, err := ParseSuite([]byte("scenarios: []\n")); err == nil {
		t.Fatal("expected error for empty suite")
	}
}

func TestParseSuite_WrongKey(t *testing.T) {
	if _, err := ParseSuite([]byte("workloads:\n  - head: 10\n")); err == nil {
		t.Fatal("expected error for missing scenarios key")
	}
}

func TestLoadSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(suiteYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	st, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	if len(st.Scenarios) != 2 {
		t.Errorf("len(Scenarios) = %d, want 2", len(st.Scenarios))
	}
}

func TestLoadSuite_MissingFile(t *testing.T) {
	if _, err := LoadSuite(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
