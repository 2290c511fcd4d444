package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alumni.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeed(t, `---
- Batch 2018:
    - Asha Rao:
        company: Infosys
        role: SDE II
        skills: [Go, ML]
        linkedin: in/asha
    - Ravi Kumar:
        company: Google
- Batch 2020:
    - Meera Iyer:
        fees: "₹500"
`)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(config) != 2 {
		t.Fatalf("Load() returned %d groups, want 2", len(config))
	}

	asha := config[0]["Batch 2018"][0]["Asha Rao"]
	if asha.Company != "Infosys" || asha.Role != "SDE II" {
		t.Errorf("Asha = %+v", asha)
	}
	if len(asha.Skills) != 2 || asha.Skills[1] != "ML" {
		t.Errorf("Asha skills = %v", asha.Skills)
	}
	if asha.Extra["linkedin"] != "in/asha" {
		t.Errorf("Asha extra = %v", asha.Extra)
	}
}

func TestLoaderExpandsEnv(t *testing.T) {
	t.Setenv("ALUMNET_TEST_COMPANY", "Zoho")
	path := writeSeed(t, `
- Faculty:
    - Prof. Rao:
        company: ${ALUMNET_TEST_COMPANY}
`)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := config[0]["Faculty"][0]["Prof. Rao"].Company; got != "Zoho" {
		t.Errorf("company = %q, want Zoho", got)
	}
}

func TestLoaderErrors(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Error("Load() should fail on a missing file")
	}

	path := writeSeed(t, "- Batch: [unterminated")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() should fail on invalid yaml")
	}
}
