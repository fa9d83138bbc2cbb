package water

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadThresholds_Defaults(t *testing.T) {
	t.Setenv("AQUASENSE_THRESHOLDS", "")
	got, err := LoadThresholds()
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}
	if got != DefaultThresholds() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestLoadThresholds_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.json")
	content := `{"conductivity_max": 800, "tds_max": 500}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AQUASENSE_THRESHOLDS", path)

	got, err := LoadThresholds()
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}
	if got.ConductivityMax != 800 {
		t.Errorf("got conductivity_max %v, want 800", got.ConductivityMax)
	}
	if got.TDSMax != 500 {
		t.Errorf("got tds_max %v, want 500", got.TDSMax)
	}
	// Untouched keys keep their defaults.
	if got.PHMin != 6.5 {
		t.Errorf("got ph_min %v, want default 6.5", got.PHMin)
	}
}

func TestLoadThresholds_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.json")
	if err := os.WriteFile(path, []byte(`{"turbidty_max": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AQUASENSE_THRESHOLDS", path)

	if _, err := LoadThresholds(); err == nil {
		t.Errorf("misspelled key accepted, want error")
	}
}

func TestLoadThresholds_RejectsDegenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.json")
	if err := os.WriteFile(path, []byte(`{"ph_min": 9, "ph_max": 6}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AQUASENSE_THRESHOLDS", path)

	if _, err := LoadThresholds(); err == nil {
		t.Errorf("inverted pH band accepted, want error")
	}
}
