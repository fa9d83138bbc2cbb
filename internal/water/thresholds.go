package water

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Thresholds holds the WHO-derived acceptance limits for all five parameters.
// One instance is shared by the training labeler and the serving evaluator so
// a threshold change can never cause train/serve skew.
type Thresholds struct {
	PHMin              float64 `json:"ph_min"`
	PHMax              float64 `json:"ph_max"`
	TurbidityMax       float64 `json:"turbidity_max"`
	ConductivityMax    float64 `json:"conductivity_max"`
	DissolvedOxygenMin float64 `json:"dissolved_oxygen_min"`
	TDSMax             float64 `json:"tds_max"`
}

// DefaultThresholds returns the WHO guidance values used by the original
// deployment: pH 6.5–8.5, turbidity ≤ 5 NTU, conductivity ≤ 400 µS/cm,
// dissolved oxygen ≥ 6.5 mg/L, TDS ≤ 400 ppm.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PHMin:              6.5,
		PHMax:              8.5,
		TurbidityMax:       5,
		ConductivityMax:    400,
		DissolvedOxygenMin: 6.5,
		TDSMax:             400,
	}
}

// LoadThresholds returns the defaults, overridden by the JSON file named in
// AQUASENSE_THRESHOLDS when set. Unknown keys in the file are rejected so a
// typo can't silently leave a limit at its default.
func LoadThresholds() (Thresholds, error) {
	t := DefaultThresholds()

	path := os.Getenv("AQUASENSE_THRESHOLDS")
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("read thresholds file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return Thresholds{}, fmt.Errorf("parse thresholds file %s: %w", path, err)
	}

	if err := t.Validate(); err != nil {
		return Thresholds{}, fmt.Errorf("thresholds file %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects threshold sets that would make the rule gate degenerate.
func (t Thresholds) Validate() error {
	if t.PHMin >= t.PHMax {
		return fmt.Errorf("ph_min (%v) must be below ph_max (%v)", t.PHMin, t.PHMax)
	}
	if t.TurbidityMax <= 0 {
		return fmt.Errorf("turbidity_max must be positive, got %v", t.TurbidityMax)
	}
	if t.ConductivityMax <= 0 {
		return fmt.Errorf("conductivity_max must be positive, got %v", t.ConductivityMax)
	}
	if t.DissolvedOxygenMin < 0 {
		return fmt.Errorf("dissolved_oxygen_min must not be negative, got %v", t.DissolvedOxygenMin)
	}
	if t.TDSMax <= 0 {
		return fmt.Errorf("tds_max must be positive, got %v", t.TDSMax)
	}
	return nil
}
