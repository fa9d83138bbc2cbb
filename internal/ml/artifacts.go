package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArtifactsSchemaVersion is bumped whenever the serialized layout changes;
// a loaded pair with a different version is treated as unavailable rather
// than half-interpreted.
const ArtifactsSchemaVersion = 1

// ErrArtifactsUnavailable marks a missing, unreadable, or corrupt artifact
// pair — distinct from prediction errors like a feature-arity mismatch.
var ErrArtifactsUnavailable = errors.New("model artifacts unavailable")

// Artifacts is the persisted scaler+classifier pair. The two are fitted in
// the same run (RunID) and are only valid together.
type Artifacts struct {
	SchemaVersion int                        `json:"schema_version"`
	RunID         string                     `json:"run_id"`
	CreatedAt     time.Time                  `json:"created_at"`
	FeatureNames  []string                   `json:"feature_names"`
	Scaler        *StandardScaler            `json:"scaler"`
	Model         *GradientBoostedClassifier `json:"model"`
}

// Save writes the pair atomically: marshal to a temp file in the target
// directory, fsync, then rename over any prior pair. A reader never observes
// a partially written artifact.
func (a *Artifacts) Save(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifacts: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifacts dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".artifacts-*.json")
	if err != nil {
		return fmt.Errorf("create temp artifacts file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write artifacts: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync artifacts: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close artifacts: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace artifacts: %w", err)
	}
	return nil
}

// LoadArtifacts reads and validates a persisted pair. Every failure surfaces
// as ErrArtifactsUnavailable so callers can distinguish "no usable model"
// from a prediction error.
func LoadArtifacts(path string) (*Artifacts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactsUnavailable, err)
	}

	var a Artifacts
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: corrupt artifact file %s: %v", ErrArtifactsUnavailable, path, err)
	}

	if a.SchemaVersion != ArtifactsSchemaVersion {
		return nil, fmt.Errorf("%w: schema version %d, this build reads %d",
			ErrArtifactsUnavailable, a.SchemaVersion, ArtifactsSchemaVersion)
	}
	if a.Scaler == nil || a.Model == nil {
		return nil, fmt.Errorf("%w: incomplete pair in %s", ErrArtifactsUnavailable, path)
	}
	if a.Scaler.Dims() != a.Model.Dims {
		return nil, fmt.Errorf("%w: scaler fitted on %d features but model on %d — mixed pair",
			ErrArtifactsUnavailable, a.Scaler.Dims(), a.Model.Dims)
	}

	return &a, nil
}

// DefaultArtifactsPath resolves the artifact file location:
// AQUASENSE_ARTIFACTS, then $XDG_DATA_HOME/aquasense/model.json,
// then ~/.local/share/aquasense/model.json.
func DefaultArtifactsPath() (string, error) {
	if p := os.Getenv("AQUASENSE_ARTIFACTS"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "aquasense", "model.json"), nil
}
