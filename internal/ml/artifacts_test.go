package ml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumikb/aquasense/internal/water"
)

func trainedArtifacts(t *testing.T) *Artifacts {
	t.Helper()
	x, y := ruleLabeledDataset()
	cfg := DefaultTrainConfig()
	cfg.Boost.Estimators = 40

	artifacts, _, err := Train(x, y, water.FeatureNames(), cfg)
	require.NoError(t, err)
	return artifacts
}

func TestArtifacts_SaveLoadRoundTrip(t *testing.T) {
	artifacts := trainedArtifacts(t)
	path := filepath.Join(t.TempDir(), "model.json")

	require.NoError(t, artifacts.Save(path))

	loaded, err := LoadArtifacts(path)
	require.NoError(t, err)

	assert.Equal(t, artifacts.RunID, loaded.RunID)
	assert.Equal(t, artifacts.FeatureNames, loaded.FeatureNames)

	// A reloaded pair must predict bit-identically to the in-memory one.
	probes := []water.Measurement{
		{PH: 7.0, Turbidity: 2, Conductivity: 300, DissolvedOxygen: 7, TDS: 192},
		{PH: 9.2, Turbidity: 9, Conductivity: 950, DissolvedOxygen: 2, TDS: 720},
		{PH: 6.5, Turbidity: 5, Conductivity: 400, DissolvedOxygen: 6.5, TDS: 400},
	}
	for _, m := range probes {
		before, err := PredictSafeProbability(m, artifacts)
		require.NoError(t, err)
		after, err := PredictSafeProbability(m, loaded)
		require.NoError(t, err)
		assert.Equal(t, before, after, "prediction drifted across persistence for %+v", m)
	}
}

func TestArtifacts_SaveOverwritesAtomically(t *testing.T) {
	artifacts := trainedArtifacts(t)
	path := filepath.Join(t.TempDir(), "model.json")

	require.NoError(t, artifacts.Save(path))
	firstRun := artifacts.RunID

	second := trainedArtifacts(t)
	require.NoError(t, second.Save(path))

	loaded, err := LoadArtifacts(path)
	require.NoError(t, err)
	assert.Equal(t, second.RunID, loaded.RunID)
	assert.NotEqual(t, firstRun, loaded.RunID)

	// No temp leftovers next to the artifact.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadArtifacts_Missing(t *testing.T) {
	_, err := LoadArtifacts(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrArtifactsUnavailable)
}

func TestLoadArtifacts_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadArtifacts(path)
	assert.ErrorIs(t, err, ErrArtifactsUnavailable)
}

func TestLoadArtifacts_WrongSchemaVersion(t *testing.T) {
	artifacts := trainedArtifacts(t)
	artifacts.SchemaVersion = ArtifactsSchemaVersion + 1
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, artifacts.Save(path))

	_, err := LoadArtifacts(path)
	assert.ErrorIs(t, err, ErrArtifactsUnavailable)
}

func TestLoadArtifacts_IncompletePair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":1,"scaler":{"means":[0],"stds":[1]}}`), 0o644))

	_, err := LoadArtifacts(path)
	assert.ErrorIs(t, err, ErrArtifactsUnavailable)
}

func TestPredict_FeatureMismatch(t *testing.T) {
	artifacts := trainedArtifacts(t)
	artifacts.FeatureNames = []string{"ph", "turbidity", "conductivity"}

	_, err := PredictSafeProbability(water.Measurement{PH: 7}, artifacts)
	assert.ErrorIs(t, err, ErrFeatureMismatch)
	assert.False(t, errors.Is(err, ErrArtifactsUnavailable), "mismatch must not masquerade as unavailability")
}

func TestPredict_ReorderedFeatures(t *testing.T) {
	artifacts := trainedArtifacts(t)
	artifacts.FeatureNames = []string{"turbidity", "ph", "conductivity", "dissolved_oxygen", "tds"}

	_, err := PredictSafeProbability(water.Measurement{PH: 7}, artifacts)
	assert.ErrorIs(t, err, ErrFeatureMismatch)
}
