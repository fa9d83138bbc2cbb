package dataset

import (
	"math"

	"github.com/soumikb/aquasense/internal/water"
)

// Valid sampling temperature band, °C. Readings taken outside it are not
// representative and are excluded from training.
const (
	TempMin = 20.0
	TempMax = 30.0
)

// Sample is a cleaned training sample: the five analysis features plus the
// sampling temperature. Samples exist only for the duration of a training
// run; they are not retained after fitting.
type Sample struct {
	Measurement water.Measurement
	Temperature float64
}

// Preprocess filters raw rows into training samples: rows outside the
// temperature band are dropped, then rows with any missing value among the
// selected fields (no imputation). Input order is preserved so a seeded
// train/test split is reproducible.
func Preprocess(rows []Row) []Sample {
	samples := make([]Sample, 0, len(rows))
	for _, r := range rows {
		if math.IsNaN(r.Temperature) || r.Temperature < TempMin || r.Temperature > TempMax {
			continue
		}
		if hasMissing(r) {
			continue
		}
		samples = append(samples, Sample{
			Measurement: r.Measurement,
			Temperature: r.Temperature,
		})
	}
	return samples
}

func hasMissing(r Row) bool {
	for _, v := range r.Measurement.Features() {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
