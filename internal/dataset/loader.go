package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/soumikb/aquasense/internal/water"
)

// Row is one raw record from the training data file. Missing or unparseable
// values are loaded as NaN; the preprocessor decides what to drop.
type Row struct {
	Measurement water.Measurement
	Temperature float64
	Line        int // 1-based line in the source file, for diagnostics
}

// requiredColumns are the header names the loader must find. Headers are
// matched case-insensitively with spaces collapsed to underscores, so
// "Dissolved Oxygen" and "dissolved_oxygen" both bind.
var requiredColumns = []string{"ph", "turbidity", "conductivity", "dissolved_oxygen", "tds", "temperature"}

// LoadFile reads the training dataset from a CSV file.
func LoadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	rows, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return rows, nil
}

// Load reads header-named CSV records from r.
func Load(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", name)
		}
	}

	var rows []Row
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record at line %d: %w", line+1, err)
		}
		line++

		rows = append(rows, Row{
			Measurement: water.Measurement{
				PH:              fieldValue(record, cols["ph"]),
				Turbidity:       fieldValue(record, cols["turbidity"]),
				Conductivity:    fieldValue(record, cols["conductivity"]),
				DissolvedOxygen: fieldValue(record, cols["dissolved_oxygen"]),
				TDS:             fieldValue(record, cols["tds"]),
			},
			Temperature: fieldValue(record, cols["temperature"]),
			Line:        line,
		})
	}

	return rows, nil
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

// fieldValue parses one cell, mapping absent/blank/unparseable to NaN.
func fieldValue(record []string, idx int) float64 {
	if idx >= len(record) {
		return math.NaN()
	}
	s := strings.TrimSpace(record[idx])
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
