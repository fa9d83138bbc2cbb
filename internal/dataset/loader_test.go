package dataset

import (
	"math"
	"strings"
	"testing"
)

const sampleCSV = `ph,turbidity,conductivity,Dissolved Oxygen,tds,Temperature
7.0,2,300,7,192,25
9.1,3,350,6.8,224,22
7.2,,310,7.1,198,24
6.8,1.5,280,7.5,179,35
bad,2,300,7,192,26
`

func TestLoad_HeaderMapping(t *testing.T) {
	rows, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}

	first := rows[0]
	if first.Measurement.PH != 7.0 || first.Measurement.TDS != 192 || first.Temperature != 25 {
		t.Errorf("first row parsed wrong: %+v", first)
	}
	if first.Line != 2 {
		t.Errorf("got line %d, want 2", first.Line)
	}
}

func TestLoad_MissingAndUnparseableBecomeNaN(t *testing.T) {
	rows, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(rows[2].Measurement.Turbidity) {
		t.Errorf("blank cell: got %v, want NaN", rows[2].Measurement.Turbidity)
	}
	if !math.IsNaN(rows[4].Measurement.PH) {
		t.Errorf("unparseable cell: got %v, want NaN", rows[4].Measurement.PH)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	csv := "ph,turbidity,conductivity,tds,temperature\n7,2,300,192,25\n"
	if _, err := Load(strings.NewReader(csv)); err == nil {
		t.Errorf("missing dissolved_oxygen column accepted, want error")
	}
}

func TestLoad_Empty(t *testing.T) {
	if _, err := Load(strings.NewReader("")); err == nil {
		t.Errorf("empty input accepted, want error")
	}
}
