// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/soumikb/aquasense/ent/analysisevent"
)

// AnalysisEvent is the model entity for the AnalysisEvent schema.
type AnalysisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Ph holds the value of the "ph" field.
	Ph float64 `json:"ph,omitempty"`
	// NTU
	Turbidity float64 `json:"turbidity,omitempty"`
	// µS/cm
	Conductivity float64 `json:"conductivity,omitempty"`
	// mg/L
	DissolvedOxygen float64 `json:"dissolved_oxygen,omitempty"`
	// mg/L
	Tds float64 `json:"tds,omitempty"`
	// Whether the sample passed every threshold rule
	RuleSafe bool `json:"rule_safe,omitempty"`
	// Parameter names that failed their rule, in canonical order
	Violations []string `json:"violations,omitempty"`
	// Model probability of safety; absent when no model artifacts were available
	Probability *float64 `json:"probability,omitempty"`
	// Final call: safe, unsafe, treatable
	Decision string `json:"decision,omitempty"`
	// Training run that produced the model used, if any
	ModelRunID   string `json:"model_run_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldViolations:
			values[i] = new([]byte)
		case analysisevent.FieldRuleSafe:
			values[i] = new(sql.NullBool)
		case analysisevent.FieldPh, analysisevent.FieldTurbidity, analysisevent.FieldConductivity, analysisevent.FieldDissolvedOxygen, analysisevent.FieldTds, analysisevent.FieldProbability:
			values[i] = new(sql.NullFloat64)
		case analysisevent.FieldID, analysisevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case analysisevent.FieldDecision, analysisevent.FieldModelRunID:
			values[i] = new(sql.NullString)
		case analysisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisEvent fields.
func (_m *AnalysisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case analysisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case analysisevent.FieldPh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ph", values[i])
			} else if value.Valid {
				_m.Ph = value.Float64
			}
		case analysisevent.FieldTurbidity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field turbidity", values[i])
			} else if value.Valid {
				_m.Turbidity = value.Float64
			}
		case analysisevent.FieldConductivity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field conductivity", values[i])
			} else if value.Valid {
				_m.Conductivity = value.Float64
			}
		case analysisevent.FieldDissolvedOxygen:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field dissolved_oxygen", values[i])
			} else if value.Valid {
				_m.DissolvedOxygen = value.Float64
			}
		case analysisevent.FieldTds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tds", values[i])
			} else if value.Valid {
				_m.Tds = value.Float64
			}
		case analysisevent.FieldRuleSafe:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field rule_safe", values[i])
			} else if value.Valid {
				_m.RuleSafe = value.Bool
			}
		case analysisevent.FieldViolations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field violations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Violations); err != nil {
					return fmt.Errorf("unmarshal field violations: %w", err)
				}
			}
		case analysisevent.FieldProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field probability", values[i])
			} else if value.Valid {
				_m.Probability = new(float64)
				*_m.Probability = value.Float64
			}
		case analysisevent.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case analysisevent.FieldModelRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_run_id", values[i])
			} else if value.Valid {
				_m.ModelRunID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisEvent.
// Note that you need to call AnalysisEvent.Unwrap() before calling this method if this AnalysisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisEvent) Update() *AnalysisEventUpdateOne {
	return NewAnalysisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisEvent) Unwrap() *AnalysisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ph=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ph))
	builder.WriteString(", ")
	builder.WriteString("turbidity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Turbidity))
	builder.WriteString(", ")
	builder.WriteString("conductivity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conductivity))
	builder.WriteString(", ")
	builder.WriteString("dissolved_oxygen=")
	builder.WriteString(fmt.Sprintf("%v", _m.DissolvedOxygen))
	builder.WriteString(", ")
	builder.WriteString("tds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tds))
	builder.WriteString(", ")
	builder.WriteString("rule_safe=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleSafe))
	builder.WriteString(", ")
	builder.WriteString("violations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Violations))
	builder.WriteString(", ")
	if v := _m.Probability; v != nil {
		builder.WriteString("probability=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	builder.WriteString("model_run_id=")
	builder.WriteString(_m.ModelRunID)
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisEvents is a parsable slice of AnalysisEvent.
type AnalysisEvents []*AnalysisEvent
