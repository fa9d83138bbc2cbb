// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/soumikb/aquasense/ent/trainingevent"
)

// TrainingEvent is the model entity for the TrainingEvent schema.
type TrainingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Identifier shared with the persisted artifacts
	RunID string `json:"run_id,omitempty"`
	// Rows in the source dataset before preprocessing
	RowsTotal int `json:"rows_total,omitempty"`
	// Rows remaining after the temperature band and missing-value filters
	RowsUsed int `json:"rows_used,omitempty"`
	// SafeCount holds the value of the "safe_count" field.
	SafeCount int `json:"safe_count,omitempty"`
	// UnsafeCount holds the value of the "unsafe_count" field.
	UnsafeCount int `json:"unsafe_count,omitempty"`
	// Held-out accuracy
	Accuracy float64 `json:"accuracy,omitempty"`
	// TestSize holds the value of the "test_size" field.
	TestSize int `json:"test_size,omitempty"`
	// ArtifactPath holds the value of the "artifact_path" field.
	ArtifactPath string `json:"artifact_path,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs   int64 `json:"duration_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrainingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trainingevent.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case trainingevent.FieldID, trainingevent.FieldSequence, trainingevent.FieldRowsTotal, trainingevent.FieldRowsUsed, trainingevent.FieldSafeCount, trainingevent.FieldUnsafeCount, trainingevent.FieldTestSize, trainingevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case trainingevent.FieldRunID, trainingevent.FieldArtifactPath:
			values[i] = new(sql.NullString)
		case trainingevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrainingEvent fields.
func (_m *TrainingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trainingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trainingevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case trainingevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case trainingevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case trainingevent.FieldRowsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_total", values[i])
			} else if value.Valid {
				_m.RowsTotal = int(value.Int64)
			}
		case trainingevent.FieldRowsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_used", values[i])
			} else if value.Valid {
				_m.RowsUsed = int(value.Int64)
			}
		case trainingevent.FieldSafeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field safe_count", values[i])
			} else if value.Valid {
				_m.SafeCount = int(value.Int64)
			}
		case trainingevent.FieldUnsafeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unsafe_count", values[i])
			} else if value.Valid {
				_m.UnsafeCount = int(value.Int64)
			}
		case trainingevent.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case trainingevent.FieldTestSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field test_size", values[i])
			} else if value.Valid {
				_m.TestSize = int(value.Int64)
			}
		case trainingevent.FieldArtifactPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_path", values[i])
			} else if value.Valid {
				_m.ArtifactPath = value.String
			}
		case trainingevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrainingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TrainingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrainingEvent.
// Note that you need to call TrainingEvent.Unwrap() before calling this method if this TrainingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrainingEvent) Update() *TrainingEventUpdateOne {
	return NewTrainingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrainingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrainingEvent) Unwrap() *TrainingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrainingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrainingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TrainingEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("rows_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsTotal))
	builder.WriteString(", ")
	builder.WriteString("rows_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsUsed))
	builder.WriteString(", ")
	builder.WriteString("safe_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SafeCount))
	builder.WriteString(", ")
	builder.WriteString("unsafe_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnsafeCount))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("test_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestSize))
	builder.WriteString(", ")
	builder.WriteString("artifact_path=")
	builder.WriteString(_m.ArtifactPath)
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// TrainingEvents is a parsable slice of TrainingEvent.
type TrainingEvents []*TrainingEvent
