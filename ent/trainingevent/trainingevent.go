// Code generated by ent, DO NOT EDIT.

package trainingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trainingevent type in the database.
	Label = "training_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldRowsTotal holds the string denoting the rows_total field in the database.
	FieldRowsTotal = "rows_total"
	// FieldRowsUsed holds the string denoting the rows_used field in the database.
	FieldRowsUsed = "rows_used"
	// FieldSafeCount holds the string denoting the safe_count field in the database.
	FieldSafeCount = "safe_count"
	// FieldUnsafeCount holds the string denoting the unsafe_count field in the database.
	FieldUnsafeCount = "unsafe_count"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldTestSize holds the string denoting the test_size field in the database.
	FieldTestSize = "test_size"
	// FieldArtifactPath holds the string denoting the artifact_path field in the database.
	FieldArtifactPath = "artifact_path"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// Table holds the table name of the trainingevent in the database.
	Table = "training_events"
)

// Columns holds all SQL columns for trainingevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldRowsTotal,
	FieldRowsUsed,
	FieldSafeCount,
	FieldUnsafeCount,
	FieldAccuracy,
	FieldTestSize,
	FieldArtifactPath,
	FieldDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// ArtifactPathValidator is a validator for the "artifact_path" field. It is called by the builders before save.
	ArtifactPathValidator func(string) error
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// OrderOption defines the ordering options for the TrainingEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByRowsTotal orders the results by the rows_total field.
func ByRowsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsTotal, opts...).ToFunc()
}

// ByRowsUsed orders the results by the rows_used field.
func ByRowsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsUsed, opts...).ToFunc()
}

// BySafeCount orders the results by the safe_count field.
func BySafeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSafeCount, opts...).ToFunc()
}

// ByUnsafeCount orders the results by the unsafe_count field.
func ByUnsafeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnsafeCount, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByTestSize orders the results by the test_size field.
func ByTestSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestSize, opts...).ToFunc()
}

// ByArtifactPath orders the results by the artifact_path field.
func ByArtifactPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactPath, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
