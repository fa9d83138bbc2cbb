// Code generated by ent, DO NOT EDIT.

package trainingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/soumikb/aquasense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldRunID, v))
}

// RowsTotal applies equality check predicate on the "rows_total" field. It's identical to RowsTotalEQ.
func RowsTotal(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldRowsTotal, v))
}

// RowsUsed applies equality check predicate on the "rows_used" field. It's identical to RowsUsedEQ.
func RowsUsed(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldRowsUsed, v))
}

// SafeCount applies equality check predicate on the "safe_count" field. It's identical to SafeCountEQ.
func SafeCount(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldSafeCount, v))
}

// UnsafeCount applies equality check predicate on the "unsafe_count" field. It's identical to UnsafeCountEQ.
func UnsafeCount(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldUnsafeCount, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldAccuracy, v))
}

// TestSize applies equality check predicate on the "test_size" field. It's identical to TestSizeEQ.
func TestSize(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldTestSize, v))
}

// ArtifactPath applies equality check predicate on the "artifact_path" field. It's identical to ArtifactPathEQ.
func ArtifactPath(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldArtifactPath, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldContainsFold(FieldRunID, v))
}

// RowsTotalEQ applies the EQ predicate on the "rows_total" field.
func RowsTotalEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldRowsTotal, v))
}

// RowsTotalNEQ applies the NEQ predicate on the "rows_total" field.
func RowsTotalNEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldRowsTotal, v))
}

// RowsTotalIn applies the In predicate on the "rows_total" field.
func RowsTotalIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldRowsTotal, vs...))
}

// RowsTotalNotIn applies the NotIn predicate on the "rows_total" field.
func RowsTotalNotIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldRowsTotal, vs...))
}

// RowsTotalGT applies the GT predicate on the "rows_total" field.
func RowsTotalGT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldRowsTotal, v))
}

// RowsTotalGTE applies the GTE predicate on the "rows_total" field.
func RowsTotalGTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldRowsTotal, v))
}

// RowsTotalLT applies the LT predicate on the "rows_total" field.
func RowsTotalLT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldRowsTotal, v))
}

// RowsTotalLTE applies the LTE predicate on the "rows_total" field.
func RowsTotalLTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldRowsTotal, v))
}

// RowsUsedEQ applies the EQ predicate on the "rows_used" field.
func RowsUsedEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldRowsUsed, v))
}

// RowsUsedNEQ applies the NEQ predicate on the "rows_used" field.
func RowsUsedNEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldRowsUsed, v))
}

// RowsUsedIn applies the In predicate on the "rows_used" field.
func RowsUsedIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldRowsUsed, vs...))
}

// RowsUsedNotIn applies the NotIn predicate on the "rows_used" field.
func RowsUsedNotIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldRowsUsed, vs...))
}

// RowsUsedGT applies the GT predicate on the "rows_used" field.
func RowsUsedGT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldRowsUsed, v))
}

// RowsUsedGTE applies the GTE predicate on the "rows_used" field.
func RowsUsedGTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldRowsUsed, v))
}

// RowsUsedLT applies the LT predicate on the "rows_used" field.
func RowsUsedLT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldRowsUsed, v))
}

// RowsUsedLTE applies the LTE predicate on the "rows_used" field.
func RowsUsedLTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldRowsUsed, v))
}

// SafeCountEQ applies the EQ predicate on the "safe_count" field.
func SafeCountEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldSafeCount, v))
}

// SafeCountNEQ applies the NEQ predicate on the "safe_count" field.
func SafeCountNEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldSafeCount, v))
}

// SafeCountIn applies the In predicate on the "safe_count" field.
func SafeCountIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldSafeCount, vs...))
}

// SafeCountNotIn applies the NotIn predicate on the "safe_count" field.
func SafeCountNotIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldSafeCount, vs...))
}

// SafeCountGT applies the GT predicate on the "safe_count" field.
func SafeCountGT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldSafeCount, v))
}

// SafeCountGTE applies the GTE predicate on the "safe_count" field.
func SafeCountGTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldSafeCount, v))
}

// SafeCountLT applies the LT predicate on the "safe_count" field.
func SafeCountLT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldSafeCount, v))
}

// SafeCountLTE applies the LTE predicate on the "safe_count" field.
func SafeCountLTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldSafeCount, v))
}

// UnsafeCountEQ applies the EQ predicate on the "unsafe_count" field.
func UnsafeCountEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldUnsafeCount, v))
}

// UnsafeCountNEQ applies the NEQ predicate on the "unsafe_count" field.
func UnsafeCountNEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldUnsafeCount, v))
}

// UnsafeCountIn applies the In predicate on the "unsafe_count" field.
func UnsafeCountIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldUnsafeCount, vs...))
}

// UnsafeCountNotIn applies the NotIn predicate on the "unsafe_count" field.
func UnsafeCountNotIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldUnsafeCount, vs...))
}

// UnsafeCountGT applies the GT predicate on the "unsafe_count" field.
func UnsafeCountGT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldUnsafeCount, v))
}

// UnsafeCountGTE applies the GTE predicate on the "unsafe_count" field.
func UnsafeCountGTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldUnsafeCount, v))
}

// UnsafeCountLT applies the LT predicate on the "unsafe_count" field.
func UnsafeCountLT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldUnsafeCount, v))
}

// UnsafeCountLTE applies the LTE predicate on the "unsafe_count" field.
func UnsafeCountLTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldUnsafeCount, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldAccuracy, v))
}

// TestSizeEQ applies the EQ predicate on the "test_size" field.
func TestSizeEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldTestSize, v))
}

// TestSizeNEQ applies the NEQ predicate on the "test_size" field.
func TestSizeNEQ(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldTestSize, v))
}

// TestSizeIn applies the In predicate on the "test_size" field.
func TestSizeIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldTestSize, vs...))
}

// TestSizeNotIn applies the NotIn predicate on the "test_size" field.
func TestSizeNotIn(vs ...int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldTestSize, vs...))
}

// TestSizeGT applies the GT predicate on the "test_size" field.
func TestSizeGT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldTestSize, v))
}

// TestSizeGTE applies the GTE predicate on the "test_size" field.
func TestSizeGTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldTestSize, v))
}

// TestSizeLT applies the LT predicate on the "test_size" field.
func TestSizeLT(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldTestSize, v))
}

// TestSizeLTE applies the LTE predicate on the "test_size" field.
func TestSizeLTE(v int) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldTestSize, v))
}

// ArtifactPathEQ applies the EQ predicate on the "artifact_path" field.
func ArtifactPathEQ(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldArtifactPath, v))
}

// ArtifactPathNEQ applies the NEQ predicate on the "artifact_path" field.
func ArtifactPathNEQ(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldArtifactPath, v))
}

// ArtifactPathIn applies the In predicate on the "artifact_path" field.
func ArtifactPathIn(vs ...string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldArtifactPath, vs...))
}

// ArtifactPathNotIn applies the NotIn predicate on the "artifact_path" field.
func ArtifactPathNotIn(vs ...string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldArtifactPath, vs...))
}

// ArtifactPathGT applies the GT predicate on the "artifact_path" field.
func ArtifactPathGT(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldArtifactPath, v))
}

// ArtifactPathGTE applies the GTE predicate on the "artifact_path" field.
func ArtifactPathGTE(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldArtifactPath, v))
}

// ArtifactPathLT applies the LT predicate on the "artifact_path" field.
func ArtifactPathLT(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldArtifactPath, v))
}

// ArtifactPathLTE applies the LTE predicate on the "artifact_path" field.
func ArtifactPathLTE(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldArtifactPath, v))
}

// ArtifactPathContains applies the Contains predicate on the "artifact_path" field.
func ArtifactPathContains(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldContains(FieldArtifactPath, v))
}

// ArtifactPathHasPrefix applies the HasPrefix predicate on the "artifact_path" field.
func ArtifactPathHasPrefix(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldHasPrefix(FieldArtifactPath, v))
}

// ArtifactPathHasSuffix applies the HasSuffix predicate on the "artifact_path" field.
func ArtifactPathHasSuffix(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldHasSuffix(FieldArtifactPath, v))
}

// ArtifactPathEqualFold applies the EqualFold predicate on the "artifact_path" field.
func ArtifactPathEqualFold(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEqualFold(FieldArtifactPath, v))
}

// ArtifactPathContainsFold applies the ContainsFold predicate on the "artifact_path" field.
func ArtifactPathContainsFold(v string) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldContainsFold(FieldArtifactPath, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingEvent) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingEvent) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingEvent) predicate.TrainingEvent {
	return predicate.TrainingEvent(sql.NotPredicates(p))
}
