// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/soumikb/aquasense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Ph applies equality check predicate on the "ph" field. It's identical to PhEQ.
func Ph(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldPh, v))
}

// Turbidity applies equality check predicate on the "turbidity" field. It's identical to TurbidityEQ.
func Turbidity(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTurbidity, v))
}

// Conductivity applies equality check predicate on the "conductivity" field. It's identical to ConductivityEQ.
func Conductivity(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldConductivity, v))
}

// DissolvedOxygen applies equality check predicate on the "dissolved_oxygen" field. It's identical to DissolvedOxygenEQ.
func DissolvedOxygen(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldDissolvedOxygen, v))
}

// Tds applies equality check predicate on the "tds" field. It's identical to TdsEQ.
func Tds(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTds, v))
}

// RuleSafe applies equality check predicate on the "rule_safe" field. It's identical to RuleSafeEQ.
func RuleSafe(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldRuleSafe, v))
}

// Probability applies equality check predicate on the "probability" field. It's identical to ProbabilityEQ.
func Probability(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldProbability, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldDecision, v))
}

// ModelRunID applies equality check predicate on the "model_run_id" field. It's identical to ModelRunIDEQ.
func ModelRunID(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldModelRunID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PhEQ applies the EQ predicate on the "ph" field.
func PhEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldPh, v))
}

// PhNEQ applies the NEQ predicate on the "ph" field.
func PhNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldPh, v))
}

// PhIn applies the In predicate on the "ph" field.
func PhIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldPh, vs...))
}

// PhNotIn applies the NotIn predicate on the "ph" field.
func PhNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldPh, vs...))
}

// PhGT applies the GT predicate on the "ph" field.
func PhGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldPh, v))
}

// PhGTE applies the GTE predicate on the "ph" field.
func PhGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldPh, v))
}

// PhLT applies the LT predicate on the "ph" field.
func PhLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldPh, v))
}

// PhLTE applies the LTE predicate on the "ph" field.
func PhLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldPh, v))
}

// TurbidityEQ applies the EQ predicate on the "turbidity" field.
func TurbidityEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTurbidity, v))
}

// TurbidityNEQ applies the NEQ predicate on the "turbidity" field.
func TurbidityNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTurbidity, v))
}

// TurbidityIn applies the In predicate on the "turbidity" field.
func TurbidityIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTurbidity, vs...))
}

// TurbidityNotIn applies the NotIn predicate on the "turbidity" field.
func TurbidityNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTurbidity, vs...))
}

// TurbidityGT applies the GT predicate on the "turbidity" field.
func TurbidityGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTurbidity, v))
}

// TurbidityGTE applies the GTE predicate on the "turbidity" field.
func TurbidityGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTurbidity, v))
}

// TurbidityLT applies the LT predicate on the "turbidity" field.
func TurbidityLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTurbidity, v))
}

// TurbidityLTE applies the LTE predicate on the "turbidity" field.
func TurbidityLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTurbidity, v))
}

// ConductivityEQ applies the EQ predicate on the "conductivity" field.
func ConductivityEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldConductivity, v))
}

// ConductivityNEQ applies the NEQ predicate on the "conductivity" field.
func ConductivityNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldConductivity, v))
}

// ConductivityIn applies the In predicate on the "conductivity" field.
func ConductivityIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldConductivity, vs...))
}

// ConductivityNotIn applies the NotIn predicate on the "conductivity" field.
func ConductivityNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldConductivity, vs...))
}

// ConductivityGT applies the GT predicate on the "conductivity" field.
func ConductivityGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldConductivity, v))
}

// ConductivityGTE applies the GTE predicate on the "conductivity" field.
func ConductivityGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldConductivity, v))
}

// ConductivityLT applies the LT predicate on the "conductivity" field.
func ConductivityLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldConductivity, v))
}

// ConductivityLTE applies the LTE predicate on the "conductivity" field.
func ConductivityLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldConductivity, v))
}

// DissolvedOxygenEQ applies the EQ predicate on the "dissolved_oxygen" field.
func DissolvedOxygenEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldDissolvedOxygen, v))
}

// DissolvedOxygenNEQ applies the NEQ predicate on the "dissolved_oxygen" field.
func DissolvedOxygenNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldDissolvedOxygen, v))
}

// DissolvedOxygenIn applies the In predicate on the "dissolved_oxygen" field.
func DissolvedOxygenIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldDissolvedOxygen, vs...))
}

// DissolvedOxygenNotIn applies the NotIn predicate on the "dissolved_oxygen" field.
func DissolvedOxygenNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldDissolvedOxygen, vs...))
}

// DissolvedOxygenGT applies the GT predicate on the "dissolved_oxygen" field.
func DissolvedOxygenGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldDissolvedOxygen, v))
}

// DissolvedOxygenGTE applies the GTE predicate on the "dissolved_oxygen" field.
func DissolvedOxygenGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldDissolvedOxygen, v))
}

// DissolvedOxygenLT applies the LT predicate on the "dissolved_oxygen" field.
func DissolvedOxygenLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldDissolvedOxygen, v))
}

// DissolvedOxygenLTE applies the LTE predicate on the "dissolved_oxygen" field.
func DissolvedOxygenLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldDissolvedOxygen, v))
}

// TdsEQ applies the EQ predicate on the "tds" field.
func TdsEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTds, v))
}

// TdsNEQ applies the NEQ predicate on the "tds" field.
func TdsNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTds, v))
}

// TdsIn applies the In predicate on the "tds" field.
func TdsIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTds, vs...))
}

// TdsNotIn applies the NotIn predicate on the "tds" field.
func TdsNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTds, vs...))
}

// TdsGT applies the GT predicate on the "tds" field.
func TdsGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTds, v))
}

// TdsGTE applies the GTE predicate on the "tds" field.
func TdsGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTds, v))
}

// TdsLT applies the LT predicate on the "tds" field.
func TdsLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTds, v))
}

// TdsLTE applies the LTE predicate on the "tds" field.
func TdsLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTds, v))
}

// RuleSafeEQ applies the EQ predicate on the "rule_safe" field.
func RuleSafeEQ(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldRuleSafe, v))
}

// RuleSafeNEQ applies the NEQ predicate on the "rule_safe" field.
func RuleSafeNEQ(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldRuleSafe, v))
}

// ViolationsIsNil applies the IsNil predicate on the "violations" field.
func ViolationsIsNil() predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIsNull(FieldViolations))
}

// ViolationsNotNil applies the NotNil predicate on the "violations" field.
func ViolationsNotNil() predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotNull(FieldViolations))
}

// ProbabilityEQ applies the EQ predicate on the "probability" field.
func ProbabilityEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldProbability, v))
}

// ProbabilityNEQ applies the NEQ predicate on the "probability" field.
func ProbabilityNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldProbability, v))
}

// ProbabilityIn applies the In predicate on the "probability" field.
func ProbabilityIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldProbability, vs...))
}

// ProbabilityNotIn applies the NotIn predicate on the "probability" field.
func ProbabilityNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldProbability, vs...))
}

// ProbabilityGT applies the GT predicate on the "probability" field.
func ProbabilityGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldProbability, v))
}

// ProbabilityGTE applies the GTE predicate on the "probability" field.
func ProbabilityGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldProbability, v))
}

// ProbabilityLT applies the LT predicate on the "probability" field.
func ProbabilityLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldProbability, v))
}

// ProbabilityLTE applies the LTE predicate on the "probability" field.
func ProbabilityLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldProbability, v))
}

// ProbabilityIsNil applies the IsNil predicate on the "probability" field.
func ProbabilityIsNil() predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIsNull(FieldProbability))
}

// ProbabilityNotNil applies the NotNil predicate on the "probability" field.
func ProbabilityNotNil() predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotNull(FieldProbability))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldDecision, v))
}

// ModelRunIDEQ applies the EQ predicate on the "model_run_id" field.
func ModelRunIDEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldModelRunID, v))
}

// ModelRunIDNEQ applies the NEQ predicate on the "model_run_id" field.
func ModelRunIDNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldModelRunID, v))
}

// ModelRunIDIn applies the In predicate on the "model_run_id" field.
func ModelRunIDIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldModelRunID, vs...))
}

// ModelRunIDNotIn applies the NotIn predicate on the "model_run_id" field.
func ModelRunIDNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldModelRunID, vs...))
}

// ModelRunIDGT applies the GT predicate on the "model_run_id" field.
func ModelRunIDGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldModelRunID, v))
}

// ModelRunIDGTE applies the GTE predicate on the "model_run_id" field.
func ModelRunIDGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldModelRunID, v))
}

// ModelRunIDLT applies the LT predicate on the "model_run_id" field.
func ModelRunIDLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldModelRunID, v))
}

// ModelRunIDLTE applies the LTE predicate on the "model_run_id" field.
func ModelRunIDLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldModelRunID, v))
}

// ModelRunIDContains applies the Contains predicate on the "model_run_id" field.
func ModelRunIDContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldModelRunID, v))
}

// ModelRunIDHasPrefix applies the HasPrefix predicate on the "model_run_id" field.
func ModelRunIDHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldModelRunID, v))
}

// ModelRunIDHasSuffix applies the HasSuffix predicate on the "model_run_id" field.
func ModelRunIDHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldModelRunID, v))
}

// ModelRunIDIsNil applies the IsNil predicate on the "model_run_id" field.
func ModelRunIDIsNil() predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIsNull(FieldModelRunID))
}

// ModelRunIDNotNil applies the NotNil predicate on the "model_run_id" field.
func ModelRunIDNotNil() predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotNull(FieldModelRunID))
}

// ModelRunIDEqualFold applies the EqualFold predicate on the "model_run_id" field.
func ModelRunIDEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldModelRunID, v))
}

// ModelRunIDContainsFold applies the ContainsFold predicate on the "model_run_id" field.
func ModelRunIDContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldModelRunID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.NotPredicates(p))
}
