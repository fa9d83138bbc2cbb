// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisevent type in the database.
	Label = "analysis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPh holds the string denoting the ph field in the database.
	FieldPh = "ph"
	// FieldTurbidity holds the string denoting the turbidity field in the database.
	FieldTurbidity = "turbidity"
	// FieldConductivity holds the string denoting the conductivity field in the database.
	FieldConductivity = "conductivity"
	// FieldDissolvedOxygen holds the string denoting the dissolved_oxygen field in the database.
	FieldDissolvedOxygen = "dissolved_oxygen"
	// FieldTds holds the string denoting the tds field in the database.
	FieldTds = "tds"
	// FieldRuleSafe holds the string denoting the rule_safe field in the database.
	FieldRuleSafe = "rule_safe"
	// FieldViolations holds the string denoting the violations field in the database.
	FieldViolations = "violations"
	// FieldProbability holds the string denoting the probability field in the database.
	FieldProbability = "probability"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldModelRunID holds the string denoting the model_run_id field in the database.
	FieldModelRunID = "model_run_id"
	// Table holds the table name of the analysisevent in the database.
	Table = "analysis_events"
)

// Columns holds all SQL columns for analysisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPh,
	FieldTurbidity,
	FieldConductivity,
	FieldDissolvedOxygen,
	FieldTds,
	FieldRuleSafe,
	FieldViolations,
	FieldProbability,
	FieldDecision,
	FieldModelRunID,
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
	// DecisionValidator is a validator for the "decision" field. It is called by the builders before save.
	DecisionValidator func(string) error
	// DefaultModelRunID holds the default value on creation for the "model_run_id" field.
	DefaultModelRunID string
)

// OrderOption defines the ordering options for the AnalysisEvent queries.
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

// ByPh orders the results by the ph field.
func ByPh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPh, opts...).ToFunc()
}

// ByTurbidity orders the results by the turbidity field.
func ByTurbidity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurbidity, opts...).ToFunc()
}

// ByConductivity orders the results by the conductivity field.
func ByConductivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConductivity, opts...).ToFunc()
}

// ByDissolvedOxygen orders the results by the dissolved_oxygen field.
func ByDissolvedOxygen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDissolvedOxygen, opts...).ToFunc()
}

// ByTds orders the results by the tds field.
func ByTds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTds, opts...).ToFunc()
}

// ByRuleSafe orders the results by the rule_safe field.
func ByRuleSafe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleSafe, opts...).ToFunc()
}

// ByProbability orders the results by the probability field.
func ByProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbability, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByModelRunID orders the results by the model_run_id field.
func ByModelRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelRunID, opts...).ToFunc()
}
