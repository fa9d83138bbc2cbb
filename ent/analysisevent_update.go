// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/soumikb/aquasense/ent/analysisevent"
	"github.com/soumikb/aquasense/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPh sets the "ph" field.
func (_u *AnalysisEventUpdate) SetPh(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetPh()
	_u.mutation.SetPh(v)
	return _u
}

// SetNillablePh sets the "ph" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillablePh(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetPh(*v)
	}
	return _u
}

// AddPh adds value to the "ph" field.
func (_u *AnalysisEventUpdate) AddPh(v float64) *AnalysisEventUpdate {
	_u.mutation.AddPh(v)
	return _u
}

// SetTurbidity sets the "turbidity" field.
func (_u *AnalysisEventUpdate) SetTurbidity(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetTurbidity()
	_u.mutation.SetTurbidity(v)
	return _u
}

// SetNillableTurbidity sets the "turbidity" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTurbidity(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTurbidity(*v)
	}
	return _u
}

// AddTurbidity adds value to the "turbidity" field.
func (_u *AnalysisEventUpdate) AddTurbidity(v float64) *AnalysisEventUpdate {
	_u.mutation.AddTurbidity(v)
	return _u
}

// SetConductivity sets the "conductivity" field.
func (_u *AnalysisEventUpdate) SetConductivity(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetConductivity()
	_u.mutation.SetConductivity(v)
	return _u
}

// SetNillableConductivity sets the "conductivity" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableConductivity(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetConductivity(*v)
	}
	return _u
}

// AddConductivity adds value to the "conductivity" field.
func (_u *AnalysisEventUpdate) AddConductivity(v float64) *AnalysisEventUpdate {
	_u.mutation.AddConductivity(v)
	return _u
}

// SetDissolvedOxygen sets the "dissolved_oxygen" field.
func (_u *AnalysisEventUpdate) SetDissolvedOxygen(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetDissolvedOxygen()
	_u.mutation.SetDissolvedOxygen(v)
	return _u
}

// SetNillableDissolvedOxygen sets the "dissolved_oxygen" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableDissolvedOxygen(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetDissolvedOxygen(*v)
	}
	return _u
}

// AddDissolvedOxygen adds value to the "dissolved_oxygen" field.
func (_u *AnalysisEventUpdate) AddDissolvedOxygen(v float64) *AnalysisEventUpdate {
	_u.mutation.AddDissolvedOxygen(v)
	return _u
}

// SetTds sets the "tds" field.
func (_u *AnalysisEventUpdate) SetTds(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetTds()
	_u.mutation.SetTds(v)
	return _u
}

// SetNillableTds sets the "tds" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTds(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTds(*v)
	}
	return _u
}

// AddTds adds value to the "tds" field.
func (_u *AnalysisEventUpdate) AddTds(v float64) *AnalysisEventUpdate {
	_u.mutation.AddTds(v)
	return _u
}

// SetRuleSafe sets the "rule_safe" field.
func (_u *AnalysisEventUpdate) SetRuleSafe(v bool) *AnalysisEventUpdate {
	_u.mutation.SetRuleSafe(v)
	return _u
}

// SetNillableRuleSafe sets the "rule_safe" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableRuleSafe(v *bool) *AnalysisEventUpdate {
	if v != nil {
		_u.SetRuleSafe(*v)
	}
	return _u
}

// SetViolations sets the "violations" field.
func (_u *AnalysisEventUpdate) SetViolations(v []string) *AnalysisEventUpdate {
	_u.mutation.SetViolations(v)
	return _u
}

// AppendViolations appends value to the "violations" field.
func (_u *AnalysisEventUpdate) AppendViolations(v []string) *AnalysisEventUpdate {
	_u.mutation.AppendViolations(v)
	return _u
}

// ClearViolations clears the value of the "violations" field.
func (_u *AnalysisEventUpdate) ClearViolations() *AnalysisEventUpdate {
	_u.mutation.ClearViolations()
	return _u
}

// SetProbability sets the "probability" field.
func (_u *AnalysisEventUpdate) SetProbability(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableProbability(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *AnalysisEventUpdate) AddProbability(v float64) *AnalysisEventUpdate {
	_u.mutation.AddProbability(v)
	return _u
}

// ClearProbability clears the value of the "probability" field.
func (_u *AnalysisEventUpdate) ClearProbability() *AnalysisEventUpdate {
	_u.mutation.ClearProbability()
	return _u
}

// SetDecision sets the "decision" field.
func (_u *AnalysisEventUpdate) SetDecision(v string) *AnalysisEventUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableDecision(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetModelRunID sets the "model_run_id" field.
func (_u *AnalysisEventUpdate) SetModelRunID(v string) *AnalysisEventUpdate {
	_u.mutation.SetModelRunID(v)
	return _u
}

// SetNillableModelRunID sets the "model_run_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableModelRunID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetModelRunID(*v)
	}
	return _u
}

// ClearModelRunID clears the value of the "model_run_id" field.
func (_u *AnalysisEventUpdate) ClearModelRunID() *AnalysisEventUpdate {
	_u.mutation.ClearModelRunID()
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := analysisevent.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ph(); ok {
		_spec.SetField(analysisevent.FieldPh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPh(); ok {
		_spec.AddField(analysisevent.FieldPh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Turbidity(); ok {
		_spec.SetField(analysisevent.FieldTurbidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTurbidity(); ok {
		_spec.AddField(analysisevent.FieldTurbidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Conductivity(); ok {
		_spec.SetField(analysisevent.FieldConductivity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConductivity(); ok {
		_spec.AddField(analysisevent.FieldConductivity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DissolvedOxygen(); ok {
		_spec.SetField(analysisevent.FieldDissolvedOxygen, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDissolvedOxygen(); ok {
		_spec.AddField(analysisevent.FieldDissolvedOxygen, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tds(); ok {
		_spec.SetField(analysisevent.FieldTds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTds(); ok {
		_spec.AddField(analysisevent.FieldTds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RuleSafe(); ok {
		_spec.SetField(analysisevent.FieldRuleSafe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Violations(); ok {
		_spec.SetField(analysisevent.FieldViolations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedViolations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisevent.FieldViolations, value)
		})
	}
	if _u.mutation.ViolationsCleared() {
		_spec.ClearField(analysisevent.FieldViolations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(analysisevent.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(analysisevent.FieldProbability, field.TypeFloat64, value)
	}
	if _u.mutation.ProbabilityCleared() {
		_spec.ClearField(analysisevent.FieldProbability, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(analysisevent.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelRunID(); ok {
		_spec.SetField(analysisevent.FieldModelRunID, field.TypeString, value)
	}
	if _u.mutation.ModelRunIDCleared() {
		_spec.ClearField(analysisevent.FieldModelRunID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetPh sets the "ph" field.
func (_u *AnalysisEventUpdateOne) SetPh(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetPh()
	_u.mutation.SetPh(v)
	return _u
}

// SetNillablePh sets the "ph" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillablePh(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetPh(*v)
	}
	return _u
}

// AddPh adds value to the "ph" field.
func (_u *AnalysisEventUpdateOne) AddPh(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddPh(v)
	return _u
}

// SetTurbidity sets the "turbidity" field.
func (_u *AnalysisEventUpdateOne) SetTurbidity(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetTurbidity()
	_u.mutation.SetTurbidity(v)
	return _u
}

// SetNillableTurbidity sets the "turbidity" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTurbidity(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTurbidity(*v)
	}
	return _u
}

// AddTurbidity adds value to the "turbidity" field.
func (_u *AnalysisEventUpdateOne) AddTurbidity(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddTurbidity(v)
	return _u
}

// SetConductivity sets the "conductivity" field.
func (_u *AnalysisEventUpdateOne) SetConductivity(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetConductivity()
	_u.mutation.SetConductivity(v)
	return _u
}

// SetNillableConductivity sets the "conductivity" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableConductivity(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetConductivity(*v)
	}
	return _u
}

// AddConductivity adds value to the "conductivity" field.
func (_u *AnalysisEventUpdateOne) AddConductivity(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddConductivity(v)
	return _u
}

// SetDissolvedOxygen sets the "dissolved_oxygen" field.
func (_u *AnalysisEventUpdateOne) SetDissolvedOxygen(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetDissolvedOxygen()
	_u.mutation.SetDissolvedOxygen(v)
	return _u
}

// SetNillableDissolvedOxygen sets the "dissolved_oxygen" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableDissolvedOxygen(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetDissolvedOxygen(*v)
	}
	return _u
}

// AddDissolvedOxygen adds value to the "dissolved_oxygen" field.
func (_u *AnalysisEventUpdateOne) AddDissolvedOxygen(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddDissolvedOxygen(v)
	return _u
}

// SetTds sets the "tds" field.
func (_u *AnalysisEventUpdateOne) SetTds(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetTds()
	_u.mutation.SetTds(v)
	return _u
}

// SetNillableTds sets the "tds" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTds(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTds(*v)
	}
	return _u
}

// AddTds adds value to the "tds" field.
func (_u *AnalysisEventUpdateOne) AddTds(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddTds(v)
	return _u
}

// SetRuleSafe sets the "rule_safe" field.
func (_u *AnalysisEventUpdateOne) SetRuleSafe(v bool) *AnalysisEventUpdateOne {
	_u.mutation.SetRuleSafe(v)
	return _u
}

// SetNillableRuleSafe sets the "rule_safe" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableRuleSafe(v *bool) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetRuleSafe(*v)
	}
	return _u
}

// SetViolations sets the "violations" field.
func (_u *AnalysisEventUpdateOne) SetViolations(v []string) *AnalysisEventUpdateOne {
	_u.mutation.SetViolations(v)
	return _u
}

// AppendViolations appends value to the "violations" field.
func (_u *AnalysisEventUpdateOne) AppendViolations(v []string) *AnalysisEventUpdateOne {
	_u.mutation.AppendViolations(v)
	return _u
}

// ClearViolations clears the value of the "violations" field.
func (_u *AnalysisEventUpdateOne) ClearViolations() *AnalysisEventUpdateOne {
	_u.mutation.ClearViolations()
	return _u
}

// SetProbability sets the "probability" field.
func (_u *AnalysisEventUpdateOne) SetProbability(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableProbability(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *AnalysisEventUpdateOne) AddProbability(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddProbability(v)
	return _u
}

// ClearProbability clears the value of the "probability" field.
func (_u *AnalysisEventUpdateOne) ClearProbability() *AnalysisEventUpdateOne {
	_u.mutation.ClearProbability()
	return _u
}

// SetDecision sets the "decision" field.
func (_u *AnalysisEventUpdateOne) SetDecision(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableDecision(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetModelRunID sets the "model_run_id" field.
func (_u *AnalysisEventUpdateOne) SetModelRunID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetModelRunID(v)
	return _u
}

// SetNillableModelRunID sets the "model_run_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableModelRunID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetModelRunID(*v)
	}
	return _u
}

// ClearModelRunID clears the value of the "model_run_id" field.
func (_u *AnalysisEventUpdateOne) ClearModelRunID() *AnalysisEventUpdateOne {
	_u.mutation.ClearModelRunID()
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := analysisevent.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ph(); ok {
		_spec.SetField(analysisevent.FieldPh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPh(); ok {
		_spec.AddField(analysisevent.FieldPh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Turbidity(); ok {
		_spec.SetField(analysisevent.FieldTurbidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTurbidity(); ok {
		_spec.AddField(analysisevent.FieldTurbidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Conductivity(); ok {
		_spec.SetField(analysisevent.FieldConductivity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConductivity(); ok {
		_spec.AddField(analysisevent.FieldConductivity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DissolvedOxygen(); ok {
		_spec.SetField(analysisevent.FieldDissolvedOxygen, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDissolvedOxygen(); ok {
		_spec.AddField(analysisevent.FieldDissolvedOxygen, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tds(); ok {
		_spec.SetField(analysisevent.FieldTds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTds(); ok {
		_spec.AddField(analysisevent.FieldTds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RuleSafe(); ok {
		_spec.SetField(analysisevent.FieldRuleSafe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Violations(); ok {
		_spec.SetField(analysisevent.FieldViolations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedViolations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisevent.FieldViolations, value)
		})
	}
	if _u.mutation.ViolationsCleared() {
		_spec.ClearField(analysisevent.FieldViolations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(analysisevent.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(analysisevent.FieldProbability, field.TypeFloat64, value)
	}
	if _u.mutation.ProbabilityCleared() {
		_spec.ClearField(analysisevent.FieldProbability, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(analysisevent.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelRunID(); ok {
		_spec.SetField(analysisevent.FieldModelRunID, field.TypeString, value)
	}
	if _u.mutation.ModelRunIDCleared() {
		_spec.ClearField(analysisevent.FieldModelRunID, field.TypeString)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
