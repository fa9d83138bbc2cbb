// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/soumikb/aquasense/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPh sets the "ph" field.
func (_c *AnalysisEventCreate) SetPh(v float64) *AnalysisEventCreate {
	_c.mutation.SetPh(v)
	return _c
}

// SetTurbidity sets the "turbidity" field.
func (_c *AnalysisEventCreate) SetTurbidity(v float64) *AnalysisEventCreate {
	_c.mutation.SetTurbidity(v)
	return _c
}

// SetConductivity sets the "conductivity" field.
func (_c *AnalysisEventCreate) SetConductivity(v float64) *AnalysisEventCreate {
	_c.mutation.SetConductivity(v)
	return _c
}

// SetDissolvedOxygen sets the "dissolved_oxygen" field.
func (_c *AnalysisEventCreate) SetDissolvedOxygen(v float64) *AnalysisEventCreate {
	_c.mutation.SetDissolvedOxygen(v)
	return _c
}

// SetTds sets the "tds" field.
func (_c *AnalysisEventCreate) SetTds(v float64) *AnalysisEventCreate {
	_c.mutation.SetTds(v)
	return _c
}

// SetRuleSafe sets the "rule_safe" field.
func (_c *AnalysisEventCreate) SetRuleSafe(v bool) *AnalysisEventCreate {
	_c.mutation.SetRuleSafe(v)
	return _c
}

// SetViolations sets the "violations" field.
func (_c *AnalysisEventCreate) SetViolations(v []string) *AnalysisEventCreate {
	_c.mutation.SetViolations(v)
	return _c
}

// SetProbability sets the "probability" field.
func (_c *AnalysisEventCreate) SetProbability(v float64) *AnalysisEventCreate {
	_c.mutation.SetProbability(v)
	return _c
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableProbability(v *float64) *AnalysisEventCreate {
	if v != nil {
		_c.SetProbability(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *AnalysisEventCreate) SetDecision(v string) *AnalysisEventCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetModelRunID sets the "model_run_id" field.
func (_c *AnalysisEventCreate) SetModelRunID(v string) *AnalysisEventCreate {
	_c.mutation.SetModelRunID(v)
	return _c
}

// SetNillableModelRunID sets the "model_run_id" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableModelRunID(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetModelRunID(*v)
	}
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ModelRunID(); !ok {
		v := analysisevent.DefaultModelRunID
		_c.mutation.SetModelRunID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Ph(); !ok {
		return &ValidationError{Name: "ph", err: errors.New(`ent: missing required field "AnalysisEvent.ph"`)}
	}
	if _, ok := _c.mutation.Turbidity(); !ok {
		return &ValidationError{Name: "turbidity", err: errors.New(`ent: missing required field "AnalysisEvent.turbidity"`)}
	}
	if _, ok := _c.mutation.Conductivity(); !ok {
		return &ValidationError{Name: "conductivity", err: errors.New(`ent: missing required field "AnalysisEvent.conductivity"`)}
	}
	if _, ok := _c.mutation.DissolvedOxygen(); !ok {
		return &ValidationError{Name: "dissolved_oxygen", err: errors.New(`ent: missing required field "AnalysisEvent.dissolved_oxygen"`)}
	}
	if _, ok := _c.mutation.Tds(); !ok {
		return &ValidationError{Name: "tds", err: errors.New(`ent: missing required field "AnalysisEvent.tds"`)}
	}
	if _, ok := _c.mutation.RuleSafe(); !ok {
		return &ValidationError{Name: "rule_safe", err: errors.New(`ent: missing required field "AnalysisEvent.rule_safe"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "AnalysisEvent.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := analysisevent.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.decision": %w`, err)}
		}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Ph(); ok {
		_spec.SetField(analysisevent.FieldPh, field.TypeFloat64, value)
		_node.Ph = value
	}
	if value, ok := _c.mutation.Turbidity(); ok {
		_spec.SetField(analysisevent.FieldTurbidity, field.TypeFloat64, value)
		_node.Turbidity = value
	}
	if value, ok := _c.mutation.Conductivity(); ok {
		_spec.SetField(analysisevent.FieldConductivity, field.TypeFloat64, value)
		_node.Conductivity = value
	}
	if value, ok := _c.mutation.DissolvedOxygen(); ok {
		_spec.SetField(analysisevent.FieldDissolvedOxygen, field.TypeFloat64, value)
		_node.DissolvedOxygen = value
	}
	if value, ok := _c.mutation.Tds(); ok {
		_spec.SetField(analysisevent.FieldTds, field.TypeFloat64, value)
		_node.Tds = value
	}
	if value, ok := _c.mutation.RuleSafe(); ok {
		_spec.SetField(analysisevent.FieldRuleSafe, field.TypeBool, value)
		_node.RuleSafe = value
	}
	if value, ok := _c.mutation.Violations(); ok {
		_spec.SetField(analysisevent.FieldViolations, field.TypeJSON, value)
		_node.Violations = value
	}
	if value, ok := _c.mutation.Probability(); ok {
		_spec.SetField(analysisevent.FieldProbability, field.TypeFloat64, value)
		_node.Probability = &value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(analysisevent.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.ModelRunID(); ok {
		_spec.SetField(analysisevent.FieldModelRunID, field.TypeString, value)
		_node.ModelRunID = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
