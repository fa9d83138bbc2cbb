// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/soumikb/aquasense/ent/trainingevent"
)

// TrainingEventCreate is the builder for creating a TrainingEvent entity.
type TrainingEventCreate struct {
	config
	mutation *TrainingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TrainingEventCreate) SetSequence(v int64) *TrainingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TrainingEventCreate) SetTimestamp(v time.Time) *TrainingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TrainingEventCreate) SetNillableTimestamp(v *time.Time) *TrainingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *TrainingEventCreate) SetRunID(v string) *TrainingEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetRowsTotal sets the "rows_total" field.
func (_c *TrainingEventCreate) SetRowsTotal(v int) *TrainingEventCreate {
	_c.mutation.SetRowsTotal(v)
	return _c
}

// SetRowsUsed sets the "rows_used" field.
func (_c *TrainingEventCreate) SetRowsUsed(v int) *TrainingEventCreate {
	_c.mutation.SetRowsUsed(v)
	return _c
}

// SetSafeCount sets the "safe_count" field.
func (_c *TrainingEventCreate) SetSafeCount(v int) *TrainingEventCreate {
	_c.mutation.SetSafeCount(v)
	return _c
}

// SetUnsafeCount sets the "unsafe_count" field.
func (_c *TrainingEventCreate) SetUnsafeCount(v int) *TrainingEventCreate {
	_c.mutation.SetUnsafeCount(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *TrainingEventCreate) SetAccuracy(v float64) *TrainingEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetTestSize sets the "test_size" field.
func (_c *TrainingEventCreate) SetTestSize(v int) *TrainingEventCreate {
	_c.mutation.SetTestSize(v)
	return _c
}

// SetArtifactPath sets the "artifact_path" field.
func (_c *TrainingEventCreate) SetArtifactPath(v string) *TrainingEventCreate {
	_c.mutation.SetArtifactPath(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TrainingEventCreate) SetDurationMs(v int64) *TrainingEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *TrainingEventCreate) SetNillableDurationMs(v *int64) *TrainingEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the TrainingEventMutation object of the builder.
func (_c *TrainingEventCreate) Mutation() *TrainingEventMutation {
	return _c.mutation
}

// Save creates the TrainingEvent in the database.
func (_c *TrainingEventCreate) Save(ctx context.Context) (*TrainingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingEventCreate) SaveX(ctx context.Context) *TrainingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := trainingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := trainingevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TrainingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TrainingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "TrainingEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := trainingevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "TrainingEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowsTotal(); !ok {
		return &ValidationError{Name: "rows_total", err: errors.New(`ent: missing required field "TrainingEvent.rows_total"`)}
	}
	if _, ok := _c.mutation.RowsUsed(); !ok {
		return &ValidationError{Name: "rows_used", err: errors.New(`ent: missing required field "TrainingEvent.rows_used"`)}
	}
	if _, ok := _c.mutation.SafeCount(); !ok {
		return &ValidationError{Name: "safe_count", err: errors.New(`ent: missing required field "TrainingEvent.safe_count"`)}
	}
	if _, ok := _c.mutation.UnsafeCount(); !ok {
		return &ValidationError{Name: "unsafe_count", err: errors.New(`ent: missing required field "TrainingEvent.unsafe_count"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "TrainingEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.TestSize(); !ok {
		return &ValidationError{Name: "test_size", err: errors.New(`ent: missing required field "TrainingEvent.test_size"`)}
	}
	if _, ok := _c.mutation.ArtifactPath(); !ok {
		return &ValidationError{Name: "artifact_path", err: errors.New(`ent: missing required field "TrainingEvent.artifact_path"`)}
	}
	if v, ok := _c.mutation.ArtifactPath(); ok {
		if err := trainingevent.ArtifactPathValidator(v); err != nil {
			return &ValidationError{Name: "artifact_path", err: fmt.Errorf(`ent: validator failed for field "TrainingEvent.artifact_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "TrainingEvent.duration_ms"`)}
	}
	return nil
}

func (_c *TrainingEventCreate) sqlSave(ctx context.Context) (*TrainingEvent, error) {
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

func (_c *TrainingEventCreate) createSpec() (*TrainingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingevent.Table, sqlgraph.NewFieldSpec(trainingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(trainingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(trainingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(trainingevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.RowsTotal(); ok {
		_spec.SetField(trainingevent.FieldRowsTotal, field.TypeInt, value)
		_node.RowsTotal = value
	}
	if value, ok := _c.mutation.RowsUsed(); ok {
		_spec.SetField(trainingevent.FieldRowsUsed, field.TypeInt, value)
		_node.RowsUsed = value
	}
	if value, ok := _c.mutation.SafeCount(); ok {
		_spec.SetField(trainingevent.FieldSafeCount, field.TypeInt, value)
		_node.SafeCount = value
	}
	if value, ok := _c.mutation.UnsafeCount(); ok {
		_spec.SetField(trainingevent.FieldUnsafeCount, field.TypeInt, value)
		_node.UnsafeCount = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(trainingevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.TestSize(); ok {
		_spec.SetField(trainingevent.FieldTestSize, field.TypeInt, value)
		_node.TestSize = value
	}
	if value, ok := _c.mutation.ArtifactPath(); ok {
		_spec.SetField(trainingevent.FieldArtifactPath, field.TypeString, value)
		_node.ArtifactPath = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(trainingevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// TrainingEventCreateBulk is the builder for creating many TrainingEvent entities in bulk.
type TrainingEventCreateBulk struct {
	config
	err      error
	builders []*TrainingEventCreate
}

// Save creates the TrainingEvent entities in the database.
func (_c *TrainingEventCreateBulk) Save(ctx context.Context) ([]*TrainingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingEventMutation)
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
func (_c *TrainingEventCreateBulk) SaveX(ctx context.Context) []*TrainingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
