// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/soumikb/aquasense/ent/predicate"
	"github.com/soumikb/aquasense/ent/trainingevent"
)

// TrainingEventUpdate is the builder for updating TrainingEvent entities.
type TrainingEventUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingEventMutation
}

// Where appends a list predicates to the TrainingEventUpdate builder.
func (_u *TrainingEventUpdate) Where(ps ...predicate.TrainingEvent) *TrainingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *TrainingEventUpdate) SetRunID(v string) *TrainingEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableRunID(v *string) *TrainingEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetRowsTotal sets the "rows_total" field.
func (_u *TrainingEventUpdate) SetRowsTotal(v int) *TrainingEventUpdate {
	_u.mutation.ResetRowsTotal()
	_u.mutation.SetRowsTotal(v)
	return _u
}

// SetNillableRowsTotal sets the "rows_total" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableRowsTotal(v *int) *TrainingEventUpdate {
	if v != nil {
		_u.SetRowsTotal(*v)
	}
	return _u
}

// AddRowsTotal adds value to the "rows_total" field.
func (_u *TrainingEventUpdate) AddRowsTotal(v int) *TrainingEventUpdate {
	_u.mutation.AddRowsTotal(v)
	return _u
}

// SetRowsUsed sets the "rows_used" field.
func (_u *TrainingEventUpdate) SetRowsUsed(v int) *TrainingEventUpdate {
	_u.mutation.ResetRowsUsed()
	_u.mutation.SetRowsUsed(v)
	return _u
}

// SetNillableRowsUsed sets the "rows_used" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableRowsUsed(v *int) *TrainingEventUpdate {
	if v != nil {
		_u.SetRowsUsed(*v)
	}
	return _u
}

// AddRowsUsed adds value to the "rows_used" field.
func (_u *TrainingEventUpdate) AddRowsUsed(v int) *TrainingEventUpdate {
	_u.mutation.AddRowsUsed(v)
	return _u
}

// SetSafeCount sets the "safe_count" field.
func (_u *TrainingEventUpdate) SetSafeCount(v int) *TrainingEventUpdate {
	_u.mutation.ResetSafeCount()
	_u.mutation.SetSafeCount(v)
	return _u
}

// SetNillableSafeCount sets the "safe_count" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableSafeCount(v *int) *TrainingEventUpdate {
	if v != nil {
		_u.SetSafeCount(*v)
	}
	return _u
}

// AddSafeCount adds value to the "safe_count" field.
func (_u *TrainingEventUpdate) AddSafeCount(v int) *TrainingEventUpdate {
	_u.mutation.AddSafeCount(v)
	return _u
}

// SetUnsafeCount sets the "unsafe_count" field.
func (_u *TrainingEventUpdate) SetUnsafeCount(v int) *TrainingEventUpdate {
	_u.mutation.ResetUnsafeCount()
	_u.mutation.SetUnsafeCount(v)
	return _u
}

// SetNillableUnsafeCount sets the "unsafe_count" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableUnsafeCount(v *int) *TrainingEventUpdate {
	if v != nil {
		_u.SetUnsafeCount(*v)
	}
	return _u
}

// AddUnsafeCount adds value to the "unsafe_count" field.
func (_u *TrainingEventUpdate) AddUnsafeCount(v int) *TrainingEventUpdate {
	_u.mutation.AddUnsafeCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *TrainingEventUpdate) SetAccuracy(v float64) *TrainingEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableAccuracy(v *float64) *TrainingEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *TrainingEventUpdate) AddAccuracy(v float64) *TrainingEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetTestSize sets the "test_size" field.
func (_u *TrainingEventUpdate) SetTestSize(v int) *TrainingEventUpdate {
	_u.mutation.ResetTestSize()
	_u.mutation.SetTestSize(v)
	return _u
}

// SetNillableTestSize sets the "test_size" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableTestSize(v *int) *TrainingEventUpdate {
	if v != nil {
		_u.SetTestSize(*v)
	}
	return _u
}

// AddTestSize adds value to the "test_size" field.
func (_u *TrainingEventUpdate) AddTestSize(v int) *TrainingEventUpdate {
	_u.mutation.AddTestSize(v)
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *TrainingEventUpdate) SetArtifactPath(v string) *TrainingEventUpdate {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableArtifactPath(v *string) *TrainingEventUpdate {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TrainingEventUpdate) SetDurationMs(v int64) *TrainingEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TrainingEventUpdate) SetNillableDurationMs(v *int64) *TrainingEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TrainingEventUpdate) AddDurationMs(v int64) *TrainingEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TrainingEventMutation object of the builder.
func (_u *TrainingEventUpdate) Mutation() *TrainingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := trainingevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "TrainingEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactPath(); ok {
		if err := trainingevent.ArtifactPathValidator(v); err != nil {
			return &ValidationError{Name: "artifact_path", err: fmt.Errorf(`ent: validator failed for field "TrainingEvent.artifact_path": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingevent.Table, trainingevent.Columns, sqlgraph.NewFieldSpec(trainingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(trainingevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowsTotal(); ok {
		_spec.SetField(trainingevent.FieldRowsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsTotal(); ok {
		_spec.AddField(trainingevent.FieldRowsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsUsed(); ok {
		_spec.SetField(trainingevent.FieldRowsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsUsed(); ok {
		_spec.AddField(trainingevent.FieldRowsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SafeCount(); ok {
		_spec.SetField(trainingevent.FieldSafeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSafeCount(); ok {
		_spec.AddField(trainingevent.FieldSafeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnsafeCount(); ok {
		_spec.SetField(trainingevent.FieldUnsafeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnsafeCount(); ok {
		_spec.AddField(trainingevent.FieldUnsafeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(trainingevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(trainingevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TestSize(); ok {
		_spec.SetField(trainingevent.FieldTestSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestSize(); ok {
		_spec.AddField(trainingevent.FieldTestSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(trainingevent.FieldArtifactPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(trainingevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(trainingevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingEventUpdateOne is the builder for updating a single TrainingEvent entity.
type TrainingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *TrainingEventUpdateOne) SetRunID(v string) *TrainingEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableRunID(v *string) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetRowsTotal sets the "rows_total" field.
func (_u *TrainingEventUpdateOne) SetRowsTotal(v int) *TrainingEventUpdateOne {
	_u.mutation.ResetRowsTotal()
	_u.mutation.SetRowsTotal(v)
	return _u
}

// SetNillableRowsTotal sets the "rows_total" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableRowsTotal(v *int) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetRowsTotal(*v)
	}
	return _u
}

// AddRowsTotal adds value to the "rows_total" field.
func (_u *TrainingEventUpdateOne) AddRowsTotal(v int) *TrainingEventUpdateOne {
	_u.mutation.AddRowsTotal(v)
	return _u
}

// SetRowsUsed sets the "rows_used" field.
func (_u *TrainingEventUpdateOne) SetRowsUsed(v int) *TrainingEventUpdateOne {
	_u.mutation.ResetRowsUsed()
	_u.mutation.SetRowsUsed(v)
	return _u
}

// SetNillableRowsUsed sets the "rows_used" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableRowsUsed(v *int) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetRowsUsed(*v)
	}
	return _u
}

// AddRowsUsed adds value to the "rows_used" field.
func (_u *TrainingEventUpdateOne) AddRowsUsed(v int) *TrainingEventUpdateOne {
	_u.mutation.AddRowsUsed(v)
	return _u
}

// SetSafeCount sets the "safe_count" field.
func (_u *TrainingEventUpdateOne) SetSafeCount(v int) *TrainingEventUpdateOne {
	_u.mutation.ResetSafeCount()
	_u.mutation.SetSafeCount(v)
	return _u
}

// SetNillableSafeCount sets the "safe_count" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableSafeCount(v *int) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetSafeCount(*v)
	}
	return _u
}

// AddSafeCount adds value to the "safe_count" field.
func (_u *TrainingEventUpdateOne) AddSafeCount(v int) *TrainingEventUpdateOne {
	_u.mutation.AddSafeCount(v)
	return _u
}

// SetUnsafeCount sets the "unsafe_count" field.
func (_u *TrainingEventUpdateOne) SetUnsafeCount(v int) *TrainingEventUpdateOne {
	_u.mutation.ResetUnsafeCount()
	_u.mutation.SetUnsafeCount(v)
	return _u
}

// SetNillableUnsafeCount sets the "unsafe_count" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableUnsafeCount(v *int) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetUnsafeCount(*v)
	}
	return _u
}

// AddUnsafeCount adds value to the "unsafe_count" field.
func (_u *TrainingEventUpdateOne) AddUnsafeCount(v int) *TrainingEventUpdateOne {
	_u.mutation.AddUnsafeCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *TrainingEventUpdateOne) SetAccuracy(v float64) *TrainingEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableAccuracy(v *float64) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *TrainingEventUpdateOne) AddAccuracy(v float64) *TrainingEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetTestSize sets the "test_size" field.
func (_u *TrainingEventUpdateOne) SetTestSize(v int) *TrainingEventUpdateOne {
	_u.mutation.ResetTestSize()
	_u.mutation.SetTestSize(v)
	return _u
}

// SetNillableTestSize sets the "test_size" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableTestSize(v *int) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetTestSize(*v)
	}
	return _u
}

// AddTestSize adds value to the "test_size" field.
func (_u *TrainingEventUpdateOne) AddTestSize(v int) *TrainingEventUpdateOne {
	_u.mutation.AddTestSize(v)
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *TrainingEventUpdateOne) SetArtifactPath(v string) *TrainingEventUpdateOne {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableArtifactPath(v *string) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TrainingEventUpdateOne) SetDurationMs(v int64) *TrainingEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TrainingEventUpdateOne) SetNillableDurationMs(v *int64) *TrainingEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TrainingEventUpdateOne) AddDurationMs(v int64) *TrainingEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TrainingEventMutation object of the builder.
func (_u *TrainingEventUpdateOne) Mutation() *TrainingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrainingEventUpdate builder.
func (_u *TrainingEventUpdateOne) Where(ps ...predicate.TrainingEvent) *TrainingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingEventUpdateOne) Select(field string, fields ...string) *TrainingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingEvent entity.
func (_u *TrainingEventUpdateOne) Save(ctx context.Context) (*TrainingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingEventUpdateOne) SaveX(ctx context.Context) *TrainingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := trainingevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "TrainingEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactPath(); ok {
		if err := trainingevent.ArtifactPathValidator(v); err != nil {
			return &ValidationError{Name: "artifact_path", err: fmt.Errorf(`ent: validator failed for field "TrainingEvent.artifact_path": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingEventUpdateOne) sqlSave(ctx context.Context) (_node *TrainingEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingevent.Table, trainingevent.Columns, sqlgraph.NewFieldSpec(trainingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingevent.FieldID)
		for _, f := range fields {
			if !trainingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(trainingevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowsTotal(); ok {
		_spec.SetField(trainingevent.FieldRowsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsTotal(); ok {
		_spec.AddField(trainingevent.FieldRowsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsUsed(); ok {
		_spec.SetField(trainingevent.FieldRowsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsUsed(); ok {
		_spec.AddField(trainingevent.FieldRowsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SafeCount(); ok {
		_spec.SetField(trainingevent.FieldSafeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSafeCount(); ok {
		_spec.AddField(trainingevent.FieldSafeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnsafeCount(); ok {
		_spec.SetField(trainingevent.FieldUnsafeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnsafeCount(); ok {
		_spec.AddField(trainingevent.FieldUnsafeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(trainingevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(trainingevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TestSize(); ok {
		_spec.SetField(trainingevent.FieldTestSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestSize(); ok {
		_spec.AddField(trainingevent.FieldTestSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(trainingevent.FieldArtifactPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(trainingevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(trainingevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &TrainingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
