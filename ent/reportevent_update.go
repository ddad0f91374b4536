// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervet/ent/predicate"
	"github.com/abhisek/intervet/ent/reportevent"
)

// ReportEventUpdate is the builder for updating ReportEvent entities.
type ReportEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReportEventMutation
}

// Where appends a list predicates to the ReportEventUpdate builder.
func (_u *ReportEventUpdate) Where(ps ...predicate.ReportEvent) *ReportEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ReportEventUpdate) SetAttemptID(v string) *ReportEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableAttemptID(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (_u *ReportEventUpdate) SetAccuracyPct(v int) *ReportEventUpdate {
	_u.mutation.ResetAccuracyPct()
	_u.mutation.SetAccuracyPct(v)
	return _u
}

// SetNillableAccuracyPct sets the "accuracy_pct" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableAccuracyPct(v *int) *ReportEventUpdate {
	if v != nil {
		_u.SetAccuracyPct(*v)
	}
	return _u
}

// AddAccuracyPct adds value to the "accuracy_pct" field.
func (_u *ReportEventUpdate) AddAccuracyPct(v int) *ReportEventUpdate {
	_u.mutation.AddAccuracyPct(v)
	return _u
}

// SetConsistency sets the "consistency" field.
func (_u *ReportEventUpdate) SetConsistency(v string) *ReportEventUpdate {
	_u.mutation.SetConsistency(v)
	return _u
}

// SetNillableConsistency sets the "consistency" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableConsistency(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetConsistency(*v)
	}
	return _u
}

// ClearConsistency clears the value of the "consistency" field.
func (_u *ReportEventUpdate) ClearConsistency() *ReportEventUpdate {
	_u.mutation.ClearConsistency()
	return _u
}

// SetNarrative sets the "narrative" field.
func (_u *ReportEventUpdate) SetNarrative(v string) *ReportEventUpdate {
	_u.mutation.SetNarrative(v)
	return _u
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableNarrative(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetNarrative(*v)
	}
	return _u
}

// Mutation returns the ReportEventMutation object of the builder.
func (_u *ReportEventUpdate) Mutation() *ReportEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := reportevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportevent.Table, reportevent.Columns, sqlgraph.NewFieldSpec(reportevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(reportevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccuracyPct(); ok {
		_spec.SetField(reportevent.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPct(); ok {
		_spec.AddField(reportevent.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Consistency(); ok {
		_spec.SetField(reportevent.FieldConsistency, field.TypeString, value)
	}
	if _u.mutation.ConsistencyCleared() {
		_spec.ClearField(reportevent.FieldConsistency, field.TypeString)
	}
	if value, ok := _u.mutation.Narrative(); ok {
		_spec.SetField(reportevent.FieldNarrative, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportEventUpdateOne is the builder for updating a single ReportEvent entity.
type ReportEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ReportEventUpdateOne) SetAttemptID(v string) *ReportEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableAttemptID(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (_u *ReportEventUpdateOne) SetAccuracyPct(v int) *ReportEventUpdateOne {
	_u.mutation.ResetAccuracyPct()
	_u.mutation.SetAccuracyPct(v)
	return _u
}

// SetNillableAccuracyPct sets the "accuracy_pct" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableAccuracyPct(v *int) *ReportEventUpdateOne {
	if v != nil {
		_u.SetAccuracyPct(*v)
	}
	return _u
}

// AddAccuracyPct adds value to the "accuracy_pct" field.
func (_u *ReportEventUpdateOne) AddAccuracyPct(v int) *ReportEventUpdateOne {
	_u.mutation.AddAccuracyPct(v)
	return _u
}

// SetConsistency sets the "consistency" field.
func (_u *ReportEventUpdateOne) SetConsistency(v string) *ReportEventUpdateOne {
	_u.mutation.SetConsistency(v)
	return _u
}

// SetNillableConsistency sets the "consistency" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableConsistency(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetConsistency(*v)
	}
	return _u
}

// ClearConsistency clears the value of the "consistency" field.
func (_u *ReportEventUpdateOne) ClearConsistency() *ReportEventUpdateOne {
	_u.mutation.ClearConsistency()
	return _u
}

// SetNarrative sets the "narrative" field.
func (_u *ReportEventUpdateOne) SetNarrative(v string) *ReportEventUpdateOne {
	_u.mutation.SetNarrative(v)
	return _u
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableNarrative(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetNarrative(*v)
	}
	return _u
}

// Mutation returns the ReportEventMutation object of the builder.
func (_u *ReportEventUpdateOne) Mutation() *ReportEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportEventUpdate builder.
func (_u *ReportEventUpdateOne) Where(ps ...predicate.ReportEvent) *ReportEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportEventUpdateOne) Select(field string, fields ...string) *ReportEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportEvent entity.
func (_u *ReportEventUpdateOne) Save(ctx context.Context) (*ReportEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportEventUpdateOne) SaveX(ctx context.Context) *ReportEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := reportevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportEventUpdateOne) sqlSave(ctx context.Context) (_node *ReportEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportevent.Table, reportevent.Columns, sqlgraph.NewFieldSpec(reportevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportevent.FieldID)
		for _, f := range fields {
			if !reportevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(reportevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccuracyPct(); ok {
		_spec.SetField(reportevent.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPct(); ok {
		_spec.AddField(reportevent.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Consistency(); ok {
		_spec.SetField(reportevent.FieldConsistency, field.TypeString, value)
	}
	if _u.mutation.ConsistencyCleared() {
		_spec.ClearField(reportevent.FieldConsistency, field.TypeString)
	}
	if value, ok := _u.mutation.Narrative(); ok {
		_spec.SetField(reportevent.FieldNarrative, field.TypeString, value)
	}
	_node = &ReportEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
