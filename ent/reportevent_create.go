// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervet/ent/reportevent"
)

// ReportEventCreate is the builder for creating a ReportEvent entity.
type ReportEventCreate struct {
	config
	mutation *ReportEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReportEventCreate) SetSequence(v int64) *ReportEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReportEventCreate) SetTimestamp(v time.Time) *ReportEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReportEventCreate) SetNillableTimestamp(v *time.Time) *ReportEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ReportEventCreate) SetAttemptID(v string) *ReportEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (_c *ReportEventCreate) SetAccuracyPct(v int) *ReportEventCreate {
	_c.mutation.SetAccuracyPct(v)
	return _c
}

// SetNillableAccuracyPct sets the "accuracy_pct" field if the given value is not nil.
func (_c *ReportEventCreate) SetNillableAccuracyPct(v *int) *ReportEventCreate {
	if v != nil {
		_c.SetAccuracyPct(*v)
	}
	return _c
}

// SetConsistency sets the "consistency" field.
func (_c *ReportEventCreate) SetConsistency(v string) *ReportEventCreate {
	_c.mutation.SetConsistency(v)
	return _c
}

// SetNillableConsistency sets the "consistency" field if the given value is not nil.
func (_c *ReportEventCreate) SetNillableConsistency(v *string) *ReportEventCreate {
	if v != nil {
		_c.SetConsistency(*v)
	}
	return _c
}

// SetNarrative sets the "narrative" field.
func (_c *ReportEventCreate) SetNarrative(v string) *ReportEventCreate {
	_c.mutation.SetNarrative(v)
	return _c
}

// Mutation returns the ReportEventMutation object of the builder.
func (_c *ReportEventCreate) Mutation() *ReportEventMutation {
	return _c.mutation
}

// Save creates the ReportEvent in the database.
func (_c *ReportEventCreate) Save(ctx context.Context) (*ReportEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportEventCreate) SaveX(ctx context.Context) *ReportEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reportevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AccuracyPct(); !ok {
		v := reportevent.DefaultAccuracyPct
		_c.mutation.SetAccuracyPct(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReportEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReportEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ReportEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := reportevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccuracyPct(); !ok {
		return &ValidationError{Name: "accuracy_pct", err: errors.New(`ent: missing required field "ReportEvent.accuracy_pct"`)}
	}
	if _, ok := _c.mutation.Narrative(); !ok {
		return &ValidationError{Name: "narrative", err: errors.New(`ent: missing required field "ReportEvent.narrative"`)}
	}
	return nil
}

func (_c *ReportEventCreate) sqlSave(ctx context.Context) (*ReportEvent, error) {
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

func (_c *ReportEventCreate) createSpec() (*ReportEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportevent.Table, sqlgraph.NewFieldSpec(reportevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reportevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reportevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(reportevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.AccuracyPct(); ok {
		_spec.SetField(reportevent.FieldAccuracyPct, field.TypeInt, value)
		_node.AccuracyPct = value
	}
	if value, ok := _c.mutation.Consistency(); ok {
		_spec.SetField(reportevent.FieldConsistency, field.TypeString, value)
		_node.Consistency = value
	}
	if value, ok := _c.mutation.Narrative(); ok {
		_spec.SetField(reportevent.FieldNarrative, field.TypeString, value)
		_node.Narrative = value
	}
	return _node, _spec
}

// ReportEventCreateBulk is the builder for creating many ReportEvent entities in bulk.
type ReportEventCreateBulk struct {
	config
	err      error
	builders []*ReportEventCreate
}

// Save creates the ReportEvent entities in the database.
func (_c *ReportEventCreateBulk) Save(ctx context.Context) ([]*ReportEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportEventMutation)
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
func (_c *ReportEventCreateBulk) SaveX(ctx context.Context) []*ReportEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
