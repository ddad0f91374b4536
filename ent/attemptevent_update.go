// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervet/ent/attemptevent"
	"github.com/abhisek/intervet/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AttemptEventUpdate) SetAction(v string) *AttemptEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAction(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *AttemptEventUpdate) SetCandidateID(v string) *AttemptEventUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCandidateID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *AttemptEventUpdate) ClearCandidateID() *AttemptEventUpdate {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *AttemptEventUpdate) SetCandidateName(v string) *AttemptEventUpdate {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCandidateName(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// ClearCandidateName clears the value of the "candidate_name" field.
func (_u *AttemptEventUpdate) ClearCandidateName() *AttemptEventUpdate {
	_u.mutation.ClearCandidateName()
	return _u
}

// SetAptitudeLevel sets the "aptitude_level" field.
func (_u *AttemptEventUpdate) SetAptitudeLevel(v string) *AttemptEventUpdate {
	_u.mutation.SetAptitudeLevel(v)
	return _u
}

// SetNillableAptitudeLevel sets the "aptitude_level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAptitudeLevel(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAptitudeLevel(*v)
	}
	return _u
}

// ClearAptitudeLevel clears the value of the "aptitude_level" field.
func (_u *AttemptEventUpdate) ClearAptitudeLevel() *AttemptEventUpdate {
	_u.mutation.ClearAptitudeLevel()
	return _u
}

// SetReasoningLevel sets the "reasoning_level" field.
func (_u *AttemptEventUpdate) SetReasoningLevel(v string) *AttemptEventUpdate {
	_u.mutation.SetReasoningLevel(v)
	return _u
}

// SetNillableReasoningLevel sets the "reasoning_level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableReasoningLevel(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetReasoningLevel(*v)
	}
	return _u
}

// ClearReasoningLevel clears the value of the "reasoning_level" field.
func (_u *AttemptEventUpdate) ClearReasoningLevel() *AttemptEventUpdate {
	_u.mutation.ClearReasoningLevel()
	return _u
}

// SetCodingLevel sets the "coding_level" field.
func (_u *AttemptEventUpdate) SetCodingLevel(v string) *AttemptEventUpdate {
	_u.mutation.SetCodingLevel(v)
	return _u
}

// SetNillableCodingLevel sets the "coding_level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCodingLevel(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCodingLevel(*v)
	}
	return _u
}

// ClearCodingLevel clears the value of the "coding_level" field.
func (_u *AttemptEventUpdate) ClearCodingLevel() *AttemptEventUpdate {
	_u.mutation.ClearCodingLevel()
	return _u
}

// SetQuestionsServed sets the "questions_served" field.
func (_u *AttemptEventUpdate) SetQuestionsServed(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuestionsServed()
	_u.mutation.SetQuestionsServed(v)
	return _u
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionsServed(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionsServed(*v)
	}
	return _u
}

// AddQuestionsServed adds value to the "questions_served" field.
func (_u *AttemptEventUpdate) AddQuestionsServed(v int) *AttemptEventUpdate {
	_u.mutation.AddQuestionsServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdate) SetCorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectAnswers(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptEventUpdate) AddCorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (_u *AttemptEventUpdate) SetAccuracyPct(v int) *AttemptEventUpdate {
	_u.mutation.ResetAccuracyPct()
	_u.mutation.SetAccuracyPct(v)
	return _u
}

// SetNillableAccuracyPct sets the "accuracy_pct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAccuracyPct(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAccuracyPct(*v)
	}
	return _u
}

// AddAccuracyPct adds value to the "accuracy_pct" field.
func (_u *AttemptEventUpdate) AddAccuracyPct(v int) *AttemptEventUpdate {
	_u.mutation.AddAccuracyPct(v)
	return _u
}

// SetConsistency sets the "consistency" field.
func (_u *AttemptEventUpdate) SetConsistency(v string) *AttemptEventUpdate {
	_u.mutation.SetConsistency(v)
	return _u
}

// SetNillableConsistency sets the "consistency" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableConsistency(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetConsistency(*v)
	}
	return _u
}

// ClearConsistency clears the value of the "consistency" field.
func (_u *AttemptEventUpdate) ClearConsistency() *AttemptEventUpdate {
	_u.mutation.ClearConsistency()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdate) SetDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDurationSecs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdate) AddDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := attemptevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(attemptevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(attemptevent.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(attemptevent.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(attemptevent.FieldCandidateName, field.TypeString, value)
	}
	if _u.mutation.CandidateNameCleared() {
		_spec.ClearField(attemptevent.FieldCandidateName, field.TypeString)
	}
	if value, ok := _u.mutation.AptitudeLevel(); ok {
		_spec.SetField(attemptevent.FieldAptitudeLevel, field.TypeString, value)
	}
	if _u.mutation.AptitudeLevelCleared() {
		_spec.ClearField(attemptevent.FieldAptitudeLevel, field.TypeString)
	}
	if value, ok := _u.mutation.ReasoningLevel(); ok {
		_spec.SetField(attemptevent.FieldReasoningLevel, field.TypeString, value)
	}
	if _u.mutation.ReasoningLevelCleared() {
		_spec.ClearField(attemptevent.FieldReasoningLevel, field.TypeString)
	}
	if value, ok := _u.mutation.CodingLevel(); ok {
		_spec.SetField(attemptevent.FieldCodingLevel, field.TypeString, value)
	}
	if _u.mutation.CodingLevelCleared() {
		_spec.ClearField(attemptevent.FieldCodingLevel, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionsServed(); ok {
		_spec.SetField(attemptevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(attemptevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyPct(); ok {
		_spec.SetField(attemptevent.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPct(); ok {
		_spec.AddField(attemptevent.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Consistency(); ok {
		_spec.SetField(attemptevent.FieldConsistency, field.TypeString, value)
	}
	if _u.mutation.ConsistencyCleared() {
		_spec.ClearField(attemptevent.FieldConsistency, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AttemptEventUpdateOne) SetAction(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAction(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *AttemptEventUpdateOne) SetCandidateID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCandidateID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *AttemptEventUpdateOne) ClearCandidateID() *AttemptEventUpdateOne {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *AttemptEventUpdateOne) SetCandidateName(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCandidateName(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// ClearCandidateName clears the value of the "candidate_name" field.
func (_u *AttemptEventUpdateOne) ClearCandidateName() *AttemptEventUpdateOne {
	_u.mutation.ClearCandidateName()
	return _u
}

// SetAptitudeLevel sets the "aptitude_level" field.
func (_u *AttemptEventUpdateOne) SetAptitudeLevel(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAptitudeLevel(v)
	return _u
}

// SetNillableAptitudeLevel sets the "aptitude_level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAptitudeLevel(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAptitudeLevel(*v)
	}
	return _u
}

// ClearAptitudeLevel clears the value of the "aptitude_level" field.
func (_u *AttemptEventUpdateOne) ClearAptitudeLevel() *AttemptEventUpdateOne {
	_u.mutation.ClearAptitudeLevel()
	return _u
}

// SetReasoningLevel sets the "reasoning_level" field.
func (_u *AttemptEventUpdateOne) SetReasoningLevel(v string) *AttemptEventUpdateOne {
	_u.mutation.SetReasoningLevel(v)
	return _u
}

// SetNillableReasoningLevel sets the "reasoning_level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableReasoningLevel(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetReasoningLevel(*v)
	}
	return _u
}

// ClearReasoningLevel clears the value of the "reasoning_level" field.
func (_u *AttemptEventUpdateOne) ClearReasoningLevel() *AttemptEventUpdateOne {
	_u.mutation.ClearReasoningLevel()
	return _u
}

// SetCodingLevel sets the "coding_level" field.
func (_u *AttemptEventUpdateOne) SetCodingLevel(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCodingLevel(v)
	return _u
}

// SetNillableCodingLevel sets the "coding_level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCodingLevel(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCodingLevel(*v)
	}
	return _u
}

// ClearCodingLevel clears the value of the "coding_level" field.
func (_u *AttemptEventUpdateOne) ClearCodingLevel() *AttemptEventUpdateOne {
	_u.mutation.ClearCodingLevel()
	return _u
}

// SetQuestionsServed sets the "questions_served" field.
func (_u *AttemptEventUpdateOne) SetQuestionsServed(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionsServed()
	_u.mutation.SetQuestionsServed(v)
	return _u
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionsServed(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionsServed(*v)
	}
	return _u
}

// AddQuestionsServed adds value to the "questions_served" field.
func (_u *AttemptEventUpdateOne) AddQuestionsServed(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionsServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectAnswers(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptEventUpdateOne) AddCorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (_u *AttemptEventUpdateOne) SetAccuracyPct(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAccuracyPct()
	_u.mutation.SetAccuracyPct(v)
	return _u
}

// SetNillableAccuracyPct sets the "accuracy_pct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAccuracyPct(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAccuracyPct(*v)
	}
	return _u
}

// AddAccuracyPct adds value to the "accuracy_pct" field.
func (_u *AttemptEventUpdateOne) AddAccuracyPct(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAccuracyPct(v)
	return _u
}

// SetConsistency sets the "consistency" field.
func (_u *AttemptEventUpdateOne) SetConsistency(v string) *AttemptEventUpdateOne {
	_u.mutation.SetConsistency(v)
	return _u
}

// SetNillableConsistency sets the "consistency" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableConsistency(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetConsistency(*v)
	}
	return _u
}

// ClearConsistency clears the value of the "consistency" field.
func (_u *AttemptEventUpdateOne) ClearConsistency() *AttemptEventUpdateOne {
	_u.mutation.ClearConsistency()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdateOne) SetDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDurationSecs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdateOne) AddDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := attemptevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(attemptevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(attemptevent.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(attemptevent.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(attemptevent.FieldCandidateName, field.TypeString, value)
	}
	if _u.mutation.CandidateNameCleared() {
		_spec.ClearField(attemptevent.FieldCandidateName, field.TypeString)
	}
	if value, ok := _u.mutation.AptitudeLevel(); ok {
		_spec.SetField(attemptevent.FieldAptitudeLevel, field.TypeString, value)
	}
	if _u.mutation.AptitudeLevelCleared() {
		_spec.ClearField(attemptevent.FieldAptitudeLevel, field.TypeString)
	}
	if value, ok := _u.mutation.ReasoningLevel(); ok {
		_spec.SetField(attemptevent.FieldReasoningLevel, field.TypeString, value)
	}
	if _u.mutation.ReasoningLevelCleared() {
		_spec.ClearField(attemptevent.FieldReasoningLevel, field.TypeString)
	}
	if value, ok := _u.mutation.CodingLevel(); ok {
		_spec.SetField(attemptevent.FieldCodingLevel, field.TypeString, value)
	}
	if _u.mutation.CodingLevelCleared() {
		_spec.ClearField(attemptevent.FieldCodingLevel, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionsServed(); ok {
		_spec.SetField(attemptevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(attemptevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyPct(); ok {
		_spec.SetField(attemptevent.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPct(); ok {
		_spec.AddField(attemptevent.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Consistency(); ok {
		_spec.SetField(attemptevent.FieldConsistency, field.TypeString, value)
	}
	if _u.mutation.ConsistencyCleared() {
		_spec.ClearField(attemptevent.FieldConsistency, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
