// Code generated by ent, DO NOT EDIT.

package reportevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AccuracyPct applies equality check predicate on the "accuracy_pct" field. It's identical to AccuracyPctEQ.
func AccuracyPct(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldAccuracyPct, v))
}

// Consistency applies equality check predicate on the "consistency" field. It's identical to ConsistencyEQ.
func Consistency(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldConsistency, v))
}

// Narrative applies equality check predicate on the "narrative" field. It's identical to NarrativeEQ.
func Narrative(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldNarrative, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// AccuracyPctEQ applies the EQ predicate on the "accuracy_pct" field.
func AccuracyPctEQ(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldAccuracyPct, v))
}

// AccuracyPctNEQ applies the NEQ predicate on the "accuracy_pct" field.
func AccuracyPctNEQ(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldAccuracyPct, v))
}

// AccuracyPctIn applies the In predicate on the "accuracy_pct" field.
func AccuracyPctIn(vs ...int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldAccuracyPct, vs...))
}

// AccuracyPctNotIn applies the NotIn predicate on the "accuracy_pct" field.
func AccuracyPctNotIn(vs ...int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldAccuracyPct, vs...))
}

// AccuracyPctGT applies the GT predicate on the "accuracy_pct" field.
func AccuracyPctGT(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldAccuracyPct, v))
}

// AccuracyPctGTE applies the GTE predicate on the "accuracy_pct" field.
func AccuracyPctGTE(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldAccuracyPct, v))
}

// AccuracyPctLT applies the LT predicate on the "accuracy_pct" field.
func AccuracyPctLT(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldAccuracyPct, v))
}

// AccuracyPctLTE applies the LTE predicate on the "accuracy_pct" field.
func AccuracyPctLTE(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldAccuracyPct, v))
}

// ConsistencyEQ applies the EQ predicate on the "consistency" field.
func ConsistencyEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldConsistency, v))
}

// ConsistencyNEQ applies the NEQ predicate on the "consistency" field.
func ConsistencyNEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldConsistency, v))
}

// ConsistencyIn applies the In predicate on the "consistency" field.
func ConsistencyIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldConsistency, vs...))
}

// ConsistencyNotIn applies the NotIn predicate on the "consistency" field.
func ConsistencyNotIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldConsistency, vs...))
}

// ConsistencyGT applies the GT predicate on the "consistency" field.
func ConsistencyGT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldConsistency, v))
}

// ConsistencyGTE applies the GTE predicate on the "consistency" field.
func ConsistencyGTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldConsistency, v))
}

// ConsistencyLT applies the LT predicate on the "consistency" field.
func ConsistencyLT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldConsistency, v))
}

// ConsistencyLTE applies the LTE predicate on the "consistency" field.
func ConsistencyLTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldConsistency, v))
}

// ConsistencyContains applies the Contains predicate on the "consistency" field.
func ConsistencyContains(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContains(FieldConsistency, v))
}

// ConsistencyHasPrefix applies the HasPrefix predicate on the "consistency" field.
func ConsistencyHasPrefix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasPrefix(FieldConsistency, v))
}

// ConsistencyHasSuffix applies the HasSuffix predicate on the "consistency" field.
func ConsistencyHasSuffix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasSuffix(FieldConsistency, v))
}

// ConsistencyIsNil applies the IsNil predicate on the "consistency" field.
func ConsistencyIsNil() predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIsNull(FieldConsistency))
}

// ConsistencyNotNil applies the NotNil predicate on the "consistency" field.
func ConsistencyNotNil() predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotNull(FieldConsistency))
}

// ConsistencyEqualFold applies the EqualFold predicate on the "consistency" field.
func ConsistencyEqualFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEqualFold(FieldConsistency, v))
}

// ConsistencyContainsFold applies the ContainsFold predicate on the "consistency" field.
func ConsistencyContainsFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContainsFold(FieldConsistency, v))
}

// NarrativeEQ applies the EQ predicate on the "narrative" field.
func NarrativeEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldNarrative, v))
}

// NarrativeNEQ applies the NEQ predicate on the "narrative" field.
func NarrativeNEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldNarrative, v))
}

// NarrativeIn applies the In predicate on the "narrative" field.
func NarrativeIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldNarrative, vs...))
}

// NarrativeNotIn applies the NotIn predicate on the "narrative" field.
func NarrativeNotIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldNarrative, vs...))
}

// NarrativeGT applies the GT predicate on the "narrative" field.
func NarrativeGT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldNarrative, v))
}

// NarrativeGTE applies the GTE predicate on the "narrative" field.
func NarrativeGTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldNarrative, v))
}

// NarrativeLT applies the LT predicate on the "narrative" field.
func NarrativeLT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldNarrative, v))
}

// NarrativeLTE applies the LTE predicate on the "narrative" field.
func NarrativeLTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldNarrative, v))
}

// NarrativeContains applies the Contains predicate on the "narrative" field.
func NarrativeContains(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContains(FieldNarrative, v))
}

// NarrativeHasPrefix applies the HasPrefix predicate on the "narrative" field.
func NarrativeHasPrefix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasPrefix(FieldNarrative, v))
}

// NarrativeHasSuffix applies the HasSuffix predicate on the "narrative" field.
func NarrativeHasSuffix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasSuffix(FieldNarrative, v))
}

// NarrativeEqualFold applies the EqualFold predicate on the "narrative" field.
func NarrativeEqualFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEqualFold(FieldNarrative, v))
}

// NarrativeContainsFold applies the ContainsFold predicate on the "narrative" field.
func NarrativeContainsFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContainsFold(FieldNarrative, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportEvent) predicate.ReportEvent {
	return predicate.ReportEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportEvent) predicate.ReportEvent {
	return predicate.ReportEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportEvent) predicate.ReportEvent {
	return predicate.ReportEvent(sql.NotPredicates(p))
}
