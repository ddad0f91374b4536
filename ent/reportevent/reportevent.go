// Code generated by ent, DO NOT EDIT.

package reportevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reportevent type in the database.
	Label = "report_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldAccuracyPct holds the string denoting the accuracy_pct field in the database.
	FieldAccuracyPct = "accuracy_pct"
	// FieldConsistency holds the string denoting the consistency field in the database.
	FieldConsistency = "consistency"
	// FieldNarrative holds the string denoting the narrative field in the database.
	FieldNarrative = "narrative"
	// Table holds the table name of the reportevent in the database.
	Table = "report_events"
)

// Columns holds all SQL columns for reportevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldAccuracyPct,
	FieldConsistency,
	FieldNarrative,
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
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// DefaultAccuracyPct holds the default value on creation for the "accuracy_pct" field.
	DefaultAccuracyPct int
)

// OrderOption defines the ordering options for the ReportEvent queries.
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

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByAccuracyPct orders the results by the accuracy_pct field.
func ByAccuracyPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyPct, opts...).ToFunc()
}

// ByConsistency orders the results by the consistency field.
func ByConsistency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsistency, opts...).ToFunc()
}

// ByNarrative orders the results by the narrative field.
func ByNarrative(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrative, opts...).ToFunc()
}
