// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervet/ent/reportevent"
)

// ReportEvent is the model entity for the ReportEvent schema.
type ReportEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to AttemptEvent
	AttemptID string `json:"attempt_id,omitempty"`
	// Accuracy at generation time
	AccuracyPct int `json:"accuracy_pct,omitempty"`
	// Consistency label at generation time
	Consistency string `json:"consistency,omitempty"`
	// Narrative markdown returned by the backend
	Narrative    string `json:"narrative,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportevent.FieldID, reportevent.FieldSequence, reportevent.FieldAccuracyPct:
			values[i] = new(sql.NullInt64)
		case reportevent.FieldAttemptID, reportevent.FieldConsistency, reportevent.FieldNarrative:
			values[i] = new(sql.NullString)
		case reportevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportEvent fields.
func (_m *ReportEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reportevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reportevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reportevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case reportevent.FieldAccuracyPct:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_pct", values[i])
			} else if value.Valid {
				_m.AccuracyPct = int(value.Int64)
			}
		case reportevent.FieldConsistency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consistency", values[i])
			} else if value.Valid {
				_m.Consistency = value.String
			}
		case reportevent.FieldNarrative:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative", values[i])
			} else if value.Valid {
				_m.Narrative = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReportEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReportEvent.
// Note that you need to call ReportEvent.Unwrap() before calling this method if this ReportEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportEvent) Update() *ReportEventUpdateOne {
	return NewReportEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportEvent) Unwrap() *ReportEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReportEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("accuracy_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccuracyPct))
	builder.WriteString(", ")
	builder.WriteString("consistency=")
	builder.WriteString(_m.Consistency)
	builder.WriteString(", ")
	builder.WriteString("narrative=")
	builder.WriteString(_m.Narrative)
	builder.WriteByte(')')
	return builder.String()
}

// ReportEvents is a parsable slice of ReportEvent.
type ReportEvents []*ReportEvent
