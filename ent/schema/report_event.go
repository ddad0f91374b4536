package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportEvent records a generated narrative report for an attempt.
type ReportEvent struct {
	ent.Schema
}

func (ReportEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReportEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.Int("accuracy_pct").
			Default(0).
			Comment("Accuracy at generation time"),
		field.String("consistency").
			Optional().
			Comment("Consistency label at generation time"),
		field.Text("narrative").
			Comment("Narrative markdown returned by the backend"),
	}
}

func (ReportEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}
