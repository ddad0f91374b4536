package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records test attempt lifecycle events (start/end).
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping events in one test attempt"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("candidate_id").
			Optional().
			Comment("Backend candidate identifier, if registered"),
		field.String("candidate_name").
			Optional().
			Comment("Name from the parsed profile"),
		field.String("aptitude_level").
			Optional().
			Comment("Served aptitude level"),
		field.String("reasoning_level").
			Optional().
			Comment("Served reasoning level"),
		field.String("coding_level").
			Optional().
			Comment("Served coding level"),
		field.Int("questions_served").
			Default(0).
			Comment("Total questions (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("accuracy_pct").
			Default(0).
			Comment("Rounded accuracy percentage (on end only)"),
		field.String("consistency").
			Optional().
			Comment("Consistency label (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time spent on the test in seconds (on end only)"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("action"),
	}
}
