package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single scored answer within a test attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Flat question id (q-1..q-N)"),
		field.String("domain").
			NotEmpty().
			Comment("aptitude, reasoning or coding"),
		field.String("difficulty").
			Optional().
			Comment("Question difficulty label, when served"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			Comment("The canonical correct option"),
		field.String("candidate_answer").
			Optional().
			Comment("Selected option; empty when unanswered"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("domain"),
		index.Fields("correct"),
	}
}
