package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one scored quiz. The mixin timestamp is when it was taken.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			Comment("UUID of the generated quiz"),
		field.String("date").
			Comment("Scheduled date the quiz was built for"),
		field.Enum("mode").
			Values("choice", "typing"),
		field.Int("score").
			NonNegative(),
		field.Int("total").
			NonNegative(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
