package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// KV holds completion flags and last scores as opaque strings.
type KV struct {
	ent.Schema
}

func (KV) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "kv"},
	}
}

func (KV) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			NotEmpty().
			Immutable().
			Comment("Date key or score-<date>"),
		field.String("value").
			Comment("Stored value; last write wins"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
