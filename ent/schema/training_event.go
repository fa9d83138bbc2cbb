package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrainingEvent records one model training run and its held-out evaluation.
type TrainingEvent struct {
	ent.Schema
}

func (TrainingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TrainingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Identifier shared with the persisted artifacts"),
		field.Int("rows_total").
			Comment("Rows in the source dataset before preprocessing"),
		field.Int("rows_used").
			Comment("Rows remaining after the temperature band and missing-value filters"),
		field.Int("safe_count"),
		field.Int("unsafe_count"),
		field.Float("accuracy").
			Comment("Held-out accuracy"),
		field.Int("test_size"),
		field.String("artifact_path").
			NotEmpty(),
		field.Int64("duration_ms").
			Default(0),
	}
}

func (TrainingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
	}
}
