package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records a single water sample assessment: the raw readings,
// the rule verdict, and the model's view when one was available.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Float("ph"),
		field.Float("turbidity").
			Comment("NTU"),
		field.Float("conductivity").
			Comment("µS/cm"),
		field.Float("dissolved_oxygen").
			Comment("mg/L"),
		field.Float("tds").
			Comment("mg/L"),
		field.Bool("rule_safe").
			Comment("Whether the sample passed every threshold rule"),
		field.Strings("violations").
			Optional().
			Comment("Parameter names that failed their rule, in canonical order"),
		field.Float("probability").
			Optional().
			Nillable().
			Comment("Model probability of safety; absent when no model artifacts were available"),
		field.String("decision").
			NotEmpty().
			Comment("Final call: safe, unsafe, treatable"),
		field.String("model_run_id").
			Optional().
			Default("").
			Comment("Training run that produced the model used, if any"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("decision"),
		index.Fields("rule_safe"),
	}
}
