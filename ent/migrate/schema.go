// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "ph", Type: field.TypeFloat64},
		{Name: "turbidity", Type: field.TypeFloat64},
		{Name: "conductivity", Type: field.TypeFloat64},
		{Name: "dissolved_oxygen", Type: field.TypeFloat64},
		{Name: "tds", Type: field.TypeFloat64},
		{Name: "rule_safe", Type: field.TypeBool},
		{Name: "violations", Type: field.TypeJSON, Nullable: true},
		{Name: "probability", Type: field.TypeFloat64, Nullable: true},
		{Name: "decision", Type: field.TypeString},
		{Name: "model_run_id", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
			{
				Name:    "analysisevent_decision",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[11]},
			},
			{
				Name:    "analysisevent_rule_safe",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[8]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// TrainingEventsColumns holds the columns for the "training_events" table.
	TrainingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "rows_total", Type: field.TypeInt},
		{Name: "rows_used", Type: field.TypeInt},
		{Name: "safe_count", Type: field.TypeInt},
		{Name: "unsafe_count", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "test_size", Type: field.TypeInt},
		{Name: "artifact_path", Type: field.TypeString},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// TrainingEventsTable holds the schema information for the "training_events" table.
	TrainingEventsTable = &schema.Table{
		Name:       "training_events",
		Columns:    TrainingEventsColumns,
		PrimaryKey: []*schema.Column{TrainingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trainingevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TrainingEventsColumns[1]},
			},
			{
				Name:    "trainingevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TrainingEventsColumns[2]},
			},
			{
				Name:    "trainingevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{TrainingEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		LlmRequestEventsTable,
		TrainingEventsTable,
	}
)

func init() {
}
