// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/soumikb/aquasense/ent/analysisevent"
	"github.com/soumikb/aquasense/ent/llmrequestevent"
	"github.com/soumikb/aquasense/ent/schema"
	"github.com/soumikb/aquasense/ent/trainingevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescDecision is the schema descriptor for decision field.
	analysiseventDescDecision := analysiseventFields[8].Descriptor()
	// analysisevent.DecisionValidator is a validator for the "decision" field. It is called by the builders before save.
	analysisevent.DecisionValidator = analysiseventDescDecision.Validators[0].(func(string) error)
	// analysiseventDescModelRunID is the schema descriptor for model_run_id field.
	analysiseventDescModelRunID := analysiseventFields[9].Descriptor()
	// analysisevent.DefaultModelRunID holds the default value on creation for the model_run_id field.
	analysisevent.DefaultModelRunID = analysiseventDescModelRunID.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	trainingeventMixin := schema.TrainingEvent{}.Mixin()
	trainingeventMixinFields0 := trainingeventMixin[0].Fields()
	_ = trainingeventMixinFields0
	trainingeventFields := schema.TrainingEvent{}.Fields()
	_ = trainingeventFields
	// trainingeventDescTimestamp is the schema descriptor for timestamp field.
	trainingeventDescTimestamp := trainingeventMixinFields0[1].Descriptor()
	// trainingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	trainingevent.DefaultTimestamp = trainingeventDescTimestamp.Default.(func() time.Time)
	// trainingeventDescRunID is the schema descriptor for run_id field.
	trainingeventDescRunID := trainingeventFields[0].Descriptor()
	// trainingevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	trainingevent.RunIDValidator = trainingeventDescRunID.Validators[0].(func(string) error)
	// trainingeventDescArtifactPath is the schema descriptor for artifact_path field.
	trainingeventDescArtifactPath := trainingeventFields[7].Descriptor()
	// trainingevent.ArtifactPathValidator is a validator for the "artifact_path" field. It is called by the builders before save.
	trainingevent.ArtifactPathValidator = trainingeventDescArtifactPath.Validators[0].(func(string) error)
	// trainingeventDescDurationMs is the schema descriptor for duration_ms field.
	trainingeventDescDurationMs := trainingeventFields[8].Descriptor()
	// trainingevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	trainingevent.DefaultDurationMs = trainingeventDescDurationMs.Default.(int64)
}
