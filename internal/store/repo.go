package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnalysisEventData captures one water sample assessment.
type AnalysisEventData struct {
	PH              float64
	Turbidity       float64
	Conductivity    float64
	DissolvedOxygen float64
	TDS             float64
	RuleSafe        bool
	Violations      []string
	Probability     *float64 // nil when no model artifacts were available
	Decision        string
	ModelRunID      string
}

// AnalysisRecord is a stored analysis event.
type AnalysisRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnalysisEventData
}

// TrainingEventData captures one model training run.
type TrainingEventData struct {
	RunID        string
	RowsTotal    int
	RowsUsed     int
	SafeCount    int
	UnsafeCount  int
	Accuracy     float64
	TestSize     int
	ArtifactPath string
	DurationMs   int64
}

// TrainingRecord is a stored training event.
type TrainingRecord struct {
	Sequence  int64
	Timestamp time.Time
	TrainingEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnalysis records a water sample assessment.
	AppendAnalysis(ctx context.Context, data AnalysisEventData) error

	// RecentAnalyses returns the newest analyses first.
	RecentAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisRecord, error)

	// AppendTraining records a model training run.
	AppendTraining(ctx context.Context, data TrainingEventData) error

	// LatestTraining returns the most recent training run, or nil if none exist.
	LatestTraining(ctx context.Context) (*TrainingRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the newest LLM requests first.
	RecentLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// LLMRequestByID returns a single stored LLM request.
	LLMRequestByID(ctx context.Context, id int) (*LLMRequestRecord, error)
}
