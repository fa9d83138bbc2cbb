package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAnalysisAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	prob := 0.87
	err := repo.AppendAnalysis(ctx, AnalysisEventData{
		PH:              7.2,
		Turbidity:       1.5,
		Conductivity:    310,
		DissolvedOxygen: 7.1,
		TDS:             198.4,
		RuleSafe:        true,
		Probability:     &prob,
		Decision:        "safe",
		ModelRunID:      "run-1",
	})
	if err != nil {
		t.Fatalf("append analysis: %v", err)
	}

	err = repo.AppendAnalysis(ctx, AnalysisEventData{
		PH:              9.4,
		Turbidity:       8,
		Conductivity:    950,
		DissolvedOxygen: 2,
		TDS:             608,
		RuleSafe:        false,
		Violations:      []string{"pH", "Turbidity", "Conductivity", "DissolvedOxygen", "TDS"},
		Decision:        "unsafe",
	})
	if err != nil {
		t.Fatalf("append analysis: %v", err)
	}

	records, err := repo.RecentAnalyses(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("recent analyses: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].Decision != "unsafe" {
		t.Errorf("first record decision = %q, want unsafe", records[0].Decision)
	}
	if len(records[0].Violations) != 5 {
		t.Errorf("violations = %v, want all five parameters", records[0].Violations)
	}
	if records[0].Probability != nil {
		t.Errorf("probability = %v, want nil when no model was available", *records[0].Probability)
	}
	if records[1].Probability == nil || *records[1].Probability != prob {
		t.Errorf("probability not round-tripped: %v", records[1].Probability)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequences not descending: %d then %d", records[0].Sequence, records[1].Sequence)
	}
}

func TestTrainingAppendAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	latest, err := repo.LatestTraining(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil training record when none exist")
	}

	for i, runID := range []string{"run-a", "run-b"} {
		err := repo.AppendTraining(ctx, TrainingEventData{
			RunID:        runID,
			RowsTotal:    100,
			RowsUsed:     80,
			SafeCount:    45,
			UnsafeCount:  35,
			Accuracy:     0.9 + float64(i)/100,
			TestSize:     16,
			ArtifactPath: "/tmp/model.json",
		})
		if err != nil {
			t.Fatalf("append training %s: %v", runID, err)
		}
	}

	latest, err = repo.LatestTraining(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil {
		t.Fatal("expected non-nil training record")
	}
	if latest.RunID != "run-b" {
		t.Errorf("latest run = %q, want run-b", latest.RunID)
	}
	if latest.Accuracy != 0.91 {
		t.Errorf("accuracy = %v, want 0.91", latest.Accuracy)
	}
}

func TestLLMRequestAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "insight-report",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[system]\nexpert\n",
		ResponseBody: `{"classification":"safe"}`,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	records, err := repo.RecentLLMRequests(ctx, QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("recent LLM requests: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Purpose != "insight-report" {
		t.Errorf("purpose = %q, want insight-report", records[0].Purpose)
	}

	byID, err := repo.LLMRequestByID(ctx, records[0].ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if byID.ResponseBody != `{"classification":"safe"}` {
		t.Errorf("response body not round-tripped: %q", byID.ResponseBody)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnalysis(ctx, AnalysisEventData{Decision: "safe", RuleSafe: true}); err != nil {
		t.Fatalf("append analysis: %v", err)
	}
	if err := repo.AppendTraining(ctx, TrainingEventData{RunID: "r", ArtifactPath: "p"}); err != nil {
		t.Fatalf("append training: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "test", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	analyses, err := repo.RecentAnalyses(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	training, err := repo.LatestTraining(ctx)
	if err != nil {
		t.Fatal(err)
	}
	llms, err := repo.RecentLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}

	seen := map[int64]bool{
		analyses[0].Sequence: true,
		training.Sequence:    true,
		llms[0].Sequence:     true,
	}
	if len(seen) != 3 {
		t.Errorf("expected three distinct sequence numbers, got %v", seen)
	}
}

func TestQueryOptsTimeWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnalysis(ctx, AnalysisEventData{Decision: "safe", RuleSafe: true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	// A window entirely in the past excludes the just-written event.
	past := time.Now().Add(-2 * time.Hour)
	records, err := repo.RecentAnalyses(ctx, QueryOpts{To: past})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records in a past-only window, want 0", len(records))
	}
}
