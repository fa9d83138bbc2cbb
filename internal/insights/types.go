package insights

import (
	"time"

	"github.com/soumikb/aquasense/internal/analysis"
	"github.com/soumikb/aquasense/internal/water"
)

// Report is an LLM-generated advisory for one assessed water sample.
type Report struct {
	// Classification restates the quality call in plain language.
	Classification string

	// KeyIssues names the problematic parameters and why they matter.
	KeyIssues []string

	// Treatments lists recommended treatment methods, most relevant first.
	Treatments []string

	// PostTreatmentUses describes what the water is fit for after treatment.
	PostTreatmentUses []string

	// HealthConsiderations flags risks of using the water untreated.
	HealthConsiderations []string

	// Conclusion is a short overall recommendation.
	Conclusion string

	GeneratedAt time.Time
}

// ReportInput holds everything the advisory needs about a sample.
type ReportInput struct {
	Assessment analysis.Assessment
	Thresholds water.Thresholds
}
