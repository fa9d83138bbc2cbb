package insights

import (
	"fmt"
	"strings"
)

const reportSystemPrompt = `You are an expert in environmental science and water-treatment engineering. You review measured water quality parameters against WHO drinking-water guidelines and advise a non-specialist operator on what the readings mean and what to do next.`

func buildReportUserMessage(input ReportInput) string {
	var b strings.Builder
	m := input.Assessment.Measurement
	t := input.Thresholds

	b.WriteString("Measured parameters:\n")
	b.WriteString(fmt.Sprintf("- pH: %.2f (acceptable range %.1f-%.1f)\n", m.PH, t.PHMin, t.PHMax))
	b.WriteString(fmt.Sprintf("- Turbidity: %.2f NTU (max %.1f)\n", m.Turbidity, t.TurbidityMax))
	b.WriteString(fmt.Sprintf("- Conductivity: %.1f uS/cm (max %.0f)\n", m.Conductivity, t.ConductivityMax))
	b.WriteString(fmt.Sprintf("- Dissolved oxygen: %.2f mg/L (min %.1f)\n", m.DissolvedOxygen, t.DissolvedOxygenMin))
	b.WriteString(fmt.Sprintf("- Total dissolved solids: %.1f mg/L (max %.0f)\n", m.TDS, t.TDSMax))

	b.WriteString("\nAssessment:\n")
	if input.Assessment.Verdict.Safe {
		b.WriteString("- All threshold rules passed\n")
	} else {
		b.WriteString(fmt.Sprintf("- Failed thresholds: %s\n", strings.Join(input.Assessment.Verdict.Violations, ", ")))
	}
	if input.Assessment.ModelUsed && input.Assessment.Probability != nil {
		b.WriteString(fmt.Sprintf("- Model probability of safety: %.1f%%\n", *input.Assessment.Probability*100))
	}
	b.WriteString(fmt.Sprintf("- Final decision: %s\n", input.Assessment.Decision.Label()))

	b.WriteString(`
Instructions:
Write a practical advisory for this sample:
1. State the overall classification of the water in one or two sentences.
2. List the key issues. Name each problematic parameter, how far it is from its limit, and the likely cause. If nothing is problematic, say so.
3. Recommend specific treatment methods, most relevant first (e.g. filtration, chlorination, reverse osmosis, aeration, pH correction). If no treatment is needed, recommend routine safeguards instead.
4. Describe what the water is suitable for after the recommended treatment (drinking, irrigation, livestock, industrial use).
5. Flag health considerations of using the water without treatment.
6. Close with a short overall conclusion and recommendation.
Keep every list entry concise and concrete. Do not invent readings that were not provided.`)

	return b.String()
}
