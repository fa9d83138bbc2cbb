package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/soumikb/aquasense/internal/analysis"
	"github.com/soumikb/aquasense/internal/insights"
	"github.com/soumikb/aquasense/internal/llm"
	"github.com/soumikb/aquasense/internal/store"
	"github.com/soumikb/aquasense/internal/water"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Assess a single water sample from the command line",
	RunE: func(cmd *cobra.Command, args []string) error {
		ph, _ := cmd.Flags().GetFloat64("ph")
		turbidity, _ := cmd.Flags().GetFloat64("turbidity")
		conductivity, _ := cmd.Flags().GetFloat64("conductivity")
		do, _ := cmd.Flags().GetFloat64("do")
		tds, _ := cmd.Flags().GetFloat64("tds")
		withInsights, _ := cmd.Flags().GetBool("insights")

		// TDS tracks conductivity by a fixed factor; derive it when the
		// flag is not given, matching what most field sensors report.
		if !cmd.Flags().Changed("tds") {
			tds = water.TDSFromConductivity(conductivity)
		}

		m := water.Measurement{
			PH:              ph,
			Turbidity:       turbidity,
			Conductivity:    conductivity,
			DissolvedOxygen: do,
			TDS:             tds,
		}

		thresholds, err := water.LoadThresholds()
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		artifactPath, err := resolveArtifactsPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve artifacts path: %w", err)
		}

		eventRepo := st.EventRepo()
		svc := analysis.NewService(thresholds, artifactPath, eventRepo)

		ctx := cmd.Context()
		a, err := svc.Assess(ctx, m)
		if err != nil {
			return err
		}

		fmt.Printf("Decision:    %s\n", a.Decision.Label())
		if a.Verdict.Safe {
			fmt.Println("Rules:       all thresholds passed")
		} else {
			fmt.Printf("Rules:       failed %s\n", strings.Join(a.Verdict.Violations, ", "))
		}
		switch {
		case a.ModelUsed && a.Probability != nil:
			fmt.Printf("Model:       %.1f%% probability of safety\n", *a.Probability*100)
		case !a.Verdict.Safe:
			fmt.Println("Model:       skipped (rule failures are decisive)")
		default:
			fmt.Println("Model:       unavailable (rules-only verdict)")
		}

		if !withInsights {
			return nil
		}

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			return nil
		}

		report, err := insights.NewService(provider, insights.DefaultConfig()).
			Generate(ctx, insights.ReportInput{Assessment: *a, Thresholds: thresholds})
		if err != nil {
			return fmt.Errorf("generate advisory: %w", err)
		}

		printReport(report)
		return nil
	},
}

func printReport(r *insights.Report) {
	sep := strings.Repeat("─", 60)

	fmt.Println()
	fmt.Println(sep)
	fmt.Println("ADVISORY")
	fmt.Println(sep)
	fmt.Printf("Classification: %s\n", r.Classification)

	printList := func(title string, items []string) {
		fmt.Printf("\n%s:\n", title)
		if len(items) == 0 {
			fmt.Println("  (none)")
		}
		for _, it := range items {
			fmt.Printf("  - %s\n", it)
		}
	}

	printList("Key issues", r.KeyIssues)
	printList("Recommended treatments", r.Treatments)
	printList("Suitable uses after treatment", r.PostTreatmentUses)
	printList("Health considerations", r.HealthConsiderations)

	fmt.Printf("\nConclusion: %s\n", r.Conclusion)
}

func init() {
	checkCmd.Flags().Float64("ph", 0, "pH of the sample")
	checkCmd.Flags().Float64("turbidity", 0, "Turbidity in NTU")
	checkCmd.Flags().Float64("conductivity", 0, "Electrical conductivity in µS/cm")
	checkCmd.Flags().Float64("do", 0, "Dissolved oxygen in mg/L")
	checkCmd.Flags().Float64("tds", 0, "Total dissolved solids in mg/L (derived from conductivity when omitted)")
	checkCmd.Flags().Bool("insights", false, "Generate an LLM advisory for the sample")

	_ = checkCmd.MarkFlagRequired("ph")
	_ = checkCmd.MarkFlagRequired("turbidity")
	_ = checkCmd.MarkFlagRequired("conductivity")
	_ = checkCmd.MarkFlagRequired("do")
}
