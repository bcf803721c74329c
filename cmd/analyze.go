package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <submission.yaml>",
	Short: "Analyze a buyer submission and produce an acquisition report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sub, err := loadSubmission(args[0])
		if err != nil {
			return err
		}

		engineID, _ := cmd.Flags().GetString("engine")
		if engineID == "" {
			engineID = cfg.Engines.Default
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")

		orch := buildOrchestrator()

		var runID string
		if save {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}

			run, err := st.CreateRun(ctx, engineID, sub)
			if err != nil {
				return err
			}
			runID = run.ID

			result, err := orch.RunOne(ctx, engineID, sub)
			if err != nil {
				_ = st.FailRun(ctx, runID, err.Error())
				return eris.Wrap(err, "analyze")
			}
			if err := st.CompleteRun(ctx, runID, result); err != nil {
				return err
			}
			return writeResult(os.Stdout, result, runID, asJSON)
		}

		result, err := orch.RunOne(ctx, engineID, sub)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}
		return writeResult(os.Stdout, result, "", asJSON)
	},
}

func init() {
	analyzeCmd.Flags().String("engine", "", "engine id (default from config)")
	analyzeCmd.Flags().Bool("json", false, "emit the full result as JSON")
	analyzeCmd.Flags().Bool("save", false, "persist the run to the configured store")
	rootCmd.AddCommand(analyzeCmd)
}

// writeResult renders an analysis result as a readable report or as JSON.
func writeResult(w io.Writer, result *model.AnalysisResult, runID string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if runID != "" {
		fmt.Fprintf(w, "Run: %s\n\n", runID)
	}

	fmt.Fprintf(w, "# %s\n\n", result.Archetype.Title)
	fmt.Fprintf(w, "Engine: %s", result.Engine)
	if result.Degraded {
		fmt.Fprint(w, " (degraded)")
	}
	fmt.Fprintf(w, "\nOverall confidence: %.2f\n\n", result.Confidence.Overall)

	fmt.Fprintln(w, "## Thesis")
	fmt.Fprintln(w)
	fmt.Fprintln(w, result.NarrativeThesis)
	fmt.Fprintln(w)

	if len(result.IndustryMatches) > 0 {
		fmt.Fprintln(w, "## Industry Matches")
		fmt.Fprintln(w)
		for _, m := range result.IndustryMatches {
			fmt.Fprintf(w, "- %s (score %.1f, confidence %.2f)\n", m.Industry, m.Score, m.Confidence)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "## Financial Parameters")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- Max purchase price: $%.0f\n", result.Financial.MaxPurchasePrice)
	fmt.Fprintf(w, "- SDE range: $%.0f - $%.0f\n", result.Financial.SDEMin, result.Financial.SDEMax)
	fmt.Fprintf(w, "- Industry multiple: %.2fx\n", result.Financial.IndustryMultiple)
	if result.Financial.RangeInverted {
		fmt.Fprintln(w, "- WARNING: income target exceeds the affordable SDE range")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Buybox")
	fmt.Fprintln(w)
	fmt.Fprint(w, report.RenderBuybox(result.Buybox))
	return nil
}
