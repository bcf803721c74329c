package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/orchestrator"
)

var compareCmd = &cobra.Command{
	Use:   "compare <submission.yaml>",
	Short: "Run a submission through multiple engines and compare results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sub, err := loadSubmission(args[0])
		if err != nil {
			return err
		}

		enginesFlag, _ := cmd.Flags().GetString("engines")
		asJSON, _ := cmd.Flags().GetBool("json")

		var engineIDs []string
		if enginesFlag != "" {
			engineIDs = strings.Split(enginesFlag, ",")
		}

		orch := buildOrchestrator()
		results, errs := orch.RunMany(ctx, engineIDs, sub)

		if asJSON {
			return writeComparisonJSON(os.Stdout, results, errs)
		}
		return writeComparison(os.Stdout, results, errs)
	},
}

func init() {
	compareCmd.Flags().String("engines", "", "comma-separated engine ids (default: all registered)")
	compareCmd.Flags().Bool("json", false, "emit results and comparison as JSON")
	rootCmd.AddCommand(compareCmd)
}

func writeComparisonJSON(w io.Writer, results map[string]*model.AnalysisResult, errs map[string]error) error {
	out := struct {
		Results    map[string]*model.AnalysisResult `json:"results"`
		Errors     map[string]string                `json:"errors,omitempty"`
		Comparison *model.EngineComparison          `json:"comparison,omitempty"`
	}{Results: results}

	if len(errs) > 0 {
		out.Errors = make(map[string]string, len(errs))
		for id, err := range errs {
			out.Errors[id] = err.Error()
		}
	}
	if len(results) >= 2 {
		cmp, err := orchestrator.Compare(results)
		if err != nil {
			return err
		}
		out.Comparison = cmp
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeComparison(w io.Writer, results map[string]*model.AnalysisResult, errs map[string]error) error {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		r := results[id]
		fmt.Fprintf(w, "## %s\n", id)
		fmt.Fprintf(w, "Archetype: %s\n", r.Archetype.Title)
		fmt.Fprintf(w, "Overall confidence: %.2f\n", r.Confidence.Overall)
		if len(r.IndustryMatches) > 0 {
			names := make([]string, 0, len(r.IndustryMatches))
			for _, m := range r.IndustryMatches {
				names = append(names, m.Industry)
			}
			fmt.Fprintf(w, "Industries: %s\n", strings.Join(names, ", "))
		}
		fmt.Fprintln(w)
	}

	if len(errs) > 0 {
		failed := make([]string, 0, len(errs))
		for id := range errs {
			failed = append(failed, id)
		}
		sort.Strings(failed)
		fmt.Fprintln(w, "## Failed Engines")
		for _, id := range failed {
			fmt.Fprintf(w, "- %s: %v\n", id, errs[id])
		}
		fmt.Fprintln(w)
	}

	if len(results) < 2 {
		fmt.Fprintln(w, "Not enough successful results to compare.")
		return nil
	}

	cmp, err := orchestrator.Compare(results)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "## Consensus")
	fmt.Fprintf(w, "Modal archetype: %s (%.0f%% agreement)\n", cmp.ModalArchetype, cmp.ArchetypeAgreement*100)
	fmt.Fprintf(w, "Industry overlap: %.0f%%\n", cmp.IndustryOverlap*100)
	fmt.Fprintf(w, "Confidence stddev: %.3f (%s consensus)\n", cmp.ConfidenceStdDev, cmp.Consensus)
	fmt.Fprintln(w)
	for _, rec := range cmp.Recommendations {
		fmt.Fprintf(w, "- %s\n", rec)
	}
	return nil
}
