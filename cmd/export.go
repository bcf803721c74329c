package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/advisor-cli/internal/model"
)

var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a stored run to an xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "export")
		}
		if run.Result == nil {
			return eris.Errorf("run %s has no result to export (status %s)", run.ID, run.Status)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("advisor-%s.xlsx", truncateID(run.ID))
		}

		file, err := buildWorkbook(run)
		if err != nil {
			return err
		}
		if err := file.Save(out); err != nil {
			return eris.Wrapf(err, "export: save %s", out)
		}

		fmt.Printf("Exported run %s to %s\n", truncateID(run.ID), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "output path (default advisor-<run-id>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}

// buildWorkbook renders a completed run as a multi-sheet workbook.
func buildWorkbook(run *model.Run) (*xlsx.File, error) {
	file := xlsx.NewFile()
	result := run.Result

	summary, err := file.AddSheet("Summary")
	if err != nil {
		return nil, eris.Wrap(err, "export: add summary sheet")
	}
	addPair := func(k, v string) {
		row := summary.AddRow()
		row.AddCell().Value = k
		row.AddCell().Value = v
	}
	addPair("Run", run.ID)
	addPair("Engine", result.Engine)
	addPair("Archetype", result.Archetype.Title)
	addPair("Leverage Thesis", result.Archetype.LeverageThesis)
	addPair("Overall Confidence", fmt.Sprintf("%.2f", result.Confidence.Overall))
	addPair("Max Purchase Price", fmt.Sprintf("%.0f", result.Financial.MaxPurchasePrice))
	addPair("SDE Min", fmt.Sprintf("%.0f", result.Financial.SDEMin))
	addPair("SDE Max", fmt.Sprintf("%.0f", result.Financial.SDEMax))
	addPair("Industry Multiple", fmt.Sprintf("%.2f", result.Financial.IndustryMultiple))
	if result.Financial.RangeInverted {
		addPair("Warning", "income target exceeds affordable SDE range")
	}
	addPair("Thesis", result.NarrativeThesis)

	industries, err := file.AddSheet("Industries")
	if err != nil {
		return nil, eris.Wrap(err, "export: add industries sheet")
	}
	header := industries.AddRow()
	header.AddCell().Value = "Industry"
	header.AddCell().Value = "Score"
	header.AddCell().Value = "Confidence"
	for _, m := range result.IndustryMatches {
		row := industries.AddRow()
		row.AddCell().Value = m.Industry
		row.AddCell().SetFloat(m.Score)
		row.AddCell().SetFloat(m.Confidence)
	}

	buybox, err := file.AddSheet("Buybox")
	if err != nil {
		return nil, eris.Wrap(err, "export: add buybox sheet")
	}
	bheader := buybox.AddRow()
	bheader.AddCell().Value = "Criterion"
	bheader.AddCell().Value = "Target"
	bheader.AddCell().Value = "Rationale"
	for _, r := range result.Buybox {
		row := buybox.AddRow()
		row.AddCell().Value = r.Criterion
		row.AddCell().Value = r.Target
		row.AddCell().Value = r.Rationale
	}

	if len(result.CompetencyScores) > 0 {
		scores, err := file.AddSheet("Scores")
		if err != nil {
			return nil, eris.Wrap(err, "export: add scores sheet")
		}
		sheader := scores.AddRow()
		for _, col := range []string{"Competency", "Rating", "Sentiment", "Keyword", "Confidence", "Depth", "Composite"} {
			sheader.AddCell().Value = col
		}
		for _, cs := range result.CompetencyScores {
			row := scores.AddRow()
			row.AddCell().Value = string(cs.Competency)
			row.AddCell().SetFloat(cs.Rating)
			row.AddCell().SetFloat(cs.SentimentScore)
			row.AddCell().SetFloat(cs.KeywordScore)
			row.AddCell().SetFloat(cs.ConfidenceScore)
			row.AddCell().SetFloat(cs.DepthScore)
			row.AddCell().SetFloat(cs.CompositeScore)
		}
	}

	return file, nil
}
