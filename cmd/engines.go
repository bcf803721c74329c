package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/model"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List registered analysis engines and their availability",
	RunE: func(cmd *cobra.Command, _ []string) error {
		formatEngines(os.Stdout, buildRegistry().Describe())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}

func formatEngines(out io.Writer, descs []model.EngineDescriptor) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tREMOTE\tAVAILABLE")
	_, _ = fmt.Fprintln(w, "--\t----\t------\t---------")
	for _, d := range descs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", d.ID, d.Name, d.Remote, d.Available)
	}
	_ = w.Flush()
}
