// internal/cmd/window.go
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alnwin/internal/app"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Extract unique sequence variants from one alignment window",
	Long: `Extract the unique sequence variants inside one alignment window and the
number of times each occurs.

The window is chosen either with --start-position/--window-size, or by
locating the best local match of a query sequence (--query-sequence) in the
consensus; in the query case the explicit coordinates are ignored.`,
	Example: `  alnwin window -i aligned.fasta --start-position 601 --window-size 100
  alnwin window -i aligned.fasta --query-sequence probe.fasta --out-format fasta -o variants.fa`,
	PreRunE: func(cmd *cobra.Command, args []string) error { return bindFlags(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunWindow(app.WindowOptions{
			InputFile:  viper.GetString("input-file"),
			StartPos:   viper.GetInt("start-position"),
			WindowSize: viper.GetInt("window-size"),
			QueryFile:  viper.GetString("query-sequence"),
			Impute:     viper.GetBool("impute-missing"),
			OutFormat:  viper.GetString("out-format"),
			OutFile:    viper.GetString("out-file"),
			Sort:       viper.GetBool("sort"),
		})
	},
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().StringP("input-file", "i", "", "aligned FASTA input ('-' for stdin, .gz accepted)")
	windowCmd.Flags().Int("start-position", 1, "1-based window start")
	windowCmd.Flags().Int("window-size", 0, "window size in base pairs")
	windowCmd.Flags().String("query-sequence", "", "FASTA file with a query; overrides the window coordinates")
	windowCmd.Flags().Bool("impute-missing", false, "replace missing nucleotides with the consensus value")
	windowCmd.Flags().String("out-format", "tab", "output format: tab | fasta (case-insensitive)")
	windowCmd.Flags().StringP("out-file", "o", "-", "output file ('-' for stdout)")
	windowCmd.Flags().Bool("sort", false, "sort variants by occurrence count, descending")
}
