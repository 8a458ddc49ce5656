// internal/cmd/scan.go
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alnwin/internal/app"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Slide a window across the alignment and report diversity",
	Long: `Slide a window across the whole alignment and report, for every window
position, how often each distinct sequence variant occurs. Low-diversity
stretches show up as windows dominated by a single variant (homozygosity
runs).

The output has two tab-separated columns: the 1-based window start,
repeated once per unique variant in that window, and the variant's
occurrence count.`,
	Example: `  alnwin scan -i aligned.fasta --window-size 100 --step-size 50 -o diversity.tsv`,
	PreRunE: func(cmd *cobra.Command, args []string) error { return bindFlags(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunScan(app.ScanOptions{
			InputFile:  viper.GetString("input-file"),
			WindowSize: viper.GetInt("window-size"),
			StepSize:   viper.GetInt("step-size"),
			Impute:     viper.GetBool("impute-missing"),
			OutFile:    viper.GetString("out-file"),
		})
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringP("input-file", "i", "", "aligned FASTA input ('-' for stdin, .gz accepted)")
	scanCmd.Flags().Int("window-size", 0, "window size in base pairs")
	scanCmd.Flags().Int("step-size", 0, "window movement step in base pairs")
	scanCmd.Flags().Bool("impute-missing", false, "replace missing nucleotides with the consensus value")
	scanCmd.Flags().StringP("out-file", "o", "-", "output file ('-' for stdout)")
}
