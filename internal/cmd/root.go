// internal/cmd/root.go

// Package cmd wires the alnwin command line. Flags are bound into viper so
// an optional settings YAML can supply defaults; flags set explicitly on
// the command line always win.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"alnwin/internal/version"
)

var settingsFile string

var rootCmd = &cobra.Command{
	Use:   "alnwin",
	Short: "Analyze sequence diversity in multiple-sequence DNA alignments",
	Long: `alnwin reads an aligned FASTA file, builds a per-column consensus, and
reports sequence diversity: unique variants inside one window (picked by
coordinates or by locating a query sequence) or a sliding-window scan
across the whole alignment.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command; called once from main.
func Execute() error { return rootCmd.Execute() }

func init() {
	cobra.OnInitialize(readSettings)
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "optional YAML file with flag defaults")
}

// readSettings loads the optional settings file into viper.
func readSettings() {
	if settingsFile == "" {
		return
	}
	viper.SetConfigFile(settingsFile)
	if err := viper.ReadInConfig(); err != nil {
		cobra.CheckErr(fmt.Errorf("reading settings %s: %w", settingsFile, err))
	}
}

// bindFlags binds every flag of cmd into viper under its own name. Called
// from each subcommand's PreRunE so sibling commands that reuse a flag name
// never clobber each other's binding.
func bindFlags(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if berr := viper.BindPFlag(f.Name, f); berr != nil && err == nil {
			err = berr
		}
	})
	return err
}
