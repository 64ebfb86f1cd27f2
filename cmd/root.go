package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the csvdash command tree. Running it without a
// subcommand serves HTTP.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "csvdash",
		Short:         "CSV analyzer dashboard back end",
		Long:          `csvdash loads CSV files, fills missing values and describes them as dashboard pages and charts over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config/config.yaml with LOCAL=true, else /config/config.yaml)")

	root.AddCommand(newServeCommand(&cfgFile), newInspectCommand())

	return root
}

// Execute is the entry point called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
