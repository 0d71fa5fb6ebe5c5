// Package cmd implements the axconv command line tool: detection and
// conversion of Unicode text encodings on files.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "axconv",
	Short: "Detect and convert Unicode text encodings",
	Long: `axconv inspects files for byte order marks and transcodes text
between UTF-8, UTF-16, and UTF-32 in either byte order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger = zap.NewNop()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log per-file details")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
