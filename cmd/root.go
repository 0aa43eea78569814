// Package cmd defines the rntgen command-line interface.
package cmd

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MinaFSedrak/RNTranslationGen/internal/config"
	"github.com/MinaFSedrak/RNTranslationGen/internal/generator"
	"github.com/MinaFSedrak/RNTranslationGen/internal/logging"
)

var (
	configFile string
	workdir    string
	verbose    bool
)

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "explicit path to a config file")
	rootCmd.Flags().StringVar(&workdir, "workdir", ".", "directory config discovery and relative paths resolve against")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	config.RegisterFlags(rootCmd.Flags())
}

var rootCmd = &cobra.Command{
	Use:   "rntgen",
	Short: "Generate compiler-checked translation key artifacts from locale JSON",
	Long: `rntgen reads the first JSON file in the input directory, flattens its
nested keys into dotted paths, and emits a type union plus a mirrored
key-constant structure so application code can reference translation keys
without hand-typed strings.

With --no-emit the artifacts are regenerated into a scratch directory and
byte-compared against the committed copies, failing the run on drift.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := filepath.Abs(workdir)
		if err != nil {
			return err
		}

		log := logging.New(verbose)
		defer func() { _ = log.Sync() }()

		cfg, err := config.Resolve(wd, configFile, cmd.Flags())
		if err != nil {
			return err
		}

		result, err := generator.Run(cfg, log)
		if err != nil {
			return err
		}

		if result.Verified {
			pterm.Success.Printf("Generated artifacts are up to date (%d keys, source %s)\n",
				result.KeyCount, result.SourceFile)
			return nil
		}
		pterm.Success.Printf("Generated %d keys from %s\n", result.KeyCount, result.SourceFile)
		for _, path := range result.Written {
			pterm.Info.Printf("  wrote %s\n", path)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
