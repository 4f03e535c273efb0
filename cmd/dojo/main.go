package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dojo/internal/config"
)

var (
	// Global flags
	verbose bool
	baseDir string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command. Running it without arguments starts
// an interactive practice session.
var rootCmd = &cobra.Command{
	Use:   "dojo",
	Short: "dojo - scaffold a competitive-programming practice workspace",
	Long: `dojo scaffolds a local workspace for competitive-programming practice.

Given a problem URL it extracts the contest and problem codes, writes a
solution skeleton, a problem-link file and a thought-process outline,
appends an entry to the practice log, records the attempt in the catalog,
and opens your editor in the solutions directory.

Run without arguments to start an interactive session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive prompts own stdout; zap is the diagnostic sink on
		// stderr, quiet unless --verbose raises the level.
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPractice,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the dojo version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dojo 1.0.0")
	},
}

// loadConfig resolves the effective configuration, applying the --base-dir
// override on top of the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if baseDir != "" {
		cfg.BaseDir = baseDir
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "workspace root (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
