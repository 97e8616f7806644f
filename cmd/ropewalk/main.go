package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ropewalk/internal/config"
	"ropewalk/internal/logging"
	"ropewalk/internal/rope"
)

var (
	// Global flags
	verbose        bool
	configPath     string
	allowZeroCount bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ropewalk",
	Short: "Rope follower simulation on an integer grid",
	Long: `ropewalk drags a chain of linked knots across a grid following a
movement log ("R 4", "U 2", ...) and counts the distinct positions visited
by the last knot.

Each input is solved once per configured chain length (2 and 10 by default).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if allowZeroCount {
			cfg.Parser.AllowZeroCount = true
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		logger, err = logging.NewBase(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logging.Initialize(cfg.Logging, logger)
		logging.Boot("config loaded from %s, parts=%v", configPath, cfg.Parts)
		if logging.IsDebugMode() {
			logger.Debug("category logging enabled", zap.Any("categories", cfg.Logging.Categories))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolVar(&allowZeroCount, "allow-zero-count", false, "Accept zero-count instructions as no-ops")

	solveCmd.Flags().String("parts", "", "Comma separated chain lengths, overrides config (e.g. 2,10)")

	renderCmd.Flags().IntP("segments", "n", 0, "Chain length (default from config)")
	renderCmd.Flags().Bool("color", false, "Colorize output")
	renderCmd.Flags().Bool("chain", true, "Draw the chain on top of the visited map")

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parser() rope.Parser {
	return rope.Parser{AllowZeroCount: cfg.Parser.AllowZeroCount}
}

// commandContext returns cmd's context, or Background when the command was
// invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
