// Package cli implements the command-line interface for stickering.
package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_stickering/internal/config"
	"github.com/SeamusWaldron/gocube_stickering/internal/logger"
)

const version = "0.1.0"

var (
	// Global flags
	configFile string
	dbPath     string
	verbose    bool
	logJSON    bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "stickering",
	Short: "Stickering masks for 3x3 tutorial cubes",
	Long: `stickering builds the stickering masks that tutorial cube widgets use to
highlight, dim or hide pieces, and moves them along with the pieces when a
setup alg is applied.

Masks can be built from flags, stored as named presets, imported from the
frontmatter of Markdown docs, previewed in the terminal, and rendered to an
HTML page of twisty-player elements.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./stickering.toml or ~/.stickering/stickering.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (overrides database.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
}

// setup loads the configuration and starts the logger. Flags win over the
// config file.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		loaded.Database.Path = dbPath
	}
	if cmd.Flags().Changed("verbose") {
		loaded.Log.Verbose = verbose
	}
	if cmd.Flags().Changed("log-json") {
		loaded.Log.JSON = logJSON
	}
	cfg = loaded

	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbose); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Named("cli").Debugw("Loaded config",
		logger.FieldOperation, cmd.CommandPath(),
		logger.FieldPath, cfg.Database.Path)
	return nil
}
