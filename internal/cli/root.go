// Package cli provides the command-line interface for shapegen.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/shapegen/internal/config"
	"github.com/ironsheep/shapegen/internal/logger"
	"github.com/ironsheep/shapegen/internal/version"
)

// LogLevelEnv set to "debug" has the same effect as --verbose.
const LogLevelEnv = "SHAPEGEN_LOG_LEVEL"

// app carries state shared by every subcommand.
type app struct {
	logOpts    logger.Options
	configPath string
	log        *zap.Logger
}

// loadConfig reads --config, or the defaults when it is unset.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(a.configPath)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "shapegen",
		Short: "Synthetic colored-shape object detection datasets",
		Long: `shapegen renders single-object images of colored geometric shapes and
writes them out as a YOLO-style detection dataset: PNG images, one
normalized label per image, a train/val split and the class list.

Every class is a (color, shape) pair. A run is reproducible from its seed.`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv(LogLevelEnv) == "debug" {
				a.logOpts.Verbose = true
			}
			log, err := logger.New(a.logOpts)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.logOpts.Verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&a.logOpts.Quiet, "quiet", "q", false, "log warnings and errors only")
	root.PersistentFlags().BoolVar(&a.logOpts.JSON, "log-json", false, "always log JSON, even on a terminal")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newAuditCmd(a))
	root.AddCommand(newClassesCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
