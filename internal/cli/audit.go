package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/shapegen/internal/dataset"
	"github.com/ironsheep/shapegen/internal/imaging"
)

func newAuditCmd(a *app) *cobra.Command {
	var (
		tolerance float64
		level     uint8
		warnings  bool
	)

	cmd := &cobra.Command{
		Use:   "audit [dir]",
		Short: "Check that labels agree with their images",
		Long: `Re-read a generated dataset and compare every label with the pixels of its
image. The labeled box must match the rendered foreground within the
tolerance, file names must match their class and the labels_all copy must
be identical.

The color catalog is taken from --config, or the defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			root := cfg.Output
			if len(args) == 1 {
				root = args[0]
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}

			rep, err := dataset.Audit(cmd.Context(), root, dataset.AuditOptions{
				Tolerance: tolerance,
				Level:     level,
				Catalog:   catalog,
			}, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range rep.Errors {
				fmt.Fprintf(out, "ERROR %s\n", f)
			}
			if warnings {
				for _, f := range rep.Warnings {
					fmt.Fprintf(out, "WARN  %s\n", f)
				}
			}
			fmt.Fprintf(out, "Checked %d samples: %d errors, %d warnings\n",
				rep.Checked, len(rep.Errors), len(rep.Warnings))

			if !rep.OK() {
				return fmt.Errorf("audit found %d errors", len(rep.Errors))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", dataset.DefaultTolerance, "allowed box edge error in pixels")
	cmd.Flags().Uint8Var(&level, "level", imaging.DefaultForegroundLevel, "foreground threshold on the background difference")
	cmd.Flags().BoolVarP(&warnings, "warnings", "w", false, "list warnings too")
	return cmd
}
