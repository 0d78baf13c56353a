package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/shapegen/internal/classes"
)

func newClassesCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the class ids of the configured catalog",
		Long: `List every (color, shape) class with its id. With --plain the output is
exactly the classes.txt a generate run would write.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			kinds, err := cfg.ShapeKinds()
			if err != nil {
				return err
			}

			reg := classes.NewRegistry(catalog.Names(), kinds)
			out := cmd.OutOrStdout()
			if plain {
				_, err := reg.WriteTo(out)
				return err
			}
			for _, c := range reg.Classes() {
				rgb, _ := catalog.Lookup(c.Color)
				fmt.Fprintf(out, "%3d  %-20s %s ±%d\n", c.ID, c.Name(), rgb.RGB.Hex(), catalog.Jitter(c.Color))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print names only, one per line")
	return cmd
}
