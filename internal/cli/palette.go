package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/mossrock/tint/internal/config"
	"github.com/mossrock/tint/internal/output"
)

// newPaletteCommand creates the palette subcommand, which lists every
// available style with its name rendered in that style.
func newPaletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List available styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(cfg.Styles))
			for name := range cfg.Styles {
				names = append(names, name)
			}
			sort.Strings(names)

			printer := output.NewPrinterWithWriter(cmd.OutOrStdout())
			for _, name := range names {
				if cfg.Plain {
					if err := printer.Plain(name); err != nil {
						return err
					}
					continue
				}
				if err := printer.Styled(cfg.Styles[name], name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
