// Package cli implements the tint command line interface.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mossrock/tint/internal/config"
	"github.com/mossrock/tint/internal/logger"
	"github.com/mossrock/tint/internal/output"
	"github.com/mossrock/tint/internal/sgr"
)

const version = "0.1.0"

// colorAttrs maps the --color and --bg flag values to attributes
var colorAttrs = map[string]struct {
	fg sgr.Attribute
	bg sgr.Attribute
}{
	"red":    {sgr.FgRed, sgr.BgRed},
	"green":  {sgr.FgGreen, sgr.BgGreen},
	"yellow": {sgr.FgYellow, sgr.BgYellow},
	"blue":   {sgr.FgBlue, sgr.BgBlue},
}

// Execute runs the CLI
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	var showVersion bool
	var colorName string
	var bgName string
	var bold bool
	var underline bool
	var styleName string
	var plain bool

	cmd := &cobra.Command{
		Use:   "tint [flags] [text ...]",
		Short: "tint - colorize terminal output",
		Long: `tint - colorize terminal output

tint wraps text in ANSI escape sequences and prints it followed by a
newline. Text comes from the arguments, joined without separators, or
from standard input when no arguments are given.

Examples:
  tint --color red "build failed"
  tint --bold --color green "all checks passed"
  tint --style warn "disk almost full"          # style from palette.yaml
  echo "done" | tint --color blue
  tint palette                                  # list available styles`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "tint version "+version)
				return err
			}

			log, err := logger.NewFromEnv()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log.Debugf("loaded %d styles (palette: %q)", len(cfg.Styles), cfg.PalettePath)

			payload, err := resolvePayload(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			attrs, err := resolveAttrs(cfg, styleName, colorName, bgName, bold, underline)
			if err != nil {
				return err
			}
			log.Debugf("resolved attributes: %v", attrs)

			printer := output.NewPrinterWithWriter(cmd.OutOrStdout())
			if plain || cfg.Plain || len(attrs) == 0 {
				return printer.Plain(payload)
			}
			return printer.Styled(attrs, payload)
		},
	}

	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	cmd.Flags().StringVarP(&colorName, "color", "c", "", "Foreground color (red, green, yellow, blue)")
	cmd.Flags().StringVar(&bgName, "bg", "", "Background color (red, green, yellow, blue)")
	cmd.Flags().BoolVarP(&bold, "bold", "b", false, "Render bold")
	cmd.Flags().BoolVarP(&underline, "underline", "u", false, "Render underlined")
	cmd.Flags().StringVarP(&styleName, "style", "s", "", "Named style from the palette (overrides other style flags)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print without any styling")

	cmd.AddCommand(newPaletteCommand())

	return cmd
}

// resolvePayload joins the argument fragments, or reads all of standard
// input when there are none. A single trailing newline from stdin is
// dropped since WriteLine adds its own.
func resolvePayload(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, ""), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// resolveAttrs builds the attribute sequence from the flags. A named
// style wins over the individual flags; bold and underline precede the
// colors so the composed escape order matches the shorthand styles.
func resolveAttrs(cfg *config.Config, styleName, colorName, bgName string, bold, underline bool) ([]sgr.Attribute, error) {
	if styleName != "" {
		attrs, ok := cfg.Styles[styleName]
		if !ok {
			return nil, fmt.Errorf("unknown style %q (run \"tint palette\" to list styles)", styleName)
		}
		return attrs, nil
	}

	var attrs []sgr.Attribute
	if bold {
		attrs = append(attrs, sgr.Bold)
	}
	if underline {
		attrs = append(attrs, sgr.Underline)
	}
	if colorName != "" {
		pair, ok := colorAttrs[colorName]
		if !ok {
			return nil, fmt.Errorf("unknown color %q (expected red, green, yellow, or blue)", colorName)
		}
		attrs = append(attrs, pair.fg)
	}
	if bgName != "" {
		pair, ok := colorAttrs[bgName]
		if !ok {
			return nil, fmt.Errorf("unknown background color %q (expected red, green, yellow, or blue)", bgName)
		}
		attrs = append(attrs, pair.bg)
	}
	return attrs, nil
}
