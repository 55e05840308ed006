// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/palettekit/internal/config"
	"github.com/thatcatcamp/palettekit/internal/logging"
	"github.com/thatcatcamp/palettekit/internal/palettes"
	"github.com/thatcatcamp/palettekit/internal/themes"
)

var generateCmd = &cobra.Command{
	Use:   "generate <color>",
	Short: "Generate a palette from a brand color",
	Long: `Generate a palette from a brand color. The color may be a hex value,
rgb()/hsl() function, CSS color name or seed name (see "palettekit seeds").
Flags that are not given fall back to the palette.* config keys.`,
	Example: `  palettekit generate "#3b82f6"
  palettekit generate indigo --mode triadic --format css`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fail(err)
		}

		cfg, err := configFromFlags(cmd, args[0])
		if err != nil {
			fail(err)
		}
		if err := cfg.Validate(); err != nil {
			fail(err)
		}

		if err := output(cmd, palettes.Generate(cfg), cfg.PreserveAccessibility); err != nil {
			fail(err)
		}
	},
}

var presetCmd = &cobra.Command{
	Use:   "preset <name> <color>",
	Short: "Generate a named preset (corporate, vibrant, balanced, minimal)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fail(err)
		}

		base, err := themes.ResolveColor(args[1])
		if err != nil {
			fail(err)
		}
		cfg, err := palettes.PresetConfig(args[0], base)
		if err != nil {
			fail(fmt.Errorf("%w (available: %s)", err, strings.Join(palettes.PresetNames(), ", ")))
		}

		if err := output(cmd, palettes.Generate(cfg), cfg.PreserveAccessibility); err != nil {
			fail(err)
		}
	},
}

func init() {
	addPaletteFlags(generateCmd)
	addFormatFlag(generateCmd)
	addFormatFlag(presetCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(presetCmd)
}

func addPaletteFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", palettes.DefaultName, "palette name used in exports")
	cmd.Flags().String("mode", string(palettes.ModeMonochromatic), "monochromatic, analogous, complementary, triadic or custom")
	cmd.Flags().Int("steps", palettes.DefaultSteps, "number of scale entries")
	cmd.Flags().Bool("accessible", true, "nudge failing light/dark weights toward AA contrast")
	cmd.Flags().Bool("semantic", true, "derive success, warning, error and info colors")
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "table", "output format: table, json, css or tailwind")
}

// configFromFlags builds a generator config; unset flags fall back to config keys
func configFromFlags(cmd *cobra.Command, input string) (palettes.Config, error) {
	base, err := themes.ResolveColor(input)
	if err != nil {
		return palettes.Config{}, err
	}

	flags := cmd.Flags()
	name, _ := flags.GetString("name")
	modeName, _ := flags.GetString("mode")
	steps, _ := flags.GetInt("steps")
	accessible, _ := flags.GetBool("accessible")
	semantic, _ := flags.GetBool("semantic")

	if !flags.Changed("name") && config.IsSet("palette.name") {
		name = config.GetString("palette.name")
	}
	if !flags.Changed("mode") && config.IsSet("palette.mode") {
		modeName = config.GetString("palette.mode")
	}
	if !flags.Changed("steps") && config.IsSet("palette.steps") {
		steps = config.GetInt("palette.steps")
	}
	if !flags.Changed("accessible") && config.IsSet("palette.preserve_accessibility") {
		accessible = config.GetBool("palette.preserve_accessibility")
	}
	if !flags.Changed("semantic") && config.IsSet("palette.semantic_colors") {
		semantic = config.GetBool("palette.semantic_colors")
	}

	mode, err := palettes.ParseMode(modeName)
	if err != nil {
		return palettes.Config{}, err
	}

	return palettes.Config{
		Name:                   name,
		BaseColor:              base,
		Mode:                   mode,
		Steps:                  steps,
		PreserveAccessibility:  accessible,
		GenerateSemanticColors: semantic,
	}, nil
}

// warnUnrepaired logs the weights a repair pass left below AA. Without a
// repair pass failing weights are expected and nothing is logged.
func warnUnrepaired(p palettes.Palette, repaired bool) {
	if !repaired {
		return
	}
	if failing := palettes.Unrepaired(p.Scale); len(failing) > 0 {
		logging.Logger.Warn("weights still below AA after repair", "weights", failing)
	}
}

// output prints p in the --format of cmd
func output(cmd *cobra.Command, p palettes.Palette, repaired bool) error {
	warnUnrepaired(p, repaired)

	format, _ := cmd.Flags().GetString("format")
	if format == "table" {
		fmt.Fprint(os.Stdout, renderPreview(p))
		return nil
	}

	out, err := themes.Export(p, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, out)
	return nil
}
