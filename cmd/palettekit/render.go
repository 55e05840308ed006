// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/palettekit/internal/config"
	"github.com/thatcatcamp/palettekit/internal/palettes"
	"github.com/thatcatcamp/palettekit/internal/render"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch <color>",
	Short: "Render a palette as a PNG swatch strip",
	Args:  cobra.ExactArgs(1),
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

		size := render.SwatchSize{
			Width:  config.GetInt("render.swatch_width"),
			Height: config.GetInt("render.swatch_height"),
		}
		if cmd.Flags().Changed("width") {
			size.Width, _ = cmd.Flags().GetInt("width")
		}
		if cmd.Flags().Changed("height") {
			size.Height, _ = cmd.Flags().GetInt("height")
		}

		out, _ := cmd.Flags().GetString("output")
		if err := render.SaveSwatch(out, palettes.Generate(cfg), size); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", out)
	},
}

var plotCmd = &cobra.Command{
	Use:   "plot <color>",
	Short: "Plot the lightness and saturation curve of a palette",
	Args:  cobra.ExactArgs(1),
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

		out, _ := cmd.Flags().GetString("output")
		if err := render.SavePlot(out, palettes.Generate(cfg)); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", out)
	},
}

func init() {
	addPaletteFlags(swatchCmd)
	swatchCmd.Flags().StringP("output", "o", "swatch.png", "output PNG path")
	swatchCmd.Flags().Int("width", render.DefaultSwatchWidth, "image width in pixels")
	swatchCmd.Flags().Int("height", render.DefaultSwatchHeight, "image height in pixels")

	addPaletteFlags(plotCmd)
	plotCmd.Flags().StringP("output", "o", "curve.png", "output PNG path")

	rootCmd.AddCommand(swatchCmd)
	rootCmd.AddCommand(plotCmd)
}
