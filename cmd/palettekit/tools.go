// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/themes"
)

var contrastCmd = &cobra.Command{
	Use:     "contrast <foreground> <background>",
	Short:   "Show the WCAG contrast ratio of two colors",
	Example: `  palettekit contrast "#767676" white`,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		fg, err := themes.ResolveColor(args[0])
		if err != nil {
			fail(err)
		}
		bg, err := themes.ResolveColor(args[1])
		if err != nil {
			fail(err)
		}

		ratio := colors.ContrastRatio(fg, bg)
		fmt.Printf("%s on %s\n", chip(fg, colors.HexString(fg)), chip(bg, colors.HexString(bg)))
		fmt.Printf("Ratio:      %.2f:1\n", ratio)
		fmt.Printf("Level:      %s\n", colors.WCAGLevel(ratio))
		fmt.Printf("AA normal:  %s   AA large:  %s\n", yesNo(colors.MeetsAA(fg, bg, false)), yesNo(colors.MeetsAA(fg, bg, true)))
		fmt.Printf("AAA normal: %s   AAA large: %s\n", yesNo(colors.MeetsAAA(fg, bg, false)), yesNo(colors.MeetsAAA(fg, bg, true)))
	},
}

var harmonyCmd = &cobra.Command{
	Use:   "harmony <color>",
	Short: "Show hue harmonies of a color",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		base, err := themes.ResolveColor(args[0])
		if err != nil {
			fail(err)
		}

		kind, _ := cmd.Flags().GetString("kind")
		angle, _ := cmd.Flags().GetFloat64("angle")
		steps, _ := cmd.Flags().GetInt("steps")

		kinds := colors.HarmonyKinds
		if kind != "" {
			kinds = []colors.HarmonyKind{colors.HarmonyKind(kind)}
		}

		for _, k := range kinds {
			hues, err := colors.Harmony(k, base, angle, steps)
			if err != nil {
				fail(err)
			}
			line := make([]string, len(hues))
			for i, h := range hues {
				line[i] = chip(h, colors.HexString(h))
			}
			fmt.Printf("%s%s\n", labelStyle.Width(22).Render(string(k)), strings.Join(line, " "))
		}
	},
}

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "List named seed colors",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range themes.ListSeeds() {
			fmt.Printf("%s %s\n", labelStyle.Width(12).Render(s.Name), chip(s.Color(), s.Primary)+" "+chip(s.AccentColor(), s.Secondary))
		}
	},
}

func init() {
	harmonyCmd.Flags().String("kind", "", "only show this harmony (analogous, complementary, triadic, tetradic, split-complementary, monochromatic)")
	harmonyCmd.Flags().Float64("angle", colors.DefaultHarmonyAngle, "spread for analogous and split-complementary")
	harmonyCmd.Flags().Int("steps", 5, "colors in the monochromatic harmony")

	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(seedsCmd)
}

func yesNo(ok bool) string {
	if ok {
		return passStyle.Render("pass")
	}
	return failStyle.Render("fail")
}
