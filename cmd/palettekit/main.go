// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/thatcatcamp/palettekit/internal/config"
	"github.com/thatcatcamp/palettekit/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "palettekit",
	Short: "palettekit - accessible color systems from a single brand color",
	Long: `palettekit turns one brand color into a complete color system: a 50-950
lightness scale tagged with WCAG contrast data, semantic state colors and hue
harmonies. Palettes can be previewed in the terminal, exported as CSS, Tailwind
or JSON, rendered as PNG swatches and saved to a local library.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config file and configures logging
func setup() error {
	if err := initConfig(); err != nil {
		return err
	}
	return logging.Initialize(config.GetString("log.level"), config.GetString("log.format"), os.Stderr)
}

// fail prints err and exits
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
