package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/palettekit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage palettekit configuration",
	Long:  "View and modify palettekit configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail(err)
		}

		if !config.IsSet(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown key %s\n", args[0])
			os.Exit(1)
		}
		fmt.Println(config.GetString(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail(err)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail(err)
		}

		for _, line := range flatten("", config.GetAll()) {
			fmt.Println(line)
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig initializes the configuration system
func initConfig() error {
	return config.InitConfig(config.DefaultPath())
}

// flatten turns nested settings into sorted "a.b: value" lines
func flatten(prefix string, settings map[string]interface{}) []string {
	var lines []string
	for key, value := range settings {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			lines = append(lines, flatten(full, nested)...)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %v", full, value))
	}
	sort.Strings(lines)
	return lines
}
