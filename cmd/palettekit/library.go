// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/palettekit/internal/config"
	"github.com/thatcatcamp/palettekit/internal/db"
	"github.com/thatcatcamp/palettekit/internal/library"
	"github.com/thatcatcamp/palettekit/internal/themes"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage saved palettes",
	Long:  "Save, list, show, delete, export and import palettes in the local library",
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name> <color>",
	Short: "Save a palette config",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initLibraryDB(); err != nil {
			fail(err)
		}

		cfg, err := configFromFlags(cmd, args[1])
		if err != nil {
			fail(err)
		}
		cfg.Name = args[0]

		dark, _ := cmd.Flags().GetBool("dark")
		notes, _ := cmd.Flags().GetString("notes")
		saved, err := library.Create(db.GetDB(), cfg, library.Options{DarkMode: dark, Notes: notes})
		if err != nil {
			fail(err)
		}

		fmt.Printf("Saved %s (%s)\n", saved.Name, saved.PublicID)
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initLibraryDB(); err != nil {
			fail(err)
		}

		saved, err := library.List(db.GetDB())
		if err != nil {
			fail(err)
		}
		if len(saved) == 0 {
			fmt.Println("No saved palettes")
			return
		}

		fmt.Printf("%-36s  %-20s  %-8s  %-14s  %s\n", "ID", "NAME", "BASE", "MODE", "STEPS")
		for _, s := range saved {
			fmt.Printf("%-36s  %-20s  %-8s  %-14s  %d\n", s.PublicID, s.Name, s.BaseHex, s.Mode, s.Steps)
		}
	},
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <name|id>",
	Short: "Regenerate and show a saved palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initLibraryDB(); err != nil {
			fail(err)
		}

		saved, err := library.Get(db.GetDB(), args[0])
		if err != nil {
			fail(err)
		}
		p, err := library.Generate(saved, nil)
		if err != nil {
			fail(err)
		}

		if theme, _ := cmd.Flags().GetBool("theme"); theme {
			fmt.Print(themes.GenerateCSS(themes.GenerateColors(p, saved.DarkMode)))
			return
		}
		if err := output(cmd, p, saved.PreserveAccessibility); err != nil {
			fail(err)
		}
		if saved.Notes != "" {
			fmt.Printf("\n%s\n", saved.Notes)
		}
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <name|id>",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initLibraryDB(); err != nil {
			fail(err)
		}

		if err := library.Delete(db.GetDB(), args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("Deleted %s\n", args[0])
	},
}

var libraryExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the library as JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initLibraryDB(); err != nil {
			fail(err)
		}

		data, err := library.Export(db.GetDB())
		if err != nil {
			fail(err)
		}

		if len(args) == 0 {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			fail(fmt.Errorf("failed to write export: %w", err))
		}
		fmt.Printf("Exported to %s\n", args[0])
	},
}

var libraryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import palettes from a JSON export; existing names are skipped",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initLibraryDB(); err != nil {
			fail(err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			fail(fmt.Errorf("failed to read import file: %w", err))
		}

		result, err := library.Import(db.GetDB(), data)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Imported %d palettes, skipped %d\n", len(result.Imported), len(result.Skipped))
		for _, name := range result.Skipped {
			fmt.Printf("  skipped %s (name exists)\n", name)
		}
	},
}

func init() {
	addPaletteFlags(librarySaveCmd)
	librarySaveCmd.Flags().Bool("dark", false, "prefer the dark theme variant")
	librarySaveCmd.Flags().String("notes", "", "free text notes")

	addFormatFlag(libraryShowCmd)
	libraryShowCmd.Flags().Bool("theme", false, "print the site theme CSS instead")

	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	libraryCmd.AddCommand(libraryImportCmd)
	rootCmd.AddCommand(libraryCmd)
}

// initLibraryDB loads config, logging and the library database
func initLibraryDB() error {
	if err := setup(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}
