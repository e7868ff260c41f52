package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/wayfare/internal/catalog"
	"github.com/julienpequegnot/wayfare/internal/config"
	"github.com/julienpequegnot/wayfare/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wayfare configuration, database and catalog",
	Long: `Creates the ~/.wayfare directory (or $WAYFARE_HOME) with config.yaml,
the SQLite database and a sample static catalog.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s\n", config.DBPath())

	written, err := catalog.WriteSample(cfg.CatalogPath())
	if err != nil {
		return err
	}
	if written {
		fmt.Printf("Created sample catalog at %s\n", cfg.CatalogPath())
	} else {
		fmt.Printf("Keeping existing catalog at %s\n", cfg.CatalogPath())
	}

	fmt.Println("\nWayfare initialized! Next steps:")
	fmt.Println("  wayfare site add <url>          Register a blog site")
	fmt.Println("  wayfare fetch                   Import posts from site feeds")
	fmt.Println("  wayfare related <slug>          Show related articles")

	return nil
}
