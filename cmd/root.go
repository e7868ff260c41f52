package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/wayfare/internal/config"
	"github.com/julienpequegnot/wayfare/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wayfare",
	Short: "Related-content engine for a multi-site travel blog",
	Long: `Wayfare keeps the live posts of several travel blogs next to a static
catalog of blog posts and information articles, and picks the related
articles shown under each page.

Pipeline: site add → fetch → related`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

var logLevel string

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logging.Init(logging.Config{Level: level, Format: cfg.Log.Format})
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
