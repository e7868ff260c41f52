package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julienpequegnot/wayfare/internal/catalog"
	"github.com/julienpequegnot/wayfare/internal/config"
)

func TestRelatedWithoutDatabase(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WAYFARE_HOME", home)

	if _, err := catalog.WriteSample(filepath.Join(home, "catalog.yaml")); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	// A directory where the database file should be makes opening it fail.
	if err := os.MkdirAll(config.DBPath(), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	t.Cleanup(func() { relatedJSON = false })

	rootCmd.SetArgs([]string{"related", "koh-tao-diving-week", "--json", "--log-level", "disabled"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("related failed: %v", err)
	}
}

func TestRelatedRejectsUnknownType(t *testing.T) {
	t.Setenv("WAYFARE_HOME", t.TempDir())

	t.Cleanup(func() { relatedType = "blog" })

	rootCmd.SetArgs([]string{"related", "x", "--type", "video", "--log-level", "disabled"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for unknown content type")
	}
}
