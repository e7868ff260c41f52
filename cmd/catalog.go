package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/wayfare/internal/catalog"
	"github.com/julienpequegnot/wayfare/internal/config"
	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Summarize the static catalog",
	Long:  `Loads the static catalog and prints item counts per type and category.`,
	RunE:  runCatalog,
}

var catalogList bool

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVarP(&catalogList, "list", "l", false, "List every item")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := cfg.CatalogPath()
	items, err := catalog.FileLoader{Path: path}.Load()
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	draftStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	fmt.Printf("%s %s\n\n", labelStyle.Render("Catalog:"), path)

	for _, typ := range []content.Type{content.Blog, content.Information} {
		counts := map[string]int{}
		total, drafts := 0, 0
		for _, it := range items {
			if it.Type != typ {
				continue
			}
			total++
			if !it.Published {
				drafts++
			}
			name := it.CategoryName.EN
			if name == "" {
				name = "(none)"
			}
			counts[name]++
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("%s: %d items (%d unpublished)", typ, total, drafts)))

		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-30s %s\n", name, countStyle.Render(fmt.Sprintf("%d", counts[name])))
		}
		fmt.Println()
	}

	if !catalogList {
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-12s  %-32s  %-20s  %s", "TYPE", "SLUG", "CATEGORY", "TAGS")))
	fmt.Println(strings.Repeat("─", 100))
	for _, it := range items {
		slugText := fmt.Sprintf("%-32s", clip(it.Slug, 32))
		if !it.Published {
			slugText = draftStyle.Render(slugText)
		}
		fmt.Printf(" %-12s  %s  %-20s  %s\n", it.Type, slugText, clip(it.CategoryID, 20), strings.Join(it.Tags, ", "))
	}

	return nil
}
