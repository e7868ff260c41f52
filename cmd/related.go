package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienpequegnot/wayfare/internal/catalog"
	"github.com/julienpequegnot/wayfare/internal/config"
	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/julienpequegnot/wayfare/internal/database"
	"github.com/julienpequegnot/wayfare/internal/logging"
	"github.com/julienpequegnot/wayfare/internal/post"
	"github.com/julienpequegnot/wayfare/internal/related"
	"github.com/julienpequegnot/wayfare/internal/scorer"
	"github.com/spf13/cobra"
)

var relatedCmd = &cobra.Command{
	Use:   "related <slug>",
	Short: "Show the related articles for a page",
	Long: `Picks the related articles shown under a blog post or information article.

Recent live posts come first, followed by the best-scoring items of the
static catalog. With --db-only the static catalog is not consulted.`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

var (
	relatedType     string
	relatedCount    int
	relatedDBOnly   bool
	relatedCategory string
	relatedLang     string
	relatedJSON     bool
	relatedExplain  bool
	relatedMinScore int
)

func init() {
	rootCmd.AddCommand(relatedCmd)
	relatedCmd.Flags().StringVarP(&relatedType, "type", "t", "blog", "Type of the viewed item (blog, information)")
	relatedCmd.Flags().IntVarP(&relatedCount, "count", "n", 0, "Number of results (default from config)")
	relatedCmd.Flags().BoolVar(&relatedDBOnly, "db-only", false, "Only use live posts from the database")
	relatedCmd.Flags().StringVar(&relatedCategory, "category", "", "Category hint for live posts")
	relatedCmd.Flags().StringVar(&relatedLang, "lang", "en", "Display language (en, th)")
	relatedCmd.Flags().BoolVar(&relatedJSON, "json", false, "Print results as JSON")
	relatedCmd.Flags().BoolVar(&relatedExplain, "explain", false, "Show the score breakdown of catalog results")
	relatedCmd.Flags().IntVar(&relatedMinScore, "min-score", -1, "Drop catalog candidates scoring below this (default from config)")
}

func runRelated(cmd *cobra.Command, args []string) error {
	slug := args[0]
	typ, err := content.ParseType(relatedType)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	count := relatedCount
	if count <= 0 {
		count = cfg.Related.Count
	}
	if count <= 0 {
		count = related.DefaultCount
	}

	var posts related.PostSource
	db, err := database.New(config.DBPath())
	if err != nil {
		log := logging.Component("cli")
		log.Warn().Err(err).Msg("posts database unavailable, using catalog only")
	} else {
		defer db.Close()
		posts = post.NewRepository(db)
	}

	pool := catalog.Default(cfg.CatalogPath())
	minScore := cfg.Related.MinScore
	if relatedMinScore >= 0 {
		minScore = relatedMinScore
	}
	svc := related.NewService(pool, posts,
		related.WithTimeout(cfg.DBTimeout()),
		related.WithMinScore(minScore),
	)

	results := svc.Related(cmd.Context(), slug, typ, count, related.Options{
		DBOnly:       relatedDBOnly,
		CategoryHint: relatedCategory,
	})

	if relatedJSON {
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No related articles found.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dbStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	staticStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-2s  %-6s  %-11s  %-32s  %s", "#", "FROM", "TYPE", "SLUG", "TITLE")))
	fmt.Println(strings.Repeat("─", 100))

	// Explanations need the viewed item as it appears in the catalog.
	var source content.Item
	var sourceFound bool
	if relatedExplain && pool.Loaded() {
		source, sourceFound = related.Find(pool.Items(), content.Key{Type: typ, Slug: slug})
	}

	for i, r := range results {
		origin := staticStyle.Render(fmt.Sprintf("%-6s", r.Origin))
		if r.Origin == content.OriginDB {
			origin = dbStyle.Render(fmt.Sprintf("%-6s", r.Origin))
		}

		fmt.Printf(" %s  %s  %-11s  %-32s  %s\n",
			idStyle.Render(fmt.Sprintf("%-2d", i+1)),
			origin,
			r.Type,
			clip(r.Slug, 32),
			clip(r.Title.Pick(relatedLang), 50),
		)

		if !sourceFound || r.Origin != content.OriginStatic {
			continue
		}
		if candidate, ok := related.Find(pool.Items(), content.Key{Type: r.Type, Slug: r.Slug}); ok {
			b := scorer.Explain(source, candidate)
			fmt.Println(labelStyle.Render(fmt.Sprintf(
				"      score %d = category %d + tags %d×%d + keywords %d×%d + page type %d + cross-type %d",
				b.Total, b.Category, b.SharedTags, scorer.WeightTag, b.SharedKeywords, scorer.WeightKeyword,
				b.PageType, b.CrossType)))
		}
	}

	return nil
}
