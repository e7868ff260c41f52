package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/wayfare/internal/config"
	"github.com/julienpequegnot/wayfare/internal/database"
	"github.com/julienpequegnot/wayfare/internal/feed"
	"github.com/julienpequegnot/wayfare/internal/site"
	"github.com/spf13/cobra"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Manage the blog sites",
}

var siteAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Register a blog site",
	Long:  `Register a site by URL. The feed URL is discovered unless --feed is given.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSiteAdd,
}

var siteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sites",
	RunE:  runSiteList,
}

var (
	siteName string
	siteFeed string
)

func init() {
	rootCmd.AddCommand(siteCmd)
	siteCmd.AddCommand(siteAddCmd, siteListCmd)
	siteAddCmd.Flags().StringVarP(&siteName, "name", "n", "", "Display name for the site")
	siteAddCmd.Flags().StringVar(&siteFeed, "feed", "", "Feed URL (skips discovery)")
}

func runSiteAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	siteURL := args[0]
	if !strings.HasPrefix(siteURL, "http") {
		siteURL = "https://" + siteURL
	}

	parsed, err := url.Parse(siteURL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s", args[0])
	}
	domain := strings.TrimPrefix(parsed.Host, "www.")

	name := siteName
	if name == "" {
		name = domain
	}

	feedURL := siteFeed
	if feedURL == "" {
		fmt.Printf("Discovering feed for %s...\n", siteURL)
		fetcher := feed.NewFetcher(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second, cfg.Fetch.UserAgent)
		feedURL, err = fetcher.Discover(context.Background(), siteURL)
		if err != nil {
			fmt.Printf("Warning: %v\n", err)
			fmt.Println("Adding without feed URL - posts can still be added with 'wayfare post add'")
		} else {
			fmt.Printf("Found feed: %s\n", feedURL)
		}
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	s, err := site.NewRepository(db).Add(name, domain, feedURL)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("site already exists: %s", domain)
		}
		return err
	}

	fmt.Printf("\nAdded: %s (ID: %d)\n", s.Name, s.ID)
	if s.FeedURL != "" {
		fmt.Println("\nRun 'wayfare fetch' to import posts")
	}
	return nil
}

func runSiteList(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	sites, err := site.NewRepository(db).List()
	if err != nil {
		return err
	}

	if len(sites) == 0 {
		fmt.Println("No sites registered. Add one with 'wayfare site add <url>'")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-4s  %-25s  %-25s  %s", "ID", "NAME", "DOMAIN", "FEED")))
	fmt.Println(strings.Repeat("─", 100))

	for _, s := range sites {
		feedURL := s.FeedURL
		if feedURL == "" {
			feedURL = "-"
		}
		fmt.Printf(" %s  %s  %s  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", s.ID)),
			nameStyle.Render(fmt.Sprintf("%-25s", clip(s.Name, 25))),
			fmt.Sprintf("%-25s", clip(s.Domain, 25)),
			urlStyle.Render(feedURL),
		)
	}

	return nil
}

// clip shortens s to n runes with a trailing ellipsis.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
