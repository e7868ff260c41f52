package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/julienpequegnot/wayfare/internal/config"
	"github.com/julienpequegnot/wayfare/internal/database"
	"github.com/julienpequegnot/wayfare/internal/feed"
	"github.com/julienpequegnot/wayfare/internal/post"
	"github.com/julienpequegnot/wayfare/internal/site"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Import new posts from site feeds",
	Long:  `Downloads the RSS/Atom feed of every site that has one and stores posts not seen before.`,
	RunE:  runFetch,
}

var fetchConcurrency int

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().IntVarP(&fetchConcurrency, "concurrency", "c", 0, "Number of concurrent fetches (default from config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	postRepo := post.NewRepository(db)

	sites, err := site.NewRepository(db).List()
	if err != nil {
		return err
	}

	if len(sites) == 0 {
		fmt.Println("No sites registered. Add one with 'wayfare site add <url>'")
		return nil
	}

	concurrency := fetchConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Fetch.Concurrency
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	fetcher := feed.NewFetcher(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second, cfg.Fetch.UserAgent)
	ctx := cmd.Context()

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	var mu sync.Mutex
	totalNew := 0

	for _, s := range sites {
		if s.FeedURL == "" {
			fmt.Printf("Skipping %s (no feed URL)\n", s.Name)
			continue
		}

		wg.Add(1)
		go func(s site.Site) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			items, err := fetcher.FetchFeed(ctx, s.FeedURL)
			if err != nil {
				fmt.Printf("  %s: error: %v\n", s.Name, err)
				return
			}

			added, err := feed.Ingest(postRepo, s.ID, items, cfg.Fetch.KeywordsPerPost)
			if err != nil {
				fmt.Printf("  %s: error: %v\n", s.Name, err)
			}

			mu.Lock()
			totalNew += added
			mu.Unlock()

			fmt.Printf("  %s: %d new posts\n", s.Name, added)
		}(s)
	}

	wg.Wait()

	fmt.Printf("\nTotal: %d new posts imported\n", totalNew)
	return nil
}
