package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/wayfare/internal/config"
	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/julienpequegnot/wayfare/internal/database"
	"github.com/julienpequegnot/wayfare/internal/post"
	"github.com/julienpequegnot/wayfare/internal/site"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage live blog posts",
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	RunE:  runPostList,
}

var postShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show details of a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostShow,
}

var postAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a post by hand",
	Long:  `Add a post to a site. The slug is derived from the English title unless --slug is given.`,
	RunE:  runPostAdd,
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a post",
	Long:  `Soft-deletes a post: it stays in the database but is no longer listed or related.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPostDelete,
}

var postPublishCmd = &cobra.Command{
	Use:   "publish <slug>",
	Short: "Publish a draft post",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPublished(args[0], true) },
}

var postUnpublishCmd = &cobra.Command{
	Use:   "unpublish <slug>",
	Short: "Turn a post back into a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPublished(args[0], false) },
}

var (
	postTop       int
	postOffset    int
	postSite      string
	postSlug      string
	postTitle     string
	postTitleTH   string
	postExcerpt   string
	postExcerptTH string
	postImage     string
	postCategory  string
	postTags      []string
	postKeywords  []string
	postPageType  string
	postDraft     bool
	postDate      string
)

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.AddCommand(postListCmd, postShowCmd, postAddCmd, postDeleteCmd, postPublishCmd, postUnpublishCmd)

	postListCmd.Flags().IntVarP(&postTop, "top", "n", 20, "Number of posts to show")
	postListCmd.Flags().IntVar(&postOffset, "offset", 0, "Number of posts to skip")

	f := postAddCmd.Flags()
	f.StringVar(&postSite, "site", "", "Domain of the site the post belongs to")
	f.StringVar(&postSlug, "slug", "", "Post slug")
	f.StringVar(&postTitle, "title", "", "English title")
	f.StringVar(&postTitleTH, "title-th", "", "Thai title")
	f.StringVar(&postExcerpt, "excerpt", "", "English excerpt")
	f.StringVar(&postExcerptTH, "excerpt-th", "", "Thai excerpt")
	f.StringVar(&postImage, "image", "", "Cover image URL")
	f.StringVar(&postCategory, "category", "", "Category name")
	f.StringSliceVar(&postTags, "tags", nil, "Comma separated tags")
	f.StringSliceVar(&postKeywords, "keywords", nil, "Comma separated keywords")
	f.StringVar(&postPageType, "page-type", "", "Page type (guide, listicle, ...)")
	f.BoolVar(&postDraft, "draft", false, "Save as an unpublished draft")
	f.StringVar(&postDate, "date", "", "Publication date (YYYY-MM-DD), default now")
	postAddCmd.MarkFlagRequired("site")
	postAddCmd.MarkFlagRequired("title")
}

func runPostList(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	posts, err := post.NewRepository(db).List(postTop, postOffset)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		fmt.Println("No posts found. Run 'wayfare fetch' or 'wayfare post add'.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	siteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	draftStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-4s  %-10s  %-18s  %-32s  %s", "#", "DATE", "SITE", "SLUG", "TITLE")))
	fmt.Println(strings.Repeat("─", 110))

	for _, p := range posts {
		date := "-"
		if p.PublishedAt != nil {
			date = p.PublishedAt.Format("2006-01-02")
		}

		title := clip(p.Title.EN, 45)
		if !p.Published {
			title = draftStyle.Render("[draft] ") + title
		}

		fmt.Printf(" %s  %s  %s  %-32s  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", p.ID)),
			dateStyle.Render(fmt.Sprintf("%-10s", date)),
			siteStyle.Render(fmt.Sprintf("%-18s", clip(p.SiteName, 18))),
			clip(p.Slug, 32),
			title,
		)
	}

	return nil
}

func runPostShow(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := post.NewRepository(db).Get(args[0])
	if err != nil {
		return err
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	divider := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("━", 70))

	fmt.Println(divider)
	fmt.Println(titleStyle.Render(p.Title.EN))
	if p.Title.TH != "" {
		fmt.Println(titleStyle.Render(p.Title.TH))
	}
	fmt.Println(divider)

	field := func(label, value string) {
		if value != "" {
			fmt.Printf("%s %s\n", labelStyle.Render(label), valueStyle.Render(value))
		}
	}

	field("Slug:", p.Slug)
	field("Site:", p.SiteName)
	if p.PublishedAt != nil {
		field("Published:", p.PublishedAt.Format("2006-01-02 15:04"))
	}
	if !p.Published {
		field("Status:", "draft")
	}
	field("Category:", p.Category)
	field("Tags:", strings.Join(p.Tags, ", "))
	field("Keywords:", strings.Join(p.Keywords, ", "))
	field("Page type:", p.PageType)
	field("Image:", p.Image)

	if p.Excerpt.EN != "" || p.Excerpt.TH != "" {
		fmt.Printf("\n%s\n", labelStyle.Render("EXCERPT:"))
		if p.Excerpt.EN != "" {
			fmt.Println(valueStyle.Render(p.Excerpt.EN))
		}
		if p.Excerpt.TH != "" {
			fmt.Println(valueStyle.Render(p.Excerpt.TH))
		}
	}

	return nil
}

func runPostAdd(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := site.NewRepository(db).GetByDomain(postSite)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("unknown site %q; add it with 'wayfare site add'", postSite)
		}
		return err
	}

	var publishedAt time.Time
	if postDate != "" {
		publishedAt, err = time.Parse("2006-01-02", postDate)
		if err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD")
		}
	}

	p, err := post.NewRepository(db).Add(post.NewPost{
		SiteID:      s.ID,
		Slug:        postSlug,
		Title:       content.Localized{EN: postTitle, TH: postTitleTH},
		Excerpt:     content.Localized{EN: postExcerpt, TH: postExcerptTH},
		Image:       postImage,
		Category:    postCategory,
		Tags:        postTags,
		Keywords:    postKeywords,
		PageType:    postPageType,
		Draft:       postDraft,
		PublishedAt: publishedAt,
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("a post with this slug already exists")
		}
		return err
	}

	fmt.Printf("Added: %s (slug: %s)\n", p.Title.EN, p.Slug)
	return nil
}

func runPostDelete(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := post.NewRepository(db).Delete(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted: %s\n", args[0])
	return nil
}

func setPublished(postSlug string, published bool) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := post.NewRepository(db).SetPublished(postSlug, published); err != nil {
		return err
	}

	if published {
		fmt.Printf("Published: %s\n", postSlug)
	} else {
		fmt.Printf("Unpublished: %s\n", postSlug)
	}
	return nil
}
