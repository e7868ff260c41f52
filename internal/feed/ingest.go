package feed

import (
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/julienpequegnot/wayfare/internal/keyword"
	"github.com/julienpequegnot/wayfare/internal/logging"
	"github.com/julienpequegnot/wayfare/internal/post"
	"github.com/julienpequegnot/wayfare/internal/slug"
)

const ExcerptLength = 280

// Store is the part of post.Repository that ingestion writes through.
type Store interface {
	Exists(postSlug string) (bool, error)
	Add(np post.NewPost) (*post.Post, error)
}

// SlugFromLink returns the slug of the last path segment of link, without a
// file extension. It is empty for root links and unparsable URLs.
func SlugFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return ""
	}
	base := path.Base(p)
	base = strings.TrimSuffix(base, path.Ext(base))
	return slug.Make(base)
}

// NewPost converts a feed item for the given site. Feed categories become the
// category and tags; items without any are tagged by topic detection.
func (it Item) NewPost(siteID int64, keywordsPerPost int) post.NewPost {
	postSlug := SlugFromLink(it.Link)
	if postSlug == "" {
		postSlug = slug.Make(it.Title)
	}

	text := it.Title + " " + it.Summary
	tags := content.CleanList(it.Categories)
	if len(tags) == 0 {
		tags = keyword.Topics(text)
	}
	var category string
	if len(tags) > 0 {
		category = tags[0]
	}

	return post.NewPost{
		SiteID:      siteID,
		Slug:        postSlug,
		Title:       content.Localized{EN: it.Title},
		Excerpt:     content.Localized{EN: truncate(it.Summary, ExcerptLength)},
		Image:       it.Image,
		Category:    category,
		Tags:        tags,
		Keywords:    keyword.Extract(text, keywordsPerPost),
		PublishedAt: it.PublishedAt,
	}
}

// Ingest stores the items that are not in store yet and returns how many
// were added. Items that fail to convert or save are logged and skipped.
func Ingest(store Store, siteID int64, items []Item, keywordsPerPost int) (int, error) {
	log := logging.Component("feed").With().Int64("site_id", siteID).Logger()

	added := 0
	for _, it := range items {
		np := it.NewPost(siteID, keywordsPerPost)
		if np.Slug == "" {
			log.Debug().Str("link", it.Link).Msg("skipping item without slug")
			continue
		}

		exists, err := store.Exists(slug.Make(np.Slug))
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}

		if _, err := store.Add(np); err != nil {
			log.Warn().Err(err).Str("slug", np.Slug).Msg("failed to save post")
			continue
		}
		added++
	}
	return added, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:n])
	if i := strings.LastIndex(cut, " "); i > n/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
