// internal/post/repository.go
package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/julienpequegnot/wayfare/internal/database"
	"github.com/julienpequegnot/wayfare/internal/slug"
)

var ErrNotFound = errors.New("post not found")

// Post is a blog post authored in the CMS and stored in the live database.
type Post struct {
	ID          int64
	SiteID      int64
	SiteName    string
	Slug        string
	Title       content.Localized
	Excerpt     content.Localized
	Image       string
	Category    string
	Tags        []string
	Keywords    []string
	PageType    string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// Item converts the post to the shared content model. Database posts are always blogs.
func (p Post) Item() content.Item {
	return content.Item{
		Slug:         p.Slug,
		Type:         content.Blog,
		CategoryID:   slug.Make(p.Category),
		Tags:         p.Tags,
		Keywords:     p.Keywords,
		PageType:     p.PageType,
		Published:    p.Published && p.DeletedAt == nil,
		Title:        p.Title,
		Excerpt:      p.Excerpt,
		Image:        p.Image,
		CategoryName: content.Localized{EN: p.Category},
		PublishedAt:  p.PublishedAt,
	}
}

// NewPost holds the fields supplied when authoring or importing a post.
type NewPost struct {
	SiteID      int64
	Slug        string
	Title       content.Localized
	Excerpt     content.Localized
	Image       string
	Category    string
	Tags        []string
	Keywords    []string
	PageType    string
	Draft       bool
	PublishedAt time.Time
}

// RelatedQuery selects candidate posts for the related-content engine.
type RelatedQuery struct {
	ExcludeSlug  string
	CategoryHint string
	Limit        int
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `
	SELECT p.id, p.site_id, s.name, p.slug, p.title_en, p.title_th, p.excerpt_en, p.excerpt_th,
	       p.image, p.category, p.tags, p.keywords, p.page_type, p.published,
	       p.published_at, p.created_at, p.deleted_at
	FROM posts p
	JOIN sites s ON p.site_id = s.id`

func (r *Repository) Add(np NewPost) (*Post, error) {
	postSlug := slug.Make(np.Slug)
	if postSlug == "" {
		postSlug = slug.Make(np.Title.EN)
	}
	if postSlug == "" {
		return nil, fmt.Errorf("failed to insert post: empty slug")
	}

	publishedAt := np.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}
	publishedAt = publishedAt.UTC()

	result, err := r.db.Exec(`
		INSERT INTO posts (site_id, slug, title_en, title_th, excerpt_en, excerpt_th, image,
		                   category, category_slug, tags, keywords, page_type, published, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		np.SiteID, postSlug, np.Title.EN, np.Title.TH, np.Excerpt.EN, np.Excerpt.TH, np.Image,
		strings.TrimSpace(np.Category), slug.Make(np.Category),
		content.JoinList(np.Tags), content.JoinList(np.Keywords), strings.TrimSpace(np.PageType),
		!np.Draft, publishedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Post{
		ID:          id,
		SiteID:      np.SiteID,
		Slug:        postSlug,
		Title:       np.Title,
		Excerpt:     np.Excerpt,
		Image:       np.Image,
		Category:    strings.TrimSpace(np.Category),
		Tags:        content.CleanList(np.Tags),
		Keywords:    content.CleanList(np.Keywords),
		PageType:    strings.TrimSpace(np.PageType),
		Published:   !np.Draft,
		PublishedAt: &publishedAt,
	}, nil
}

func (r *Repository) Exists(postSlug string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE slug = ?`, postSlug).Scan(&count)
	return count > 0, err
}

// List returns live (not deleted) posts, newest first, drafts included.
func (r *Repository) List(limit, offset int) ([]Post, error) {
	rows, err := r.db.Query(selectColumns+`
		WHERE p.deleted_at IS NULL
		ORDER BY p.published_at DESC, p.id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *Repository) Get(postSlug string) (*Post, error) {
	rows, err := r.db.Query(selectColumns+` WHERE p.slug = ?`, postSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, postSlug)
	}
	return &posts[0], nil
}

// ListRelated returns published, non-deleted posts other than q.ExcludeSlug,
// newest first. A category hint matches posts whose category contains it
// (case-insensitive) or whose category slug equals the hint's slug.
func (r *Repository) ListRelated(ctx context.Context, q RelatedQuery) ([]content.Item, error) {
	if q.Limit <= 0 {
		return nil, nil
	}

	query := selectColumns + `
		WHERE p.published = TRUE AND p.deleted_at IS NULL AND p.slug != ?`
	args := []any{q.ExcludeSlug}

	if hint := strings.TrimSpace(q.CategoryHint); hint != "" {
		query += ` AND (instr(lower(p.category), lower(?)) > 0 OR p.category_slug = ?)`
		args = append(args, hint, slug.Make(hint))
	}

	query += ` ORDER BY p.published_at DESC, p.id DESC LIMIT ?`
	args = append(args, q.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query related posts: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan related posts: %w", err)
	}

	items := make([]content.Item, 0, len(posts))
	for _, p := range posts {
		items = append(items, p.Item())
	}
	return items, nil
}

// Delete soft-deletes a post; it stays in the table but is never listed again.
func (r *Repository) Delete(postSlug string) error {
	result, err := r.db.Exec(
		`UPDATE posts SET deleted_at = CURRENT_TIMESTAMP WHERE slug = ? AND deleted_at IS NULL`,
		postSlug,
	)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, postSlug)
	}
	return nil
}

func (r *Repository) SetPublished(postSlug string, published bool) error {
	result, err := r.db.Exec(`UPDATE posts SET published = ? WHERE slug = ?`, published, postSlug)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, postSlug)
	}
	return nil
}

func scanPosts(rows *sql.Rows) ([]Post, error) {
	var posts []Post
	for rows.Next() {
		var p Post
		var tags, keywords string
		if err := rows.Scan(&p.ID, &p.SiteID, &p.SiteName, &p.Slug,
			&p.Title.EN, &p.Title.TH, &p.Excerpt.EN, &p.Excerpt.TH,
			&p.Image, &p.Category, &tags, &keywords, &p.PageType, &p.Published,
			&p.PublishedAt, &p.CreatedAt, &p.DeletedAt); err != nil {
			return nil, err
		}
		p.Tags = content.SplitList(tags)
		p.Keywords = content.SplitList(keywords)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
