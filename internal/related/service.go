// Package related picks the "related articles" shown under a blog post or
// information article.
//
// Results combine recent posts from the live database with the best-scoring
// items of the static catalog. The package never returns errors: a slow or
// failing database, a missing catalog or an unknown source all degrade to
// fewer (possibly zero) results.
package related

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/julienpequegnot/wayfare/internal/logging"
	"github.com/julienpequegnot/wayfare/internal/post"
	"github.com/rs/zerolog"
)

const (
	DefaultCount     = 3
	DefaultDBTimeout = 3 * time.Second
)

// PoolSource provides the static content pool. *catalog.Pool implements it.
type PoolSource interface {
	Items() []content.Item
}

// PostSource queries live posts. *post.Repository implements it.
type PostSource interface {
	ListRelated(ctx context.Context, q post.RelatedQuery) ([]content.Item, error)
}

type Service struct {
	pool     PoolSource
	posts    PostSource
	timeout  time.Duration
	minScore int
	rng      *rand.Rand
	log      zerolog.Logger
}

type Option func(*Service)

// WithTimeout bounds how long Related waits for the posts database.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRand sets the random source used for fallback and fill ordering.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithMinScore drops static candidates scoring below score before ranking.
func WithMinScore(score int) Option {
	return func(s *Service) { s.minScore = score }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService builds a Service. Either source may be nil.
func NewService(pool PoolSource, posts PostSource, opts ...Option) *Service {
	s := &Service{
		pool:    pool,
		posts:   posts,
		timeout: DefaultDBTimeout,
		log:     logging.Component("related"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Options tunes a single Related call.
type Options struct {
	// DBOnly skips the static catalog entirely; used when the viewed item
	// itself lives in the database.
	DBOnly bool
	// CategoryHint narrows database results to a category.
	CategoryHint string
}

// Related returns up to count results for the item (slug, typ). It never
// includes the item itself or unpublished items.
func (s *Service) Related(ctx context.Context, slug string, typ content.Type, count int, opts Options) []content.Result {
	if count <= 0 {
		return nil
	}

	self := content.Key{Type: typ, Slug: slug}
	log := s.log.With().Str("slug", slug).Str("type", string(typ)).Int("count", count).Logger()

	dbLimit := 2 * count
	if opts.DBOnly {
		dbLimit = count
	}
	db := s.fetchPosts(ctx, post.RelatedQuery{
		ExcludeSlug:  slug,
		CategoryHint: opts.CategoryHint,
		Limit:        dbLimit,
	}, self, log)

	if opts.DBOnly || s.pool == nil {
		out := Merge(results(db, content.OriginDB), nil, count)
		log.Debug().Int("db", len(db)).Int("returned", len(out)).Msg("related (db only)")
		return out
	}

	pool := s.pool.Items()

	var static []content.Item
	if source, ok := Find(pool, self); ok {
		static = Select(source, pool, count, s.minScore, s.rng)
	} else {
		log.Debug().Msg("source not in static catalog, using random fallback")
		static = Fallback(pool, self, count, s.rng)
	}

	staticResults := results(static, content.OriginStatic)
	out := Diversify(Merge(results(db, content.OriginDB), staticResults, count), staticResults, typ)
	log.Debug().
		Int("db", len(db)).
		Int("static", len(static)).
		Int("returned", len(out)).
		Msg("related")
	return out
}

type fetchResult struct {
	items []content.Item
	err   error
}

// fetchPosts runs the database query with a deadline. A timeout or error
// yields nil; the query goroutine reports into a buffered channel so it can
// finish after the caller has moved on.
func (s *Service) fetchPosts(ctx context.Context, q post.RelatedQuery, self content.Key, log zerolog.Logger) []content.Item {
	if s.posts == nil || q.Limit <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ch := make(chan fetchResult, 1)
	go func() {
		items, err := s.posts.ListRelated(ctx, q)
		ch <- fetchResult{items: items, err: err}
	}()

	var res fetchResult
	select {
	case res = <-ch:
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Dur("timeout", s.timeout).Msg("related posts query abandoned")
		return nil
	}
	if res.err != nil {
		log.Warn().Err(res.err).Msg("related posts query failed")
		return nil
	}

	var items []content.Item
	for _, it := range res.items {
		if !it.Published || it.Key() == self {
			continue
		}
		items = append(items, it)
	}
	return items
}
