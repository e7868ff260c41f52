package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
categories:
  islands: {en: Islands, th: เกาะ}
sections:
  visas: {en: Visas}
blog:
  - slug: koh-tao
    title: {en: Koh Tao}
    category: islands
    tags: [" diving ", "", beach]
    page_type: itinerary
  - slug: draft-post
    published: false
  - title: {en: No slug}
information:
  - slug: visa-rules
    section: visas
    keywords: [immigration]
  - slug: orphan
    section: unknown
`

func TestParseItems(t *testing.T) {
	c, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 4)

	byKey := map[content.Key]content.Item{}
	for _, it := range items {
		byKey[it.Key()] = it
	}

	kohTao := byKey[content.Key{Type: content.Blog, Slug: "koh-tao"}]
	assert.Equal(t, "islands", kohTao.CategoryID)
	assert.Equal(t, "Islands", kohTao.CategoryName.EN)
	assert.Equal(t, "เกาะ", kohTao.CategoryName.TH)
	assert.Equal(t, []string{"diving", "beach"}, kohTao.Tags)
	assert.Equal(t, "itinerary", kohTao.PageType)
	assert.True(t, kohTao.Published)

	draft := byKey[content.Key{Type: content.Blog, Slug: "draft-post"}]
	assert.False(t, draft.Published)
	assert.Empty(t, draft.CategoryID)

	visa := byKey[content.Key{Type: content.Information, Slug: "visa-rules"}]
	assert.Equal(t, "visas", visa.CategoryID)
	assert.Equal(t, "Visas", visa.CategoryName.EN)
	assert.Equal(t, []string{"immigration"}, visa.Keywords)

	orphan := byKey[content.Key{Type: content.Information, Slug: "orphan"}]
	assert.Equal(t, "unknown", orphan.CategoryName.EN)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("blog: [unclosed"))
	assert.Error(t, err)
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0644))

	items, err := FileLoader{Path: path}.Load()
	require.NoError(t, err)
	assert.Len(t, items, 4)

	_, err = FileLoader{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load()
	assert.Error(t, err)
}

func TestSampleCatalogParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content", "catalog.yaml")

	written, err := WriteSample(path)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = WriteSample(path)
	require.NoError(t, err)
	assert.False(t, written, "existing catalog must not be overwritten")

	items, err := FileLoader{Path: path}.Load()
	require.NoError(t, err)

	var blogs, infos int
	for _, it := range items {
		switch it.Type {
		case content.Blog:
			blogs++
		case content.Information:
			infos++
		}
	}
	assert.Equal(t, 4, blogs)
	assert.Equal(t, 3, infos)
}

func TestPoolLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	pool := NewPool(LoaderFunc(func() ([]content.Item, error) {
		calls.Add(1)
		return []content.Item{{Slug: "a", Type: content.Blog, Published: true}}, nil
	}))

	assert.False(t, pool.Loaded())
	assert.Len(t, pool.Items(), 1)
	assert.Len(t, pool.Items(), 1)
	assert.True(t, pool.Loaded())
	assert.Equal(t, int32(1), calls.Load())
}

func TestPoolConcurrentFirstUse(t *testing.T) {
	var calls atomic.Int32
	pool := NewPool(LoaderFunc(func() ([]content.Item, error) {
		calls.Add(1)
		return []content.Item{{Slug: "a"}, {Slug: "b"}}, nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, pool.Items(), 2)
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	assert.Len(t, pool.Items(), 2)
}

func TestPoolErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	pool := NewPool(LoaderFunc(func() ([]content.Item, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("disk on fire")
		}
		return []content.Item{{Slug: "a"}}, nil
	}))

	assert.Empty(t, pool.Items())
	assert.False(t, pool.Loaded())
	assert.Len(t, pool.Items(), 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDefaultPoolIsShared(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	assert.Same(t, Default(path), Default(path))
	assert.NotSame(t, Default(path), Default(path+".other"))
}

func TestNilPool(t *testing.T) {
	var pool *Pool
	assert.Nil(t, pool.Items())
	assert.False(t, pool.Loaded())
}
