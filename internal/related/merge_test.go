package related

import (
	"testing"

	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/stretchr/testify/assert"
)

func res(slug string, origin content.Origin) content.Result {
	return content.Result{Slug: slug, Type: content.Blog, Origin: origin, Title: content.Localized{EN: slug + " (" + string(origin) + ")"}}
}

func resultSlugs(rs []content.Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Slug
	}
	return out
}

func TestMergeDatabaseFirst(t *testing.T) {
	db := []content.Result{res("d1", content.OriginDB), res("d2", content.OriginDB)}
	static := []content.Result{res("s1", content.OriginStatic), res("s2", content.OriginStatic)}

	got := Merge(db, static, 3)

	assert.Equal(t, []string{"d1", "d2", "s1"}, resultSlugs(got))
}

func TestMergeDeduplicatesBySlug(t *testing.T) {
	db := []content.Result{res("shared", content.OriginDB)}
	static := []content.Result{res("shared", content.OriginStatic), res("s1", content.OriginStatic)}

	got := Merge(db, static, 3)

	assert.Equal(t, []string{"shared", "s1"}, resultSlugs(got))
	assert.Equal(t, content.OriginDB, got[0].Origin)
	assert.Equal(t, "shared (db)", got[0].Title.EN)
}

func TestMergeTruncates(t *testing.T) {
	db := []content.Result{res("d1", content.OriginDB), res("d2", content.OriginDB), res("d3", content.OriginDB)}

	assert.Len(t, Merge(db, nil, 2), 2)
	assert.Len(t, Merge(db, nil, 10), 3)
	assert.Empty(t, Merge(db, nil, 0))
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge(nil, nil, 3))
}

func infoRes(slug string) content.Result {
	r := res(slug, content.OriginStatic)
	r.Type = content.Information
	return r
}

func TestDiversifyReplacesLastSameType(t *testing.T) {
	merged := []content.Result{res("d1", content.OriginDB), res("d2", content.OriginDB), res("d3", content.OriginDB)}
	static := []content.Result{res("s1", content.OriginStatic), infoRes("i1"), infoRes("i2")}

	got := Diversify(merged, static, content.Blog)

	assert.Equal(t, []string{"d1", "d2", "i1"}, resultSlugs(got))
	assert.Equal(t, []string{"d1", "d2", "d3"}, resultSlugs(merged))
}

func TestDiversifyKeepsMixedList(t *testing.T) {
	merged := []content.Result{res("d1", content.OriginDB), infoRes("i1")}

	got := Diversify(merged, []content.Result{infoRes("i2")}, content.Blog)

	assert.Equal(t, []string{"d1", "i1"}, resultSlugs(got))
}

func TestDiversifyWithoutOppositeType(t *testing.T) {
	merged := []content.Result{res("d1", content.OriginDB), res("d2", content.OriginDB)}
	static := []content.Result{res("s1", content.OriginStatic)}

	assert.Equal(t, []string{"d1", "d2"}, resultSlugs(Diversify(merged, static, content.Blog)))
	assert.Empty(t, Diversify(nil, []content.Result{infoRes("i1")}, content.Blog))
}

func TestDiversifySkipsSlugAlreadyShown(t *testing.T) {
	merged := []content.Result{res("shared", content.OriginDB), res("d2", content.OriginDB)}
	static := []content.Result{infoRes("shared")}

	assert.Equal(t, []string{"shared", "d2"}, resultSlugs(Diversify(merged, static, content.Blog)))
}
