package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	typ, err := ParseType(" Blog ")
	require.NoError(t, err)
	assert.Equal(t, Blog, typ)

	typ, err = ParseType("INFORMATION")
	require.NoError(t, err)
	assert.Equal(t, Information, typ)

	_, err = ParseType("guide")
	assert.Error(t, err)
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, Information, Blog.Opposite())
	assert.Equal(t, Blog, Information.Opposite())
}

func TestCountShared(t *testing.T) {
	tests := []struct {
		name string
		src  []string
		dst  []string
		want int
	}{
		{"case insensitive", []string{"Food", "budget"}, []string{"food", "BUDGET"}, 2},
		{"no overlap", []string{"food"}, []string{"beach"}, 0},
		{"empty source", nil, []string{"food"}, 0},
		{"source repeats count each time", []string{"food", "FOOD"}, []string{"food"}, 2},
		{"blank entries ignored", []string{"", " "}, []string{""}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountShared(tt.src, tt.dst))
		})
	}
}

func TestSplitJoinList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"food", "Street Food"}, SplitList(" food, ,Street Food "))
	assert.Equal(t, "food,beach", JoinList([]string{"food", "", " beach "}))
}

func TestLocalizedPick(t *testing.T) {
	l := Localized{EN: "Bangkok", TH: "กรุงเทพ"}
	assert.Equal(t, "กรุงเทพ", l.Pick("th"))
	assert.Equal(t, "Bangkok", l.Pick("en"))
	assert.Equal(t, "Bangkok", Localized{EN: "Bangkok"}.Pick("th"))
}

func TestItemResult(t *testing.T) {
	it := Item{
		Slug:     "paris-guide",
		Type:     Blog,
		Title:    Localized{EN: "Paris"},
		Tags:     []string{"food"},
		Keywords: []string{"louvre"},
	}
	r := it.Result(OriginStatic)
	assert.Equal(t, "paris-guide", r.Slug)
	assert.Equal(t, Blog, r.Type)
	assert.Equal(t, "Paris", r.Title.EN)
	assert.Equal(t, OriginStatic, r.Origin)
}
