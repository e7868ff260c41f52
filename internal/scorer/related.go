package scorer

import (
	"github.com/julienpequegnot/wayfare/internal/content"
)

// Signal weights for Related.
const (
	WeightCategory  = 30
	WeightTag       = 15
	WeightKeyword   = 10
	WeightPageType  = 10
	WeightCrossType = 5
)

// Breakdown shows how each signal contributed to a related score.
type Breakdown struct {
	Category       int
	SharedTags     int
	SharedKeywords int
	PageType       int
	CrossType      int
	Total          int
}

// Related scores how relevant candidate is to source. The score is never negative
// and grows with every shared tag or keyword; there is no normalization by set size.
func Related(source, candidate content.Item) int {
	return Explain(source, candidate).Total
}

// Explain returns the per-signal breakdown behind Related.
func Explain(source, candidate content.Item) Breakdown {
	var b Breakdown

	// Empty values never count as a match.
	if source.CategoryID != "" && source.CategoryID == candidate.CategoryID {
		b.Category = WeightCategory
	}

	b.SharedTags = content.CountShared(source.Tags, candidate.Tags)
	b.SharedKeywords = content.CountShared(source.Keywords, candidate.Keywords)

	if source.PageType != "" && source.PageType == candidate.PageType {
		b.PageType = WeightPageType
	}

	if source.Type != candidate.Type {
		b.CrossType = WeightCrossType
	}

	b.Total = b.Category +
		b.SharedTags*WeightTag +
		b.SharedKeywords*WeightKeyword +
		b.PageType +
		b.CrossType
	return b
}
