package related

import (
	"math/rand/v2"
	"sort"

	"github.com/julienpequegnot/wayfare/internal/content"
	"github.com/julienpequegnot/wayfare/internal/scorer"
)

type scored struct {
	item  content.Item
	score int
}

// Select ranks the published items of pool against source and returns at most
// count of them, best first.
//
// Candidates scoring below minScore are not ranked. When none of the top
// results differs in type from source, the best opposite-type candidate
// replaces the lowest-ranked same-type result. Remaining slots are filled
// with shuffled, published, opposite-type items from the pool.
//
// Ties keep pool order.
func Select(source content.Item, pool []content.Item, count, minScore int, rng *rand.Rand) []content.Item {
	if count <= 0 {
		return nil
	}

	sourceKey := source.Key()
	var candidates []scored
	for _, it := range pool {
		if !it.Published || it.Key() == sourceKey {
			continue
		}
		s := scorer.Related(source, it)
		if s < minScore {
			continue
		}
		candidates = append(candidates, scored{item: it, score: s})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := min(count, len(candidates))
	top := make([]scored, n)
	copy(top, candidates[:n])

	balance(top, candidates[n:], source.Type)

	if len(top) < count {
		top = append(top, fill(pool, top, source, count-len(top), rng)...)
	}

	out := make([]content.Item, len(top))
	for i, s := range top {
		out[i] = s.item
	}
	return out
}

// balance makes sure top holds at least one item whose type differs from
// sourceType, taking the best such item from rest. It is a no-op when top
// already has one or rest has none.
func balance(top, rest []scored, sourceType content.Type) {
	if len(top) == 0 {
		return
	}
	for _, s := range top {
		if s.item.Type != sourceType {
			return
		}
	}

	// rest is sorted, so the first opposite-type entry is the best one.
	best := -1
	for i, s := range rest {
		if s.item.Type != sourceType {
			best = i
			break
		}
	}
	if best < 0 {
		return
	}

	for i := len(top) - 1; i >= 0; i-- {
		if top[i].item.Type == sourceType {
			top[i] = rest[best]
			return
		}
	}
}

// fill picks up to n shuffled, published, opposite-type pool items that are
// neither source nor already selected. Fillers carry score 0.
func fill(pool []content.Item, selected []scored, source content.Item, n int, rng *rand.Rand) []scored {
	if n <= 0 {
		return nil
	}

	taken := make(map[content.Key]struct{}, len(selected)+1)
	taken[source.Key()] = struct{}{}
	for _, s := range selected {
		taken[s.item.Key()] = struct{}{}
	}

	want := source.Type.Opposite()
	var extra []content.Item
	for _, it := range pool {
		if !it.Published || it.Type != want {
			continue
		}
		if _, ok := taken[it.Key()]; ok {
			continue
		}
		extra = append(extra, it)
	}

	shuffle(rng, extra)
	if len(extra) > n {
		extra = extra[:n]
	}

	out := make([]scored, len(extra))
	for i, it := range extra {
		out[i] = scored{item: it}
	}
	return out
}

// Fallback returns count shuffled published items, skipping exclude. It is used
// when the viewed item is not part of the pool and cannot be scored against.
func Fallback(pool []content.Item, exclude content.Key, count int, rng *rand.Rand) []content.Item {
	if count <= 0 {
		return nil
	}

	var eligible []content.Item
	for _, it := range pool {
		if it.Published && it.Key() != exclude {
			eligible = append(eligible, it)
		}
	}

	shuffle(rng, eligible)
	if len(eligible) > count {
		eligible = eligible[:count]
	}
	return eligible
}

func shuffle(rng *rand.Rand, items []content.Item) {
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if rng == nil {
		rand.Shuffle(len(items), swap)
		return
	}
	rng.Shuffle(len(items), swap)
}

// Find returns the pool item with the given key.
func Find(pool []content.Item, key content.Key) (content.Item, bool) {
	for _, it := range pool {
		if it.Key() == key {
			return it, true
		}
	}
	return content.Item{}, false
}
