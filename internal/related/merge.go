package related

import "github.com/julienpequegnot/wayfare/internal/content"

// Merge concatenates database results and static results, keeps the first
// occurrence of each slug and truncates to count. Database results therefore
// win over static results with the same slug.
func Merge(db, static []content.Result, count int) []content.Result {
	if count <= 0 {
		return nil
	}

	out := make([]content.Result, 0, count)
	seen := make(map[string]struct{}, count)

	for _, list := range [][]content.Result{db, static} {
		for _, r := range list {
			if len(out) == count {
				return out
			}
			if _, ok := seen[r.Slug]; ok {
				continue
			}
			seen[r.Slug] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}

// Diversify makes sure merged holds a result whose type differs from
// sourceType when static offers one. The best such static result, not already
// present, replaces the last same-type entry. Database posts are always blogs,
// so this is what keeps an information article under a busy blog page.
func Diversify(merged, static []content.Result, sourceType content.Type) []content.Result {
	if len(merged) == 0 {
		return merged
	}

	seen := make(map[string]struct{}, len(merged))
	for _, r := range merged {
		if r.Type != sourceType {
			return merged
		}
		seen[r.Slug] = struct{}{}
	}

	for _, r := range static {
		if r.Type == sourceType {
			continue
		}
		if _, ok := seen[r.Slug]; ok {
			continue
		}
		out := append([]content.Result(nil), merged...)
		out[len(out)-1] = r
		return out
	}
	return merged
}

func results(items []content.Item, origin content.Origin) []content.Result {
	out := make([]content.Result, len(items))
	for i, it := range items {
		out[i] = it.Result(origin)
	}
	return out
}
