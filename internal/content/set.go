package content

import "strings"

// FoldSet builds a lookup of the case-folded, trimmed values. Empty values are skipped.
func FoldSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

// CountShared counts the entries of src that appear in dst, ignoring case.
// Repeated src entries are counted each time they match.
func CountShared(src, dst []string) int {
	if len(src) == 0 || len(dst) == 0 {
		return 0
	}
	set := FoldSet(dst)
	n := 0
	for _, v := range src {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}

// CleanList trims values and drops empties, keeping order and case.
func CleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SplitList parses a comma separated list as stored in the posts table.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return CleanList(strings.Split(s, ","))
}

// JoinList is the inverse of SplitList.
func JoinList(values []string) string {
	return strings.Join(CleanList(values), ",")
}
