package candidate

import (
	"sort"
	"strings"
)

const techSeparator = ", "

// MergeTechStack unions the comma separated items of both lists and returns them
// sorted case-insensitively. Items are compared case-sensitively, so "Python"
// and "python" are kept as separate entries.
func MergeTechStack(previous, incoming string) string {
	seen := make(map[string]struct{})
	items := make([]string, 0)

	for _, list := range []string{previous, incoming} {
		for _, item := range SplitTechStack(list) {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i]), strings.ToLower(items[j])
		if a != b {
			return a < b
		}
		return items[i] < items[j]
	})

	return strings.Join(items, techSeparator)
}

// SplitTechStack splits the list on commas, trims every item and drops empty ones.
func SplitTechStack(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
