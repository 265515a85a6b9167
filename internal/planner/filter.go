package planner

import "sort"

// FilterByCategories keeps venues with at least one tag in the resolved
// allowed set and none in the exclusion list, sorted descending by score.
// The sort is stable so equal scores keep their catalog order.
func FilterByCategories(venues []Venue, selected []string) []Venue {
	allowed := resolveSelection(selected)

	out := make([]Venue, 0, len(venues))
	for _, v := range venues {
		if hasExcludedType(v.Types) {
			continue
		}
		keep := false
		for _, t := range v.Types {
			if allowed[t] {
				keep = true
				break
			}
		}
		if keep {
			out = append(out, v)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})
	return out
}

// LimitPerCategory caps how many venues survive per primary category.
// Input must already be score-sorted, so the cap keeps the best of each
// category. Venues with no recognizable primary tag are dropped.
func LimitPerCategory(venues []Venue, maxPerCategory int) []Venue {
	kept := make(map[string]int)
	out := make([]Venue, 0, len(venues))
	for _, v := range venues {
		tag, ok := primaryTag(v.Types)
		if !ok {
			continue
		}
		if kept[tag] >= maxPerCategory {
			continue
		}
		kept[tag]++
		out = append(out, v)
	}
	return out
}
