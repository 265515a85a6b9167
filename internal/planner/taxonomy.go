package planner

// Category names accepted from the request layer. CategoryAll is the
// sentinel the frontend sends when nothing specific was picked.
const (
	CategoryAll         = "ALL"
	CategoryRestaurant  = "restaurant"
	CategoryMuseum      = "museum"
	CategorySightseeing = "sightseeing"
	CategoryPark        = "park"
)

type category struct {
	Name string
	Tags []string
}

// Scheduling taxonomy. Slice, not map: AllCategoryTags and the grouping in
// TakeMixed depend on a stable iteration order.
var categories = []category{
	{CategoryRestaurant, []string{"restaurant", "cafe"}},
	{CategoryMuseum, []string{"museum", "art_gallery"}},
	{CategorySightseeing, []string{"tourist_attraction"}},
	{CategoryPark, []string{"park"}},
}

// Venue types that are never scheduled, whatever the selection.
var excludedTypes = map[string]bool{
	"lodging":    true,
	"hotel":      true,
	"resort":     true,
	"campground": true,
}

// AllCategoryTags returns the union of every taxonomy tag, in taxonomy order.
func AllCategoryTags() []string {
	var tags []string
	for _, c := range categories {
		tags = append(tags, c.Tags...)
	}
	return tags
}

// TagsForCategory returns the catalog tags behind a user-facing category,
// or nil for an unknown category name.
func TagsForCategory(name string) []string {
	for _, c := range categories {
		if c.Name == name {
			return c.Tags
		}
	}
	return nil
}

// resolveSelection expands a category selection into the allowed-tag set.
// The ALL sentinel resolves to the whole taxonomy; unknown names contribute
// nothing.
func resolveSelection(selected []string) map[string]bool {
	allowed := make(map[string]bool)
	for _, name := range selected {
		if name == CategoryAll {
			for _, tag := range AllCategoryTags() {
				allowed[tag] = true
			}
			return allowed
		}
	}
	for _, name := range selected {
		for _, tag := range TagsForCategory(name) {
			allowed[tag] = true
		}
	}
	return allowed
}

var taxonomyTagSet = func() map[string]bool {
	set := make(map[string]bool)
	for _, tag := range AllCategoryTags() {
		set[tag] = true
	}
	return set
}()

// primaryTag attributes a venue to a single category tag: the first tag in
// the venue's OWN tag order that belongs to the taxonomy. A venue tagged
// both cafe and museum counts as cafe if cafe comes first in its tag list.
// Fixed policy, kept for output compatibility with the catalog ordering.
func primaryTag(types []string) (string, bool) {
	for _, t := range types {
		if taxonomyTagSet[t] {
			return t, true
		}
	}
	return "", false
}

func hasExcludedType(types []string) bool {
	for _, t := range types {
		if excludedTypes[t] {
			return true
		}
	}
	return false
}

func hasAnyTag(types []string, tags []string) bool {
	for _, t := range types {
		for _, tag := range tags {
			if t == tag {
				return true
			}
		}
	}
	return false
}
