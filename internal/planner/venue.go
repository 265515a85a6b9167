package planner

// Venue is one candidate place as delivered by the catalog collaborator.
// PhotoURL is already resolved by the catalog client; the planner never
// touches API keys.
type Venue struct {
	ID               string
	Name             string
	Lat              float64
	Lng              float64
	Rating           float64
	UserRatingsTotal int
	Types            []string
	PhotoURL         string
	MustSee          bool
}

// Score ranks venues for selection: rating weighted by review volume.
// No normalization, so a well-known venue with a huge review count beats a
// highly rated but obscure one. That bias is intentional.
func (v Venue) Score() float64 {
	return v.Rating * float64(v.UserRatingsTotal)
}

// Dedupe keeps the first occurrence of every venue ID.
func Dedupe(venues []Venue) []Venue {
	seen := make(map[string]bool, len(venues))
	out := make([]Venue, 0, len(venues))
	for _, v := range venues {
		if seen[v.ID] {
			continue
		}
		seen[v.ID] = true
		out = append(out, v)
	}
	return out
}
