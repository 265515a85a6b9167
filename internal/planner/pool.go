package planner

import "sort"

// Pool is the request-scoped set of venues not yet scheduled. A single
// build pass owns it exclusively; every take removes what it picked, which
// makes "a venue is scheduled at most once per trip" structural rather than
// something callers have to audit.
type Pool struct {
	venues []Venue
}

// NewPool copies and deduplicates the candidate list so the pool never
// aliases caller memory.
func NewPool(venues []Venue) *Pool {
	return &Pool{venues: Dedupe(venues)}
}

func (p *Pool) Len() int {
	return len(p.venues)
}

func (p *Pool) removeByID(id string) {
	for i, v := range p.venues {
		if v.ID == id {
			p.venues = append(p.venues[:i], p.venues[i+1:]...)
			return
		}
	}
}

// Flagship categories for day one, in the order their picks appear.
var flagships = []struct {
	Name string
	Tags []string
}{
	{CategoryMuseum, []string{"museum", "art_gallery"}},
	{CategorySightseeing, []string{"tourist_attraction"}},
	{CategoryRestaurant, []string{"restaurant", "cafe"}},
}

// TakeMustSees pulls the single top-scoring venue for each flagship
// category, marks it must-see and removes it from the pool. A category with
// no matching venue contributes nothing. Returns 0-3 venues.
func (p *Pool) TakeMustSees() []Venue {
	var out []Venue
	for _, f := range flagships {
		best := -1
		for i, v := range p.venues {
			if !hasAnyTag(v.Types, f.Tags) {
				continue
			}
			if best == -1 || v.Score() > p.venues[best].Score() {
				best = i
			}
		}
		if best == -1 {
			continue
		}
		pick := p.venues[best]
		pick.MustSee = true
		out = append(out, pick)
		p.venues = append(p.venues[:best], p.venues[best+1:]...)
	}
	return out
}

// TakeMixed fills up to count slots by round-robining across primary
// categories, so consecutive picks favor variety instead of exhausting one
// category first. Groups iterate in order of first appearance in the pool
// (which is score order after filtering). Picked venues leave the pool.
func (p *Pool) TakeMixed(count int) []Venue {
	if count <= 0 || len(p.venues) == 0 {
		return nil
	}

	groups := make(map[string][]Venue)
	var order []string
	for _, v := range p.venues {
		tag, ok := primaryTag(v.Types)
		if !ok {
			continue
		}
		if _, seen := groups[tag]; !seen {
			order = append(order, tag)
		}
		groups[tag] = append(groups[tag], v)
	}
	for _, tag := range order {
		g := groups[tag]
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].Score() > g[j].Score()
		})
		groups[tag] = g
	}

	var picked []Venue
	for len(picked) < count {
		progressed := false
		for _, tag := range order {
			if len(picked) >= count {
				break
			}
			g := groups[tag]
			if len(g) == 0 {
				continue
			}
			picked = append(picked, g[0])
			groups[tag] = g[1:]
			progressed = true
		}
		if !progressed {
			break
		}
	}

	for _, v := range picked {
		p.removeByID(v.ID)
	}
	return picked
}
