package filters

const DefaultPopularCount = 10

// Popular holds the query parameters of the popular films listing.
// Count is a pointer so an absent parameter can be told apart from zero.
type Popular struct {
	Count *int `schema:"count"`
}

func (p *Popular) Limit() int {
	if p.Count == nil {
		return DefaultPopularCount
	}
	return *p.Count
}
