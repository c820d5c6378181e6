package services

// Paginator resolves requested page sizes against configured bounds.
type Paginator struct {
	defaultLimit int
	maxLimit     int
}

func NewPaginator(defaultLimit, maxLimit int) Paginator {
	if maxLimit < 1 {
		maxLimit = 1
	}
	if defaultLimit < 1 {
		defaultLimit = 1
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return Paginator{defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// ResolveLimit never fails: a missing limit takes the default and anything
// else is clamped to [1, max].
func (p Paginator) ResolveLimit(limit *int) int {
	if limit == nil {
		return p.defaultLimit
	}
	return min(p.maxLimit, max(1, *limit))
}

func (p Paginator) DefaultLimit() int { return p.defaultLimit }

func (p Paginator) MaxLimit() int { return p.maxLimit }
