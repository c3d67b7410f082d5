package repository

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page carries page/pageSize list parameters. Zero value means first page
// with the default size.
type Page struct {
	Page     int
	PageSize int
}

func (p Page) normalized() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

// Normalized clamps the parameters to their allowed ranges.
func (p Page) Normalized() Page {
	return p.normalized()
}

func (p Page) Limit() int {
	return p.normalized().PageSize
}

func (p Page) Offset() int {
	n := p.normalized()
	return (n.Page - 1) * n.PageSize
}
