package pagination

// Option defines a method of passing optional args to paginated List APIs
type Option interface {
	apply(*Paginator)
}

type optFunc func(*Paginator)

func (of optFunc) apply(p *Paginator) {
	of(p)
	p.options = append(p.options, of)
}

// Page specifies which page of the collection to fetch. Pages are numbered from 1.
func Page(page int) Option {
	return optFunc(
		func(p *Paginator) {
			p.page = page
		})
}

// PerPage specifies how many results to fetch at once. If unspecified, the default page size will be used.
func PerPage(perPage int) Option {
	return optFunc(
		func(p *Paginator) {
			p.perPage = perPage
		})
}
