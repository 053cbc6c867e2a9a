package pagination

import (
	"net/url"
	"strconv"

	"github.com/permitio/permit-golang/infra/perr"
)

// Paginator represents a configured paginator, based on a set of Options and
// defaults derived from those options
type Paginator struct {
	page    int      // set via Page option or defaulted to DefaultPage
	perPage int      // set via PerPage option or defaulted to DefaultPerPage
	options []Option // collection of options used to produce the Paginator
}

// ApplyOptions initializes and validates a Paginator from a series of Option objects
func ApplyOptions(options ...Option) (*Paginator, error) {
	p := Paginator{}

	for _, option := range options {
		option.apply(&p)
	}

	if p.page == 0 {
		p.page = DefaultPage
	}
	if p.perPage == 0 {
		p.perPage = DefaultPerPage
	}

	if err := p.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	return &p, nil
}

// AdvancePage moves the paginator to the next page based on the response
// fields of the page just fetched. True is returned if there is another page
// to fetch.
func (p *Paginator) AdvancePage(rf ResponseFields) bool {
	if rf.PageCount > 0 && p.page < rf.PageCount {
		p.page++
		return true
	}
	return false
}

// GetPage returns the current page number
func (p Paginator) GetPage() int {
	return p.page
}

// GetPerPage returns the specified page size
func (p Paginator) GetPerPage() int {
	return p.perPage
}

// GetOptions returns the underlying options used to initialize the paginator
func (p Paginator) GetOptions() []Option {
	return p.options
}

// Query converts the paginator settings into HTTP GET query parameters.
func (p Paginator) Query() url.Values {
	query := url.Values{}
	query.Add("page", strconv.Itoa(p.page))
	query.Add("per_page", strconv.Itoa(p.perPage))
	return query
}

// Validate implements the Validatable interface for the Paginator type
func (p Paginator) Validate() error {
	if p.page <= 0 {
		return perr.Errorf("page '%d' must be greater than zero", p.page)
	}

	if p.perPage <= 0 {
		return perr.Errorf("per_page '%d' must be greater than zero", p.perPage)
	}

	if p.perPage > MaxPerPage {
		return perr.Errorf("per_page '%d' cannot be greater than '%d'", p.perPage, MaxPerPage)
	}

	return nil
}
