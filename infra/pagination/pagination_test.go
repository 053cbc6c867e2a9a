package pagination_test

import (
	"testing"

	"github.com/permitio/permit-golang/infra/assert"
	"github.com/permitio/permit-golang/infra/pagination"
)

func TestDefaults(t *testing.T) {
	p, err := pagination.ApplyOptions()
	assert.NoErr(t, err)
	assert.Equal(t, p.GetPage(), pagination.DefaultPage)
	assert.Equal(t, p.GetPerPage(), pagination.DefaultPerPage)
}

func TestOptions(t *testing.T) {
	p, err := pagination.ApplyOptions(pagination.Page(3), pagination.PerPage(25))
	assert.NoErr(t, err)
	assert.Equal(t, p.GetPage(), 3)
	assert.Equal(t, p.GetPerPage(), 25)
	assert.Equal(t, len(p.GetOptions()), 2)
}

func TestValidation(t *testing.T) {
	_, err := pagination.ApplyOptions(pagination.Page(-1))
	assert.NotNil(t, err)

	_, err = pagination.ApplyOptions(pagination.PerPage(pagination.MaxPerPage + 1))
	assert.NotNil(t, err)

	_, err = pagination.ApplyOptions(pagination.PerPage(pagination.MaxPerPage))
	assert.NoErr(t, err)
}

func TestQuery(t *testing.T) {
	p, err := pagination.ApplyOptions(pagination.Page(2), pagination.PerPage(50))
	assert.NoErr(t, err)

	q := p.Query()
	assert.Equal(t, q.Get("page"), "2")
	assert.Equal(t, q.Get("per_page"), "50")
	assert.Equal(t, q.Encode(), "page=2&per_page=50")
}

func TestAdvancePage(t *testing.T) {
	p, err := pagination.ApplyOptions()
	assert.NoErr(t, err)

	rf := pagination.ResponseFields{TotalCount: 250, PageCount: 3}
	assert.True(t, p.AdvancePage(rf))
	assert.Equal(t, p.GetPage(), 2)
	assert.True(t, p.AdvancePage(rf))
	assert.False(t, p.AdvancePage(rf))
	assert.Equal(t, p.GetPage(), 3)
}

func TestAdvancePageNoCount(t *testing.T) {
	p, err := pagination.ApplyOptions()
	assert.NoErr(t, err)

	// a response without a page count can't be advanced
	assert.False(t, p.AdvancePage(pagination.ResponseFields{}))
	assert.Equal(t, p.GetPage(), 1)
}
