package pagination

// DefaultPage is the page fetched when the caller doesn't specify one; the API
// numbers pages from 1.
const DefaultPage = 1

// DefaultPerPage is the default number of results fetched per page. This is
// what we use when the client doesn't specify a per-page size.
const DefaultPerPage = 100

// MaxPerPage limits results in a single call. This protects the API from
// trying to process too much data at once.
const MaxPerPage = 100
