package pagination

// ResponseFields represents pagination-specific fields present in every
// paginated response envelope.
type ResponseFields struct {
	TotalCount int `json:"total_count"`
	PageCount  int `json:"page_count,omitempty"`
}
