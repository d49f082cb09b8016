package sdk

// PaginationMeta is metadata the API attaches to paged collections.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalCount  int `json:"total_count"`
}

// ListOptions represents common options for paging through collections.
type ListOptions struct {
	Page    int
	PerPage int
	Search  string
}
