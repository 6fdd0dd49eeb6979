package repository

// SearchOptions holds the parameters for a workspace search.
type SearchOptions struct {
	ObjectType string // "page" or "database"
}

// QueryOptions holds the parameters for one page of a database query.
// Filter and sorts are provider-defined structures passed through unmodified.
type QueryOptions struct {
	Filter      map[string]interface{}
	Sorts       []interface{}
	StartCursor string
	PageSize    int
}

// CreatePageOptions holds the parameters for creating a database entry.
type CreatePageOptions struct {
	DatabaseID string
	Properties map[string]interface{}
	Children   []interface{} // optional child blocks
}
