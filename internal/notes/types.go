package notes

// DatabaseSummary is the reduced view returned when listing databases.
type DatabaseSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PageSummary is the reduced view returned when listing pages. Title
// extraction is best effort.
type PageSummary struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	CreatedTime    string `json:"created_time,omitempty"`
	LastEditedTime string `json:"last_edited_time,omitempty"`
	URL            string `json:"url,omitempty"`
}

// PageTextOutput is the flattened text content of a page.
type PageTextOutput struct {
	PageID  string   `json:"page_id"`
	Content []string `json:"content"`
}

// UpdateEntryInput patches a database entry's properties.
type UpdateEntryInput struct {
	PageID     string
	Properties map[string]interface{}
}

// CreateEntryInput creates a database entry, optionally with child content.
type CreateEntryInput struct {
	DatabaseID string
	Properties map[string]interface{}
	Children   []interface{}
}

// QueryDatabaseInput runs a filtered, sorted query over a database. Filter
// and sorts are provider-defined structures passed through unmodified.
type QueryDatabaseInput struct {
	DatabaseID string
	Filter     map[string]interface{}
	Sorts      []interface{}
	PageSize   int
}
