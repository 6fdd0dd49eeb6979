package repository

import "context"

// NotesRepository is the interface for Notion data access operations.
type NotesRepository interface {
	Search(ctx context.Context, opt SearchOptions) (SearchResponse, error)
	QueryDatabase(ctx context.Context, databaseID string, opt QueryOptions) (QueryResponse, error)
	RetrieveDatabase(ctx context.Context, databaseID string) (map[string]interface{}, error)
	CreatePage(ctx context.Context, opt CreatePageOptions) (map[string]interface{}, error)
	UpdatePage(ctx context.Context, pageID string, properties map[string]interface{}) (map[string]interface{}, error)
	ListBlockChildren(ctx context.Context, blockID, startCursor string) (BlockChildrenResponse, error)
}
