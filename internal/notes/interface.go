package notes

import "context"

// UseCase is the interface for Notion workspace operations.
type UseCase interface {
	ListDatabases(ctx context.Context) ([]DatabaseSummary, error)
	ListPages(ctx context.Context) ([]PageSummary, error)
	PageText(ctx context.Context, pageID string) (PageTextOutput, error)
	DatabasePages(ctx context.Context, databaseID string) ([]map[string]interface{}, error)
	DatabaseSchema(ctx context.Context, databaseID string) (map[string]interface{}, error)
	UpdateEntry(ctx context.Context, input UpdateEntryInput) (map[string]interface{}, error)
	CreateEntry(ctx context.Context, input CreateEntryInput) (map[string]interface{}, error)
	QueryDatabase(ctx context.Context, input QueryDatabaseInput) ([]map[string]interface{}, error)
}
