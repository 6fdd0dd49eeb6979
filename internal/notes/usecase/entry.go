package usecase

import (
	"context"
	"fmt"

	"workspace-gateway/internal/notes"
	"workspace-gateway/internal/notes/repository"
)

// DatabaseSchema fetches a database's schema, untouched.
func (uc *implUseCase) DatabaseSchema(ctx context.Context, databaseID string) (map[string]interface{}, error) {
	schema, err := uc.repo.RetrieveDatabase(ctx, databaseID)
	if err != nil {
		uc.l.Errorf(ctx, "DatabaseSchema: retrieve failed for %s: %v", databaseID, err)
		return nil, fmt.Errorf("failed to fetch database schema: %w", err)
	}
	return schema, nil
}

// UpdateEntry patches a database entry's properties.
func (uc *implUseCase) UpdateEntry(ctx context.Context, input notes.UpdateEntryInput) (map[string]interface{}, error) {
	page, err := uc.repo.UpdatePage(ctx, input.PageID, input.Properties)
	if err != nil {
		uc.l.Errorf(ctx, "UpdateEntry: update failed for page %s: %v", input.PageID, err)
		return nil, fmt.Errorf("failed to update database entry: %w", err)
	}
	return page, nil
}

// CreateEntry creates a database entry, optionally with child content blocks.
func (uc *implUseCase) CreateEntry(ctx context.Context, input notes.CreateEntryInput) (map[string]interface{}, error) {
	page, err := uc.repo.CreatePage(ctx, repository.CreatePageOptions{
		DatabaseID: input.DatabaseID,
		Properties: input.Properties,
		Children:   input.Children,
	})
	if err != nil {
		uc.l.Errorf(ctx, "CreateEntry: create failed in database %s: %v", input.DatabaseID, err)
		return nil, fmt.Errorf("failed to create database entry: %w", err)
	}
	return page, nil
}
