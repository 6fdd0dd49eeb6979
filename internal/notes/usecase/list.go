package usecase

import (
	"context"
	"fmt"

	"workspace-gateway/internal/notes"
	"workspace-gateway/internal/notes/repository"
)

const (
	unnamedDatabaseTitle = "Unnamed Database"
	unnamedPageTitle     = "Unnamed Page"
)

// ListDatabases lists database objects in the workspace with their titles.
func (uc *implUseCase) ListDatabases(ctx context.Context) ([]notes.DatabaseSummary, error) {
	resp, err := uc.repo.Search(ctx, repository.SearchOptions{ObjectType: "database"})
	if err != nil {
		uc.l.Errorf(ctx, "ListDatabases: search failed: %v", err)
		return nil, fmt.Errorf("failed to list databases: %w", err)
	}

	databases := make([]notes.DatabaseSummary, 0, len(resp.Results))
	for _, db := range resp.Results {
		title := unnamedDatabaseTitle
		if t, ok := firstPlainText(db["title"]); ok {
			title = t
		}
		databases = append(databases, notes.DatabaseSummary{
			ID:    stringField(db, "id"),
			Title: title,
		})
	}
	return databases, nil
}

// ListPages lists page objects in the workspace with best-effort titles.
func (uc *implUseCase) ListPages(ctx context.Context) ([]notes.PageSummary, error) {
	resp, err := uc.repo.Search(ctx, repository.SearchOptions{ObjectType: "page"})
	if err != nil {
		uc.l.Errorf(ctx, "ListPages: search failed: %v", err)
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	pages := make([]notes.PageSummary, 0, len(resp.Results))
	for _, page := range resp.Results {
		pages = append(pages, notes.PageSummary{
			ID:             stringField(page, "id"),
			Title:          pageTitle(page),
			CreatedTime:    stringField(page, "created_time"),
			LastEditedTime: stringField(page, "last_edited_time"),
			URL:            stringField(page, "url"),
		})
	}
	return pages, nil
}

// pageTitle digs the title out of a page record's properties. Pages without
// a title property (or with an empty one) fall back to a placeholder.
func pageTitle(page map[string]interface{}) string {
	properties, ok := page["properties"].(map[string]interface{})
	if !ok {
		return unnamedPageTitle
	}
	titleProp, ok := properties["title"].(map[string]interface{})
	if !ok {
		return unnamedPageTitle
	}
	if t, ok := firstPlainText(titleProp["title"]); ok {
		return t
	}
	return unnamedPageTitle
}
