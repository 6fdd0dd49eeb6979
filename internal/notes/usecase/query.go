package usecase

import (
	"context"
	"fmt"

	"workspace-gateway/internal/notes"
	"workspace-gateway/internal/notes/repository"
)

// defaultQueryPageSize mirrors the provider's maximum query page size.
const defaultQueryPageSize = 100

// QueryDatabase runs a filtered query and collects every page of results
// into one ordered slice. Query-style pagination terminates on the has_more
// flag, resuming from next_cursor; this is distinct from the calendar
// provider's absent-token convention and the two are deliberately not
// unified. Any page error aborts the whole collection. No page cap is
// enforced, so a misbehaving upstream can iterate without bound.
func (uc *implUseCase) QueryDatabase(ctx context.Context, input notes.QueryDatabaseInput) ([]map[string]interface{}, error) {
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultQueryPageSize
	}

	results := make([]map[string]interface{}, 0)
	cursor := ""
	for {
		page, err := uc.repo.QueryDatabase(ctx, input.DatabaseID, repository.QueryOptions{
			Filter:      input.Filter,
			Sorts:       input.Sorts,
			StartCursor: cursor,
			PageSize:    pageSize,
		})
		if err != nil {
			uc.l.Errorf(ctx, "QueryDatabase: page fetch failed for %s: %v", input.DatabaseID, err)
			return nil, fmt.Errorf("failed to query database: %w", err)
		}

		results = append(results, page.Results...)
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}
	return results, nil
}

// DatabasePages returns every record of a database, unfiltered.
func (uc *implUseCase) DatabasePages(ctx context.Context, databaseID string) ([]map[string]interface{}, error) {
	return uc.QueryDatabase(ctx, notes.QueryDatabaseInput{DatabaseID: databaseID})
}
