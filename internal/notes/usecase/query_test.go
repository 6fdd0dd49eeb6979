package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"workspace-gateway/internal/notes"
	"workspace-gateway/internal/notes/repository"
	"workspace-gateway/internal/notes/usecase"
	"workspace-gateway/pkg/log"
)

func TestQueryDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("Collects all pages in order", func(t *testing.T) {
		repo := &fakeRepo{
			queryFunc: func(databaseID string, opt repository.QueryOptions) (repository.QueryResponse, error) {
				if databaseID != "db-1" {
					return repository.QueryResponse{}, errors.New("unexpected database")
				}
				if opt.StartCursor == "" {
					return repository.QueryResponse{
						Results:    []map[string]interface{}{{"id": "r1"}, {"id": "r2"}},
						HasMore:    true,
						NextCursor: "cursor-2",
					}, nil
				}
				if opt.StartCursor != "cursor-2" {
					return repository.QueryResponse{}, errors.New("unexpected cursor")
				}
				return repository.QueryResponse{
					Results: []map[string]interface{}{{"id": "r3"}},
					HasMore: false,
				}, nil
			},
		}

		uc := usecase.New(log.NewNop(), repo)
		results, err := uc.QueryDatabase(ctx, notes.QueryDatabaseInput{DatabaseID: "db-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results across pages, got %d", len(results))
		}
		for i, want := range []string{"r1", "r2", "r3"} {
			if results[i]["id"] != want {
				t.Errorf("result %d: expected %s, got %v", i, want, results[i]["id"])
			}
		}
	})

	t.Run("Passes filter, sorts and page size through", func(t *testing.T) {
		var seen repository.QueryOptions
		repo := &fakeRepo{
			queryFunc: func(_ string, opt repository.QueryOptions) (repository.QueryResponse, error) {
				seen = opt
				return repository.QueryResponse{}, nil
			},
		}

		uc := usecase.New(log.NewNop(), repo)
		_, err := uc.QueryDatabase(ctx, notes.QueryDatabaseInput{
			DatabaseID: "db-1",
			Filter:     map[string]interface{}{"property": "Status"},
			Sorts:      []interface{}{map[string]interface{}{"direction": "ascending"}},
			PageSize:   25,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen.Filter["property"] != "Status" || len(seen.Sorts) != 1 || seen.PageSize != 25 {
			t.Errorf("options not passed through: %+v", seen)
		}
	})

	t.Run("Defaults page size", func(t *testing.T) {
		repo := &fakeRepo{
			queryFunc: func(_ string, opt repository.QueryOptions) (repository.QueryResponse, error) {
				if opt.PageSize != 100 {
					return repository.QueryResponse{}, fmt.Errorf("expected default page size 100, got %d", opt.PageSize)
				}
				return repository.QueryResponse{}, nil
			},
		}

		uc := usecase.New(log.NewNop(), repo)
		if _, err := uc.QueryDatabase(ctx, notes.QueryDatabaseInput{DatabaseID: "db-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Keeps following cursors while has_more is set", func(t *testing.T) {
		// The loop must not silently cap; the stub errors after 75 pages to
		// keep the test bounded.
		calls := 0
		repo := &fakeRepo{
			queryFunc: func(_ string, opt repository.QueryOptions) (repository.QueryResponse, error) {
				calls++
				if calls >= 75 {
					return repository.QueryResponse{}, errors.New("stub exhausted")
				}
				return repository.QueryResponse{
					Results:    []map[string]interface{}{{"n": calls}},
					HasMore:    true,
					NextCursor: fmt.Sprintf("cursor-%d", calls),
				}, nil
			},
		}

		uc := usecase.New(log.NewNop(), repo)
		_, err := uc.QueryDatabase(ctx, notes.QueryDatabaseInput{DatabaseID: "db-1"})
		if err == nil {
			t.Fatalf("expected the stub error to surface")
		}
		if calls != 75 {
			t.Errorf("expected the loop to reach page 75, stopped at %d", calls)
		}
	})

	t.Run("Page error discards partial results", func(t *testing.T) {
		repo := &fakeRepo{
			queryFunc: func(_ string, opt repository.QueryOptions) (repository.QueryResponse, error) {
				if opt.StartCursor == "" {
					return repository.QueryResponse{
						Results:    []map[string]interface{}{{"id": "r1"}},
						HasMore:    true,
						NextCursor: "cursor-2",
					}, nil
				}
				return repository.QueryResponse{}, errors.New("second page failed")
			},
		}

		uc := usecase.New(log.NewNop(), repo)
		results, err := uc.QueryDatabase(ctx, notes.QueryDatabaseInput{DatabaseID: "db-1"})
		if err == nil {
			t.Fatalf("expected error from the failing page")
		}
		if results != nil {
			t.Errorf("partial results must be discarded, got %v", results)
		}
	})
}

func TestDatabasePages(t *testing.T) {
	var seen repository.QueryOptions
	repo := &fakeRepo{
		queryFunc: func(databaseID string, opt repository.QueryOptions) (repository.QueryResponse, error) {
			seen = opt
			return repository.QueryResponse{
				Results: []map[string]interface{}{{"id": databaseID + "-r1"}},
			}, nil
		},
	}

	uc := usecase.New(log.NewNop(), repo)
	results, err := uc.DatabasePages(context.Background(), "db-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0]["id"] != "db-9-r1" {
		t.Errorf("unexpected results: %v", results)
	}
	if seen.Filter != nil || seen.Sorts != nil {
		t.Errorf("unfiltered listing must not send filter/sorts: %+v", seen)
	}
}
