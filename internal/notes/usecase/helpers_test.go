package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"workspace-gateway/internal/notes/repository"
)

// fakeRepo is a hand-written NotesRepository stub. Unset funcs return zero
// values.
type fakeRepo struct {
	searchFunc   func(opt repository.SearchOptions) (repository.SearchResponse, error)
	queryFunc    func(databaseID string, opt repository.QueryOptions) (repository.QueryResponse, error)
	retrieveFunc func(databaseID string) (map[string]interface{}, error)
	createFunc   func(opt repository.CreatePageOptions) (map[string]interface{}, error)
	updateFunc   func(pageID string, properties map[string]interface{}) (map[string]interface{}, error)
	childrenFunc func(blockID, startCursor string) (repository.BlockChildrenResponse, error)
}

func (f *fakeRepo) Search(_ context.Context, opt repository.SearchOptions) (repository.SearchResponse, error) {
	if f.searchFunc == nil {
		return repository.SearchResponse{}, nil
	}
	return f.searchFunc(opt)
}

func (f *fakeRepo) QueryDatabase(_ context.Context, databaseID string, opt repository.QueryOptions) (repository.QueryResponse, error) {
	if f.queryFunc == nil {
		return repository.QueryResponse{}, nil
	}
	return f.queryFunc(databaseID, opt)
}

func (f *fakeRepo) RetrieveDatabase(_ context.Context, databaseID string) (map[string]interface{}, error) {
	if f.retrieveFunc == nil {
		return nil, nil
	}
	return f.retrieveFunc(databaseID)
}

func (f *fakeRepo) CreatePage(_ context.Context, opt repository.CreatePageOptions) (map[string]interface{}, error) {
	if f.createFunc == nil {
		return nil, nil
	}
	return f.createFunc(opt)
}

func (f *fakeRepo) UpdatePage(_ context.Context, pageID string, properties map[string]interface{}) (map[string]interface{}, error) {
	if f.updateFunc == nil {
		return nil, nil
	}
	return f.updateFunc(pageID, properties)
}

func (f *fakeRepo) ListBlockChildren(_ context.Context, blockID, startCursor string) (repository.BlockChildrenResponse, error) {
	if f.childrenFunc == nil {
		return repository.BlockChildrenResponse{}, nil
	}
	return f.childrenFunc(blockID, startCursor)
}

// mustBlock decodes a wire-format block literal, the same way blocks arrive
// from the provider.
func mustBlock(t *testing.T, raw string) repository.Block {
	t.Helper()
	var b repository.Block
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("invalid block literal: %v", err)
	}
	return b
}
