package usecase_test

import (
	"context"
	"errors"
	"testing"

	"workspace-gateway/internal/notes/repository"
	"workspace-gateway/internal/notes/usecase"
	"workspace-gateway/pkg/log"
)

func TestPageText(t *testing.T) {
	ctx := context.Background()

	t.Run("Visits every reachable block exactly once", func(t *testing.T) {
		// root -> b1 (has children), b2; b1 -> g1, g2
		tree := map[string][]string{
			"root": {
				`{"id": "b1", "type": "paragraph", "has_children": true, "paragraph": {"rich_text": [{"plain_text": "b1"}]}}`,
				`{"id": "b2", "type": "paragraph", "has_children": false, "paragraph": {"rich_text": [{"plain_text": "b2"}]}}`,
			},
			"b1": {
				`{"id": "g1", "type": "paragraph", "has_children": false, "paragraph": {"rich_text": [{"plain_text": "g1"}]}}`,
				`{"id": "g2", "type": "paragraph", "has_children": false, "paragraph": {"rich_text": [{"plain_text": "g2"}]}}`,
			},
		}

		fetches := map[string]int{}
		repo := &fakeRepo{
			childrenFunc: func(blockID, startCursor string) (repository.BlockChildrenResponse, error) {
				fetches[blockID]++
				blocks := make([]repository.Block, 0, len(tree[blockID]))
				for _, raw := range tree[blockID] {
					blocks = append(blocks, mustBlock(t, raw))
				}
				return repository.BlockChildrenResponse{Results: blocks}, nil
			},
		}

		uc := usecase.New(log.NewNop(), repo)
		out, err := uc.PageText(ctx, "root")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.PageID != "root" {
			t.Errorf("unexpected page id %q", out.PageID)
		}
		if len(out.Content) != 4 {
			t.Fatalf("expected 4 lines for 4 reachable blocks, got %d: %v", len(out.Content), out.Content)
		}

		position := map[string]int{}
		for i, line := range out.Content {
			if _, dup := position[line]; dup {
				t.Errorf("block %q visited more than once", line)
			}
			position[line] = i
		}
		if position["g1"] < position["b1"] || position["g2"] < position["b1"] {
			t.Errorf("grandchildren must appear after their parent: %v", out.Content)
		}
		for id, n := range fetches {
			if n != 1 {
				t.Errorf("children of %s fetched %d times, want 1", id, n)
			}
		}
	})

	t.Run("Expands children past the first cursor page", func(t *testing.T) {
		repo := &fakeRepo{
			childrenFunc: func(blockID, startCursor string) (repository.BlockChildrenResponse, error) {
				if blockID != "root" {
					return repository.BlockChildrenResponse{}, nil
				}
				if startCursor == "" {
					return repository.BlockChildrenResponse{
						Results:    []repository.Block{mustBlock(t, `{"id": "c1", "type": "paragraph", "paragraph": {"rich_text": [{"plain_text": "first"}]}}`)},
						HasMore:    true,
						NextCursor: "cursor-2",
					}, nil
				}
				return repository.BlockChildrenResponse{
					Results: []repository.Block{mustBlock(t, `{"id": "c2", "type": "paragraph", "paragraph": {"rich_text": [{"plain_text": "second"}]}}`)},
				}, nil
			},
		}

		uc := usecase.New(log.NewNop(), repo)
		out, err := uc.PageText(ctx, "root")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Content) != 2 || out.Content[0] != "first" || out.Content[1] != "second" {
			t.Errorf("children past the first page were dropped: %v", out.Content)
		}
	})

	t.Run("Fetch error aborts the whole traversal", func(t *testing.T) {
		repo := &fakeRepo{
			childrenFunc: func(blockID, startCursor string) (repository.BlockChildrenResponse, error) {
				if blockID == "root" {
					return repository.BlockChildrenResponse{
						Results: []repository.Block{mustBlock(t, `{"id": "b1", "type": "paragraph", "has_children": true}`)},
					}, nil
				}
				return repository.BlockChildrenResponse{}, errors.New("children fetch failed")
			},
		}

		uc := usecase.New(log.NewNop(), repo)
		_, err := uc.PageText(ctx, "root")
		if err == nil {
			t.Fatalf("expected traversal error to surface as an error value")
		}
	})
}

func TestExtractText(t *testing.T) {
	t.Run("Heading wraps concatenated spans in bold markers", func(t *testing.T) {
		blocks := []repository.Block{
			mustBlock(t, `{"id": "h", "type": "heading_1", "heading_1": {"rich_text": [{"plain_text": "Hello"}, {"plain_text": " World"}]}}`),
		}
		got := usecase.ExtractText(blocks)
		if len(got) != 1 || got[0] != "**Hello World**" {
			t.Errorf("expected [**Hello World**], got %v", got)
		}
	})

	t.Run("Paragraph concatenates spans with no separator", func(t *testing.T) {
		blocks := []repository.Block{
			mustBlock(t, `{"id": "p", "type": "paragraph", "paragraph": {"rich_text": [{"plain_text": "a"}, {"plain_text": "b"}]}}`),
		}
		got := usecase.ExtractText(blocks)
		if len(got) != 1 || got[0] != "ab" {
			t.Errorf("expected [ab], got %v", got)
		}
	})

	t.Run("Unrecognized types contribute nothing", func(t *testing.T) {
		blocks := []repository.Block{
			mustBlock(t, `{"id": "p", "type": "paragraph", "paragraph": {"rich_text": [{"plain_text": "keep"}]}}`),
			mustBlock(t, `{"id": "x", "type": "image", "image": {"url": "https://example.com/x.png"}}`),
			mustBlock(t, `{"id": "q", "type": "to_do", "to_do": {"rich_text": [{"plain_text": "task"}]}}`),
		}
		got := usecase.ExtractText(blocks)
		if len(got) != 2 || got[0] != "keep" || got[1] != "task" {
			t.Errorf("expected image block skipped, got %v", got)
		}
	})

	t.Run("Child page emits its title", func(t *testing.T) {
		blocks := []repository.Block{
			mustBlock(t, `{"id": "c", "type": "child_page", "child_page": {"title": "Sub Page"}}`),
			mustBlock(t, `{"id": "c2", "type": "child_page", "child_page": {}}`),
		}
		got := usecase.ExtractText(blocks)
		if len(got) != 2 || got[0] != "Sub Page" || got[1] != "" {
			t.Errorf("expected titles [Sub Page, \"\"], got %v", got)
		}
	})

	t.Run("Output order matches input order", func(t *testing.T) {
		blocks := []repository.Block{
			mustBlock(t, `{"id": "1", "type": "heading_2", "heading_2": {"rich_text": [{"plain_text": "Top"}]}}`),
			mustBlock(t, `{"id": "2", "type": "bulleted_list_item", "bulleted_list_item": {"rich_text": [{"plain_text": "item"}]}}`),
			mustBlock(t, `{"id": "3", "type": "numbered_list_item", "numbered_list_item": {"rich_text": [{"plain_text": "one"}]}}`),
		}
		got := usecase.ExtractText(blocks)
		want := []string{"**Top**", "item", "one"}
		if len(got) != len(want) {
			t.Fatalf("expected %d lines, got %v", len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})
}
