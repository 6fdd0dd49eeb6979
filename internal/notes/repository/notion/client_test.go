package notion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workspace-gateway/internal/notes/repository"
	"workspace-gateway/internal/notes/repository/notion"
)

func TestNotionClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body struct {
			Filter struct {
				Property string `json:"property"`
				Value    string `json:"value"`
			} `json:"filter"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Filter.Property != "object" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results":     []map[string]interface{}{{"id": "db-1", "object": body.Filter.Value}},
			"has_more":    false,
			"next_cursor": nil,
		})
	})

	mux.HandleFunc("/v1/databases/db-1/query", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)

		if cursor, ok := body["start_cursor"]; ok && cursor == "cursor-2" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results":  []map[string]interface{}{{"id": "page-2"}},
				"has_more": false,
			})
			return
		}
		// Filter must pass through untouched.
		if _, ok := body["filter"].(map[string]interface{}); !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results":     []map[string]interface{}{{"id": "page-1"}},
			"has_more":    true,
			"next_cursor": "cursor-2",
		})
	})

	mux.HandleFunc("/v1/databases/db-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         "db-1",
			"properties": map[string]interface{}{"Name": map[string]interface{}{"type": "title"}},
		})
	})

	mux.HandleFunc("/v1/pages", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		parent, _ := body["parent"].(map[string]interface{})
		if parent["database_id"] != "db-1" || body["properties"] == nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "page-new", "object": "page"})
	})

	mux.HandleFunc("/v1/pages/page-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "page-1", "object": "page"})
	})

	mux.HandleFunc("/v1/blocks/block-1/children", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start_cursor") == "cursor-b" {
			w.Write([]byte(`{"results": [{"id": "child-2", "type": "paragraph", "has_children": false}], "has_more": false}`))
			return
		}
		w.Write([]byte(`{
			"results": [{
				"id": "child-1",
				"type": "heading_1",
				"has_children": true,
				"heading_1": {"rich_text": [{"plain_text": "Title"}]}
			}],
			"has_more": true,
			"next_cursor": "cursor-b"
		}`))
	})

	mux.HandleFunc("/v1/databases/db-broken/query", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom"}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := notion.NewClient(ts.URL, "test-token")
	ctx := context.Background()

	t.Run("Search", func(t *testing.T) {
		res, err := client.Search(ctx, repository.SearchOptions{ObjectType: "database"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Results) != 1 || res.Results[0]["id"] != "db-1" {
			t.Errorf("unexpected search results: %+v", res.Results)
		}
		if res.HasMore || res.NextCursor != "" {
			t.Errorf("expected final page, got has_more=%v cursor=%q", res.HasMore, res.NextCursor)
		}
	})

	t.Run("QueryDatabase", func(t *testing.T) {
		res, err := client.QueryDatabase(ctx, "db-1", repository.QueryOptions{
			Filter:   map[string]interface{}{"property": "Status"},
			PageSize: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.HasMore || res.NextCursor != "cursor-2" {
			t.Errorf("expected a continuation page, got %+v", res)
		}

		res, err = client.QueryDatabase(ctx, "db-1", repository.QueryOptions{StartCursor: "cursor-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.HasMore || len(res.Results) != 1 || res.Results[0]["id"] != "page-2" {
			t.Errorf("unexpected second page: %+v", res)
		}
	})

	t.Run("QueryDatabase Error", func(t *testing.T) {
		_, err := client.QueryDatabase(ctx, "db-broken", repository.QueryOptions{})
		if err == nil {
			t.Fatalf("expected API error")
		}
	})

	t.Run("RetrieveDatabase", func(t *testing.T) {
		schema, err := client.RetrieveDatabase(ctx, "db-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if schema["id"] != "db-1" {
			t.Errorf("unexpected schema: %+v", schema)
		}
	})

	t.Run("CreatePage", func(t *testing.T) {
		page, err := client.CreatePage(ctx, repository.CreatePageOptions{
			DatabaseID: "db-1",
			Properties: map[string]interface{}{"Name": "hello"},
			Children:   []interface{}{map[string]interface{}{"type": "paragraph"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page["id"] != "page-new" {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("UpdatePage", func(t *testing.T) {
		page, err := client.UpdatePage(ctx, "page-1", map[string]interface{}{"Status": "done"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page["id"] != "page-1" {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("ListBlockChildren", func(t *testing.T) {
		res, err := client.ListBlockChildren(ctx, "block-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Results) != 1 || res.Results[0].ID != "child-1" {
			t.Fatalf("unexpected children: %+v", res.Results)
		}
		if !res.Results[0].HasChildren || res.Results[0].Type != "heading_1" {
			t.Errorf("block envelope not decoded: %+v", res.Results[0])
		}
		if got := res.Results[0].Content().RichText; len(got) != 1 || got[0].PlainText != "Title" {
			t.Errorf("payload not captured: %+v", got)
		}
		if !res.HasMore || res.NextCursor != "cursor-b" {
			t.Errorf("expected continuation, got %+v", res)
		}

		res, err = client.ListBlockChildren(ctx, "block-1", "cursor-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Results) != 1 || res.Results[0].ID != "child-2" || res.HasMore {
			t.Errorf("unexpected second page: %+v", res)
		}
	})
}
