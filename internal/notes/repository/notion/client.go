package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"workspace-gateway/internal/notes/repository"
)

// apiVersion is the Notion-Version header sent with every request.
const apiVersion = "2022-06-28"

// childPageSize is the page size used when listing block children.
const childPageSize = 100

// Client is the HTTP wrapper for the Notion REST API. It implements
// repository.NotesRepository.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ repository.NotesRepository = (*Client)(nil)

// NewClient creates a new Notion HTTP client.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
	}
}

// Search lists workspace objects of one type via POST /v1/search.
func (c *Client) Search(ctx context.Context, opt repository.SearchOptions) (repository.SearchResponse, error) {
	body := map[string]interface{}{
		"filter": map[string]interface{}{
			"property": "object",
			"value":    opt.ObjectType,
		},
	}

	var resp repository.SearchResponse
	if err := c.do(ctx, http.MethodPost, "/v1/search", body, &resp); err != nil {
		return repository.SearchResponse{}, fmt.Errorf("failed to search notion workspace: %w", err)
	}
	return resp, nil
}

// QueryDatabase fetches one page of a database query via
// POST /v1/databases/{id}/query. Filter and sorts pass through unmodified.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, opt repository.QueryOptions) (repository.QueryResponse, error) {
	body := map[string]interface{}{}
	if opt.Filter != nil {
		body["filter"] = opt.Filter
	}
	if opt.Sorts != nil {
		body["sorts"] = opt.Sorts
	}
	if opt.StartCursor != "" {
		body["start_cursor"] = opt.StartCursor
	}
	if opt.PageSize > 0 {
		body["page_size"] = opt.PageSize
	}

	var resp repository.QueryResponse
	path := fmt.Sprintf("/v1/databases/%s/query", url.PathEscape(databaseID))
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return repository.QueryResponse{}, fmt.Errorf("failed to query notion database: %w", err)
	}
	return resp, nil
}

// RetrieveDatabase fetches a database's schema via GET /v1/databases/{id}.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (map[string]interface{}, error) {
	var schema map[string]interface{}
	path := fmt.Sprintf("/v1/databases/%s", url.PathEscape(databaseID))
	if err := c.do(ctx, http.MethodGet, path, nil, &schema); err != nil {
		return nil, fmt.Errorf("failed to retrieve notion database: %w", err)
	}
	return schema, nil
}

// CreatePage creates a database entry via POST /v1/pages, optionally with
// child content blocks.
func (c *Client) CreatePage(ctx context.Context, opt repository.CreatePageOptions) (map[string]interface{}, error) {
	body := map[string]interface{}{
		"parent":     map[string]interface{}{"database_id": opt.DatabaseID},
		"properties": opt.Properties,
	}
	if len(opt.Children) > 0 {
		body["children"] = opt.Children
	}

	var page map[string]interface{}
	if err := c.do(ctx, http.MethodPost, "/v1/pages", body, &page); err != nil {
		return nil, fmt.Errorf("failed to create notion page: %w", err)
	}
	return page, nil
}

// UpdatePage patches a page's properties via PATCH /v1/pages/{id}.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]interface{}) (map[string]interface{}, error) {
	body := map[string]interface{}{"properties": properties}

	var page map[string]interface{}
	path := fmt.Sprintf("/v1/pages/%s", url.PathEscape(pageID))
	if err := c.do(ctx, http.MethodPatch, path, body, &page); err != nil {
		return nil, fmt.Errorf("failed to update notion page: %w", err)
	}
	return page, nil
}

// ListBlockChildren fetches one page of a block's children via
// GET /v1/blocks/{id}/children.
func (c *Client) ListBlockChildren(ctx context.Context, blockID, startCursor string) (repository.BlockChildrenResponse, error) {
	path := fmt.Sprintf("/v1/blocks/%s/children?page_size=%d", url.PathEscape(blockID), childPageSize)
	if startCursor != "" {
		path += "&start_cursor=" + url.QueryEscape(startCursor)
	}

	var resp repository.BlockChildrenResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return repository.BlockChildrenResponse{}, fmt.Errorf("failed to list notion block children: %w", err)
	}
	return resp, nil
}

// do builds an authenticated request, checks the status and decodes the
// response into out.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	httpReq.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call notion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notion API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode notion response: %w", err)
	}
	return nil
}
