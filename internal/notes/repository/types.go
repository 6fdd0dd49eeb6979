package repository

import "encoding/json"

// RichText is a single rich-text span. Only the plain text is interpreted;
// every other formatting attribute stays in the raw payload.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// Block is one content block of a Notion page. The identifier, type tag and
// has_children flag are decoded eagerly; the type-keyed payload stays raw
// until a caller asks for it.
type Block struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children"`

	fields map[string]json.RawMessage
}

// UnmarshalJSON keeps the full raw object alongside the decoded envelope so
// the type-specific payload can be looked up by the block's own type tag.
func (b *Block) UnmarshalJSON(data []byte) error {
	type alias Block
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	a.fields = fields
	*b = Block(a)
	return nil
}

// Content decodes the block's type-keyed payload. Unknown or empty payloads
// decode to the zero value.
func (b Block) Content() BlockContent {
	var content BlockContent
	if raw, ok := b.fields[b.Type]; ok {
		_ = json.Unmarshal(raw, &content)
	}
	return content
}

// BlockContent is the subset of a block payload this service interprets:
// rich text for text-bearing blocks, a title for child_page blocks.
type BlockContent struct {
	RichText []RichText `json:"rich_text"`
	Title    string     `json:"title"`
}

// SearchResponse is one page of search results. Records stay opaque.
type SearchResponse struct {
	Results    []map[string]interface{} `json:"results"`
	HasMore    bool                     `json:"has_more"`
	NextCursor string                   `json:"next_cursor"`
}

// QueryResponse is one page of a database query.
type QueryResponse struct {
	Results    []map[string]interface{} `json:"results"`
	HasMore    bool                     `json:"has_more"`
	NextCursor string                   `json:"next_cursor"`
}

// BlockChildrenResponse is one page of a block's children.
type BlockChildrenResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}
