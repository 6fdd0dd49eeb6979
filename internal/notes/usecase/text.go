package usecase

import (
	"context"
	"fmt"
	"strings"

	"workspace-gateway/internal/notes"
	"workspace-gateway/internal/notes/repository"
)

// PageText flattens a page's block tree and extracts its display text.
func (uc *implUseCase) PageText(ctx context.Context, pageID string) (notes.PageTextOutput, error) {
	blocks, err := uc.flattenBlocks(ctx, pageID)
	if err != nil {
		uc.l.Errorf(ctx, "PageText: flatten failed for page %s: %v", pageID, err)
		return notes.PageTextOutput{}, fmt.Errorf("failed to read page content: %w", err)
	}
	return notes.PageTextOutput{
		PageID:  pageID,
		Content: ExtractText(blocks),
	}, nil
}

// flattenBlocks walks the block tree under root and returns every reachable
// block exactly once, in traversal order. Pending node identifiers are kept
// on a stack: last added is expanded first, so the order is deterministic
// for deterministic input but neither strictly breadth- nor depth-first.
// Children of each node are fetched cursor page by cursor page, so nodes
// with more than one page of children are expanded completely. Any fetch
// error aborts the whole traversal.
func (uc *implUseCase) flattenBlocks(ctx context.Context, root string) ([]repository.Block, error) {
	var collected []repository.Block
	pending := []string{root}

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		cursor := ""
		for {
			page, err := uc.repo.ListBlockChildren(ctx, current, cursor)
			if err != nil {
				return nil, fmt.Errorf("failed to list children of block %s: %w", current, err)
			}

			for _, block := range page.Results {
				collected = append(collected, block)
				if block.HasChildren {
					pending = append(pending, block.ID)
				}
			}

			if !page.HasMore {
				break
			}
			cursor = page.NextCursor
		}
	}
	return collected, nil
}

// textBlockTypes are the block types whose rich text is rendered as a line.
var textBlockTypes = map[string]bool{
	"paragraph":          true,
	"heading_1":          true,
	"heading_2":          true,
	"heading_3":          true,
	"bulleted_list_item": true,
	"numbered_list_item": true,
	"to_do":              true,
}

// ExtractText maps blocks to display strings, preserving input order. Rich
// text spans are concatenated with no separator, headings are wrapped in
// bold markers, child pages contribute their title, and any other block
// type contributes nothing.
func ExtractText(blocks []repository.Block) []string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch {
		case textBlockTypes[block.Type]:
			var sb strings.Builder
			for _, span := range block.Content().RichText {
				sb.WriteString(span.PlainText)
			}
			text := sb.String()
			if isHeading(block.Type) {
				text = "**" + text + "**"
			}
			lines = append(lines, text)

		case block.Type == "child_page":
			lines = append(lines, block.Content().Title)
		}
	}
	return lines
}

func isHeading(blockType string) bool {
	return blockType == "heading_1" || blockType == "heading_2" || blockType == "heading_3"
}
