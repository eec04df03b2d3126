package document

import (
	"fmt"
	"strings"
)

// Serialize renders the document as Markdown text. Blocks are rendered
// in sequence order and joined with a blank line. It is total: any
// well-formed document serializes, and the empty document yields "".
func Serialize(doc Document) string {
	parts := make([]string, len(doc))
	for i, blk := range doc {
		parts[i] = renderBlock(blk)
	}
	return strings.Join(parts, "\n\n")
}

func renderBlock(blk Block) string {
	switch blk.Kind {
	case Heading1:
		return "# " + blk.Content
	case Heading2:
		return "## " + blk.Content
	case Heading3:
		return "### " + blk.Content
	case Paragraph:
		return blk.Content
	case Blockquote:
		return "> " + blk.Content
	case Code:
		return "```" + blk.Meta.Language + "\n" + blk.Content + "\n```"
	case Image:
		alt := blk.Meta.AltText
		if alt == "" {
			alt = "image"
		}
		return fmt.Sprintf("![%s](%s)", alt, blk.Content)
	case BulletList:
		lines := make([]string, len(blk.Meta.Items))
		for i, item := range blk.Meta.Items {
			lines[i] = "- " + item
		}
		return strings.Join(lines, "\n")
	case NumberedList:
		lines := make([]string, len(blk.Meta.Items))
		for i, item := range blk.Meta.Items {
			lines[i] = fmt.Sprintf("%d. %s", i+1, item)
		}
		return strings.Join(lines, "\n")
	case Divider:
		return "---"
	default:
		// Unknown kinds degrade to their raw content so Serialize
		// stays total.
		return blk.Content
	}
}
