// Package importer turns Markdown text into a block document. It is
// the lossy inverse of document.Serialize: constructs outside the
// block set (tables, nested lists, raw HTML) degrade to the nearest
// block kind rather than failing.
package importer

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/sokinpui/blockdown/document"
)

// Parse builds a document from Markdown source. Block ids come from
// newID, one per block, in reading order.
func Parse(source []byte, newID func() string) (document.Document, error) {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	var doc document.Document
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		blk, ok := convert(node, source, newID)
		if !ok {
			continue
		}
		doc = append(doc, blk)
	}
	return doc, nil
}

func convert(node ast.Node, source []byte, newID func() string) (document.Block, bool) {
	switch n := node.(type) {
	case *ast.Heading:
		blk := document.NewBlock(headingKind(n.Level), newID())
		blk.Content = string(n.Text(source))
		return blk, true

	case *ast.Paragraph:
		if img, ok := soleImage(n); ok {
			blk := document.NewBlock(document.Image, newID())
			blk.Content = string(img.Destination)
			blk.Meta.AltText = strings.TrimSpace(string(img.Text(source)))
			return blk, true
		}
		blk := document.NewBlock(document.Paragraph, newID())
		blk.Content = rawText(n, source)
		return blk, true

	case *ast.FencedCodeBlock:
		blk := document.NewBlock(document.Code, newID())
		if n.Info != nil {
			blk.Meta.Language = string(n.Info.Text(source))
		}
		blk.Content = strings.TrimRight(blockLines(n, source), "\n")
		return blk, true

	case *ast.CodeBlock:
		blk := document.NewBlock(document.Code, newID())
		blk.Content = strings.TrimRight(blockLines(n, source), "\n")
		return blk, true

	case *ast.Blockquote:
		blk := document.NewBlock(document.Blockquote, newID())
		var parts []string
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			parts = append(parts, rawText(child, source))
		}
		blk.Content = strings.Join(parts, "\n")
		return blk, true

	case *ast.List:
		kind := document.BulletList
		if n.IsOrdered() {
			kind = document.NumberedList
		}
		blk := document.NewBlock(kind, newID())
		blk.Meta.Items = listItems(n, source)
		return blk, true

	case *ast.ThematicBreak:
		return document.NewBlock(document.Divider, newID()), true
	}

	// Anything else (HTML blocks, tables, ...) degrades to a paragraph
	// carrying the raw source lines, or is skipped if it has none.
	raw := rawText(node, source)
	if raw == "" {
		return document.Block{}, false
	}
	blk := document.NewBlock(document.Paragraph, newID())
	blk.Content = raw
	return blk, true
}

// headingKind clamps levels beyond h3 to the deepest supported kind.
func headingKind(level int) document.Kind {
	switch level {
	case 1:
		return document.Heading1
	case 2:
		return document.Heading2
	default:
		return document.Heading3
	}
}

// soleImage reports whether the paragraph consists of a single image,
// which is how Serialize writes image blocks.
func soleImage(p *ast.Paragraph) (*ast.Image, bool) {
	if p.ChildCount() != 1 {
		return nil, false
	}
	img, ok := p.FirstChild().(*ast.Image)
	return img, ok
}

// listItems flattens the top-level items of a list. Nested structure
// inside an item collapses into one line of text.
func listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if txt := rawText(child, source); txt != "" {
				parts = append(parts, txt)
			}
		}
		items = append(items, strings.Join(parts, " "))
	}
	if len(items) == 0 {
		items = []string{""}
	}
	return items
}

// rawText reconstructs a block node's text from its source line
// segments, preserving inline Markdown verbatim. Nodes without their
// own lines fall back to their parsed inline text.
func rawText(node ast.Node, source []byte) string {
	lines := node.Lines()
	if lines == nil || lines.Len() == 0 {
		return strings.TrimSpace(string(node.Text(source)))
	}
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return strings.TrimRight(buf.String(), "\n")
}

func blockLines(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}
