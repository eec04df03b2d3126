// Package render turns a Markdown string into styled text for the
// terminal. It only understands the block-level constructs the editor
// produces; inline Markdown is shown as-is.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	h1Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")) // Mauve
	h2Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	h3Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	quoteStyle   = lipgloss.NewStyle().Italic(true).Faint(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("150")).PaddingLeft(2)
	langStyle    = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
	imageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("216"))
	dividerStyle = lipgloss.NewStyle().Faint(true)
)

// Markdown renders src as styled terminal text wrapped to width.
func Markdown(src string, width int) string {
	if width <= 0 {
		width = 80
	}

	parser := goldmark.DefaultParser()
	source := []byte(src)
	root := parser.Parse(text.NewReader(source))

	var parts []string
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		if out := renderNode(node, source, width); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n\n")
}

func renderNode(node ast.Node, source []byte, width int) string {
	switch n := node.(type) {
	case *ast.Heading:
		txt := string(n.Text(source))
		switch n.Level {
		case 1:
			return h1Style.Render(txt)
		case 2:
			return h2Style.Render(txt)
		default:
			return h3Style.Render(txt)
		}

	case *ast.Paragraph:
		if img, ok := soleImage(n); ok {
			alt := strings.TrimSpace(string(img.Text(source)))
			return imageStyle.Render(fmt.Sprintf("[%s] %s", alt, string(img.Destination)))
		}
		body := lipgloss.NewStyle().Width(width).Render(blockText(n, source))
		return body

	case *ast.FencedCodeBlock:
		var b strings.Builder
		if n.Info != nil {
			if lang := string(n.Info.Text(source)); lang != "" {
				b.WriteString(langStyle.Render(lang))
				b.WriteString("\n")
			}
		}
		b.WriteString(codeStyle.Render(strings.TrimRight(blockText(n, source), "\n")))
		return b.String()

	case *ast.Blockquote:
		var lines []string
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			for _, line := range strings.Split(blockText(child, source), "\n") {
				lines = append(lines, "│ "+line)
			}
		}
		return quoteStyle.Render(strings.Join(lines, "\n"))

	case *ast.List:
		var lines []string
		i := 0
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			i++
			marker := "•"
			if n.IsOrdered() {
				marker = fmt.Sprintf("%d.", i)
			}
			lines = append(lines, fmt.Sprintf("%s %s", marker, itemText(item, source)))
		}
		return strings.Join(lines, "\n")

	case *ast.ThematicBreak:
		return dividerStyle.Render(strings.Repeat("─", width))
	}

	return strings.TrimSpace(string(node.Text(source)))
}

func soleImage(p *ast.Paragraph) (*ast.Image, bool) {
	if p.ChildCount() != 1 {
		return nil, false
	}
	img, ok := p.FirstChild().(*ast.Image)
	return img, ok
}

func itemText(item ast.Node, source []byte) string {
	var parts []string
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		if txt := blockText(child, source); txt != "" {
			parts = append(parts, txt)
		}
	}
	return strings.Join(parts, " ")
}

// blockText reconstructs the node's text from its source segments.
func blockText(node ast.Node, source []byte) string {
	lines := node.Lines()
	if lines == nil || lines.Len() == 0 {
		return strings.TrimSpace(string(node.Text(source)))
	}
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
	return strings.TrimRight(b.String(), "\n")
}
