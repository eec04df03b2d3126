package document_test

import (
	"testing"

	"github.com/sokinpui/blockdown/document"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		doc  document.Document
		want string
	}{
		{
			name: "empty document",
			doc:  document.Document{},
			want: "",
		},
		{
			name: "heading1",
			doc:  document.Document{{ID: "a", Kind: document.Heading1, Content: "Hi"}},
			want: "# Hi",
		},
		{
			name: "heading levels",
			doc: document.Document{
				{ID: "a", Kind: document.Heading2, Content: "two"},
				{ID: "b", Kind: document.Heading3, Content: "three"},
			},
			want: "## two\n\n### three",
		},
		{
			name: "paragraph verbatim",
			doc:  document.Document{{ID: "a", Kind: document.Paragraph, Content: "plain text"}},
			want: "plain text",
		},
		{
			name: "blockquote",
			doc:  document.Document{{ID: "a", Kind: document.Blockquote, Content: "wise words"}},
			want: "> wise words",
		},
		{
			name: "bullet list",
			doc: document.Document{{
				ID: "a", Kind: document.BulletList,
				Meta: document.Meta{Items: []string{"a", "b"}},
			}},
			want: "- a\n- b",
		},
		{
			name: "numbered list",
			doc: document.Document{{
				ID: "a", Kind: document.NumberedList,
				Meta: document.Meta{Items: []string{"x", "y"}},
			}},
			want: "1. x\n2. y",
		},
		{
			name: "list with no items",
			doc: document.Document{{
				ID: "a", Kind: document.BulletList,
				Meta: document.Meta{Items: []string{}},
			}},
			want: "",
		},
		{
			name: "code with language",
			doc: document.Document{{
				ID: "a", Kind: document.Code, Content: "print(1)",
				Meta: document.Meta{Language: "py"},
			}},
			want: "```py\nprint(1)\n```",
		},
		{
			name: "code without language",
			doc:  document.Document{{ID: "a", Kind: document.Code, Content: "x = 1"}},
			want: "```\nx = 1\n```",
		},
		{
			name: "image with alt text",
			doc: document.Document{{
				ID: "a", Kind: document.Image, Content: "https://example.com/cat.png",
				Meta: document.Meta{AltText: "a cat"},
			}},
			want: "![a cat](https://example.com/cat.png)",
		},
		{
			name: "image alt defaults to literal image",
			doc:  document.Document{{ID: "a", Kind: document.Image, Content: "cat.png"}},
			want: "![image](cat.png)",
		},
		{
			name: "divider",
			doc:  document.Document{{ID: "a", Kind: document.Divider}},
			want: "---",
		},
		{
			name: "blocks joined by blank line",
			doc: document.Document{
				{ID: "a", Kind: document.Heading1, Content: "T"},
				{ID: "b", Kind: document.Paragraph, Content: "body"},
			},
			want: "# T\n\nbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := document.Serialize(tt.doc)
			if got != tt.want {
				t.Errorf("Serialize() mismatch:\ngot:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}
