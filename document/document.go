// Package document holds the block-based document model: an ordered
// sequence of typed blocks plus pure operations to edit it. Every
// operation returns a fresh Document value and never mutates its input,
// so callers can hold the previous value for undo.
package document

import "slices"

// Kind identifies the type of a block. It is fixed at creation and
// never changed in place.
type Kind string

const (
	Heading1     Kind = "heading1"
	Heading2     Kind = "heading2"
	Heading3     Kind = "heading3"
	Paragraph    Kind = "paragraph"
	Image        Kind = "image"
	Code         Kind = "code"
	Blockquote   Kind = "blockquote"
	BulletList   Kind = "bulletList"
	NumberedList Kind = "numberedList"
	Divider      Kind = "divider"
)

// Kinds lists every block kind in the order the add menu presents them.
var Kinds = []Kind{
	Heading1, Heading2, Heading3, Paragraph, Image,
	Code, Blockquote, BulletList, NumberedList, Divider,
}

// IsList reports whether the kind carries list items.
func (k Kind) IsList() bool {
	return k == BulletList || k == NumberedList
}

// Meta holds kind-dependent block attributes. Language is only
// meaningful for code blocks, AltText for images, Items for the two
// list kinds.
type Meta struct {
	Language string
	AltText  string
	Items    []string
}

// Block is a single typed content unit. ID is opaque and never
// interpreted; Content semantics depend on Kind (free text for
// headings, paragraphs and quotes, URL for images, source text for
// code, unused for lists and dividers).
type Block struct {
	ID      string
	Kind    Kind
	Content string
	Meta    Meta
}

// Document is the ordered sequence of blocks. Order defines render and
// export order; ids are unique within a document.
type Document []Block

// Direction selects a neighbor for Move.
type Direction int

const (
	Up Direction = iota
	Down
)

// Patch describes a partial block update. Nil pointer fields are left
// untouched; a nil Items leaves the items as they are. There is no way
// to express an id or kind change.
type Patch struct {
	Content  *string
	Language *string
	AltText  *string
	Items    []string
}

// String is a convenience for building a Patch content field inline.
func String(s string) *string { return &s }

// NewBlock creates a block of the given kind with the given id and
// kind-appropriate defaults. List kinds start with one empty item so
// the editor always has a line to place the cursor on.
func NewBlock(kind Kind, id string) Block {
	b := Block{ID: id, Kind: kind}
	if kind.IsList() {
		b.Meta.Items = []string{""}
	}
	return b
}

// Insert appends blk to doc, returning a new document. The caller is
// responsible for blk carrying a fresh unique id (see NewBlock).
func Insert(doc Document, blk Block) Document {
	out := make(Document, 0, len(doc)+1)
	out = append(out, doc...)
	return append(out, blk)
}

// Update merges p over the block with the given id. Unknown ids are a
// no-op, not an error: the document is returned unchanged.
func Update(doc Document, id string, p Patch) Document {
	i := indexOf(doc, id)
	if i < 0 {
		return doc
	}
	out := slices.Clone(doc)
	blk := out[i]
	if p.Content != nil {
		blk.Content = *p.Content
	}
	if p.Language != nil {
		blk.Meta.Language = *p.Language
	}
	if p.AltText != nil {
		blk.Meta.AltText = *p.AltText
	}
	if p.Items != nil {
		blk.Meta.Items = slices.Clone(p.Items)
	}
	out[i] = blk
	return out
}

// Remove deletes the block with the given id; unknown ids are a no-op.
func Remove(doc Document, id string) Document {
	i := indexOf(doc, id)
	if i < 0 {
		return doc
	}
	out := make(Document, 0, len(doc)-1)
	out = append(out, doc[:i]...)
	return append(out, doc[i+1:]...)
}

// Move swaps the block with the given id with its immediate neighbor.
// Moving the first block up, the last block down, or an unknown id
// returns the document unchanged.
func Move(doc Document, id string, dir Direction) Document {
	i := indexOf(doc, id)
	if i < 0 {
		return doc
	}
	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j < 0 || j >= len(doc) {
		return doc
	}
	out := slices.Clone(doc)
	out[i], out[j] = out[j], out[i]
	return out
}

func indexOf(doc Document, id string) int {
	for i, blk := range doc {
		if blk.ID == id {
			return i
		}
	}
	return -1
}
