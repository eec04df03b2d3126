// Package history keeps an in-memory undo/redo stack of document
// snapshots. Snapshots are full Document values; the model's
// copy-on-write operations make that cheap enough for interactive use.
package history

import "github.com/sokinpui/blockdown/document"

// Stack records document states as they are replaced. Current always
// points at the snapshot matching the live document.
type Stack struct {
	entries []document.Document
	current int
}

// New creates a stack seeded with the initial document state.
func New(initial document.Document) *Stack {
	return &Stack{
		entries: []document.Document{initial},
		current: 0,
	}
}

// Push records a new state. Any states undone past are discarded, so
// redo is only available until the next edit.
func (s *Stack) Push(doc document.Document) {
	if s.current < len(s.entries)-1 {
		s.entries = s.entries[:s.current+1]
	}
	s.entries = append(s.entries, doc)
	s.current++
}

// Undo steps back one state. It reports false when there is nothing
// left to undo.
func (s *Stack) Undo() (document.Document, bool) {
	if s.current == 0 {
		return nil, false
	}
	s.current--
	return s.entries[s.current], true
}

// Redo steps forward one state. It reports false when there is nothing
// to redo.
func (s *Stack) Redo() (document.Document, bool) {
	if s.current >= len(s.entries)-1 {
		return nil, false
	}
	s.current++
	return s.entries[s.current], true
}
