package history_test

import (
	"testing"

	"github.com/sokinpui/blockdown/document"
	"github.com/sokinpui/blockdown/internal/history"
)

func docWith(ids ...string) document.Document {
	doc := make(document.Document, len(ids))
	for i, id := range ids {
		doc[i] = document.Block{ID: id, Kind: document.Paragraph}
	}
	return doc
}

func firstID(doc document.Document) string {
	if len(doc) == 0 {
		return ""
	}
	return doc[0].ID
}

func TestUndoRedo(t *testing.T) {
	s := history.New(docWith("a"))
	s.Push(docWith("b"))
	s.Push(docWith("c"))

	doc, ok := s.Undo()
	if !ok || firstID(doc) != "b" {
		t.Fatalf("first undo: ok=%v doc=%v", ok, doc)
	}
	doc, ok = s.Undo()
	if !ok || firstID(doc) != "a" {
		t.Fatalf("second undo: ok=%v doc=%v", ok, doc)
	}
	if _, ok := s.Undo(); ok {
		t.Fatal("undo past the initial state should report false")
	}

	doc, ok = s.Redo()
	if !ok || firstID(doc) != "b" {
		t.Fatalf("redo: ok=%v doc=%v", ok, doc)
	}
}

func TestRedoAtTipReportsFalse(t *testing.T) {
	s := history.New(docWith("a"))
	if _, ok := s.Redo(); ok {
		t.Fatal("redo with no undone states should report false")
	}
}

func TestPushDiscardsRedoBranch(t *testing.T) {
	s := history.New(docWith("a"))
	s.Push(docWith("b"))
	if _, ok := s.Undo(); !ok {
		t.Fatal("undo failed")
	}

	s.Push(docWith("c"))
	if _, ok := s.Redo(); ok {
		t.Fatal("redo should be unavailable after a push trimmed the branch")
	}

	doc, ok := s.Undo()
	if !ok || firstID(doc) != "a" {
		t.Fatalf("undo after trim: ok=%v doc=%v", ok, doc)
	}
}
