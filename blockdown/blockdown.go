// Package blockdown wires the document model to its collaborators:
// import, export, and edit history. An App owns the single mutable
// "current document" slot; every edit goes through it.
package blockdown

import (
	"fmt"
	"os"
	"reflect"

	"github.com/google/uuid"

	"github.com/sokinpui/blockdown/document"
	"github.com/sokinpui/blockdown/internal/cli"
	"github.com/sokinpui/blockdown/internal/export"
	"github.com/sokinpui/blockdown/internal/history"
	"github.com/sokinpui/blockdown/internal/importer"
)

// App orchestrates the document lifecycle for one editing session.
type App struct {
	cfg   *cli.Config
	doc   document.Document
	hist  *history.Stack
	newID func() string
}

// New creates an App. When cfg.File is set the file is imported as the
// initial document; otherwise the session starts empty.
func New(cfg *cli.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		newID: uuid.NewString,
	}

	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read '%s': %w", cfg.File, err)
		}
		doc, err := importer.Parse(data, a.newID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse '%s': %w", cfg.File, err)
		}
		a.doc = doc
	}

	a.hist = history.New(a.doc)
	return a, nil
}

// SetIDGenerator replaces the block id generator. Used by tests to get
// deterministic ids.
func (a *App) SetIDGenerator(gen func() string) {
	a.newID = gen
}

// Document returns the current document value. Callers must treat it
// as read-only; all edits go through the App.
func (a *App) Document() document.Document {
	return a.doc
}

// Insert appends a new block of the given kind and returns it.
func (a *App) Insert(kind document.Kind) document.Block {
	blk := document.NewBlock(kind, a.newID())
	a.replace(document.Insert(a.doc, blk))
	return blk
}

// Update applies a partial edit to the block with the given id.
func (a *App) Update(id string, p document.Patch) {
	a.replace(document.Update(a.doc, id, p))
}

// Remove deletes the block with the given id.
func (a *App) Remove(id string) {
	a.replace(document.Remove(a.doc, id))
}

// Move swaps the block with its neighbor in the given direction.
func (a *App) Move(id string, dir document.Direction) {
	a.replace(document.Move(a.doc, id, dir))
}

// Undo restores the previous document state. It reports whether there
// was anything to undo.
func (a *App) Undo() bool {
	doc, ok := a.hist.Undo()
	if ok {
		a.doc = doc
	}
	return ok
}

// Redo restores the next document state after an undo.
func (a *App) Redo() bool {
	doc, ok := a.hist.Redo()
	if ok {
		a.doc = doc
	}
	return ok
}

// Markdown serializes the current document.
func (a *App) Markdown() string {
	return document.Serialize(a.doc)
}

// Copy puts the serialized document on the system clipboard.
func (a *App) Copy() error {
	return export.Copy(a.Markdown())
}

// Save writes the serialized document to path; an empty path means
// export.DefaultFileName.
func (a *App) Save(path string) error {
	return export.Write(a.Markdown(), path)
}

// replace installs a new document state and records it for undo.
// No-op edits (unknown ids, boundary moves) are not recorded.
func (a *App) replace(doc document.Document) {
	if reflect.DeepEqual(doc, a.doc) {
		return
	}
	a.doc = doc
	a.hist.Push(doc)
}
