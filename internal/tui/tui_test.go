package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sokinpui/blockdown/blockdown"
	"github.com/sokinpui/blockdown/document"
	"github.com/sokinpui/blockdown/internal/cli"
	"github.com/sokinpui/blockdown/internal/tui"
)

func newModel(t *testing.T) (tui.Model, *blockdown.App) {
	t.Helper()
	app, err := blockdown.New(&cli.Config{Mode: cli.ModeEdit})
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	m := tui.New(app, &cli.Config{Mode: cli.ModeEdit})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, app
}

func send(t *testing.T, m tui.Model, msg tea.Msg) tui.Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(tui.Model)
	if !ok {
		t.Fatalf("Update returned unexpected model type %T", next)
	}
	return out
}

func keys(t *testing.T, m tui.Model, presses ...tea.KeyMsg) tui.Model {
	t.Helper()
	for _, k := range presses {
		m = send(t, m, k)
	}
	return m
}

func runes(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestModeCycle(t *testing.T) {
	m, _ := newModel(t)

	if m.Mode() != cli.ModeEdit {
		t.Fatalf("initial mode = %s, want %s", m.Mode(), cli.ModeEdit)
	}
	for _, want := range []string{cli.ModePreview, cli.ModeCode, cli.ModeEdit} {
		m = send(t, m, tab)
		if m.Mode() != want {
			t.Fatalf("mode after tab = %s, want %s", m.Mode(), want)
		}
	}
}

func TestDirectModeKeys(t *testing.T) {
	m, _ := newModel(t)

	for key, want := range map[string]string{
		"p": cli.ModePreview,
		"c": cli.ModeCode,
		"e": cli.ModeEdit,
	} {
		m = keys(t, m, runes(key)...)
		if m.Mode() != want {
			t.Fatalf("mode after '%s' = %s, want %s", key, m.Mode(), want)
		}
	}
}

func TestAddBlockThroughMenu(t *testing.T) {
	m, app := newModel(t)

	// Open the add menu, pick the first entry (heading 1), type a
	// title, and commit.
	m = keys(t, m, runes("a")...)
	if !strings.Contains(m.View(), "Add block") {
		t.Fatal("expected the add menu to be visible")
	}
	m = send(t, m, enter)
	m = keys(t, m, runes("Hi")...)
	m = send(t, m, esc)

	doc := app.Document()
	if len(doc) != 1 {
		t.Fatalf("document has %d blocks, want 1", len(doc))
	}
	if doc[0].Kind != document.Heading1 || doc[0].Content != "Hi" {
		t.Fatalf("block = %+v", doc[0])
	}
}

func TestDeleteBlock(t *testing.T) {
	m, app := newModel(t)
	blk := app.Insert(document.Divider)

	m = keys(t, m, runes("d")...)
	for _, b := range app.Document() {
		if b.ID == blk.ID {
			t.Fatal("block was not deleted")
		}
	}
}

func TestMarkdownViewShowsSerializedDocument(t *testing.T) {
	m, app := newModel(t)
	blk := app.Insert(document.Heading1)
	app.Update(blk.ID, document.Patch{Content: document.String("Hi")})

	m = keys(t, m, runes("c")...)
	if !strings.Contains(m.View(), "# Hi") {
		t.Fatalf("markdown view missing serialized content:\n%s", m.View())
	}
}

func TestEmptyDocumentHint(t *testing.T) {
	m, _ := newModel(t)
	if !strings.Contains(m.View(), "Empty document") {
		t.Fatal("expected empty-document hint in the edit view")
	}
}
