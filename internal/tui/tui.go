package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/blockdown/blockdown"
	"github.com/sokinpui/blockdown/document"
	"github.com/sokinpui/blockdown/internal/cli"
	"github.com/sokinpui/blockdown/internal/render"
)

// --- Styles ---
var (
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1) // Mauve
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	kindStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Width(14)
	summaryStyle   = lipgloss.NewStyle()
	faintStyle     = lipgloss.NewStyle().Faint(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")) // Green
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("197")) // Red
	titleStyle     = lipgloss.NewStyle().Bold(true)
)

type viewMode int

const (
	modeEdit viewMode = iota
	modePreview
	modeCode
)

var modeNames = map[viewMode]string{
	modeEdit:    cli.ModeEdit,
	modePreview: cli.ModePreview,
	modeCode:    cli.ModeCode,
}

// kindLabels is the add-menu ordering and display text.
var kindLabels = map[document.Kind]string{
	document.Heading1:     "Heading 1",
	document.Heading2:     "Heading 2",
	document.Heading3:     "Heading 3",
	document.Paragraph:    "Paragraph",
	document.Image:        "Image",
	document.Code:         "Code",
	document.Blockquote:   "Quote",
	document.BulletList:   "Bullet list",
	document.NumberedList: "Numbered list",
	document.Divider:      "Divider",
}

// Model is the bubbletea model for the editor. It holds the view mode
// and cursor state; all document edits are routed through the App.
type Model struct {
	app *blockdown.App

	mode      viewMode
	cursor    int
	adding    bool
	addCursor int
	editing   bool
	focusMeta bool

	content textarea.Model
	meta    textinput.Model
	vp      viewport.Model

	width  int
	height int
	status string
}

func New(app *blockdown.App, cfg *cli.Config) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Placeholder = "Type here..."

	ti := textinput.New()
	ti.Prompt = ""

	mode := modeEdit
	switch cfg.Mode {
	case cli.ModePreview:
		mode = modePreview
	case cli.ModeCode:
		mode = modeCode
	}

	m := Model{
		app:     app,
		mode:    mode,
		content: ta,
		meta:    ti,
		vp:      viewport.New(0, 0),
	}
	m.refreshViewport()
	return m
}

// Mode returns the current view mode name.
func (m Model) Mode() string {
	return modeNames[m.mode]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.SetWidth(max(20, msg.Width-4))
		m.content.SetHeight(8)
		m.meta.Width = max(20, msg.Width-4)
		m.vp.Width = msg.Width
		m.vp.Height = max(1, msg.Height-4)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		if m.adding {
			return m.updateAddMenu(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// updateKeys handles navigation when no block is being edited.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.setMode((m.mode + 1) % 3)
		return m, nil
	case "e":
		m.setMode(modeEdit)
		return m, nil
	case "p":
		m.setMode(modePreview)
		return m, nil
	case "c":
		m.setMode(modeCode)
		return m, nil
	}

	switch m.mode {
	case modeEdit:
		return m.updateBlockList(msg)
	case modeCode:
		switch msg.String() {
		case "y":
			if err := m.app.Copy(); err != nil {
				m.status = errorStyle.Render("Copy failed: " + err.Error())
			} else {
				m.status = successStyle.Render("Copied Markdown to clipboard.")
			}
			return m, nil
		case "s":
			if err := m.app.Save(""); err != nil {
				m.status = errorStyle.Render("Save failed: " + err.Error())
			} else {
				m.status = successStyle.Render("Saved document.md.")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// updateBlockList handles cursor movement and block operations in the
// edit view.
func (m Model) updateBlockList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doc := m.app.Document()

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(doc)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "J", "shift+down":
		if blk, ok := m.current(); ok {
			m.app.Move(blk.ID, document.Down)
			if m.cursor < len(doc)-1 {
				m.cursor++
			}
		}
	case "K", "shift+up":
		if blk, ok := m.current(); ok {
			m.app.Move(blk.ID, document.Up)
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case "d":
		if blk, ok := m.current(); ok {
			m.app.Remove(blk.ID)
			m.clampCursor()
		}
	case "a":
		m.adding = true
		m.addCursor = 0
	case "enter":
		if blk, ok := m.current(); ok && blk.Kind != document.Divider {
			m.startEditing(blk)
			return m, m.content.Focus()
		}
	case "u":
		if m.app.Undo() {
			m.clampCursor()
			m.status = faintStyle.Render("Undid last edit.")
		} else {
			m.status = faintStyle.Render("Nothing to undo.")
		}
	case "ctrl+r":
		if m.app.Redo() {
			m.clampCursor()
			m.status = faintStyle.Render("Redid last edit.")
		} else {
			m.status = faintStyle.Render("Nothing to redo.")
		}
	}
	return m, nil
}

// updateAddMenu handles the block kind picker.
func (m Model) updateAddMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "a":
		m.adding = false
	case "j", "down":
		if m.addCursor < len(document.Kinds)-1 {
			m.addCursor++
		}
	case "k", "up":
		if m.addCursor > 0 {
			m.addCursor--
		}
	case "enter":
		kind := document.Kinds[m.addCursor]
		blk := m.app.Insert(kind)
		m.adding = false
		m.cursor = len(m.app.Document()) - 1
		if kind != document.Divider {
			m.startEditing(blk)
			return m, m.content.Focus()
		}
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// updateEditing handles keys while a block editor is open.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.commitEditing()
		return m, nil
	case "tab":
		if m.hasMetaField() {
			m.focusMeta = !m.focusMeta
			if m.focusMeta {
				m.content.Blur()
				return m, m.meta.Focus()
			}
			m.meta.Blur()
			return m, m.content.Focus()
		}
	}

	var cmd tea.Cmd
	if m.focusMeta {
		m.meta, cmd = m.meta.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

// startEditing loads the block under the cursor into the editors.
func (m *Model) startEditing(blk document.Block) {
	m.editing = true
	m.focusMeta = false
	m.meta.Blur()

	if blk.Kind.IsList() {
		m.content.SetValue(strings.Join(blk.Meta.Items, "\n"))
	} else {
		m.content.SetValue(blk.Content)
	}

	switch blk.Kind {
	case document.Code:
		m.meta.Placeholder = "language"
		m.meta.SetValue(blk.Meta.Language)
	case document.Image:
		m.meta.Placeholder = "alt text"
		m.meta.SetValue(blk.Meta.AltText)
	default:
		m.meta.SetValue("")
	}
}

// commitEditing writes the editor contents back to the block.
func (m *Model) commitEditing() {
	blk, ok := m.current()
	if ok {
		var p document.Patch
		if blk.Kind.IsList() {
			p.Items = strings.Split(m.content.Value(), "\n")
		} else {
			p.Content = document.String(m.content.Value())
		}
		switch blk.Kind {
		case document.Code:
			p.Language = document.String(m.meta.Value())
		case document.Image:
			p.AltText = document.String(m.meta.Value())
		}
		m.app.Update(blk.ID, p)
	}

	m.editing = false
	m.focusMeta = false
	m.content.Blur()
	m.meta.Blur()
}

func (m Model) hasMetaField() bool {
	blk, ok := m.current()
	return ok && (blk.Kind == document.Code || blk.Kind == document.Image)
}

func (m Model) current() (document.Block, bool) {
	doc := m.app.Document()
	if m.cursor < 0 || m.cursor >= len(doc) {
		return document.Block{}, false
	}
	return doc[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.app.Document()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setMode(mode viewMode) {
	if m.editing {
		m.commitEditing()
	}
	m.adding = false
	m.mode = mode
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	switch m.mode {
	case modePreview:
		m.vp.SetContent(render.Markdown(m.app.Markdown(), max(20, m.width-2)))
	case modeCode:
		m.vp.SetContent(m.app.Markdown())
	}
	m.vp.GotoTop()
}

// --- View ---

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case modeEdit:
		switch {
		case m.adding:
			b.WriteString(m.renderAddMenu())
		case m.editing:
			b.WriteString(m.renderEditor())
		default:
			b.WriteString(m.renderBlockList())
		}
	default:
		b.WriteString(m.vp.View())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderTabs() string {
	labels := []string{"Edit", "Preview", "Markdown"}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if viewMode(i) == m.mode {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderBlockList() string {
	doc := m.app.Document()
	if len(doc) == 0 {
		return faintStyle.Render("Empty document. Press 'a' to add a block.")
	}

	var b strings.Builder
	for i, blk := range doc {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			kindStyle.Render(string(blk.Kind)),
			summaryStyle.Render(summarize(blk))))
	}
	return b.String()
}

func (m Model) renderAddMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add block"))
	b.WriteString("\n")
	for i, kind := range document.Kinds {
		marker := "  "
		if i == m.addCursor {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s\n", marker, kindLabels[kind]))
	}
	return b.String()
}

func (m Model) renderEditor() string {
	blk, ok := m.current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(kindLabels[blk.Kind]))
	b.WriteString("\n")
	if blk.Kind.IsList() {
		b.WriteString(faintStyle.Render("One item per line."))
		b.WriteString("\n")
	}
	if blk.Kind == document.Image {
		b.WriteString(faintStyle.Render("Content is the image URL."))
		b.WriteString("\n")
	}
	b.WriteString(m.content.View())
	b.WriteString("\n")
	if m.hasMetaField() {
		b.WriteString(faintStyle.Render(m.meta.Placeholder + ": "))
		b.WriteString(m.meta.View())
		b.WriteString("\n")
	}
	return b.String()
}

// summarize produces the one-line description of a block shown in the
// block list.
func summarize(blk document.Block) string {
	switch {
	case blk.Kind == document.Divider:
		return "────────"
	case blk.Kind.IsList():
		n := len(blk.Meta.Items)
		label := "items"
		if n == 1 {
			label = "item"
		}
		return fmt.Sprintf("%d %s: %s", n, label, firstLine(strings.Join(blk.Meta.Items, ", ")))
	case blk.Content == "":
		return faintStyle.Render("(empty)")
	default:
		return firstLine(blk.Content)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	const limit = 60
	if len(s) > limit {
		return s[:limit] + "…"
	}
	return s
}

func (m Model) renderHelp() string {
	var help string
	switch {
	case m.editing:
		help = "esc commit"
		if m.hasMetaField() {
			help += " • tab switch field"
		}
	case m.adding:
		help = "enter insert • esc cancel"
	case m.mode == modeEdit:
		help = "a add • enter edit • d delete • J/K move • u undo • tab view • q quit"
	case m.mode == modeCode:
		help = "y copy • s save • tab view • q quit"
	default:
		help = "j/k scroll • tab view • q quit"
	}
	return faintStyle.Render(help)
}
