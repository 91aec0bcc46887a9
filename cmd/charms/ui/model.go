package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/charm-tracker/internal/catalog"
	"github.com/KirkDiggler/charm-tracker/internal/charmtext"
	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/filter"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

type focusArea int

const (
	focusTable focusArea = iota
	focusSkills
	focusArmor
	focusWeapon
	focusEditor
)

type editorMode int

const (
	editorAdd editorMode = iota
	editorEdit
)

const maxSuggestions = 6

// clipboardMsg reports the result of an export to the clipboard
type clipboardMsg struct {
	count int
	err   error
}

// Model is the bubbletea model for the charm browser
type Model struct {
	ctx     context.Context
	store   charm.Service
	catalog *catalog.Catalog

	table       table.Model
	skillsInput textinput.Model
	armorInput  textinput.Model
	weaponInput textinput.Model
	editor      textinput.Model

	focus        focusArea
	mode         editorMode
	editID       int64
	slotsEnabled bool
	confirmClear bool

	// Data
	charms []entities.Charm
	total  int

	status string
	err    error
	width  int
	height int
	styles Styles
}

// New creates the browser and loads the first page of charms
func New(ctx context.Context, store charm.Service, cat *catalog.Catalog) Model {
	styles := DefaultStyles()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: " ", Width: 1},
			{Title: "ID", Width: 14},
			{Title: "Skills", Width: 48},
			{Title: "Armor", Width: 7},
			{Title: "Weapon", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
		table.WithStyles(styles.Table),
	)

	m := Model{
		ctx:          ctx,
		store:        store,
		catalog:      cat,
		table:        t,
		skillsInput:  newInput("Attack, Critical Eye", 60, 40),
		armorInput:   newInput("2-1", 5, 8),
		weaponInput:  newInput("1", 1, 4),
		editor:       newInput("Attack,3,,,,,1,1,0,1,0,0", 120, 70),
		focus:        focusTable,
		slotsEnabled: true,
		styles:       styles,
	}
	m.refresh()

	return m
}

func newInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	return ti
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if h := msg.Height - 12; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.setStatus(fmt.Sprintf("Copied %d charms to the clipboard", msg.count))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusTable {
			return m.updateTable(msg)
		}
		return m.updateInput(msg)
	}

	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "C" {
		m.confirmClear = false
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		return m.focusOn(focusSkills), nil
	case "tab":
		return m.focusOn(focusSkills), nil
	case "s":
		m.slotsEnabled = !m.slotsEnabled
		m.refresh()
		return m, nil
	case "a":
		m.mode = editorAdd
		m.editor.SetValue("")
		return m.focusOn(focusEditor), nil
	case "e", "enter":
		return m.beginEdit(), nil
	case "d", "delete":
		m.deleteSelected()
		return m, nil
	case "y":
		return m, m.copyExport()
	case "C":
		if !m.confirmClear {
			m.confirmClear = true
			m.setStatus("Press C again to delete every charm")
			return m, nil
		}
		m.confirmClear = false
		m.clearAll()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.focus == focusEditor {
			m.cancelEdit()
		}
		return m.focusOn(focusTable), nil
	case "enter":
		if m.focus == focusEditor {
			if !m.commitEditor() {
				return m, nil
			}
		}
		return m.focusOn(focusTable), nil
	case "tab":
		if m.focus != focusEditor {
			next := m.focus + 1
			if next > focusWeapon {
				next = focusTable
			}
			return m.focusOn(next), nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSkills:
		m.skillsInput, cmd = m.skillsInput.Update(msg)
		m.refresh()
	case focusArmor:
		m.armorInput, cmd = m.armorInput.Update(msg)
		m.refresh()
	case focusWeapon:
		m.weaponInput, cmd = m.weaponInput.Update(msg)
		m.refresh()
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// focusOn moves keyboard focus, blurring every other input
func (m Model) focusOn(area focusArea) Model {
	m.focus = area

	inputs := map[focusArea]*textinput.Model{
		focusSkills: &m.skillsInput,
		focusArmor:  &m.armorInput,
		focusWeapon: &m.weaponInput,
		focusEditor: &m.editor,
	}
	for a, in := range inputs {
		if a == area {
			in.Focus()
		} else {
			in.Blur()
		}
	}

	if area == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return m
}

// spec builds the filter from the filter bar
func (m Model) spec() filter.Spec {
	terms := strings.Split(m.skillsInput.Value(), ",")
	return filter.NewSpec(terms, m.armorInput.Value(), m.weaponInput.Value(), m.slotsEnabled)
}

// refresh reloads the visible rows from the store
func (m *Model) refresh() {
	out, err := m.store.Find(m.ctx, &charm.FindInput{Spec: m.spec(), NewestFirst: true})
	if err != nil {
		m.setError(err)
		return
	}
	m.charms = out.Charms
	m.total = out.Total

	editing := int64(0)
	active := false
	if e, err := m.store.Editing(m.ctx, &charm.EditingInput{}); err == nil {
		editing, active = e.ID, e.Active
	}

	rows := make([]table.Row, 0, len(m.charms))
	for _, c := range m.charms {
		marker := ""
		if active && c.ID == editing {
			marker = "*"
		}
		rows = append(rows, table.Row{
			marker,
			strconv.FormatInt(c.ID, 10),
			c.Skills.Describe(),
			entities.FormatArmorPattern(c.Slots.ArmorPattern()),
			entities.FormatWeaponCapacity(c.Slots.WeaponCapacity()),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m Model) selected() (entities.Charm, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.charms) {
		return entities.Charm{}, false
	}
	return m.charms[idx], true
}

func (m Model) beginEdit() Model {
	c, ok := m.selected()
	if !ok {
		return m
	}

	out, err := m.store.BeginEdit(m.ctx, &charm.BeginEditInput{ID: c.ID})
	if err != nil {
		m.setError(err)
		return m
	}
	if !out.Editing {
		m.setStatus(fmt.Sprintf("Charm %d no longer exists", c.ID))
		m.refresh()
		return m
	}

	m.mode = editorEdit
	m.editID = c.ID
	m.editor.SetValue(charmtext.FormatLine(out.Charm))
	m.editor.CursorEnd()
	m.refresh()
	return m.focusOn(focusEditor)
}

func (m *Model) cancelEdit() {
	if m.mode != editorEdit {
		return
	}
	if _, err := m.store.CancelEdit(m.ctx, &charm.CancelEditInput{ID: m.editID}); err != nil {
		m.setError(err)
	}
	m.refresh()
}

// commitEditor saves the editor line; false keeps the editor open
func (m *Model) commitEditor() bool {
	record, err := charmtext.ParseLine(m.editor.Value())
	if err != nil {
		m.setError(err)
		return false
	}
	if err := m.catalog.ValidateSkills(record.Skills); err != nil {
		m.setError(err)
		return false
	}

	if m.mode == editorAdd {
		out, err := m.store.Add(m.ctx, &charm.AddInput{Skills: record.Skills, Slots: record.Slots})
		if out == nil {
			m.setError(err)
			return false
		}
		m.setStatus(fmt.Sprintf("Added charm %d", out.Charm.ID))
		if err != nil {
			m.setError(err)
		}
	} else {
		out, err := m.store.CommitEdit(m.ctx, &charm.CommitEditInput{
			ID:     m.editID,
			Skills: record.Skills,
			Slots:  record.Slots,
		})
		if out == nil {
			m.setError(err)
			return false
		}
		m.setStatus(fmt.Sprintf("Updated charm %d", out.Charm.ID))
		if err != nil {
			m.setError(err)
		}
	}

	m.editor.SetValue("")
	m.refresh()
	return true
}

func (m *Model) deleteSelected() {
	c, ok := m.selected()
	if !ok {
		return
	}

	out, err := m.store.Delete(m.ctx, &charm.DeleteInput{ID: c.ID})
	switch {
	case out == nil:
		m.setError(err)
		return
	case err != nil:
		m.setError(err)
	case out.Deleted:
		m.setStatus(fmt.Sprintf("Deleted charm %d", c.ID))
	}
	m.refresh()
}

func (m *Model) clearAll() {
	out, err := m.store.ClearAll(m.ctx, &charm.ClearAllInput{})
	if out == nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Removed %d charms", out.Removed))
	if err != nil {
		m.setError(err)
	}
	m.refresh()
}

func (m Model) copyExport() tea.Cmd {
	out, err := m.store.Export(m.ctx, &charm.ExportInput{})
	if err != nil {
		return func() tea.Msg { return clipboardMsg{err: err} }
	}
	return func() tea.Msg {
		return clipboardMsg{count: out.Count, err: clipboardWriteAll(out.Text)}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *Model) setError(err error) {
	m.err = err
}

// suggestions completes the skill term being typed
func (m Model) suggestions() []string {
	if m.focus != focusSkills {
		return nil
	}
	terms := strings.Split(m.skillsInput.Value(), ",")
	last := strings.TrimSpace(terms[len(terms)-1])
	if last == "" {
		return nil
	}
	out := m.catalog.Suggest(last)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// View renders the browser.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Charms"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderFilterBar())
	sb.WriteString("\n")

	if s := m.suggestions(); len(s) > 0 {
		sb.WriteString(m.styles.Muted.Render("  skills: " + strings.Join(s, " | ")))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Showing %d of %d charms", len(m.charms), m.total)))
	sb.WriteString("\n")

	if m.focus == focusEditor {
		label := "Add"
		if m.mode == editorEdit {
			label = fmt.Sprintf("Edit %d", m.editID)
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.FocusedBox.Render(m.styles.Label.Render(label+" ") + m.editor.View()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	switch {
	case m.err != nil:
		sb.WriteString(m.styles.Error.Render(m.err.Error()))
	case m.status != "":
		sb.WriteString(m.styles.Status.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(helpLine(m.focus)))

	return sb.String()
}

func (m Model) renderFilterBar() string {
	box := func(area focusArea, label string, in textinput.Model) string {
		style := m.styles.Box
		if m.focus == area {
			style = m.styles.FocusedBox
		}
		return style.Render(m.styles.Label.Render(label+" ") + in.View())
	}

	slots := "slots: on"
	if !m.slotsEnabled {
		slots = "slots: off"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		box(focusSkills, "Skills", m.skillsInput),
		" ",
		box(focusArmor, "Armor", m.armorInput),
		" ",
		box(focusWeapon, "Weapon", m.weaponInput),
		"  ",
		m.styles.Muted.Render(slots),
	)
}

func helpLine(area focusArea) string {
	switch area {
	case focusTable:
		return "/ filter  s slots  a add  e edit  d delete  y copy  C clear  q quit"
	case focusEditor:
		return "enter save  esc cancel"
	default:
		return "tab next  enter done  esc back"
	}
}
