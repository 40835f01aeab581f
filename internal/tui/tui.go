// Package tui is the interactive three-column board.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tadaboard/internal/board"
	"github.com/Makepad-fr/tadaboard/internal/model"
	"github.com/Makepad-fr/tadaboard/internal/ui"
)

type mode int

const (
	modeBoard mode = iota
	modeInput
	modeBin
)

// Model is the Bubble Tea model of the board. Every change goes through
// the Board, which saves after each operation.
type Model struct {
	board *board.Board
	lists []list.Model
	bin   list.Model
	focus int
	mode  mode

	ti     textinput.Model
	prompt string
	target board.EditingTarget
	fields board.Fields

	status       string
	statusErr    bool
	confirmClear bool
	lastDone     string

	keys          keyMap
	help          help.Model
	width, height int
}

// New builds the model over b, which should already be loaded.
func New(b *board.Board) Model {
	m := Model{
		board:  b,
		keys:   defaultKeys(),
		help:   help.New(),
		width:  120,
		height: 30,
	}
	for _, c := range model.Columns {
		m.lists = append(m.lists, newList(c.Title(), titleStyle.Foreground(columnColors[c])))
	}
	m.bin = newList("Completed", titleStyle)

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200
	m.refresh()
	m.resize()
	return m
}

func newList(title string, style lipgloss.Style) list.Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = title
	l.Styles.Title = style
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return l
}

// Run starts the board full screen and returns when the user quits.
func Run(b *board.Board) error {
	_, err := tea.NewProgram(New(b), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeBin:
			return m.updateBin(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		f := m.fields
		f.Name = m.ti.Value()
		t, err := m.board.Submit(m.target, f)
		if t == nil && errors.Is(err, board.ErrValidation) {
			m.setError("Name cannot be empty")
			return m, nil
		}
		m.closeInput()
		m.report(err, "saved")
		m.refresh()
		if t != nil {
			m.selectID(t.ID)
		}
		return m, nil
	case "esc":
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateBin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirming := m.confirmClear
	m.confirmClear = false
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Bin), msg.String() == "esc", msg.String() == "q":
		m.mode = modeBoard
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Restore):
		r, ok := m.bin.SelectedItem().(binRow)
		if !ok {
			return m, nil
		}
		t, err := m.board.Restore(r.rec.ID)
		m.report(err, fmt.Sprintf("restored %q", r.rec.Name))
		m.refresh()
		if t != nil && len(m.board.Deleted()) == 0 {
			m.mode = modeBoard
			m.selectID(t.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		n := len(m.board.Deleted())
		if n == 0 {
			return m, nil
		}
		if !confirming {
			m.confirmClear = true
			m.setStatus(fmt.Sprintf("press c again to delete %d task(s) for good", n))
			return m, nil
		}
		n, err := m.board.ClearDeleted()
		m.report(err, fmt.Sprintf("cleared %d task(s)", n))
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.bin, cmd = m.bin.Update(msg)
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	sel, hasSel := m.selected()
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, k.Left):
		m.focusColumn(m.focus - 1)
		return m, nil
	case key.Matches(msg, k.Right):
		m.focusColumn(m.focus + 1)
		return m, nil
	case key.Matches(msg, k.Bin):
		m.mode = modeBin
		m.status = ""
		return m, nil
	case key.Matches(msg, k.Add):
		m.openInput(board.NewTask{Column: m.column()}, board.Fields{}, "New task in "+m.column().Title())
		return m, textinput.Blink
	case key.Matches(msg, k.AddSub) && hasSel:
		m.openInput(board.NewTask{ParentID: sel.task.ID}, board.Fields{}, fmt.Sprintf("New subtask of %q", sel.task.Name))
		return m, textinput.Blink
	case key.Matches(msg, k.Edit) && hasSel:
		f := board.Fields{Name: sel.task.Name, Description: sel.task.Description, URL: sel.task.URL}
		m.openInput(board.ExistingTask{ID: sel.task.ID}, f, "Rename task")
		return m, textinput.Blink
	case key.Matches(msg, k.Complete) && hasSel:
		err := m.board.Complete(sel.task.ID)
		if err == nil {
			m.lastDone = sel.task.ID
		}
		m.report(err, fmt.Sprintf("completed %q (u to undo)", sel.task.Name))
		m.refresh()
		return m, nil
	case key.Matches(msg, k.Undo):
		if m.lastDone == "" {
			return m, nil
		}
		t, err := m.board.Restore(m.lastDone)
		m.lastDone = ""
		if t != nil {
			m.report(err, fmt.Sprintf("restored %q", t.Name))
			m.refresh()
			m.selectID(t.ID)
		} else {
			m.report(err, "nothing to undo")
		}
		return m, nil
	case key.Matches(msg, k.PrevCol) && hasSel:
		m.moveToColumn(sel, m.focus-1)
		return m, nil
	case key.Matches(msg, k.NextCol) && hasSel:
		m.moveToColumn(sel, m.focus+1)
		return m, nil
	case key.Matches(msg, k.Up) && hasSel:
		m.shift(sel, -1)
		return m, nil
	case key.Matches(msg, k.Down) && hasSel:
		m.shift(sel, 1)
		return m, nil
	case key.Matches(msg, k.Demote) && hasSel:
		m.demote(sel)
		return m, nil
	case key.Matches(msg, k.Promote) && hasSel:
		m.promote(sel)
		return m, nil
	}
	var cmd tea.Cmd
	m.lists[m.focus], cmd = m.lists[m.focus].Update(msg)
	return m, cmd
}

// moveToColumn moves the selected task, or lifts the selected subtask,
// into the column at index to.
func (m *Model) moveToColumn(sel row, to int) {
	if to < 0 || to >= len(model.Columns) {
		return
	}
	dst := model.Columns[to]
	var err error
	if sel.depth > 0 {
		err = m.board.PromoteSubtaskToTask(sel.task.ID, sel.parentID, dst, "")
	} else {
		err = m.board.MoveTask(sel.task.ID, sel.column, dst)
	}
	m.report(err, fmt.Sprintf("moved %q to %s", sel.task.Name, dst.Title()))
	m.refresh()
	m.selectID(sel.task.ID)
}

// shift swaps the selection with its neighbour among its siblings.
func (m *Model) shift(sel row, delta int) {
	if sel.depth > 0 {
		m.shiftSubtask(sel, delta)
		return
	}
	tasks := m.board.Tasks(sel.column)
	i := indexOf(tasks, sel.task.ID)
	j := i + delta
	if i < 0 || j < 0 || j >= len(tasks) {
		return
	}
	var err error
	if delta < 0 {
		err = m.board.MoveTaskBefore(sel.task.ID, sel.column, sel.column, tasks[j].ID)
	} else {
		err = m.board.MoveTaskBefore(tasks[j].ID, sel.column, sel.column, sel.task.ID)
	}
	m.report(err, "")
	m.refresh()
	m.selectID(sel.task.ID)
}

func (m *Model) shiftSubtask(sel row, delta int) {
	parent, _, ok := m.board.Find(sel.parentID)
	if !ok {
		return
	}
	i := indexOf(parent.Subtasks, sel.task.ID)
	j := i + delta
	if i < 0 || j < 0 || j >= len(parent.Subtasks) {
		return
	}
	ids := make([]string, len(parent.Subtasks))
	for k, st := range parent.Subtasks {
		ids[k] = st.ID
	}
	ids[i], ids[j] = ids[j], ids[i]
	m.report(m.board.ReorderSubtasks(parent.ID, ids), "")
	m.refresh()
	m.selectID(sel.task.ID)
}

// demote nests the selection under the top-level task above it.
func (m *Model) demote(sel row) {
	if sel.depth > 0 {
		return
	}
	tasks := m.board.Tasks(sel.column)
	i := indexOf(tasks, sel.task.ID)
	if i <= 0 {
		m.setError("no task above to nest under")
		return
	}
	target := tasks[i-1]
	err := m.board.DemoteToSubtask(sel.task.ID, sel.column, target.ID)
	m.report(err, fmt.Sprintf("nested %q under %q", sel.task.Name, target.Name))
	m.refresh()
	m.selectID(sel.task.ID)
}

// promote lifts a subtask to a task right below its top-level ancestor.
func (m *Model) promote(sel row) {
	if sel.depth == 0 {
		return
	}
	tasks := m.board.Tasks(sel.column)
	before := ""
	for i, t := range tasks {
		if contains(t, sel.task.ID) && i+1 < len(tasks) {
			before = tasks[i+1].ID
			break
		}
	}
	err := m.board.PromoteSubtaskToTask(sel.task.ID, sel.parentID, sel.column, before)
	m.report(err, fmt.Sprintf("unnested %q", sel.task.Name))
	m.refresh()
	m.selectID(sel.task.ID)
}

func indexOf(tasks []*model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func contains(root *model.Task, id string) bool {
	return !root.Walk(func(t, _ *model.Task) bool { return t.ID != id })
}

func (m *Model) openInput(target board.EditingTarget, f board.Fields, prompt string) {
	m.mode = modeInput
	m.target = target
	m.fields = f
	m.prompt = prompt
	m.status = ""
	m.ti.Placeholder = "Task name..."
	m.ti.SetValue(f.Name)
	m.ti.CursorEnd()
	m.ti.Focus()
	m.resize()
}

func (m *Model) closeInput() {
	m.mode = modeBoard
	m.target = nil
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) setStatus(s string) { m.status, m.statusErr = s, false }
func (m *Model) setError(s string)  { m.status, m.statusErr = s, true }

func (m *Model) report(err error, okMsg string) {
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.setStatus(okMsg)
}

func (m Model) column() model.Column { return model.Columns[m.focus] }

func (m Model) selected() (row, bool) {
	r, ok := m.lists[m.focus].SelectedItem().(row)
	return r, ok
}

func (m *Model) focusColumn(i int) {
	if i < 0 || i >= len(m.lists) {
		return
	}
	m.focus = i
}

// refresh rebuilds every list from the board, keeping cursors in range.
func (m *Model) refresh() {
	for i, c := range model.Columns {
		idx := m.lists[i].Index()
		m.lists[i].SetItems(rowsFor(c, m.board.Tasks(c)))
		m.lists[i].Title = fmt.Sprintf("%s (%d)", c.Title(), len(m.board.Tasks(c)))
		m.lists[i].Select(clamp(idx, len(m.lists[i].Items())))
	}
	var items []list.Item
	for _, rec := range m.board.Deleted() {
		from := rec.DeletedFrom
		if rec.IsSubtask() {
			from = "subtask"
			if p, _, ok := m.board.Find(rec.ParentTaskID); ok {
				from = fmt.Sprintf("subtask of %q", p.Name)
			}
		}
		items = append(items, binRow{rec: rec, from: from})
	}
	idx := m.bin.Index()
	m.bin.SetItems(items)
	m.bin.Title = fmt.Sprintf("Completed (%d)", len(items))
	m.bin.Select(clamp(idx, len(items)))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// selectID focuses the column holding id and puts the cursor on it.
func (m *Model) selectID(id string) {
	for i := range m.lists {
		for j, it := range m.lists[i].Items() {
			if r, ok := it.(row); ok && r.task.ID == id {
				m.focus = i
				m.lists[i].Select(j)
				return
			}
		}
	}
}

func (m *Model) resize() {
	chrome := 6 + lipgloss.Height(m.help.View(m.keys))
	if m.mode == modeInput {
		chrome += 3
	}
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	w := m.width/len(m.lists) - 4
	if w < 10 {
		w = 10
	}
	for i := range m.lists {
		m.lists[i].SetSize(w, h)
	}
	m.bin.SetSize(m.width-4, h)
}

func (m Model) header() string {
	st := m.board.Stats()
	open := 0
	for _, c := range model.Columns {
		open += st.Tasks[c] + st.Subtasks[c]
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s",
		titleStyle.Render("Board"),
		accentStyle.Render("open"), open,
		successStyle.Render("✔"), st.Deleted,
		mutedStyle.Render(ui.ProgressBar(st.Deleted, open+st.Deleted, 20)),
	)
}

func (m Model) View() string {
	var body string
	if m.mode == modeBin {
		body = columnStyle(true).Render(m.bin.View())
	} else {
		cols := make([]string, len(m.lists))
		for i := range m.lists {
			cols[i] = columnStyle(i == m.focus && m.mode == modeBoard).Render(m.lists[i].View())
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}

	parts := []string{m.header(), body}
	if m.mode == modeInput {
		title := m.prompt
		if m.statusErr {
			title += "  " + errorStyle.Render(m.status)
		}
		parts = append(parts, panelString(title+"\n"+m.ti.View()))
	} else if m.status != "" {
		style := mutedStyle
		if m.statusErr {
			style = errorStyle
		}
		parts = append(parts, style.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}
