package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/Makepad-fr/tadaboard/internal/model"
)

// row is one line of a column: a task or, indented, one of its subtasks.
type row struct {
	task     *model.Task
	column   model.Column
	parentID string
	depth    int
}

func (r row) Title() string       { return r.task.Name }
func (r row) Description() string { return model.Summary(r.task.Description) }
func (r row) FilterValue() string { return r.task.Name }

// binRow is one completed task in the bin view.
type binRow struct {
	rec  *model.DeletedRecord
	from string
}

func (r binRow) Title() string       { return r.rec.Name }
func (r binRow) Description() string { return "from " + r.from }
func (r binRow) FilterValue() string { return r.rec.Name }

func rowsFor(c model.Column, tasks []*model.Task) []list.Item {
	var out []list.Item
	var walk func(t *model.Task, parentID string, depth int)
	walk = func(t *model.Task, parentID string, depth int) {
		out = append(out, row{task: t, column: c, parentID: parentID, depth: depth})
		for _, st := range t.Subtasks {
			walk(st, t.ID, depth+1)
		}
	}
	for _, t := range tasks {
		walk(t, "", 0)
	}
	return out
}

// itemDelegate renders rows and bin rows on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var line string
	switch it := item.(type) {
	case row:
		lead := mutedStyle.Render(boxUnchecked)
		if it.depth > 0 {
			lead = strings.Repeat("  ", it.depth-1) + mutedStyle.Render(subMark)
		}
		name := fit(it.task.Name, m.Width()-2*it.depth-6)
		line = lead + " " + name
		if it.task.URL != "" {
			line += " " + accentStyle.Render(linkMark)
		}
	case binRow:
		name := fit(it.rec.Name, m.Width()/2)
		line = doneStyle.Render(name) + " " + mutedStyle.Render("from "+it.from)
	default:
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

func fit(s string, width int) string {
	if width < 4 {
		width = 4
	}
	return runewidth.Truncate(s, width, "…")
}
