package cli

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/tadaboard/internal/board"
	"github.com/Makepad-fr/tadaboard/internal/model"
	"github.com/Makepad-fr/tadaboard/internal/ui"
)

const (
	shortIDLen = 8
	nameWidth  = 60
)

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// boardLines renders the given columns, a header with progress first.
func boardLines(b *board.Board, cols []model.Column, desc bool) []string {
	th := ui.Current()
	st := b.Stats()
	active := 0
	for _, c := range model.Columns {
		active += st.Tasks[c] + st.Subtasks[c]
	}
	lines := []string{
		ui.C(th.Title, "Board") + "  " +
			ui.C(th.Muted, fmt.Sprintf("%d open · %d done", active, st.Deleted)) + "  " +
			ui.ProgressBar(st.Deleted, active+st.Deleted, 20),
	}
	for _, c := range cols {
		lines = append(lines, "")
		lines = append(lines, ui.C(th.Columns[c], fmt.Sprintf("%s (%d)", c.Title(), st.Tasks[c])))
		tasks := b.Tasks(c)
		if len(tasks) == 0 {
			lines = append(lines, ui.C(th.Muted, "  (empty)"))
			continue
		}
		for i, t := range tasks {
			lines = appendTask(lines, t, i, 0, desc)
		}
	}
	return lines
}

// appendTask renders t and, indented below it, its subtasks.
func appendTask(lines []string, t *model.Task, index, depth int, desc bool) []string {
	th := ui.Current()
	indent := strings.Repeat("   ", depth)
	lead := ui.Dim(fmt.Sprintf("%2d.", index+1))
	if depth > 0 {
		lead = indent[1:] + ui.C(th.Muted, th.SymSub)
	}
	line := fmt.Sprintf("%s %s %s", lead, ui.C(th.Muted, shortID(t.ID)), ui.Truncate(t.Name, nameWidth))
	if t.URL != "" {
		line += " " + ui.C(th.Accent, th.SymLink)
	}
	lines = append(lines, line)
	if desc {
		if s := model.Summary(t.Description); s != "" {
			lines = append(lines, indent+"    "+ui.C(th.Muted, s))
		}
	}
	for i, st := range t.Subtasks {
		lines = appendTask(lines, st, i, depth+1, desc)
	}
	return lines
}

func deletedLines(b *board.Board) []string {
	th := ui.Current()
	recs := b.Deleted()
	lines := []string{ui.C(th.Title, fmt.Sprintf("%s Completed (%d)", th.SymDeleted, len(recs)))}
	if len(recs) == 0 {
		return append(lines, ui.C(th.Muted, "bin is empty"))
	}
	for i, r := range recs {
		from := r.DeletedFrom
		if r.IsSubtask() {
			from = "subtask of " + shortID(r.ParentTaskID)
			if p, _, ok := b.Find(r.ParentTaskID); ok {
				from = fmt.Sprintf("subtask of %q", p.Name)
			}
		}
		lines = append(lines, fmt.Sprintf("%2d. %s %s %s",
			i+1, ui.C(th.Muted, shortID(r.ID)), ui.Truncate(r.Name, nameWidth), ui.C(th.Muted, "from "+from)))
	}
	return lines
}
