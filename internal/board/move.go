package board

import (
	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tadaboard/internal/model"
)

// MoveTask moves a top-level task from one column to the tail of another.
func (b *Board) MoveTask(id string, from, to model.Column) error {
	return b.MoveTaskBefore(id, from, to, "")
}

// MoveTaskBefore moves a top-level task in front of beforeID in column to.
// An empty or unknown beforeID means the tail. from and to may be equal.
func (b *Board) MoveTaskBefore(id string, from, to model.Column, beforeID string) error {
	src, dst := b.lists[from], b.lists[to]
	if src == nil {
		return b.miss("move", "column", string(from))
	}
	if dst == nil {
		return b.miss("move", "column", string(to))
	}
	if id == beforeID {
		return nil
	}
	t := src.RemoveTask(id)
	if t == nil {
		return b.miss("move", "task", id)
	}
	dst.InsertBefore(beforeID, t)
	b.log.WithFields(log.Fields{"op": "move", "task_id": id, "from": from, "to": to}).Debug("task moved")
	return b.persist("move")
}

// DropTask is what a drag ending over column to does: dropped onto a task
// it nests there, dropped onto empty list space it moves.
func (b *Board) DropTask(id string, from, to model.Column, targetID string) error {
	if targetID != "" {
		return b.DemoteToSubtask(id, from, targetID)
	}
	return b.MoveTask(id, from, to)
}

// DemoteToSubtask nests top-level task id from column from under the
// top-level task targetID, which may sit in any column. The moved task
// keeps its id and its own subtasks.
func (b *Board) DemoteToSubtask(id string, from model.Column, targetID string) error {
	src := b.lists[from]
	if src == nil {
		return b.miss("demote", "column", string(from))
	}
	if id == targetID {
		return b.miss("demote", "target", targetID)
	}
	t := src.GetTask(id)
	if t == nil {
		return b.miss("demote", "task", id)
	}
	target, targetCol := b.findTopLevel(targetID)
	if target == nil {
		return b.miss("demote", "target", targetID)
	}
	src.RemoveTask(id)
	target.AddSubtask(t)
	b.log.WithFields(log.Fields{"op": "demote", "task_id": id, "from": from, "parent_id": targetID, "column": targetCol}).Debug("task demoted")
	return b.persist("demote")
}

// PromoteSubtaskToTask lifts subtask id out of parentID and places it as
// a top-level task in column to, in front of beforeID (tail when empty or
// unknown). Nested subtasks travel with it.
func (b *Board) PromoteSubtaskToTask(id, parentID string, to model.Column, beforeID string) error {
	dst := b.lists[to]
	if dst == nil {
		return b.miss("promote", "column", string(to))
	}
	parent, _, ok := b.Find(parentID)
	if !ok {
		return b.miss("promote", "parent", parentID)
	}
	st := parent.RemoveSubtask(id)
	if st == nil {
		return b.miss("promote", "subtask", id)
	}
	st.Normalize()
	dst.InsertBefore(beforeID, st)
	b.log.WithFields(log.Fields{"op": "promote", "task_id": id, "parent_id": parentID, "to": to}).Debug("subtask promoted")
	return b.persist("promote")
}

// MoveSubtask reparents subtask id from one task to another.
func (b *Board) MoveSubtask(id, fromParentID, toParentID string) error {
	if fromParentID == toParentID {
		return nil
	}
	from, _, ok := b.Find(fromParentID)
	if !ok {
		return b.miss("move-subtask", "parent", fromParentID)
	}
	st := from.Subtask(id)
	if st == nil {
		return b.miss("move-subtask", "subtask", id)
	}
	to, _, ok := b.Find(toParentID)
	if !ok {
		return b.miss("move-subtask", "parent", toParentID)
	}
	cycle := false
	st.Walk(func(t, _ *model.Task) bool {
		cycle = t.ID == toParentID
		return !cycle
	})
	if cycle {
		return b.miss("move-subtask", "parent", toParentID)
	}
	from.RemoveSubtask(id)
	to.AddSubtask(st)
	b.log.WithFields(log.Fields{"op": "move-subtask", "task_id": id, "from_parent": fromParentID, "to_parent": toParentID}).Debug("subtask moved")
	return b.persist("move-subtask")
}

// Reorder replaces the order of column c with the one the presentation
// layer shows. See model.TaskList.Reorder for how gaps are handled.
func (b *Board) Reorder(c model.Column, ids []string) error {
	l := b.lists[c]
	if l == nil {
		return b.miss("reorder", "column", string(c))
	}
	l.Reorder(ids)
	b.log.WithFields(log.Fields{"op": "reorder", "column": c, "count": len(ids)}).Debug("column reordered")
	return b.persist("reorder")
}

// ReorderSubtasks replaces the order of parentID's direct subtasks, the
// way Reorder does for a column.
func (b *Board) ReorderSubtasks(parentID string, ids []string) error {
	parent, loc, ok := b.Find(parentID)
	if !ok {
		return b.miss("reorder-subtasks", "parent", parentID)
	}
	parent.ReorderSubtasks(ids)
	b.log.WithFields(log.Fields{"op": "reorder-subtasks", "parent_id": parentID, "column": loc.Column, "count": len(ids)}).Debug("subtasks reordered")
	return b.persist("reorder-subtasks")
}
