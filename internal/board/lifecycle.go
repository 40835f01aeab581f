package board

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tadaboard/internal/model"
)

// Fields are the editable task attributes.
type Fields struct {
	Name        string
	Description string
	URL         string
}

func (f Fields) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	return nil
}

func (f Fields) apply(t *model.Task) {
	t.Name = strings.TrimSpace(f.Name)
	t.Description = f.Description
	t.URL = strings.TrimSpace(f.URL)
}

func (b *Board) newTask(f Fields) *model.Task {
	t := model.NewTask(b.ids.NewID(), "", "", "")
	f.apply(t)
	return t
}

func validColumn(c model.Column) error {
	if !c.Valid() {
		return &ValidationError{Field: "column", Reason: "unknown column " + string(c)}
	}
	return nil
}

// CreateTask appends a new task to the tail of column c. A non-nil task
// may come back with a *PersistenceError: the task exists in memory.
func (b *Board) CreateTask(c model.Column, f Fields) (*model.Task, error) {
	if err := validColumn(c); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	t := b.newTask(f)
	b.lists[c].AddTask(t)
	b.log.WithFields(log.Fields{"op": "create", "task_id": t.ID, "column": c}).Debug("task created")
	return t, b.persist("create")
}

// CreateSubtask appends a new subtask to the active task parentID. The
// parent must already exist; drafts go through EnsureSaved first.
func (b *Board) CreateSubtask(parentID string, f Fields) (*model.Task, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	parent, loc, ok := b.Find(parentID)
	if !ok {
		b.log.WithFields(log.Fields{"op": "create-subtask", "kind": "parent", "id": parentID}).Warn("lookup miss")
		return nil, &NotFoundError{Kind: "parent", ID: parentID}
	}
	t := b.newTask(f)
	parent.AddSubtask(t)
	b.log.WithFields(log.Fields{"op": "create-subtask", "task_id": t.ID, "parent_id": parentID, "column": loc.Column}).Debug("subtask created")
	return t, b.persist("create-subtask")
}

// EditTask updates name, description and url of any active task.
func (b *Board) EditTask(id string, f Fields) error {
	if err := f.validate(); err != nil {
		return err
	}
	t, loc, ok := b.Find(id)
	if !ok {
		return b.miss("edit", "task", id)
	}
	f.apply(t)
	b.log.WithFields(log.Fields{"op": "edit", "task_id": id, "column": loc.Column}).Debug("task edited")
	return b.persist("edit")
}

// EditSubtask edits a direct subtask of parentID.
func (b *Board) EditSubtask(parentID, id string, f Fields) error {
	if err := f.validate(); err != nil {
		return err
	}
	parent, _, ok := b.Find(parentID)
	if !ok {
		return b.miss("edit-subtask", "parent", parentID)
	}
	st := parent.Subtask(id)
	if st == nil {
		return b.miss("edit-subtask", "subtask", id)
	}
	f.apply(st)
	b.log.WithFields(log.Fields{"op": "edit-subtask", "task_id": id, "parent_id": parentID}).Debug("subtask edited")
	return b.persist("edit-subtask")
}

// CompleteTask marks the top-level task id in column c completed, takes it
// off the column and files it in the bin.
func (b *Board) CompleteTask(c model.Column, id string) error {
	l := b.lists[c]
	if l == nil {
		return b.miss("complete", "column", string(c))
	}
	t := l.RemoveTask(id)
	if t == nil {
		return b.miss("complete", "task", id)
	}
	t.Completed = true
	b.deleted = append(b.deleted, &model.DeletedRecord{Task: *t, DeletedFrom: string(c)})
	b.log.WithFields(log.Fields{"op": "complete", "task_id": id, "column": c}).Debug("task completed")
	return b.persist("complete")
}

// CompleteSubtask is CompleteTask for a direct subtask of parentID; the
// record remembers the parent so restore can reattach it.
func (b *Board) CompleteSubtask(parentID, id string) error {
	parent, _, ok := b.Find(parentID)
	if !ok {
		return b.miss("complete-subtask", "parent", parentID)
	}
	st := parent.RemoveSubtask(id)
	if st == nil {
		return b.miss("complete-subtask", "subtask", id)
	}
	st.Completed = true
	b.deleted = append(b.deleted, &model.DeletedRecord{
		Task:         *st,
		DeletedFrom:  model.FromSubtask,
		ParentTaskID: parentID,
	})
	b.log.WithFields(log.Fields{"op": "complete-subtask", "task_id": id, "parent_id": parentID}).Debug("subtask completed")
	return b.persist("complete-subtask")
}

// Complete dispatches to CompleteTask or CompleteSubtask depending on
// where id currently sits.
func (b *Board) Complete(id string) error {
	_, loc, ok := b.Find(id)
	if !ok {
		return b.miss("complete", "task", id)
	}
	if loc.IsSubtask() {
		return b.CompleteSubtask(loc.ParentID, id)
	}
	return b.CompleteTask(loc.Column, id)
}

// Restore takes the record id out of the bin and puts the task back, not
// completed. Subtask records go back under their parent, or to the back
// log when the parent is gone; column records go to their column, or the
// back log when it no longer resolves. If id is active again by then the
// restored copy gets a fresh id.
func (b *Board) Restore(id string) (*model.Task, error) {
	var rec *model.DeletedRecord
	kept := b.deleted[:0]
	for _, r := range b.deleted {
		if r.ID == id {
			if rec == nil {
				rec = r
			}
			continue
		}
		kept = append(kept, r)
	}
	if rec == nil {
		b.log.WithFields(log.Fields{"op": "restore", "kind": "deleted", "id": id}).Warn("lookup miss")
		return nil, &NotFoundError{Kind: "deleted", ID: id}
	}
	b.deleted = kept

	t := rec.Task.Clone()
	t.Completed = false
	t.Normalize()
	if _, _, taken := b.Find(t.ID); taken {
		fresh := b.ids.NewID()
		b.log.WithFields(log.Fields{"op": "restore", "task_id": t.ID, "new_id": fresh}).Warn("restored id already active, reassigning")
		t.ID = fresh
	}

	fields := log.Fields{"op": "restore", "task_id": t.ID}
	if rec.IsSubtask() {
		if parent, _, ok := b.Find(rec.ParentTaskID); ok {
			parent.AddSubtask(t)
			fields["parent_id"] = rec.ParentTaskID
			b.log.WithFields(fields).Debug("subtask restored")
			return t, b.persist("restore")
		}
		b.log.WithFields(log.Fields{"op": "restore", "kind": "parent", "id": rec.ParentTaskID}).Warn("parent gone, restoring to back log")
	}

	c := model.Column(rec.DeletedFrom)
	if !c.Valid() {
		c = model.BackLog
	}
	b.lists[c].AddTask(t)
	fields["column"] = c
	b.log.WithFields(fields).Debug("task restored")
	return t, b.persist("restore")
}

// ClearDeleted empties the bin for good and reports how many records went.
// An already empty bin is not re-saved.
func (b *Board) ClearDeleted() (int, error) {
	n := len(b.deleted)
	if n == 0 {
		return 0, nil
	}
	b.deleted = []*model.DeletedRecord{}
	b.log.WithFields(log.Fields{"op": "clear-deleted", "count": n}).Debug("bin cleared")
	return n, b.persist("clear-deleted")
}
