package board

import "github.com/Makepad-fr/tadaboard/internal/model"

// EditingTarget is what an editor panel is bound to: a draft that does
// not exist yet, or an existing task.
type EditingTarget interface {
	editingTarget()
}

// NewTask is a draft. With ParentID set it becomes a subtask of that
// task, otherwise a top-level task in Column.
type NewTask struct {
	Column   model.Column
	ParentID string
}

// ExistingTask points at a task already on the board.
type ExistingTask struct {
	ID string
}

func (NewTask) editingTarget()      {}
func (ExistingTask) editingTarget() {}

// Submit commits an editor panel: drafts are created, existing tasks
// edited. In lenient mode an existing target that vanished yields a nil task.
func (b *Board) Submit(target EditingTarget, f Fields) (*model.Task, error) {
	switch tg := target.(type) {
	case NewTask:
		if tg.ParentID != "" {
			return b.CreateSubtask(tg.ParentID, f)
		}
		return b.CreateTask(tg.Column, f)
	case ExistingTask:
		if err := b.EditTask(tg.ID, f); err != nil {
			return nil, err
		}
		t, _, _ := b.Find(tg.ID)
		return t, nil
	}
	return nil, &ValidationError{Field: "target", Reason: "unsupported editing target"}
}

// EnsureSaved turns a top-level draft into a real task so subtasks can be
// attached to it before the panel is submitted. Existing targets and
// subtask drafts come back unchanged.
func (b *Board) EnsureSaved(target EditingTarget, f Fields) (EditingTarget, error) {
	tg, ok := target.(NewTask)
	if !ok || tg.ParentID != "" {
		return target, nil
	}
	t, err := b.CreateTask(tg.Column, f)
	if t == nil {
		return target, err
	}
	return ExistingTask{ID: t.ID}, err
}
