package model

// Task is a board entry. Subtasks keep insertion order.
type Task struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Completed   bool    `json:"completed"`
	Subtasks    []*Task `json:"subtasks"`
}

// NewTask returns an active task with no subtasks.
func NewTask(id, name, description, url string) *Task {
	return &Task{
		ID:          id,
		Name:        name,
		Description: description,
		URL:         url,
		Subtasks:    []*Task{},
	}
}

// AddSubtask appends st. Ids are not checked here.
func (t *Task) AddSubtask(st *Task) {
	t.Subtasks = append(t.Subtasks, st)
}

// ReorderSubtasks puts the direct subtasks in the order given by ids,
// with the same gap handling as TaskList.Reorder.
func (t *Task) ReorderSubtasks(ids []string) {
	t.Subtasks = reorder(t.Subtasks, ids)
}

// RemoveSubtask drops the direct subtask with id and returns it.
// Missing ids are a no-op.
func (t *Task) RemoveSubtask(id string) *Task {
	for i, st := range t.Subtasks {
		if st.ID == id {
			t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
			return st
		}
	}
	return nil
}

// Subtask returns the direct subtask with id, or nil.
func (t *Task) Subtask(id string) *Task {
	for _, st := range t.Subtasks {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// Clone deep-copies the task and all of its descendants.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	c.Subtasks = make([]*Task, 0, len(t.Subtasks))
	for _, st := range t.Subtasks {
		c.Subtasks = append(c.Subtasks, st.Clone())
	}
	return &c
}

// Walk visits t and every descendant depth-first. parent is nil for t.
// Returning false stops the walk.
func (t *Task) Walk(fn func(task, parent *Task) bool) bool {
	return t.walk(nil, fn)
}

func (t *Task) walk(parent *Task, fn func(task, parent *Task) bool) bool {
	if !fn(t, parent) {
		return false
	}
	for _, st := range t.Subtasks {
		if !st.walk(t, fn) {
			return false
		}
	}
	return true
}

// Normalize replaces nil subtask slices with empty ones so snapshots
// always carry "subtasks": [].
func (t *Task) Normalize() {
	if t.Subtasks == nil {
		t.Subtasks = []*Task{}
	}
	for _, st := range t.Subtasks {
		st.Normalize()
	}
}
