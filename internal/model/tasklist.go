package model

// TaskList is the ordered set of top-level tasks in one column.
type TaskList struct {
	Column Column  `json:"columnId"`
	Tasks  []*Task `json:"tasks"`
}

func NewTaskList(c Column) *TaskList {
	return &TaskList{Column: c, Tasks: []*Task{}}
}

// AddTask appends t at the tail.
func (l *TaskList) AddTask(t *Task) {
	l.Tasks = append(l.Tasks, t)
}

// InsertBefore places t in front of the task with beforeID.
// An empty or unknown beforeID appends.
func (l *TaskList) InsertBefore(beforeID string, t *Task) {
	i := l.Index(beforeID)
	if beforeID == "" || i < 0 {
		l.AddTask(t)
		return
	}
	l.Tasks = append(l.Tasks, nil)
	copy(l.Tasks[i+1:], l.Tasks[i:])
	l.Tasks[i] = t
}

// RemoveTask filters out the task with id and returns it (nil if absent).
func (l *TaskList) RemoveTask(id string) *Task {
	i := l.Index(id)
	if i < 0 {
		return nil
	}
	t := l.Tasks[i]
	l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
	return t
}

// GetTask looks only at top-level tasks.
func (l *TaskList) GetTask(id string) *Task {
	if i := l.Index(id); i >= 0 {
		return l.Tasks[i]
	}
	return nil
}

func (l *TaskList) Index(id string) int {
	for i, t := range l.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Len is the number of top-level tasks.
func (l *TaskList) Len() int { return len(l.Tasks) }

// Reorder rebuilds the list in the order given by ids. Unknown and
// repeated ids are ignored; tasks the caller left out keep their
// relative order after the ordered ones.
func (l *TaskList) Reorder(ids []string) {
	l.Tasks = reorder(l.Tasks, ids)
}

func reorder(tasks []*Task, ids []string) []*Task {
	byID := make(map[string]*Task, len(tasks))
	for _, t := range tasks {
		if _, dup := byID[t.ID]; !dup {
			byID[t.ID] = t
		}
	}
	seen := make(map[string]bool, len(ids))
	out := make([]*Task, 0, len(tasks))
	for _, id := range ids {
		if t, ok := byID[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, t)
		}
	}
	for _, t := range tasks {
		if !seen[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
