package model

// FromSubtask is the provenance marker for records removed from a parent.
const FromSubtask = "subtask"

// DeletedRecord is a task snapshot kept in the bin so it can be restored.
// DeletedFrom is a column id or FromSubtask; ParentTaskID is set for the latter.
type DeletedRecord struct {
	Task
	DeletedFrom  string `json:"deletedFrom"`
	ParentTaskID string `json:"parentTaskId,omitempty"`
}

func (r *DeletedRecord) IsSubtask() bool {
	return r.DeletedFrom == FromSubtask && r.ParentTaskID != ""
}
