package board

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tadaboard/internal/model"
)

// Snapshot is the persisted shape of a board:
//
//	{"lists": {"on-it": {"columnId": ..., "tasks": [...]}, ...}, "deletedTasks": [...]}
type Snapshot struct {
	Lists        map[string]*model.TaskList `json:"lists"`
	DeletedTasks []*model.DeletedRecord     `json:"deletedTasks"`
}

// wireList takes the column from its map key, so both "columnId" and the
// "type" field older browser snapshots carry are ignored.
type wireList struct {
	Tasks []*model.Task `json:"tasks"`
}

type wireSnapshot struct {
	Lists        map[string]*wireList   `json:"lists"`
	DeletedTasks []*model.DeletedRecord `json:"deletedTasks"`
}

// codec matches encoding/json output (sorted keys, HTML escaping) so
// snapshots diff cleanly and stay readable by any JSON tool.
var codec = sonic.ConfigStd

// EncodeSnapshot renders s as JSON.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	return codec.Marshal(s)
}

// DecodeSnapshot parses a blob. Columns missing from the blob come back
// empty; unknown column keys are dropped; null subtask lists become empty.
func DecodeSnapshot(blob []byte) (*Snapshot, error) {
	var w wireSnapshot
	if err := codec.Unmarshal(blob, &w); err != nil {
		return nil, err
	}
	s := &Snapshot{
		Lists:        make(map[string]*model.TaskList, len(model.Columns)),
		DeletedTasks: []*model.DeletedRecord{},
	}
	for _, c := range model.Columns {
		l := model.NewTaskList(c)
		if wl := w.Lists[string(c)]; wl != nil {
			for _, t := range wl.Tasks {
				if t == nil {
					continue
				}
				t.Normalize()
				l.Tasks = append(l.Tasks, t)
			}
		}
		s.Lists[string(c)] = l
	}
	for _, r := range w.DeletedTasks {
		if r == nil {
			continue
		}
		r.Normalize()
		s.DeletedTasks = append(s.DeletedTasks, r)
	}
	return s, nil
}

// Snapshot captures the current board. The result shares task pointers
// with the board; encode it before mutating again.
func (b *Board) Snapshot() *Snapshot {
	s := &Snapshot{
		Lists:        make(map[string]*model.TaskList, len(model.Columns)),
		DeletedTasks: b.deleted,
	}
	for _, c := range model.Columns {
		s.Lists[string(c)] = b.lists[c]
	}
	return s
}

// apply replaces the whole board with s.
func (b *Board) apply(s *Snapshot) {
	b.reset()
	for _, c := range model.Columns {
		if l := s.Lists[string(c)]; l != nil {
			b.lists[c].Tasks = append(b.lists[c].Tasks, l.Tasks...)
		}
	}
	b.deleted = append(b.deleted, s.DeletedTasks...)
}

// Save writes the full snapshot under the board key.
func (b *Board) Save(ctx context.Context) error {
	if b.store == nil {
		return &PersistenceError{Op: "save", Err: fmt.Errorf("no store configured")}
	}
	blob, err := EncodeSnapshot(b.Snapshot())
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := b.store.Put(ctx, b.key, blob); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Load replaces the board with the stored snapshot. An absent key leaves
// the three empty columns and the empty bin as they are.
func (b *Board) Load(ctx context.Context) error {
	if b.store == nil {
		return &PersistenceError{Op: "load", Err: fmt.Errorf("no store configured")}
	}
	blob, ok, err := b.store.Get(ctx, b.key)
	if err != nil {
		b.log.WithField("key", b.key).WithError(err).Error("load board")
		return &PersistenceError{Op: "load", Err: err}
	}
	if !ok || len(blob) == 0 {
		b.log.WithField("key", b.key).Debug("no stored board, starting empty")
		return nil
	}
	s, err := DecodeSnapshot(blob)
	if err != nil {
		b.log.WithField("key", b.key).WithError(err).Error("decode board")
		return &PersistenceError{Op: "decode", Err: err}
	}
	b.apply(s)
	st := b.Stats()
	b.log.WithFields(log.Fields{
		"key":      b.key,
		"on_it":    st.Tasks[model.OnIt],
		"next_up":  st.Tasks[model.NextUp],
		"back_log": st.Tasks[model.BackLog],
		"deleted":  st.Deleted,
	}).Debug("board loaded")
	return nil
}
