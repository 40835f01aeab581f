// Package board owns the three task columns and the deleted bin, and
// writes a full snapshot to the configured store after every mutation.
package board

import (
	"context"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tadaboard/internal/model"
)

// Storage is the key-value contract the board persists through.
type Storage interface {
	Get(ctx context.Context, key string) (blob []byte, ok bool, err error)
	Put(ctx context.Context, key string, blob []byte) error
}

// DefaultKey is the key the snapshot lives under unless WithKey says otherwise.
const DefaultKey = "taskManager"

// Board is the aggregate root. It is not safe for concurrent use; the
// presentation layer drives it one event at a time.
type Board struct {
	lists   map[model.Column]*model.TaskList
	deleted []*model.DeletedRecord

	store  Storage
	key    string
	ctx    context.Context
	log    log.FieldLogger
	ids    IDGenerator
	strict bool
}

type Option func(*Board)

func WithLogger(l log.FieldLogger) Option { return func(b *Board) { b.log = l } }

func WithIDs(g IDGenerator) Option { return func(b *Board) { b.ids = g } }

func WithKey(key string) Option { return func(b *Board) { b.key = key } }

// WithContext sets the context used for write-through saves.
func WithContext(ctx context.Context) Option { return func(b *Board) { b.ctx = ctx } }

// WithStrictLookups makes unknown ids in move, demote, promote, edit and
// complete return a *NotFoundError instead of being ignored.
func WithStrictLookups() Option { return func(b *Board) { b.strict = true } }

// New returns an empty board. A nil store keeps the board in memory only.
func New(store Storage, opts ...Option) *Board {
	b := &Board{
		store: store,
		key:   DefaultKey,
		ctx:   context.Background(),
		log:   log.StandardLogger(),
		ids:   UUIDs{},
	}
	b.reset()
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) reset() {
	b.lists = make(map[model.Column]*model.TaskList, len(model.Columns))
	for _, c := range model.Columns {
		b.lists[c] = model.NewTaskList(c)
	}
	b.deleted = []*model.DeletedRecord{}
}

// List returns the live list for c, or nil for an unknown column.
func (b *Board) List(c model.Column) *model.TaskList {
	return b.lists[c]
}

// Tasks returns the top-level tasks of c in display order.
func (b *Board) Tasks(c model.Column) []*model.Task {
	if l := b.lists[c]; l != nil {
		return l.Tasks
	}
	return nil
}

// GetTask searches only the top level of column c.
func (b *Board) GetTask(c model.Column, id string) *model.Task {
	if l := b.lists[c]; l != nil {
		return l.GetTask(id)
	}
	return nil
}

// Deleted returns the bin, oldest first.
func (b *Board) Deleted() []*model.DeletedRecord {
	return b.deleted
}

// DeletedRecord returns the bin entry with id, or nil.
func (b *Board) DeletedRecord(id string) *model.DeletedRecord {
	for _, r := range b.deleted {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Location says where a task sits: its column, and its parent when nested.
type Location struct {
	Column   model.Column
	ParentID string
}

func (l Location) IsSubtask() bool { return l.ParentID != "" }

// Find locates an active task anywhere on the board.
func (b *Board) Find(id string) (*model.Task, Location, bool) {
	for _, c := range model.Columns {
		for _, top := range b.lists[c].Tasks {
			var (
				found *model.Task
				loc   Location
			)
			top.Walk(func(t, parent *model.Task) bool {
				if t.ID != id {
					return true
				}
				found = t
				loc = Location{Column: c}
				if parent != nil {
					loc.ParentID = parent.ID
				}
				return false
			})
			if found != nil {
				return found, loc, true
			}
		}
	}
	return nil, Location{}, false
}

// findTopLevel searches every column's top-level tasks.
func (b *Board) findTopLevel(id string) (*model.Task, model.Column) {
	for _, c := range model.Columns {
		if t := b.lists[c].GetTask(id); t != nil {
			return t, c
		}
	}
	return nil, ""
}

// ResolveID expands a unique id prefix across active and deleted tasks.
func (b *Board) ResolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", &NotFoundError{Kind: "task", ID: prefix}
	}
	matches := map[string]struct{}{}
	collect := func(id string) {
		if strings.HasPrefix(id, prefix) {
			matches[id] = struct{}{}
		}
	}
	for _, c := range model.Columns {
		for _, top := range b.lists[c].Tasks {
			top.Walk(func(t, _ *model.Task) bool {
				collect(t.ID)
				return true
			})
		}
	}
	for _, r := range b.deleted {
		collect(r.ID)
	}
	if _, ok := matches[prefix]; ok {
		return prefix, nil
	}
	switch len(matches) {
	case 0:
		return "", &NotFoundError{Kind: "task", ID: prefix}
	case 1:
		for id := range matches {
			return id, nil
		}
	}
	ids := make([]string, 0, len(matches))
	for id := range matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return "", &ValidationError{Field: "id", Reason: "ambiguous prefix " + prefix + " matches " + strings.Join(ids, ", ")}
}

// Stats counts what the headers show.
type Stats struct {
	Tasks    map[model.Column]int
	Subtasks map[model.Column]int
	Deleted  int
}

func (b *Board) Stats() Stats {
	s := Stats{
		Tasks:    make(map[model.Column]int, len(model.Columns)),
		Subtasks: make(map[model.Column]int, len(model.Columns)),
		Deleted:  len(b.deleted),
	}
	for _, c := range model.Columns {
		s.Tasks[c] = b.lists[c].Len()
		for _, top := range b.lists[c].Tasks {
			top.Walk(func(t, parent *model.Task) bool {
				if parent != nil {
					s.Subtasks[c]++
				}
				return true
			})
		}
	}
	return s
}

// miss handles a failed lookup: logged always, an error only in strict mode.
func (b *Board) miss(op, kind, id string) error {
	b.log.WithFields(log.Fields{"op": op, "kind": kind, "id": id}).Warn("lookup miss")
	if b.strict {
		return &NotFoundError{Kind: kind, ID: id}
	}
	return nil
}

// persist writes the snapshot. Failures are logged and returned, never
// rolled back.
func (b *Board) persist(op string) error {
	if b.store == nil {
		return nil
	}
	if err := b.Save(b.ctx); err != nil {
		b.log.WithFields(log.Fields{"op": op, "key": b.key}).WithError(err).Error("persist board")
		return err
	}
	return nil
}
