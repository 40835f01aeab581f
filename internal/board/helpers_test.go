package board

import (
	"context"
	"errors"
	"fmt"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/Makepad-fr/tadaboard/internal/model"
)

type memStore struct {
	data    map[string][]byte
	puts    int
	failPut error
	failGet error
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.failGet != nil {
		return nil, false, m.failGet
	}
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *memStore) Put(_ context.Context, key string, blob []byte) error {
	if m.failPut != nil {
		return m.failPut
	}
	m.puts++
	m.data[key] = append([]byte(nil), blob...)
	return nil
}

var errQuota = errors.New("quota exceeded")

func seqIDs() IDGenerator {
	n := 0
	return IDFunc(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	})
}

func newTestBoard(t *testing.T, opts ...Option) (*Board, *memStore, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	st := newMemStore()
	base := []Option{WithLogger(logger), WithIDs(seqIDs())}
	return New(st, append(base, opts...)...), st, hook
}

func mustCreate(t *testing.T, b *Board, c model.Column, name string) *model.Task {
	t.Helper()
	task, err := b.CreateTask(c, Fields{Name: name})
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return task
}

func mustSub(t *testing.T, b *Board, parentID, name string) *model.Task {
	t.Helper()
	task, err := b.CreateSubtask(parentID, Fields{Name: name})
	if err != nil {
		t.Fatalf("create subtask %q: %v", name, err)
	}
	return task
}

func taskIDs(ts []*model.Task) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func lastEntry(hook *test.Hook, level log.Level) *log.Entry {
	entries := hook.AllEntries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Level == level {
			return entries[i]
		}
	}
	return nil
}
