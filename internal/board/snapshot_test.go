package board

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Makepad-fr/tadaboard/internal/model"
)

func TestScenarioLoadEmptyStore(t *testing.T) {
	b, _, _ := newTestBoard(t)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, c := range model.Columns {
		if l := b.List(c); l == nil || len(l.Tasks) != 0 {
			t.Fatalf("expected empty %s list", c)
		}
	}
	if len(b.Deleted()) != 0 {
		t.Fatalf("expected empty bin")
	}
}

func buildBoard(t *testing.T) (*Board, *memStore) {
	t.Helper()
	b, st, _ := newTestBoard(t)
	p, err := b.CreateTask(model.OnIt, Fields{Name: "Parent", Description: "<p>x &amp; y</p>", URL: "https://p.test"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s := mustSub(t, b, p.ID, "Child")
	mustSub(t, b, s.ID, "Grandchild")
	mustSub(t, b, p.ID, "Child 2")
	mustCreate(t, b, model.NextUp, "Next")
	gone := mustCreate(t, b, model.BackLog, "Gone")
	doneSub := mustSub(t, b, p.ID, "Done sub")
	if err := b.Complete(gone.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := b.Complete(doneSub.ID); err != nil {
		t.Fatalf("complete subtask: %v", err)
	}
	return b, st
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b, st := buildBoard(t)

	reloaded := New(st, WithLogger(b.log))
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(reloaded.Snapshot(), b.Snapshot()) {
		t.Fatalf("reloaded board differs")
	}
	rec := reloaded.DeletedRecord(b.Deleted()[1].ID)
	if rec == nil || rec.ParentTaskID == "" || rec.DeletedFrom != model.FromSubtask {
		t.Fatalf("subtask provenance lost: %#v", rec)
	}
}

func TestEncodeDecodeEncodeIsStable(t *testing.T) {
	b, _ := buildBoard(t)
	first, err := EncodeSnapshot(b.Snapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeSnapshot(first)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	second, err := EncodeSnapshot(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("round trip not stable:\n%s\n%s", first, second)
	}
}

func TestDecodeBrowserSnapshot(t *testing.T) {
	blob := []byte(`{
	  "lists": {
	    "on-it": {"type": "on-it", "tasks": [
	      {"id": "1700000000000", "name": "Legacy", "description": "", "url": "", "completed": false,
	       "subtasks": [{"id": "1700000000001", "name": "Sub", "description": "", "url": "", "completed": false, "subtasks": []}]}
	    ]},
	    "back-log": {"type": "back-log", "tasks": []},
	    "archive": {"type": "archive", "tasks": [{"id": "x", "name": "X", "subtasks": []}]}
	  },
	  "deletedTasks": [
	    {"id": "1700000000002", "name": "Old", "description": "", "url": "", "completed": true, "subtasks": null, "deletedFrom": "next-up"}
	  ]
	}`)
	s, err := DecodeSnapshot(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(s.Lists) != 3 {
		t.Fatalf("expected exactly three lists, got %d", len(s.Lists))
	}
	if l := s.Lists["next-up"]; l == nil || len(l.Tasks) != 0 || l.Column != model.NextUp {
		t.Fatalf("missing column should decode empty: %#v", l)
	}
	on := s.Lists["on-it"]
	if len(on.Tasks) != 1 || len(on.Tasks[0].Subtasks) != 1 || on.Tasks[0].Subtasks[0].ID != "1700000000001" {
		t.Fatalf("unexpected on-it list: %#v", on)
	}
	if len(s.DeletedTasks) != 1 || s.DeletedTasks[0].Subtasks == nil || s.DeletedTasks[0].DeletedFrom != "next-up" {
		t.Fatalf("unexpected bin: %#v", s.DeletedTasks)
	}
}

func TestLoadReportsDecodeAndStoreErrors(t *testing.T) {
	b, st, _ := newTestBoard(t)
	st.data[DefaultKey] = []byte("{not json")
	err := b.Load(context.Background())
	var pe *PersistenceError
	if !errors.As(err, &pe) || pe.Op != "decode" {
		t.Fatalf("expected decode error, got %v", err)
	}

	st.failGet = errQuota
	if err := b.Load(context.Background()); !errors.Is(err, errQuota) || !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestLoadReplacesState(t *testing.T) {
	b, st := buildBoard(t)
	fresh := New(st, WithLogger(b.log), WithIDs(seqIDs()))
	mustCreate(t, fresh, model.NextUp, "Scratch")

	// Scratch was saved over the old snapshot; reload from the original
	blob, err := EncodeSnapshot(b.Snapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	st.data[DefaultKey] = blob
	if err := fresh.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, task := range fresh.Tasks(model.NextUp) {
		if task.Name == "Scratch" {
			t.Fatalf("load should replace the in-memory board")
		}
	}
}

func TestCustomKey(t *testing.T) {
	st := newMemStore()
	b := New(st, WithKey("work"), WithIDs(seqIDs()))
	if _, err := b.CreateTask(model.OnIt, Fields{Name: "A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := st.data["work"]; !ok {
		t.Fatalf("expected snapshot under custom key, got keys %v", st.data)
	}
}

func TestInMemoryBoard(t *testing.T) {
	b := New(nil, WithIDs(seqIDs()))
	if _, err := b.CreateTask(model.OnIt, Fields{Name: "A"}); err != nil {
		t.Fatalf("create without store should not fail: %v", err)
	}
	if err := b.Save(context.Background()); !errors.Is(err, ErrPersistence) {
		t.Fatalf("explicit save without store should fail, got %v", err)
	}
}
