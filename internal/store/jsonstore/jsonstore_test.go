package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b, ok, err := s.Get(context.Background(), "taskManager")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || b != nil {
		t.Fatalf("expected absent key, got ok=%v blob=%q", ok, b)
	}
}

func TestPutThenGet(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "nested"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()
	if err := s.Put(ctx, "taskManager", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "taskManager", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, ok, err := s.Get(ctx, "taskManager")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(b) != `{"a":2}` {
		t.Fatalf("unexpected blob %q", b)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "taskManager.json" {
		t.Fatalf("expected only the data file, got %v", entries)
	}
}

func TestRejectsPathKeys(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := s.Put(context.Background(), key, []byte("x")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestPathMatchesStoredFile(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Put(context.Background(), "board", []byte("{}")); err != nil {
		t.Fatalf("put: %v", err)
	}
	p, err := Path(dir, "board")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if p != filepath.Join(dir, "board.json") {
		t.Fatalf("path = %q", p)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("stored file not at Path: %v", err)
	}
	if _, err := Path(dir, "../escape"); err == nil {
		t.Fatal("expected error for a key with a separator")
	}
}
