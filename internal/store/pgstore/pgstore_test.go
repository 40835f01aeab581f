package pgstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
)

// Runs only against a real server: TADA_TEST_POSTGRES_DSN=postgres://...
func testStore(t *testing.T) *PgStore {
	t.Helper()
	dsn := os.Getenv("TADA_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TADA_TEST_POSTGRES_DSN not set")
	}
	s, err := Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	key := "test-" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = s.pool.Exec(context.Background(), `DELETE FROM tada_kv WHERE key = $1`, key)
	})

	if _, ok, err := s.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}
	if err := s.Put(ctx, key, []byte("one")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, key, []byte("two")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	b, ok, err := s.Get(ctx, key)
	if err != nil || !ok || string(b) != "two" {
		t.Fatalf("get: ok=%v err=%v blob=%q", ok, err, b)
	}
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}
