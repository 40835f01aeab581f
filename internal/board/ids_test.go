package board

import "testing"

func TestUUIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	var g UUIDs
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		if len(id) != 36 {
			t.Fatalf("unexpected id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
