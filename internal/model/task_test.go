package model

import (
	"reflect"
	"testing"
)

func ids(ts []*Task) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func TestTaskAddRemoveSubtask(t *testing.T) {
	parent := NewTask("p", "Parent", "", "")
	parent.AddSubtask(NewTask("a", "A", "", ""))
	parent.AddSubtask(NewTask("b", "B", "", ""))
	parent.AddSubtask(NewTask("c", "C", "", ""))

	if got := parent.RemoveSubtask("b"); got == nil || got.ID != "b" {
		t.Fatalf("expected to remove b, got %#v", got)
	}
	if got := parent.RemoveSubtask("missing"); got != nil {
		t.Fatalf("expected nil for missing id, got %#v", got)
	}
	if got := ids(parent.Subtasks); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("unexpected subtasks: %v", got)
	}
}

func TestTaskReorderSubtasks(t *testing.T) {
	parent := NewTask("p", "Parent", "", "")
	for _, id := range []string{"a", "b", "c", "d"} {
		parent.AddSubtask(NewTask(id, id, "", ""))
	}
	parent.ReorderSubtasks([]string{"c", "missing", "a", "c"})
	if got := ids(parent.Subtasks); !reflect.DeepEqual(got, []string{"c", "a", "b", "d"}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestTaskCloneIsDeep(t *testing.T) {
	orig := NewTask("p", "Parent", "<p>x</p>", "https://example.com")
	child := NewTask("c", "Child", "", "")
	child.AddSubtask(NewTask("g", "Grandchild", "", ""))
	orig.AddSubtask(child)

	cp := orig.Clone()
	if !reflect.DeepEqual(cp, orig) {
		t.Fatalf("clone differs: %#v", cp)
	}
	cp.Subtasks[0].Subtasks[0].Name = "changed"
	if orig.Subtasks[0].Subtasks[0].Name != "Grandchild" {
		t.Fatalf("clone shares nested subtasks with original")
	}
}

func TestTaskWalk(t *testing.T) {
	root := NewTask("r", "R", "", "")
	a := NewTask("a", "A", "", "")
	a.AddSubtask(NewTask("a1", "A1", "", ""))
	root.AddSubtask(a)
	root.AddSubtask(NewTask("b", "B", "", ""))

	var visited []string
	parents := map[string]string{}
	root.Walk(func(task, parent *Task) bool {
		visited = append(visited, task.ID)
		if parent != nil {
			parents[task.ID] = parent.ID
		}
		return true
	})
	if !reflect.DeepEqual(visited, []string{"r", "a", "a1", "b"}) {
		t.Fatalf("unexpected walk order: %v", visited)
	}
	if parents["a1"] != "a" || parents["b"] != "r" {
		t.Fatalf("unexpected parents: %v", parents)
	}
	var stopped []string
	root.Walk(func(task, _ *Task) bool {
		stopped = append(stopped, task.ID)
		return task.ID != "a"
	})
	if !reflect.DeepEqual(stopped, []string{"r", "a"}) {
		t.Fatalf("walk did not stop: %v", stopped)
	}
}

func TestParseColumn(t *testing.T) {
	cases := map[string]Column{
		"on-it":    OnIt,
		"onit":     OnIt,
		"next_up":  NextUp,
		"backlog":  BackLog,
		"back-log": BackLog,
	}
	for in, want := range cases {
		got, err := ParseColumn(in)
		if err != nil || got != want {
			t.Fatalf("ParseColumn(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseColumn("done"); err == nil {
		t.Fatalf("expected error for unknown column")
	}
	if Column("done").Valid() {
		t.Fatalf("unexpected valid column")
	}
}

func TestSummary(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"<p><br></p>", ""},
		{"<p>Hello   world</p>", "Hello world..."},
		{"<ul><li>one</li><li>two</li></ul>", "• one • two..."},
		{"<p>a &amp; b</p>", "a & b..."},
		{"<p>" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "XYZ</p>",
			"abcdefghij" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "..."},
	}
	for _, tc := range cases {
		if got := Summary(tc.in); got != tc.want {
			t.Fatalf("Summary(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
