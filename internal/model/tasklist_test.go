package model

import (
	"reflect"
	"testing"
)

func TestTaskListAppendOrder(t *testing.T) {
	l := NewTaskList(OnIt)
	for _, id := range []string{"a", "b", "c", "d"} {
		l.AddTask(NewTask(id, id, "", ""))
	}
	l.RemoveTask("b")
	l.RemoveTask("zzz")
	l.AddTask(NewTask("e", "e", "", ""))
	if got := ids(l.Tasks); !reflect.DeepEqual(got, []string{"a", "c", "d", "e"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if l.GetTask("c") == nil || l.GetTask("b") != nil {
		t.Fatalf("GetTask returned wrong results")
	}
}

func TestTaskListGetTaskIgnoresSubtasks(t *testing.T) {
	l := NewTaskList(NextUp)
	p := NewTask("p", "p", "", "")
	p.AddSubtask(NewTask("s", "s", "", ""))
	l.AddTask(p)
	if l.GetTask("s") != nil {
		t.Fatalf("GetTask must only search top-level tasks")
	}
}

func TestTaskListInsertBefore(t *testing.T) {
	l := NewTaskList(BackLog)
	l.AddTask(NewTask("a", "a", "", ""))
	l.AddTask(NewTask("b", "b", "", ""))
	l.InsertBefore("b", NewTask("x", "x", "", ""))
	l.InsertBefore("", NewTask("y", "y", "", ""))
	l.InsertBefore("missing", NewTask("z", "z", "", ""))
	l.InsertBefore("a", NewTask("w", "w", "", ""))
	if got := ids(l.Tasks); !reflect.DeepEqual(got, []string{"w", "a", "x", "b", "y", "z"}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestTaskListReorder(t *testing.T) {
	cases := []struct {
		name  string
		order []string
		want  []string
	}{
		{"full", []string{"c", "a", "b"}, []string{"c", "a", "b"}},
		{"partial keeps rest", []string{"c"}, []string{"c", "a", "b"}},
		{"unknown and repeated ids", []string{"b", "nope", "b", "a"}, []string{"b", "a", "c"}},
		{"empty", nil, []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewTaskList(OnIt)
			for _, id := range []string{"a", "b", "c"} {
				l.AddTask(NewTask(id, id, "", ""))
			}
			l.Reorder(tc.order)
			if got := ids(l.Tasks); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
