package model

import "fmt"

// Column identifies one of the three fixed board lists.
type Column string

const (
	OnIt    Column = "on-it"
	NextUp  Column = "next-up"
	BackLog Column = "back-log"
)

// Columns lists every column in display order.
var Columns = []Column{OnIt, NextUp, BackLog}

// Valid reports whether c is one of the fixed columns.
func (c Column) Valid() bool {
	switch c {
	case OnIt, NextUp, BackLog:
		return true
	}
	return false
}

// Title is the human label used in headers.
func (c Column) Title() string {
	switch c {
	case OnIt:
		return "On It"
	case NextUp:
		return "Next Up"
	case BackLog:
		return "Back Log"
	}
	return string(c)
}

// ParseColumn accepts the canonical id plus a few loose spellings
// ("onit", "next_up", "backlog").
func ParseColumn(s string) (Column, error) {
	switch s {
	case "on-it", "onit", "on_it":
		return OnIt, nil
	case "next-up", "nextup", "next_up":
		return NextUp, nil
	case "back-log", "backlog", "back_log":
		return BackLog, nil
	}
	return "", fmt.Errorf("unknown column %q (want on-it, next-up or back-log)", s)
}
