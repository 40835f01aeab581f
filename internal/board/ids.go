package board

import "github.com/google/uuid"

// IDGenerator hands out task ids. Ids must never repeat.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// UUIDs issues random v4 UUIDs. Random bits lead, so short prefixes shown
// by the CLI stay unique in practice.
type UUIDs struct{}

func (UUIDs) NewID() string { return uuid.NewString() }
