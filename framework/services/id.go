package services

import (
	"fmt"
	"sync/atomic"
)

// sequence backs every ID handed out in this process; it is never reset.
var sequence atomic.Uint64

// ID identifies one registration. It is only produced by Register, compares
// equal to nothing but itself, and is never reused.
type ID struct {
	seq     uint64
	service string
}

func newID(service string) ID {
	return ID{seq: sequence.Add(1), service: service}
}

// Valid reports whether id was produced by a registry. The zero ID is not.
func (id ID) Valid() bool { return id.seq != 0 }

// Service returns the name the registration was made under.
func (id ID) Service() string { return id.service }

func (id ID) String() string {
	if !id.Valid() {
		return "ID(invalid)"
	}
	return fmt.Sprintf("ID(%d: registration for the service %q)", id.seq, id.service)
}
