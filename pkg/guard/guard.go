// Package guard tracks borrows against a single-owner container at run time.
//
// A Guard is not safe for concurrent use. It does not protect against data
// races, it protects against aliasing: a mutable handle must never coexist
// with any other handle into the same container.
package guard

import (
	"github.com/pkg/errors"
)

var (
	ErrBorrowed    = errors.New("list is borrowed")
	ErrMutBorrowed = errors.New("list is mutably borrowed")
	ErrTornDown    = errors.New("list has been torn down")
	ErrMoved       = errors.New("list has been moved")
)

type State int

const (
	Created State = iota
	Populated
	Moved
	TornDown
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Populated:
		return "populated"
	case Moved:
		return "moved"
	case TornDown:
		return "torn-down"
	}

	return "unknown"
}

// Guard zero value is a live, unborrowed container in the Created state.
type Guard struct {
	state   State
	readers int
	writer  bool
}

func (g *Guard) State() State {
	return g.state
}

func (g *Guard) Readers() int {
	return g.readers
}

func (g *Guard) Writer() bool {
	return g.writer
}

// Alive reports whether the container can still be used at all.
func (g *Guard) Alive(op string) error {
	switch g.state {
	case TornDown:
		return errors.Wrap(ErrTornDown, op)
	case Moved:
		return errors.Wrap(ErrMoved, op)
	}

	return nil
}

// Shared reports whether a read-only access may happen now.
func (g *Guard) Shared(op string) error {
	if err := g.Alive(op); err != nil {
		return err
	}

	if g.writer {
		return errors.Wrap(ErrMutBorrowed, op)
	}

	return nil
}

// Exclusive reports whether a mutating access may happen now.
func (g *Guard) Exclusive(op string) error {
	if err := g.Shared(op); err != nil {
		return err
	}

	if g.readers > 0 {
		return errors.Wrapf(ErrBorrowed, "%s: %d live readers", op, g.readers)
	}

	return nil
}

// Touch moves a Created container to Populated.
func (g *Guard) Touch() {
	if g.state == Created {
		g.state = Populated
	}
}

func (g *Guard) Borrow(op string) (*Borrow, error) {
	if err := g.Shared(op); err != nil {
		return nil, err
	}

	g.readers++
	return &Borrow{guard: g}, nil
}

func (g *Guard) BorrowMut(op string) (*Borrow, error) {
	if err := g.Exclusive(op); err != nil {
		return nil, err
	}

	g.writer = true
	return &Borrow{guard: g, mut: true}, nil
}

// Move marks the container as having handed its contents to another owner.
func (g *Guard) Move(op string) error {
	if err := g.Exclusive(op); err != nil {
		return err
	}

	g.state = Moved
	return nil
}

func (g *Guard) TearDown(op string) error {
	if err := g.Exclusive(op); err != nil {
		return err
	}

	g.state = TornDown
	return nil
}

// Must panics with err when it is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// region Borrow
type Borrow struct {
	guard    *Guard
	mut      bool
	released bool
}

func (b *Borrow) Mut() bool {
	return b.mut
}

func (b *Borrow) Released() bool {
	return b == nil || b.released
}

// Release ends the borrow. Releasing twice is a no-op.
func (b *Borrow) Release() {
	if b.Released() {
		return
	}

	b.released = true
	if b.mut {
		b.guard.writer = false
		return
	}

	b.guard.readers--
}

// endregion
