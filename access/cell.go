package access

import (
	"iter"
	"sync/atomic"
)

// Cell guards a record instance with run-time borrow rules: any number of
// shared borrows, or exactly one exclusive borrow. Conflicting requests fail
// immediately with ErrBorrowed instead of blocking.
//
// The record must only be accessed through the cell while it is guarded.
type Cell[T any] struct {
	acc *Accessor[T]
	rec *T
	// state is the number of shared borrows, or -1 while borrowed exclusively.
	state atomic.Int64
}

// NewCell guards rec using the registered accessor for T.
func NewCell[T any](rec *T) (*Cell[T], error) {
	acc, err := For[T]()
	if err != nil {
		return nil, err
	}

	return NewCellWith(acc, rec), nil
}

// NewCellWith guards rec using the given accessor.
func NewCellWith[T any](acc *Accessor[T], rec *T) *Cell[T] {
	if rec == nil {
		panic("access: NewCell with nil record")
	}

	return &Cell[T]{acc: acc, rec: rec}
}

// Accessor returns the accessor the cell dispatches through.
func (c *Cell[T]) Accessor() *Accessor[T] {
	return c.acc
}

// Borrow takes a shared borrow. It fails while an exclusive borrow is held.
func (c *Cell[T]) Borrow() (*Ref[T], error) {
	for {
		n := c.state.Load()
		if n < 0 {
			return nil, ErrBorrowed
		}

		if c.state.CompareAndSwap(n, n+1) {
			return &Ref[T]{cell: c}, nil
		}
	}
}

// BorrowMut takes the exclusive borrow. It fails while any other borrow is
// held.
func (c *Cell[T]) BorrowMut() (*RefMut[T], error) {
	if !c.state.CompareAndSwap(0, -1) {
		return nil, ErrBorrowed
	}

	return &RefMut[T]{cell: c}, nil
}

// Ref is a shared borrow of a Cell.
type Ref[T any] struct {
	cell     *Cell[T]
	released atomic.Bool
}

// Field returns a shared view of the named field.
func (r *Ref[T]) Field(name string) (Shared, bool) {
	r.check()

	s, ok := r.cell.acc.Field(r.cell.rec, name)
	s.released = &r.released

	return s, ok
}

// All iterates over the record's fields in declaration order. Ranging over
// the sequence after Release panics.
func (r *Ref[T]) All() iter.Seq2[string, Shared] {
	r.check()

	return guardAll(r.cell.acc.All(r.cell.rec), &r.released, r.check)
}

// Release ends the borrow. Views obtained from it must not be used
// afterwards. Release is idempotent.
func (r *Ref[T]) Release() {
	if r.released.CompareAndSwap(false, true) {
		r.cell.state.Add(-1)
	}
}

func (r *Ref[T]) check() {
	if r.released.Load() {
		panic("access: use of released shared borrow")
	}
}

// RefMut is the exclusive borrow of a Cell.
type RefMut[T any] struct {
	cell     *Cell[T]
	released atomic.Bool
}

// Field returns a shared view of the named field.
func (r *RefMut[T]) Field(name string) (Shared, bool) {
	r.check()

	s, ok := r.cell.acc.Field(r.cell.rec, name)
	s.released = &r.released

	return s, ok
}

// FieldMut returns an exclusive view of the named field.
func (r *RefMut[T]) FieldMut(name string) (Exclusive, bool) {
	r.check()

	e, ok := r.cell.acc.FieldMut(r.cell.rec, name)
	e.released = &r.released

	return e, ok
}

// All iterates over the record's fields in declaration order. Ranging over
// the sequence after Release panics.
func (r *RefMut[T]) All() iter.Seq2[string, Shared] {
	r.check()

	return guardAll(r.cell.acc.All(r.cell.rec), &r.released, r.check)
}

// Release ends the borrow. Views obtained from it must not be used
// afterwards. Release is idempotent.
func (r *RefMut[T]) Release() {
	if r.released.CompareAndSwap(false, true) {
		r.cell.state.Store(0)
	}
}

func (r *RefMut[T]) check() {
	if r.released.Load() {
		panic("access: use of released exclusive borrow")
	}
}

func guardAll(seq iter.Seq2[string, Shared], released *atomic.Bool, check func()) iter.Seq2[string, Shared] {
	return func(yield func(string, Shared) bool) {
		for name, s := range seq {
			check()

			s.released = released
			if !yield(name, s) {
				return
			}
		}
	}
}
