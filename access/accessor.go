package access

import (
	"iter"
	"reflect"
	"sync"

	"fieldname-generator/schema"
	"fieldname-generator/variant"
)

// registry caches default accessors, keyed by struct type.
var registry sync.Map // map[reflect.Type]any (*Accessor[T])

// Accessor dispatches field names of struct type T to typed views.
// It is immutable after construction and safe for concurrent use.
type Accessor[T any] struct {
	typ     reflect.Type
	set     *variant.Set
	entries map[string]entry
	names   []string
}

type entry struct {
	index int
	c     *variant.Case
}

// New builds an uncached accessor for T with the given customization.
func New[T any](opts ...schema.Option) (*Accessor[T], error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, &schema.ShapeError{Record: typ.String(), Err: schema.ErrNotStruct}
	}

	rec, err := schema.Extract(typ, opts...)
	if err != nil {
		return nil, err
	}

	set, err := variant.Synthesize(rec)
	if err != nil {
		return nil, err
	}

	a := &Accessor[T]{
		typ:     typ,
		set:     set,
		entries: make(map[string]entry, len(rec.Fields)),
		names:   rec.FieldNames(),
	}

	for _, f := range rec.Fields {
		c, _ := set.CaseOf(f.Name)
		a.entries[f.Name] = entry{index: f.Index, c: c}
	}

	return a, nil
}

// For returns the registered accessor for T, building and caching a default
// one on first use.
func For[T any]() (*Accessor[T], error) {
	typ := reflect.TypeFor[T]()
	if a, ok := registry.Load(typ); ok {
		return a.(*Accessor[T]), nil
	}

	a, err := New[T]()
	if err != nil {
		return nil, err
	}

	actual, _ := registry.LoadOrStore(typ, a)

	return actual.(*Accessor[T]), nil
}

// Register builds an accessor for T with the given customization and makes
// it the one returned by For, replacing any earlier registration.
func Register[T any](opts ...schema.Option) (*Accessor[T], error) {
	a, err := New[T](opts...)
	if err != nil {
		return nil, err
	}

	registry.Store(a.typ, a)

	return a, nil
}

// Variants returns the synthesized unions of T.
func (a *Accessor[T]) Variants() *variant.Set {
	return a.set
}

// Names returns the field names of T in declaration order.
func (a *Accessor[T]) Names() []string {
	return append([]string{}, a.names...)
}

// Field returns a shared view of the named field, or false if T has no such
// field. Matching is exact and case-sensitive.
func (a *Accessor[T]) Field(rec *T, name string) (Shared, bool) {
	v, ok := a.view(rec, name, a.set.Shared)
	return Shared{v}, ok
}

// FieldMut returns an exclusive view of the named field, or false if T has no
// such field. Writes through the view are visible on rec immediately.
func (a *Accessor[T]) FieldMut(rec *T, name string) (Exclusive, bool) {
	v, ok := a.view(rec, name, a.set.Exclusive)
	return Exclusive{v}, ok
}

// All iterates over (name, shared view) pairs in declaration order.
func (a *Accessor[T]) All(rec *T) iter.Seq2[string, Shared] {
	return func(yield func(string, Shared) bool) {
		for _, name := range a.names {
			s, _ := a.Field(rec, name)
			if !yield(name, s) {
				return
			}
		}
	}
}

func (a *Accessor[T]) view(rec *T, name string, u *variant.Union) (view, bool) {
	e, ok := a.entries[name]
	if !ok {
		return view{}, false
	}

	if rec == nil {
		panic("access: field lookup on nil " + a.typ.String())
	}

	return view{
		field: name,
		c:     e.c,
		union: u,
		v:     reflect.ValueOf(rec).Elem().Field(e.index),
	}, true
}
