package access

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"fieldname-generator/variant"
)

type view struct {
	field string
	c     *variant.Case
	union *variant.Union
	v     reflect.Value
	// released is the owning borrow's flag; nil for unguarded views.
	released *atomic.Bool
}

func (v view) live() {
	if v.released != nil && v.released.Load() {
		panic("access: view of field " + v.field + " used after its borrow was released")
	}
}

// Field returns the name of the viewed field.
func (v view) Field() string {
	v.live()
	return v.field
}

// Tag returns the tag of the case the field belongs to.
func (v view) Tag() string {
	v.live()
	return v.c.Tag
}

// Case returns the variant case the field belongs to.
func (v view) Case() *variant.Case {
	v.live()
	return v.c
}

// Union returns the union the view is a case of.
func (v view) Union() *variant.Union {
	v.live()
	return v.union
}

// Type returns the field's declared type.
func (v view) Type() reflect.Type {
	v.live()
	return v.v.Type()
}

// Value returns the current value of the field.
func (v view) Value() any {
	v.live()
	return v.v.Interface()
}

// Format renders the view as Tag(value). It requires the stringer capability.
func (v view) Format() (string, error) {
	if err := v.require(variant.CapabilityStringer); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s(%v)", v.c.Tag, v.Value()), nil
}

// GoFormat renders the view as Union.Tag(%#v). It requires the gostringer
// capability.
func (v view) GoFormat() (string, error) {
	if err := v.require(variant.CapabilityGoStringer); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s.%s(%#v)", v.union.Name, v.c.Tag, v.Value()), nil
}

func (v view) equal(o view) (bool, error) {
	if err := v.require(variant.CapabilityEqual); err != nil {
		return false, err
	}

	return v.c.Tag == o.c.Tag && reflect.DeepEqual(v.Value(), o.Value()), nil
}

func (v view) require(c variant.Capability) error {
	if !v.union.Has(c) {
		return fmt.Errorf("%w: %s on %s", ErrCapability, c, v.union.Name)
	}

	return nil
}

// Shared is a read-only view of one field.
type Shared struct{ view }

// Equal reports whether both views have the same tag and deeply equal
// values. It requires the equal capability.
func (s Shared) Equal(o Shared) (bool, error) {
	return s.equal(o.view)
}

// Clone returns another shared view of the same field. It requires the
// clone capability.
func (s Shared) Clone() (Shared, error) {
	if err := s.require(variant.CapabilityClone); err != nil {
		return Shared{}, err
	}

	s.live()

	return s, nil
}

// Exclusive is a read-write view of one field.
type Exclusive struct{ view }

// Equal reports whether both views have the same tag and deeply equal
// values. It requires the equal capability.
func (e Exclusive) Equal(o Exclusive) (bool, error) {
	return e.equal(o.view)
}

// Ptr returns a pointer to the field's storage.
func (e Exclusive) Ptr() any {
	e.live()
	return e.v.Addr().Interface()
}

// Set stores x into the field. A nil x zeroes fields of nilable kinds.
func (e Exclusive) Set(x any) error {
	e.live()

	ft := e.v.Type()

	if x == nil {
		switch ft.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			e.v.SetZero()
			return nil
		default:
			return fmt.Errorf("%w: cannot assign nil to field %s of type %s", ErrTypeMismatch, e.field, ft)
		}
	}

	xv := reflect.ValueOf(x)
	if !xv.Type().AssignableTo(ft) {
		return fmt.Errorf("%w: %s is not assignable to field %s of type %s", ErrTypeMismatch, xv.Type(), e.field, ft)
	}

	e.v.Set(xv)

	return nil
}

// Get returns the value of a shared view as V.
func Get[V any](s Shared) (V, bool) {
	s.live()
	x, ok := s.v.Interface().(V)

	return x, ok
}

// PtrAs returns the field pointer of an exclusive view as *V.
func PtrAs[V any](e Exclusive) (*V, bool) {
	e.live()
	p, ok := e.v.Addr().Interface().(*V)

	return p, ok
}
