package access

import "errors"

var (
	// ErrBorrowed is returned when a borrow conflicts with an outstanding one.
	ErrBorrowed = errors.New("record is already borrowed")
	// ErrCapability is returned by a capability operation that is not
	// attached to the view's union.
	ErrCapability = errors.New("capability not attached to union")
	// ErrTypeMismatch is returned by Exclusive.Set for a value of the wrong type.
	ErrTypeMismatch = errors.New("value type does not match field type")
)
