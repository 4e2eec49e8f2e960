// Package access provides typed, name-based access to the fields of a Go
// struct at run time.
//
// An Accessor is built once per struct type, from its reflect.Type, and maps
// every field name to the variant case the field belongs to. Looking up a
// field returns a view tagged with that case:
//
//	acc, _ := access.For[User]()
//	if v, ok := acc.Field(&user, "Age"); ok {
//		switch v.Tag() {
//		case "Uint8":
//			age, _ := access.Get[uint8](v)
//			...
//		}
//	}
//
// Shared views only read the field. Exclusive views may also write it. The
// plain Accessor methods leave aliasing discipline to the caller; a Cell
// enforces it at run time: any number of shared borrows, or one exclusive
// borrow, never both.
package access
