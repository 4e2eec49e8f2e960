// Package schema describes the static shape of a record type: its name, its
// ordered named fields with their type signatures, and the customization that
// applies to it.
//
// A Record is produced either from a reflect.Type (Extract) or from source by
// the generator's analyzer. Either way it is immutable once built and only
// lives for the duration of one generation run.
//
// Customization comes in two levels:
//   - record level: Options (enum name and attached capability sets)
//   - field level: the `fieldname:"Tag"` struct tag, or WithFieldTag
package schema
