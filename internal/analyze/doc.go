// Package analyze provides package loading and record extraction from source.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to turn a
// named struct declaration into a schema.Record:
//   - the type must resolve to a struct in the package scope (go/types)
//   - field signatures are the declared type expressions (AST), so qualified
//     and unqualified spellings canonicalize identically
//   - field-level tags come from `fieldname:"Tag"` struct tags
//   - record-level options come from a //fieldname:enum directive comment
//     on the type declaration
package analyze
