// Package gen provides deterministic Go code generation for field accessors.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// For a record R with shared union RField the generated file declares:
//   - the sealed interfaces RField and RFieldMut
//   - one case struct per distinct tag in each union, holding a pointer to
//     the field
//   - capability methods (String, GoString, Equal, Clone) on the cases
//   - (*R).Field and (*R).FieldMut, switching over the field names
//   - RFieldNames and (*R).Fields for enumeration in declaration order
package gen
