// Package canonical turns a field's declared type signature into a short tag
// identifier.
//
// The scan is driven by letter case, not by punctuation: qualification
// prefixes such as "std::option::" or "github.com/acme/store." are skipped
// because they are lower-case, and generic argument lists are folded into the
// tag recursively. Examples:
//
//	Option<Option<i64>>           -> OptionOptionI64
//	std::option::Option<String>   -> OptionString
//	store.Option[*store.Order]    -> OptionOrder
//	[]string                      -> String
//	u8                            -> U8
//	T                             -> T
//
// Canonicalization is lossy. Two unrelated signatures may produce the same
// tag; callers merge such fields instead of treating it as an error.
package canonical
