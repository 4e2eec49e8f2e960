// Package variant synthesizes the tagged unions of a record: the minimal,
// order-preserving set of cases obtained by deduplicating its fields by
// resolved tag, in a shared and an exclusive flavor.
//
// Dedup is keyed by tag, not by type. Fields whose signatures differ but
// whose tags collide, canonically or through an explicit override, share one
// case whose representative type is the first such field's type.
package variant
