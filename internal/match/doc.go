// Package match finds the closest known identifier to a misspelled one.
//
// It backs the "did you mean" hints attached to unknown type names and
// unknown field overrides. Names are compared case-insensitively with
// separators removed, so "user_name" is close to "UserName".
package match
