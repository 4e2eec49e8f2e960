// Package plan resolves records into generation plans.
//
// The resolver loads each requested record from an analyzed package, merges
// the YAML configuration over the source directives, synthesizes the shared
// and exclusive unions, and records diagnostics for anything the generator
// cannot express. A plan with error diagnostics must not be generated.
package plan
