// Package mtlx models a declarative material and shader-graph document as a
// typed, named, ordered element tree, together with the indirect references
// layered on top of it: shader instantiation, parameter and input binding,
// value overriding, and single-parent material inheritance.
//
// Every cross-reference is stored as an attribute-encoded name and resolved
// lazily against the current tree, so documents survive serialization and
// remain usable while transiently inconsistent. Query-time resolution of a
// dangling reference returns a zero wrapper, never an error; Validate is
// the single place where dangling references are reported as findings.
//
// Documents are not safe for concurrent mutation; callers embedding them in
// a concurrent context must serialize access.
package mtlx
