package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a class of document validation finding.
type Code string

const (
	// CodeInvalidName indicates an element name that is empty or not a
	// well-formed identifier.
	CodeInvalidName Code = "invalid-name"
	// CodeUnresolvedNodeDef indicates a shaderref whose nodedef or node
	// reference does not resolve to a node definition in the document.
	CodeUnresolvedNodeDef Code = "unresolved-nodedef"
	// CodeUnresolvedInherit indicates a material inheritance marker whose
	// target material does not exist in the document.
	CodeUnresolvedInherit Code = "unresolved-inherit"
	// CodeInheritCycle indicates a material inheritance chain that revisits
	// a material already seen.
	CodeInheritCycle Code = "inherit-cycle"
	// CodeUnresolvedNodeGraph indicates a bindinput naming a node graph
	// that does not exist in the document.
	CodeUnresolvedNodeGraph Code = "unresolved-nodegraph"
	// CodeUnresolvedOutput indicates a bindinput naming an output that does
	// not exist within its resolved node graph.
	CodeUnresolvedOutput Code = "unresolved-output"
)

// Finding describes a single data-quality problem discovered by validation.
// Findings are reported, not raised: a document with dangling references is
// still usable for queries, and validation is the one place that asserts
// "this document is currently broken".
type Finding struct {
	Code    Code
	Message string
	Path    string
}

// Error formats the finding with its code and element path.
func (f *Finding) Error() string {
	if f == nil {
		return "finding <nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", f.Code, f.Message)
	if f.Path != "" {
		fmt.Fprintf(&b, " at %s", f.Path)
	}
	return b.String()
}

// List is an error aggregating one or more validation findings.
type List []Finding

// Error returns a compact summary of the findings.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no validation findings"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// New builds a Finding with a code, element path, and formatted message.
func New(code Code, path, format string, args ...any) Finding {
	return Finding{Code: code, Message: fmt.Sprintf(format, args...), Path: path}
}

// Findings extracts the individual findings from an error returned by
// validation. The second result is false when err carries no findings.
func Findings(err error) ([]Finding, bool) {
	if err == nil {
		return nil, false
	}
	var list List
	if errors.As(err, &list) {
		return []Finding(list), true
	}
	var listPtr *List
	if errors.As(err, &listPtr) && listPtr != nil {
		return []Finding(*listPtr), true
	}
	return nil, false
}

// HasCode reports whether err contains a finding with the given code.
func HasCode(err error, code Code) bool {
	findings, ok := Findings(err)
	if !ok {
		return false
	}
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}
