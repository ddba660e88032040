package format

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/mtlx"
)

// Project converts an element subtree into generic JSON-shaped data:
// nested maps and slices only. The projection is what JSON output and
// JSONPath queries operate on; it is computed fresh from the tree on every
// call, so query results always reflect the current document state.
func Project(e *mtlx.Element) any {
	node := map[string]any{
		"category": e.Category(),
		"name":     e.Name(),
	}
	if keys := e.AttributeNames(); len(keys) > 0 {
		attrs := make(map[string]any, len(keys))
		for _, key := range keys {
			attrs[key] = e.Attribute(key)
		}
		node["attributes"] = attrs
	}
	if children := e.Children(); len(children) > 0 {
		projected := make([]any, len(children))
		for i, child := range children {
			projected[i] = Project(child)
		}
		node["children"] = projected
	}
	return node
}

// JSON renders the document projection as indented JSON with sorted keys.
func JSON(doc mtlx.Document) string {
	return JSONValue(Project(doc.Element))
}

// JSONValue renders any JSON-shaped value as indented JSON with sorted
// keys, for deterministic output.
func JSONValue(v any) string {
	wr := oj.Writer{Options: ojg.Options{Sort: true, Indent: 2}}
	return wr.JSON(v)
}

// Query evaluates a JSONPath expression against the document projection and
// returns the matching values.
func Query(doc mtlx.Document, selector string) ([]any, error) {
	expr, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", selector, err)
	}
	return expr.Get(Project(doc.Element)), nil
}
