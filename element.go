package mtlx

import (
	"fmt"
	"strings"

	"github.com/agentic-research/mtlx/errors"
)

// Element categories. The category tag is the universal type discriminator
// for tree nodes, mirroring the element names of the textual format.
const (
	CategoryDocument        = "materialx"
	CategoryMaterial        = "material"
	CategoryShaderRef       = "shaderref"
	CategoryBindParam       = "bindparam"
	CategoryBindInput       = "bindinput"
	CategoryOverride        = "override"
	CategoryMaterialInherit = "materialinherit"
	CategoryNodeDef         = "nodedef"
	CategoryNode            = "node"
	CategoryNodeGraph       = "nodegraph"
	CategoryOutput          = "output"
	CategoryInput           = "input"
	CategoryParameter       = "parameter"
	CategoryLook            = "look"
	CategoryMaterialAssign  = "materialassign"
)

// Attribute keys used by the reference layer.
const (
	AttrType      = "type"
	AttrValue     = "value"
	AttrNode      = "node"
	AttrNodeDef   = "nodedef"
	AttrNodeGraph = "nodegraph"
	AttrOutput    = "output"
	AttrNodeName  = "nodename"
	AttrChannels  = "channels"
	AttrMaterial  = "material"
	AttrVersion   = "version"
)

// DefaultType is the type string assigned to value elements created without
// an explicit type.
const DefaultType = "color3"

// Element is the universal tree primitive: a category-tagged, named node
// owning string attributes and an ordered set of uniquely-named children.
// All cross-references between elements are stored as attribute-encoded
// names and resolved on demand against the current tree state; an Element
// never caches a resolved pointer.
type Element struct {
	root     *Element
	parent   *Element
	category string
	name     string
	attrs    map[string]string
	attrKeys []string
	children []*Element
	byName   map[string]*Element
}

// Category returns the element's category tag.
func (e *Element) Category() string { return e.category }

// Name returns the element's name, unique among its siblings.
func (e *Element) Name() string { return e.name }

// Parent returns the enclosing element, or nil for the document root.
func (e *Element) Parent() *Element { return e.parent }

// Document returns the document owning this element.
func (e *Element) Document() Document { return Document{e.root} }

// Path returns the slash-separated name path from the document root.
func (e *Element) Path() string {
	if e.parent == nil {
		return "/"
	}
	var names []string
	for cur := e; cur.parent != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

// Attribute returns the value of the named attribute, or "" when unset.
func (e *Element) Attribute(key string) string { return e.attrs[key] }

// HasAttribute reports whether the named attribute is set.
func (e *Element) HasAttribute(key string) bool {
	_, ok := e.attrs[key]
	return ok
}

// SetAttribute sets an attribute, preserving first-set ordering for
// serialization.
func (e *Element) SetAttribute(key, value string) {
	if _, ok := e.attrs[key]; !ok {
		e.attrKeys = append(e.attrKeys, key)
	}
	e.attrs[key] = value
}

// RemoveAttribute unsets an attribute. No-op when absent.
func (e *Element) RemoveAttribute(key string) {
	if _, ok := e.attrs[key]; !ok {
		return
	}
	delete(e.attrs, key)
	for i, k := range e.attrKeys {
		if k == key {
			e.attrKeys = append(e.attrKeys[:i], e.attrKeys[i+1:]...)
			break
		}
	}
}

// AttributeNames returns the attribute keys in first-set order.
func (e *Element) AttributeNames() []string {
	keys := make([]string, len(e.attrKeys))
	copy(keys, e.attrKeys)
	return keys
}

// Type returns the type string of a value element.
func (e *Element) Type() string { return e.Attribute(AttrType) }

// SetType sets the type string of a value element.
func (e *Element) SetType(t string) { e.SetAttribute(AttrType, t) }

// Value returns the value string of a value element.
func (e *Element) Value() string { return e.Attribute(AttrValue) }

// SetValue sets the value string of a value element.
func (e *Element) SetValue(v string) { e.SetAttribute(AttrValue, v) }

// AddChild creates a child with the given category. An empty name synthesizes
// a unique one from the category. A duplicate sibling name is an error: name
// uniqueness within a scope is what makes names usable as reference keys.
func (e *Element) AddChild(category, name string) (*Element, error) {
	if category == "" {
		return nil, fmt.Errorf("add child to %q: empty category", e.Path())
	}
	if name == "" {
		name = e.synthesizeName(category)
	}
	if _, ok := e.byName[name]; ok {
		return nil, fmt.Errorf("add child to %q: name %q already in use", e.Path(), name)
	}
	child := &Element{
		root:     e.root,
		parent:   e,
		category: category,
		name:     name,
		attrs:    make(map[string]string),
		byName:   make(map[string]*Element),
	}
	e.children = append(e.children, child)
	e.byName[name] = child
	return child, nil
}

// Child returns the child with the given name, or nil.
func (e *Element) Child(name string) *Element { return e.byName[name] }

// ChildOfCategory returns the child with the given name if it has the given
// category, or nil.
func (e *Element) ChildOfCategory(category, name string) *Element {
	child := e.byName[name]
	if child == nil || child.category != category {
		return nil
	}
	return child
}

// Children returns all children in insertion order.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ChildrenOfCategory returns the children with the given category in
// insertion order.
func (e *Element) ChildrenOfCategory(category string) []*Element {
	var out []*Element
	for _, child := range e.children {
		if child.category == category {
			out = append(out, child)
		}
	}
	return out
}

// RemoveChildOfCategory removes the named child if it has the given
// category. No-op when no such child exists.
func (e *Element) RemoveChildOfCategory(category, name string) {
	child := e.byName[name]
	if child == nil || child.category != category {
		return
	}
	e.removeChild(child)
}

// RemoveChild removes the named child regardless of category. No-op when
// absent.
func (e *Element) RemoveChild(name string) {
	child := e.byName[name]
	if child == nil {
		return
	}
	e.removeChild(child)
}

func (e *Element) removeChild(child *Element) {
	delete(e.byName, child.name)
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// synthesizeName returns a category-derived name not yet used by any child.
func (e *Element) synthesizeName(category string) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", category, i)
		if _, ok := e.byName[name]; !ok {
			return name
		}
	}
}

// walk visits the element and its descendants in document (pre-)order.
// Returning false from fn stops the walk.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, child := range e.children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// validName reports whether s is a well-formed element name: a letter or
// underscore followed by letters, digits, or underscores.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// validateTree appends a finding for every descendant whose name is not
// well-formed. The document root itself is unnamed and exempt.
func (e *Element) validateTree(findings *errors.List) {
	e.walk(func(el *Element) bool {
		if el.parent == nil {
			return true
		}
		if !validName(el.name) {
			*findings = append(*findings, errors.New(errors.CodeInvalidName, el.Path(),
				"%s element has malformed name %q", el.category, el.name))
		}
		return true
	})
}
