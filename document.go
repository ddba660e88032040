package mtlx

import "github.com/agentic-research/mtlx/errors"

// Document is the root of an element tree. It owns every element in the
// tree and provides the document-wide name scope that definition-level
// references (nodedefs, materials, node graphs) resolve against.
type Document struct{ *Element }

// NewDocument returns an empty document.
func NewDocument() Document {
	root := &Element{
		category: CategoryDocument,
		attrs:    make(map[string]string),
		byName:   make(map[string]*Element),
	}
	root.root = root
	return Document{root}
}

// Version returns the document's format version string.
func (d Document) Version() string { return d.Attribute(AttrVersion) }

// SetVersion sets the document's format version string.
func (d Document) SetVersion(v string) { d.SetAttribute(AttrVersion, v) }

// ResolveByName returns the first element in document order whose name
// matches, or nil. Definition-level names are unique per document, so the
// first match is the definition; the scan is recomputed on every call and
// is therefore always consistent with the current tree.
func (d Document) ResolveByName(name string) *Element {
	if name == "" {
		return nil
	}
	var found *Element
	for _, top := range d.children {
		top.walk(func(e *Element) bool {
			if e.name == name {
				found = e
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// AddMaterial adds a material to the document. An empty name synthesizes one.
func (d Document) AddMaterial(name string) (Material, error) {
	e, err := d.AddChild(CategoryMaterial, name)
	if err != nil {
		return Material{}, err
	}
	return Material{e}, nil
}

// Material returns the material with the given name, or the zero Material.
func (d Document) Material(name string) Material {
	return Material{d.ChildOfCategory(CategoryMaterial, name)}
}

// Materials returns all materials in insertion order.
func (d Document) Materials() []Material {
	elems := d.ChildrenOfCategory(CategoryMaterial)
	out := make([]Material, len(elems))
	for i, e := range elems {
		out[i] = Material{e}
	}
	return out
}

// RemoveMaterial removes the named material. No-op when absent.
func (d Document) RemoveMaterial(name string) {
	d.RemoveChildOfCategory(CategoryMaterial, name)
}

// AddNodeDef adds a node definition. The node argument, when non-empty, is
// the node family the definition declares a signature for.
func (d Document) AddNodeDef(name, node string) (NodeDef, error) {
	e, err := d.AddChild(CategoryNodeDef, name)
	if err != nil {
		return NodeDef{}, err
	}
	if node != "" {
		e.SetAttribute(AttrNode, node)
	}
	return NodeDef{e}, nil
}

// NodeDef returns the node definition with the given name, or the zero
// NodeDef.
func (d Document) NodeDef(name string) NodeDef {
	return NodeDef{d.ChildOfCategory(CategoryNodeDef, name)}
}

// NodeDefs returns all node definitions in insertion order.
func (d Document) NodeDefs() []NodeDef {
	elems := d.ChildrenOfCategory(CategoryNodeDef)
	out := make([]NodeDef, len(elems))
	for i, e := range elems {
		out[i] = NodeDef{e}
	}
	return out
}

// RemoveNodeDef removes the named node definition. No-op when absent.
func (d Document) RemoveNodeDef(name string) {
	d.RemoveChildOfCategory(CategoryNodeDef, name)
}

// AddNodeGraph adds a node graph to the document.
func (d Document) AddNodeGraph(name string) (NodeGraph, error) {
	e, err := d.AddChild(CategoryNodeGraph, name)
	if err != nil {
		return NodeGraph{}, err
	}
	return NodeGraph{e}, nil
}

// NodeGraph returns the node graph with the given name, or the zero
// NodeGraph.
func (d Document) NodeGraph(name string) NodeGraph {
	return NodeGraph{d.ChildOfCategory(CategoryNodeGraph, name)}
}

// NodeGraphs returns all node graphs in insertion order.
func (d Document) NodeGraphs() []NodeGraph {
	elems := d.ChildrenOfCategory(CategoryNodeGraph)
	out := make([]NodeGraph, len(elems))
	for i, e := range elems {
		out[i] = NodeGraph{e}
	}
	return out
}

// RemoveNodeGraph removes the named node graph. No-op when absent.
func (d Document) RemoveNodeGraph(name string) {
	d.RemoveChildOfCategory(CategoryNodeGraph, name)
}

// AddOutput adds a document-level output. Bind inputs with an empty node
// graph name resolve their output against these.
func (d Document) AddOutput(name, typ string) (Output, error) {
	e, err := d.AddChild(CategoryOutput, name)
	if err != nil {
		return Output{}, err
	}
	if typ == "" {
		typ = DefaultType
	}
	e.SetType(typ)
	return Output{e}, nil
}

// Output returns the document-level output with the given name, or the zero
// Output.
func (d Document) Output(name string) Output {
	return Output{d.ChildOfCategory(CategoryOutput, name)}
}

// Outputs returns all document-level outputs in insertion order.
func (d Document) Outputs() []Output {
	elems := d.ChildrenOfCategory(CategoryOutput)
	out := make([]Output, len(elems))
	for i, e := range elems {
		out[i] = Output{e}
	}
	return out
}

// RemoveOutput removes the named document-level output. No-op when absent.
func (d Document) RemoveOutput(name string) {
	d.RemoveChildOfCategory(CategoryOutput, name)
}

// AddLook adds a look to the document.
func (d Document) AddLook(name string) (Look, error) {
	e, err := d.AddChild(CategoryLook, name)
	if err != nil {
		return Look{}, err
	}
	return Look{e}, nil
}

// Look returns the look with the given name, or the zero Look.
func (d Document) Look(name string) Look {
	return Look{d.ChildOfCategory(CategoryLook, name)}
}

// Looks returns all looks in insertion order.
func (d Document) Looks() []Look {
	elems := d.ChildrenOfCategory(CategoryLook)
	out := make([]Look, len(elems))
	for i, e := range elems {
		out[i] = Look{e}
	}
	return out
}

// RemoveLook removes the named look. No-op when absent.
func (d Document) RemoveLook(name string) {
	d.RemoveChildOfCategory(CategoryLook, name)
}

// Validate checks the whole document: structural name checks over the tree
// plus the reference and inheritance checks of every material. It returns
// nil on success or an errors.List of findings.
func (d Document) Validate() error {
	var findings errors.List
	d.validateTree(&findings)
	for _, m := range d.Materials() {
		m.checkReferences(&findings)
	}
	if len(findings) == 0 {
		return nil
	}
	return findings
}
