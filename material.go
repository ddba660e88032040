package mtlx

// Material instantiates one or more shader node definitions with a specific
// set of data bindings. It owns shader refs, overrides, and inheritance
// markers; everything a material points at elsewhere in the document is
// referenced by name and resolved on demand.
type Material struct{ *Element }

// AddShaderRef adds a shader ref. An empty name synthesizes one. The node
// argument, when non-empty, names the node family to instantiate.
func (m Material) AddShaderRef(name, node string) (ShaderRef, error) {
	e, err := m.AddChild(CategoryShaderRef, name)
	if err != nil {
		return ShaderRef{}, err
	}
	if node != "" {
		e.SetAttribute(AttrNode, node)
	}
	return ShaderRef{e}, nil
}

// ShaderRef returns the named shader ref, or the zero ShaderRef.
func (m Material) ShaderRef(name string) ShaderRef {
	return ShaderRef{m.ChildOfCategory(CategoryShaderRef, name)}
}

// ShaderRefs returns all shader refs in insertion order.
func (m Material) ShaderRefs() []ShaderRef {
	elems := m.ChildrenOfCategory(CategoryShaderRef)
	out := make([]ShaderRef, len(elems))
	for i, e := range elems {
		out[i] = ShaderRef{e}
	}
	return out
}

// RemoveShaderRef removes the named shader ref. No-op when absent.
func (m Material) RemoveShaderRef(name string) {
	m.RemoveChildOfCategory(CategoryShaderRef, name)
}

// AddOverride adds an override. The override's own name is what selects its
// receiver, so callers normally pass the name of a parameter or input of a
// referenced node def.
func (m Material) AddOverride(name string) (Override, error) {
	e, err := m.AddChild(CategoryOverride, name)
	if err != nil {
		return Override{}, err
	}
	return Override{e}, nil
}

// Override returns the named override, or the zero Override.
func (m Material) Override(name string) Override {
	return Override{m.ChildOfCategory(CategoryOverride, name)}
}

// Overrides returns all overrides in insertion order.
func (m Material) Overrides() []Override {
	elems := m.ChildrenOfCategory(CategoryOverride)
	out := make([]Override, len(elems))
	for i, e := range elems {
		out[i] = Override{e}
	}
	return out
}

// RemoveOverride removes the named override. No-op when absent.
func (m Material) RemoveOverride(name string) {
	m.RemoveChildOfCategory(CategoryOverride, name)
}

// SetOverrideValue sets the value of an override by name, creating the
// override if needed.
func (m Material) SetOverrideValue(name, value, typ string) (Override, error) {
	e := m.ChildOfCategory(CategoryOverride, name)
	if e == nil {
		o, err := m.AddOverride(name)
		if err != nil {
			return Override{}, err
		}
		e = o.Element
	}
	if typ != "" {
		e.SetType(typ)
	}
	e.SetValue(value)
	return Override{e}, nil
}

// AddInherit adds an inheritance marker naming the given material. Most
// callers want SetInheritsFrom, which keeps the relation single-valued.
func (m Material) AddInherit(name string) (MaterialInherit, error) {
	e, err := m.AddChild(CategoryMaterialInherit, name)
	if err != nil {
		return MaterialInherit{}, err
	}
	return MaterialInherit{e}, nil
}

// Inherit returns the named inheritance marker, or the zero MaterialInherit.
func (m Material) Inherit(name string) MaterialInherit {
	return MaterialInherit{m.ChildOfCategory(CategoryMaterialInherit, name)}
}

// Inherits returns all inheritance markers in insertion order.
func (m Material) Inherits() []MaterialInherit {
	elems := m.ChildrenOfCategory(CategoryMaterialInherit)
	out := make([]MaterialInherit, len(elems))
	for i, e := range elems {
		out[i] = MaterialInherit{e}
	}
	return out
}

// RemoveInherit removes the named inheritance marker. No-op when absent.
func (m Material) RemoveInherit(name string) {
	m.RemoveChildOfCategory(CategoryMaterialInherit, name)
}

// SetInheritsFrom clears any existing inheritance and, when target is not
// the zero Material, marks this material as inheriting from it. Clearing
// first keeps the inherits-from relation single-valued no matter how many
// times it is reassigned.
func (m Material) SetInheritsFrom(target Material) error {
	for _, inh := range m.Inherits() {
		m.RemoveChildOfCategory(CategoryMaterialInherit, inh.Name())
	}
	if target.Element == nil {
		return nil
	}
	_, err := m.AddInherit(target.Name())
	return err
}

// InheritsFrom resolves the material this one inherits from, or the zero
// Material when no inheritance is declared or the target is dangling.
func (m Material) InheritsFrom() Material {
	inhs := m.Inherits()
	if len(inhs) == 0 {
		return Material{}
	}
	return m.Document().Material(inhs[0].Name())
}

// ReferencedNodeDefs resolves the node def of every shader ref, in shader
// ref insertion order. Unresolved refs are skipped; two refs naming the
// same def yield it twice.
func (m Material) ReferencedNodeDefs() []NodeDef {
	var defs []NodeDef
	for _, sr := range m.ShaderRefs() {
		if nd := sr.ReferencedNodeDef(); nd.Element != nil {
			defs = append(defs, nd)
		}
	}
	return defs
}

// ReferencedOutputs returns the outputs connected by any shader ref of the
// material, deduplicated in first-reference order.
func (m Material) ReferencedOutputs() []Output {
	var outs []Output
	seen := make(map[*Element]bool)
	for _, sr := range m.ShaderRefs() {
		for _, o := range sr.ReferencedOutputs() {
			if !seen[o.Element] {
				seen[o.Element] = true
				outs = append(outs, o)
			}
		}
	}
	return outs
}

// ReferencingMaterialAssigns scans the document for material assigns that
// name this material, in document order. The reference direction runs
// assign to material, so there is nothing to follow from the material side;
// the scan is recomputed per call against the current tree.
func (m Material) ReferencingMaterialAssigns() []MaterialAssign {
	var assigns []MaterialAssign
	m.Document().walk(func(e *Element) bool {
		if e.category == CategoryMaterialAssign && e.Attribute(AttrMaterial) == m.name {
			assigns = append(assigns, MaterialAssign{e})
		}
		return true
	})
	return assigns
}

// ShaderRef instantiates a shader node def within a material. The def is
// referenced by the nodedef attribute, or by node family when no explicit
// def name is set.
type ShaderRef struct{ *Element }

// NodeString returns the node family this ref instantiates.
func (s ShaderRef) NodeString() string { return s.Attribute(AttrNode) }

// SetNodeString sets the node family this ref instantiates.
func (s ShaderRef) SetNodeString(node string) { s.SetAttribute(AttrNode, node) }

// HasNodeString reports whether a node family is declared.
func (s ShaderRef) HasNodeString() bool { return s.HasAttribute(AttrNode) }

// NodeDefString returns the name of the node def this ref instantiates.
func (s ShaderRef) NodeDefString() string { return s.Attribute(AttrNodeDef) }

// SetNodeDefString sets the name of the node def this ref instantiates.
func (s ShaderRef) SetNodeDefString(nodeDef string) { s.SetAttribute(AttrNodeDef, nodeDef) }

// HasNodeDefString reports whether an explicit node def name is declared.
func (s ShaderRef) HasNodeDefString() bool { return s.HasAttribute(AttrNodeDef) }

// AddBindParam adds a bind param carrying a uniform value.
func (s ShaderRef) AddBindParam(name, typ string) (BindParam, error) {
	e, err := s.AddChild(CategoryBindParam, name)
	if err != nil {
		return BindParam{}, err
	}
	if typ == "" {
		typ = DefaultType
	}
	e.SetType(typ)
	return BindParam{e}, nil
}

// BindParam returns the named bind param, or the zero BindParam.
func (s ShaderRef) BindParam(name string) BindParam {
	return BindParam{s.ChildOfCategory(CategoryBindParam, name)}
}

// BindParams returns all bind params in insertion order.
func (s ShaderRef) BindParams() []BindParam {
	elems := s.ChildrenOfCategory(CategoryBindParam)
	out := make([]BindParam, len(elems))
	for i, e := range elems {
		out[i] = BindParam{e}
	}
	return out
}

// RemoveBindParam removes the named bind param. No-op when absent.
func (s ShaderRef) RemoveBindParam(name string) {
	s.RemoveChildOfCategory(CategoryBindParam, name)
}

// AddBindInput adds a bind input carrying a connectable value.
func (s ShaderRef) AddBindInput(name, typ string) (BindInput, error) {
	e, err := s.AddChild(CategoryBindInput, name)
	if err != nil {
		return BindInput{}, err
	}
	if typ == "" {
		typ = DefaultType
	}
	e.SetType(typ)
	return BindInput{e}, nil
}

// BindInput returns the named bind input, or the zero BindInput.
func (s ShaderRef) BindInput(name string) BindInput {
	return BindInput{s.ChildOfCategory(CategoryBindInput, name)}
}

// BindInputs returns all bind inputs in insertion order.
func (s ShaderRef) BindInputs() []BindInput {
	elems := s.ChildrenOfCategory(CategoryBindInput)
	out := make([]BindInput, len(elems))
	for i, e := range elems {
		out[i] = BindInput{e}
	}
	return out
}

// RemoveBindInput removes the named bind input. No-op when absent.
func (s ShaderRef) RemoveBindInput(name string) {
	s.RemoveChildOfCategory(CategoryBindInput, name)
}

// ReferencedNodeDef resolves the node def this ref instantiates. An
// explicit nodedef name wins; otherwise the first node def declaring the
// ref's node family matches. The zero NodeDef means the reference is
// currently dangling, which is a legitimate state for a document under
// incremental edit.
func (s ShaderRef) ReferencedNodeDef() NodeDef {
	doc := s.Document()
	if s.HasNodeDefString() {
		return doc.NodeDef(s.NodeDefString())
	}
	if s.HasNodeString() {
		node := s.NodeString()
		for _, nd := range doc.NodeDefs() {
			if nd.NodeString() == node {
				return nd
			}
		}
	}
	return NodeDef{}
}

// ReferencedOutputs resolves the connected output of every bind input and
// returns the distinct results in first-reference order. Unresolved
// connections are skipped.
func (s ShaderRef) ReferencedOutputs() []Output {
	var outs []Output
	seen := make(map[*Element]bool)
	for _, bi := range s.BindInputs() {
		o := bi.ConnectedOutput()
		if o.Element == nil || seen[o.Element] {
			continue
		}
		seen[o.Element] = true
		outs = append(outs, o)
	}
	return outs
}

// BindParam binds uniform data to a parameter of the referenced node def.
type BindParam struct{ *Element }

// BindInput binds spatially-varying data to an input of the referenced node
// def, optionally connecting it to an output elsewhere in the document.
type BindInput struct{ *Element }

// NodeGraphString returns the name of the node graph the connected output
// lives in. Empty means the document root.
func (b BindInput) NodeGraphString() string { return b.Attribute(AttrNodeGraph) }

// SetNodeGraphString sets the node graph name of the connection.
func (b BindInput) SetNodeGraphString(graph string) { b.SetAttribute(AttrNodeGraph, graph) }

// HasNodeGraphString reports whether a node graph name is declared.
func (b BindInput) HasNodeGraphString() bool { return b.HasAttribute(AttrNodeGraph) }

// OutputString returns the name of the connected output.
func (b BindInput) OutputString() string { return b.Attribute(AttrOutput) }

// SetOutputString sets the name of the connected output.
func (b BindInput) SetOutputString(output string) { b.SetAttribute(AttrOutput, output) }

// HasOutputString reports whether an output name is declared.
func (b BindInput) HasOutputString() bool { return b.HasAttribute(AttrOutput) }

// ConnectedOutput resolves the (node graph, output) pair against document
// scope: first the named graph (the document root when the graph name is
// empty), then the named output within it. Absence at either stage yields
// the zero Output. The target graph need not be an ancestor or sibling of
// the bind input; the two names are the whole address.
func (b BindInput) ConnectedOutput() Output {
	scope := b.Document().Element
	if graph := b.NodeGraphString(); graph != "" {
		ng := b.Document().NodeGraph(graph)
		if ng.Element == nil {
			return Output{}
		}
		scope = ng.Element
	}
	return Output{scope.ChildOfCategory(CategoryOutput, b.OutputString())}
}

// SetConnectedOutput records the connection to the given output, deriving
// the graph name from the output's location. The zero Output clears the
// connection entirely.
func (b BindInput) SetConnectedOutput(o Output) {
	if o.Element == nil {
		b.RemoveAttribute(AttrNodeGraph)
		b.RemoveAttribute(AttrOutput)
		return
	}
	if parent := o.Parent(); parent != nil && parent.Category() == CategoryNodeGraph {
		b.SetAttribute(AttrNodeGraph, parent.Name())
	} else {
		b.RemoveAttribute(AttrNodeGraph)
	}
	b.SetAttribute(AttrOutput, o.Name())
}

// Override replaces the uniform value of a parameter or input of the
// material's referenced node defs. Unlike every other reference in the
// model, the target is not named by an attribute: the override's own name
// is matched against the candidate set.
type Override struct{ *Element }

// Receiver resolves the element this override modifies: the first
// parameter or input of the enclosing material's referenced node defs whose
// name equals the override's name. Nil means no settable element currently
// matches.
func (o Override) Receiver() *Element {
	parent := o.Parent()
	if parent == nil || parent.Category() != CategoryMaterial {
		return nil
	}
	for _, nd := range (Material{parent}).ReferencedNodeDefs() {
		for _, p := range nd.Parameters() {
			if p.Name() == o.name {
				return p.Element
			}
		}
		for _, in := range nd.Inputs() {
			if in.Name() == o.name {
				return in.Element
			}
		}
	}
	return nil
}

// MaterialInherit marks its enclosing material as deriving default bindings
// and overrides from the material its name refers to.
type MaterialInherit struct{ *Element }

// ReferencedMaterial resolves the inherited material, or the zero Material
// when the target is dangling.
func (mi MaterialInherit) ReferencedMaterial() Material {
	return mi.Document().Material(mi.name)
}

// Look binds materials to geometry via material assigns.
type Look struct{ *Element }

// AddMaterialAssign adds an assign naming the given material.
func (l Look) AddMaterialAssign(name, material string) (MaterialAssign, error) {
	e, err := l.AddChild(CategoryMaterialAssign, name)
	if err != nil {
		return MaterialAssign{}, err
	}
	if material != "" {
		e.SetAttribute(AttrMaterial, material)
	}
	return MaterialAssign{e}, nil
}

// MaterialAssign returns the named assign, or the zero MaterialAssign.
func (l Look) MaterialAssign(name string) MaterialAssign {
	return MaterialAssign{l.ChildOfCategory(CategoryMaterialAssign, name)}
}

// MaterialAssigns returns all assigns in insertion order.
func (l Look) MaterialAssigns() []MaterialAssign {
	elems := l.ChildrenOfCategory(CategoryMaterialAssign)
	out := make([]MaterialAssign, len(elems))
	for i, e := range elems {
		out[i] = MaterialAssign{e}
	}
	return out
}

// RemoveMaterialAssign removes the named assign. No-op when absent.
func (l Look) RemoveMaterialAssign(name string) {
	l.RemoveChildOfCategory(CategoryMaterialAssign, name)
}

// MaterialAssign assigns a material to geometry within a look.
type MaterialAssign struct{ *Element }

// MaterialString returns the name of the assigned material.
func (ma MaterialAssign) MaterialString() string { return ma.Attribute(AttrMaterial) }

// SetMaterialString sets the name of the assigned material.
func (ma MaterialAssign) SetMaterialString(material string) {
	ma.SetAttribute(AttrMaterial, material)
}

// ReferencedMaterial resolves the assigned material, or the zero Material.
func (ma MaterialAssign) ReferencedMaterial() Material {
	return ma.Document().Material(ma.MaterialString())
}
