package mtlx

import "github.com/agentic-research/mtlx/internal/graphcycle"

// NodeDef declares a shader/function signature: a node family name plus the
// parameters and inputs instances of that family expose. Shader refs
// instantiate node defs by name; the def itself is referenced, never owned,
// by the material layer.
type NodeDef struct{ *Element }

// NodeString returns the node family this definition declares.
func (nd NodeDef) NodeString() string { return nd.Attribute(AttrNode) }

// SetNodeString sets the node family this definition declares.
func (nd NodeDef) SetNodeString(node string) { nd.SetAttribute(AttrNode, node) }

// HasNodeString reports whether a node family is declared.
func (nd NodeDef) HasNodeString() bool { return nd.HasAttribute(AttrNode) }

// AddParameter adds a Parameter to the definition.
func (nd NodeDef) AddParameter(name, typ string) (Parameter, error) {
	return addParameter(nd.Element, name, typ)
}

// Parameter returns the named Parameter, or the zero Parameter.
func (nd NodeDef) Parameter(name string) Parameter {
	return Parameter{nd.ChildOfCategory(CategoryParameter, name)}
}

// Parameters returns all Parameters in insertion order.
func (nd NodeDef) Parameters() []Parameter { return parameters(nd.Element) }

// RemoveParameter removes the named Parameter. No-op when absent.
func (nd NodeDef) RemoveParameter(name string) {
	nd.RemoveChildOfCategory(CategoryParameter, name)
}

// AddInput adds an Input to the definition.
func (nd NodeDef) AddInput(name, typ string) (Input, error) {
	return addInput(nd.Element, name, typ)
}

// Input returns the named Input, or the zero Input.
func (nd NodeDef) Input(name string) Input {
	return Input{nd.ChildOfCategory(CategoryInput, name)}
}

// Inputs returns all Inputs in insertion order.
func (nd NodeDef) Inputs() []Input { return inputs(nd.Element) }

// RemoveInput removes the named Input. No-op when absent.
func (nd NodeDef) RemoveInput(name string) {
	nd.RemoveChildOfCategory(CategoryInput, name)
}

// SetParameterValue sets a parameter value by name, creating the parameter
// if needed.
func (nd NodeDef) SetParameterValue(name, value, typ string) (Parameter, error) {
	return setParameterValue(nd.Element, name, value, typ)
}

// ParameterValue returns the value string of the named parameter, or ""
// when the parameter is absent.
func (nd NodeDef) ParameterValue(name string) string {
	return nd.Parameter(name).valueOrEmpty()
}

func (p Parameter) valueOrEmpty() string {
	if p.Element == nil {
		return ""
	}
	return p.Value()
}

// Node instantiates a node family within a node graph.
type Node struct{ *Element }

// AddParameter adds a Parameter to the node.
func (n Node) AddParameter(name, typ string) (Parameter, error) {
	return addParameter(n.Element, name, typ)
}

// Parameter returns the named Parameter, or the zero Parameter.
func (n Node) Parameter(name string) Parameter {
	return Parameter{n.ChildOfCategory(CategoryParameter, name)}
}

// Parameters returns all Parameters in insertion order.
func (n Node) Parameters() []Parameter { return parameters(n.Element) }

// AddInput adds an Input to the node.
func (n Node) AddInput(name, typ string) (Input, error) {
	return addInput(n.Element, name, typ)
}

// Input returns the named Input, or the zero Input.
func (n Node) Input(name string) Input {
	return Input{n.ChildOfCategory(CategoryInput, name)}
}

// Inputs returns all Inputs in insertion order.
func (n Node) Inputs() []Input { return inputs(n.Element) }

// SetParameterValue sets a parameter value by name, creating the parameter
// if needed.
func (n Node) SetParameterValue(name, value, typ string) (Parameter, error) {
	return setParameterValue(n.Element, name, value, typ)
}

// NodeGraph owns a set of nodes and the outputs that expose their results.
// Outputs inside a graph are addressable from bind inputs anywhere in the
// document via the (graph name, output name) pair.
type NodeGraph struct{ *Element }

// AddNode adds a node instantiating the given family.
func (g NodeGraph) AddNode(name, node string) (Node, error) {
	e, err := g.AddChild(CategoryNode, name)
	if err != nil {
		return Node{}, err
	}
	if node != "" {
		e.SetAttribute(AttrNode, node)
	}
	return Node{e}, nil
}

// Node returns the named node, or the zero Node.
func (g NodeGraph) Node(name string) Node {
	return Node{g.ChildOfCategory(CategoryNode, name)}
}

// Nodes returns all nodes in insertion order.
func (g NodeGraph) Nodes() []Node {
	elems := g.ChildrenOfCategory(CategoryNode)
	out := make([]Node, len(elems))
	for i, e := range elems {
		out[i] = Node{e}
	}
	return out
}

// RemoveNode removes the named node. No-op when absent.
func (g NodeGraph) RemoveNode(name string) {
	g.RemoveChildOfCategory(CategoryNode, name)
}

// AddOutput adds an output exposing a result of the graph.
func (g NodeGraph) AddOutput(name, typ string) (Output, error) {
	e, err := g.AddChild(CategoryOutput, name)
	if err != nil {
		return Output{}, err
	}
	if typ == "" {
		typ = DefaultType
	}
	e.SetType(typ)
	return Output{e}, nil
}

// Output returns the named output, or the zero Output.
func (g NodeGraph) Output(name string) Output {
	return Output{g.ChildOfCategory(CategoryOutput, name)}
}

// Outputs returns all outputs in insertion order.
func (g NodeGraph) Outputs() []Output {
	elems := g.ChildrenOfCategory(CategoryOutput)
	out := make([]Output, len(elems))
	for i, e := range elems {
		out[i] = Output{e}
	}
	return out
}

// RemoveOutput removes the named output. No-op when absent.
func (g NodeGraph) RemoveOutput(name string) {
	g.RemoveChildOfCategory(CategoryOutput, name)
}

// HasUpstreamCycle reports whether any upstream path from this output
// revisits a node. Edges follow nodename connections: output to its
// connected node, then node to the connected nodes of its inputs.
// Dangling connections terminate the path rather than failing.
func (o Output) HasUpstreamCycle() bool {
	if o.Element == nil {
		return false
	}
	err := graphcycle.Detect(graphcycle.Config[*Element]{
		Next:   upstreamElements,
		Starts: []*Element{o.Element},
	})
	_, cyclic := err.(graphcycle.CycleError[*Element])
	return cyclic
}

func upstreamElements(e *Element) []*Element {
	var next []*Element
	switch e.category {
	case CategoryOutput, CategoryInput:
		if n := connectedNode(e); n.Element != nil {
			next = append(next, n.Element)
		}
	case CategoryNode:
		for _, in := range inputs(e) {
			if n := in.ConnectedNode(); n.Element != nil {
				next = append(next, n.Element)
			}
		}
	}
	return next
}
