package mtlx

// Parameter holds a single uniform value within a Node or NodeDef. Its
// value may be replaced within the scope of a material by an Override of
// the same name.
type Parameter struct{ *Element }

// Input holds a uniform value or a spatially-varying connection within a
// Node or NodeDef.
type Input struct{ *Element }

// Output is a spatially-varying port of a node graph (or of the document
// root, for top-level outputs). Bind inputs reference outputs by the
// (node graph name, output name) pair.
type Output struct{ *Element }

// port behaviors shared by Input and Output.

// NodeName returns the name of the node this port connects to within its
// enclosing graph.
func (p Input) NodeName() string  { return p.Attribute(AttrNodeName) }
func (p Output) NodeName() string { return p.Attribute(AttrNodeName) }

// HasNodeName reports whether a node connection is declared.
func (p Input) HasNodeName() bool  { return p.HasAttribute(AttrNodeName) }
func (p Output) HasNodeName() bool { return p.HasAttribute(AttrNodeName) }

// SetNodeName declares a connection to the named sibling node.
func (p Input) SetNodeName(node string)  { p.SetAttribute(AttrNodeName, node) }
func (p Output) SetNodeName(node string) { p.SetAttribute(AttrNodeName, node) }

// Channels returns the channel swizzle applied to this port.
func (p Input) Channels() string  { return p.Attribute(AttrChannels) }
func (p Output) Channels() string { return p.Attribute(AttrChannels) }

// SetChannels sets the channel swizzle applied to this port.
func (p Input) SetChannels(channels string)  { p.SetAttribute(AttrChannels, channels) }
func (p Output) SetChannels(channels string) { p.SetAttribute(AttrChannels, channels) }

// ConnectedNode resolves the port's nodename reference against the nodes of
// the enclosing graph. The zero Node means unconnected or dangling.
func (p Input) ConnectedNode() Node  { return connectedNode(p.Element) }
func (p Output) ConnectedNode() Node { return connectedNode(p.Element) }

// SetConnectedNode records a connection to the given node, or clears the
// connection when the zero Node is given.
func (p Input) SetConnectedNode(n Node)  { setConnectedNode(p.Element, n) }
func (p Output) SetConnectedNode(n Node) { setConnectedNode(p.Element, n) }

func connectedNode(port *Element) Node {
	name := port.Attribute(AttrNodeName)
	if name == "" {
		return Node{}
	}
	graph := enclosingGraph(port)
	if graph == nil {
		return Node{}
	}
	return Node{graph.ChildOfCategory(CategoryNode, name)}
}

func setConnectedNode(port *Element, n Node) {
	if n.Element == nil {
		port.RemoveAttribute(AttrNodeName)
		return
	}
	port.SetAttribute(AttrNodeName, n.Name())
}

// enclosingGraph returns the nearest ancestor that scopes node names: a
// node graph, or the document root for top-level elements.
func enclosingGraph(e *Element) *Element {
	for cur := e.parent; cur != nil; cur = cur.parent {
		if cur.category == CategoryNodeGraph || cur.parent == nil {
			return cur
		}
	}
	return nil
}

// interface-element surface shared by NodeDef and Node. The wrappers below
// delegate here so both expose the same parameter/input collections.

func addParameter(e *Element, name, typ string) (Parameter, error) {
	child, err := e.AddChild(CategoryParameter, name)
	if err != nil {
		return Parameter{}, err
	}
	if typ == "" {
		typ = DefaultType
	}
	child.SetType(typ)
	return Parameter{child}, nil
}

func addInput(e *Element, name, typ string) (Input, error) {
	child, err := e.AddChild(CategoryInput, name)
	if err != nil {
		return Input{}, err
	}
	if typ == "" {
		typ = DefaultType
	}
	child.SetType(typ)
	return Input{child}, nil
}

func parameters(e *Element) []Parameter {
	elems := e.ChildrenOfCategory(CategoryParameter)
	out := make([]Parameter, len(elems))
	for i, el := range elems {
		out[i] = Parameter{el}
	}
	return out
}

func inputs(e *Element) []Input {
	elems := e.ChildrenOfCategory(CategoryInput)
	out := make([]Input, len(elems))
	for i, el := range elems {
		out[i] = Input{el}
	}
	return out
}

// setParameterValue sets the value of a parameter by name, creating the
// parameter if needed.
func setParameterValue(e *Element, name, value, typ string) (Parameter, error) {
	param := e.ChildOfCategory(CategoryParameter, name)
	if param == nil {
		p, err := addParameter(e, name, typ)
		if err != nil {
			return Parameter{}, err
		}
		param = p.Element
	} else if typ != "" {
		param.SetType(typ)
	}
	param.SetValue(value)
	return Parameter{param}, nil
}
