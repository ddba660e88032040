package mtlx

import (
	"github.com/agentic-research/mtlx/errors"
	"github.com/agentic-research/mtlx/internal/graphcycle"
)

// Validate checks the material and everything it owns. Conditions that are
// ordinary absent results at query time (a dangling node def, an unresolved
// output pair) become findings here: validation is the one place that
// asserts the document is currently broken. It returns nil on success or an
// errors.List of findings.
func (m Material) Validate() error {
	var findings errors.List
	m.validateTree(&findings)
	m.checkReferences(&findings)
	if len(findings) == 0 {
		return nil
	}
	return findings
}

// checkReferences appends findings for the material's reference and
// inheritance invariants without re-running base structural checks.
func (m Material) checkReferences(findings *errors.List) {
	for _, sr := range m.ShaderRefs() {
		m.checkShaderRef(sr, findings)
	}
	m.checkInheritance(findings)
}

func (m Material) checkShaderRef(sr ShaderRef, findings *errors.List) {
	if sr.HasNodeDefString() || sr.HasNodeString() {
		if sr.ReferencedNodeDef().Element == nil {
			ref := sr.NodeDefString()
			if ref == "" {
				ref = sr.NodeString()
			}
			*findings = append(*findings, errors.New(errors.CodeUnresolvedNodeDef, sr.Path(),
				"shaderref %q references unknown node definition %q", sr.Name(), ref))
		}
	}
	for _, bi := range sr.BindInputs() {
		checkBindInput(bi, findings)
	}
}

// checkBindInput verifies the two-stage output reference. A bind input with
// neither attribute set declares no connection and passes; a partially or
// wrongly addressed connection fails, with the failing stage identified.
func checkBindInput(bi BindInput, findings *errors.List) {
	if !bi.HasNodeGraphString() && !bi.HasOutputString() {
		return
	}
	if graph := bi.NodeGraphString(); graph != "" && bi.Document().NodeGraph(graph).Element == nil {
		*findings = append(*findings, errors.New(errors.CodeUnresolvedNodeGraph, bi.Path(),
			"bindinput %q references unknown node graph %q", bi.Name(), graph))
		return
	}
	if bi.ConnectedOutput().Element == nil {
		scope := bi.NodeGraphString()
		if scope == "" {
			scope = "document root"
		} else {
			scope = "node graph " + scope
		}
		*findings = append(*findings, errors.New(errors.CodeUnresolvedOutput, bi.Path(),
			"bindinput %q references unknown output %q in %s", bi.Name(), bi.OutputString(), scope))
	}
}

// checkInheritance verifies that every declared inherit target exists and
// that following the inherits-from chain terminates without revisiting a
// material.
func (m Material) checkInheritance(findings *errors.List) {
	doc := m.Document()
	for _, inh := range m.Inherits() {
		if inh.ReferencedMaterial().Element == nil {
			*findings = append(*findings, errors.New(errors.CodeUnresolvedInherit, inh.Path(),
				"material %q inherits from unknown material %q", m.Name(), inh.Name()))
		}
	}
	err := graphcycle.Detect(graphcycle.Config[string]{
		Exists: func(name string) bool { return doc.Material(name).Element != nil },
		Next: func(name string) []string {
			inhs := doc.Material(name).Inherits()
			if len(inhs) == 0 {
				return nil
			}
			return []string{inhs[0].Name()}
		},
		Starts: []string{m.Name()},
	})
	if _, cyclic := err.(graphcycle.CycleError[string]); cyclic {
		*findings = append(*findings, errors.New(errors.CodeInheritCycle, m.Path(),
			"inheritance cycle involving material %q", m.Name()))
	}
}
