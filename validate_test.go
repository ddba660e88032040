package mtlx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mtlx/errors"
)

func TestValidateCleanMaterial(t *testing.T) {
	doc := NewDocument()
	nd, _ := doc.AddNodeDef("ND_plastic", "plastic")
	_, err := nd.AddInput("roughness", "float")
	require.NoError(t, err)
	ng, _ := doc.AddNodeGraph("NG1")
	out, _ := ng.AddOutput("out1", "color3")

	base, _ := doc.AddMaterial("base")
	m, _ := doc.AddMaterial("M1")
	require.NoError(t, m.SetInheritsFrom(base))
	sr, _ := m.AddShaderRef("SR1", "")
	sr.SetNodeDefString("ND_plastic")
	bi, _ := sr.AddBindInput("diffuse_color", "color3")
	bi.SetConnectedOutput(out)

	assert.NoError(t, m.Validate())
	assert.NoError(t, doc.Validate())
}

func TestValidateInheritanceCycle(t *testing.T) {
	doc := NewDocument()
	m, _ := doc.AddMaterial("M")
	n, _ := doc.AddMaterial("N")
	require.NoError(t, m.SetInheritsFrom(n))
	require.NoError(t, n.SetInheritsFrom(m))

	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeInheritCycle))
	assert.Contains(t, strings.ToLower(err.Error()), "cycle")
}

func TestValidateSelfInheritance(t *testing.T) {
	doc := NewDocument()
	m, _ := doc.AddMaterial("M")
	require.NoError(t, m.SetInheritsFrom(m))

	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeInheritCycle))
}

func TestValidateUnresolvedInherit(t *testing.T) {
	doc := NewDocument()
	m, _ := doc.AddMaterial("M")
	_, err := m.AddInherit("gone")
	require.NoError(t, err)

	verr := m.Validate()
	require.Error(t, verr)
	assert.True(t, errors.HasCode(verr, errors.CodeUnresolvedInherit))
	// Query-time leniency is unaffected.
	assert.Nil(t, m.InheritsFrom().Element)
}

func TestValidateUnresolvedNodeDef(t *testing.T) {
	doc := NewDocument()
	m, _ := doc.AddMaterial("M1")
	sr, _ := m.AddShaderRef("SR1", "")
	sr.SetNodeDefString("ND_missing")

	// Lenient at query time, strict at validation time.
	assert.Nil(t, sr.ReferencedNodeDef().Element)
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnresolvedNodeDef))
}

func TestValidateShaderRefWithoutReferencePasses(t *testing.T) {
	doc := NewDocument()
	m, _ := doc.AddMaterial("M1")
	_, err := m.AddShaderRef("SR1", "")
	require.NoError(t, err)

	assert.NoError(t, m.Validate())
}

func TestValidateBindInputStages(t *testing.T) {
	doc := NewDocument()
	ng, _ := doc.AddNodeGraph("NG1")
	_, err := ng.AddOutput("out1", "color3")
	require.NoError(t, err)

	m, _ := doc.AddMaterial("M1")
	sr, _ := m.AddShaderRef("SR1", "")

	// No declaration at all: fine.
	_, err = sr.AddBindInput("unbound", "color3")
	require.NoError(t, err)
	assert.NoError(t, m.Validate())

	// Unknown graph fails at the first stage.
	missingGraph, _ := sr.AddBindInput("bad_graph", "color3")
	missingGraph.SetNodeGraphString("NG_missing")
	missingGraph.SetOutputString("out1")
	err = m.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnresolvedNodeGraph))
	assert.False(t, errors.HasCode(err, errors.CodeUnresolvedOutput))
	sr.RemoveBindInput("bad_graph")

	// Known graph, unknown output fails at the second stage.
	missingOut, _ := sr.AddBindInput("bad_output", "color3")
	missingOut.SetNodeGraphString("NG1")
	missingOut.SetOutputString("out_missing")
	err = m.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnresolvedOutput))
	assert.False(t, errors.HasCode(err, errors.CodeUnresolvedNodeGraph))
	sr.RemoveBindInput("bad_output")

	// Graph declared without an output name is a partial declaration.
	partial, _ := sr.AddBindInput("partial", "color3")
	partial.SetNodeGraphString("NG1")
	err = m.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnresolvedOutput))
}

func TestValidateMalformedName(t *testing.T) {
	doc := NewDocument()
	m, _ := doc.AddMaterial("M1")
	_, err := m.AddChild(CategoryShaderRef, "9bad name")
	require.NoError(t, err, "malformed names are caught by validation, not creation")

	verr := m.Validate()
	require.Error(t, verr)
	assert.True(t, errors.HasCode(verr, errors.CodeInvalidName))
}

func TestDocumentValidateAggregatesMaterials(t *testing.T) {
	doc := NewDocument()
	m1, _ := doc.AddMaterial("M1")
	sr1, _ := m1.AddShaderRef("SR1", "")
	sr1.SetNodeDefString("ND_missing_a")
	m2, _ := doc.AddMaterial("M2")
	sr2, _ := m2.AddShaderRef("SR2", "")
	sr2.SetNodeDefString("ND_missing_b")

	err := doc.Validate()
	require.Error(t, err)
	findings, ok := errors.Findings(err)
	require.True(t, ok)
	assert.Len(t, findings, 2)
}
