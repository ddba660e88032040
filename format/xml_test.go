package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mtlx"
)

const scenarioXML = `<?xml version="1.0" encoding="UTF-8"?>
<materialx version="1.35">
  <nodedef name="ND_plastic" node="plastic">
    <input name="roughness" type="float"/>
  </nodedef>
  <output name="out1" type="color3"/>
  <material name="M1">
    <shaderref name="SR1" nodedef="ND_plastic">
      <bindinput name="diffuse_color" type="color3" output="out1"/>
    </shaderref>
    <override name="roughness" type="float" value="0.3"/>
  </material>
  <look name="default">
    <materialassign name="ma1" material="M1"/>
  </look>
</materialx>
`

func TestReadScenario(t *testing.T) {
	doc, err := ReadString(scenarioXML)
	require.NoError(t, err)
	assert.Equal(t, "1.35", doc.Version())

	m1 := doc.Material("M1")
	require.NotNil(t, m1.Element)

	defs := m1.ReferencedNodeDefs()
	require.Len(t, defs, 1)
	assert.Equal(t, "ND_plastic", defs[0].Name())

	sr1 := m1.ShaderRef("SR1")
	require.NotNil(t, sr1.Element)
	outs := sr1.ReferencedOutputs()
	require.Len(t, outs, 1)
	assert.Same(t, doc.Output("out1").Element, outs[0].Element)

	receiver := m1.Override("roughness").Receiver()
	require.NotNil(t, receiver)
	assert.Same(t, doc.NodeDef("ND_plastic").Input("roughness").Element, receiver)

	assert.Len(t, m1.ReferencingMaterialAssigns(), 1)
	require.NoError(t, doc.Validate())
}

func TestRoundTrip(t *testing.T) {
	doc, err := ReadString(scenarioXML)
	require.NoError(t, err)

	first, err := WriteString(doc)
	require.NoError(t, err)
	reread, err := ReadString(first)
	require.NoError(t, err)
	second, err := WriteString(reread)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `<shaderref name="SR1" nodedef="ND_plastic">`)
	assert.Contains(t, first, `<materialx version="1.35">`)
}

func TestWritePreservesOrder(t *testing.T) {
	doc := mtlx.NewDocument()
	m, _ := doc.AddMaterial("M1")
	_, err := m.AddShaderRef("z_first", "")
	require.NoError(t, err)
	_, err = m.AddShaderRef("a_second", "")
	require.NoError(t, err)

	out, err := WriteString(doc)
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "z_first"), strings.Index(out, "a_second"))
}

func TestReadRejectsWrongRoot(t *testing.T) {
	_, err := ReadString(`<?xml version="1.0"?><scene/>`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root element")
}

func TestReadRejectsTextContent(t *testing.T) {
	_, err := ReadString(`<materialx><material name="M1">hello</material></materialx>`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text content")
}

func TestReadRejectsDuplicateSiblings(t *testing.T) {
	_, err := ReadString(`<materialx><material name="M1"/><material name="M1"/></materialx>`)
	require.Error(t, err)
}
