package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	doc, err := ReadString(scenarioXML)
	require.NoError(t, err)

	root, ok := Project(doc.Element).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "materialx", root["category"])

	attrs, ok := root["attributes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.35", attrs["version"])

	children, ok := root["children"].([]any)
	require.True(t, ok)
	assert.Len(t, children, 4)
}

func TestJSONIsDeterministic(t *testing.T) {
	doc, err := ReadString(scenarioXML)
	require.NoError(t, err)

	first := JSON(doc)
	second := JSON(doc)
	assert.Equal(t, first, second)
	assert.Contains(t, first, `"ND_plastic"`)
}

func TestQuery(t *testing.T) {
	doc, err := ReadString(scenarioXML)
	require.NoError(t, err)

	names, err := Query(doc, "$.children[*].name")
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{"ND_plastic", "out1", "M1", "default"}, names)

	materials, err := Query(doc, "$..children[?(@.category == 'shaderref')].attributes.nodedef")
	require.NoError(t, err)
	assert.Equal(t, []any{"ND_plastic"}, materials)

	_, err = Query(doc, "$[")
	require.Error(t, err)
}
