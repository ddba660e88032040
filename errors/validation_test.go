package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindingError(t *testing.T) {
	f := New(CodeUnresolvedNodeDef, "M1/SR1", "shaderref %q references unknown node definition %q", "SR1", "ND_x")
	assert.Equal(t, `[unresolved-nodedef] shaderref "SR1" references unknown node definition "ND_x" at M1/SR1`, f.Error())

	noPath := New(CodeInheritCycle, "", "cycle")
	assert.Equal(t, "[inherit-cycle] cycle", noPath.Error())
}

func TestListError(t *testing.T) {
	assert.Equal(t, "no validation findings", List{}.Error())

	one := List{New(CodeInvalidName, "M1", "bad name")}
	assert.Equal(t, "[invalid-name] bad name at M1", one.Error())

	two := append(one, New(CodeInheritCycle, "M1", "cycle"))
	assert.Equal(t, "[invalid-name] bad name at M1 (and 1 more)", two.Error())
}

func TestFindingsExtraction(t *testing.T) {
	list := List{New(CodeInvalidName, "M1", "bad name")}

	got, ok := Findings(error(list))
	require.True(t, ok)
	assert.Len(t, got, 1)

	wrapped := fmt.Errorf("validate: %w", list)
	got, ok = Findings(wrapped)
	require.True(t, ok)
	assert.Len(t, got, 1)

	_, ok = Findings(nil)
	assert.False(t, ok)
	_, ok = Findings(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestHasCode(t *testing.T) {
	list := List{
		New(CodeInvalidName, "M1", "bad name"),
		New(CodeInheritCycle, "M1", "cycle"),
	}
	assert.True(t, HasCode(error(list), CodeInheritCycle))
	assert.False(t, HasCode(error(list), CodeUnresolvedOutput))
	assert.False(t, HasCode(nil, CodeInheritCycle))
}
