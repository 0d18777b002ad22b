package registry

import (
	"testing"

	"github.com/natively-ui/natively/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog([]manifest.Component{
		{Name: "button", Dependencies: []string{"react-native"}},
		{Name: "card"},
		{Name: "button", Description: "shadowed"},
	})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"button", "card"}, c.Names())

	button, ok := c.Lookup("button")
	require.True(t, ok)
	assert.Empty(t, button.Description)

	_, ok = c.Lookup("modal")
	assert.False(t, ok)
}

func TestCatalogIsImmutable(t *testing.T) {
	deps := []string{"react-native"}
	c := NewCatalog([]manifest.Component{{Name: "button", Dependencies: deps}})
	deps[0] = "changed"

	button, _ := c.Lookup("button")
	button.Dependencies[0] = "mutated"

	again, _ := c.Lookup("button")
	assert.Equal(t, []string{"react-native"}, again.Dependencies)
	assert.Equal(t, "react-native", c.Components()[0].Dependencies[0])
}

func TestArtifactPaths(t *testing.T) {
	assert.Equal(t, "components/button/index.tsx", ComponentPath("button"))
	assert.Equal(t, "components/button/types.ts", ComponentTypesPath("button"))
	assert.Equal(t, "utils/utils.ts", UtilityPath("utils"))
}
