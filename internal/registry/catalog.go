package registry

import (
	"slices"

	"github.com/natively-ui/natively/internal/manifest"
)

// Catalog is the immutable set of components available for one invocation,
// keyed by name and ordered as in the registry index.
type Catalog struct {
	components []manifest.Component
	byName     map[string]int
}

// NewCatalog builds a Catalog. If a name repeats, the first entry wins.
func NewCatalog(components []manifest.Component) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(components))}
	for _, comp := range components {
		if _, ok := c.byName[comp.Name]; ok {
			continue
		}
		comp.Dependencies = slices.Clone(comp.Dependencies)
		c.byName[comp.Name] = len(c.components)
		c.components = append(c.components, comp)
	}
	return c
}

// Names returns component names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.components))
	for i, comp := range c.components {
		names[i] = comp.Name
	}
	return names
}

// Lookup returns the descriptor for name.
func (c *Catalog) Lookup(name string) (manifest.Component, bool) {
	i, ok := c.byName[name]
	if !ok {
		return manifest.Component{}, false
	}
	comp := c.components[i]
	comp.Dependencies = slices.Clone(comp.Dependencies)
	return comp, true
}

// Components returns a copy of every descriptor in catalog order.
func (c *Catalog) Components() []manifest.Component {
	out := make([]manifest.Component, len(c.components))
	for i, comp := range c.components {
		comp.Dependencies = slices.Clone(comp.Dependencies)
		out[i] = comp
	}
	return out
}

// Len returns the number of components.
func (c *Catalog) Len() int {
	return len(c.components)
}
