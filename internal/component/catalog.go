package component

import (
	"fmt"
	"sort"
)

// Catalog holds the components known to a compiler.
type Catalog struct {
	all map[string]Component
}

// NewCatalog creates a catalog holding comps.
func NewCatalog(comps ...Component) *Catalog {
	c := &Catalog{all: make(map[string]Component)}
	for _, comp := range comps {
		c.Register(comp)
	}
	return c
}

// Register adds a component. Registering two components under the same name
// is a programming error and panics.
func (c *Catalog) Register(comp Component) {
	name := comp.Name()
	if _, exists := c.all[name]; exists {
		panic(fmt.Sprintf("component with name '%s' already registered", name))
	}
	c.all[name] = comp
}

// Lookup returns the component handling the document key name.
func (c *Catalog) Lookup(name string) (Component, bool) {
	comp, ok := c.all[name]
	return comp, ok
}

// Names returns the registered component names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.all))
	for name := range c.all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LibDeps collects the library requirements of the named components on the
// platform, skipping components without one. Unknown names are ignored.
func (c *Catalog) LibDeps(p Platform, names ...string) []string {
	var deps []string
	seen := make(map[string]struct{})
	for _, name := range names {
		comp, ok := c.all[name]
		if !ok {
			continue
		}
		dep := comp.LibDeps(p)
		if dep == "" {
			continue
		}
		if _, dup := seen[dep]; dup {
			continue
		}
		seen[dep] = struct{}{}
		deps = append(deps, dep)
	}
	return deps
}
