package region

import (
	"fmt"
	"strings"
)

// Collection is the ordered set of regions of one kind.
// Names are unique within a collection.
type Collection struct {
	kind    Kind
	regions []*Region
	byName  map[string]*Region
}

// NewCollection creates an empty collection for kind.
func NewCollection(kind Kind) *Collection {
	return &Collection{
		kind:   kind,
		byName: make(map[string]*Region),
	}
}

// Kind returns the collection's kind.
func (c *Collection) Kind() Kind {
	return c.kind
}

// Len returns the number of regions.
func (c *Collection) Len() int {
	return len(c.regions)
}

// Regions returns the regions in insertion order.
// The slice is a copy; the regions are shared.
func (c *Collection) Regions() []*Region {
	out := make([]*Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// Get returns the region with the given name.
func (c *Collection) Get(name string) (*Region, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Names returns region names in insertion order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.regions))
	for i, r := range c.regions {
		names[i] = r.Name
	}
	return names
}

// UniqueName returns base if unused, otherwise the first of base_2,
// base_3, ... that is free.
func (c *Collection) UniqueName(base string) string {
	if _, taken := c.byName[base]; !taken {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if _, taken := c.byName[candidate]; !taken {
			return candidate
		}
	}
}

// Add appends r, renaming it if its name is already taken.
// Returns the name the region was stored under.
func (c *Collection) Add(r *Region) (string, error) {
	if r.Kind != c.kind {
		return "", fmt.Errorf("%w: %s region into %s collection", ErrKindMismatch, r.Kind, c.kind)
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return "", ErrEmptyName
	}
	r.Name = c.UniqueName(name)
	c.regions = append(c.regions, r)
	c.byName[r.Name] = r
	return r.Name, nil
}

// Remove deletes the named region. Returns false if it was not present.
func (c *Collection) Remove(name string) bool {
	r, ok := c.byName[name]
	if !ok {
		return false
	}
	delete(c.byName, name)
	for i, existing := range c.regions {
		if existing == r {
			c.regions = append(c.regions[:i], c.regions[i+1:]...)
			break
		}
	}
	return true
}
