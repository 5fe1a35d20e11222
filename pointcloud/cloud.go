package pointcloud

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/plycloud/element"
)

// PointProperty is the name of the vertex position property.
const PointProperty = "v:point"

var (
	// ErrTypeMismatch is returned when a property exists under the requested
	// name with a different value type.
	ErrTypeMismatch = errors.New("vertex property type mismatch")
)

// Cloud is a set of vertices with named, typed per-vertex properties.
type Cloud struct {
	n       int
	props   []column
	index   map[string]int
	deleted *roaring.Bitmap
}

// New creates an empty cloud without vertices or properties.
func New() *Cloud {
	return &Cloud{
		index:   make(map[string]int),
		deleted: roaring.New(),
	}
}

// NVertices returns the number of vertices, including deleted ones.
func (c *Cloud) NVertices() int {
	return c.n
}

// Resize sets the number of vertices. Every property is resized with it;
// new entries hold the zero value. Deletion marks beyond n are dropped.
func (c *Cloud) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n < c.n {
		c.deleted.RemoveRange(uint64(n), uint64(c.n))
	}
	for _, p := range c.props {
		p.resize(n)
	}
	c.n = n
}

// Clear removes all vertices and properties.
func (c *Cloud) Clear() {
	c.n = 0
	c.props = nil
	c.index = make(map[string]int)
	c.deleted.Clear()
}

// VertexProperties returns the property names in insertion order.
func (c *Cloud) VertexProperties() []string {
	names := make([]string, len(c.props))
	for i, p := range c.props {
		names[i] = p.name()
	}
	return names
}

// HasVertexProperty reports whether a property of any type exists under name.
func (c *Cloud) HasVertexProperty(name string) bool {
	_, ok := c.index[name]
	return ok
}

// RemoveVertexProperty removes the named property.
// It reports whether a property was removed.
func (c *Cloud) RemoveVertexProperty(name string) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}
	c.props = append(c.props[:i], c.props[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.props); j++ {
		c.index[c.props[j].name()] = j
	}
	return true
}

// VertexProperty returns the property of type T named name, creating it
// with NVertices zero values if it does not exist.
func VertexProperty[T Value](c *Cloud, name string) (*Property[T], error) {
	if err := CheckVertexProperty[T](c, name); err != nil {
		return nil, err
	}
	if i, ok := c.index[name]; ok {
		return c.props[i].(*Property[T]), nil
	}
	p := &Property[T]{n: name, values: make([]T, c.n)}
	c.index[name] = len(c.props)
	c.props = append(c.props, p)
	return p, nil
}

// CheckVertexProperty returns ErrTypeMismatch if name is taken by a
// property of another type than T. It never modifies the cloud.
func CheckVertexProperty[T Value](c *Cloud, name string) error {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	if _, ok := c.props[i].(*Property[T]); !ok {
		var zero T
		return fmt.Errorf("%w: %q is %s, not %T", ErrTypeMismatch, name, c.props[i].typeName(), zero)
	}
	return nil
}

// GetVertexProperty returns the property of type T named name.
// It reports false if no such property exists or it holds another type.
func GetVertexProperty[T Value](c *Cloud, name string) (*Property[T], bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	p, ok := c.props[i].(*Property[T])
	return p, ok
}

// AddVertex appends a vertex at position p and returns its index.
func (c *Cloud) AddVertex(p element.Vec3) (int, error) {
	points, err := VertexProperty[element.Vec3](c, PointProperty)
	if err != nil {
		return -1, err
	}
	idx := c.n
	c.Resize(c.n + 1)
	points.Set(idx, p)
	return idx, nil
}

// Points returns the vertex positions, or nil if the cloud has none.
func (c *Cloud) Points() []element.Vec3 {
	p, ok := GetVertexProperty[element.Vec3](c, PointProperty)
	if !ok {
		return nil
	}
	return p.Vector()
}

// DeleteVertex marks vertex i as deleted. Out-of-range indices are ignored.
func (c *Cloud) DeleteVertex(i int) {
	if i < 0 || i >= c.n {
		return
	}
	c.deleted.Add(uint32(i))
}

// IsDeleted reports whether vertex i is marked deleted.
func (c *Cloud) IsDeleted(i int) bool {
	if i < 0 {
		return false
	}
	return c.deleted.Contains(uint32(i))
}

// NDeleted returns the number of vertices marked deleted.
func (c *Cloud) NDeleted() int {
	return int(c.deleted.GetCardinality())
}

// HasGarbage reports whether any vertex is marked deleted.
func (c *Cloud) HasGarbage() bool {
	return !c.deleted.IsEmpty()
}

// CollectGarbage removes all deleted vertices from every property.
// Surviving vertices keep their relative order.
func (c *Cloud) CollectGarbage() {
	if c.deleted.IsEmpty() {
		return
	}
	for _, p := range c.props {
		p.compact(c.deleted)
	}
	c.n -= int(c.deleted.GetCardinality())
	c.deleted.Clear()
}
