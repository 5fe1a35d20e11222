package pointcloud

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/plycloud/element"
)

// Value is the closed set of vertex property value types.
type Value interface {
	element.Vec3 | float32 | int32 | []int32 | []float32
}

// column is the type-erased view of a Property used by Cloud.
type column interface {
	name() string
	typeName() string
	resize(n int)
	compact(deleted *roaring.Bitmap)
}

// Property is a typed vertex property.
// Its backing vector always has one entry per vertex of the owning Cloud.
type Property[T Value] struct {
	n      string
	values []T
}

// Name returns the property name.
func (p *Property[T]) Name() string { return p.n }

// Len returns the number of entries.
func (p *Property[T]) Len() int { return len(p.values) }

// Vector returns the backing vector. It aliases the property's storage.
func (p *Property[T]) Vector() []T { return p.values }

// SetVector copies values into the property. The vector keeps its length:
// surplus values are dropped and missing ones are zero.
func (p *Property[T]) SetVector(values []T) {
	v := make([]T, len(p.values))
	copy(v, values)
	p.values = v
}

// At returns the value of vertex i.
func (p *Property[T]) At(i int) T { return p.values[i] }

// Set sets the value of vertex i.
func (p *Property[T]) Set(i int, v T) { p.values[i] = v }

func (p *Property[T]) name() string { return p.n }

func (p *Property[T]) typeName() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func (p *Property[T]) resize(n int) {
	old := len(p.values)
	if n <= old {
		clear(p.values[n:])
		p.values = p.values[:n]
		return
	}
	if n > cap(p.values) {
		v := make([]T, n)
		copy(v, p.values)
		p.values = v
		return
	}
	p.values = p.values[:n]
	clear(p.values[old:])
}

func (p *Property[T]) compact(deleted *roaring.Bitmap) {
	j := 0
	for i := range p.values {
		if deleted.Contains(uint32(i)) {
			continue
		}
		p.values[j] = p.values[i]
		j++
	}
	clear(p.values[j:])
	p.values = p.values[:j]
}
