package plycloud

import (
	"slices"

	"github.com/hupe1980/plycloud/element"
	"github.com/hupe1980/plycloud/internal/naming"
	"github.com/hupe1980/plycloud/pointcloud"
)

// BuildElements packs the vertex properties of cloud into a single
// "vertex" element, one bucket per value type. Property names lose their
// "v:" marker; order follows the cloud's property table.
func BuildElements(cloud *pointcloud.Cloud) ([]*element.Element, error) {
	if cloud == nil {
		return nil, ErrNilCloud
	}
	if cloud.NVertices() == 0 {
		return nil, ErrEmptyCloud
	}

	e := element.New(vertexElement, cloud.NVertices())
	e.Vec3Properties = collectProperties(cloud, e.Vec3Properties)
	e.FloatProperties = collectProperties(cloud, e.FloatProperties)
	e.IntProperties = collectProperties(cloud, e.IntProperties)
	e.IntListProperties = collectProperties(cloud, e.IntListProperties)
	e.FloatListProperties = collectProperties(cloud, e.FloatListProperties)

	return []*element.Element{e}, nil
}

// collectProperties appends a copy of every vertex property of type T.
func collectProperties[T pointcloud.Value](cloud *pointcloud.Cloud, dst []element.Property[T]) []element.Property[T] {
	for _, name := range cloud.VertexProperties() {
		p, ok := pointcloud.GetVertexProperty[T](cloud, name)
		if !ok {
			continue
		}
		dst = append(dst, element.NewProperty(vertexElement, naming.External(name), slices.Clone(p.Vector())))
	}
	return dst
}
