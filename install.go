package plycloud

import (
	"fmt"

	"github.com/hupe1980/plycloud/element"
	"github.com/hupe1980/plycloud/internal/naming"
	"github.com/hupe1980/plycloud/pointcloud"
)

// vertexElement is the only element installed into a point cloud.
const vertexElement = "vertex"

// InstallElements installs the "vertex" element of elements into cloud,
// reporting every other element to the observer of the default IO.
func InstallElements(cloud *pointcloud.Cloud, elements []*element.Element) error {
	return defaultIO().InstallElements(cloud, elements)
}

// InstallElements installs the "vertex" element of elements into cloud.
//
// The first vertex element resizes the cloud to its instance count; without
// one the cloud is left unsized. Its properties are then installed bucket by
// bucket as vertex properties named with the "v:" marker. Edge, face and
// unknown elements are reported to the observer and otherwise ignored.
//
// Property types are checked before anything is installed: on an
// *InstallError the cloud is neither resized nor modified.
func (pio *IO) InstallElements(cloud *pointcloud.Cloud, elements []*element.Element) error {
	if cloud == nil {
		return ErrNilCloud
	}

	if err := checkElements(cloud, elements); err != nil {
		return err
	}

	for _, e := range elements {
		if e.Name == vertexElement {
			cloud.Resize(e.NumInstances)
			break
		}
	}

	for _, e := range elements {
		if e.Name != vertexElement {
			pio.observer.ElementSkipped(e.Name, skipReason(e.Name))
			continue
		}
		if err := installElement(cloud, e); err != nil {
			return err
		}
	}
	return nil
}

func installElement(cloud *pointcloud.Cloud, e *element.Element) error {
	if err := installProperties(cloud, e.Vec3Properties); err != nil {
		return err
	}
	if err := installProperties(cloud, e.FloatProperties); err != nil {
		return err
	}
	if err := installProperties(cloud, e.IntProperties); err != nil {
		return err
	}
	if err := installProperties(cloud, e.IntListProperties); err != nil {
		return err
	}
	return installProperties(cloud, e.FloatListProperties)
}

// installProperties copies one bucket into cloud, creating or reusing a
// vertex property of type T per entry.
func installProperties[T pointcloud.Value](cloud *pointcloud.Cloud, props []element.Property[T]) error {
	for _, p := range props {
		name := naming.Internal(p.Name)
		dst, err := pointcloud.VertexProperty[T](cloud, name)
		if err != nil {
			return &InstallError{Property: name, cause: err}
		}
		dst.SetVector(p.Values)
	}
	return nil
}

// checkElements verifies that every vertex property can be installed with
// its bucket type, against the cloud and against the other elements.
func checkElements(cloud *pointcloud.Cloud, elements []*element.Element) error {
	planned := make(map[string]string)
	for _, e := range elements {
		if e.Name != vertexElement {
			continue
		}
		if err := checkProperties(cloud, e.Vec3Properties, planned); err != nil {
			return err
		}
		if err := checkProperties(cloud, e.FloatProperties, planned); err != nil {
			return err
		}
		if err := checkProperties(cloud, e.IntProperties, planned); err != nil {
			return err
		}
		if err := checkProperties(cloud, e.IntListProperties, planned); err != nil {
			return err
		}
		if err := checkProperties(cloud, e.FloatListProperties, planned); err != nil {
			return err
		}
	}
	return nil
}

func checkProperties[T pointcloud.Value](cloud *pointcloud.Cloud, props []element.Property[T], planned map[string]string) error {
	var zero T
	typ := fmt.Sprintf("%T", zero)
	for _, p := range props {
		name := naming.Internal(p.Name)
		if err := pointcloud.CheckVertexProperty[T](cloud, name); err != nil {
			return &InstallError{Property: name, cause: err}
		}
		if prev, ok := planned[name]; ok && prev != typ {
			return &InstallError{
				Property: name,
				cause:    fmt.Errorf("%w: %q is %s, not %s", pointcloud.ErrTypeMismatch, name, prev, typ),
			}
		}
		planned[name] = typ
	}
	return nil
}
