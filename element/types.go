package element

import (
	"errors"
	"fmt"
)

// Vec3 is a 3D vector of single-precision components.
type Vec3 [3]float32

// Property is a named column of an element (a "generic property").
// Values holds one entry per element row.
type Property[T any] struct {
	ElementName string
	Name        string
	Values      []T
}

// NewProperty creates a property of the given element.
// The values slice is used as-is, not copied.
func NewProperty[T any](elementName, name string, values []T) Property[T] {
	return Property[T]{
		ElementName: elementName,
		Name:        name,
		Values:      values,
	}
}

// Len returns the number of rows held by the property.
func (p Property[T]) Len() int {
	return len(p.Values)
}

// Element is a named table of rows holding typed property buckets.
type Element struct {
	Name         string
	NumInstances int

	Vec3Properties      []Property[Vec3]
	FloatProperties     []Property[float32]
	IntProperties       []Property[int32]
	IntListProperties   []Property[[]int32]
	FloatListProperties []Property[[]float32]
}

// New creates an empty element with n instances.
func New(name string, n int) *Element {
	return &Element{
		Name:         name,
		NumInstances: n,
	}
}

// Empty reports whether the element has no properties at all.
func (e *Element) Empty() bool {
	return len(e.Vec3Properties) == 0 &&
		len(e.FloatProperties) == 0 &&
		len(e.IntProperties) == 0 &&
		len(e.IntListProperties) == 0 &&
		len(e.FloatListProperties) == 0
}

// PropertyNames returns the names of all properties, bucket by bucket.
func (e *Element) PropertyNames() []string {
	var names []string
	for _, p := range e.Vec3Properties {
		names = append(names, p.Name)
	}
	for _, p := range e.FloatProperties {
		names = append(names, p.Name)
	}
	for _, p := range e.IntProperties {
		names = append(names, p.Name)
	}
	for _, p := range e.IntListProperties {
		names = append(names, p.Name)
	}
	for _, p := range e.FloatListProperties {
		names = append(names, p.Name)
	}
	return names
}

// ErrLengthMismatch is returned by Validate when a property does not have
// exactly NumInstances entries.
var ErrLengthMismatch = errors.New("property length does not match element instance count")

// Validate checks that every property holds exactly NumInstances values.
func (e *Element) Validate() error {
	if e.NumInstances < 0 {
		return fmt.Errorf("element %q: negative instance count %d", e.Name, e.NumInstances)
	}
	if err := validateBucket(e, e.Vec3Properties); err != nil {
		return err
	}
	if err := validateBucket(e, e.FloatProperties); err != nil {
		return err
	}
	if err := validateBucket(e, e.IntProperties); err != nil {
		return err
	}
	if err := validateBucket(e, e.IntListProperties); err != nil {
		return err
	}
	return validateBucket(e, e.FloatListProperties)
}

func validateBucket[T any](e *Element, props []Property[T]) error {
	for _, p := range props {
		if p.Len() != e.NumInstances {
			return fmt.Errorf("element %q property %q: %w (got %d, want %d)",
				e.Name, p.Name, ErrLengthMismatch, p.Len(), e.NumInstances)
		}
	}
	return nil
}
