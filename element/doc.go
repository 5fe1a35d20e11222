// Package element defines the generic tabular model of a PLY file's contents.
//
// # Elements
//
// An Element is a named table of NumInstances rows. Its columns are kept in
// five buckets, one per supported value type:
//
//   - Vec3Properties: 3D vectors (positions, normals, colors)
//   - FloatProperties: single-precision scalars
//   - IntProperties: 32-bit integer scalars
//   - IntListProperties: one variable-length []int32 per row
//   - FloatListProperties: one variable-length []float32 per row
//
// Buckets are ordered slices so that property order survives a round trip
// through a file.
//
// # Properties
//
// Property[T] is the carrier for a single column:
//
//	e := element.New("vertex", 3)
//	e.FloatProperties = append(e.FloatProperties,
//	    element.NewProperty("vertex", "quality", []float32{0.1, 0.2, 0.3}))
package element
