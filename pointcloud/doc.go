// Package pointcloud provides a columnar vertex property container.
//
// A Cloud holds a vertex count and an insertion-ordered table of named,
// typed vertex properties. Every property has exactly NVertices entries;
// Resize grows or shrinks all of them together.
//
// Properties are accessed through generic functions because Go methods
// cannot carry type parameters:
//
//	c := pointcloud.New()
//	c.Resize(3)
//	quality, err := pointcloud.VertexProperty[float32](c, "v:quality")
//	if err != nil { ... }
//	quality.Set(0, 0.9)
//
//	if normals, ok := pointcloud.GetVertexProperty[element.Vec3](c, "v:normal"); ok {
//	    _ = normals.Vector()
//	}
//
// # Deletion
//
// Vertices can be marked deleted and removed later in one pass:
//
//	c.DeleteVertex(1)
//	c.CollectGarbage() // compacts every property
//
// Deletion marks are stored in a Roaring bitmap.
//
// # Thread Safety
//
// A Cloud is not safe for concurrent use. Callers must not share a Cloud
// between goroutines without external synchronization.
package pointcloud
