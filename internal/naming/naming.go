// Package naming holds the vertex property naming convention shared by the
// load and save paths.
package naming

import "strings"

// VertexPrefix namespaces point-cloud vertex properties.
// File-model names are bare ("point"); cloud names are prefixed ("v:point").
const VertexPrefix = "v:"

// Internal returns the cloud-side name for a file-model property name.
// Names that already carry the prefix are returned unchanged.
func Internal(name string) string {
	if strings.HasPrefix(name, VertexPrefix) {
		return name
	}
	return VertexPrefix + name
}

// External returns the file-model name for a cloud-side property name.
// Exactly one leading prefix is stripped; other names are returned unchanged.
func External(name string) string {
	return strings.TrimPrefix(name, VertexPrefix)
}
