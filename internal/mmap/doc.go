// Package mmap provides read-only memory-mapped file access.
//
// # Usage
//
//	m, err := mmap.Open("room.ply")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-copy view of the file
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) access hints
//   - Windows: CreateFileMapping/MapViewOfFile (advice is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent reads. Close is idempotent. Callers must
// not use a slice returned by Bytes after Close returns.
package mmap
