// Package fs provides the file system operations behind blobstore.LocalStore
// as an interface for testability and fault injection.
//
//   - [LocalFS]: Production implementation using the os package
//   - [FaultyFS]: Test utility that injects write, sync, close and rename
//     failures
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".ply", fs.Fault{FailAfterBytes: 1024})
//	// inject ffs into the store under test
//
// Reads do not go through this package; LocalStore memory-maps files with
// internal/mmap.
package fs
