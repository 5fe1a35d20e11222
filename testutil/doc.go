// Package testutil provides testing utilities for plycloud.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator and helpers to build point clouds
// carrying every vertex property type.
//
// # Random Clouds
//
//	rng := testutil.NewRNG(seed)
//	cloud := rng.Cloud(1000)   // points, normals, colors, labels, lists
//	pts := rng.Points(64)      // uniform in [-1, 1)^3
package testutil
