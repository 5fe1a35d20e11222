package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/plycloud/element"
	"github.com/hupe1980/plycloud/pointcloud"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns a random float32 in [0, 1).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniformRange fills dst with values in [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*(maxVal-minVal)
	}
}

// Points returns n points uniform in [-1, 1)^3.
func (r *RNG) Points(n int) []element.Vec3 {
	pts := make([]element.Vec3, n)
	for i := range pts {
		r.FillUniformRange(pts[i][:], -1, 1)
	}
	return pts
}

// UnitVec3s returns n random unit vectors.
func (r *RNG) UnitVec3s(n int) []element.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]element.Vec3, n)
	for i := range out {
		var v element.Vec3
		var norm float64
		for norm == 0 {
			norm = 0
			for k := range v {
				v[k] = float32(r.rand.NormFloat64())
				norm += float64(v[k]) * float64(v[k])
			}
		}
		inv := float32(1 / math.Sqrt(norm))
		out[i] = element.Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
	}
	return out
}

// Colors returns n colors with channels in [0, 1).
func (r *RNG) Colors(n int) []element.Vec3 {
	out := make([]element.Vec3, n)
	for i := range out {
		r.FillUniformRange(out[i][:], 0, 1)
	}
	return out
}

// Cloud returns a cloud of n vertices carrying one property of every
// value type: v:point, v:normal, v:color, v:quality, v:label,
// v:neighbors and v:weights.
func (r *RNG) Cloud(n int) *pointcloud.Cloud {
	c := pointcloud.New()
	c.Resize(n)

	mustSet(c, "v:point", r.Points(n))
	mustSet(c, "v:normal", r.UnitVec3s(n))
	mustSet(c, "v:color", r.Colors(n))

	quality := make([]float32, n)
	r.FillUniformRange(quality, 0, 1)
	mustSet(c, "v:quality", quality)

	labels := make([]int32, n)
	neighbors := make([][]int32, n)
	weights := make([][]float32, n)
	for i := 0; i < n; i++ {
		labels[i] = int32(r.Intn(16)) - 8
		neighbors[i] = make([]int32, r.Intn(6))
		for k := range neighbors[i] {
			neighbors[i][k] = int32(r.Intn(n))
		}
		weights[i] = make([]float32, len(neighbors[i]))
		r.FillUniformRange(weights[i], 0, 1)
	}
	mustSet(c, "v:label", labels)
	mustSet(c, "v:neighbors", neighbors)
	mustSet(c, "v:weights", weights)

	return c
}

func mustSet[T pointcloud.Value](c *pointcloud.Cloud, name string, values []T) {
	p, err := pointcloud.VertexProperty[T](c, name)
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	p.SetVector(values)
}
