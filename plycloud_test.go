package plycloud

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/hupe1980/plycloud/blobstore"
	"github.com/hupe1980/plycloud/element"
	"github.com/hupe1980/plycloud/ply"
	"github.com/hupe1980/plycloud/pointcloud"
	"github.com/hupe1980/plycloud/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		codec := new(MockCodec)
		codec.On("Read", ctx, "cloud.ply").Return([]*element.Element{vertexElement3()}, nil)

		pio := New(WithCodec(codec), WithLogger(nil))
		cloud := pointcloud.New()
		require.NoError(t, pio.Load(ctx, "cloud.ply", cloud))

		assert.Equal(t, 3, cloud.NVertices())
		assert.Equal(t, []string{"v:point", "v:quality"}, cloud.VertexProperties())
		codec.AssertExpectations(t)
	})

	t.Run("DecodeError", func(t *testing.T) {
		cause := errors.New("boom")
		codec := new(MockCodec)
		codec.On("Read", ctx, "bad.ply").Return(nil, cause)

		cloud := pointcloud.New()
		cloud.Resize(2)
		err := New(WithCodec(codec), WithLogger(nil)).Load(ctx, "bad.ply", cloud)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))

		var de *DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "bad.ply", de.Path)
		assert.Equal(t, 2, cloud.NVertices())
	})

	t.Run("FaceOnlyIsNotAnError", func(t *testing.T) {
		obs := &recordingObserver{}
		codec := new(MockCodec)
		codec.On("Read", ctx, "mesh.ply").Return([]*element.Element{element.New("face", 4)}, nil)

		cloud := pointcloud.New()
		require.NoError(t, New(WithCodec(codec), WithObserver(obs), WithLogger(nil)).Load(ctx, "mesh.ply", cloud))
		assert.Equal(t, 0, cloud.NVertices())
		assert.Equal(t, []skipped{{"face", SkipFace}}, obs.skipped)
	})
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("NilAndEmptyCloud", func(t *testing.T) {
		codec := new(MockCodec)
		pio := New(WithCodec(codec), WithLogger(nil))

		err := pio.Save(ctx, "out.ply", nil, true)
		assert.True(t, errors.Is(err, ErrNilCloud))

		err = pio.Save(ctx, "out.ply", pointcloud.New(), true)
		assert.True(t, errors.Is(err, ErrEmptyCloud))

		codec.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Binary", func(t *testing.T) {
		obs := &recordingObserver{}
		codec := new(MockCodec)
		codec.On("Write", ctx, "out.ply", mock.MatchedBy(func(elements []*element.Element) bool {
			return len(elements) == 1 &&
				elements[0].Name == "vertex" &&
				elements[0].NumInstances == 2 &&
				assert.ObjectsAreEqual([]string{"point"}, elements[0].PropertyNames())
		}), "", true).Return(nil)

		cloud := pointcloud.New()
		_, _ = cloud.AddVertex(element.Vec3{1, 2, 3})
		_, _ = cloud.AddVertex(element.Vec3{4, 5, 6})

		require.NoError(t, New(WithCodec(codec), WithObserver(obs), WithLogger(nil)).Save(ctx, "out.ply", cloud, true))
		codec.AssertExpectations(t)
		assert.Empty(t, obs.ascii)
	})

	t.Run("ASCIIAdvisory", func(t *testing.T) {
		obs := &recordingObserver{}
		codec := new(MockCodec)
		codec.On("Write", ctx, "out.ply", mock.Anything, "", false).Return(nil)

		cloud := pointcloud.New()
		_, _ = cloud.AddVertex(element.Vec3{})

		require.NoError(t, New(WithCodec(codec), WithObserver(obs), WithLogger(nil)).Save(ctx, "out.ply", cloud, false))
		assert.Equal(t, []string{"out.ply"}, obs.ascii)
		codec.AssertExpectations(t)
	})

	t.Run("EncodeError", func(t *testing.T) {
		cause := errors.New("disk full")
		codec := new(MockCodec)
		codec.On("Write", ctx, "out.ply", mock.Anything, "", true).Return(cause)

		cloud := pointcloud.New()
		_, _ = cloud.AddVertex(element.Vec3{})

		err := New(WithCodec(codec), WithLogger(nil)).Save(ctx, "out.ply", cloud, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		var ee *EncodeError
		assert.True(t, errors.As(err, &ee))
	})
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)
	src := rng.Cloud(200)
	pio := New(WithCodec(ply.NewCodec(blobstore.NewMemoryStore())), WithObserver(NoopObserver{}), WithLogger(nil))

	tests := []struct {
		name   string
		path   string
		binary bool
	}{
		{"ASCII", "cloud.ply", false},
		{"Binary", "cloud.ply", true},
		{"Gzip", "cloud.ply.gz", true},
		{"Zstd", "cloud.ply.zst", true},
		{"LZ4", "cloud.ply.lz4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, pio.Save(ctx, tt.path, src, tt.binary))

			dst := pointcloud.New()
			require.NoError(t, pio.Load(ctx, tt.path, dst))

			assert.Equal(t, src.NVertices(), dst.NVertices())
			assert.Equal(t, src.VertexProperties(), dst.VertexProperties())
			assertSameProperty[element.Vec3](t, src, dst, "v:point")
			assertSameProperty[element.Vec3](t, src, dst, "v:normal")
			assertSameProperty[element.Vec3](t, src, dst, "v:color")
			assertSameProperty[float32](t, src, dst, "v:quality")
			assertSameProperty[int32](t, src, dst, "v:label")
			assertSameProperty[[]int32](t, src, dst, "v:neighbors")
			assertSameProperty[[]float32](t, src, dst, "v:weights")
		})
	}
}

func TestRoundTrip_ComponentNames(t *testing.T) {
	ctx := context.Background()
	pio := New(WithCodec(ply.NewCodec(blobstore.NewMemoryStore())), WithObserver(NoopObserver{}), WithLogger(nil))

	src := pointcloud.New()
	src.Resize(2)
	for _, name := range []string{"v:x", "v:y", "v:z"} {
		p, err := pointcloud.VertexProperty[float32](src, name)
		require.NoError(t, err)
		p.SetVector([]float32{1, 2})
	}
	for _, name := range []string{"v:red", "v:green", "v:blue"} {
		p, err := pointcloud.VertexProperty[int32](src, name)
		require.NoError(t, err)
		p.SetVector([]int32{255, 51})
	}

	require.NoError(t, pio.Save(ctx, "components.ply", src, true))
	dst := pointcloud.New()
	require.NoError(t, pio.Load(ctx, "components.ply", dst))

	// Component names are regrouped into Vec3 properties on load.
	assert.Equal(t, []string{"v:point", "v:color"}, dst.VertexProperties())
	assert.Equal(t, []element.Vec3{{1, 1, 1}, {2, 2, 2}}, dst.Points())
	color, ok := pointcloud.GetVertexProperty[element.Vec3](dst, "v:color")
	require.True(t, ok)
	white, grey := color.At(0), color.At(1)
	assert.InDeltaSlice(t, []float32{1, 1, 1}, white[:], 1e-6)
	assert.InDeltaSlice(t, []float32{0.2, 0.2, 0.2}, grey[:], 1e-6)
}

func assertSameProperty[T pointcloud.Value](t *testing.T, want, got *pointcloud.Cloud, name string) {
	t.Helper()
	w, ok := pointcloud.GetVertexProperty[T](want, name)
	require.True(t, ok, name)
	g, ok := pointcloud.GetVertexProperty[T](got, name)
	require.True(t, ok, name)
	assert.Equal(t, w.Vector(), g.Vector(), name)
}

func TestPackageLevelLoadSave(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bunny.ply")

	cloud := pointcloud.New()
	_, err := cloud.AddVertex(element.Vec3{0.5, -0.5, 2})
	require.NoError(t, err)
	require.NoError(t, Save(ctx, path, cloud, true))

	loaded := pointcloud.New()
	require.NoError(t, Load(ctx, path, loaded))
	assert.Equal(t, []element.Vec3{{0.5, -0.5, 2}}, loaded.Points())

	err = Load(ctx, filepath.Join(t.TempDir(), "missing.ply"), pointcloud.New())
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.True(t, errors.Is(err, blobstore.ErrNotFound))
}

func TestMetrics(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	pio := New(
		WithCodec(ply.NewCodec(blobstore.NewMemoryStore())),
		WithMetricsCollector(metrics),
		WithLogger(nil),
	)

	cloud := testutil.NewRNG(1).Cloud(10)
	require.NoError(t, pio.Save(ctx, "a.ply", cloud, true))
	require.Error(t, pio.Save(ctx, "b.ply", pointcloud.New(), true))
	require.NoError(t, pio.Load(ctx, "a.ply", pointcloud.New()))
	require.Error(t, pio.Load(ctx, "missing.ply", pointcloud.New()))

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.SaveCount)
	assert.Equal(t, int64(1), stats.SaveErrors)
	assert.Equal(t, int64(10), stats.SaveVertices)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, int64(10), stats.LoadVertices)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewLogObserver(logger)

	obs.ElementSkipped("face", SkipFace)
	obs.ASCIIWrite("out.ply")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="ignored, is it a mesh?" element=face reason=face`)
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "path=out.ply")
}
