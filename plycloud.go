package plycloud

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/plycloud/element"
	"github.com/hupe1980/plycloud/ply"
	"github.com/hupe1980/plycloud/pointcloud"
)

// Codec reads and writes the generic element model of a file.
// *ply.Codec is the default implementation.
type Codec interface {
	Read(ctx context.Context, path string) ([]*element.Element, error)
	Write(ctx context.Context, path string, elements []*element.Element, comment string, binary bool) error
}

// IO loads point clouds from files and saves them back.
//
// An IO holds no per-call state and is safe for concurrent use as long as
// each call works on its own cloud.
type IO struct {
	codec    Codec
	observer Observer
	logger   *Logger
	metrics  MetricsCollector
}

// New creates an IO.
func New(optFns ...Option) *IO {
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.logger == nil {
		opts.logger = NewLogger(nil)
	}
	if opts.codec == nil {
		opts.codec = ply.NewCodec(nil)
	}
	if opts.observer == nil {
		opts.observer = NewLogObserver(opts.logger)
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}

	return &IO{
		codec:    opts.codec,
		observer: opts.observer,
		logger:   opts.logger,
		metrics:  opts.metricsCollector,
	}
}

var defaultIO = sync.OnceValue(func() *IO { return New() })

// Load reads path with the default IO. See (*IO).Load.
func Load(ctx context.Context, path string, cloud *pointcloud.Cloud) error {
	return defaultIO().Load(ctx, path, cloud)
}

// Save writes cloud to path with the default IO. See (*IO).Save.
func Save(ctx context.Context, path string, cloud *pointcloud.Cloud, binary bool) error {
	return defaultIO().Save(ctx, path, cloud, binary)
}

// Load reads the file at path and installs its vertex element into cloud.
//
// A codec failure is returned as a *DecodeError and a property type clash
// as an *InstallError; both leave the cloud untouched. Edge, face and unknown elements are reported to the observer
// and do not fail the load.
func (pio *IO) Load(ctx context.Context, path string, cloud *pointcloud.Cloud) (err error) {
	start := time.Now()
	defer func() {
		n, props := 0, 0
		if cloud != nil {
			n, props = cloud.NVertices(), len(cloud.VertexProperties())
		}
		pio.metrics.RecordLoad(n, time.Since(start), err)
		pio.logger.LogLoad(ctx, path, n, props, err)
	}()

	if cloud == nil {
		return ErrNilCloud
	}

	elements, err := pio.codec.Read(ctx, path)
	if err != nil {
		return &DecodeError{Path: path, cause: err}
	}

	return pio.InstallElements(cloud, elements)
}

// Save writes the vertex properties of cloud to path.
//
// A nil cloud returns ErrNilCloud and a cloud without vertices returns
// ErrEmptyCloud; in both cases nothing is written. Writing ASCII is
// reported to the observer as a performance advisory. A codec failure is
// returned as an *EncodeError.
func (pio *IO) Save(ctx context.Context, path string, cloud *pointcloud.Cloud, binary bool) (err error) {
	start := time.Now()
	var e *element.Element
	defer func() {
		n, props := 0, 0
		if e != nil {
			n, props = e.NumInstances, len(e.PropertyNames())
		}
		pio.metrics.RecordSave(n, time.Since(start), err)
		pio.logger.LogSave(ctx, path, n, props, binary, err)
	}()

	elements, err := BuildElements(cloud)
	if err != nil {
		return err
	}
	e = elements[0]

	if !binary {
		pio.observer.ASCIIWrite(path)
	}

	if err := pio.codec.Write(ctx, path, elements, "", binary); err != nil {
		return &EncodeError{Path: path, cause: err}
	}
	return nil
}
