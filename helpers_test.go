package plycloud

import (
	"context"
	"sync"

	"github.com/hupe1980/plycloud/element"
	"github.com/stretchr/testify/mock"
)

// MockCodec is a mock implementation of Codec.
type MockCodec struct {
	mock.Mock
}

func (m *MockCodec) Read(ctx context.Context, path string) ([]*element.Element, error) {
	args := m.Called(ctx, path)
	elements, _ := args.Get(0).([]*element.Element)
	return elements, args.Error(1)
}

func (m *MockCodec) Write(ctx context.Context, path string, elements []*element.Element, comment string, binary bool) error {
	args := m.Called(ctx, path, elements, comment, binary)
	return args.Error(0)
}

type skipped struct {
	name   string
	reason SkipReason
}

// recordingObserver keeps every diagnostic it receives.
type recordingObserver struct {
	mu      sync.Mutex
	skipped []skipped
	ascii   []string
}

func (o *recordingObserver) ElementSkipped(name string, reason SkipReason) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.skipped = append(o.skipped, skipped{name: name, reason: reason})
}

func (o *recordingObserver) ASCIIWrite(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ascii = append(o.ascii, path)
}

func vertexElement3() *element.Element {
	e := element.New("vertex", 3)
	e.Vec3Properties = []element.Property[element.Vec3]{
		element.NewProperty("vertex", "point", []element.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}),
	}
	e.FloatProperties = []element.Property[float32]{
		element.NewProperty("vertex", "v:quality", []float32{0.1, 0.2, 0.3}),
	}
	return e
}
