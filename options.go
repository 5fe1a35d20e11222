package plycloud

type options struct {
	codec            Codec
	observer         Observer
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures an IO.
type Option func(*options)

// WithCodec configures the codec used to read and write files.
//
// If nil is passed, a ply.Codec over the local file system is used.
func WithCodec(c Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithObserver configures the receiver of advisory diagnostics
// (skipped elements, ASCII writes).
//
// If nil is passed, diagnostics are written to the logger.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := plycloud.NewJSONLogger(slog.LevelDebug)
//	io := plycloud.New(plycloud.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &plycloud.BasicMetricsCollector{}
//	io := plycloud.New(plycloud.WithMetricsCollector(metrics))
//	// ... load and save ...
//	stats := metrics.GetStats()
//	fmt.Printf("Loads: %d, Avg latency: %dns\n", stats.LoadCount, stats.LoadAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}
