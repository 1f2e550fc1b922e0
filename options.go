package mathops

// WithMetrics enables Prometheus metrics collection on the default registerer
func WithMetrics() Option {
	return func(c *Calculator) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Calculator) {
		c.metrics = collector
	}
}

// WithLogger sets a custom logger for debug and warning output
func WithLogger(logger Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger
func WithSimpleLogger() Option {
	return func(c *Calculator) {
		c.logger = NewSimpleLogger()
		c.debug = true
	}
}

// WithDebug enables per-operation debug logging on the configured logger
func WithDebug() Option {
	return func(c *Calculator) {
		c.debug = true
	}
}
