package mathops

import (
	"time"
)

// Calculator wraps the package-level operations with optional Prometheus
// metrics and debug logging. Arithmetic results are identical to calling the
// package functions directly. A Calculator holds no mutable state and is
// safe for concurrent use.
type Calculator struct {
	metrics *MetricsCollector
	logger  Logger
	debug   bool
}

// Option represents a configuration option for a Calculator.
type Option func(*Calculator)

// New constructs a Calculator using the provided functional options. With no
// options it behaves exactly like the package functions, with zero overhead
// beyond a method call.
func New(options ...Option) *Calculator {
	calc := &Calculator{
		metrics: nil,
		logger:  nil,
		debug:   false,
	}

	for _, option := range options {
		option(calc)
	}

	return calc
}

// Add returns the sum of a and b, recording operation metrics when enabled.
func (c *Calculator) Add(a, b int) int {
	start := time.Now()
	sum := Add(a, b)
	c.observe(OpAdd, start)
	if c.debug && c.logger != nil {
		c.logger.Debug("operation complete", "operation", OpAdd, "a", a, "b", b, "result", sum)
	}
	return sum
}

// Multiply returns the product of a and b, recording operation metrics when
// enabled.
func (c *Calculator) Multiply(a, b int) int {
	start := time.Now()
	product := Multiply(a, b)
	c.observe(OpMultiply, start)
	if c.debug && c.logger != nil {
		c.logger.Debug("operation complete", "operation", OpMultiply, "a", a, "b", b, "result", product)
	}
	return product
}

// Divide returns a / b or ErrDivisionByZero when b is zero. A zero
// denominator is counted in the division-by-zero metric.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	start := time.Now()
	quotient, err := Divide(a, b)
	c.observe(OpDivide, start)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordDivisionByZero()
		}
		if c.logger != nil {
			c.logger.Warn("division by zero", "operation", OpDivide, "numerator", a)
		}
		return 0, err
	}
	if c.debug && c.logger != nil {
		c.logger.Debug("operation complete", "operation", OpDivide, "a", a, "b", b, "result", quotient)
	}
	return quotient, nil
}

// DivideSafe returns a / b when b is nonzero, and DivideFallback otherwise.
// The fallback substitution is counted in the division-by-zero metric but is
// invisible to the caller, matching the package-level DivideSafe.
func (c *Calculator) DivideSafe(a, b float64) float64 {
	start := time.Now()
	quotient, err := Divide(a, b)
	c.observe(OpDivideSafe, start)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordDivisionByZero()
		}
		if c.logger != nil {
			c.logger.Warn("division by zero, returning fallback", "operation", OpDivideSafe, "numerator", a, "fallback", DivideFallback)
		}
		return DivideFallback
	}
	if c.debug && c.logger != nil {
		c.logger.Debug("operation complete", "operation", OpDivideSafe, "a", a, "b", b, "result", quotient)
	}
	return quotient
}

// Metrics returns the collector in use, or nil when metrics are disabled.
func (c *Calculator) Metrics() *MetricsCollector {
	return c.metrics
}

func (c *Calculator) observe(op string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordOperation(op, time.Since(start))
}
