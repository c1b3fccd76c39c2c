package vector

import (
	"math"
	"runtime/debug"
	"sync"
)

// DefaultGrowthFactor is the multiplier Push applies to a full buffer.
const DefaultGrowthFactor = 1.25

type config struct {
	growthFactor float64
	maxBytes     uint64
}

// Option configures a Vector at construction time.
type Option func(*config)

func defaultConfig() config {
	return config{growthFactor: DefaultGrowthFactor}
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.maxBytes == 0 {
		cfg.maxBytes = memoryLimit()
	}
	return cfg
}

// memoryLimit returns the runtime soft memory limit, math.MaxInt64 unless
// GOMEMLIMIT or debug.SetMemoryLimit lowered it.
func memoryLimit() uint64 {
	limit := debug.SetMemoryLimit(-1)
	if limit <= 0 {
		return math.MaxInt64
	}
	return uint64(limit)
}

// startupMemoryLimit is the limit seen by the first zero-value Vector to
// relocate.
var startupMemoryLimit = sync.OnceValue(memoryLimit)

// WithGrowthFactor sets the multiplier used by Push when the buffer is full.
// If f <= 1 (or is not a finite number), DefaultGrowthFactor is used.
func WithGrowthFactor(f float64) Option {
	return func(c *config) {
		if f <= 1 || math.IsNaN(f) || math.IsInf(f, 0) {
			f = DefaultGrowthFactor
		}
		c.growthFactor = f
	}
}

// WithMaxBytes caps the size of any single buffer the vector may allocate.
// Zero means the runtime soft memory limit (GOMEMLIMIT), read once when the
// vector is created, is the cap.
func WithMaxBytes(n uint64) Option {
	return func(c *config) {
		c.maxBytes = n
	}
}

// ceiling returns the largest buffer, in bytes, a relocation may request.
// It is resolved by buildConfig; only a zero-value Vector falls through.
func (c *config) ceiling() uint64 {
	if c.maxBytes > 0 {
		return c.maxBytes
	}
	return startupMemoryLimit()
}
