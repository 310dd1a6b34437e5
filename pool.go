package mdsite

import (
	"runtime"
	"sync"

	"github.com/mdsite/mdsite/internal/pipeline"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps conversion workers; markdown conversion is
	// CPU-bound and gains nothing beyond a handful of goroutines.
	MaxPoolSize = 8
)

// ConverterPool manages reusable markdown converters for parallel file
// conversion. Converters are created lazily on first acquire.
type ConverterPool struct {
	size    int
	sem     chan pipeline.Converter
	mu      sync.Mutex
	created int
}

// NewConverterPool creates a pool with capacity for n converters.
func NewConverterPool(n int) *ConverterPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &ConverterPool{
		size: n,
		sem:  make(chan pipeline.Converter, n),
	}
}

// Acquire gets a converter from the pool, creating one if capacity allows.
// Blocks if all converters are in use.
func (p *ConverterPool) Acquire() pipeline.Converter {
	// Try to get an existing converter (non-blocking)
	select {
	case conv := <-p.sem:
		return conv
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return pipeline.NewGoldmarkConverter()
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released
	return <-p.sem
}

// Release returns a converter to the pool.
func (p *ConverterPool) Release(conv pipeline.Converter) {
	p.sem <- conv
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the worker pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in
	// containers)
	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
