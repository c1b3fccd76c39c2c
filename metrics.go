package vector

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ElemSize returns the size in bytes of a single element.
func (v *Vector[T, S]) ElemSize() int {
	return int(elemSize[T]())
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T, S]) SizeInUse() uint64 {
	return uint64(v.n) * uint64(elemSize[T]())
}

// CapacityBytes returns the size of the buffer in bytes.
func (v *Vector[T, S]) CapacityBytes() uint64 {
	return uint64(v.m) * uint64(elemSize[T]())
}

// Reallocations returns how many times the buffer has been allocated or
// relocated since the vector was created (or last released).
func (v *Vector[T, S]) Reallocations() uint64 {
	return v.reallocs
}

// Utilization returns the ratio of live elements to buffer slots (0.0 to 1.0).
// Returns 0.0 if the vector has no buffer.
func (v *Vector[T, S]) Utilization() float64 {
	if v.m == 0 {
		return 0
	}
	return float64(v.n) / float64(v.m)
}

// GrowthFactor returns the multiplier Push uses when the buffer is full.
func (v *Vector[T, S]) GrowthFactor() float64 {
	return v.cfg.growthFactor
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T, S]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           uint64(v.n),
		Cap:           uint64(v.m),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Reallocations: v.Reallocations(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           uint64  // Live elements
	Cap           uint64  // Buffer slots
	ElemSize      int     // Bytes per element
	SizeInUse     uint64  // Bytes held by live elements
	CapacityBytes uint64  // Bytes held by the buffer
	Reallocations uint64  // Buffer allocations and relocations
	Utilization   float64 // Ratio of live elements to slots (0.0-1.0)
}

func (m VectorMetrics) String() string {
	return fmt.Sprintf("len=%d cap=%d in-use=%s buffer=%s reallocations=%d utilization=%.2f%%",
		m.Len, m.Cap,
		humanize.IBytes(m.SizeInUse), humanize.IBytes(m.CapacityBytes),
		m.Reallocations, m.Utilization*100)
}
