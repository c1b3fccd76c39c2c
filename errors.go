package vector

import (
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrAllocation is returned when a buffer of the requested capacity cannot be
	// obtained. The vector is left as it was before the call.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrOverflow is returned when a length or capacity does not fit in the
	// vector's counter type.
	ErrOverflow = errors.New("vector: counter overflow")

	// ErrUnconstructed is returned by Uninitialized.Finish when a slot was never
	// written. Only reported in builds with the vectorcheck tag.
	ErrUnconstructed = errors.New("vector: slot never constructed")
)

// maxSize returns the largest value representable by S.
func maxSize[S Size]() S {
	return ^S(0)
}

// counterBits returns the width of S in bits.
func counterBits[S Size]() int {
	var zero S
	return int(unsafe.Sizeof(zero)) * 8
}

func overflowError[S Size](op string, want uint64) error {
	Logger().Warn("vector: counter overflow",
		zap.String("op", op),
		zap.Uint64("want", want),
		zap.Int("bits", counterBits[S]()),
	)
	return errors.Wrapf(ErrOverflow, "%s: %d does not fit in a %d-bit counter", op, want, counterBits[S]())
}
