package vector

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// elemSize returns the in-memory size of a single T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// bufferBytes returns the number of bytes needed for count elements of the
// given size. ok is false if count cannot be used as a slice length or the
// byte count overflows.
func bufferBytes[S Size](count S, size uintptr) (uint64, bool) {
	c := uint64(count)
	if c > math.MaxInt {
		return 0, false
	}
	if size != 0 && c > math.MaxUint64/uint64(size) {
		return 0, false
	}
	return c * uint64(size), true
}

// allocBuffer returns a zeroed buffer of exactly count elements. A runtime
// refusal (e.g. "makeslice: len out of range") is reported as ErrAllocation.
// Running out of memory remains fatal, as it is for any Go allocation.
func allocBuffer[T any](count int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, errors.Wrap(ErrAllocation, re.Error())
		}
	}()
	return make([]T, count), nil
}

// relocate moves the live elements into a new buffer of exactly capacity
// slots. capacity must not be less than v.n. On error v is unchanged.
func (v *Vector[T, S]) relocate(capacity S, policy string) error {
	if capacity == 0 {
		v.data = nil
		v.m = 0
		return nil
	}

	size := elemSize[T]()
	nbytes, ok := bufferBytes(capacity, size)
	if !ok {
		Logger().Warn("vector: buffer size overflows",
			zap.String("policy", policy),
			zap.Uint64("capacity", uint64(capacity)),
			zap.Uintptr("elem_size", size),
		)
		return errors.Wrapf(ErrAllocation, "%s: %d elements of %d bytes overflow the address space", policy, uint64(capacity), size)
	}
	if limit := v.cfg.ceiling(); nbytes > limit {
		Logger().Warn("vector: allocation above ceiling",
			zap.String("policy", policy),
			zap.Uint64("capacity", uint64(capacity)),
			zap.Uint64("bytes", nbytes),
			zap.Uint64("ceiling", limit),
		)
		return errors.Wrapf(ErrAllocation, "%s: %d elements need %s, ceiling is %s",
			policy, uint64(capacity), humanize.IBytes(nbytes), humanize.IBytes(limit))
	}

	buf, err := allocBuffer[T](int(capacity))
	if err != nil {
		Logger().Warn("vector: runtime refused allocation",
			zap.String("policy", policy),
			zap.Uint64("capacity", uint64(capacity)),
			zap.Error(err),
		)
		return errors.Wrapf(err, "%s: %d elements (%s)", policy, uint64(capacity), humanize.IBytes(nbytes))
	}

	copy(buf, v.data[:v.n])
	from := v.m
	v.data = buf
	v.m = capacity
	v.reallocs++

	if ce := Logger().Check(zap.DebugLevel, "vector: relocated buffer"); ce != nil {
		ce.Write(
			zap.String("policy", policy),
			zap.Uint64("from", uint64(from)),
			zap.Uint64("to", uint64(capacity)),
			zap.Uint64("bytes", nbytes),
		)
	}
	return nil
}
