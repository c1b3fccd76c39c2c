// Package vector implements a generic growable array for building
// higher-level data structures.
//
// # Overview
//
// A Vector[T, S] owns a single contiguous buffer of T and tracks its length
// and capacity as the unsigned type S. Picking a narrow S (uint16, uint32)
// keeps the header small for structures that hold many short vectors; an
// append that would not fit in S fails with ErrOverflow instead of wrapping.
//
// Unlike the builtin append, the growth policy is chosen per call:
//
//   - Emplace: exact-fit growth. The buffer always has exactly Len() slots
//     afterwards. O(n) per call, O(n²) for n appends. No wasted memory.
//   - Push: amortized growth by DefaultGrowthFactor (1.25). O(1) amortized.
//
// # Basic Usage
//
//	v, err := vector.New[int, uint32](0)
//	if err != nil {
//		return err
//	}
//	defer v.Release()
//
//	v.Push(5)
//	v.Push(7)
//	fmt.Println(v.Slice()) // [5 7]
//
//	// Preallocate, then append without relocations
//	v.Reserve(1024)
//
//	// Drop headroom once the vector is complete
//	v.ShrinkToFit()
//
// # Construction
//
// New zero-values every slot, NewWith calls a constructor per slot, and
// Of/From copy a list into an exact-fit buffer. NewUninitialized is a
// two-phase builder for callers that will overwrite every slot: the vector is
// only handed out by Finish. Built with -tags vectorcheck, Finish verifies
// that every slot was written.
//
// # Element Lifecycle
//
// Elements are moved between buffers by plain copy. Element types that own
// resources can implement Destroyer; Destroy is called whenever an element
// leaves the vector (Release, Clear, shrinking Resize, CopyFrom, MoveFrom).
// Element types implementing Cloner are deep-copied by Clone and CopyFrom.
//
// # Thread Safety
//
// Vector is not thread-safe. Relocation invalidates every pointer previously
// returned by Ref, Front, Back, Push or Emplace.
//
// # Errors
//
// Relocations that exceed the allocation ceiling (WithMaxBytes, or the
// runtime soft memory limit) fail with ErrAllocation and leave the vector
// unchanged. Out-of-range indexing panics.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Relocations: %d\n", m.Reallocations)
//
// Relocations are logged at debug level to the logger installed with
// SetLogger.
package vector
