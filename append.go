package vector

// Emplace appends x using exact-fit growth: unless the buffer already has
// exactly one free slot, it is relocated to Len()+1 slots, dropping any
// headroom left by Reserve or Push. Cap() == Len() holds after every call.
//
// Each call that relocates costs O(Len()), so n calls cost O(n²) in total.
// Use Push when append throughput matters more than memory.
//
// The returned pointer is valid until the next relocation.
func (v *Vector[T, S]) Emplace(x T) (*T, error) {
	p, err := v.emplaceSlot()
	if err != nil {
		return nil, err
	}
	*p = x
	return p, nil
}

// EmplaceFunc is like Emplace but lets init build the new element in place.
// init receives a pointer to a zero-valued slot.
func (v *Vector[T, S]) EmplaceFunc(init func(*T)) (*T, error) {
	p, err := v.emplaceSlot()
	if err != nil {
		return nil, err
	}
	if init != nil {
		init(p)
	}
	return p, nil
}

// Push appends x using amortized growth: a full buffer is relocated to
// max(Cap()*growthFactor, Cap()+1) slots, clamped to the range of S.
// Amortized O(1) per call.
//
// The returned pointer is valid until the next relocation.
func (v *Vector[T, S]) Push(x T) (*T, error) {
	p, err := v.pushSlot()
	if err != nil {
		return nil, err
	}
	*p = x
	return p, nil
}

// PushFunc is like Push but lets init build the new element in place.
// init receives a pointer to a zero-valued slot.
func (v *Vector[T, S]) PushFunc(init func(*T)) (*T, error) {
	p, err := v.pushSlot()
	if err != nil {
		return nil, err
	}
	if init != nil {
		init(p)
	}
	return p, nil
}

func (v *Vector[T, S]) emplaceSlot() (*T, error) {
	next := v.n + 1
	if next == 0 {
		return nil, overflowError[S]("emplace", uint64(v.n)+1)
	}
	if v.m != next {
		if err := v.relocate(next, "emplace"); err != nil {
			return nil, err
		}
	}
	p := &v.data[v.n]
	var zero T
	*p = zero
	v.n = next
	return p, nil
}

func (v *Vector[T, S]) pushSlot() (*T, error) {
	if v.n == v.m {
		capacity, err := v.grownCapacity()
		if err != nil {
			return nil, err
		}
		if err := v.relocate(capacity, "push"); err != nil {
			return nil, err
		}
	}
	p := &v.data[v.n]
	var zero T
	*p = zero
	v.n++
	return p, nil
}

// grownCapacity returns the capacity Push relocates a full buffer to.
func (v *Vector[T, S]) grownCapacity() (S, error) {
	limit := maxSize[S]()
	if v.m == limit {
		return 0, overflowError[S]("push", uint64(v.m)+1)
	}
	next := v.m + 1
	scaled := float64(v.m) * v.cfg.growthFactor
	if scaled >= float64(limit) {
		return limit, nil
	}
	if s := S(scaled); s > next {
		next = s
	}
	return next, nil
}
