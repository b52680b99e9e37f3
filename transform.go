package dynring

// Map returns a new ring holding fn applied to each value of r,
// in the same order and with the same head.
// The new ring shares the comparator of r.
func (r *Ring[T]) Map(fn func(T) T) *Ring[T] {
	mapped := NewFunc(r.equal)
	r.rebuild(func(value T) {
		mapped.Insert(fn(value))
	})
	return mapped
}

// MapTo is like [Ring.Map] but may change the value type.
// The new ring compares values with ==.
func MapTo[T any, U comparable](r *Ring[T], fn func(T) U) *Ring[U] {
	mapped := New[U]()
	r.rebuild(func(value T) {
		mapped.Insert(fn(value))
	})
	return mapped
}

// Clone returns a copy of r with its own segments.
func (r *Ring[T]) Clone() *Ring[T] {
	return r.Map(func(value T) T { return value })
}

// TransformMap replaces each value of r with fn applied to it.
// It returns false if r is empty.
func (r *Ring[T]) TransformMap(fn func(T) T) bool {
	if r.Empty() {
		return false
	}
	r.do(func(segment *Segment[T]) bool {
		segment.value = fn(segment.value)
		return true
	})
	return true
}

// Filter returns a new ring holding the values of r which satisfy keep,
// in the same order.
// The head of the new ring is the first kept value
// found walking forwards from the head of r.
func (r *Ring[T]) Filter(keep func(T) bool) *Ring[T] {
	filtered := NewFunc(r.equal)
	r.rebuild(func(value T) {
		if keep(value) {
			filtered.Insert(value)
		}
	})
	return filtered
}

// TransformFilter deletes every segment of r whose value
// does not satisfy keep, and returns how many were deleted.
// The head moves forwards past deleted segments.
func (r *Ring[T]) TransformFilter(keep func(T) bool) int {
	var (
		segment = r.Head()
		size    = r.Len()
		deleted int
	)
	for range size {
		next := segment.next
		if !keep(segment.value) {
			r.DeleteSegment(segment)
			deleted++
		}
		segment = next
	}
	return deleted
}

// rebuild calls insert with each value of r
// in the order given by [Ring.Values].
// Inserting them in that order into an
// empty ring reproduces the order of r.
func (r *Ring[T]) rebuild(insert func(T)) {
	size := r.Len()
	if size == 0 {
		return
	}
	segment := r.head.prev
	for range size {
		insert(segment.value)
		segment = segment.prev
	}
}
