package dynring

import "iter"

// Do calls visit on each value of r in forward order,
// starting at the head.
// It returns false, without calling visit, if r is empty.
// The behavior of Do is undefined if visit changes r.
func (r *Ring[T]) Do(visit func(T)) bool {
	if r.Empty() {
		return false
	}
	r.do(func(segment *Segment[T]) bool {
		visit(segment.value)
		return true
	})
	return true
}

// All returns an iterator over the values of r in forward order,
// starting at the head.
// The ring must not be modified during iteration.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		r.do(func(segment *Segment[T]) bool {
			return yield(segment.value)
		})
	}
}

func (r *Ring[T]) do(yield func(*Segment[T]) bool) {
	if r.Empty() {
		return
	}
	segment := r.head
	for range r.size {
		next := segment.next
		if !yield(segment) {
			return
		}
		segment = next
	}
}

// Values returns a copy of the values in r, ordered from
// the segment before the head backwards around to the head.
// That is the reverse of the order used by [Ring.Do]; for a ring
// built only by [Ring.Insert], it is the order of insertion.
func (r *Ring[T]) Values() []T {
	size := r.Len()
	if size == 0 {
		return nil
	}
	var (
		values  = make([]T, 0, size)
		segment = r.head.prev
	)
	for range size {
		values = append(values, segment.value)
		segment = segment.prev
	}
	return values
}

// Find returns every value in r which satisfies match,
// in forward order.
//
// Deprecated: Use [Ring.Filter] followed by [Ring.Values].
func (r *Ring[T]) Find(match func(T) bool) []T {
	var found []T
	r.do(func(segment *Segment[T]) bool {
		if match(segment.value) {
			found = append(found, segment.value)
		}
		return true
	})
	return found
}

// FindForwards returns the first segment whose value satisfies match,
// testing the head first and then following next segments.
// It returns nil if no segment matches.
func (r *Ring[T]) FindForwards(match func(T) bool) *Segment[T] {
	return r.search(match, func(s *Segment[T]) *Segment[T] { return s.next })
}

// FindBackwards is like [Ring.FindForwards]
// but follows previous segments.
func (r *Ring[T]) FindBackwards(match func(T) bool) *Segment[T] {
	return r.search(match, func(s *Segment[T]) *Segment[T] { return s.prev })
}

func (r *Ring[T]) search(match func(T) bool, step func(*Segment[T]) *Segment[T]) *Segment[T] {
	if r.Empty() {
		return nil
	}
	segment := r.head
	for range r.size {
		if match(segment.value) {
			return segment
		}
		segment = step(segment)
	}
	return nil
}

// Contains reports whether r holds a value equal to value.
func (r *Ring[T]) Contains(value T) bool {
	return r.find(value) != nil
}

func (r *Ring[T]) find(value T) *Segment[T] {
	return r.FindForwards(func(candidate T) bool {
		return r.same(candidate, value)
	})
}
