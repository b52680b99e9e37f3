package dynring

import "fmt"

type (
	// Ring is a circular, doubly linked list of [Segment]s
	// with a movable head.
	// A Ring is not safe for concurrent use.
	// The zero value is an empty ring which compares values
	// as [New] does, but panics when comparing values of a type
	// which is not comparable; use [NewFunc] for those.
	Ring[T any] struct {
		head  *Segment[T]
		equal func(a, b T) bool
		size  int
	}
	// Direction selects which way [Ring.RotateUntil] moves the head.
	Direction uint8
)

const (
	// Left moves the head to its previous segment.
	Left Direction = iota
	// Right moves the head to its next segment.
	Right
)

// New creates an empty [Ring] which compares values with ==.
func New[T comparable]() *Ring[T] {
	return NewFunc(func(a, b T) bool { return a == b })
}

// NewFunc creates an empty [Ring] which compares values with equal.
// Equal is used by [Ring.Contains], [Ring.Delete],
// [Ring.BreakInsert], and [Ring.Equal].
// If equal is nil, the ring behaves like the zero [Ring].
func NewFunc[T any](equal func(a, b T) bool) *Ring[T] {
	return &Ring[T]{equal: equal}
}

// Empty reports whether r holds no segments.
func (r *Ring[T]) Empty() bool { return r.Len() == 0 }

// Len returns the number of segments in r.
func (r *Ring[T]) Len() int {
	if r == nil {
		return 0
	}
	return r.size
}

// Head returns the current head segment, or nil if r is empty.
func (r *Ring[T]) Head() *Segment[T] {
	if r == nil {
		return nil
	}
	return r.head
}

// Value returns the value of the head segment.
// If r is empty, it returns the zero value and false.
func (r *Ring[T]) Value() (T, bool) {
	if r.Empty() {
		var zero T
		return zero, false
	}
	return r.head.value, true
}

// Equal reports whether r and other hold equal values
// in the same order, starting from their heads.
// Rings holding the same cycle with a different head are not equal.
func (r *Ring[T]) Equal(other *Ring[T]) bool {
	size := r.Len()
	if size != other.Len() {
		return false
	}
	a, b := r.Head(), other.Head()
	for range size {
		if !r.same(a.value, b.value) {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

// Insert adds value to r as the new head and returns its segment.
// The previous head becomes the next segment of the new head.
func (r *Ring[T]) Insert(value T) *Segment[T] {
	segment := newSegment(r, value)
	if r.head == nil {
		segment.init()
	} else {
		r.head.prev.link(segment)
	}
	r.head = segment
	r.size++
	r.check()
	return segment
}

// DeleteSegment removes segment from r and frees it.
// If the segment was the head, the head moves to its next segment.
// It returns false if segment is nil, already freed,
// or belongs to another ring.
func (r *Ring[T]) DeleteSegment(segment *Segment[T]) bool {
	if r.size == 0 || segment == nil || segment.ring != r {
		return false
	}
	if r.size == 1 {
		segment.free()
		r.head = nil
		r.size = 0
		return true
	}
	if segment == r.head {
		r.head = segment.next
	}
	segment.unlink()
	r.size--
	r.check()
	return true
}

// Delete removes the first segment, searching forwards
// from the head, whose value is equal to value.
// It returns false if no such segment exists.
func (r *Ring[T]) Delete(value T) bool {
	segment := r.find(value)
	if segment == nil {
		return false
	}
	return r.DeleteSegment(segment)
}

// BreakInsert moves value to the head of r,
// inserting it if it was not already present.
// Repeated use keeps r ordered by recency,
// most recent first.
func (r *Ring[T]) BreakInsert(value T) *Segment[T] {
	r.Delete(value)
	return r.Insert(value)
}

// Destroy frees every segment in r and leaves it empty.
// It returns false if r was already empty.
func (r *Ring[T]) Destroy() bool {
	if r.size == 0 {
		return false
	}
	segment := r.head
	for range r.size {
		next := segment.next
		segment.free()
		segment = next
	}
	r.head = nil
	r.size = 0
	return true
}

// RotateLeft moves the head to its previous segment
// and returns the new head, or nil if r is empty.
func (r *Ring[T]) RotateLeft() *Segment[T] {
	if r.size == 0 {
		return nil
	}
	r.head = r.head.prev
	return r.head
}

// RotateRight moves the head to its next segment
// and returns the new head, or nil if r is empty.
func (r *Ring[T]) RotateRight() *Segment[T] {
	if r.size == 0 {
		return nil
	}
	r.head = r.head.next
	return r.head
}

// RotateUntil rotates r in the given direction until
// the head value satisfies match, and reports whether it did.
// The current head is tested before any rotation.
// If no value matches, the head is left where it started.
func (r *Ring[T]) RotateUntil(direction Direction, match func(T) bool) bool {
	var rotate func() *Segment[T]
	switch direction {
	case Left:
		rotate = r.RotateLeft
	case Right:
		rotate = r.RotateRight
	default:
		return false
	}
	if r.size == 0 {
		return false
	}
	if match(r.head.value) {
		return true
	}
	start := r.head
	for range r.size - 1 {
		if match(rotate().value) {
			return true
		}
	}
	r.head = start
	return false
}

// Verify checks the structure of r and returns
// an error wrapping [ErrCorrupt] if it is inconsistent.
func (r *Ring[T]) Verify() error {
	if (r.size == 0) != (r.head == nil) {
		return corruptError(
			"size is %d but head is %p",
			r.size, r.head)
	}
	if r.size == 0 {
		return nil
	}
	segment := r.head
	for i := range r.size {
		if segment.next == nil || segment.prev == nil {
			return corruptError("segment %d is not linked", i)
		}
		if segment.next.prev != segment ||
			segment.prev.next != segment {
			return corruptError("segment %d has inconsistent neighbors", i)
		}
		if segment.ring != r {
			return corruptError("segment %d belongs to another ring", i)
		}
		segment = segment.next
		if segment == r.head && i != r.size-1 {
			return corruptError(
				"forward circuit has %d segments but size is %d",
				i+1, r.size)
		}
	}
	if segment != r.head {
		return corruptError(
			"forward circuit exceeds size %d", r.size)
	}
	return nil
}

func (r *Ring[T]) same(a, b T) bool {
	if r.equal == nil {
		return any(a) == any(b)
	}
	return r.equal(a, b)
}

func (r *Ring[T]) check() {
	if debugging {
		err := r.Verify()
		assert(err == nil, fmt.Sprint(err))
	}
}
