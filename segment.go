package dynring

// Segment is a single node of a [Ring].
// Segments are created by [Ring.Insert] and are only
// valid while they remain linked into their ring.
// A freed segment has no neighbors and must not be reused.
type Segment[T any] struct {
	next, prev *Segment[T]
	ring       *Ring[T] // Owner; nil once freed.
	value      T
}

func newSegment[T any](ring *Ring[T], value T) *Segment[T] {
	return &Segment[T]{ring: ring, value: value}
}

// Value returns the value stored in s.
func (s *Segment[T]) Value() T { return s.value }

// SetValue replaces the value stored in s.
func (s *Segment[T]) SetValue(value T) { s.value = value }

// Next returns the neighbor of s in the forward direction,
// or nil if s has been freed.
func (s *Segment[T]) Next() *Segment[T] { return s.next }

// Prev returns the neighbor of s in the backward direction,
// or nil if s has been freed.
func (s *Segment[T]) Prev() *Segment[T] { return s.prev }

// Linked reports whether s is currently part of a ring.
func (s *Segment[T]) Linked() bool { return s.next != nil }

func (s *Segment[T]) init() *Segment[T] {
	s.next = s
	s.prev = s
	return s
}

// link places n directly after s.
// s must be linked and n must not be.
func (s *Segment[T]) link(n *Segment[T]) {
	after := s.next
	// Note: Cannot use multiple assignment because
	// evaluation order of LHS is not specified.
	s.next = n
	n.prev = s
	n.next = after
	after.prev = n
}

// unlink joins the neighbors of s and frees it.
func (s *Segment[T]) unlink() {
	s.prev.next = s.next
	s.next.prev = s.prev
	s.free()
}

func (s *Segment[T]) free() {
	s.next = nil
	s.prev = nil
	s.ring = nil
}
