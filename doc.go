// Package dynring implements a dynamically sized [Ring]:
// a circular, doubly linked list with a movable head.
//
// A ring is useful wherever the "current" element matters,
// such as recency lists (most recently used or visited items)
// and cycling through a fixed set of candidates.
//
// Glossary and invariants:
//
//   - Segment
//
//     One node of the ring; a value plus links to its neighbors.
//     Segments are only created by insertion and are freed
//     (both links cleared) by deletion or [Ring.Destroy].
//
//   - Head
//
//     The current segment. Moved by insertion, deletion, and rotation.
//     A ring is empty if and only if it has no head.
//
//   - Forward order
//
//     Starting at the head and following next links once around the ring.
//     This is the order used by [Ring.Do], [Ring.All], [Ring.Find],
//     [Ring.FindForwards], and [Ring.Equal].
//
//   - Values order
//
//     [Ring.Values] returns the reverse of forward order, which for
//     a ring built only by [Ring.Insert] is insertion order.
//     [Ring.Map] and [Ring.Filter] rebuild rings by inserting
//     in this order, which preserves forward order and the head.
//
// Operations:
//
//   - Insert
//
//     The new segment becomes the head; the previous head
//     becomes its next segment.
//
//   - Delete
//
//     Unlinks a segment; if it was the head,
//     the head moves to its next segment.
//
//   - Break-insert
//
//     Delete followed by insert; moves a value to the head,
//     collapsing duplicates. Repeated use keeps the ring
//     ordered most recent first, with the least recent
//     segment at [Segment.Prev] of the head.
//
//   - Rotation
//
//     [Left] moves the head to its previous segment,
//     [Right] to its next. Contents are unchanged.
//
// Segment references returned by search and insertion are only valid
// until the next operation that changes the ring.
//
// Building with the `dynring_debug` tag enables internal assertions
// which verify the ring structure after every change.
package dynring
