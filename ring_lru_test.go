package dynring_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/djdv/go-dynring"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// recencyList keeps at most capacity values,
// most recently used at the head.
type recencyList[T comparable] struct {
	*dynring.Ring[T]
	capacity int
}

// Touch marks value as the most recently used,
// evicting the least recently used value if over capacity.
// It reports whether value was already present.
func (rl recencyList[T]) Touch(value T) bool {
	hit := rl.Contains(value)
	rl.BreakInsert(value)
	if rl.Len() > rl.capacity {
		rl.DeleteSegment(rl.Head().Prev())
	}
	return hit
}

func TestRecencyOrder(t *testing.T) {
	const (
		universe = 32
		accesses = 1 << 12
	)
	for _, capacity := range []int{1, 2, 8, universe} {
		t.Run("capacity "+strconv.Itoa(capacity), func(t *testing.T) {
			t.Parallel()
			var (
				rng   = newReproducibleRNG()
				model = newModel[int](t, capacity)
				list  = recencyList[int]{
					Ring:     newRing[int](t),
					capacity: capacity,
				}
			)
			for i := range accesses {
				key := rng.Intn(universe)
				model.Add(key, struct{}{})
				list.Touch(key)
				if got, want := list.Values(), model.Keys(); !slices.Equal(got, want) {
					t.Fatalf(
						"recency order diverged after %d accesses"+
							"\n\tgot: %v"+
							"\n\twant: %v",
						i+1, got, want)
				}
				if head, _ := list.Value(); head != key {
					t.Fatalf("most recent key %d is not the head: %d", key, head)
				}
			}
			checkValid(t, list.Ring)
		})
	}
}

func newModel[Key comparable](tb testing.TB, capacity int) *simplelru.LRU[Key, struct{}] {
	tb.Helper()
	model, err := simplelru.NewLRU[Key, struct{}](capacity, nil)
	if err != nil {
		tb.Fatal(err)
	}
	return model
}
