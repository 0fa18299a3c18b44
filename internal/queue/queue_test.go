package queue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue(t *testing.T) {
	t.Run("MinOrder", func(t *testing.T) {
		pq := NewMin[string]()
		pq.PushItem(Item[string]{Value: "c", Priority: 3})
		pq.PushItem(Item[string]{Value: "a", Priority: 1})
		pq.PushItem(Item[string]{Value: "b", Priority: 2})

		top, ok := pq.TopItem()
		require.True(t, ok)
		assert.Equal(t, "a", top.Value)

		var values []string
		for pq.Len() > 0 {
			item, ok := pq.PopItem()
			require.True(t, ok)
			values = append(values, item.Value)
		}
		assert.Equal(t, []string{"a", "b", "c"}, values)
	})

	t.Run("MaxOrder", func(t *testing.T) {
		pq := NewMax[int]()
		for _, p := range []float64{2, 5, 1, 4, 3} {
			pq.PushItem(Item[int]{Value: int(p), Priority: p})
		}

		var values []int
		for pq.Len() > 0 {
			item, _ := pq.PopItem()
			values = append(values, item.Value)
		}
		assert.Equal(t, []int{5, 4, 3, 2, 1}, values)
	})

	t.Run("Empty", func(t *testing.T) {
		pq := NewMin[int]()
		_, ok := pq.PopItem()
		assert.False(t, ok)
		_, ok = pq.TopItem()
		assert.False(t, ok)
		assert.Equal(t, 0, pq.Len())
	})

	t.Run("RandomizedHeapProperty", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		pq := NewMin[int]()
		for i := range 500 {
			pq.PushItem(Item[int]{Value: i, Priority: rng.Float64()})
		}

		prev := -1.0
		for pq.Len() > 0 {
			item, _ := pq.PopItem()
			assert.GreaterOrEqual(t, item.Priority, prev)
			prev = item.Priority
		}
	})
}
