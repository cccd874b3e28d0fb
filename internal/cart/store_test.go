package cart

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddMergesQuantities(t *testing.T) {
	store := NewStore()

	store.Add("sess-1", Item{ID: "mea", Name: "Membrane Electrode Assembly", Price: 199, Quantity: 1})
	items := store.Add("sess-1", Item{ID: "mea", Name: "Membrane Electrode Assembly", Price: 199, Quantity: 2})

	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].Quantity)
	assert.Equal(t, int64(3), ItemCount(items))
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore()

	store.Add("sess-1", Item{ID: "mea", Price: 199, Quantity: 1})
	store.Add("sess-2", Item{ID: "cell", Price: 4499, Quantity: 1})

	assert.Len(t, store.Items("sess-1"), 1)
	assert.Len(t, store.Items("sess-2"), 1)
	assert.Equal(t, "mea", store.Items("sess-1")[0].ID)
	assert.Equal(t, "cell", store.Items("sess-2")[0].ID)
}

func TestStore_UpdateQuantity(t *testing.T) {
	store := NewStore()
	store.Add("sess-1", Item{ID: "mea", Price: 199, Quantity: 1})

	items, found := store.UpdateQuantity("sess-1", "mea", 5)
	require.True(t, found)
	assert.Equal(t, int64(5), items[0].Quantity)

	// Zero quantity removes the line
	items, found = store.UpdateQuantity("sess-1", "mea", 0)
	assert.True(t, found)
	assert.Empty(t, items)

	// Unknown item reports not found
	_, found = store.UpdateQuantity("sess-1", "missing", 2)
	assert.False(t, found)
}

func TestStore_RemoveAndClear(t *testing.T) {
	store := NewStore()
	store.Add("sess-1", Item{ID: "mea", Price: 199, Quantity: 1})
	store.Add("sess-1", Item{ID: "cell", Price: 4499, Quantity: 1})

	items := store.Remove("sess-1", "mea")
	require.Len(t, items, 1)
	assert.Equal(t, "cell", items[0].ID)

	store.Clear("sess-1")
	assert.Empty(t, store.Items("sess-1"))
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Add("sess-1", Item{ID: "mea", Price: 199, Quantity: 1})

	items := store.Items("sess-1")
	items[0].Quantity = 99

	assert.Equal(t, int64(1), store.Items("sess-1")[0].Quantity)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Add("sess-1", Item{ID: fmt.Sprintf("item-%d", n%5), Price: 10, Quantity: 1})
		}(i)
	}
	wg.Wait()

	items := store.Items("sess-1")
	assert.Len(t, items, 5)
	assert.Equal(t, int64(50), ItemCount(items))
}
