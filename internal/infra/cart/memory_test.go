package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_AddAccumulatesAndClamps(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	productID := uuid.New()

	store.Add("sess-1", productID, 2)
	store.Add("sess-1", productID, 3)
	assert.Equal(t, 5, store.Get("sess-1")[productID])

	// Clamp at the upper bound.
	store.Add("sess-1", productID, 100000)
	assert.Equal(t, 999, store.Get("sess-1")[productID])

	// Adds that land at or below zero clamp up to the minimum.
	store.Add("sess-1", productID, -100000)
	assert.Equal(t, 1, store.Get("sess-1")[productID])
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	productID := uuid.New()

	store.Add("sess-a", productID, 2)
	store.Add("sess-b", productID, 7)

	assert.Equal(t, 2, store.Get("sess-a")[productID])
	assert.Equal(t, 7, store.Get("sess-b")[productID])
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	productID := uuid.New()
	store.Add("sess-1", productID, 4)

	contents := store.Get("sess-1")
	contents[productID] = 42

	assert.Equal(t, 4, store.Get("sess-1")[productID])
}

func TestMemoryStore_RemoveAndClear(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	first, second := uuid.New(), uuid.New()

	store.Add("sess-1", first, 1)
	store.Add("sess-1", second, 2)

	store.Remove("sess-1", first)
	assert.Len(t, store.Get("sess-1"), 1)

	// Removing an absent product is a no-op.
	store.Remove("sess-1", first)
	assert.Len(t, store.Get("sess-1"), 1)

	store.Clear("sess-1")
	assert.Empty(t, store.Get("sess-1"))
}
