// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Make(key string) (interface{}, error) {
	return strings.ToUpper(key), nil
}

func DoNotMake(key string) (interface{}, error) {
	return nil, assert.AnError
}

type LRUAssertions struct {
	*assert.Assertions
	LRU *lru
}

func NewLRUAssertions(t assert.TestingT, size int) *LRUAssertions {
	return &LRUAssertions{
		assert.New(t),
		newLRU(size),
	}
}

// PutName adds an item with key name to the cache.
func (a *LRUAssertions) PutName(name string) {
	a.LRU.Put(name, strings.ToUpper(name))
}

// GetName fetches an item from the cache; if not present, it is added.
func (a *LRUAssertions) GetName(name string) {
	item, err := a.LRU.Get(name, Make)
	if a.NoError(err) {
		a.Equal(strings.ToUpper(name), item)
	}
}

// GetPresent fetches an item from the cache; if not present, it
// should produce an assertion error.
func (a *LRUAssertions) GetPresent(name string) {
	item, err := a.LRU.Get(name, DoNotMake)
	if a.NoError(err) {
		a.Equal(strings.ToUpper(name), item)
	}
}

// GetError tries to fetch an item from the cache, but it should not
// exist, and the resulting error will be caught.
func (a *LRUAssertions) GetError(name string) {
	_, err := a.LRU.Get(name, DoNotMake)
	a.Error(err)
}

// LRUHas asserts that an item with key name is in the cache.
func (a *LRUAssertions) LRUHas(name string) {
	item, present := a.LRU.Peek(name)
	if a.True(present, name) {
		a.Equal(strings.ToUpper(name), item)
	}
}

// LRUDoesNotHave asserts that no item with key name is in the cache.
func (a *LRUAssertions) LRUDoesNotHave(name string) {
	_, present := a.LRU.Peek(name)
	a.False(present, name)
}

// TestLRUSimple tests minimal object presence.
func TestLRUSimple(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.PutName("topp")

	a.LRUHas("topp")
	a.LRUDoesNotHave("sf")
}

// TestLRUAutoInsert tests lru.Get() adding absent items.
func TestLRUAutoInsert(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetName("topp")
	a.GetName("sf")
	a.LRUHas("topp")
	a.LRUHas("sf")

	// A third name evicts the oldest
	a.GetName("tiger")
	a.LRUDoesNotHave("topp")
	a.LRUHas("sf")
	a.LRUHas("tiger")
}

func TestLRUInsertError(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetName("topp")
	a.GetName("sf")

	// Nothing is added on error, so nothing is evicted
	a.GetError("tiger")
	a.LRUHas("topp")
	a.LRUHas("sf")
	a.LRUDoesNotHave("tiger")

	// Present items never call the fetch function
	a.GetPresent("topp")
	a.GetPresent("sf")
}

// TestLRUOrder tests that getting an item causes it to not get evicted.
func TestLRUOrder(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetName("topp")
	a.GetName("sf")
	a.GetName("topp")

	a.GetName("tiger")
	a.LRUHas("topp")
	a.LRUDoesNotHave("sf")
	a.LRUHas("tiger")
}

// TestLRURemoval does simple tests on the Remove call.
func TestLRURemoval(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetName("topp")
	a.LRUHas("topp")
	a.LRU.Remove("topp")
	a.LRUDoesNotHave("topp")

	a.LRU.Remove("tiger")
	a.LRUDoesNotHave("tiger")

	// Removing a more-recent item leaves room for the older one
	a.GetName("topp")
	a.GetName("sf")
	a.LRU.Remove("sf")
	a.GetName("tiger")
	a.LRUHas("topp")
	a.LRUDoesNotHave("sf")
	a.LRUHas("tiger")
}

// TestLRURemoveIf removes items by key prefix.
func TestLRURemoveIf(t *testing.T) {
	a := NewLRUAssertions(t, 8)

	a.GetName("topp:states")
	a.GetName("topp:roads")
	a.GetName("sf:roads")
	a.LRU.RemoveIf(func(key string) bool {
		return strings.HasPrefix(key, "topp:")
	})
	a.LRUDoesNotHave("topp:states")
	a.LRUDoesNotHave("topp:roads")
	a.LRUHas("sf:roads")
	a.Equal(1, a.LRU.Len())

	a.LRU.Clear()
	a.LRUDoesNotHave("sf:roads")
	a.Equal(0, a.LRU.Len())

	// The cache is still usable afterwards
	a.GetName("tiger")
	a.LRUHas("tiger")
}
