// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache

// This file provides a simple LRU cache keyed by catalog object name.

import (
	"container/list"
	"sync"
)

// entry is one cached value and the key it is cached under.
type entry struct {
	key   string
	value interface{}
}

// lru is a least-recently-used cache with a fixed capacity.  The cache
// can be safely accessed from multiple goroutines.
type lru struct {
	size      int
	lock      sync.RWMutex
	evictList *list.List
	index     map[string]*list.Element
}

func newLRU(size int) *lru {
	return &lru{
		size:      size,
		evictList: list.New(),
		index:     make(map[string]*list.Element),
	}
}

// Get retrieves an item from the cache.  If it is not present, calls
// the fetch function, and if that succeeds, saves the item and
// returns it.  Errors from fetch are returned but never cached.
func (lru *lru) Get(key string, fetch func(string) (interface{}, error)) (interface{}, error) {
	// This happens under a writer lock, since we need to move the
	// item to the back of the list if it is present
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		lru.evictList.MoveToBack(element)
		return element.Value.(*entry).value, nil
	}

	value, err := fetch(key)
	if err != nil {
		return nil, err
	}
	lru.add(key, value)
	return value, nil
}

// Peek looks for an item in the cache and returns it if present.  This
// runs under a reader lock and does not affect the recency of the
// item.
func (lru *lru) Peek(key string) (interface{}, bool) {
	lru.lock.RLock()
	defer lru.lock.RUnlock()

	if element, present := lru.index[key]; present {
		return element.Value.(*entry).value, true
	}
	return nil, false
}

// Put adds an item to the LRU cache, possibly evicting something.
func (lru *lru) Put(key string, value interface{}) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		element.Value.(*entry).value = value
		lru.evictList.MoveToBack(element)
		return
	}
	lru.add(key, value)
}

// Remove takes an item out of the cache.  It does nothing if that key
// does not exist.
func (lru *lru) Remove(key string) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		delete(lru.index, key)
		lru.evictList.Remove(element)
	}
}

// RemoveIf takes every item whose key matches pred out of the cache.
func (lru *lru) RemoveIf(pred func(key string) bool) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	var next *list.Element
	for element := lru.evictList.Front(); element != nil; element = next {
		next = element.Next()
		key := element.Value.(*entry).key
		if pred(key) {
			delete(lru.index, key)
			lru.evictList.Remove(element)
		}
	}
}

// Clear empties the cache.
func (lru *lru) Clear() {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	lru.evictList.Init()
	lru.index = make(map[string]*list.Element)
}

// Len returns the number of cached items.
func (lru *lru) Len() int {
	lru.lock.RLock()
	defer lru.lock.RUnlock()
	return len(lru.index)
}

// add is an internal helper, running under the write lock, that adds a
// new item to the cache.  The key is known to not already exist.
func (lru *lru) add(key string, value interface{}) {
	element := lru.evictList.PushBack(&entry{key: key, value: value})
	lru.index[key] = element

	for len(lru.index) > lru.size {
		head := lru.evictList.Front()
		delete(lru.index, head.Value.(*entry).key)
		lru.evictList.Remove(head)
	}
}
