package core

import (
	"container/list"
	"sync"
)

// Entry is one cached response body.
// Entries are immutable once created: a key's entry is only ever
// replaced wholesale, never mutated field by field.
type Entry struct {
	Key         string
	ContentType string
	Content     []byte
	Size        int
}

// Cache is a bounded in-memory content cache with LRU eviction.
// A capacity of zero (or negative) means unbounded and eviction
// never triggers.
//
// The recency order is an explicit doubly linked list with a map
// index into it, so get and put are O(1) and the eviction order
// immediately after construction is insertion order.
//
// All methods are safe for concurrent use. The mutex is held only
// around map and list mutation, never around I/O.
type Cache struct {
	mutex    sync.Mutex
	capacity int
	index    map[string]*list.Element
	order    *list.List // front = most recently used
}

func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		index:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get looks up key. On a hit the key becomes most recently used and
// the stored entry is returned unchanged. A miss has no side effect.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	elem, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(Entry), true
}

// Put inserts or fully replaces the entry for key and marks it most
// recently used. If inserting a new key would exceed the capacity,
// the least recently used key is evicted first.
func (c *Cache) Put(key, contentType string, content []byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry := Entry{
		Key:         key,
		ContentType: contentType,
		Content:     content,
		Size:        len(content),
	}

	if elem, ok := c.index[key]; ok {
		elem.Value = entry
		c.order.MoveToFront(elem)
		return
	}

	if c.capacity > 0 && c.order.Len() >= c.capacity {
		c.evictOldest()
	}
	c.index[key] = c.order.PushFront(entry)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.order.Len()
}

// evictOldest drops the entry at the back of the recency list.
// Callers must hold the mutex.
func (c *Cache) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.index, oldest.Value.(Entry).Key)
}
