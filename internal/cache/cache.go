// Package cache provides a small thread-safe LRU cache for decoded images,
// keyed by absolute file path. Re-checking a folder that was recently loaded
// skips the decode entirely.
package cache

import (
	"container/list"
	"sync"

	"refboard/internal/model"
)

// DefaultCapacity is the default number of decoded images kept in memory.
const DefaultCapacity = 100

type entry struct {
	key   string
	value *model.DecodedImage
}

// LRU is a least-recently-used cache of decoded images.
type LRU struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	items    map[string]*list.Element
}

// NewLRU creates a cache holding at most capacity images. A capacity below 1
// is clamped to 1.
func NewLRU(capacity int) *LRU {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get returns the cached image for the path, or nil if not present.
// A hit marks the entry as most recently used.
func (c *LRU) Get(path string) *model.DecodedImage {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[path]
	if !ok {
		return nil
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry).value
}

// Put stores the image under the path, evicting the least recently used
// entry if the cache is full.
func (c *LRU) Put(path string, img *model.DecodedImage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[path]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry).value = img
		return
	}

	elem := c.order.PushFront(&entry{key: path, value: img})
	c.items[path] = elem

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}
}

// Len returns the number of cached images.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes all cached images.
func (c *LRU) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
}
