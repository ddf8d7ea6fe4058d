// Package lru provides a least-recently-used cache whose entries are threaded onto intrusive
// lists, so a full cache allocates nothing to evict one key and admit another.
package lru

import (
	"sync"
	"sync/atomic"

	"github.com/bradenaw/juniper/iterator"
	"github.com/bradenaw/juniper/xslices"

	"github.com/bradenaw/memberlist"
)

// Cache is an in-memory cache. This holds the actual keys and values, and most importantly
// implements the eviction policy.
type Cache[K any, V any] interface {
	// Put adds the given key and value to the Cache, possibly evicting another key.
	Put(K, V)
	// Get returns the value associated with the given key, or false in the second return if the key
	// is not resident.
	Get(K) (V, bool)
	// Forget removes the given key from the cache.
	Forget(K)
}

// LRU is a least-recently-used eviction policy cache. It has a defined size in number of items. If
// the LRU is full when putting an item, the key that was least recently Get or Put is evicted to
// make space.
//
// Entries that leave the cache are kept on a free list and reused by later Puts.
//
// LRU's methods may be called concurrently.
type LRU[K comparable, V any] struct {
	m sync.Mutex

	items map[K]*entry[K, V]
	// Resident entries, least recently used at the front.
	recency memberlist.List[entry[K, V], byLink[K, V]]
	// Entries not in items, ready for reuse. Shares the link field with recency; an entry is always
	// on exactly one of the two.
	free memberlist.List[entry[K, V], byLink[K, V]]
	size int

	hits   uint64
	misses uint64
}

var _ Cache[byte, int] = &LRU[byte, int]{}

type entry[K comparable, V any] struct {
	k    K
	v    V
	link memberlist.Link[entry[K, V]]
}

type byLink[K comparable, V any] struct{}

func (byLink[K, V]) Link(e *entry[K, V]) *memberlist.Link[entry[K, V]] { return &e.link }

// NewLRU returns an LRU that holds at most size keys. Panics if size is not positive.
func NewLRU[K comparable, V any](size int) *LRU[K, V] {
	if size <= 0 {
		panic("lru: size must be positive")
	}
	return &LRU[K, V]{
		items: make(map[K]*entry[K, V], size),
		size:  size,
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	e, ok := c.items[key]
	c.mark(ok)
	if !ok {
		var zero V
		return zero, false
	}
	c.touch(e)
	return e.v, true
}

func (c *LRU[K, V]) Put(key K, value V) {
	c.m.Lock()
	defer c.m.Unlock()
	if e, ok := c.items[key]; ok {
		e.v = value
		c.touch(e)
		return
	}
	if len(c.items) >= c.size {
		c.release(c.recency.First())
	}
	var e *entry[K, V]
	if c.free.Empty() {
		e = &entry[K, V]{}
	} else {
		e = c.free.PopFront()
	}
	e.k = key
	e.v = value
	c.items[key] = e
	c.recency.PushBack(e)
}

func (c *LRU[K, V]) Forget(key K) {
	c.m.Lock()
	defer c.m.Unlock()
	e, ok := c.items[key]
	if !ok {
		return
	}
	c.release(e)
}

// Len returns the number of keys currently resident.
func (c *LRU[K, V]) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return len(c.items)
}

// Keys returns the resident keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	c.m.Lock()
	defer c.m.Unlock()
	return xslices.Map(
		iterator.Collect(c.recency.All()),
		func(e *entry[K, V]) K { return e.k },
	)
}

// Purge removes every key from the cache at once.
func (c *LRU[K, V]) Purge() {
	c.m.Lock()
	defer c.m.Unlock()
	for e := c.recency.First(); e != nil; e = c.recency.LinkOf(e).Next() {
		c.clearEntry(e)
	}
	c.free.MoveList(c.free.End(), &c.recency)
}

// HitRate returns the hit rate of the cache: the number of times a Get asked for a key that was
// resident over the total number of Gets.
func (c *LRU[K, V]) HitRate() float64 {
	hits := atomic.LoadUint64(&c.hits)
	misses := atomic.LoadUint64(&c.misses)
	return float64(hits) / (float64(hits) + float64(misses))
}

func (c *LRU[K, V]) mark(hit bool) {
	if hit {
		atomic.AddUint64(&c.hits, 1)
	} else {
		atomic.AddUint64(&c.misses, 1)
	}
}

// touch makes e the most recently used entry.
func (c *LRU[K, V]) touch(e *entry[K, V]) {
	if c.recency.Last() == e {
		return
	}
	c.recency.Erase(c.recency.IteratorAt(e))
	c.recency.PushBack(e)
}

// release moves e from the cache onto the free list.
func (c *LRU[K, V]) release(e *entry[K, V]) {
	c.recency.Erase(c.recency.IteratorAt(e))
	c.clearEntry(e)
	c.free.PushBack(e)
}

// clearEntry drops e from items and zeroes its key and value so the cache doesn't hold on to them.
func (c *LRU[K, V]) clearEntry(e *entry[K, V]) {
	delete(c.items, e.k)
	var zeroK K
	var zeroV V
	e.k = zeroK
	e.v = zeroV
}
