package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache is a fixed-capacity cache with per-entry TTL. Expired entries
// are dropped lazily on Get and swept by the janitor.
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[string]*list.Element
	ttl      time.Duration
}

func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	return &LRUCache[V]{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
		ttl:      ttl,
	}
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	if ele, ok := c.cache[key]; ok {
		ent := ele.Value.(*entry[V])
		if time.Now().After(ent.expiration) {
			c.removeElement(ele)
			return zero, false
		}
		c.ll.MoveToFront(ele)
		return ent.value, true
	}
	return zero, false
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = time.Now().Add(c.ttl)
		return
	}

	ent := &entry[V]{key: key, value: value, expiration: time.Now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.cache[key] = ele

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

func (c *LRUCache[V]) removeOldest() {
	ele := c.ll.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache[V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry[V])
	delete(c.cache, ent.key)
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start launches the janitor goroutine. It satisfies the app starter
// contract so main can wire the cache into the application lifecycle.
func (c *LRUCache[V]) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry[V])
		if time.Now().After(ent.expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
