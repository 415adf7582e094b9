package render

import (
	"bytes"
	"image"
	"image/png"
	"sync"

	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
)

// ImageRenderer renders a dataset into an image.
type ImageRenderer interface {
	Render(ds domain.Dataset, mode domain.DisplayMode) (image.Image, error)
}

// ChartCache wraps a renderer with an LRU cache of encoded PNGs keyed by
// display mode. The dataset is immutable for the process lifetime, so a
// cached entry never goes stale.
type ChartCache struct {
	inner ImageRenderer
	ds    domain.Dataset
	cache *lruCache
}

// NewChartCache creates a cache decorator bound to one dataset.
func NewChartCache(inner ImageRenderer, ds domain.Dataset, maxEntries int) *ChartCache {
	return &ChartCache{
		inner: inner,
		ds:    ds,
		cache: newLRUCache(maxEntries),
	}
}

// PNG returns the encoded chart for the given mode, rendering on a miss.
func (c *ChartCache) PNG(mode domain.DisplayMode) ([]byte, error) {
	key := mode.String()
	if data, ok := c.cache.get(key); ok {
		return data, nil
	}

	img, err := c.inner.Render(c.ds, mode)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	c.cache.put(key, data)
	return data, nil
}

// lruCache is a simple thread-safe LRU cache for encoded charts.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []byte
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
