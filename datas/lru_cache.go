package datas

import (
	"container/list"
	"sync"

	"github.com/iammosespaulr/noms/ref"
	"github.com/iammosespaulr/noms/types"
)

// decodeRecord is the handle a cache entry holds: an in-progress or completed
// decode. Readers that find a pending record wait on it and share the result
// instead of decoding again. A resolved record with a nil value means "the
// chunk was empty / no such value"; caching that outcome stops repeat lookups
// for known-missing hashes.
type decodeRecord struct {
	done chan struct{}
	v    types.Value
}

func newPendingRecord() *decodeRecord {
	return &decodeRecord{done: make(chan struct{})}
}

func newResolvedRecord(v types.Value) *decodeRecord {
	rec := newPendingRecord()
	rec.resolve(v)
	return rec
}

func (rec *decodeRecord) resolve(v types.Value) {
	rec.v = v
	close(rec.done)
}

// value blocks until the decode completes, then returns it; nil means the
// chunk was empty.
func (rec *decodeRecord) value() types.Value {
	<-rec.done
	return rec.v
}

func (rec *decodeRecord) present() bool {
	<-rec.done
	return rec.v != nil
}

// valueCache maps chunk refs to decode records. Lookup miss is a normal
// outcome; the cache never reports errors.
type valueCache interface {
	// entry returns the record for r, marking it most-recently-used.
	entry(r ref.Ref) (*decodeRecord, bool)
	// add inserts or refreshes the record for r. size is the raw chunk byte
	// count charged against the cache budget; re-adding an existing key
	// replaces its prior size.
	add(r ref.Ref, size uint64, rec *decodeRecord)
}

// noopCache never retains. Selected when a DataStore is constructed with a
// zero cache size.
type noopCache struct{}

func (noopCache) entry(r ref.Ref) (*decodeRecord, bool) {
	return nil, false
}

func (noopCache) add(r ref.Ref, size uint64, rec *decodeRecord) {
}

// lruCache is a size-bounded cache with least-recently-used eviction. The
// recorded size of an entry is the raw chunk byte count at insertion; the sum
// of recorded sizes never exceeds maxSize once add returns.
type lruCache struct {
	mu      sync.Mutex
	entries map[ref.Ref]*list.Element
	lru     list.List // back is most-recently-used
	total   uint64
	maxSize uint64
}

type lruEntry struct {
	r    ref.Ref
	size uint64
	rec  *decodeRecord
}

func newLRUCache(maxSize uint64) *lruCache {
	return &lruCache{entries: map[ref.Ref]*list.Element{}, maxSize: maxSize}
}

func (c *lruCache) entry(r ref.Ref) (*decodeRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[r]
	if !ok {
		return nil, false
	}
	c.lru.MoveToBack(el)
	return el.Value.(lruEntry).rec, true
}

func (c *lruCache) add(r ref.Ref, size uint64, rec *decodeRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[r]; ok {
		c.total -= el.Value.(lruEntry).size
		c.lru.Remove(el)
		delete(c.entries, r)
	}

	c.entries[r] = c.lru.PushBack(lruEntry{r, size, rec})
	c.total += size

	for c.total > c.maxSize {
		el := c.lru.Front()
		entry := el.Value.(lruEntry)
		c.lru.Remove(el)
		delete(c.entries, entry.r)
		c.total -= entry.size
	}
}

// size returns the sum of recorded entry sizes; used by tests.
func (c *lruCache) size() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}
