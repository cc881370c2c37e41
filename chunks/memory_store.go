package chunks

import (
	"sync"

	"github.com/iammosespaulr/noms/ref"
)

// MemoryStore is an in-memory ChunkStore. Useful mostly for tests and as the
// backing store behind short-lived tools.
type MemoryStore struct {
	data map[ref.Ref]Chunk
	root ref.Ref
	mu   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Get(r ref.Ref) Chunk {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if c, ok := ms.data[r]; ok {
		return c
	}
	return EmptyChunk
}

func (ms *MemoryStore) Has(r ref.Ref) bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	_, ok := ms.data[r]
	return ok
}

func (ms *MemoryStore) Put(c Chunk) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.data == nil {
		ms.data = map[ref.Ref]Chunk{}
	}
	ms.data[c.Ref()] = c
}

func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.data)
}

func (ms *MemoryStore) Root() ref.Ref {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.root
}

func (ms *MemoryStore) UpdateRoot(current, last ref.Ref) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if last != ms.root {
		return false
	}

	ms.root = current
	return true
}

func (ms *MemoryStore) Close() error {
	return nil
}

// MemoryStoreFactory hands out distinct MemoryStores per namespace.
type MemoryStoreFactory struct {
	stores map[string]*MemoryStore
	mu     sync.Mutex
}

func NewMemoryStoreFactory() *MemoryStoreFactory {
	return &MemoryStoreFactory{stores: map[string]*MemoryStore{}}
}

func (f *MemoryStoreFactory) CreateStore(ns string) ChunkStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stores == nil {
		return nil
	}
	if cs, ok := f.stores[ns]; ok {
		return cs
	}
	f.stores[ns] = NewMemoryStore()
	return f.stores[ns]
}

func (f *MemoryStoreFactory) Shutter() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stores = nil
}
