package datas

import (
	"strings"
	"sync"
	"testing"

	"github.com/iammosespaulr/noms/chunks"
	"github.com/iammosespaulr/noms/ref"
	"github.com/iammosespaulr/noms/types"
	"github.com/stretchr/testify/assert"
)

func TestReadValueCaches(t *testing.T) {
	assert := assert.New(t)
	cs := chunks.NewTestStore()
	cvs := newCachingValueStore(cs, 1<<20)

	r := cvs.WriteValue(types.NewString("hello")).TargetRef()
	reads := cs.Reads

	v1 := cvs.ReadValue(r)
	v2 := cvs.ReadValue(r)
	assert.True(v1.Equals(types.NewString("hello")))
	assert.True(v1.Equals(v2))
	assert.Equal(reads, cs.Reads, "second read must be served from the cache")
}

func TestReadValueCachesMisses(t *testing.T) {
	assert := assert.New(t)
	cs := chunks.NewTestStore()
	cvs := newCachingValueStore(cs, 1<<20)

	r := ref.FromData([]byte("nothing here"))
	assert.Nil(cvs.ReadValue(r))
	reads := cs.Reads
	assert.Nil(cvs.ReadValue(r))
	assert.Equal(reads, cs.Reads, "known-missing refs must not be re-fetched")
}

func TestWriteValueSkipsPresentChunks(t *testing.T) {
	assert := assert.New(t)
	cs := chunks.NewTestStore()
	cvs := newCachingValueStore(cs, 1<<20)

	v := types.NewString("hello")
	cvs.WriteValue(v)
	writes := cs.Writes
	cvs.WriteValue(v)
	assert.Equal(writes, cs.Writes, "re-writing a present chunk must not hit the store")
}

func TestWriteValueAfterReadSkipsPut(t *testing.T) {
	assert := assert.New(t)
	cs := chunks.NewTestStore()
	cvs := newCachingValueStore(cs, 1<<20)

	v := types.NewString("hello")
	r := cvs.WriteValue(v).TargetRef()

	// A second store over the same chunks: reading the value marks it
	// present, so a subsequent write is elided too.
	cvs2 := newCachingValueStore(cs, 1<<20)
	cvs2.ReadValue(r)
	writes := cs.Writes
	cvs2.WriteValue(v)
	assert.Equal(writes, cs.Writes)
}

func TestNoopCacheStoreAlwaysReads(t *testing.T) {
	assert := assert.New(t)
	cs := chunks.NewTestStore()
	cvs := newCachingValueStore(cs, 0)

	r := cvs.WriteValue(types.NewString("hello")).TargetRef()
	reads := cs.Reads
	cvs.ReadValue(r)
	cvs.ReadValue(r)
	assert.Equal(reads+2, cs.Reads)
}

func TestCacheCoherence(t *testing.T) {
	assert := assert.New(t)
	cs := chunks.NewTestStore()
	cvs := newCachingValueStore(cs, 64)

	// Values large enough to thrash a 64-byte cache.
	written := []ref.Ref{}
	for _, s := range []string{"one longish value", "two longish value", "three longish value"} {
		written = append(written, cvs.WriteValue(types.NewString(s)).TargetRef())
	}

	// Whether a read hits the cache or the store, it must equal the direct
	// decode of the chunk.
	for i := 0; i < 3; i++ {
		for _, r := range written {
			v := cvs.ReadValue(r)
			direct := types.DecodeChunk(cs.Get(r))
			assert.True(v.Equals(direct))
			assert.Equal(v.Ref(), direct.Ref())
		}
	}
}

func TestCacheEvictionUnderPressure(t *testing.T) {
	assert := assert.New(t)
	cs := chunks.NewTestStore()

	const maxSize = 256
	cvs := newCachingValueStore(cs, maxSize)

	// Write chunks totaling well over the budget, bypassing the cache.
	plain := types.NewValueStore(cs)
	refs := make([]ref.Ref, 8)
	for i := range refs {
		refs[i] = plain.WriteValue(types.NewString(strings.Repeat("x", 100) + string(rune('a'+i)))).TargetRef()
	}

	for _, r := range refs {
		assert.NotNil(cvs.ReadValue(r))
	}
	cache := cvs.cache.(*lruCache)
	assert.True(cache.size() <= maxSize)

	// The most recently read chunk is retained...
	reads := cs.Reads
	assert.NotNil(cvs.ReadValue(refs[len(refs)-1]))
	assert.Equal(reads, cs.Reads)

	// ...while an evicted one costs a fresh store Get.
	assert.NotNil(cvs.ReadValue(refs[0]))
	assert.Equal(reads+1, cs.Reads)
}

// gatedStore blocks Gets until released, so tests can hold a decode in
// flight.
type gatedStore struct {
	*chunks.MemoryStore
	entered chan struct{}
	release chan struct{}
	mu      sync.Mutex
	gets    int
}

func newGatedStore() *gatedStore {
	return &gatedStore{
		MemoryStore: chunks.NewMemoryStore(),
		entered:     make(chan struct{}, 16),
		release:     make(chan struct{}),
	}
}

func (gs *gatedStore) Get(r ref.Ref) chunks.Chunk {
	gs.mu.Lock()
	gs.gets++
	gs.mu.Unlock()
	gs.entered <- struct{}{}
	<-gs.release
	return gs.MemoryStore.Get(r)
}

func TestConcurrentReadsShareOneDecode(t *testing.T) {
	assert := assert.New(t)
	gs := newGatedStore()

	c := types.EncodeValue(types.NewString("hello"))
	gs.Put(c)

	cvs := newCachingValueStore(gs, 1<<20)

	results := make(chan types.Value, 2)
	go func() {
		results <- cvs.ReadValue(c.Ref())
	}()
	// Wait until the first reader holds the pending cache entry and is
	// parked inside the store Get.
	<-gs.entered

	go func() {
		results <- cvs.ReadValue(c.Ref())
	}()

	close(gs.release)
	v1, v2 := <-results, <-results
	assert.True(v1.Equals(types.NewString("hello")))
	assert.True(v2.Equals(types.NewString("hello")))

	gs.mu.Lock()
	defer gs.mu.Unlock()
	assert.Equal(1, gs.gets, "the second reader must share the in-flight decode")
}
