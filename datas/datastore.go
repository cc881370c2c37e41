package datas

import (
	"io"

	"github.com/iammosespaulr/noms/chunks"
	"github.com/iammosespaulr/noms/types"
)

// DataStore provides versioned storage for noms values. Each DataStore
// instance represents one moment in history: the datasets it exposes are
// those reachable from the root captured at construction. Commit() returns a
// new DataStore representing the new moment; external root advances are
// invisible to an existing instance.
type DataStore interface {
	types.ValueReadWriter
	io.Closer

	// Datasets returns the Map<String, Ref<Commit>> of named datasets.
	Datasets() types.Map

	// MaybeHead returns the current head Commit of the named dataset, if it
	// exists.
	MaybeHead(datasetID string) (types.Struct, bool)

	// Head is MaybeHead for datasets known to exist.
	Head(datasetID string) types.Struct

	// Commit updates the Commit that datasetID in this datastore points at.
	// The new Commit struct must descend from the dataset's current head. If
	// the update cannot be performed (another writer raced us, or the commit
	// is not a fast-forward), error will be non-nil. The newest snapshot of
	// the datastore is always returned, so the caller can re-validate against
	// the current state and retry.
	Commit(datasetID string, commit types.Struct) (DataStore, error)

	// Delete removes the dataset named datasetID, subject to the same
	// optimistic concurrency as Commit.
	Delete(datasetID string) (DataStore, error)
}

// NewDataStore creates a DataStore without a value cache.
func NewDataStore(cs chunks.ChunkStore) DataStore {
	return NewDataStoreWithCacheSize(cs, 0)
}

// NewDataStoreWithCacheSize creates a DataStore whose decoded-value cache is
// bounded to cacheSize bytes of raw chunk data. A zero cacheSize selects a
// cache that never retains.
func NewDataStoreWithCacheSize(cs chunks.ChunkStore, cacheSize uint64) DataStore {
	return newLocalDataStore(newCachingValueStore(cs, cacheSize))
}

// datasetHeadRef looks up the head ref of datasetID in a dataset map.
func datasetHeadRef(datasets types.Map, datasetID string) (types.Ref, bool) {
	if v, ok := datasets.MaybeGet(types.NewString(datasetID)); ok {
		return v.(types.Ref), true
	}
	return types.Ref{}, false
}
