package chunks

import (
	"io"

	"github.com/iammosespaulr/noms/ref"
)

// ChunkStore is the core storage abstraction in noms. We can put data anyplace we have a ChunkStore implementation for.
type ChunkStore interface {
	ChunkSource
	ChunkSink
	RootTracker
}

// RootTracker allows querying and management of the root of an entire tree of references. The "root" is the single mutable annotation in a ChunkStore.
type RootTracker interface {
	// Root returns the current root ref, or the empty ref if no root has been set.
	Root() ref.Ref
	// UpdateRoot atomically swaps the root to current iff the stored root still equals last, returning whether the swap happened.
	UpdateRoot(current, last ref.Ref) bool
}

// ChunkSource is a place to get chunks from.
type ChunkSource interface {
	// Get gets a reference to a single chunk from the source. Returns EmptyChunk if the ref is absent; absence is not an error.
	Get(r ref.Ref) Chunk

	// Has returns true iff the value at the address |r| is contained in the source.
	Has(r ref.Ref) bool
}

// ChunkSink is a place to put chunks. Put is idempotent: a chunk is keyed by its own hash, and re-putting an existing chunk is a no-op.
type ChunkSink interface {
	Put(c Chunk)
	io.Closer
}

// Factory allows the creation of namespaced ChunkStore instances. The details
// of how namespaces are separated is left up to the particular implementation
// of Factory and ChunkStore.
type Factory interface {
	CreateStore(ns string) ChunkStore

	// Shutter shuts down the factory. Subsequent calls to CreateStore() will fail.
	Shutter()
}
