package chunks

import (
	"flag"
)

// Flags is a bundle of command-line flags for selecting and constructing a
// ChunkStore. Exactly one backend flag should be set.
type Flags struct {
	ldbDir    *string
	badgerDir *string
	memory    *bool
}

func NewFlags() Flags {
	return NewFlagsWithPrefix("")
}

func NewFlagsWithPrefix(prefix string) Flags {
	return Flags{
		flag.String(prefix+"ldb", "", "directory to use for a LevelDB-backed chunkstore"),
		flag.String(prefix+"badger", "", "directory to use for a Badger-backed chunkstore"),
		flag.Bool(prefix+"mem", false, "use a memory-backed chunkstore"),
	}
}

// CreateStore builds the selected store, or returns nil if no backend flag
// was given.
func (f Flags) CreateStore() ChunkStore {
	switch {
	case *f.ldbDir != "":
		return NewLevelDBStore(*f.ldbDir)
	case *f.badgerDir != "":
		return NewBadgerStore(*f.badgerDir)
	case *f.memory:
		return NewMemoryStore()
	}
	return nil
}

// CreateFactory builds a Factory for the selected backend, or nil.
func (f Flags) CreateFactory() Factory {
	switch {
	case *f.ldbDir != "":
		return NewLevelDBStoreFactory(*f.ldbDir)
	case *f.badgerDir != "":
		return NewBadgerStoreFactory(*f.badgerDir)
	case *f.memory:
		return NewMemoryStoreFactory()
	}
	return nil
}
