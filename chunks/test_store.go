package chunks

import (
	"github.com/iammosespaulr/noms/ref"
)

// TestStore is a MemoryStore that counts Gets, Hases, Puts and root updates,
// so tests can assert on the traffic a layer above actually generates.
type TestStore struct {
	MemoryStore
	Reads   int
	Hases   int
	Writes  int
	Updates int
}

func NewTestStore() *TestStore {
	return &TestStore{}
}

func (s *TestStore) Get(r ref.Ref) Chunk {
	s.Reads++
	return s.MemoryStore.Get(r)
}

func (s *TestStore) Has(r ref.Ref) bool {
	s.Hases++
	return s.MemoryStore.Has(r)
}

func (s *TestStore) Put(c Chunk) {
	s.Writes++
	s.MemoryStore.Put(c)
}

func (s *TestStore) UpdateRoot(current, last ref.Ref) bool {
	s.Updates++
	return s.MemoryStore.UpdateRoot(current, last)
}
